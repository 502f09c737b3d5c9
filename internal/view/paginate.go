package view

// IncidentsPageSize размер страницы списка инцидентов
const IncidentsPageSize = 5

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// Paginate вырезает страницу из последовательности. Номер страницы прижимается к допустимому диапазону [1, TotalPages].
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = IncidentsPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if total == 0 {
		return p
	}

	start := (page - 1) * size
	end := min(start+size, total)
	p.Items = append(p.Items, items[start:end]...)
	p.From = start + 1
	p.To = end
	return p
}
