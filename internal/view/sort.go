package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

type SortKey string

const (
	SortDateDesc     SortKey = "DateDesc"
	SortDateAsc      SortKey = "DateAsc"
	SortNameAsc      SortKey = "NameAsc"
	SortSeverityDesc SortKey = "SeverityDesc"
	SortStatus       SortKey = "Status"
)

// DefaultSort порядок списка инцидентов по умолчанию
const DefaultSort = SortDateDesc

func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortDateDesc, SortDateAsc, SortNameAsc, SortSeverityDesc, SortStatus:
		return k, true
	case "":
		return DefaultSort, true
	}
	return "", false
}

// SortIncidents возвращает отсортированную копию. Сортировка стабильна:
// равные элементы сохраняют исходный порядок.
func SortIncidents(items []models.Incident, key SortKey) []models.Incident {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []models.Incident{}
	}

	var cmp func(a, b models.Incident) int
	switch key {
	case SortDateDesc:
		cmp = func(a, b models.Incident) int { return b.DateReported.Compare(a.DateReported) }
	case SortDateAsc:
		cmp = func(a, b models.Incident) int { return a.DateReported.Compare(b.DateReported) }
	case SortNameAsc:
		// Collator не потокобезопасен, создаем на каждый вызов
		col := collate.New(language.Indonesian)
		cmp = func(a, b models.Incident) int { return col.CompareString(a.Name, b.Name) }
	case SortSeverityDesc:
		cmp = func(a, b models.Incident) int { return b.Severity.Weight() - a.Severity.Weight() }
	case SortStatus:
		cmp = func(a, b models.Incident) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}
