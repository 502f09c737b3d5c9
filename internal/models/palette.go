package models

// Ранги важности: Critical=4 > High=3 > Medium=2 > Low=1.
// Приоритет задачи использует ту же шкалу.
var rank = map[string]int{
	string(SeverityCritical): 4,
	string(SeverityHigh):     3,
	string(SeverityMedium):   2,
	string(SeverityLow):      1,
}

// Единая таблица цветов маркеров и бейджей
var palette = map[string]string{
	"severity:" + string(SeverityCritical): "#ef4444",
	"severity:" + string(SeverityHigh):     "#f97316",
	"severity:" + string(SeverityMedium):   "#eab308",
	"severity:" + string(SeverityLow):      "#14b8a6",
	"priority:" + string(PriorityHigh):     "#ef4444",
	"priority:" + string(PriorityMedium):   "#f97316",
	"priority:" + string(PriorityLow):      "#14b8a6",
}

// DefaultColor цвет для неизвестных значений
const DefaultColor = "#3b82f6"

func (s Severity) Weight() int { return rank[string(s)] }

func (p Priority) Weight() int { return rank[string(p)] }

func (s Severity) Color() string { return colorOf("severity:" + string(s)) }

func (p Priority) Color() string { return colorOf("priority:" + string(p)) }

func colorOf(key string) string {
	if c, ok := palette[key]; ok {
		return c
	}
	return DefaultColor
}
