package models

type TaskStatus string

const (
	TaskOpen       TaskStatus = "Open"
	TaskInProgress TaskStatus = "InProgress"
	TaskDone       TaskStatus = "Done"
)

// TaskStatuses порядок колонок канбан-доски
var TaskStatuses = []TaskStatus{TaskOpen, TaskInProgress, TaskDone}

type TaskType string

const (
	TaskMedical   TaskType = "Medical"
	TaskLogistics TaskType = "Logistics"
	TaskRescue    TaskType = "Rescue"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Resource строка ресурсов, требуемых для задачи
type Resource struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Assignee       string       `json:"assignee"`
	AssigneeAvatar string       `json:"assignee_avatar"`
	Status         TaskStatus   `json:"status"`
	Type           TaskType     `json:"type"`
	DueDate        string       `json:"due_date"`
	Priority       Priority     `json:"priority"`
	IncidentID     string       `json:"incident_id,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Resources      []Resource   `json:"resources,omitempty"`
}

func (t Task) Key() string { return t.ID }

// Clone возвращает копию задачи без общих ссылок на координаты и ресурсы
func (t Task) Clone() Task {
	if t.Coordinates != nil {
		c := *t.Coordinates
		t.Coordinates = &c
	}
	if t.Resources != nil {
		t.Resources = append([]Resource(nil), t.Resources...)
	}
	return t
}

// ResourceTotal сумма количеств по всем ресурсам задачи
func (t Task) ResourceTotal() int {
	total := 0
	for _, r := range t.Resources {
		total += r.Quantity
	}
	return total
}
