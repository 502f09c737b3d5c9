// Package modal координирует формы создания и редактирования: какая форма открыта,
// какая запись в ней редактируется и где стоит маркер выбора места.
package modal

import (
	"time"

	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/models"
)

type Kind string

const (
	KindIncident  Kind = "incident"
	KindTask      Kind = "task"
	KindVolunteer Kind = "volunteer"
)

// DefaultClearDelay пауза перед сбросом записи, чтобы закрывающаяся форма не мигала пустым содержимым
const DefaultClearDelay = 300 * time.Millisecond

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindIncident, KindTask, KindVolunteer:
		return k, true
	}
	return "", false
}

type Coordinator struct {
	Incident  *Dialog[models.Incident]
	Task      *Dialog[models.Task]
	Volunteer *Dialog[models.Volunteer]
}

func New(clearDelay time.Duration) *Coordinator {
	return &Coordinator{
		Incident:  NewDialog[models.Incident](clearDelay),
		Task:      NewDialog[models.Task](clearDelay),
		Volunteer: NewDialog[models.Volunteer](clearDelay),
	}
}

// Close закрывает форму указанного типа
func (c *Coordinator) Close(kind Kind) {
	switch kind {
	case KindIncident:
		c.Incident.Close()
	case KindTask:
		c.Task.Close()
	case KindVolunteer:
		c.Volunteer.Close()
	}
}

// SetLocation передает конец перетаскивания в маркер открытой формы.
// false, если у формы нет карты или она закрыта.
func (c *Coordinator) SetLocation(kind Kind, at models.Coordinates) bool {
	p := c.picker(kind)
	if p == nil {
		return false
	}
	p.DragEnd(at)
	return true
}

func (c *Coordinator) picker(kind Kind) *mapview.Picker {
	switch kind {
	case KindIncident:
		return c.Incident.Picker()
	case KindTask:
		return c.Task.Picker()
	case KindVolunteer:
		return c.Volunteer.Picker()
	}
	return nil
}

// Stop отменяет все отложенные таймеры
func (c *Coordinator) Stop() {
	c.Incident.Stop()
	c.Task.Stop()
	c.Volunteer.Stop()
}
