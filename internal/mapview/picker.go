package mapview

import (
	"sync"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

// Picker одиночный перетаскиваемый маркер для выбора места в форме.
// По окончании перетаскивания координаты передаются в onDragEnd.
type Picker struct {
	mu        sync.Mutex
	position  models.Coordinates
	onDragEnd func(models.Coordinates)
}

func NewPicker(start models.Coordinates, onDragEnd func(models.Coordinates)) *Picker {
	return &Picker{position: start, onDragEnd: onDragEnd}
}

func (p *Picker) DragEnd(c models.Coordinates) {
	p.mu.Lock()
	p.position = c
	cb := p.onDragEnd
	p.mu.Unlock()

	if cb != nil {
		cb(c)
	}
}

func (p *Picker) Position() models.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}
