package modal

import (
	"sync"
	"time"

	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/store"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Snapshot состояние диалога на момент чтения
type Snapshot[T any] struct {
	Open     bool                `json:"open"`
	Mode     Mode                `json:"mode"`
	Editing  *T                  `json:"editing"`
	Location *models.Coordinates `json:"location"`
}

// Dialog флаг открытия и редактируемая запись одного типа формы.
// Редактируемая запись хранится копией и очищается с задержкой после закрытия.
type Dialog[T store.Entity[T]] struct {
	mu      sync.Mutex
	open    bool
	editing *T
	picker  *mapview.Picker
	// location черновик координат формы, обновляется маркером выбора места
	location *models.Coordinates
	delay    time.Duration
	timer    *time.Timer
	gen      uint64
}

func NewDialog[T store.Entity[T]](clearDelay time.Duration) *Dialog[T] {
	return &Dialog[T]{delay: clearDelay}
}

// OpenCreate открывает форму создания; at задает стартовую точку маркера, nil для форм без карты
func (d *Dialog[T]) OpenCreate(at *models.Coordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPending()
	d.open = true
	d.editing = nil
	d.setPicker(at)
}

// OpenEdit открывает форму с копией записи
func (d *Dialog[T]) OpenEdit(item T, at *models.Coordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPending()
	c := item.Clone()
	d.open = true
	d.editing = &c
	d.setPicker(at)
}

// Close сразу снимает флаг, а ссылку на запись сбрасывает через delay
func (d *Dialog[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return
	}
	d.open = false
	d.cancelPending()

	if d.delay <= 0 {
		d.reset()
		return
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.gen == gen && !d.open {
			d.reset()
		}
	})
}

// Picker маркер выбора места открытой формы, nil если форма без карты или уже закрыта
func (d *Dialog[T]) Picker() *mapview.Picker {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil
	}
	return d.picker
}

func (d *Dialog[T]) Snapshot() Snapshot[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Snapshot[T]{Open: d.open, Mode: ModeCreate}
	if d.editing != nil {
		c := (*d.editing).Clone()
		s.Editing = &c
		s.Mode = ModeEdit
	}
	if d.location != nil {
		loc := *d.location
		s.Location = &loc
	}
	return s
}

// Stop отменяет отложенную очистку
func (d *Dialog[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPending()
}

func (d *Dialog[T]) setPicker(at *models.Coordinates) {
	d.picker = nil
	d.location = nil
	if at == nil {
		return
	}
	loc := *at
	d.location = &loc
	gen := d.gen
	d.picker = mapview.NewPicker(loc, func(c models.Coordinates) {
		d.setLocation(gen, c)
	})
}

// setLocation принимает координаты только от маркера текущего открытия формы
func (d *Dialog[T]) setLocation(gen uint64, c models.Coordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen || !d.open {
		return
	}
	d.location = &c
}

func (d *Dialog[T]) cancelPending() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Dialog[T]) reset() {
	d.editing = nil
	d.picker = nil
	d.location = nil
	d.timer = nil
}
