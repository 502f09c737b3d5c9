package mapview

import (
	"sync"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

// DefaultCenter стартовая точка карты и маркера выбора места (Garut)
var DefaultCenter = models.Coordinates{Lat: -7.2278, Lng: 107.9087}

const (
	defaultZoom = 8
	focusZoom   = 13
)

// View снимок состояния слоя для отрисовки клиентом
type View struct {
	Tiles    TileLayer          `json:"tiles"`
	Center   models.Coordinates `json:"center"`
	Zoom     int                `json:"zoom"`
	Animate  bool               `json:"animate"`
	Selected string             `json:"selected,omitempty"`
	Markers  []Marker           `json:"markers"`
}

// Layer набор маркеров поверх тайловой карты.
// Nil *Layer допустим: все методы становятся no-op, так карта без источника тайлов просто не рисуется.
type Layer struct {
	mu       sync.RWMutex
	tiles    TileLayer
	center   models.Coordinates
	zoom     int
	animate  bool
	selected string
	markers  []Marker
	onSelect func(Marker)
}

// NewLayer возвращает nil, если источник тайлов не настроен
func NewLayer(tiles TileLayer, center models.Coordinates, onSelect func(Marker)) *Layer {
	if !tiles.Available() {
		return nil
	}
	if tiles.MaxZoom == 0 {
		tiles.MaxZoom = DefaultMaxZoom
	}
	return &Layer{
		tiles:    tiles,
		center:   center,
		zoom:     defaultZoom,
		markers:  []Marker{},
		onSelect: onSelect,
	}
}

// Replace очищает слой и рисует набор заново, без инкрементального сравнения.
// Выбор сбрасывается, если выбранный маркер исчез.
func (l *Layer) Replace(markers []Marker) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.markers = append([]Marker{}, markers...)
	if l.selected != "" && l.indexOf(l.selected) < 0 {
		l.selected = ""
	}
}

// PanTo анимированно переводит центр карты; zoom <= 0 оставляет текущий масштаб
func (l *Layer) PanTo(c models.Coordinates, zoom int) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.center = c
	if zoom > 0 {
		l.zoom = min(zoom, l.tiles.MaxZoom)
	}
	l.animate = true
}

// Click выбирает маркер, центрирует на нем карту и уведомляет подписчика
func (l *Layer) Click(id string) (Marker, bool) {
	if l == nil {
		return Marker{}, false
	}
	l.mu.Lock()
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return Marker{}, false
	}
	m := l.markers[i]
	l.selected = m.ID
	l.center = m.Position
	l.zoom = min(focusZoom, l.tiles.MaxZoom)
	l.animate = true
	onSelect := l.onSelect
	l.mu.Unlock()

	if onSelect != nil {
		onSelect(m)
	}
	return m, true
}

func (l *Layer) Selected() (Marker, bool) {
	if l == nil {
		return Marker{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(l.selected); i >= 0 {
		return l.markers[i], true
	}
	return Marker{}, false
}

func (l *Layer) View() (View, bool) {
	if l == nil {
		return View{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	return View{
		Tiles:    l.tiles,
		Center:   l.center,
		Zoom:     l.zoom,
		Animate:  l.animate,
		Selected: l.selected,
		Markers:  append([]Marker{}, l.markers...),
	}, true
}

func (l *Layer) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, m := range l.markers {
		if m.ID == id {
			return i
		}
	}
	return -1
}
