// Package mapview переводит сущности с координатами в маркеры карты и хранит состояние слоя:
// центр, выбранный маркер и текущий набор маркеров.
package mapview

import "github.com/shenikar/disaster_dashboard/internal/models"

type Kind string

const (
	KindIncident Kind = "incident"
	KindTask     Kind = "task"
)

// Маркеры инцидентов рисуются поверх маркеров задач
const (
	incidentZIndex = 10000
	taskZIndex     = 500
)

type Marker struct {
	ID       string             `json:"id"`
	Kind     Kind               `json:"kind"`
	EntityID string             `json:"entity_id"`
	Position models.Coordinates `json:"position"`
	Color    string             `json:"color"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle,omitempty"`
	ZIndex   int                `json:"z_index"`
}

func markerID(kind Kind, entityID string) string {
	return string(kind) + ":" + entityID
}

func IncidentMarkers(incidents []models.Incident) []Marker {
	markers := make([]Marker, 0, len(incidents))
	for _, inc := range incidents {
		markers = append(markers, Marker{
			ID:       markerID(KindIncident, inc.ID),
			Kind:     KindIncident,
			EntityID: inc.ID,
			Position: inc.Coordinates,
			Color:    inc.Severity.Color(),
			Title:    inc.Name,
			Subtitle: inc.Location,
			ZIndex:   incidentZIndex,
		})
	}
	return markers
}

// TaskMarkers задачи без координат пропускаются
func TaskMarkers(tasks []models.Task) []Marker {
	markers := make([]Marker, 0, len(tasks))
	for _, task := range tasks {
		if task.Coordinates == nil {
			continue
		}
		subtitle := task.Assignee
		if subtitle == "" {
			subtitle = models.PlaceholderAssignee
		}
		markers = append(markers, Marker{
			ID:       markerID(KindTask, task.ID),
			Kind:     KindTask,
			EntityID: task.ID,
			Position: *task.Coordinates,
			Color:    task.Priority.Color(),
			Title:    task.Title,
			Subtitle: subtitle,
			ZIndex:   taskZIndex,
		})
	}
	return markers
}
