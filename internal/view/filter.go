// Package view содержит чистые функции производных представлений: фильтры, сортировку,
// пагинацию, группировку и агрегаты. Все функции работают над снимком коллекции и не меняют его.
package view

import (
	"strings"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

// All значение фильтра, отключающее ограничение
const All = "All"

type IncidentFilter struct {
	Query    string
	Severity models.Severity
	Status   models.IncidentStatus
	Location string
}

type TaskFilter struct {
	Query      string
	IncidentID string
	Priority   models.Priority
	Status     models.TaskStatus
}

type VolunteerFilter struct {
	Query    string
	Location string
	Skill    string
	Status   models.VolunteerStatus
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

// matches точное совпадение, пустое значение и All (в любом регистре) пропускают все
func matches[S ~string](want, got S) bool {
	return want == "" || strings.EqualFold(string(want), All) || want == got
}

// FilterIncidents поиск по названию или месту плюс точные фильтры важности, статуса и места
func FilterIncidents(items []models.Incident, f IncidentFilter) []models.Incident {
	out := make([]models.Incident, 0, len(items))
	for _, inc := range items {
		if f.Query != "" && !containsFold(inc.Name, f.Query) && !containsFold(inc.Location, f.Query) {
			continue
		}
		if !matches(f.Severity, inc.Severity) || !matches(f.Status, inc.Status) || !matches(f.Location, inc.Location) {
			continue
		}
		out = append(out, inc)
	}
	return out
}

func FilterTasks(items []models.Task, f TaskFilter) []models.Task {
	out := make([]models.Task, 0, len(items))
	for _, task := range items {
		if f.Query != "" && !containsFold(task.Title, f.Query) {
			continue
		}
		if !matches(f.IncidentID, task.IncidentID) || !matches(f.Priority, task.Priority) || !matches(f.Status, task.Status) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// FilterVolunteers волонтеры без места считаются находящимися в UnknownLocation
func FilterVolunteers(items []models.Volunteer, f VolunteerFilter) []models.Volunteer {
	out := make([]models.Volunteer, 0, len(items))
	for _, vol := range items {
		if f.Query != "" && !containsFold(vol.Name, f.Query) && !containsFold(vol.Role, f.Query) {
			continue
		}
		if !matches(f.Location, LocationOf(vol)) || !matches(f.Status, vol.Status) {
			continue
		}
		if f.Skill != "" && f.Skill != All && !vol.HasSkill(f.Skill) {
			continue
		}
		out = append(out, vol)
	}
	return out
}

// LocationOf место волонтера для группировки
func LocationOf(v models.Volunteer) string {
	if v.Location == "" {
		return models.UnknownLocation
	}
	return v.Location
}
