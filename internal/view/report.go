package view

import (
	"math"
	"strings"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

// AllIncidents область отчета по всем инцидентам
const AllIncidents = "all"

type Stats struct {
	TotalTasks       int `json:"total_tasks"`
	CompletedTasks   int `json:"completed_tasks"`
	CompletionRate   int `json:"completion_rate"`
	TotalResources   int `json:"total_resources"`
	ActiveVolunteers int `json:"active_volunteers"`
	TotalIncidents   int `json:"total_incidents"`
}

type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TrendPoint struct {
	Day      string `json:"day"`
	Tasks    int    `json:"tasks"`
	Resolved int    `json:"resolved"`
}

type Report struct {
	IncidentID       string       `json:"incident_id"`
	Stats            Stats        `json:"stats"`
	TypeDistribution []Slice      `json:"type_distribution"`
	Trend            []TrendPoint `json:"trend"`
}

// Scope задачи и волонтеры, относящиеся к выбранному инциденту
type Scope struct {
	Tasks      []models.Task
	Volunteers []models.Volunteer
}

// ScopeTo сужает данные до инцидента: задачи по incident_id, волонтеры по совпадению места.
// Для AllIncidents в любом регистре и пустого id возвращает все.
func ScopeTo(incidentID string, incidents []models.Incident, tasks []models.Task, volunteers []models.Volunteer) Scope {
	if isAllIncidents(incidentID) {
		return Scope{Tasks: tasks, Volunteers: volunteers}
	}

	scope := Scope{Tasks: []models.Task{}, Volunteers: []models.Volunteer{}}
	for _, task := range tasks {
		if task.IncidentID == incidentID {
			scope.Tasks = append(scope.Tasks, task)
		}
	}

	for _, inc := range incidents {
		if inc.ID != incidentID {
			continue
		}
		for _, vol := range volunteers {
			if vol.Location == inc.Location {
				scope.Volunteers = append(scope.Volunteers, vol)
			}
		}
		break
	}
	return scope
}

func isAllIncidents(incidentID string) bool {
	return incidentID == "" || strings.EqualFold(incidentID, AllIncidents)
}

func Aggregate(scope Scope, totalIncidents int) Stats {
	s := Stats{TotalTasks: len(scope.Tasks), TotalIncidents: totalIncidents}
	for _, task := range scope.Tasks {
		if task.Status == models.TaskDone {
			s.CompletedTasks++
		}
		s.TotalResources += task.ResourceTotal()
	}
	for _, vol := range scope.Volunteers {
		if vol.Status != models.VolunteerResting {
			s.ActiveVolunteers++
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	}
	return s
}

// TypeDistribution число задач каждого типа в порядке первого появления
func TypeDistribution(tasks []models.Task) []Slice {
	dist := make([]Slice, 0)
	index := make(map[models.TaskType]int)
	for _, task := range tasks {
		i, ok := index[task.Type]
		if !ok {
			i = len(dist)
			index[task.Type] = i
			dist = append(dist, Slice{Name: string(task.Type)})
		}
		dist[i].Value++
	}
	return dist
}

var trendShape = []struct {
	day             string
	tasks, resolved float64
}{
	{"Mon", 0.2, 0.1},
	{"Tue", 0.4, 0.25},
	{"Wed", 0.3, 0.2},
	{"Thu", 0.6, 0.4},
	{"Fri", 0.8, 0.6},
	{"Sat", 0.9, 0.75},
}

// Trend недельная серия, масштабированная от числа задач; последний день равен фактическим значениям
func Trend(stats Stats) []TrendPoint {
	base := float64(stats.TotalTasks)
	points := make([]TrendPoint, 0, len(trendShape)+1)
	for _, p := range trendShape {
		points = append(points, TrendPoint{
			Day:      p.day,
			Tasks:    int(math.Round(base * p.tasks)),
			Resolved: int(math.Round(base * p.resolved)),
		})
	}
	return append(points, TrendPoint{Day: "Sun", Tasks: stats.TotalTasks, Resolved: stats.CompletedTasks})
}

func BuildReport(incidentID string, incidents []models.Incident, tasks []models.Task, volunteers []models.Volunteer) Report {
	if isAllIncidents(incidentID) {
		incidentID = AllIncidents
	}
	scope := ScopeTo(incidentID, incidents, tasks, volunteers)
	stats := Aggregate(scope, len(incidents))
	return Report{
		IncidentID:       incidentID,
		Stats:            stats,
		TypeDistribution: TypeDistribution(scope.Tasks),
		Trend:            Trend(stats),
	}
}
