package view

import (
	"strings"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// LocationGroup карточка сводки волонтеров одного места
type LocationGroup struct {
	Location  string      `json:"location"`
	Total     int         `json:"total"`
	Available int         `json:"available"`
	Assigned  int         `json:"assigned"`
	Roles     []RoleCount `json:"roles"`
}

// RoleKey первое слово роли. "Dokter Medis" и "Dokter Umum" попадают в одну корзину "Dokter".
func RoleKey(role string) string {
	fields := strings.Fields(role)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// GroupByLocation группы идут в порядке первого появления места, роли внутри группы тоже
func GroupByLocation(volunteers []models.Volunteer) []LocationGroup {
	groups := make([]LocationGroup, 0)
	index := make(map[string]int)

	for _, vol := range volunteers {
		loc := LocationOf(vol)
		i, ok := index[loc]
		if !ok {
			i = len(groups)
			index[loc] = i
			groups = append(groups, LocationGroup{Location: loc, Roles: []RoleCount{}})
		}
		g := &groups[i]
		g.Total++
		switch vol.Status {
		case models.VolunteerAvailable:
			g.Available++
		case models.VolunteerAssigned:
			g.Assigned++
		}
		g.Roles = countRole(g.Roles, RoleKey(vol.Role))
	}
	return groups
}

func countRole(roles []RoleCount, key string) []RoleCount {
	for i := range roles {
		if roles[i].Role == key {
			roles[i].Count++
			return roles
		}
	}
	return append(roles, RoleCount{Role: key, Count: 1})
}

// Skills уникальные навыки всех волонтеров в порядке первого появления
func Skills(volunteers []models.Volunteer) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)
	for _, vol := range volunteers {
		for _, s := range vol.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	return skills
}
