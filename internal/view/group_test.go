package view

import (
	"testing"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupOf(groups []LocationGroup, location string) (LocationGroup, bool) {
	for _, g := range groups {
		if g.Location == location {
			return g, true
		}
	}
	return LocationGroup{}, false
}

func TestGroupByLocation_AddingVolunteerIncrementsGroup(t *testing.T) {
	vols := seed.Volunteers()
	before, ok := groupOf(GroupByLocation(vols), "Pool Jakarta")
	require.True(t, ok)

	added := append([]models.Volunteer{{
		ID: "new", Name: "Budi", Role: "Penyelamat Air", Status: models.VolunteerAvailable,
		Skills: []string{"SAR"}, Location: "Pool Jakarta",
	}}, vols...)

	after, ok := groupOf(GroupByLocation(added), "Pool Jakarta")
	require.True(t, ok)
	assert.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, before.Available+1, after.Available)
	assert.Contains(t, Skills(added), "SAR")
}

func TestGroupByLocation_NewSkillAppearsInSkillList(t *testing.T) {
	vols := []models.Volunteer{{ID: "1", Skills: []string{"P3K"}, Location: "Garut"}}
	require.NotContains(t, Skills(vols), "SAR")

	vols = append([]models.Volunteer{{ID: "2", Skills: []string{"SAR"}, Location: "Pool Jakarta"}}, vols...)

	assert.Equal(t, []string{"SAR", "P3K"}, Skills(vols))
}

func TestGroupByLocation_CountsAndRoles(t *testing.T) {
	vols := []models.Volunteer{
		{ID: "1", Role: "Dokter Medis", Status: models.VolunteerAvailable, Location: "Garut"},
		{ID: "2", Role: "Dokter Umum", Status: models.VolunteerAssigned, Location: "Garut"},
		{ID: "3", Role: "Pakar Logistik", Status: models.VolunteerResting, Location: "Garut"},
		{ID: "4", Role: "Logistik Lead", Status: models.VolunteerAvailable},
	}

	groups := GroupByLocation(vols)

	require.Len(t, groups, 2)
	assert.Equal(t, LocationGroup{
		Location: "Garut", Total: 3, Available: 1, Assigned: 1,
		Roles: []RoleCount{{Role: "Dokter", Count: 2}, {Role: "Pakar", Count: 1}},
	}, groups[0])
	assert.Equal(t, models.UnknownLocation, groups[1].Location)
	assert.Equal(t, []RoleCount{{Role: "Logistik", Count: 1}}, groups[1].Roles)
}

func TestSkills_Unique(t *testing.T) {
	vols := []models.Volunteer{
		{Skills: []string{"SAR", "EMT"}},
		{Skills: []string{"EMT", "Radio"}},
	}

	assert.Equal(t, []string{"SAR", "EMT", "Radio"}, Skills(vols))
}

func TestRoleKey(t *testing.T) {
	assert.Equal(t, "Dokter", RoleKey("  Dokter   Medis"))
	assert.Equal(t, "", RoleKey("   "))
}
