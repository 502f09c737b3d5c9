package view

import (
	"testing"
	"time"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/stretchr/testify/assert"
)

func ids(items []models.Incident) []string {
	out := make([]string, len(items))
	for i, inc := range items {
		out[i] = inc.ID
	}
	return out
}

func TestSortIncidents_SeverityDescIsStable(t *testing.T) {
	incidents := []models.Incident{
		{ID: "a", Severity: models.SeverityLow},
		{ID: "b", Severity: models.SeverityHigh},
		{ID: "c", Severity: models.SeverityCritical},
		{ID: "d", Severity: models.SeverityMedium},
		{ID: "e", Severity: models.SeverityHigh},
		{ID: "f", Severity: models.SeverityCritical},
	}

	got := SortIncidents(incidents, SortSeverityDesc)

	assert.Equal(t, []string{"c", "f", "b", "e", "d", "a"}, ids(got))
	assert.Equal(t, "a", incidents[0].ID, "input must not be reordered")
}

func TestSortIncidents_Dates(t *testing.T) {
	incidents := seed.Incidents()

	assert.Equal(t, []string{"1", "4", "2", "5", "3"}, ids(SortIncidents(incidents, SortDateDesc)))
	assert.Equal(t, []string{"3", "5", "2", "4", "1"}, ids(SortIncidents(incidents, SortDateAsc)))
}

func TestSortIncidents_Name(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", Name: "tanah longsor"},
		{ID: "2", Name: "Banjir"},
		{ID: "3", Name: "erupsi"},
	}

	assert.Equal(t, []string{"2", "3", "1"}, ids(SortIncidents(incidents, SortNameAsc)))
}

func TestSortIncidents_Status(t *testing.T) {
	now := time.Now()
	incidents := []models.Incident{
		{ID: "1", Status: models.IncidentResolved, DateReported: now},
		{ID: "2", Status: models.IncidentActive, DateReported: now},
		{ID: "3", Status: models.IncidentArchived, DateReported: now},
	}

	assert.Equal(t, []string{"2", "3", "1"}, ids(SortIncidents(incidents, SortStatus)))
}

func TestParseSortKey(t *testing.T) {
	k, ok := ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, SortDateDesc, k)

	k, ok = ParseSortKey("SeverityDesc")
	assert.True(t, ok)
	assert.Equal(t, SortSeverityDesc, k)

	_, ok = ParseSortKey("Random")
	assert.False(t, ok)
}
