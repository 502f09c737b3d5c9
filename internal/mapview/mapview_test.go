package mapview

import (
	"testing"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var osm = TileLayer{URLTemplate: DefaultTileURL, Attribution: DefaultAttribution}

func TestIncidentMarkers_ColorBySeverity(t *testing.T) {
	markers := IncidentMarkers([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical},
		{ID: "2", Severity: models.SeverityHigh},
		{ID: "3", Severity: models.SeverityMedium},
		{ID: "4", Severity: models.SeverityLow},
	})

	require.Len(t, markers, 4)
	assert.Equal(t, "#ef4444", markers[0].Color)
	assert.Equal(t, "#f97316", markers[1].Color)
	assert.Equal(t, "#eab308", markers[2].Color)
	assert.Equal(t, "#14b8a6", markers[3].Color)
	assert.Equal(t, "incident:1", markers[0].ID)
}

func TestTaskMarkers_SkipsTasksWithoutCoordinates(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Priority: models.PriorityLow, Coordinates: &models.Coordinates{Lat: 1, Lng: 2}},
		{ID: "2", Priority: models.PriorityHigh},
	}

	markers := TaskMarkers(tasks)

	require.Len(t, markers, 1)
	assert.Equal(t, "#14b8a6", markers[0].Color)
	assert.Equal(t, models.PlaceholderAssignee, markers[0].Subtitle)
	assert.Equal(t, models.Coordinates{Lat: 1, Lng: 2}, markers[0].Position)
}

func TestNewLayer_WithoutTilesIsNil(t *testing.T) {
	l := NewLayer(TileLayer{}, models.Coordinates{}, nil)
	require.Nil(t, l)

	l.Replace(IncidentMarkers(seed.Incidents()))
	l.PanTo(models.Coordinates{Lat: 1, Lng: 1}, 10)
	_, ok := l.Click("incident:1")
	assert.False(t, ok)
	_, ok = l.View()
	assert.False(t, ok)
}

func TestLayer_ClickSelectsAndNotifies(t *testing.T) {
	var selected Marker
	l := NewLayer(osm, models.Coordinates{}, func(m Marker) { selected = m })
	l.Replace(IncidentMarkers(seed.Incidents()))

	m, ok := l.Click("incident:4")

	require.True(t, ok)
	assert.Equal(t, "4", m.EntityID)
	assert.Equal(t, m, selected)
	v, _ := l.View()
	assert.Equal(t, "incident:4", v.Selected)
	assert.Equal(t, m.Position, v.Center)
	assert.True(t, v.Animate)

	_, ok = l.Click("incident:404")
	assert.False(t, ok)
}

func TestLayer_ReplaceClearsThenRedraws(t *testing.T) {
	l := NewLayer(osm, models.Coordinates{}, nil)
	l.Replace(IncidentMarkers(seed.Incidents()))
	l.Click("incident:1")

	l.Replace(TaskMarkers(seed.Tasks()))

	v, _ := l.View()
	assert.Len(t, v.Markers, 6)
	for _, m := range v.Markers {
		assert.Equal(t, KindTask, m.Kind)
	}
	assert.Empty(t, v.Selected)
}

func TestLayer_PanTo(t *testing.T) {
	l := NewLayer(osm, models.Coordinates{}, nil)

	l.PanTo(models.Coordinates{Lat: -6.9, Lng: 106.9}, 99)

	v, _ := l.View()
	assert.Equal(t, models.Coordinates{Lat: -6.9, Lng: 106.9}, v.Center)
	assert.Equal(t, DefaultMaxZoom, v.Zoom)
}

func TestPicker_DragEndReportsCoordinates(t *testing.T) {
	var reported models.Coordinates
	p := NewPicker(models.Coordinates{Lat: -7.2278, Lng: 107.9087}, func(c models.Coordinates) { reported = c })

	p.DragEnd(models.Coordinates{Lat: -7.3, Lng: 108})

	assert.Equal(t, models.Coordinates{Lat: -7.3, Lng: 108}, reported)
	assert.Equal(t, reported, p.Position())
}

func TestTileLayer_URL(t *testing.T) {
	assert.Equal(t, "https://b.tile.openstreetmap.org/5/1/3.png", osm.URL(5, 1, 3))
	assert.False(t, TileLayer{}.Available())
}
