package modal

import (
	"testing"
	"time"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialog_OpenEditCopiesEntity(t *testing.T) {
	d := NewDialog[models.Volunteer](0)
	vol := seed.Volunteers()[0]

	d.OpenEdit(vol, nil)
	vol.Skills[0] = "changed"

	s := d.Snapshot()
	require.True(t, s.Open)
	assert.Equal(t, ModeEdit, s.Mode)
	require.NotNil(t, s.Editing)
	assert.Equal(t, "P3K", s.Editing.Skills[0])
	assert.Nil(t, s.Location)
}

func TestDialog_OpenCreateClearsEditing(t *testing.T) {
	d := NewDialog[models.Incident](time.Hour)
	d.OpenEdit(seed.Incidents()[0], &seed.Incidents()[0].Coordinates)

	d.OpenCreate(&models.Coordinates{Lat: 1, Lng: 2})

	s := d.Snapshot()
	assert.True(t, s.Open)
	assert.Equal(t, ModeCreate, s.Mode)
	assert.Nil(t, s.Editing)
	assert.Equal(t, &models.Coordinates{Lat: 1, Lng: 2}, s.Location)
}

func TestDialog_CloseDefersClearingEditing(t *testing.T) {
	d := NewDialog[models.Task](20 * time.Millisecond)
	d.OpenEdit(seed.Tasks()[0], seed.Tasks()[0].Coordinates)

	d.Close()

	s := d.Snapshot()
	assert.False(t, s.Open)
	require.NotNil(t, s.Editing, "editing must survive the close transition")

	require.Eventually(t, func() bool {
		return d.Snapshot().Editing == nil
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, d.Snapshot().Location)
}

func TestDialog_ReopenCancelsPendingClear(t *testing.T) {
	d := NewDialog[models.Incident](20 * time.Millisecond)
	inc := seed.Incidents()[1]
	d.OpenEdit(seed.Incidents()[0], nil)
	d.Close()

	d.OpenEdit(inc, nil)
	time.Sleep(60 * time.Millisecond)

	s := d.Snapshot()
	assert.True(t, s.Open)
	require.NotNil(t, s.Editing)
	assert.Equal(t, inc.ID, s.Editing.ID)
}

func TestDialog_CloseWithoutDelayClearsImmediately(t *testing.T) {
	d := NewDialog[models.Incident](0)
	d.OpenEdit(seed.Incidents()[0], nil)

	d.Close()

	assert.Nil(t, d.Snapshot().Editing)
}

func TestCoordinator_SetLocationUpdatesDraft(t *testing.T) {
	c := New(0)
	defer c.Stop()
	c.Task.OpenCreate(&models.Coordinates{Lat: -7.2278, Lng: 107.9087})

	ok := c.SetLocation(KindTask, models.Coordinates{Lat: -7.3, Lng: 107.95})

	require.True(t, ok)
	assert.Equal(t, &models.Coordinates{Lat: -7.3, Lng: 107.95}, c.Task.Snapshot().Location)
}

func TestCoordinator_SetLocationWithoutMap(t *testing.T) {
	c := New(0)
	c.Volunteer.OpenCreate(nil)

	assert.False(t, c.SetLocation(KindVolunteer, models.Coordinates{Lat: 1, Lng: 1}))
	assert.False(t, c.SetLocation(Kind("unknown"), models.Coordinates{}))
}

func TestCoordinator_SetLocationAfterCloseIsRejected(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()
	start := models.Coordinates{Lat: -7.2278, Lng: 107.9087}
	c.Incident.OpenCreate(&start)

	c.Close(KindIncident)

	assert.Nil(t, c.Incident.Picker())
	assert.False(t, c.SetLocation(KindIncident, models.Coordinates{Lat: -8, Lng: 110}))
	assert.Equal(t, &start, c.Incident.Snapshot().Location)
}

func TestDialog_StalePickerIgnoredAfterReopen(t *testing.T) {
	d := NewDialog[models.Incident](time.Hour)
	defer d.Stop()
	first := models.Coordinates{Lat: -6.2, Lng: 106.8}
	d.OpenCreate(&first)
	stale := d.Picker()
	require.NotNil(t, stale)

	d.Close()
	second := models.Coordinates{Lat: -8.4, Lng: 115.2}
	d.OpenCreate(&second)

	stale.DragEnd(models.Coordinates{Lat: 0, Lng: 0})
	assert.Equal(t, &second, d.Snapshot().Location)

	d.Picker().DragEnd(models.Coordinates{Lat: -8.5, Lng: 115.3})
	assert.Equal(t, &models.Coordinates{Lat: -8.5, Lng: 115.3}, d.Snapshot().Location)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("volunteer")
	assert.True(t, ok)
	assert.Equal(t, KindVolunteer, k)

	_, ok = ParseKind("report")
	assert.False(t, ok)
}
