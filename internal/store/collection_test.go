package store

import (
	"testing"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_AddPrepends(t *testing.T) {
	c := NewCollection([]models.Incident{{ID: "1", Name: "Banjir"}})

	c.Add(models.Incident{ID: "2", Name: "Gempa"})

	items := c.List()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}

func TestCollection_UpdateAfterAdd(t *testing.T) {
	c := NewCollection[models.Task](nil)
	c.Add(models.Task{ID: "t1", Title: "Kirim pasokan", Status: models.TaskOpen})

	updated := models.Task{ID: "t1", Title: "Kirim pasokan", Status: models.TaskDone}
	ok := c.Update(updated)

	require.True(t, ok)
	assert.Equal(t, 1, c.Len())
	got, found := c.Get("t1")
	require.True(t, found)
	assert.Equal(t, updated, got)
}

func TestCollection_UpdateMissingIsNoop(t *testing.T) {
	c := NewCollection([]models.Volunteer{{ID: "1", Name: "Sarah"}})

	ok := c.Update(models.Volunteer{ID: "404", Name: "Ghost"})

	assert.False(t, ok)
	assert.Equal(t, []models.Volunteer{{ID: "1", Name: "Sarah"}}, c.List())
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	c := NewCollection([]models.Incident{{ID: "1"}, {ID: "2"}})

	assert.True(t, c.Delete("1"))
	assert.False(t, c.Delete("1"))
	assert.Equal(t, 1, c.Len())
	_, found := c.Get("1")
	assert.False(t, found)
}

func TestCollection_CopiesInAndOut(t *testing.T) {
	skills := []string{"SAR"}
	c := NewCollection[models.Volunteer](nil)
	c.Add(models.Volunteer{ID: "1", Skills: skills})

	skills[0] = "changed"
	got, _ := c.Get("1")
	assert.Equal(t, []string{"SAR"}, got.Skills)

	got.Skills[0] = "mutated"
	again, _ := c.Get("1")
	assert.Equal(t, []string{"SAR"}, again.Skills)
}

func TestCollection_TaskCoordinatesAreCopied(t *testing.T) {
	coords := &models.Coordinates{Lat: -7.2, Lng: 107.9}
	c := NewCollection([]models.Task{{ID: "1", Coordinates: coords}})

	coords.Lat = 0
	got, _ := c.Get("1")
	require.NotNil(t, got.Coordinates)
	assert.Equal(t, -7.2, got.Coordinates.Lat)
}
