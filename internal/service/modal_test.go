package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_dashboard/internal/modal"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/repository"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/shenikar/disaster_dashboard/internal/service"
)

func newSeededModalService(t *testing.T) service.ModalService {
	svc := service.NewModalService(
		modal.New(0),
		repository.NewIncidentRepository(seed.Incidents()),
		repository.NewTaskRepository(seed.Tasks()),
		repository.NewVolunteerRepository(seed.Volunteers()),
		newSilentLogger(),
	)
	t.Cleanup(svc.Stop)
	return svc
}

func TestModalService_OpenEditCopiesEntity(t *testing.T) {
	svc := newSeededModalService(t)
	ctx := context.Background()

	state, err := svc.Open(ctx, modal.KindIncident, "2")
	require.NoError(t, err)

	snap, ok := state.(modal.Snapshot[models.Incident])
	require.True(t, ok)
	assert.True(t, snap.Open)
	assert.Equal(t, modal.ModeEdit, snap.Mode)
	require.NotNil(t, snap.Editing)
	assert.Equal(t, "2", snap.Editing.ID)
	require.NotNil(t, snap.Location)
	assert.Equal(t, seed.Incidents()[1].Coordinates, *snap.Location)
}

func TestModalService_OpenCreateDefaults(t *testing.T) {
	svc := newSeededModalService(t)
	ctx := context.Background()

	state, err := svc.Open(ctx, modal.KindTask, "")
	require.NoError(t, err)
	snap := state.(modal.Snapshot[models.Task])
	assert.Equal(t, modal.ModeCreate, snap.Mode)
	assert.Nil(t, snap.Editing)
	require.NotNil(t, snap.Location)
	assert.Equal(t, seed.Incidents()[0].Coordinates, *snap.Location)

	state, err = svc.Open(ctx, modal.KindVolunteer, "")
	require.NoError(t, err)
	vol := state.(modal.Snapshot[models.Volunteer])
	assert.True(t, vol.Open)
	assert.Nil(t, vol.Location)
}

func TestModalService_OpenEditMissing(t *testing.T) {
	svc := newSeededModalService(t)

	_, err := svc.Open(context.Background(), modal.KindVolunteer, "404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestModalService_SetLocationAndClose(t *testing.T) {
	svc := newSeededModalService(t)
	ctx := context.Background()
	target := models.Coordinates{Lat: -6.9, Lng: 106.9}

	_, err := svc.Open(ctx, modal.KindTask, "3")
	require.NoError(t, err)

	state, err := svc.SetLocation(ctx, modal.KindTask, target)
	require.NoError(t, err)
	assert.Equal(t, target, *state.(modal.Snapshot[models.Task]).Location)

	// Без задержки очистка происходит сразу
	closed := svc.Close(ctx, modal.KindTask).(modal.Snapshot[models.Task])
	assert.False(t, closed.Open)
	assert.Nil(t, closed.Editing)

	_, err = svc.SetLocation(ctx, modal.KindTask, target)
	assert.ErrorIs(t, err, models.ErrNoLocationPicker)
}

func TestModalService_VolunteerHasNoPicker(t *testing.T) {
	svc := newSeededModalService(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, modal.KindVolunteer, "1")
	require.NoError(t, err)

	_, err = svc.SetLocation(ctx, modal.KindVolunteer, models.Coordinates{})
	assert.ErrorIs(t, err, models.ErrNoLocationPicker)
}
