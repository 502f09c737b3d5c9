package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/repository"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/service/mocks"
	"github.com/shenikar/disaster_dashboard/internal/view"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
	webhook_mocks "github.com/shenikar/disaster_dashboard/internal/webhook/mocks"
)

// newTestIncidentService создает сервис с моками реестра и публикатора
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	return service.NewIncidentService(repoMock, newSilentLogger(), publisherMock, 0), repoMock, publisherMock
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		Name:     "Banjir Rob Jakarta Utara",
		Location: "Jakarta Utara",
		Severity: models.SeverityHigh,
	}

	// Ожидания
	var stored models.Incident
	repoMock.EXPECT().
		Add(gomock.Any()).
		Do(func(inc models.Incident) { stored = inc }).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, "incident", event.Entity)
			assert.Equal(t, webhook.ActionCreated, event.Action)
			return nil
		}).
		Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, incident.ID)
	assert.Equal(t, models.IncidentActive, incident.Status)
	assert.False(t, incident.DateReported.IsZero())
	assert.Equal(t, *incident, stored)
}

func TestCreateIncident_PublishFailureDoesNotFail(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Add(gomock.Any()).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := svc.CreateIncident(ctx, &models.Incident{Name: "Gempa", Status: models.IncidentResolved})
	require.NoError(t, err)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)

	repoMock.EXPECT().Get("missing").Return(models.Incident{}, false).Times(1)

	incident, err := svc.GetIncident(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)

	repoMock.EXPECT().Update(gomock.Any()).Return(false).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0) // Событие не публикуется

	err := svc.UpdateIncident(context.Background(), &models.Incident{ID: "missing"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncident_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Update(gomock.Any()).Return(true).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	err := svc.UpdateIncident(ctx, &models.Incident{ID: "1", Name: "Banjir"})
	require.NoError(t, err)
}

func TestDeleteIncident_Idempotent(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().Delete("1").Return(true),
		repoMock.EXPECT().Delete("1").Return(false),
	)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.DeleteIncident(ctx, "1"))
	require.NoError(t, svc.DeleteIncident(ctx, "1"))
}

func TestListIncidents_FilterSortPaginate(t *testing.T) {
	repo := repository.NewIncidentRepository(seed.Incidents())
	svc := service.NewIncidentService(repo, newSilentLogger(), webhook.NopPublisher{}, 0)
	ctx := context.Background()

	page, err := svc.ListIncidents(ctx, service.IncidentQuery{})
	require.NoError(t, err)
	assert.Equal(t, 5, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "1", page.Items[0].ID) // самый свежий первым

	page, err = svc.ListIncidents(ctx, service.IncidentQuery{
		Filter: view.IncidentFilter{Severity: models.SeverityCritical},
		Sort:   view.SortDateAsc,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "2", page.Items[0].ID)
	assert.Equal(t, "1", page.Items[1].ID)
}

func TestListIncidents_ClampsPage(t *testing.T) {
	repo := repository.NewIncidentRepository(seed.Incidents())
	svc := service.NewIncidentService(repo, newSilentLogger(), webhook.NopPublisher{}, 2)

	page, err := svc.ListIncidents(context.Background(), service.IncidentQuery{Page: 42})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.From)
	assert.Equal(t, 5, page.To)
}
