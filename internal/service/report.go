package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/view"
)

type ReportService interface {
	Report(ctx context.Context, incidentID string) view.Report
}

type reportService struct {
	incidents  IncidentRepository
	tasks      TaskRepository
	volunteers VolunteerRepository
	logger     *logrus.Logger
}

func NewReportService(incidents IncidentRepository, tasks TaskRepository, volunteers VolunteerRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		incidents:  incidents,
		tasks:      tasks,
		volunteers: volunteers,
		logger:     logger,
	}
}

// Report агрегаты пересчитываются на каждый запрос по текущему снимку хранилищ
func (s *reportService) Report(ctx context.Context, incidentID string) view.Report {
	report := view.BuildReport(incidentID, s.incidents.List(), s.tasks.List(), s.volunteers.List())
	s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "Report",
		"incident_id": report.IncidentID,
		"tasks":       report.Stats.TotalTasks,
	}).Debug("Report built")
	return report
}
