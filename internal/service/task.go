package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
)

type TaskService interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter view.TaskFilter) []models.Task
	Board(ctx context.Context, filter view.TaskFilter) []view.Column
	ActiveTasks(ctx context.Context, filter view.TaskFilter, showAll bool) []models.Task
}

type taskService struct {
	repo      TaskRepository
	incidents IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewTaskService(repo TaskRepository, incidents IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher) TaskService {
	return &taskService{
		repo:      repo,
		incidents: incidents,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateTask новая задача всегда попадает в колонку Open.
// Без координат задача ставится на точку своего инцидента.
func (s *taskService) CreateTask(ctx context.Context, task *models.Task) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "task",
		"method":  "CreateTask",
		"title":   task.Title,
	})
	log.Info("Attempting to create a new task")

	task.ID = uuid.NewString()
	task.Status = models.TaskOpen
	if task.IncidentID != "" {
		incident, ok := s.incidents.Get(task.IncidentID)
		switch {
		case !ok:
			log.WithField("incident_id", task.IncidentID).Warn("Task references an unknown incident")
		case task.Coordinates == nil:
			c := incident.Coordinates
			task.Coordinates = &c
		}
	}
	s.repo.Add(*task)

	publish(ctx, log, s.publisher, webhook.NewEvent("task", webhook.ActionCreated, task.ID, task))
	log.WithField("task_id", task.ID).Info("Task created successfully")
	return nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task, ok := s.repo.Get(id)
	if !ok {
		s.logger.WithFields(logrus.Fields{"service": "task", "method": "GetTask", "task_id": id}).Warn("Task not found")
		return nil, fmt.Errorf("service: could not get task %s: %w", id, models.ErrNotFound)
	}
	return &task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, task *models.Task) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "task",
		"method":  "UpdateTask",
		"task_id": task.ID,
	})
	log.Info("Attempting to update task")

	if task.IncidentID != "" {
		if _, ok := s.incidents.Get(task.IncidentID); !ok {
			log.WithField("incident_id", task.IncidentID).Warn("Task references an unknown incident")
		}
	}
	if !s.repo.Update(*task) {
		log.Warn("Attempted to update a non-existent task")
		return fmt.Errorf("service: task with id %s not found for update: %w", task.ID, models.ErrNotFound)
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("task", webhook.ActionUpdated, task.ID, task))
	log.Info("Task updated successfully")
	return nil
}

// UpdateTaskStatus переносит задачу в другую колонку доски
func (s *taskService) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == status {
		return task, nil
	}
	task.Status = status
	if err := s.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "task",
		"method":  "DeleteTask",
		"task_id": id,
	})

	if !s.repo.Delete(id) {
		log.Info("Task already absent")
		return nil
	}

	publish(ctx, log, s.publisher, webhook.NewEvent("task", webhook.ActionDeleted, id, nil))
	log.Info("Task deleted successfully")
	return nil
}

func (s *taskService) ListTasks(ctx context.Context, filter view.TaskFilter) []models.Task {
	return view.FilterTasks(s.repo.List(), filter)
}

func (s *taskService) Board(ctx context.Context, filter view.TaskFilter) []view.Column {
	return view.Board(s.ListTasks(ctx, filter))
}

func (s *taskService) ActiveTasks(ctx context.Context, filter view.TaskFilter, showAll bool) []models.Task {
	return view.ActiveTasks(s.ListTasks(ctx, filter), showAll)
}
