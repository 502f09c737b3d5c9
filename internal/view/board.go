package view

import "github.com/shenikar/disaster_dashboard/internal/models"

// SidebarLimit сколько активных задач показывать в свернутой боковой панели
const SidebarLimit = 3

type Column struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
	Tasks  []models.Task     `json:"tasks"`
}

// Board раскладывает задачи по колонкам канбана. Колонка задачи определяется только ее статусом.
func Board(tasks []models.Task) []Column {
	columns := make([]Column, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = Column{Status: status, Tasks: []models.Task{}}
	}
	for _, task := range tasks {
		for i := range columns {
			if columns[i].Status == task.Status {
				columns[i].Tasks = append(columns[i].Tasks, task)
				columns[i].Count++
				break
			}
		}
	}
	return columns
}

// ActiveTasks незавершенные задачи; без showAll только первые SidebarLimit
func ActiveTasks(tasks []models.Task, showAll bool) []models.Task {
	active := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != models.TaskDone {
			active = append(active, task)
		}
	}
	if !showAll && len(active) > SidebarLimit {
		active = active[:SidebarLimit]
	}
	return active
}
