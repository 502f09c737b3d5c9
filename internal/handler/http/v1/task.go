package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

func (q ListTasksQuery) filter() view.TaskFilter {
	return view.TaskFilter{
		Query:      q.Query,
		IncidentID: q.IncidentID,
		Priority:   models.Priority(q.Priority),
		Status:     models.TaskStatus(q.Status),
	}
}

// @Summary Create a new task
// @Description New tasks always start in the Open column. Without coordinates the task is placed at its incident. Requires API key.
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param task body CreateTaskRequest true "Task creation request"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tasks [post]
func (h *Handler) createTask(c *gin.Context) {
	var input CreateTaskRequest
	log := h.logger.WithField("method", "createTask")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToTaskModel(input)
	if err := h.taskService.CreateTask(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "task not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToTaskResponse(model))
}

// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search by title"
// @Param incident_id query string false "Incident ID"
// @Param priority query string false "Priority" Enums(All, High, Medium, Low)
// @Param status query string false "Status" Enums(All, Open, InProgress, Done)
// @Success 200 {array} TaskResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /tasks [get]
func (h *Handler) listTasks(c *gin.Context) {
	log := h.logger.WithField("method", "listTasks")

	var query ListTasksQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	c.JSON(http.StatusOK, ModelsToTaskResponses(h.taskService.ListTasks(c.Request.Context(), query.filter())))
}

// @Summary Task board
// @Description Kanban columns Open, InProgress, Done with counts
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "Search by title"
// @Param incident_id query string false "Incident ID"
// @Param priority query string false "Priority" Enums(All, High, Medium, Low)
// @Success 200 {array} BoardColumnResponse
// @Router /tasks/board [get]
func (h *Handler) taskBoard(c *gin.Context) {
	log := h.logger.WithField("method", "taskBoard")

	var query ListTasksQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	c.JSON(http.StatusOK, ColumnsToBoardResponse(h.taskService.Board(c.Request.Context(), query.filter())))
}

// @Summary Active tasks for the dashboard sidebar
// @Description Tasks that are not Done, first three unless all=true
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param incident_id query string false "Incident ID"
// @Param priority query string false "Priority" Enums(All, High, Medium, Low)
// @Param all query bool false "Show all"
// @Success 200 {array} TaskResponse
// @Router /tasks/active [get]
func (h *Handler) activeTasks(c *gin.Context) {
	log := h.logger.WithField("method", "activeTasks")

	var query ListTasksQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	tasks := h.taskService.ActiveTasks(c.Request.Context(), query.filter(), query.All)
	c.JSON(http.StatusOK, ModelsToTaskResponses(tasks))
}

// @Summary Get task by ID
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [get]
func (h *Handler) getTask(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getTask").WithField("id", id)

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "task not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTaskResponse(task))
}

// @Summary Update a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Param task body UpdateTaskRequest true "Task update request"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [put]
func (h *Handler) updateTask(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateTask").WithField("id", id)

	var input UpdateTaskRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToTaskModel(input)
	model.ID = id
	if err := h.taskService.UpdateTask(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "task not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTaskResponse(model))
}

// @Summary Move a task to another board column
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Param status body UpdateTaskStatusRequest true "New status"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id}/status [patch]
func (h *Handler) updateTaskStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateTaskStatus").WithField("id", id)

	var input UpdateTaskStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), id, models.TaskStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err, "task not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTaskResponse(task))
}

// @Summary Delete a task
// @Tags Tasks
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Router /tasks/{id} [delete]
func (h *Handler) deleteTask(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteTask").WithField("id", id)

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "task not found")
		return
	}
	c.Status(http.StatusNoContent)
}
