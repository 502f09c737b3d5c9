package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	protected.GET("/navigation", h.navigation)

	// Маршруты для управления инцидентами (CRUD)
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/board", h.taskBoard)
		tasks.GET("/active", h.activeTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.PATCH("/:id/status", h.updateTaskStatus)
		tasks.DELETE("/:id", h.deleteTask)
	}

	volunteers := protected.Group("/volunteers")
	{
		volunteers.POST("", h.createVolunteer)
		volunteers.GET("", h.listVolunteers)
		volunteers.GET("/locations", h.volunteerLocations)
		volunteers.GET("/skills", h.volunteerSkills)
		volunteers.GET("/:id", h.getVolunteer)
		volunteers.PUT("/:id", h.updateVolunteer)
		volunteers.DELETE("/:id", h.deleteVolunteer)
	}

	protected.GET("/reports", h.getReport)

	protected.GET("/profile", h.getProfile)
	protected.PUT("/profile", h.updateProfile)

	mapGroup := protected.Group("/map")
	{
		mapGroup.GET("", h.getMap)
		mapGroup.POST("/refresh", h.refreshMap)
		mapGroup.POST("/markers/:id/click", h.clickMarker)
		mapGroup.POST("/pan", h.panMap)
	}

	modals := protected.Group("/modals/:kind")
	{
		modals.GET("", h.getModal)
		modals.POST("/open", h.openModal)
		modals.POST("/close", h.closeModal)
		modals.PUT("/location", h.setModalLocation)
	}
}
