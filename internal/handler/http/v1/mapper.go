package v1

import (
	"time"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/view"
)

// DTOToIncidentModel преобразует DTO создания/обновления в доменную модель.
// Дата уже проверена валидатором, пустая дата остается нулевой.
func DTOToIncidentModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateIncidentRequest:
		return &models.Incident{
			Name:         v.Name,
			Location:     v.Location,
			DateReported: parseDate(v.DateReported),
			Status:       models.IncidentStatus(v.Status),
			Severity:     models.Severity(v.Severity),
			Coordinates:  pointToCoordinates(v.Latitude, v.Longitude),
		}
	case UpdateIncidentRequest:
		return &models.Incident{
			Name:         v.Name,
			Location:     v.Location,
			DateReported: parseDate(v.DateReported),
			Status:       models.IncidentStatus(v.Status),
			Severity:     models.Severity(v.Severity),
			Coordinates:  pointToCoordinates(v.Latitude, v.Longitude),
		}
	}
	return nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		Name:          model.Name,
		Location:      model.Location,
		DateReported:  model.DateReported.Format(dateLayout),
		Status:        string(model.Status),
		Severity:      string(model.Severity),
		SeverityColor: model.Severity.Color(),
		Latitude:      model.Coordinates.Lat,
		Longitude:     model.Coordinates.Lng,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ModelToIncidentResponse(&incidents[i])
	}
	return responses
}

func PageToIncidentPageResponse(page view.Page[models.Incident]) *IncidentPageResponse {
	return &IncidentPageResponse{
		Items:      ModelsToIncidentResponses(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		From:       page.From,
		To:         page.To,
	}
}

func dtoToResources(in []ResourceDTO) []models.Resource {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Resource, len(in))
	for i, r := range in {
		out[i] = models.Resource{Item: r.Item, Quantity: r.Quantity, Unit: r.Unit}
	}
	return out
}

// dtoToCoordinates точка задается только парой широта/долгота
// pointToCoordinates для обязательных координат, уже проверенных валидатором
func pointToCoordinates(lat, lng *float64) models.Coordinates {
	if c := dtoToCoordinates(lat, lng); c != nil {
		return *c
	}
	return models.Coordinates{}
}

func dtoToCoordinates(lat, lng *float64) *models.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.Coordinates{Lat: *lat, Lng: *lng}
}

func DTOToTaskModel(dto any) *models.Task {
	switch v := dto.(type) {
	case CreateTaskRequest:
		return &models.Task{
			Title:          v.Title,
			Description:    v.Description,
			Assignee:       v.Assignee,
			AssigneeAvatar: v.AssigneeAvatar,
			Type:           models.TaskType(v.Type),
			DueDate:        v.DueDate,
			Priority:       models.Priority(v.Priority),
			IncidentID:     v.IncidentID,
			Coordinates:    dtoToCoordinates(v.Latitude, v.Longitude),
			Resources:      dtoToResources(v.Resources),
		}
	case UpdateTaskRequest:
		return &models.Task{
			Title:          v.Title,
			Description:    v.Description,
			Assignee:       v.Assignee,
			AssigneeAvatar: v.AssigneeAvatar,
			Status:         models.TaskStatus(v.Status),
			Type:           models.TaskType(v.Type),
			DueDate:        v.DueDate,
			Priority:       models.Priority(v.Priority),
			IncidentID:     v.IncidentID,
			Coordinates:    dtoToCoordinates(v.Latitude, v.Longitude),
			Resources:      dtoToResources(v.Resources),
		}
	}
	return nil
}

// orPlaceholder подпись-заглушка для пустого необязательного поля
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func ModelToTaskResponse(model *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:             model.ID,
		Title:          model.Title,
		Description:    orPlaceholder(model.Description, models.PlaceholderDescription),
		Assignee:       orPlaceholder(model.Assignee, models.PlaceholderAssignee),
		AssigneeAvatar: model.AssigneeAvatar,
		Status:         string(model.Status),
		Type:           string(model.Type),
		DueDate:        model.DueDate,
		Priority:       string(model.Priority),
		PriorityColor:  model.Priority.Color(),
		IncidentID:     model.IncidentID,
		Resources:      make([]ResourceDTO, len(model.Resources)),
		ResourceTotal:  model.ResourceTotal(),
	}
	if model.Coordinates != nil {
		lat, lng := model.Coordinates.Lat, model.Coordinates.Lng
		resp.Latitude, resp.Longitude = &lat, &lng
	}
	for i, r := range model.Resources {
		resp.Resources[i] = ResourceDTO{Item: r.Item, Quantity: r.Quantity, Unit: r.Unit}
	}
	return resp
}

func ModelsToTaskResponses(tasks []models.Task) []*TaskResponse {
	responses := make([]*TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = ModelToTaskResponse(&tasks[i])
	}
	return responses
}

func ColumnsToBoardResponse(columns []view.Column) []*BoardColumnResponse {
	responses := make([]*BoardColumnResponse, len(columns))
	for i, col := range columns {
		responses[i] = &BoardColumnResponse{
			Status: string(col.Status),
			Count:  col.Count,
			Tasks:  ModelsToTaskResponses(col.Tasks),
		}
	}
	return responses
}

func DTOToVolunteerModel(dto any) *models.Volunteer {
	switch v := dto.(type) {
	case CreateVolunteerRequest:
		return &models.Volunteer{
			Name:     v.Name,
			Role:     v.Role,
			Status:   models.VolunteerStatus(v.Status),
			Skills:   v.Skills,
			Avatar:   v.Avatar,
			Location: v.Location,
			Email:    v.Email,
			Phone:    v.Phone,
		}
	case UpdateVolunteerRequest:
		return &models.Volunteer{
			Name:     v.Name,
			Role:     v.Role,
			Status:   models.VolunteerStatus(v.Status),
			Skills:   v.Skills,
			Avatar:   v.Avatar,
			Location: v.Location,
			Email:    v.Email,
			Phone:    v.Phone,
		}
	}
	return nil
}

func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	skills := model.Skills
	if skills == nil {
		skills = []string{}
	}
	return &VolunteerResponse{
		ID:       model.ID,
		Name:     model.Name,
		Role:     model.Role,
		Status:   string(model.Status),
		Skills:   skills,
		Avatar:   model.Avatar,
		Location: model.Location,
		Email:    model.Email,
		Phone:    model.Phone,
	}
}

func ModelsToVolunteerResponses(volunteers []models.Volunteer) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(volunteers))
	for i := range volunteers {
		responses[i] = ModelToVolunteerResponse(&volunteers[i])
	}
	return responses
}

func DTOToProfileModel(dto ProfileRequest) *models.UserProfile {
	return &models.UserProfile{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Organization: dto.Organization,
		Timezone:     dto.Timezone,
		Avatar:       dto.Avatar,
	}
}

func ModelToProfileResponse(model *models.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		Phone:        model.Phone,
		Organization: model.Organization,
		Timezone:     model.Timezone,
		Avatar:       model.Avatar,
	}
}
