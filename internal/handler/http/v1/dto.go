package v1

import "github.com/shenikar/disaster_dashboard/internal/service"

// dateLayout формат даты инцидента в API
const dateLayout = "2006-01-02"

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Location     string   `json:"location" validate:"required,max=255"`
	DateReported string   `json:"date_reported,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=Active Resolved Archived"`
	Severity     string   `json:"severity" validate:"required,oneof=Critical High Medium Low"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateIncidentRequest DTO для обновления инцидента
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Location     string   `json:"location" validate:"required,max=255"`
	DateReported string   `json:"date_reported" validate:"required,datetime=2006-01-02"`
	Status       string   `json:"status" validate:"required,oneof=Active Resolved Archived"`
	Severity     string   `json:"severity" validate:"required,oneof=Critical High Medium Low"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	DateReported  string  `json:"date_reported"`
	Status        string  `json:"status"`
	Severity      string  `json:"severity"`
	SeverityColor string  `json:"severity_color"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// IncidentPageResponse страница списка инцидентов
type IncidentPageResponse struct {
	Items      []*IncidentResponse `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	TotalItems int                 `json:"total_items"`
	From       int                 `json:"from"`
	To         int                 `json:"to"`
}

// ListIncidentsQuery параметры запроса списка инцидентов
type ListIncidentsQuery struct {
	Query    string `form:"q"`
	Severity string `form:"severity" validate:"omitempty,oneof=All Critical High Medium Low"`
	Status   string `form:"status" validate:"omitempty,oneof=All Active Resolved Archived"`
	Location string `form:"location"`
	Sort     string `form:"sort" validate:"omitempty,oneof=DateDesc DateAsc NameAsc SeverityDesc Status"`
	Page     int    `form:"page" validate:"omitempty,gte=1"`
	PageSize int    `form:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ResourceDTO ресурс, выделенный задаче
type ResourceDTO struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Unit     string `json:"unit,omitempty"`
}

// CreateTaskRequest DTO для создания задачи. Статус не принимается: новая задача всегда Open.
// @Description DTO для создания задачи
type CreateTaskRequest struct {
	Title          string        `json:"title" validate:"required,min=2,max=255"`
	Description    string        `json:"description,omitempty"`
	Assignee       string        `json:"assignee,omitempty"`
	AssigneeAvatar string        `json:"assignee_avatar,omitempty" validate:"omitempty,url"`
	Type           string        `json:"type" validate:"required,oneof=Medical Logistics Rescue"`
	DueDate        string        `json:"due_date,omitempty"`
	Priority       string        `json:"priority" validate:"required,oneof=High Medium Low"`
	IncidentID     string        `json:"incident_id,omitempty"`
	Latitude       *float64      `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64      `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Resources      []ResourceDTO `json:"resources,omitempty" validate:"dive"`
}

// UpdateTaskRequest DTO для обновления задачи
// @Description DTO для обновления задачи
type UpdateTaskRequest struct {
	Title          string        `json:"title" validate:"required,min=2,max=255"`
	Description    string        `json:"description,omitempty"`
	Assignee       string        `json:"assignee,omitempty"`
	AssigneeAvatar string        `json:"assignee_avatar,omitempty" validate:"omitempty,url"`
	Status         string        `json:"status" validate:"required,oneof=Open InProgress Done"`
	Type           string        `json:"type" validate:"required,oneof=Medical Logistics Rescue"`
	DueDate        string        `json:"due_date,omitempty"`
	Priority       string        `json:"priority" validate:"required,oneof=High Medium Low"`
	IncidentID     string        `json:"incident_id,omitempty"`
	Latitude       *float64      `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64      `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Resources      []ResourceDTO `json:"resources,omitempty" validate:"dive"`
}

// UpdateTaskStatusRequest перенос задачи между колонками доски
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open InProgress Done"`
}

// TaskResponse DTO задачи. Пустые описание и исполнитель заменяются подписями-заглушками.
// @Description DTO для ответа с информацией о задаче
type TaskResponse struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Assignee       string        `json:"assignee"`
	AssigneeAvatar string        `json:"assignee_avatar,omitempty"`
	Status         string        `json:"status"`
	Type           string        `json:"type"`
	DueDate        string        `json:"due_date,omitempty"`
	Priority       string        `json:"priority"`
	PriorityColor  string        `json:"priority_color"`
	IncidentID     string        `json:"incident_id,omitempty"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	Resources      []ResourceDTO `json:"resources"`
	ResourceTotal  int           `json:"resource_total"`
}

// BoardColumnResponse колонка канбан-доски
type BoardColumnResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Tasks  []*TaskResponse `json:"tasks"`
}

// ListTasksQuery параметры фильтра задач
type ListTasksQuery struct {
	Query      string `form:"q"`
	IncidentID string `form:"incident_id"`
	Priority   string `form:"priority" validate:"omitempty,oneof=All High Medium Low"`
	Status     string `form:"status" validate:"omitempty,oneof=All Open InProgress Done"`
	All        bool   `form:"all"`
}

// CreateVolunteerRequest DTO для регистрации волонтера
// @Description DTO для регистрации волонтера
type CreateVolunteerRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Role     string   `json:"role" validate:"required,max=255"`
	Status   string   `json:"status,omitempty" validate:"omitempty,oneof=Available Assigned Resting"`
	Skills   []string `json:"skills,omitempty"`
	Avatar   string   `json:"avatar,omitempty" validate:"omitempty,url"`
	Location string   `json:"location,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
}

// UpdateVolunteerRequest DTO для обновления волонтера
// @Description DTO для обновления волонтера
type UpdateVolunteerRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Role     string   `json:"role" validate:"required,max=255"`
	Status   string   `json:"status" validate:"required,oneof=Available Assigned Resting"`
	Skills   []string `json:"skills,omitempty"`
	Avatar   string   `json:"avatar,omitempty" validate:"omitempty,url"`
	Location string   `json:"location,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
}

// VolunteerResponse DTO волонтера
// @Description DTO для ответа с информацией о волонтере
type VolunteerResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Status   string   `json:"status"`
	Skills   []string `json:"skills"`
	Avatar   string   `json:"avatar,omitempty"`
	Location string   `json:"location"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
}

// ListVolunteersQuery параметры фильтра волонтеров
type ListVolunteersQuery struct {
	Query    string `form:"q"`
	Location string `form:"location"`
	Skill    string `form:"skill"`
	Status   string `form:"status" validate:"omitempty,oneof=All Available Assigned Resting"`
}

// SkillsResponse уникальные навыки для фильтра
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// ProfileRequest DTO профиля оператора
// @Description DTO профиля оператора
type ProfileRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name,omitempty" validate:"max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	Avatar       string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// ProfileResponse DTO профиля оператора
type ProfileResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Timezone     string `json:"timezone"`
	Avatar       string `json:"avatar"`
}

// PanRequest новый центр карты. Координаты указателями: экватор и нулевой меридиан допустимы.
type PanRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Zoom      int      `json:"zoom,omitempty" validate:"omitempty,gte=1,lte=19"`
}

// RefreshMapQuery какие задачи рисовать на карте
type RefreshMapQuery struct {
	IncidentID string `form:"incident_id"`
	Priority   string `form:"priority" validate:"omitempty,oneof=All High Medium Low"`
}

// MapResponse состояние карты; при отключенной карте только available=false
type MapResponse struct {
	Available bool `json:"available"`
	*service.MapState
}

// LocationRequest конец перетаскивания маркера выбора места
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}
