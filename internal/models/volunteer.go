package models

type VolunteerStatus string

const (
	VolunteerAvailable VolunteerStatus = "Available"
	VolunteerAssigned  VolunteerStatus = "Assigned"
	VolunteerResting   VolunteerStatus = "Resting"
)

type Volunteer struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Status   VolunteerStatus `json:"status"`
	Skills   []string        `json:"skills"`
	Avatar   string          `json:"avatar"`
	Location string          `json:"location"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"phone,omitempty"`
}

func (v Volunteer) Key() string { return v.ID }

func (v Volunteer) Clone() Volunteer {
	if v.Skills != nil {
		v.Skills = append([]string(nil), v.Skills...)
	}
	return v
}

// HasSkill проверяет точное совпадение навыка
func (v Volunteer) HasSkill(skill string) bool {
	for _, s := range v.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
