package models

// ProfileKey фиксированный ключ, под которым хранится профиль оператора
const ProfileKey = "userProfile"

type UserProfile struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Timezone     string `json:"timezone"`
	Avatar       string `json:"avatar"`
}

// DefaultProfile профиль, используемый когда сохраненного еще нет
func DefaultProfile() UserProfile {
	return UserProfile{
		FirstName:    "Admin",
		LastName:     "Hompimpa",
		Email:        "admin@hompimpa.id",
		Phone:        "+62 812-3456-7890",
		Organization: "Badan Penanggulangan Bencana",
		Timezone:     "(GMT+07:00) Jakarta",
		Avatar:       "https://picsum.photos/seed/admin/150",
	}
}
