// Package seed содержит демонстрационные записи, которыми заполняются хранилища при старте
package seed

import (
	"time"

	"github.com/shenikar/disaster_dashboard/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func Incidents() []models.Incident {
	return []models.Incident{
		{
			ID: "1", Name: "Banjir Bandang Garut 2025", Location: "Garut, Jawa Barat",
			DateReported: date("2025-03-15"), Status: models.IncidentActive, Severity: models.SeverityCritical,
			Coordinates: models.Coordinates{Lat: -7.2278, Lng: 107.9087},
		},
		{
			ID: "2", Name: "Gempa Bumi Cianjur 2024", Location: "Cianjur, Jawa Barat",
			DateReported: date("2024-11-21"), Status: models.IncidentResolved, Severity: models.SeverityCritical,
			Coordinates: models.Coordinates{Lat: -6.8168, Lng: 107.1425},
		},
		{
			ID: "3", Name: "Erupsi Gunung Semeru 2023", Location: "Lumajang, Jawa Timur",
			DateReported: date("2023-12-04"), Status: models.IncidentResolved, Severity: models.SeverityHigh,
			Coordinates: models.Coordinates{Lat: -8.1080, Lng: 112.9200},
		},
		{
			ID: "4", Name: "Tanah Longsor Sukabumi", Location: "Sukabumi, Jawa Barat",
			DateReported: date("2025-01-20"), Status: models.IncidentActive, Severity: models.SeverityHigh,
			Coordinates: models.Coordinates{Lat: -6.9181, Lng: 106.9267},
		},
		{
			ID: "5", Name: "Kekeringan Sumba Timur", Location: "Sumba Timur, NTT",
			DateReported: date("2024-09-10"), Status: models.IncidentActive, Severity: models.SeverityMedium,
			Coordinates: models.Coordinates{Lat: -9.6467, Lng: 120.2644},
		},
	}
}

func Volunteers() []models.Volunteer {
	avatar := func(seed string) string { return "https://picsum.photos/seed/" + seed + "/200" }
	return []models.Volunteer{
		{ID: "1", Name: "Sarah Chen", Role: "Dokter Medis", Status: models.VolunteerAvailable, Skills: []string{"P3K", "Triase"}, Avatar: avatar("sarah"), Location: "Garut, Jawa Barat"},
		{ID: "2", Name: "David Kim", Role: "Pakar Logistik", Status: models.VolunteerAssigned, Skills: []string{"Mengemudi", "Gudang"}, Avatar: avatar("david"), Location: "Garut, Jawa Barat"},
		{ID: "3", Name: "Maria Garcia", Role: "Penyelamat", Status: models.VolunteerAvailable, Skills: []string{"SAR", "EMT"}, Avatar: avatar("maria"), Location: "Sukabumi, Jawa Barat"},
		{ID: "4", Name: "Ahmed Al-Farsi", Role: "IT Support", Status: models.VolunteerAvailable, Skills: []string{"Jaringan", "Radio"}, Avatar: avatar("ahmed"), Location: "Pool Jakarta"},
		{ID: "5", Name: "Jane Doe", Role: "Dukungan Umum", Status: models.VolunteerAssigned, Skills: []string{"Memasak", "Admin"}, Avatar: avatar("jane"), Location: "Garut, Jawa Barat"},
		{ID: "6", Name: "John Smith", Role: "Pengemudi", Status: models.VolunteerAvailable, Skills: []string{"SIM B"}, Avatar: avatar("john"), Location: "Pool Jakarta"},
		{ID: "7", Name: "Emily White", Role: "Koordinator", Status: models.VolunteerAssigned, Skills: []string{"Leadership", "Planning"}, Avatar: avatar("emily"), Location: "Sukabumi, Jawa Barat"},
		{ID: "8", Name: "Michael Brown", Role: "Insinyur", Status: models.VolunteerResting, Skills: []string{"Struktural"}, Avatar: avatar("michael"), Location: "Pool Jakarta"},
	}
}

func Tasks() []models.Task {
	avatar := func(seed string) string { return "https://picsum.photos/seed/" + seed + "/200" }
	at := func(lat, lng float64) *models.Coordinates { return &models.Coordinates{Lat: lat, Lng: lng} }
	return []models.Task{
		{
			ID: "1", Title: "Kirim pasokan medis ke Pos 1", Assignee: "Jane Doe", AssigneeAvatar: avatar("jane"),
			Status: models.TaskOpen, Type: models.TaskMedical, DueDate: "Besok", Priority: models.PriorityHigh,
			IncidentID: "1", Coordinates: at(-7.2250, 107.9100),
			Resources: []models.Resource{{Item: "Kotak P3K", Quantity: 20, Unit: "box"}},
		},
		{
			ID: "2", Title: "Koordinasikan transportasi relawan", Assignee: "John Smith", AssigneeAvatar: avatar("john"),
			Status: models.TaskOpen, Type: models.TaskLogistics, DueDate: "3 hari lagi", Priority: models.PriorityMedium,
			IncidentID: "1", Coordinates: at(-7.2300, 107.9050),
		},
		{
			ID: "3", Title: "Kaji kerusakan struktural di Jembatan B", Assignee: "Emily White", AssigneeAvatar: avatar("emily"),
			Status: models.TaskOpen, Type: models.TaskRescue, DueDate: "5 hari lagi", Priority: models.PriorityHigh,
			IncidentID: "4", Coordinates: at(-6.9200, 106.9300),
		},
		{
			ID: "4", Title: "Siapkan penampungan sementara di Balai Kota", Assignee: "Michael B.", AssigneeAvatar: avatar("michael"),
			Status: models.TaskInProgress, Type: models.TaskRescue, DueDate: "Hari Ini", Priority: models.PriorityHigh,
			IncidentID: "1", Coordinates: at(-7.2200, 107.9000),
			Resources: []models.Resource{{Item: "Tenda", Quantity: 15, Unit: "unit"}, {Item: "Selimut", Quantity: 100, Unit: "pcs"}},
		},
		{
			ID: "5", Title: "Bagikan paket makanan di Sektor 4", Assignee: "Jane Doe", AssigneeAvatar: avatar("jane"),
			Status: models.TaskInProgress, Type: models.TaskLogistics, DueDate: "2 hari lagi", Priority: models.PriorityMedium,
			IncidentID: "1", Coordinates: at(-7.2350, 107.9150),
			Resources: []models.Resource{{Item: "Paket makanan", Quantity: 250, Unit: "paket"}},
		},
		{
			ID: "6", Title: "Evakuasi warga dari zona banjir A", Assignee: "Emily White", AssigneeAvatar: avatar("emily"),
			Status: models.TaskDone, Type: models.TaskRescue, DueDate: "Kemarin", Priority: models.PriorityHigh,
			IncidentID: "1", Coordinates: at(-7.2280, 107.9080),
		},
	}
}
