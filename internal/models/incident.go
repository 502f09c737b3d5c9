package models

import "time"

type IncidentStatus string

const (
	IncidentActive   IncidentStatus = "Active"
	IncidentResolved IncidentStatus = "Resolved"
	IncidentArchived IncidentStatus = "Archived"
)

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Coordinates точка на карте в градусах WGS84
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Incident struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	DateReported time.Time      `json:"date_reported"`
	Status       IncidentStatus `json:"status"`
	Severity     Severity       `json:"severity"`
	Coordinates  Coordinates    `json:"coordinates"`
}

func (i Incident) Key() string { return i.ID }

func (i Incident) Clone() Incident { return i }
