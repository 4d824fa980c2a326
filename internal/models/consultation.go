package models

import (
	"time"
)

// ConsultationPriceINR and ConsultationMinutes describe the paid consultant call.
const (
	ConsultationPriceINR = 499
	ConsultationMinutes  = 45
)

// ConsultationType records where the booking came from.
type ConsultationType string

const (
	ConsultationGeneral        ConsultationType = "general"
	ConsultationRecommendation ConsultationType = "recommendation"
)

// PreferredTime is the callback slot the user picked.
type PreferredTime string

const (
	TimeMorning   PreferredTime = "morning"
	TimeAfternoon PreferredTime = "afternoon"
	TimeEvening   PreferredTime = "evening"
)

// ConsultationStatus tracks a lead through the sales desk.
type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusConfirmed ConsultationStatus = "confirmed"
	StatusCancelled ConsultationStatus = "cancelled"
)

// ConsultationRequest is the booking form body.
type ConsultationRequest struct {
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	PreferredTime PreferredTime    `json:"preferred_time"`
	Notes         string           `json:"notes"`
	Type          ConsultationType `json:"type"`
}

// Consultation is a stored lead.
type Consultation struct {
	ID            string             `bson:"_id" json:"id"`
	SessionID     string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Phone         string             `bson:"phone" json:"phone"`
	PreferredTime PreferredTime      `bson:"preferred_time" json:"preferred_time"`
	Notes         string             `bson:"notes" json:"notes"`
	Type          ConsultationType   `bson:"type" json:"type"`
	Status        ConsultationStatus `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// IsValidPreferredTime checks if a callback slot is known
func IsValidPreferredTime(t PreferredTime) bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return true
	default:
		return false
	}
}

// IsValidConsultationType checks if a booking source is known
func IsValidConsultationType(t ConsultationType) bool {
	switch t {
	case ConsultationGeneral, ConsultationRecommendation:
		return true
	default:
		return false
	}
}
