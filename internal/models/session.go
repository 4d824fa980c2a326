package models

import (
	"time"
)

// SessionClaims are the validated contents of a wizard session token.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	Exp       int64  `json:"exp"`
}

// StoredProfile is a wizard profile saved against an anonymous session.
type StoredProfile struct {
	SessionID string        `bson:"session_id" json:"session_id"`
	Profile   WizardProfile `bson:"profile" json:"profile"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
