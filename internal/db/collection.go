package db

import (
	"context"

	"github.com/ukydev/sahigaadi/internal/models"
)

// ConsultationCollection defines the interface for consultation lead operations.
type ConsultationCollection interface {
	InsertConsultation(ctx context.Context, consultation models.Consultation) error
	FindConsultations(ctx context.Context, limit int64) ([]models.Consultation, error)
}
