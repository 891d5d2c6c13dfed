package delivery

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists delivery records.
type Repository interface {
	// Save inserts a new delivery.
	Save(ctx context.Context, d *Delivery) error

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*Delivery, error)

	// List returns a page of deliveries, newest first, and the total number of
	// matching records. An empty status matches every delivery.
	List(ctx context.Context, status Status, page, limit int) ([]*Delivery, int64, error)
}
