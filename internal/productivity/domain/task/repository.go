package task

import "context"

// Repository defines the interface for task persistence.
type Repository interface {
	// Create stores a new record and assigns its ID.
	Create(ctx context.Context, r *Record) error
	// Update replaces an existing record. Missing records yield ErrTaskNotFound.
	Update(ctx context.Context, r *Record) error
	FindByID(ctx context.Context, id int64) (*Record, error)
	// List returns every record in ID order.
	List(ctx context.Context) ([]*Record, error)
	// Delete removes a record. Missing records yield ErrTaskNotFound.
	Delete(ctx context.Context, id int64) error
}
