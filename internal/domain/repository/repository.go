// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// EntityRepository is the generic repository capability shared by every entity
// type. Each entity gets a concrete instance of this same interface shape;
// entity-specific lookups are added by embedding it in a per-entity interface.
type EntityRepository[E any] interface {
	// FindByID retrieves a single entity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// Create stages a new entity for persistence. Whether the write is visible
	// immediately or at the end of the enclosing unit of work is up to the
	// implementation; callers needing a durability boundary go through the
	// TransactionManager.
	Create(ctx context.Context, e *E) error
}
