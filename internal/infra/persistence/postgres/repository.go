package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormRepository is the generic GORM implementation of the domain's
// EntityRepository capability. Each entity type instantiates it with its own
// model mapping; entity-specific lookups build on findOne.
type gormRepository[E any, M any] struct {
	db          *gorm.DB
	notFoundErr error         // domain sentinel returned for record-not-found
	toDomain    func(*M) *E   // persistence model -> domain entity
	fromDomain  func(*E) *M   // domain entity -> persistence model
	afterCreate func(*M, *E)  // copies DB-generated values back onto the entity
	onCreateErr func(error) error
}

// FindByID retrieves a single entity by its unique ID.
func (repo *gormRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// findOne retrieves a single entity matching the given predicate, mapping
// record-not-found onto the repository's domain sentinel.
func (repo *gormRepository[E, M]) findOne(ctx context.Context, query string, args ...any) (*E, error) {
	var m M
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.notFoundErr
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return repo.toDomain(&m), nil
}

// Create persists a new entity and copies generated values (identifier,
// timestamps) back onto it.
func (repo *gormRepository[E, M]) Create(ctx context.Context, e *E) error {
	m := repo.fromDomain(e)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if repo.onCreateErr != nil {
			return repo.onCreateErr(err)
		}

		return errors.Wrap(err, "failed to create record")
	}

	if repo.afterCreate != nil {
		repo.afterCreate(m, e)
	}

	return nil
}
