package containerrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the SQLSTATE Postgres reports for duplicate keys.
const uniqueViolation pq.ErrorCode = "23505"

// GormContainerRepository implements ports.ContainerRepository using GORM.
type GormContainerRepository struct {
	db *gorm.DB

	// lockRows makes Find take a row lock; only meaningful inside a transaction.
	lockRows bool
}

// NewGormContainerRepository creates a repository that reads without locks.
func NewGormContainerRepository(db *gorm.DB) *GormContainerRepository {
	return &GormContainerRepository{db: db}
}

// NewLockingGormContainerRepository creates a repository whose Find locks the
// row with SELECT ... FOR UPDATE. db must be a transaction.
func NewLockingGormContainerRepository(tx *gorm.DB) *GormContainerRepository {
	return &GormContainerRepository{db: tx, lockRows: true}
}

// Find retrieves a container by code, or (nil, nil) when there is none.
func (r *GormContainerRepository) Find(ctx context.Context, code kernel.Code) (*container.Container, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if r.lockRows {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ContainerDTO
	if err := query.Where("code = ?", code.String()).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add inserts a new container.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("container", dto.Code, err)
		}
		return err
	}

	aggregate.ClearChanges()
	return nil
}

// Update writes the changed columns of an existing container.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	code := aggregate.Code().String()
	updates := changedColumns(aggregate)
	if len(updates) == 0 {
		return r.ensureExists(ctx, code)
	}

	result := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("code = ?", code).Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("container", code)
	}

	aggregate.ClearChanges()
	return nil
}

func (r *GormContainerRepository) ensureExists(ctx context.Context, code string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("container", code)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
