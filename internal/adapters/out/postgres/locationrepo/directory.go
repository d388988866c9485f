package locationrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationDirectory implements ports.LocationDirectory using GORM.
type GormLocationDirectory struct {
	db *gorm.DB
}

func NewGormLocationDirectory(db *gorm.DB) *GormLocationDirectory {
	return &GormLocationDirectory{db: db}
}

// Resolve returns the identifier of the location with the given code.
func (d *GormLocationDirectory) Resolve(ctx context.Context, code kernel.Code) (kernel.UUID, error) {
	if err := code.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto LocationDTO
	if err := d.db.WithContext(ctx).Where("code = ?", code.String()).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("location", code.String())
		}
		return kernel.UUID{}, err
	}

	loc, err := toDomain(dto)
	if err != nil {
		return kernel.UUID{}, err
	}
	return loc.ID(), nil
}

// Seed inserts the locations whose codes are missing and leaves existing
// ones untouched. It returns the number of rows inserted.
func Seed(ctx context.Context, db *gorm.DB, codes []kernel.Code) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	rows := make([]LocationDTO, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, LocationDTO{ID: uuid.New(), Code: code.String()})
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&rows)
	return result.RowsAffected, result.Error
}
