// Package locationrepo resolves pre-provisioned warehouse locations.
package locationrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO is the row shape of the locations table.
type LocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewCode("location code", dto.Code)
	if err != nil {
		return nil, err
	}

	return location.NewLocation(id, code)
}
