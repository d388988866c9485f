// Package containerrepo persists container aggregates with GORM.
// It maps the aggregate to the containers table and writes only the columns
// an aggregate reports as changed.
package containerrepo

import (
	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ContainerDTO is the row shape of the containers table. SKU, quantity and
// status are nullable: empty containers carry no SKU or quantity, and rows
// written by other tools may carry no status.
type ContainerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	SKU        *string   `gorm:"column:sku;type:varchar(64);index"`
	Quantity   *int      `gorm:"type:integer"`
	Status     *string   `gorm:"type:varchar(32);index"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for containers.
func (ContainerDTO) TableName() string {
	return "containers"
}

// columns maps aggregate fields to the columns they are stored in.
func columns() map[container.Field]string {
	return map[container.Field]string{
		container.FieldSKU:      "sku",
		container.FieldQuantity: "quantity",
		container.FieldStatus:   "status",
		container.FieldLocation: "location_id",
	}
}

func fromDomain(c *container.Container) ContainerDTO {
	status := c.Status().String()
	dto := ContainerDTO{
		ID:         c.ID().Bytes(),
		Code:       c.Code().String(),
		Status:     &status,
		LocationID: c.LocationID().Bytes(),
	}

	if sku, ok := c.SKU(); ok {
		raw := sku.String()
		dto.SKU = &raw
	}
	if qty, ok := c.Quantity(); ok {
		dto.Quantity = &qty
	}

	return dto
}

// changedColumns returns the column values for the fields c reports as changed.
// Absent SKU and quantity map to NULL.
func changedColumns(c *container.Container) map[string]any {
	dto := fromDomain(c)
	values := map[container.Field]any{
		container.FieldSKU:      dto.SKU,
		container.FieldQuantity: dto.Quantity,
		container.FieldStatus:   dto.Status,
		container.FieldLocation: dto.LocationID,
	}

	names := columns()
	updates := make(map[string]any)
	for _, field := range c.Changes() {
		updates[names[field]] = values[field]
	}
	return updates
}

// toDomain rebuilds the aggregate from a row. A NULL or unrecognized status
// loads as container.Unknown and the stored text is left as it is until the
// status column is written again. Any other inconsistency is reported as
// invalid stored state.
func toDomain(dto ContainerDTO) (*container.Container, error) {
	c, err := restore(dto)
	if err != nil {
		return nil, errs.NewStoredStateIsInvalidError("container", dto.Code, err)
	}
	return c, nil
}

func restore(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewCode("code", dto.Code)
	if err != nil {
		return nil, err
	}

	var sku kernel.Code
	if dto.SKU != nil {
		if sku, err = kernel.NewCode("sku", *dto.SKU); err != nil {
			return nil, err
		}
	}

	status := container.Unknown
	if dto.Status != nil {
		if parsed, parseErr := container.ParseStatus(*dto.Status); parseErr == nil {
			status = parsed
		}
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(id, code, sku, dto.Quantity, status, locationID)
}
