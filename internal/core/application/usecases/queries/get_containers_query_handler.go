package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetContainersQueryHandler reads container views with raw SQL.
type GetContainersQueryHandler struct {
	db *gorm.DB
}

func NewGetContainersQueryHandler(db *gorm.DB) GetContainersQueryHandler {
	return GetContainersQueryHandler{db: db}
}

// Handle returns all containers sorted by code; an empty store yields an
// empty, non-nil slice.
func (h GetContainersQueryHandler) Handle(ctx context.Context, query GetContainersQuery) ([]ContainerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanContainerViews(ctx, h.db, selectContainerViews+" ORDER BY c.code")
}
