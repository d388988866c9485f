package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetContainerQueryHandler struct {
	db *gorm.DB
}

func NewGetContainerQueryHandler(db *gorm.DB) GetContainerQueryHandler {
	return GetContainerQueryHandler{db: db}
}

// Handle returns the container view, or errs.ObjectNotFoundError when no
// container has the code.
func (h GetContainerQueryHandler) Handle(ctx context.Context, query GetContainerQuery) (ContainerView, error) {
	if err := query.Validate(); err != nil {
		return ContainerView{}, err
	}

	code := query.Code().String()
	views, err := scanContainerViews(ctx, h.db, selectContainerViews+" WHERE c.code = ?", code)
	if err != nil {
		return ContainerView{}, err
	}

	if len(views) == 0 {
		return ContainerView{}, errs.NewObjectNotFoundError("container", code)
	}
	return views[0], nil
}
