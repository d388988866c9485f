package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle reads the full container set and folds it with Summarize. Nothing is
// cached; every call recomputes the counts.
func (h GetStatusSummaryQueryHandler) Handle(ctx context.Context, query GetStatusSummaryQuery) (StatusSummary, error) {
	if err := query.Validate(); err != nil {
		return StatusSummary{}, err
	}

	views, err := scanContainerViews(ctx, h.db, selectContainerViews)
	if err != nil {
		return StatusSummary{}, err
	}

	return Summarize(views), nil
}
