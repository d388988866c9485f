package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetContainersQueryIsNotConstructed = errors.New(
		"GetContainersQuery must be created via NewGetContainersQuery constructor",
	)
)

// GetContainersQuery lists every container ordered by code.
//
// Example:
//
//	query := NewGetContainersQuery()
//	handler := NewGetContainersQueryHandler(db)
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list containers: %w", err)
//	}
type GetContainersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetContainersQuery() GetContainersQuery {
	return GetContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetContainersQueryIsNotConstructed)
}
