package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetContainerQueryIsNotConstructed = errors.New(
		"GetContainerQuery must be created via NewGetContainerQuery constructor",
	)
)

// GetContainerQuery looks up one container by code.
type GetContainerQuery struct {
	code  kernel.Code
	guard guard.ConstructorGuard
}

// NewGetContainerQuery validates the code the same way commands do: it is
// trimmed and must not be blank.
func NewGetContainerQuery(code string) (GetContainerQuery, error) {
	c, err := kernel.NewCode("code", code)
	if err != nil {
		return GetContainerQuery{}, err
	}

	return GetContainerQuery{code: c, guard: guard.NewConstructorGuard()}, nil
}

func (q GetContainerQuery) Code() kernel.Code {
	return q.code
}

// Validate ensures the query was created through the constructor.
func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}
