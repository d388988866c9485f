package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
		"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
	)
)

// GetStatusSummaryQuery counts containers per status.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusSummary is the number of containers in total and per status name.
// Unknown counts the containers whose status is absent; it is kept apart from
// ByStatus so no stored status text can be mistaken for it. Unknown plus the
// ByStatus counts always equals Total.
type StatusSummary struct {
	Total    int
	Unknown  int
	ByStatus map[string]int
}

// Summarize folds container views into a StatusSummary. Present statuses are
// counted by their raw text.
func Summarize(views []ContainerView) StatusSummary {
	summary := StatusSummary{Total: len(views), ByStatus: make(map[string]int)}
	for _, view := range views {
		if view.Status == nil {
			summary.Unknown++
			continue
		}
		summary.ByStatus[*view.Status]++
	}
	return summary
}
