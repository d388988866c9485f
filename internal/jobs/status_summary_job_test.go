package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSummaryHandler struct {
	mock.Mock
}

func (m *MockSummaryHandler) Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.StatusSummary), args.Error(1)
}

type recordingGauges struct {
	mu            sync.Mutex
	calls         int
	total         int
	withoutStatus int
	byStatus      map[string]int
}

func (g *recordingGauges) SetContainers(total, withoutStatus int, byStatus map[string]int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.total = total
	g.withoutStatus = withoutStatus
	g.byStatus = byStatus
}

func TestStatusSummaryJob_Run_PublishesCounts(t *testing.T) {
	handler := new(MockSummaryHandler)
	gauges := &recordingGauges{}
	summary := queries.StatusSummary{Total: 4, Unknown: 1, ByStatus: map[string]int{"Stored": 2, "Idle": 1}}
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetStatusSummaryQuery")).Return(summary, nil).Once()

	job := jobs.NewStatusSummaryJob(handler, gauges, "", slog.New(slog.DiscardHandler))
	job.Run(t.Context())

	assert.Equal(t, 1, gauges.calls)
	assert.Equal(t, 4, gauges.total)
	assert.Equal(t, 1, gauges.withoutStatus)
	assert.Equal(t, map[string]int{
		"Idle":       1,
		"Pending_QC": 0,
		"Stored":     2,
		"QC_Hold":    0,
		"In_Transit": 0,
		"Empty":      0,
	}, gauges.byStatus)
	handler.AssertExpectations(t)
}

func TestStatusSummaryJob_Run_KeepsGaugesOnFailure(t *testing.T) {
	handler := new(MockSummaryHandler)
	gauges := &recordingGauges{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.StatusSummary{}, errors.New("database is down")).Once()

	job := jobs.NewStatusSummaryJob(handler, gauges, "", slog.New(slog.DiscardHandler))
	job.Run(t.Context())

	assert.Zero(t, gauges.calls)
	handler.AssertExpectations(t)
}

func TestStatusSummaryJob_Start_RunsImmediately(t *testing.T) {
	handler := new(MockSummaryHandler)
	gauges := &recordingGauges{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.StatusSummary{ByStatus: map[string]int{}}, nil)

	job := jobs.NewStatusSummaryJob(handler, gauges, "@every 1h", slog.New(slog.DiscardHandler))
	require.NoError(t, job.Start())
	job.Stop()

	gauges.mu.Lock()
	defer gauges.mu.Unlock()
	assert.Equal(t, 1, gauges.calls)
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	handler := new(MockSummaryHandler)

	manager := jobs.NewJobManager(handler, &recordingGauges{}, "not a schedule", slog.New(slog.DiscardHandler))
	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status summary job")
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
