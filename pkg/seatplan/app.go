package seatplan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"seatplan/pkg/seatplan/client"
	"seatplan/pkg/seatplan/datetime"
	"seatplan/pkg/seatplan/export"
	"seatplan/pkg/seatplan/group"
	"seatplan/pkg/seatplan/models"
	"seatplan/pkg/seatplan/render"
	"seatplan/pkg/seatplan/validate"
)

// Session holds the most recent allocation outcome shared by the table and
// document views. It is replaced wholesale on each successful allocation
// and never partially mutated.
type Session struct {
	// Result is the last successful allocation response.
	Result *models.AllocationResult
	// Schedule holds the resolved exam date and time display strings.
	Schedule models.ExamSchedule
}

// App owns the session state and the command handlers the CLI binds to.
// At most one allocation request is in flight at a time; a concurrent
// attempt is rejected with ErrAllocationInFlight rather than racing on the
// session.
type App struct {
	client *client.Client
	logger *zap.Logger
	header export.Header

	mu       sync.Mutex
	inFlight bool
	session  Session
}

// New creates an App using the given allocation client.
func New(c *client.Client, header export.Header, logger *zap.Logger) *App {
	return &App{
		client: c,
		logger: logger,
		header: header,
	}
}

// Allocate validates the inputs, resolves the exam schedule, calls the
// allocation service, and replaces the session on success. Validation
// failures never reach the network.
func (a *App) Allocate(ctx context.Context, in models.Inputs) (*models.AllocationResult, error) {
	params, err := validate.Check(in)
	if err != nil {
		return nil, err
	}

	schedule, err := buildSchedule(params)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return nil, ErrAllocationInFlight
	}
	a.inFlight = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.inFlight = false
		a.mu.Unlock()
	}()

	result, err := a.client.Allocate(ctx, params)
	if err != nil {
		return nil, err
	}

	a.checkTotals(result)

	a.mu.Lock()
	a.session = Session{Result: result, Schedule: schedule}
	a.mu.Unlock()
	return result, nil
}

// Session returns a copy of the current session.
func (a *App) Session() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Table builds the merge-annotated table view from the current session.
// The grouping is recomputed from the held result on every call, never
// cached across allocations.
func (a *App) Table() (render.Table, error) {
	s := a.Session()
	if s.Result == nil {
		return render.Table{}, ErrNoResult
	}

	g := group.ByRoom(s.Result.Allocation)
	sum := render.Summary{
		RoomsUsed:      s.Result.RoomsUsed,
		TotalAllocated: s.Result.TotalAllocated,
		Date:           s.Schedule.DateWithDay,
		TimeRange:      s.Schedule.TimeRange,
	}
	return render.Build(g, sum), nil
}

// Export writes the seating-arrangement document into dir and returns the
// artifact path. With no successful allocation held it is a guarded no-op:
// no artifact, no error.
func (a *App) Export(dir string) (string, error) {
	s := a.Session()
	if s.Result == nil {
		return "", nil
	}

	g := group.ByRoom(s.Result.Allocation)
	sum := render.Summary{
		RoomsUsed:      s.Result.RoomsUsed,
		TotalAllocated: s.Result.TotalAllocated,
		Date:           s.Schedule.DateWithDay,
		TimeRange:      s.Schedule.TimeRange,
	}
	data, err := export.Document(g, sum, s.Schedule, export.Options{Header: a.header})
	if err != nil {
		return "", fmt.Errorf("building document: %w", err)
	}

	path := filepath.Join(dir, export.Filename(s.Schedule.Date))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}

	a.logger.Info("Exported seating arrangement",
		zap.String("path", path),
		zap.Int("rooms", len(g.Order)),
	)
	return path, nil
}

// checkTotals compares the response summary fields against the record list
// and logs any mismatch. The response is rendered as-is either way.
func (a *App) checkTotals(result *models.AllocationResult) {
	g := group.ByRoom(result.Allocation)
	if len(g.Order) != result.RoomsUsed {
		a.logger.Warn("rooms_used does not match grouped room count",
			zap.Int("rooms_used", result.RoomsUsed),
			zap.Int("grouped_rooms", len(g.Order)),
		)
	}

	total := 0
	for _, rec := range result.Allocation {
		total += rec.TotalStudents
	}
	if total != result.TotalAllocated {
		a.logger.Warn("total_allocated does not match record sum",
			zap.Int("total_allocated", result.TotalAllocated),
			zap.Int("record_sum", total),
		)
	}
}

// buildSchedule resolves the display strings for the validated date and
// time range.
func buildSchedule(p models.ValidatedParameters) (models.ExamSchedule, error) {
	dateWithDay, err := datetime.DisplayDate(p.Date)
	if err != nil {
		return models.ExamSchedule{}, err
	}
	timeRange, err := datetime.TimeRange(p.StartTime, p.EndTime)
	if err != nil {
		return models.ExamSchedule{}, err
	}
	return models.ExamSchedule{
		Date:        p.Date,
		DateWithDay: dateWithDay,
		TimeRange:   timeRange,
	}, nil
}
