package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"tour-weather/internal/types"
)

// State is the orchestration state owned by a Runner. Data always holds
// either the previous complete result list or a new complete one, never a
// partial mix.
type State struct {
	Data    []types.TourCityForecast
	Loading bool
	Error   string
}

// Pipeline is the run operation a Runner drives. *Service implements it.
type Pipeline interface {
	TourForecasts(ctx context.Context, in Input) ([]types.TourCityForecast, error)
}

// Runner owns one orchestration state and applies the pipeline's transition
// rules to it:
//
//   - a refresh with a previous result keeps it visible and only clears the
//     error, so consumers don't flicker back to a loading screen
//   - a failed run preserves the previous data and surfaces one generic,
//     localized error string
//   - a refresh supersedes and cancels any in-flight run; a superseded or
//     cancelled run never mutates the state, even when its network calls
//     resolve later
//
// Refresh blocks until its run finishes or is superseded; callers that want
// fire-and-forget semantics run it on their own goroutine.
type Runner struct {
	pipeline Pipeline
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	gen    uint64
}

// NewRunner creates a runner around a pipeline with an empty state.
func NewRunner(pipeline Pipeline, logger *slog.Logger) *Runner {
	return &Runner{
		pipeline: pipeline,
		logger:   logger.With("component", "pipeline-runner"),
	}
}

// State returns a snapshot of the current orchestration state. The Data slice
// is shared and must be treated as read-only.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Refresh starts a new run for the given input, superseding any run still in
// flight. An input without any text never starts a run and leaves the state
// untouched.
func (r *Runner) Refresh(in Input) {
	if in.Empty() {
		return
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.gen++
	gen := r.gen

	if len(r.state.Data) > 0 {
		// Keep the previous result visible during the refetch.
		r.state.Error = ""
	} else {
		r.state.Loading = true
		r.state.Error = ""
	}
	r.mu.Unlock()

	data, err := r.pipeline.TourForecasts(ctx, in)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen || ctx.Err() != nil {
		// Superseded or cancelled: the state belongs to a newer run now.
		return
	}
	r.cancel = nil
	cancel()

	if err != nil {
		r.logger.Warn("pipeline run failed", "error", err)
		r.state.Loading = false
		r.state.Error = localizedRunError(in.Lang)
		return
	}

	r.state = State{Data: data, Loading: false, Error: ""}
}

// Stop cancels any in-flight run. The state is left as-is; cancellation is
// not an error.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
}

// runErrorMessages holds the generic error surfaced on a failed run, per
// supported UI language. Raw errors never reach consumers.
var runErrorMessages = map[string]string{
	"en": "Unable to load weather data for this tour",
	"vi": "Không thể tải dữ liệu thời tiết cho tour này",
}

func localizedRunError(lang string) string {
	if msg, ok := runErrorMessages[lang]; ok {
		return msg
	}
	return runErrorMessages["en"]
}
