// Package dispatch picks a model for a drafting request and walks the ordered
// credential list until one generation call succeeds.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"legal-drafting-be/internal/entity"
	"legal-drafting-be/pkg/llm"
)

// LongFactsThreshold is the facts length (in characters) above which the
// large model is chosen automatically. Exactly this many characters still
// selects the small model.
const LongFactsThreshold = 1200

// OfflineLabel is reported when no credential produced a draft.
const OfflineLabel = "Offline"

var (
	ErrNoCredentials        = errors.New("no generation credentials configured")
	ErrAllCredentialsFailed = errors.New("every generation credential failed")
)

// Credential is one labelled entry of the rotation list.
type Credential struct {
	Label    string
	Provider llm.LLMProvider
}

// Models names the automatic choices.
type Models struct {
	Small string
	Large string
}

// Attempt records one failed call.
type Attempt struct {
	Label string
	Kind  llm.FailureKind
	Err   error
}

// Result is either a success with text or a failure with the attempts that
// led to it. Elapsed is zero on failure.
type Result struct {
	Text     string
	Label    string
	Model    string
	Elapsed  time.Duration
	Attempts []Attempt
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Source is the user-facing tag: "label (model)" or "Offline".
func (r Result) Source() string {
	if !r.OK() {
		return OfflineLabel
	}
	return fmt.Sprintf("%s (%s)", r.Label, r.Model)
}

// ElapsedSeconds is the wall-clock time rounded to one decimal.
func (r Result) ElapsedSeconds() float64 {
	return math.Round(r.Elapsed.Seconds()*10) / 10
}

// SelectModel applies the role gate and the length heuristic. Only a
// privileged caller may pin a model; everyone else gets automatic selection.
func SelectModel(role entity.UserRole, requested, facts string, models Models) string {
	if !role.IsPrivileged() || requested == "" {
		requested = entity.ModelAuto
	}
	if requested != entity.ModelAuto {
		return requested
	}
	if utf8.RuneCountInString(facts) > LongFactsThreshold {
		return models.Large
	}
	return models.Small
}

type Dispatcher struct {
	credentials []Credential
	models      Models
	timeout     time.Duration
	call        []llm.Option
	now         func() time.Time
}

type DispatcherOption func(*Dispatcher)

// WithTimeout bounds each individual attempt.
func WithTimeout(d time.Duration) DispatcherOption {
	return func(dp *Dispatcher) {
		dp.timeout = d
	}
}

// WithCallOptions adds generation options to every attempt. The selected
// model always wins over a model set here.
func WithCallOptions(opts ...llm.Option) DispatcherOption {
	return func(dp *Dispatcher) {
		dp.call = append(dp.call, opts...)
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) DispatcherOption {
	return func(dp *Dispatcher) {
		dp.now = now
	}
}

func NewDispatcher(credentials []Credential, models Models, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		credentials: credentials,
		models:      models,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Models() Models {
	return d.models
}

func (d *Dispatcher) Labels() []string {
	labels := make([]string, len(d.credentials))
	for i, c := range d.credentials {
		labels[i] = c.Label
	}
	return labels
}

// Dispatch sends prompt to the selected model, one attempt per credential in
// order, and returns the first success. The prompt is not validated.
func (d *Dispatcher) Dispatch(ctx context.Context, prompt, facts, requested string, role entity.UserRole) Result {
	model := SelectModel(role, requested, facts, d.models)
	return d.DispatchModel(ctx, prompt, model)
}

// DispatchModel runs the rotation against an already chosen model.
func (d *Dispatcher) DispatchModel(ctx context.Context, prompt, model string) Result {
	if len(d.credentials) == 0 {
		return Result{Model: model, Err: ErrNoCredentials}
	}

	start := d.now()
	attempts := make([]Attempt, 0, len(d.credentials))
	for _, cred := range d.credentials {
		text, err := d.attempt(ctx, cred, prompt, model)
		if err == nil {
			return Result{
				Text:     text,
				Label:    cred.Label,
				Model:    model,
				Elapsed:  d.now().Sub(start),
				Attempts: attempts,
			}
		}
		attempts = append(attempts, Attempt{Label: cred.Label, Kind: llm.Classify(err), Err: err})
	}

	return Result{
		Model:    model,
		Attempts: attempts,
		Err:      fmt.Errorf("%w: %d attempts", ErrAllCredentialsFailed, len(attempts)),
	}
}

func (d *Dispatcher) attempt(ctx context.Context, cred Credential, prompt, model string) (string, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	opts := append(append([]llm.Option(nil), d.call...), llm.WithModel(model))
	return cred.Provider.Generate(ctx, prompt, opts...)
}
