package skilltest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ratto/EDaemonCore/internal/catalog"
	"github.com/ratto/EDaemonCore/internal/platform/metrics"
	id "github.com/ratto/EDaemonCore/pkg/domain"
	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks -source=service.go

// SkillStore is the skill-lookup port. Implementations must be safe for
// concurrent use across simultaneous invocations and must report a miss with
// sentinel.ErrNotFound.
type SkillStore interface {
	GetByID(ctx context.Context, skillID id.SkillID) (catalog.Skill, error)
	List(ctx context.Context) ([]catalog.Skill, error)
}

// EventSink is the event-output port. LogEvent accepts one event at a time,
// synchronously; implementations must be safe for concurrent use and must
// not fail for well-formed events under normal operation.
type EventSink interface {
	LogEvent(ctx context.Context, event Event) error
}

// Service is the skill-test orchestrator. It sequences the calculation
// pipeline - resolve skill, roll, margin - and records exactly one event per
// calculation stage, through the Recorder and out the EventSink, before the
// next stage begins.
//
// Each Execute call builds its own Recorder, so concurrent invocations share
// no mutable state and need no locks, provided the injected ports are
// themselves concurrency-safe.
type Service struct {
	skills          SkillStore
	roll            *RollService
	margin          MarginService
	sink            EventSink
	logger          *slog.Logger
	metrics         *metrics.Metrics
	clock           func() time.Time
	emitSkillLoaded bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithEventSink sets the event-output port. Without a sink, events are still
// recorded and returned on the Result; they are just not forwarded anywhere.
func WithEventSink(sink EventSink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithClock sets the event capture clock for testability.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSkillLoadedEvents makes skill resolution emit a leading skill_loaded
// event. Off by default, so a successful test records exactly
// [skill_rolled, success_margin_calculated].
func WithSkillLoadedEvents() Option {
	return func(s *Service) {
		s.emitSkillLoaded = true
	}
}

// New builds the orchestrator. The skill store and roll service are required;
// everything else is optional.
func New(skills SkillStore, roll *RollService, opts ...Option) (*Service, error) {
	if skills == nil {
		return nil, errors.New("skill store is required")
	}
	if roll == nil {
		return nil, errors.New("roll service is required")
	}

	svc := &Service{
		skills: skills,
		roll:   roll,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

var tracer = otel.Tracer("github.com/ratto/EDaemonCore/internal/skilltest")

// Execute runs one skill test to completion. On any failure the pipeline
// aborts and no partial Result is returned; port failures propagate wrapped
// in the domain taxonomy, never retried or suppressed.
func (s *Service) Execute(ctx context.Context, req Request) (*Result, error) {
	ctx, span := tracer.Start(ctx, "skilltest.Execute", trace.WithAttributes(
		attribute.String("skill.id", req.SkillID.String()),
	))
	defer span.End()

	start := s.clock()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	testID := id.NewTestID()
	recorder := NewRecorder(testID, WithRecorderClock(s.clock))

	// Stage 1: resolve the skill. Halting here leaves zero roll/margin events.
	skill, err := s.skills.GetByID(ctx, req.SkillID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "skill %q not found", req.SkillID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "skill lookup failed")
	}
	if s.emitSkillLoaded {
		if err := s.emit(ctx, recorder.Record(SkillLoadedPayload{
			SkillID:    skill.ID,
			Difficulty: skill.Difficulty,
		})); err != nil {
			return nil, err
		}
	}

	// Stage 2: roll, then record before the margin stage may begin.
	rollResult, err := s.roll.Roll(skill, req.Modifiers)
	if err != nil {
		return nil, err
	}
	if err := s.emit(ctx, recorder.Record(SkillRolledPayload{
		SkillID:       skill.ID,
		BaseRoll:      rollResult.BaseRoll,
		ModifierTotal: rollResult.ModifierTotal,
		RollValue:     rollResult.Value,
	})); err != nil {
		return nil, err
	}

	// Stage 3: margin, recorded the same way.
	margin, err := s.margin.Calculate(rollResult, skill.Difficulty)
	if err != nil {
		return nil, err
	}
	if err := s.emit(ctx, recorder.Record(SuccessMarginCalculatedPayload{
		Margin:  int(margin),
		Success: margin.Success(),
	})); err != nil {
		return nil, err
	}

	result := &Result{
		TestID:  testID,
		Skill:   skill,
		Roll:    rollResult,
		Margin:  margin,
		Success: margin.Success(),
		Events:  recorder.Snapshot(),
	}

	if s.metrics != nil {
		s.metrics.ObserveSkillTest(result.Success, rollResult.Value, s.clock().Sub(start))
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "skill test executed",
			"test_id", testID,
			"character_id", req.CharacterID,
			"skill_id", skill.ID,
			"roll_value", rollResult.Value,
			"margin", int(margin),
			"success", result.Success,
		)
	}

	return result, nil
}

// emit forwards one recorded event through the sink. A sink failure aborts
// the pipeline: the step is considered unrecorded and no later stage runs.
func (s *Service) emit(ctx context.Context, ev Event) error {
	if s.metrics != nil {
		s.metrics.IncrementEventsRecorded()
	}
	if s.sink == nil {
		return nil
	}
	if err := s.sink.LogEvent(ctx, ev); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementEventSinkFailures()
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "event sink failed")
	}
	return nil
}

func validateRequest(req Request) error {
	if req.CharacterID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "character id is required")
	}
	if req.SkillID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "skill id is required")
	}
	for name := range req.Modifiers.Values() {
		if name == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "modifier names must not be empty")
		}
	}
	return nil
}
