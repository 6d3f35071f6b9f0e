package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outcome is what processing did with one change record.
type Outcome string

const (
	// OutcomeApplied means at least one ranking leg was applied.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoop means the record changes no ranking (zero delta).
	OutcomeNoop Outcome = "noop"
	// OutcomeIgnored means the record belongs to another entity type.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeSkipped means the athlete is not in the registry.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeRejected means the record cannot be decoded and never will be.
	OutcomeRejected Outcome = "rejected"
)

// ErrMalformedRecord marks a contest record whose shape or images are
// invalid. Retrying it cannot succeed.
var ErrMalformedRecord = errors.New("malformed change record")

// leg is one signed contribution derived from a change record.
type leg struct {
	AthleteID  string
	Discipline category.Discipline
	Year       int
	Delta      int64
}

// Processor turns contest change records into ranking updates.
type Processor struct {
	athletes storage.AthleteRegistry
	upserter *Upserter
	metrics  *Metrics
	tracer   trace.Tracer
}

// NewProcessor wires a processor. Its dependencies are explicit so tests can
// substitute the registry and stores.
func NewProcessor(athletes storage.AthleteRegistry, upserter *Upserter, metrics *Metrics) *Processor {
	return &Processor{
		athletes: athletes,
		upserter: upserter,
		metrics:  metrics,
		tracer:   otel.Tracer("ranking-processor"),
	}
}

// Process applies one change record. Persistence failures are logged here
// with their operation and parameters and returned; the record must then be
// redelivered. Redelivery is safe: every leg is applied under an ID derived
// from the record's idempotency key.
func (p *Processor) Process(ctx context.Context, rec *v1.ChangeRecord) (Outcome, error) {
	ctx, span := p.tracer.Start(ctx, "Processor.Process", trace.WithAttributes(
		attribute.String("change.event_id", rec.EventID),
		attribute.String("change.event_name", string(rec.EventName)),
		attribute.Int64("change.seq", rec.Seq),
	))
	defer span.End()

	outcome, err := p.process(ctx, rec)
	span.SetAttributes(attribute.String("change.outcome", string(outcome)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if outcome == OutcomeRejected {
			p.metrics.recordOutcome(outcome)
		} else {
			p.metrics.recordFailure("process")
		}
		return outcome, err
	}
	p.metrics.recordOutcome(outcome)
	return outcome, nil
}

func (p *Processor) process(ctx context.Context, rec *v1.ChangeRecord) (Outcome, error) {
	if !keys.IsContestKey(rec.Keys) {
		slog.Debug("[Processor] Ignoring non-contest record",
			"event_id", rec.EventID,
			"keys", rec.Keys)
		return OutcomeIgnored, nil
	}

	legs, err := legsOf(rec)
	if err != nil {
		slog.Warn("[Processor] Rejecting malformed record",
			"event_id", rec.EventID,
			"seq", rec.Seq,
			"error", err)
		return OutcomeRejected, err
	}
	if len(legs) == 0 {
		return OutcomeNoop, nil
	}

	appKey := rec.IdempotencyKey()
	athletes := make(map[string]*v1.Athlete, 1)
	applied := false

	for i, l := range legs {
		athlete, ok := athletes[l.AthleteID]
		if !ok {
			athlete, err = p.athletes.GetAthlete(ctx, l.AthleteID)
			if err != nil {
				logPersistence("[Processor] Athlete lookup failed", err)
				return "", fmt.Errorf("lookup athlete %s: %w", l.AthleteID, err)
			}
			athletes[l.AthleteID] = athlete
		}
		if athlete == nil {
			slog.Debug("[Processor] Skipping contribution of unknown athlete",
				"event_id", rec.EventID,
				"athlete_id", l.AthleteID)
			continue
		}

		res, err := p.upserter.Apply(ctx, Contribution{
			ApplicationID: fmt.Sprintf("%s:%d", appKey, i),
			Athlete:       athlete,
			Discipline:    l.Discipline,
			Year:          l.Year,
			Delta:         l.Delta,
		})
		if err != nil {
			logPersistence("[Processor] Ranking update failed", err)
			return "", fmt.Errorf("apply leg %d of %s: %w", i, rec.EventID, err)
		}
		applied = true

		slog.Debug("[Processor] Applied contribution",
			"event_id", rec.EventID,
			"athlete_id", l.AthleteID,
			"discipline", l.Discipline,
			"year", l.Year,
			"delta", l.Delta,
			"combinations", res.Combinations,
			"applied", res.Applied,
			"duplicates", res.Duplicates)
	}

	if !applied {
		return OutcomeSkipped, nil
	}
	return OutcomeApplied, nil
}

// legsOf derives the signed contributions of a contest record. A MODIFY that
// keeps the (athlete, year, discipline) bucket yields one leg with the point
// difference, or none when the points are unchanged. A MODIFY that moves the
// bucket retracts the old points from the old bucket and credits the new
// points to the new one. An INSERT always yields its leg, even at zero
// points, so the athlete's rows exist; other zero-point legs are dropped.
func legsOf(rec *v1.ChangeRecord) ([]leg, error) {
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var oldResult, newResult v1.ContestResult
	var err error
	if rec.EventName != v1.EventInsert {
		if oldResult, err = keys.UnmarshalImage(rec.OldImage); err != nil {
			return nil, fmt.Errorf("%w: old image: %v", ErrMalformedRecord, err)
		}
	}
	if rec.EventName != v1.EventRemove {
		if newResult, err = keys.UnmarshalImage(rec.NewImage); err != nil {
			return nil, fmt.Errorf("%w: new image: %v", ErrMalformedRecord, err)
		}
	}

	var legs []leg
	add := func(r v1.ContestResult, delta int64, keepZero bool) {
		if delta == 0 && !keepZero {
			return
		}
		legs = append(legs, leg{
			AthleteID:  r.AthleteID,
			Discipline: r.ContestDiscipline,
			Year:       r.Year(),
			Delta:      delta,
		})
	}

	switch rec.EventName {
	case v1.EventInsert:
		add(newResult, int64(newResult.Points), true)
	case v1.EventRemove:
		add(oldResult, -int64(oldResult.Points), false)
	case v1.EventModify:
		if sameBucket(oldResult, newResult) {
			add(newResult, int64(newResult.Points)-int64(oldResult.Points), false)
			break
		}
		add(oldResult, -int64(oldResult.Points), false)
		add(newResult, int64(newResult.Points), false)
	}
	return legs, nil
}

func sameBucket(a, b v1.ContestResult) bool {
	return a.AthleteID == b.AthleteID &&
		a.ContestDiscipline == b.ContestDiscipline &&
		a.Year() == b.Year()
}

func logPersistence(msg string, err error) {
	var perr *storage.PersistenceError
	if errors.As(err, &perr) {
		slog.Error(msg, "op", perr.Op, "params", perr.Params, "error", perr.Err)
		return
	}
	slog.Error(msg, "error", err)
}
