package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var gradeEventColumns = []string{
	"id", "sequence", "timestamp", "problem_id", "module", "score",
	"is_correct", "fallback", "fallback_reason", "model", "latency_ms",
}

func (r *eventRepo) AppendGrade(ctx context.Context, data GradeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := builder().Insert(gradeEventsTable).
		Columns(gradeEventColumns[1:]...).
		Values(
			seqNum, time.Now().UTC(), data.ProblemID, data.Module, data.Score,
			data.IsCorrect, data.Fallback, data.FallbackReason, data.Model, data.LatencyMs,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save grade event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGrades(ctx context.Context, opts QueryOpts) ([]GradeEvent, error) {
	sel := builder().Select(gradeEventColumns...).From(entsql.Table(gradeEventsTable))
	applyOpts(sel, opts, "module")
	q, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}
	defer rows.Close()

	var out []GradeEvent
	for rows.Next() {
		var e GradeEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.ProblemID, &e.Module, &e.Score,
			&e.IsCorrect, &e.Fallback, &e.FallbackReason, &e.Model, &e.LatencyMs,
		); err != nil {
			return nil, fmt.Errorf("scan grade event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GradeStatsByModule(ctx context.Context) ([]ModuleStats, error) {
	q, args := builder().Select(
		"module",
		entsql.As(entsql.Count("*"), "attempts"),
		entsql.As(entsql.Sum("is_correct"), "correct"),
		entsql.As(entsql.Sum("fallback"), "fallbacks"),
		entsql.As(entsql.Avg("score"), "avg_score"),
	).
		From(entsql.Table(gradeEventsTable)).
		GroupBy("module").
		OrderBy("module").
		Query()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query grade stats: %w", err)
	}
	defer rows.Close()

	var out []ModuleStats
	for rows.Next() {
		var s ModuleStats
		if err := rows.Scan(&s.Module, &s.Attempts, &s.Correct, &s.Fallbacks, &s.AvgScore); err != nil {
			return nil, fmt.Errorf("scan grade stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
