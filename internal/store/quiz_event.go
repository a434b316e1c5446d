package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const quizEventsTable = "quiz_events"

// eventRepo implements EventRepo backed by the quiz_events table and the
// global sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(quizEventsTable).
		Columns("sequence", "timestamp", "session_id", "action", "kind", "prompt").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.Kind, data.Prompt).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStats(ctx context.Context, top int) (*QuizStats, error) {
	stats := &QuizStats{DrawsByKind: make(map[string]int)}
	b := entsql.Dialect(dialect.SQLite)

	// Counts per action and kind.
	query, args := b.Select("action", "kind", entsql.Count("*")).
		From(entsql.Table(quizEventsTable)).
		GroupBy("action", "kind").
		Query()
	err := r.scanAll(ctx, query, args, func(rows *entsql.Rows) error {
		var action, kind string
		var n int
		if err := rows.Scan(&action, &kind, &n); err != nil {
			return err
		}
		switch action {
		case ActionDraw:
			stats.Draws += n
			stats.DrawsByKind[kind] += n
		case ActionReveal:
			stats.Reveals += n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count quiz events: %w", err)
	}

	// Distinct sessions.
	query, args = b.Select("session_id").
		From(entsql.Table(quizEventsTable)).
		Distinct().
		Query()
	err = r.scanAll(ctx, query, args, func(*entsql.Rows) error {
		stats.Sessions++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	if top <= 0 {
		return stats, nil
	}

	// Most drawn prompts.
	query, args = b.Select("kind", "prompt", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(quizEventsTable)).
		Where(entsql.EQ("action", ActionDraw)).
		GroupBy("kind", "prompt").
		OrderBy(entsql.Desc("n"), "prompt").
		Limit(top).
		Query()
	err = r.scanAll(ctx, query, args, func(rows *entsql.Rows) error {
		var pc PromptCount
		if err := rows.Scan(&pc.Kind, &pc.Prompt, &pc.Count); err != nil {
			return err
		}
		stats.TopPrompts = append(stats.TopPrompts, pc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("top prompts: %w", err)
	}

	return stats, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			"session_id",
			entsql.As(entsql.Min("timestamp"), "started"),
			entsql.As(entsql.Max("timestamp"), "ended"),
			entsql.As("SUM(CASE WHEN action = 'draw' THEN 1 ELSE 0 END)", "draws"),
			entsql.As("SUM(CASE WHEN action = 'reveal' THEN 1 ELSE 0 END)", "reveals"),
			entsql.As(entsql.Min("sequence"), "first_seq"),
		).
		From(entsql.Table(quizEventsTable)).
		GroupBy("session_id").
		OrderBy(entsql.Desc("first_seq"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var out []SessionSummary
	err := r.scanAll(ctx, query, args, func(rows *entsql.Rows) error {
		var s SessionSummary
		var started, ended, firstSeq int64
		if err := rows.Scan(&s.SessionID, &started, &ended, &s.Draws, &s.Reveals, &firstSeq); err != nil {
			return err
		}
		s.Started = time.UnixMilli(started)
		s.Ended = time.UnixMilli(ended)
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) SessionDraws(ctx context.Context, sessionIDs []string) ([]DrawRecord, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	ids := make([]any, len(sessionIDs))
	for i, id := range sessionIDs {
		ids[i] = id
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Select("session_id", "kind", "prompt").
		From(entsql.Table(quizEventsTable)).
		Where(entsql.And(
			entsql.EQ("action", ActionDraw),
			entsql.In("session_id", ids...),
		)).
		OrderBy("sequence").
		Query()

	var out []DrawRecord
	err := r.scanAll(ctx, query, args, func(rows *entsql.Rows) error {
		var d DrawRecord
		if err := rows.Scan(&d.SessionID, &d.Kind, &d.Prompt); err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session draws: %w", err)
	}
	return out, nil
}

// scanAll runs query and calls fn for every row. Rows are closed before it
// returns.
func (r *eventRepo) scanAll(ctx context.Context, query string, args []any, fn func(*entsql.Rows) error) error {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(&rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
