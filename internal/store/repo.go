package store

import (
	"context"
	"time"
)

// KVRepo is a durable string key/value store.
type KVRepo interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
}

// Quiz event actions.
const (
	ActionDraw   = "draw"
	ActionReveal = "reveal"
)

// QuizEventData captures one interaction with a flashcard.
type QuizEventData struct {
	SessionID string
	Action    string // ActionDraw or ActionReveal
	Kind      string // "disease" or "symptom"
	Prompt    string
}

// PromptCount is how often a prompt was drawn.
type PromptCount struct {
	Kind   string
	Prompt string
	Count  int
}

// QuizStats aggregates the quiz event log.
type QuizStats struct {
	Draws       int
	Reveals     int
	Sessions    int
	DrawsByKind map[string]int
	TopPrompts  []PromptCount
}

// SessionSummary aggregates the events of one practice session.
type SessionSummary struct {
	SessionID string
	Started   time.Time
	Ended     time.Time
	Draws     int
	Reveals   int
}

// DrawRecord is one drawn card.
type DrawRecord struct {
	SessionID string
	Kind      string
	Prompt    string
}

// EventRepo provides append access to quiz events and aggregate queries.
type EventRepo interface {
	// AppendQuizEvent records a draw or reveal.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QuizStats aggregates all events. top limits TopPrompts (0 = none).
	QuizStats(ctx context.Context, top int) (*QuizStats, error)

	// RecentSessions returns per-session summaries, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// SessionDraws returns the cards drawn in the given sessions in draw order.
	SessionDraws(ctx context.Context, sessionIDs []string) ([]DrawRecord, error)
}
