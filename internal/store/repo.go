package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Filter restricts to one purpose (LLM events) or module (grades).
	Filter string
}

// LLMRequestEventData captures a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// GradeEventData captures the outcome of one grading request.
type GradeEventData struct {
	ProblemID      string
	Module         string
	Score          int
	IsCorrect      bool
	Fallback       bool
	FallbackReason string
	Model          string
	LatencyMs      int64
}

// GradeEvent is a stored grading outcome.
type GradeEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GradeEventData
}

// ModuleStats summarizes grading outcomes for one module.
type ModuleStats struct {
	Module    string
	Attempts  int
	Correct   int
	Fallbacks int
	AvgScore  float64
}

// LLMRecorder records LLM requests.
type LLMRecorder interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// GradeRecorder records grading outcomes.
type GradeRecorder interface {
	AppendGrade(ctx context.Context, data GradeEventData) error
}

// EventRepo provides append and query access to stored events.
type EventRepo interface {
	LLMRecorder
	GradeRecorder

	// QueryLLMEvents returns LLM events newest first. Filter matches purpose.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// QueryGrades returns grade events newest first. Filter matches module.
	QueryGrades(ctx context.Context, opts QueryOpts) ([]GradeEvent, error)

	GradeStatsByModule(ctx context.Context) ([]ModuleStats, error)
}
