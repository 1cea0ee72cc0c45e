package grading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/store"
)

// Fallback texts used when the grading service cannot be reached.
const (
	FallbackFeedback   = "There was an error connecting to the grading assistant. Please check your internet connection."
	FallbackCritique   = "Unable to analyse reasoning."
	errEmptyAssessment = "empty assessment"
)

// Config controls grading requests.
type Config struct {
	// Timeout bounds one grading call, retries included.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the grading defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Service grades submissions for every module.
type Service struct {
	provider llm.Provider
	cfg      Config
	recorder store.GradeRecorder
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder records every graded submission.
func WithRecorder(r store.GradeRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger for fallbacks and corrected corrections.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a grading service. A nil provider is allowed: every
// LLM-graded submission then gets the local fallback.
func NewService(provider llm.Provider, cfg Config, opts ...Option) *Service {
	s := &Service{provider: provider, cfg: cfg, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// assessment is the raw provider answer. Score is decoded as a float so
// "85.0" style answers still clamp.
type assessment struct {
	IsCorrect         bool               `json:"isCorrect"`
	Score             float64            `json:"score"`
	Feedback          string             `json:"feedback"`
	ReasoningCritique string             `json:"reasoningCritique"`
	Corrections       map[string]float64 `json:"corrections"`
}

// Grade assesses sub against p. Invalid problems, mismatched modules and
// incomplete submissions are errors and nothing is sent. Once the request
// is made, every provider failure resolves to a fallback result, never an
// error. Composition-change answers are checked locally.
func (s *Service) Grade(ctx context.Context, p *scenario.Problem, sub Submission) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	if sub == nil || sub.Module() != p.Module {
		got := "nil"
		if sub != nil {
			got = string(sub.Module())
		}
		return nil, fmt.Errorf("%w: %s submission for %s problem", ErrModuleMismatch, got, p.Module)
	}
	if missing := sub.Missing(); len(missing) > 0 {
		return nil, &IncompleteError{Module: p.Module, Fields: missing}
	}

	if choice, ok := sub.(*ChoiceSubmission); ok {
		res, err := CheckChoice(p, choice.OptionID)
		if err != nil {
			return nil, err
		}
		s.record(ctx, p, res, 0)
		return res, nil
	}

	if g, ok := sub.(*GoalSettingSubmission); ok {
		done := g.Completed()
		sub = &done
	}

	ref := rubrics[p.Module].reference(p, sub)

	start := time.Now()
	res, err := s.ask(ctx, p, sub)
	latency := time.Since(start)
	if err != nil {
		reason := llm.Classify(err)
		s.logger.Warn("grading fell back to local reference",
			"module", p.Module, "problem", p.ID, "reason", reason, "error", err)
		res = fallback(ref, reason)
	} else {
		s.reconcile(p, res, ref)
	}

	s.record(ctx, p, res, latency)
	return res, nil
}

// ask sends one grading request and decodes the answer.
func (s *Service) ask(ctx context.Context, p *scenario.Problem, sub Submission) (*Result, error) {
	if s.provider == nil {
		return nil, llm.ErrNoProvider
	}

	msg, err := buildPrompt(p, sub)
	if err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, llm.GradePurpose(string(p.Module)))

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      schemas[p.Module],
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Seed:        seedFor(p.ID),
	})
	if err != nil {
		return nil, err
	}

	var a assessment
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if strings.TrimSpace(a.Feedback) == "" {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New(errEmptyAssessment)}
	}

	res := &Result{
		IsCorrect:         a.IsCorrect,
		Score:             clampScore(a.Score),
		Feedback:          a.Feedback,
		ReasoningCritique: a.ReasoningCritique,
		Model:             resp.Model,
	}
	for k, v := range a.Corrections {
		res.Corrections.Set(k, v)
	}
	return res, nil
}

// seedFor maps a problem id to a stable non-negative sampling seed.
func seedFor(problemID string) *int {
	h := fnv.New32a()
	h.Write([]byte(problemID))
	seed := int(h.Sum32() & 0x7fffffff)
	return &seed
}

// reconcile keeps only the module's corrections and replaces any the
// provider got wrong or left out with the exact reference. Values the
// reference cannot define are dropped and stay undefined.
func (s *Service) reconcile(p *scenario.Problem, res *Result, ref Corrections) {
	r := rubrics[p.Module]
	var kept Corrections
	for _, key := range r.corrections {
		if ref.IsUndefined(key) {
			kept.setUndefined(key)
			continue
		}
		want, ok := ref.Get(key)
		if !ok {
			continue
		}
		got, ok := res.Corrections.Get(key)
		switch {
		case !ok:
			kept.Set(key, want)
		case !accepts(p, key, got, want, r.tolerance):
			s.logger.Warn("replaced grading correction outside tolerance",
				"module", p.Module, "problem", p.ID, "field", key, "got", got, "want", want)
			kept.Set(key, want)
		default:
			kept.Set(key, got)
		}
	}
	res.Corrections = kept
}

// accepts reports whether a provider correction is close enough to the
// reference. Skeletal muscle values are checked against the whole band.
func accepts(p *scenario.Problem, key string, got, want, tol float64) bool {
	if !finite(got) {
		return false
	}
	if p.Module == scenario.MuscleMass {
		est := muscleEstimate(p)
		switch key {
		case "smm":
			return est.SMM.Contains(got, tol)
		case "smmPercent":
			return est.Percent.Contains(got, tol)
		}
	}
	return calc.Within(got, want, tol)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampScore(v float64) int {
	if !finite(v) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

// fallback is the local result used when grading fails.
func fallback(ref Corrections, reason llm.Reason) *Result {
	return &Result{
		IsCorrect:         false,
		Score:             0,
		Feedback:          FallbackFeedback,
		ReasoningCritique: FallbackCritique,
		Corrections:       ref,
		Fallback:          true,
		FallbackReason:    string(reason),
	}
}

func (s *Service) record(ctx context.Context, p *scenario.Problem, res *Result, latency time.Duration) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.AppendGrade(context.WithoutCancel(ctx), store.GradeEventData{
		ProblemID:      p.ID,
		Module:         string(p.Module),
		Score:          res.Score,
		IsCorrect:      res.IsCorrect,
		Fallback:       res.Fallback,
		FallbackReason: res.FallbackReason,
		Model:          res.Model,
		LatencyMs:      latency.Milliseconds(),
	})
	if err != nil {
		s.logger.Warn("failed to record grade", "module", p.Module, "error", err)
	}
}
