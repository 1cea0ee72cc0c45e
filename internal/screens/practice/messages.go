package practice

import (
	"time"

	"github.com/abhisek/nutriz/internal/grading"
)

// gradedMsg carries the outcome of an asynchronous submission.
type gradedMsg struct {
	ProblemID string
	Result    *grading.Result
	Err       error
}

// spinnerTickMsg animates the grading indicator.
type spinnerTickMsg time.Time
