package gradeService

import (
	"errors"

	"betBookBot/models"
)

var (
	// ErrAlreadyGraded means the record already holds a terminal result.
	// Grading is one-shot; callers surface this instead of overwriting.
	ErrAlreadyGraded = errors.New("record already graded")

	// ErrInvalidDecision means the decision is not win, loss, or push.
	ErrInvalidDecision = errors.New("invalid grading decision")
)

// Apply runs the grading transition: pending -> {win, loss, push}. An empty
// current value counts as pending, matching records created before the result
// column carried a default.
func Apply(current, decision models.Result) (models.Result, error) {
	if !decision.Terminal() {
		return current, ErrInvalidDecision
	}
	if current != models.ResultPending && current != "" {
		return current, ErrAlreadyGraded
	}
	return decision, nil
}
