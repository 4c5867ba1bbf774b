package gradeService

import (
	"errors"
	"testing"

	"betBookBot/models"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		current  models.Result
		decision models.Result
		expected models.Result
		err      error
	}{
		{
			name:     "Pending to win",
			current:  models.ResultPending,
			decision: models.ResultWin,
			expected: models.ResultWin,
		},
		{
			name:     "Pending to loss",
			current:  models.ResultPending,
			decision: models.ResultLoss,
			expected: models.ResultLoss,
		},
		{
			name:     "Pending to push",
			current:  models.ResultPending,
			decision: models.ResultPush,
			expected: models.ResultPush,
		},
		{
			name:     "Absent result counts as pending",
			current:  "",
			decision: models.ResultWin,
			expected: models.ResultWin,
		},
		{
			name:     "Win is terminal",
			current:  models.ResultWin,
			decision: models.ResultLoss,
			err:      ErrAlreadyGraded,
		},
		{
			name:     "Push is terminal",
			current:  models.ResultPush,
			decision: models.ResultWin,
			err:      ErrAlreadyGraded,
		},
		{
			name:     "Regrading the same decision still fails",
			current:  models.ResultWin,
			decision: models.ResultWin,
			err:      ErrAlreadyGraded,
		},
		{
			name:     "Pending is not a decision",
			current:  models.ResultPending,
			decision: models.ResultPending,
			err:      ErrInvalidDecision,
		},
		{
			name:     "Garbage decision rejected",
			current:  models.ResultPending,
			decision: "void",
			err:      ErrInvalidDecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Apply(tt.current, tt.decision)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, tt.expected, next, tt.name)
		})
	}
}

// A graded record graded a second time must fail, never silently overwrite.
func TestApply_GradeOnce(t *testing.T) {
	next, err := Apply(models.ResultPending, models.ResultWin)
	if err != nil {
		t.Fatalf("first grade failed: %v", err)
	}
	assertEqual(t, models.ResultWin, next, "first grade")

	_, err = Apply(next, models.ResultLoss)
	if !errors.Is(err, ErrAlreadyGraded) {
		t.Fatalf("expected ErrAlreadyGraded, got %v", err)
	}
}
