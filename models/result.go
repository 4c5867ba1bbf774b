package models

// Result is the grading state of a wager. Every record starts at pending and is
// moved to exactly one of the terminal states by an admin grading event.
type Result string

const (
	ResultPending Result = "pending"
	ResultWin     Result = "win"
	ResultLoss    Result = "loss"
	ResultPush    Result = "push"
)

// GradedResults holds the terminal values, in the order the admin console shows them.
var GradedResults = []Result{ResultWin, ResultLoss, ResultPush}

// Terminal reports whether r is a graded (final) state.
func (r Result) Terminal() bool {
	return r == ResultWin || r == ResultLoss || r == ResultPush
}
