// Package quiz implements the quiz session engine: question sets, the
// per-session state machine, scoring, and the end-of-session summary.
// It has zero external dependencies — everything here is pure Go.
package quiz

import "errors"

var (
	// ErrEmptyQuestionSet is returned when a session is started with no questions.
	ErrEmptyQuestionSet = errors.New("quiz: empty question set")
	// ErrInvalidOption is returned for an option index outside the current question.
	ErrInvalidOption = errors.New("quiz: option index out of range")
	// ErrNotFinished is returned when Summary is requested before the session ends.
	ErrNotFinished = errors.New("quiz: session not finished")
)

// Question is a single quiz question. Immutable once a category set is built.
type Question struct {
	Text         string
	MediaRef     string
	Options      []string
	CorrectIndex int
}

// CategorySet is a fixed ordered sequence of questions played as one session.
type CategorySet struct {
	Slug      string
	Name      string
	Questions []Question
}

// Phase is the lifecycle stage of a session for the current question.
type Phase int

const (
	// PhaseAnswering: waiting for the learner to pick an option.
	PhaseAnswering Phase = iota
	// PhaseRevealing: an answer is locked in, reveal timer is running.
	PhaseRevealing
	// PhaseFinished: the last question's reveal elapsed, score is final.
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseRevealing:
		return "revealing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Tier is the feedback bucket derived from the final score.
type Tier int

const (
	TierKeepPracticing Tier = iota
	TierImproving
	TierGreatJob
)

// TierFor classifies a final score. Boundaries are inclusive:
// below 3 keep practicing, 3 through 7 improving, above 7 great job.
func TierFor(correct int) Tier {
	switch {
	case correct < 3:
		return TierKeepPracticing
	case correct <= 7:
		return TierImproving
	default:
		return TierGreatJob
	}
}

// Message returns the feedback line shown on the final screen.
func (t Tier) Message() string {
	switch t {
	case TierKeepPracticing:
		return "You should keep practicing"
	case TierImproving:
		return "You're improving, keep it up!"
	case TierGreatJob:
		return "You did great, congratulations!"
	}
	return ""
}

// Summary is the end-of-session result.
type Summary struct {
	Correct int
	Total   int
	Tier    Tier
}
