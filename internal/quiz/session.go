package quiz

import (
	"sync"
	"time"
)

// DefaultRevealDelay is how long a chosen answer stays on screen before
// the session auto-advances to the next question.
const DefaultRevealDelay = 1000 * time.Millisecond

// noSelection marks that no option has been chosen for the current question.
const noSelection = -1

// Snapshot is an immutable view of session state handed to the rendering
// layer. The renderer observes snapshots and never mutates the session.
type Snapshot struct {
	Question       Question
	CurrentIndex   int
	TotalQuestions int
	CorrectCount   int
	SelectedOption int // noSelection (-1) until the learner answers
	Phase          Phase
}

// Answered reports whether an option has been chosen for the current question.
func (s Snapshot) Answered() bool { return s.SelectedOption != noSelection }

// Correct reports whether the chosen option was the right one.
// Only meaningful when Answered.
func (s Snapshot) Correct() bool {
	return s.Answered() && s.SelectedOption == s.Question.CorrectIndex
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithRevealDelay overrides the reveal delay. Used by tests to keep the
// timer short; production sessions use DefaultRevealDelay.
func WithRevealDelay(d time.Duration) Option {
	return func(s *Session) { s.revealDelay = d }
}

// WithObserver registers a callback invoked with a fresh Snapshot after
// every state transition. The callback runs outside the session lock and
// may fire from the reveal timer's goroutine.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Session) { s.observer = fn }
}

// Session drives one learner through one category set, exactly once,
// with no backtracking. All state transitions go through SelectAnswer
// and the reveal timer; the rest of the app only reads snapshots.
type Session struct {
	mu        sync.Mutex
	questions []Question
	current   int
	correct   int
	selected  int
	phase     Phase
	closed    bool

	revealDelay time.Duration
	timer       *time.Timer
	observer    func(Snapshot)
}

// NewSession starts a session at the first question. Returns
// ErrEmptyQuestionSet (and no session) when questions is empty.
func NewSession(questions []Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	s := &Session{
		questions:   questions,
		selected:    noSelection,
		phase:       PhaseAnswering,
		revealDelay: DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SelectAnswer locks in the learner's choice for the current question.
// Scoring happens here and nowhere else: the count goes up by one iff
// the choice matches the correct index, at most once per question. A
// second call for the same question is a no-op, so a double-submitted
// UI event cannot score twice. An out-of-range option returns
// ErrInvalidOption without touching any state.
func (s *Session) SelectAnswer(option int) error {
	s.mu.Lock()
	if s.closed || s.phase != PhaseAnswering || s.selected != noSelection {
		s.mu.Unlock()
		return nil
	}
	q := s.questions[s.current]
	if option < 0 || option >= len(q.Options) {
		s.mu.Unlock()
		return ErrInvalidOption
	}

	s.selected = option
	if option == q.CorrectIndex {
		s.correct++
	}
	s.phase = PhaseRevealing
	s.timer = time.AfterFunc(s.revealDelay, s.advance)

	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return nil
}

// advance fires on the reveal timer. On the last question it finishes
// the session and freezes the score; otherwise it moves to the next
// question and resets the selection.
func (s *Session) advance() {
	s.mu.Lock()
	if s.closed || s.phase != PhaseRevealing {
		s.mu.Unlock()
		return
	}
	if s.current == len(s.questions)-1 {
		s.phase = PhaseFinished
	} else {
		s.current++
		s.selected = noSelection
		s.phase = PhaseAnswering
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Summary returns the final result. Valid only once the session has
// reached PhaseFinished.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFinished {
		return Summary{}, ErrNotFinished
	}
	return Summary{
		Correct: s.correct,
		Total:   len(s.questions),
		Tier:    TierFor(s.correct),
	}, nil
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close tears the session down and cancels a pending reveal timer, so a
// discarded session is never mutated after the learner navigates away.
// Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Question:       s.questions[s.current],
		CurrentIndex:   s.current,
		TotalQuestions: len(s.questions),
		CorrectCount:   s.correct,
		SelectedOption: s.selected,
		Phase:          s.phase,
	}
}

func (s *Session) notify(snap Snapshot) {
	if s.observer != nil {
		s.observer(snap)
	}
}
