package quiz

import (
	"fmt"
	"slices"
)

// Phase is the position of a session in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Intro shown, nothing answered
	PhaseAnswering               // Waiting for a selection and confirmation
	PhaseConfirmed               // Answer confirmed, explanation shown
	PhaseComplete                // Every question answered
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAnswering:
		return "answering"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SessionState is the mutable progress of one quiz run.
type SessionState struct {
	// CurrentIndex is the index into the bank of the question being shown.
	CurrentIndex int

	// SelectedOption is the selected but not yet confirmed option, or
	// NoSelection.
	SelectedOption int

	// Confirmed is true once the current question's answer is confirmed.
	Confirmed bool

	// Score is the number of correct records in AnswerLog.
	Score int

	// AnswerLog holds one record per confirmed question, in bank order.
	AnswerLog []AnswerRecord

	// Complete is true after Next on the last confirmed question.
	Complete bool
}

// initialState is the state right after Start and Restart.
func initialState() SessionState {
	return SessionState{
		SelectedOption: NoSelection,
		AnswerLog:      []AnswerRecord{},
	}
}

// Session walks a bank of questions in order, one answer per question.
// A Session has a single owner and is not safe for concurrent use.
type Session struct {
	bank    []Question
	started bool
	state   SessionState
}

// NewSession creates a session over bank. The bank is copied; the session
// starts in PhaseNotStarted.
func NewSession(bank []Question) *Session {
	return &Session{
		bank:  slices.Clone(bank),
		state: initialState(),
	}
}

// Start begins the run from the first question. Starting an empty bank
// completes the session immediately.
func (s *Session) Start() {
	s.state = initialState()
	s.started = true
	if len(s.bank) == 0 {
		s.state.Complete = true
	}
}

// Restart discards all progress and returns the session to PhaseNotStarted.
func (s *Session) Restart() {
	s.state = initialState()
	s.started = false
}

// SelectOption stores index as the pending selection. Selecting again
// replaces the previous selection.
func (s *Session) SelectOption(index int) error {
	if s.Phase() != PhaseAnswering {
		return fmt.Errorf("select option in phase %s: %w", s.Phase(), ErrInvalidTransition)
	}
	q := s.bank[s.state.CurrentIndex]
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("select option %d of question %d: %w", index, q.ID, ErrOptionOutOfRange)
	}
	s.state.SelectedOption = index
	return nil
}

// Confirm evaluates the pending selection, appends the record to the log and
// updates the score.
func (s *Session) Confirm() (AnswerRecord, error) {
	if s.Phase() != PhaseAnswering {
		return AnswerRecord{}, fmt.Errorf("confirm in phase %s: %w", s.Phase(), ErrInvalidTransition)
	}
	if s.state.SelectedOption == NoSelection {
		return AnswerRecord{}, fmt.Errorf("confirm question %d: %w", s.bank[s.state.CurrentIndex].ID, ErrNoSelection)
	}

	rec := Evaluate(s.bank[s.state.CurrentIndex], s.state.SelectedOption)
	s.state.AnswerLog = append(s.state.AnswerLog, rec)
	if rec.IsCorrect {
		s.state.Score++
	}
	s.state.Confirmed = true
	return rec, nil
}

// Next moves past a confirmed question. After the last question the session
// completes instead.
func (s *Session) Next() error {
	if s.Phase() != PhaseConfirmed {
		return fmt.Errorf("next in phase %s: %w", s.Phase(), ErrInvalidTransition)
	}
	if s.state.CurrentIndex+1 < len(s.bank) {
		s.state.CurrentIndex++
		s.state.SelectedOption = NoSelection
		s.state.Confirmed = false
		return nil
	}
	s.state.Complete = true
	return nil
}

// Phase derives the lifecycle phase from the state.
func (s *Session) Phase() Phase {
	switch {
	case !s.started:
		return PhaseNotStarted
	case s.state.Complete:
		return PhaseComplete
	case s.state.Confirmed:
		return PhaseConfirmed
	default:
		return PhaseAnswering
	}
}

// State returns a copy of the session state.
func (s *Session) State() SessionState {
	st := s.state
	st.AnswerLog = slices.Clone(s.state.AnswerLog)
	if st.AnswerLog == nil {
		st.AnswerLog = []AnswerRecord{}
	}
	return st
}

// Current returns the question being shown. ok is false before Start and
// once the session is complete.
func (s *Session) Current() (q Question, ok bool) {
	switch s.Phase() {
	case PhaseAnswering, PhaseConfirmed:
		return s.bank[s.state.CurrentIndex], true
	}
	return Question{}, false
}

// LastRecord returns the most recent answer record.
func (s *Session) LastRecord() (AnswerRecord, bool) {
	n := len(s.state.AnswerLog)
	if n == 0 {
		return AnswerRecord{}, false
	}
	return s.state.AnswerLog[n-1], true
}

// Len returns the number of questions in the session's bank.
func (s *Session) Len() int {
	return len(s.bank)
}

// Progress returns the fraction of questions answered, in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.bank) == 0 {
		return 0
	}
	return float64(len(s.state.AnswerLog)) / float64(len(s.bank))
}

// Summary summarizes a completed session.
func (s *Session) Summary() (Summary, error) {
	if s.Phase() != PhaseComplete {
		return Summary{}, fmt.Errorf("summary in phase %s: %w", s.Phase(), ErrInvalidTransition)
	}
	return Summarize(s.bank, s.state.AnswerLog), nil
}
