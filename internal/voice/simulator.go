// Package voice simulates speech capture for the search bar.
//
// The simulator keeps two independent axes of state, a listening flag and the
// captured text, because the screen observes them separately: the result is
// consumed (and cleared with ResetVoiceInput) after the flag already dropped.
//
// Every StartListening call opens a new capture attempt identified by a
// monotonically increasing Attempt. The owner arms a one-shot timer tagged
// with that attempt and reports the outcome through Complete; outcomes of
// cancelled or superseded attempts are discarded.
package voice

import (
	"time"
)

// DefaultDelay is how long a simulated capture lasts
const DefaultDelay = 1500 * time.Millisecond

// Attempt identifies one capture attempt. Zero means "no attempt".
type Attempt uint64

// State is the combined view of the two state axes
type State int

const (
	StateIdle State = iota
	StateListening
	StateResulted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateListening:
		return "listening"
	case StateResulted:
		return "resulted"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Simulator is the voice capture state machine.
// It is not safe for concurrent use; the owning event loop serializes all calls.
type Simulator struct {
	recognizer Recognizer
	delay      time.Duration
	timeout    time.Duration

	isListening bool
	resultText  string
	failure     *RecognitionError

	current Attempt // attempt allowed to complete, zero when none
	last    Attempt // last issued attempt id
}

// Option configures a Simulator
type Option func(*Simulator)

// WithDelay overrides the capture delay
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) { s.delay = d }
}

// WithTimeout bounds a single recognition call
func WithTimeout(d time.Duration) Option {
	return func(s *Simulator) { s.timeout = d }
}

// NewSimulator creates an idle simulator. A nil recognizer means the placeholder.
func NewSimulator(r Recognizer, opts ...Option) *Simulator {
	if r == nil {
		r = NewPlaceholder("")
	}
	s := &Simulator{
		recognizer: r,
		delay:      DefaultDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartListening opens a new capture attempt. Calling it while already
// listening restarts the capture: the previous attempt can no longer complete.
func (s *Simulator) StartListening() Attempt {
	s.last++
	s.current = s.last
	s.isListening = true
	s.failure = nil
	return s.current
}

// StopListening abandons the pending attempt, if any
func (s *Simulator) StopListening() {
	s.isListening = false
	s.current = 0
}

// ResetVoiceInput clears the captured text and any failure.
// The listening flag is left alone.
func (s *Simulator) ResetVoiceInput() {
	s.resultText = ""
	s.failure = nil
}

// Pending reports whether attempt a may still complete
func (s *Simulator) Pending(a Attempt) bool {
	return a != 0 && a == s.current && s.isListening
}

// Complete applies the outcome of attempt a. It returns false, and changes
// nothing, when a was cancelled or superseded.
func (s *Simulator) Complete(a Attempt, text string, err error) bool {
	if !s.Pending(a) {
		return false
	}

	s.isListening = false
	s.current = 0
	if err != nil {
		s.failure = Classify(err)
		return true
	}
	s.resultText = text
	return true
}

// Recognizer returns the speech capability used for attempts
func (s *Simulator) Recognizer() Recognizer { return s.recognizer }

// Delay returns the simulated capture length
func (s *Simulator) Delay() time.Duration { return s.delay }

// Timeout returns the recognition deadline, zero for none
func (s *Simulator) Timeout() time.Duration { return s.timeout }

// IsListening reports the listening axis
func (s *Simulator) IsListening() bool { return s.isListening }

// ResultText reports the captured-text axis
func (s *Simulator) ResultText() string { return s.resultText }

// Failure returns the failure of the last attempt, or nil
func (s *Simulator) Failure() *RecognitionError { return s.failure }

// State folds both axes into a single value
func (s *Simulator) State() State {
	switch {
	case s.isListening:
		return StateListening
	case s.failure != nil:
		return StateFailed
	case s.resultText != "":
		return StateResulted
	default:
		return StateIdle
	}
}
