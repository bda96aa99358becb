package voice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Recognition failures
var (
	ErrRecognitionFailed = errors.New("recognition failed")
	ErrTimeout           = errors.New("recognition timed out")
	ErrPermissionDenied  = errors.New("microphone permission denied")
	ErrNoSpeech          = errors.New("no speech detected")
)

// Recognizer turns one capture attempt into text
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// RecognizerFunc adapts a function to Recognizer
type RecognizerFunc func(ctx context.Context) (string, error)

func (f RecognizerFunc) Recognize(ctx context.Context) (string, error) { return f(ctx) }

// DefaultPlaceholder is the text the placeholder recognizer hears
const DefaultPlaceholder = "voice search"

// Placeholder stands in for a speech engine and always hears the same text
type Placeholder struct {
	Text string
}

// NewPlaceholder creates a placeholder recognizer; an empty text means DefaultPlaceholder
func NewPlaceholder(text string) *Placeholder {
	if text == "" {
		text = DefaultPlaceholder
	}
	return &Placeholder{Text: text}
}

func (p *Placeholder) Recognize(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.Text, nil
}

// RecognitionError carries the classified reason of a failed attempt
type RecognitionError struct {
	Reason error // one of the Err* sentinels
	Err    error // underlying cause, may be nil
}

func (e *RecognitionError) Error() string {
	if e.Err == nil || e.Err == e.Reason {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%v: %v", e.Reason, e.Err)
}

func (e *RecognitionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// Classify maps any recognizer error onto the failure taxonomy
func Classify(err error) *RecognitionError {
	if err == nil {
		return nil
	}

	var re *RecognitionError
	if errors.As(err, &re) {
		return re
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrTimeout):
		return &RecognitionError{Reason: ErrTimeout, Err: err}
	case errors.Is(err, ErrPermissionDenied):
		return &RecognitionError{Reason: ErrPermissionDenied, Err: err}
	case errors.Is(err, ErrNoSpeech):
		return &RecognitionError{Reason: ErrNoSpeech, Err: err}
	default:
		return &RecognitionError{Reason: ErrRecognitionFailed, Err: err}
	}
}

// Run calls r under a deadline and classifies any failure.
// An empty transcript counts as ErrNoSpeech.
func Run(ctx context.Context, r Recognizer, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	text, err := r.Recognize(ctx)
	if err != nil {
		return "", Classify(err)
	}
	if strings.TrimSpace(text) == "" {
		return "", &RecognitionError{Reason: ErrNoSpeech}
	}
	return text, nil
}
