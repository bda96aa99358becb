package ui

import (
	"glance/internal/domain"
	"glance/internal/voice"
)

// voiceElapsedMsg fires when the listening delay of an attempt is over
type voiceElapsedMsg struct {
	attempt voice.Attempt
}

// voiceRecognizedMsg carries the recognizer outcome for an attempt
type voiceRecognizedMsg struct {
	attempt voice.Attempt
	text    string
	err     error
}

// voiceDotsMsg advances the "Listening..." animation
type voiceDotsMsg struct {
	attempt voice.Attempt
}

// imagePickedMsg contains the result of the image picker
type imagePickedMsg struct {
	source domain.ImageSource
	image  domain.ImageRef
	err    error
}

// productsMsg contains the image search results for one image
type productsMsg struct {
	imageID  string
	products []domain.Product
	err      error
}

// clearStatusMsg clears the status message it was scheduled for
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
