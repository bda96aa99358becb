package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/eventbus"
	inputtypes "glance/internal/ui/input/types"
	"glance/internal/ui/views"
	"glance/internal/voice"
)

const voiceDotsInterval = 400 * time.Millisecond

// startVoice clears the query, opens the overlay and arms the delay timer
// for a fresh attempt. Any attempt still pending is superseded.
func (m *Model) startVoice() tea.Cmd {
	m.setQuery("")
	m.state.ShowVoice = true
	m.state.VoiceDots = 0

	m.stopRecognition()
	m.voice.ResetVoiceInput()
	attempt := m.voice.StartListening()
	m.voiceAttempt = attempt
	m.voiceCtx, m.voiceCancel = context.WithCancel(m.ctx)
	log.Printf("Voice attempt %d started", attempt)
	m.publish(eventbus.VoiceStartedEvent{Attempt: uint64(attempt)})

	return tea.Batch(m.voiceTimer(attempt), voiceDots(attempt))
}

// cancelVoice abandons the pending attempt; late timers for it are ignored
func (m *Model) cancelVoice() {
	attempt := m.voiceAttempt
	m.stopRecognition()
	m.closeVoice()
	m.voice.StopListening()
	m.voice.ResetVoiceInput()
	log.Printf("Voice attempt %d cancelled", attempt)
	m.publish(eventbus.VoiceCancelledEvent{Attempt: uint64(attempt)})
}

// stopRecognition cancels the context of the current attempt, if any
func (m *Model) stopRecognition() {
	if m.voiceCancel != nil {
		m.voiceCancel()
		m.voiceCancel = nil
	}
}

func (m *Model) closeVoice() {
	m.state.ShowVoice = false
	m.state.VoiceDots = 0
	if m.inputHandler.CurrentMode() == inputtypes.ModeVoice {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
	}
}

func (m *Model) voiceTimer(attempt voice.Attempt) tea.Cmd {
	return tea.Tick(m.voice.Delay(), func(time.Time) tea.Msg {
		return voiceElapsedMsg{attempt: attempt}
	})
}

func voiceDots(attempt voice.Attempt) tea.Cmd {
	return tea.Tick(voiceDotsInterval, func(time.Time) tea.Msg {
		return voiceDotsMsg{attempt: attempt}
	})
}

// recognize runs the recognizer off the event loop. Only the message it
// returns touches model state. Cancelling the attempt cancels ctx.
func (m *Model) recognize(attempt voice.Attempt) tea.Cmd {
	rec := m.voice.Recognizer()
	timeout := m.voice.Timeout()
	ctx := m.voiceCtx
	if ctx == nil {
		ctx = m.ctx
	}
	return func() tea.Msg {
		text, err := voice.Run(ctx, rec, timeout)
		return voiceRecognizedMsg{attempt: attempt, text: text, err: err}
	}
}

func (m *Model) handleVoiceElapsed(msg voiceElapsedMsg) tea.Cmd {
	if !m.voice.Pending(msg.attempt) {
		log.Printf("Ignoring timer of stale voice attempt %d", msg.attempt)
		return nil
	}
	return m.recognize(msg.attempt)
}

func (m *Model) handleVoiceRecognized(msg voiceRecognizedMsg) tea.Cmd {
	if !m.voice.Complete(msg.attempt, msg.text, msg.err) {
		log.Printf("Ignoring result of stale voice attempt %d", msg.attempt)
		return nil
	}
	m.stopRecognition()

	if failure := m.voice.Failure(); failure != nil {
		log.Printf("Voice attempt %d failed: %v", msg.attempt, failure)
		m.closeVoice()
		m.voice.ResetVoiceInput()
		m.publish(eventbus.VoiceFailedEvent{
			Attempt: uint64(msg.attempt),
			Reason:  failure.Reason.Error(),
			Err:     failure,
		})
		return m.setStatus(fmt.Sprintf("Voice search failed: %s", failure.Reason), views.StatusWarning)
	}

	text := m.voice.ResultText()
	log.Printf("Voice attempt %d recognized %q", msg.attempt, text)
	m.setQuery(text)
	m.voice.StopListening()
	m.closeVoice()
	m.voice.ResetVoiceInput()
	m.publish(eventbus.VoiceResultedEvent{Attempt: uint64(msg.attempt), Text: text})
	return nil
}

func (m *Model) handleVoiceDots(msg voiceDotsMsg) tea.Cmd {
	if !m.voice.Pending(msg.attempt) {
		return nil
	}
	m.state.VoiceDots++
	return voiceDots(msg.attempt)
}
