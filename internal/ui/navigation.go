package ui

import (
	"log"

	"glance/internal/domain"
	inputtypes "glance/internal/ui/input/types"
)

// Screen identifies a top-level screen
type Screen int

const (
	ScreenHome Screen = iota
	ScreenLens
)

func (s Screen) String() string {
	switch s {
	case ScreenLens:
		return "lens"
	default:
		return "home"
	}
}

// navigateTo switches screens. ScreenLens takes the picked image as its parameter.
func (m *Model) navigateTo(screen Screen, image *domain.ImageRef) {
	log.Printf("Navigate %s -> %s", m.screen, screen)
	m.screen = screen
	m.state.ShowImageSource = false

	switch screen {
	case ScreenLens:
		if image != nil {
			m.state.StartLensSearch(*image)
		}
		m.inputHandler.ChangeMode(inputtypes.ModeLens, "")
	default:
		m.state.ClearLens()
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
	}
}

// Screen returns the screen currently shown
func (m *Model) Screen() Screen {
	return m.screen
}
