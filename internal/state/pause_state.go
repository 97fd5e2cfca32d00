// internal/state/pause_state.go
package state

import (
	"go-balloon-defense/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: кадры не считаются, команды не применяются.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	poll          func() Input
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		poll:          PollInput,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	in := s.poll()
	if in.Pressed(ebiten.KeyP) || in.Pressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	face := basicfont.Face7x13
	textWidth := len(pauseText) * face.Advance
	text.Draw(screen, pauseText, face, (w-textWidth)/2, h/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
