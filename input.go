package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/danmaku/ecs/component"
)

// Input decodes the keyboard into the simulation's InputState. Arrows move,
// shift focuses, Z shoots, X bombs.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() component.InputState {
	var state component.InputState
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		state.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		state.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		state.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		state.MoveY += 1
	}
	state.Focus = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	state.Shoot = ebiten.IsKeyPressed(ebiten.KeyZ)
	state.BombPressed = inpututil.IsKeyJustPressed(ebiten.KeyX)
	return state
}
