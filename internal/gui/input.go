package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/artgen/internal/module"
)

var keymap = map[module.Key][]int32{
	module.KeyTab:    {rl.KeyTab},
	module.KeyShift:  {rl.KeyLeftShift, rl.KeyRightShift},
	module.KeyUp:     {rl.KeyUp},
	module.KeyDown:   {rl.KeyDown},
	module.KeyLeft:   {rl.KeyLeft},
	module.KeyRight:  {rl.KeyRight},
	module.KeyR:      {rl.KeyR},
	module.KeyP:      {rl.KeyP},
	module.KeyW:      {rl.KeyW},
	module.KeyA:      {rl.KeyA},
	module.KeyS:      {rl.KeyS},
	module.KeyD:      {rl.KeyD},
	module.KeyQ:      {rl.KeyQ},
	module.KeyE:      {rl.KeyE},
	module.KeyH:      {rl.KeyH},
	module.KeyJ:      {rl.KeyJ},
	module.KeyC:      {rl.KeyC},
	module.KeyT:      {rl.KeyT},
	module.KeySpace:  {rl.KeySpace},
	module.KeyF12:    {rl.KeyF12},
	module.KeyDigit1: {rl.KeyOne, rl.KeyKp1},
	module.KeyDigit2: {rl.KeyTwo, rl.KeyKp2},
	module.KeyDigit3: {rl.KeyThree, rl.KeyKp3},
	module.KeyDigit4: {rl.KeyFour, rl.KeyKp4},
}

// Input polls raylib's keyboard state for the current frame.
type Input struct{}

func (Input) Pressed(k module.Key) bool {
	for _, code := range keymap[k] {
		if rl.IsKeyPressed(code) {
			return true
		}
	}
	return false
}

func (Input) Down(k module.Key) bool {
	for _, code := range keymap[k] {
		if rl.IsKeyDown(code) {
			return true
		}
	}
	return false
}
