package input

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyNames maps config key identifiers to raylib key codes. Letters,
// arrows and a few common specials are enough for a movement demo;
// extend as bindings demand.
var keyNames = map[string]int32{
	"a": rl.KeyA, "b": rl.KeyB, "c": rl.KeyC, "d": rl.KeyD,
	"e": rl.KeyE, "f": rl.KeyF, "g": rl.KeyG, "h": rl.KeyH,
	"i": rl.KeyI, "j": rl.KeyJ, "k": rl.KeyK, "l": rl.KeyL,
	"m": rl.KeyM, "n": rl.KeyN, "o": rl.KeyO, "p": rl.KeyP,
	"q": rl.KeyQ, "r": rl.KeyR, "s": rl.KeyS, "t": rl.KeyT,
	"u": rl.KeyU, "v": rl.KeyV, "w": rl.KeyW, "x": rl.KeyX,
	"y": rl.KeyY, "z": rl.KeyZ,
	"up": rl.KeyUp, "down": rl.KeyDown, "left": rl.KeyLeft, "right": rl.KeyRight,
	"space": rl.KeySpace, "shift": rl.KeyLeftShift, "ctrl": rl.KeyLeftControl,
}

// Bindings maps each action to the key that triggers it.
type Bindings [numActions]int32

// DefaultBindings returns the WASD + Q/E layout.
func DefaultBindings() Bindings {
	var b Bindings
	b[MoveUp] = rl.KeyW
	b[MoveDown] = rl.KeyS
	b[MoveLeft] = rl.KeyA
	b[MoveRight] = rl.KeyD
	b[TurnLeft] = rl.KeyQ
	b[TurnRight] = rl.KeyE
	return b
}

// ParseBindings builds bindings from config action→key names, starting
// from the defaults so a partial map only overrides what it names.
func ParseBindings(names map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for actionName, keyName := range names {
		action, err := ParseAction(actionName)
		if err != nil {
			return b, err
		}
		key, ok := keyNames[keyName]
		if !ok {
			return b, fmt.Errorf("binding %s: unknown key %q", actionName, keyName)
		}
		b[action] = key
	}
	return b, nil
}

// Poll reads the current keyboard state for every bound action.
// Graphical mode only; headless runs use a Script instead.
func Poll(b Bindings) State {
	var s State
	for a := Action(0); a < numActions; a++ {
		if rl.IsKeyDown(b[a]) {
			s.Set(a)
		}
	}
	return s
}
