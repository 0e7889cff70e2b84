package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/input"
)

// keyFunc reports a key's state, ebiten.IsKeyPressed or
// inpututil.IsKeyJustPressed.
type keyFunc func(ebiten.Key) bool

func anyKey(f keyFunc, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// keysFrom builds the held-key snapshot.
func keysFrom(pressed keyFunc) game.Keys {
	return game.Keys{
		Up:    anyKey(pressed, ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyKey(pressed, ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyKey(pressed, ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyKey(pressed, ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:  pressed(ebiten.KeySpace),
		Boost: pressed(ebiten.KeyShift),
	}
}

var actionKeys = []struct {
	key    ebiten.Key
	action input.Action
}{
	{ebiten.KeyQ, input.ActionQuit},
	{ebiten.KeyP, input.ActionPause},
	{ebiten.KeyEscape, input.ActionEscape},
	{ebiten.KeyEnter, input.ActionConfirm},
	{ebiten.KeyNumpadEnter, input.ActionConfirm},
	{ebiten.KeyM, input.ActionMenu},
	{ebiten.KeyR, input.ActionRestart},
	{ebiten.KeyT, input.ActionSound},
	{ebiten.KeyB, input.ActionLeaderboard},
}

// actionsFrom collects the keys pressed this frame.
func actionsFrom(justPressed keyFunc) (firePressed bool, actions []input.Action) {
	for _, b := range actionKeys {
		if justPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return justPressed(ebiten.KeySpace), actions
}
