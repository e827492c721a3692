// Package ui holds the interactive control surface consumed by
// renderer.RunInteractive (SPEC_FULL section 6a).
package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Controls is the current input state sampled once per frame by the
// interactive loop.
type Controls struct {
	Scene           string
	SamplesPerPixel uint32
	EnableDebug     bool
	BVHDepth        uint32
	ResetRequested  bool
}

// KeyboardSource drives Controls from GLFW key callbacks, following the
// same press-not-poll wiring the teacher's interactiveGLRenderer used for
// its Tab/arrow-key handlers: Escape closes the window, Tab toggles the
// BVH debug overlay, Up/Down adjust the debug depth, R requests an
// accumulation reset, and the digit keys 1-9 set samples-per-pixel.
type KeyboardSource struct {
	scene           string
	samplesPerPixel uint32
	enableDebug     bool
	bvhDepth        uint32
	resetRequested  bool
}

// NewKeyboardSource wires key callbacks on window and returns a source
// seeded with the given scene path and initial sample count.
func NewKeyboardSource(window *glfw.Window, scene string, initialSamples uint32) *KeyboardSource {
	k := &KeyboardSource{scene: scene, samplesPerPixel: initialSamples}
	window.SetKeyCallback(k.onKey)
	return k
}

func (k *KeyboardSource) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyTab:
		k.enableDebug = !k.enableDebug
	case glfw.KeyUp:
		k.bvhDepth++
	case glfw.KeyDown:
		if k.bvhDepth > 0 {
			k.bvhDepth--
		}
	case glfw.KeyR:
		k.resetRequested = true
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
		glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9:
		k.samplesPerPixel = uint32(key-glfw.Key0)
	}
}

// LoadScene switches the source's tracked scene path, e.g. after a
// command-line or file-drop scene change outside of key handling.
func (k *KeyboardSource) LoadScene(path string) {
	k.scene = path
}

// Snapshot returns the current Controls and clears the edge-triggered
// ResetRequested flag, matching section 6a's "producer-side flag" wording:
// a reset fires exactly once per key press, not once per frame it's held.
func (k *KeyboardSource) Snapshot() Controls {
	c := Controls{
		Scene:           k.scene,
		SamplesPerPixel: k.samplesPerPixel,
		EnableDebug:     k.enableDebug,
		BVHDepth:        k.bvhDepth,
		ResetRequested:  k.resetRequested,
	}
	k.resetRequested = false
	return c
}
