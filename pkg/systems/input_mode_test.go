package systems

import (
	"testing"

	"github.com/gonewx/aura/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestCursorModeFor(t *testing.T) {
	tests := []struct {
		name     string
		show     bool
		lock     bool
		hide     bool
		expected ebiten.CursorModeType
	}{
		{"default visible unlocked", true, false, false, ebiten.CursorModeVisible},
		{"hidden", false, false, false, ebiten.CursorModeHidden},
		{"hidden wins over lock", false, true, true, ebiten.CursorModeHidden},
		{"lock and hide captures", true, true, true, ebiten.CursorModeCaptured},
		{"lock without hide stays visible", true, true, false, ebiten.CursorModeVisible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &game.ControllerSettings{
				ShowMouseCursor:     tt.show,
				LockCursorToWindow:  tt.lock,
				HideCursorOnCapture: tt.hide,
			}
			if got := CursorModeFor(settings); got != tt.expected {
				t.Errorf("CursorModeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCursorModeForDefaults(t *testing.T) {
	if got := CursorModeFor(game.DefaultControllerSettings()); got != ebiten.CursorModeVisible {
		t.Errorf("default settings should keep the cursor visible, got %v", got)
	}
}
