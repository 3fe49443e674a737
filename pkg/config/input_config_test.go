package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const validMappingYAML = `
name: default
priority: 1
move:
  up: [W, ArrowUp]
  down: [S]
  left: [A]
  right: [D]
`

func TestParseInputMapping(t *testing.T) {
	ctx, err := ParseInputMapping([]byte(validMappingYAML))
	if err != nil {
		t.Fatalf("ParseInputMapping: %v", err)
	}

	if ctx.Name != "default" || ctx.Priority != 1 {
		t.Errorf("unexpected header: %+v", ctx)
	}
	if len(ctx.Up) != 2 || ctx.Up[0] != ebiten.KeyW || ctx.Up[1] != ebiten.KeyArrowUp {
		t.Errorf("unexpected up bindings: %v", ctx.Up)
	}
	if len(ctx.Right) != 1 || ctx.Right[0] != ebiten.KeyD {
		t.Errorf("unexpected right bindings: %v", ctx.Right)
	}
}

func TestParseInputMappingErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
		isUnknown   bool
	}{
		{
			name:        "unknown key",
			yamlContent: strings.Replace(validMappingYAML, "[S]", "[Sprint]", 1),
			errContains: "move.down",
			isUnknown:   true,
		},
		{
			name:        "empty axis",
			yamlContent: strings.Replace(validMappingYAML, "left: [A]", "left: []", 1),
			errContains: "move.left has no key bindings",
		},
		{
			name:        "missing name",
			yamlContent: strings.Replace(validMappingYAML, "name: default", "", 1),
			errContains: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInputMapping([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
			if errors.Is(err, ErrUnknownKey) != tt.isUnknown {
				t.Errorf("errors.Is(err, ErrUnknownKey) = %v, want %v", !tt.isUnknown, tt.isUnknown)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("ArrowLeft")
	if err != nil || key != ebiten.KeyArrowLeft {
		t.Errorf("ParseKey(ArrowLeft) = %v, %v", key, err)
	}
	if _, err := ParseKey("w"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("key names are case sensitive, expected ErrUnknownKey, got %v", err)
	}
}

func TestShippedInputMapping(t *testing.T) {
	ctx, err := LoadInputMapping("../../" + InputMappingPath)
	if err != nil {
		t.Fatalf("LoadInputMapping: %v", err)
	}
	if ctx.Name != "default" {
		t.Errorf("name = %q, want default", ctx.Name)
	}
	if len(ctx.Up) == 0 || ctx.Up[0] != ebiten.KeyW {
		t.Errorf("up bindings = %v, want W first", ctx.Up)
	}
}
