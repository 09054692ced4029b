package input

import (
	"testing"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

func defaultMap() KeyMap {
	return KeyMap{LeftToRight: "q", RightToLeft: "p", Abort: "escape"}
}

func TestKeyMapDirection(t *testing.T) {
	m := defaultMap()

	tests := []struct {
		key       string
		want      core.ResponseDirection
		qualifies bool
	}{
		{"q", core.DirectionLeftToRight, true},
		{"Q", core.DirectionLeftToRight, true}, // SDL reports uppercase names
		{"p", core.DirectionRightToLeft, true},
		{"P", core.DirectionRightToLeft, true},
		{"a", core.DirectionNone, false},
		{"space", core.DirectionNone, false},
		{"escape", core.DirectionNone, false},
		{"", core.DirectionNone, false},
	}

	for _, tc := range tests {
		got, ok := m.Direction(tc.key)
		if ok != tc.qualifies || got != tc.want {
			t.Errorf("Direction(%q) = (%v, %v), expected (%v, %v)", tc.key, got, ok, tc.want, tc.qualifies)
		}
	}
}

func TestKeyMapIsAbort(t *testing.T) {
	m := defaultMap()
	if !m.IsAbort("Escape") {
		t.Error("Expected Escape to abort")
	}
	if m.IsAbort("q") {
		t.Error("Expected q not to abort")
	}
	if (KeyMap{LeftToRight: "q", RightToLeft: "p"}).IsAbort("") {
		t.Error("Expected empty key not to abort when no abort key bound")
	}
}

func TestKeyMapValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       KeyMap
		wantErr bool
	}{
		{"defaults", defaultMap(), false},
		{"missing right-to-left", KeyMap{LeftToRight: "q", Abort: "escape"}, true},
		{"duplicate response keys", KeyMap{LeftToRight: "q", RightToLeft: "Q", Abort: "escape"}, true},
		{"abort collides", KeyMap{LeftToRight: "q", RightToLeft: "p", Abort: "p"}, true},
		{"no abort key", KeyMap{LeftToRight: "q", RightToLeft: "p"}, false},
	}

	for _, tc := range tests {
		err := tc.m.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, expected error=%v", tc.name, err, tc.wantErr)
		}
	}
}
