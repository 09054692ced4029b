package input

import (
	"fmt"
	"strings"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

// Normalize canonicalizes a key name reported by a display backend.
// SDL reports letter keys as "Q"; tcell reports runes; special keys vary
// in casing. Comparison is done on the lowercase trimmed form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KeyMap binds physical key names to semantic responses. Exactly two
// response keys are qualifying during the Response phase; every other key
// is inert. The abort key stops the whole run.
type KeyMap struct {
	LeftToRight string
	RightToLeft string
	Abort       string
}

// Validate rejects empty or colliding bindings
func (m KeyMap) Validate() error {
	ltr := Normalize(m.LeftToRight)
	rtl := Normalize(m.RightToLeft)
	abort := Normalize(m.Abort)

	if ltr == "" || rtl == "" {
		return fmt.Errorf("input: both response keys must be bound")
	}
	if ltr == rtl {
		return fmt.Errorf("input: response keys must differ, both bound to %q", ltr)
	}
	if abort == ltr || abort == rtl {
		return fmt.Errorf("input: abort key %q collides with a response key", abort)
	}
	return nil
}

// Direction maps a pressed key to its response label. The second return
// is false for non-qualifying keys.
func (m KeyMap) Direction(key string) (core.ResponseDirection, bool) {
	switch Normalize(key) {
	case Normalize(m.LeftToRight):
		return core.DirectionLeftToRight, true
	case Normalize(m.RightToLeft):
		return core.DirectionRightToLeft, true
	default:
		return core.DirectionNone, false
	}
}

// IsAbort reports whether the key is the configured abort key
func (m KeyMap) IsAbort(key string) bool {
	a := Normalize(m.Abort)
	return a != "" && Normalize(key) == a
}
