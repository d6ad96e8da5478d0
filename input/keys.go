package input

import "fmt"

// namedKey enumerates the fixed table of named control keys resolved ahead
// of any layout-dependent lookup.
type namedKey int

const (
	keyNone namedKey = iota
	keyEnter
	keyTab
	keySpace
	keyBackspace
	keyDelete
	keyEscape
	keyArrowUp
	keyArrowDown
	keyArrowLeft
	keyArrowRight
)

var namedKeys = map[string]namedKey{
	"Enter":      keyEnter,
	"Tab":        keyTab,
	"Space":      keySpace,
	"Backspace":  keyBackspace,
	"Delete":     keyDelete,
	"Escape":     keyEscape,
	"ArrowUp":    keyArrowUp,
	"ArrowDown":  keyArrowDown,
	"ArrowLeft":  keyArrowLeft,
	"ArrowRight": keyArrowRight,
}

type keySpec struct {
	named namedKey // keyNone when r is set
	r     rune
}

// parseKey classifies a key string: a named control key, a single character,
// or unresolvable. Multi-character strings outside the named table fail.
func parseKey(key string) (keySpec, error) {
	if n, ok := namedKeys[key]; ok {
		return keySpec{named: n}, nil
	}
	rs := []rune(key)
	if len(rs) == 1 {
		return keySpec{r: rs[0]}, nil
	}
	return keySpec{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
}
