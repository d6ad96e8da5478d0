package input

import (
	"errors"
	"testing"
)

func TestParseKeyNamed(t *testing.T) {
	for name, want := range namedKeys {
		spec, err := parseKey(name)
		if err != nil {
			t.Fatalf("parseKey(%q): %v", name, err)
		}
		if spec.named != want {
			t.Errorf("parseKey(%q) = %v, want %v", name, spec.named, want)
		}
	}
}

func TestParseKeySingleCharacter(t *testing.T) {
	for _, key := range []string{"a", "Z", "7", "+", "é", "→"} {
		spec, err := parseKey(key)
		if err != nil {
			t.Fatalf("parseKey(%q): %v", key, err)
		}
		if spec.named != keyNone {
			t.Errorf("parseKey(%q) resolved as named key %v", key, spec.named)
		}
		if string(spec.r) != key {
			t.Errorf("parseKey(%q) rune = %q", key, spec.r)
		}
	}
}

func TestParseKeyUnresolvable(t *testing.T) {
	for _, key := range []string{"", "Foo", "F1", "enter", "ArrowUpLeft"} {
		if _, err := parseKey(key); !errors.Is(err, ErrUnsupportedKey) {
			t.Errorf("parseKey(%q) err = %v, want ErrUnsupportedKey", key, err)
		}
	}
}
