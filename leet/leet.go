// Package leet implements the deterministic leet-speak obfuscation applied
// around password derivation. Tables and behavior follow the reference
// algorithm family: input is lowercased, then each a-z letter is replaced by
// its level-specific alternate. Higher levels substitute more character
// classes and longer alternates.
package leet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Mode states where the transform is applied during derivation.
type Mode string

const (
	// ModeNotAtAll is the identity transform.
	ModeNotAtAll Mode = "NotAtAll"
	// ModeBefore transforms the master secret prior to hashing.
	ModeBefore Mode = "Before"
	// ModeAfter transforms the rendered output after encoding.
	ModeAfter Mode = "After"
	// ModeBeforeAndAfter applies both, independently.
	ModeBeforeAndAfter Mode = "BeforeAndAfter"
)

// Level is the substitution intensity, valid from MinLevel to MaxLevel for
// every mode except ModeNotAtAll.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 9
)

var (
	// ErrUnknownMode indicates an unrecognized mode name.
	ErrUnknownMode = errors.New("leet: unknown mode")
	// ErrInvalidLevel indicates a level outside 1..9 for a substituting mode.
	ErrInvalidLevel = errors.New("leet: level must be between 1 and 9")
)

// ParseMode resolves a mode name case-insensitively, ignoring separators, so
// "notatall", "before_and_after" and "BeforeAndAfter" all resolve.
func ParseMode(name string) (Mode, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	switch normalized {
	case "notatall", "":
		return ModeNotAtAll, nil
	case "before":
		return ModeBefore, nil
	case "after":
		return ModeAfter, nil
	case "beforeandafter":
		return ModeBeforeAndAfter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Modes lists the modes in their fixed display order.
func Modes() []Mode {
	return []Mode{ModeNotAtAll, ModeBefore, ModeAfter, ModeBeforeAndAfter}
}

// Transform is a validated (mode, level) pair. The zero value is the
// identity transform.
type Transform struct {
	mode  Mode
	level Level
}

// New validates the pair. ModeNotAtAll accepts any level since no
// substitution happens; every other mode requires a level in 1..9. An
// out-of-range level is an error, never silently clamped.
func New(mode Mode, level Level) (Transform, error) {
	switch mode {
	case ModeNotAtAll:
		return Transform{mode: mode}, nil
	case ModeBefore, ModeAfter, ModeBeforeAndAfter:
		if level < MinLevel || level > MaxLevel {
			return Transform{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
		}
		return Transform{mode: mode, level: level}, nil
	}
	return Transform{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Before applies the transform to the master secret when the mode asks for
// it, otherwise returns the input unchanged.
func (t Transform) Before(s string) string {
	if t.mode == ModeBefore || t.mode == ModeBeforeAndAfter {
		return Apply(t.level, s)
	}
	return s
}

// After applies the transform to the rendered output when the mode asks for
// it, otherwise returns the input unchanged.
func (t Transform) After(s string) string {
	if t.mode == ModeAfter || t.mode == ModeBeforeAndAfter {
		return Apply(t.level, s)
	}
	return s
}

// Apply lowercases s and substitutes every a-z rune using the table for the
// given level. Runes without a table entry pass through lowercased. Levels
// outside 1..9 are rejected by New; Apply treats them as identity to keep
// the zero Transform safe.
func Apply(level Level, s string) string {
	if level < MinLevel || level > MaxLevel {
		return s
	}
	table := tables[level-1]
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if r >= 'a' && r <= 'z' {
			b.WriteString(table[r-'a'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tables holds the fixed a-z alternates for levels 1..9, byte-identical to
// the reference family. Do not edit: any change breaks cross-implementation
// compatibility.
var tables = [9][26]string{
	{"4", "b", "c", "d", "3", "f", "g", "h", "i", "j", "k", "1", "m", "n", "0", "p", "9", "r", "s", "7", "u", "v", "w", "x", "y", "z"},
	{"4", "b", "c", "d", "3", "f", "g", "h", "1", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "y", "2"},
	{"4", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "|3", "c", "d", "3", "f", "6", "#", "!", "7", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "c", "|)", "&", "|=", "6", "#", "!", "7", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "[", "|)", "&", "|=", "6", "#", "!", "7", "|<", "1", "^^", "^/", "0", "|*", "9", "|2", "5", "7", "(_)", "\\/", "\\/\\/", "><", "'/", "2"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|(", "1", "|\\/|", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "2"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|{", "|_", "/\\/\\", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "2"},
}
