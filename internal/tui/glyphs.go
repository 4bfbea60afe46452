package tui

import (
	"strings"
	"sync"
)

// Terminal apps can't change the user's font. Instead we choose between Unicode
// and ASCII glyph sets for UI affordances (checkboxes, the grip, rules).

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphCheckbox(done bool) string {
	if glyphs() == glyphSetASCII {
		if done {
			return "[x]"
		}
		return "[ ]"
	}
	if done {
		return "☑"
	}
	return "☐"
}

// glyphMoveBar is the drag handle drawn on the grip row.
func glyphMoveBar() string {
	if glyphs() == glyphSetASCII {
		return "=="
	}
	return "━━"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphSep() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "·"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}

func glyphCheck() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "✓"
}
