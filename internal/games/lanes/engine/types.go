// Package engine implements the lane-catch simulation: falling tokens,
// lane centering, the pointer force field, exit classification and scoring.
// This package is UI-agnostic and single threaded; the host calls Tick once
// per frame and reads a Frame afterwards.
package engine

import "fmt"

// TokenType tags both tokens and lanes. A token scores when it leaves the
// field through a lane of the same type.
type TokenType uint8

const (
	TokenRed TokenType = iota
	TokenGreen
	TokenBlue
	TokenYellow
)

// TokenTypeCount is the number of token types.
const TokenTypeCount = 4

var tokenNames = [TokenTypeCount]string{"red", "green", "blue", "yellow"}

// String returns the lowercase type name.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// ParseTokenType resolves a type name as used in configuration files.
func ParseTokenType(s string) (TokenType, error) {
	for i, name := range tokenNames {
		if name == s {
			return TokenType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown token type %q", s)
}

// Style names the assets used to draw one token type.
type Style struct {
	Token string // Asset name for falling tokens
	Track string // Asset name for lanes
	Color string // Colour name for flat rendering
}

// Styles is the lookup table from token type to visual descriptor.
type Styles [TokenTypeCount]Style

// DefaultStyles returns "token.<type>" / "track.<type>" asset names and the
// type name as colour.
func DefaultStyles() Styles {
	var s Styles
	for i := range s {
		name := TokenType(i).String()
		s[i] = Style{
			Token: "token." + name,
			Track: "track." + name,
			Color: name,
		}
	}
	return s
}

// Asset names for entities that are not typed.
const (
	AssetAction = "action"
	AssetMarker = "marker"
)

// Assets maps asset names to opaque handles supplied by the host. The engine
// never inspects handles; it only passes them through on drawable entities.
type Assets map[string]any

// Lookup returns the handle for name, or nil.
func (a Assets) Lookup(name string) any {
	if a == nil {
		return nil
	}
	return a[name]
}
