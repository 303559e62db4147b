package engine

import "testing"

func TestParseTokenType(t *testing.T) {
	for i := 0; i < TokenTypeCount; i++ {
		typ := TokenType(i)
		got, err := ParseTokenType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseTokenType(%q) = %s, %v", typ.String(), got, err)
		}
	}

	if _, err := ParseTokenType("purple"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestAssetsLookup(t *testing.T) {
	var none Assets
	if none.Lookup("token.red") != nil {
		t.Error("nil table should resolve to nil")
	}

	assets := Assets{"token.red": 7}
	if assets.Lookup("token.red") != 7 {
		t.Error("handle should pass through unchanged")
	}
	if assets.Lookup("token.blue") != nil {
		t.Error("missing name should resolve to nil")
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	if styles[TokenBlue].Token != "token.blue" || styles[TokenBlue].Track != "track.blue" {
		t.Errorf("blue style = %+v", styles[TokenBlue])
	}
	if styles[TokenYellow].Color != "yellow" {
		t.Errorf("yellow colour = %q", styles[TokenYellow].Color)
	}
}
