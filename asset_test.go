package patrimoine

import "testing"

func TestScheme(t *testing.T) {
	s := DefaultScheme()

	if !s.Has("Livrets") || s.Has("Obligations") {
		t.Error("Has() disagrees with the default categories")
	}
	if !s.IsQuoted("Crypto") || s.IsQuoted("Immobilier") {
		t.Error("IsQuoted() disagrees with the default quoted set")
	}
	if s.ModeOf("Actions & Fonds") != Quoted || s.ModeOf("Fonds euros") != Manual {
		t.Error("ModeOf() disagrees with the default quoted set")
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{Manual, Quoted} {
		got, err := ParseMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseMode("automatic"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
