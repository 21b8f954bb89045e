package vector

import "testing"

func TestParseStyle_GetIsCaseInsensitive(t *testing.T) {
	st := ParseStyle("FILL:#ff00ff;Stroke-Width:2")

	if v, ok := st.Get("fill"); !ok || v != "#ff00ff" {
		t.Errorf("Get(fill): got %q/%v, want #ff00ff/true", v, ok)
	}
	if v, ok := st.Get("stroke-width"); !ok || v != "2" {
		t.Errorf("Get(stroke-width): got %q/%v, want 2/true", v, ok)
	}
	if _, ok := st.Get("stroke"); ok {
		t.Error("Get(stroke): found a value in a style without one")
	}
}

func TestStyle_GetFirstMatchWins(t *testing.T) {
	st := ParseStyle("fill:#111111;fill:#222222")
	if v, _ := st.Get("fill"); v != "#111111" {
		t.Errorf("duplicate keys: got %q, want first value #111111", v)
	}
}

func TestStyle_SetRewritesAllOccurrences(t *testing.T) {
	st := ParseStyle("fill:#111111;stroke:#333333;FILL:#222222")
	st.Set("fill", "none")

	want := "fill:none;stroke:#333333;FILL:none"
	if got := st.String(); got != want {
		t.Errorf("serialized: got %q, want %q", got, want)
	}
}

func TestStyle_SetAppendsWhenMissing(t *testing.T) {
	st := ParseStyle("fill:#000000")
	st.Set("stroke", "none")

	if got := st.String(); got != "fill:#000000;stroke:none" {
		t.Errorf("serialized: got %q, want fill:#000000;stroke:none", got)
	}
}

func TestStyle_PreservesUnknownTokens(t *testing.T) {
	st := ParseStyle("fill:#000000; bogus-token ;opacity:0.5")

	if got := st.String(); got != "fill:#000000;bogus-token;opacity:0.5" {
		t.Errorf("serialized: got %q", got)
	}
	if st.Len() != 3 {
		t.Errorf("Len: got %d, want 3", st.Len())
	}
}

func TestParseStyle_Whitespace(t *testing.T) {
	st := ParseStyle("  fill : #abcdef ; ; stroke:none  ")

	if v, _ := st.Get("fill"); v != "#abcdef" {
		t.Errorf("Get(fill): got %q, want #abcdef", v)
	}
	if got := st.String(); got != "fill:#abcdef;stroke:none" {
		t.Errorf("serialized: got %q, want fill:#abcdef;stroke:none", got)
	}
}

func TestParseStyle_Empty(t *testing.T) {
	st := ParseStyle("")
	if st.Len() != 0 {
		t.Errorf("Len of empty style: got %d, want 0", st.Len())
	}
	if st.String() != "" {
		t.Errorf("String of empty style: got %q, want empty", st.String())
	}
}
