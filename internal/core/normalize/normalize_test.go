package normalize

import "testing"

func TestFieldCollapsesWhitespace(t *testing.T) {
	got := Field("  Hon'ble   Justice \t Sharma \n ")
	if got != "Hon'ble Justice Sharma" {
		t.Fatalf("Field = %q", got)
	}
}

func TestFieldFoldsFullwidth(t *testing.T) {
	// fullwidth digits and letters as seen in copy-pasted portal text
	got := Field("ＷＰ １２３４５/２０２４")
	if got != "WP 12345/2024" {
		t.Fatalf("Field = %q", got)
	}
}

func TestFieldStripsZeroWidth(t *testing.T) {
	got := Field("State​ of\ufeff Punjab")
	if got != "State of Punjab" {
		t.Fatalf("Field = %q", got)
	}
}

func TestCaseNumberKeysConsistently(t *testing.T) {
	a := CaseNumber("wp  12345/2024")
	b := CaseNumber("WP 12345/2024")
	if a != b || a != "WP 12345/2024" {
		t.Fatalf("CaseNumber a=%q b=%q", a, b)
	}
}

func TestFieldEmptyAndInvalid(t *testing.T) {
	if Field("") != "" {
		t.Fatal("empty must stay empty")
	}
	// lone invalid byte disappears
	if got := Field("abc\xffdef"); got != "abcdef" {
		t.Fatalf("Field = %q", got)
	}
}

func TestSanitizeFastPath(t *testing.T) {
	in := "already clean"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestSanitizeDropsControls(t *testing.T) {
	got := Sanitize("a\x00b\x1fc\x7fd")
	if got != "abcd" {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestSanitizeKeepsAllowedControls(t *testing.T) {
	got := Sanitize("a\nb\tc")
	if got != "a\nb\tc" {
		t.Fatalf("Sanitize = %q", got)
	}
}
