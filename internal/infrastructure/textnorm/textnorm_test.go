package textnorm

import "testing"

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  hello \t\n  world\r\n")
	if got != "hello world" {
		t.Fatalf("Normalize() = %q", got)
	}
}

func TestNormalizeDropsNonPrintableASCII(t *testing.T) {
	got := Normalize("café résumé\x00 ok")
	if got != "caf rsum ok" {
		t.Fatalf("Normalize() = %q", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"", "  spaced   out  ", "plain", "tab\ttab"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("one two three four", 2); got != "one two" {
		t.Fatalf("Truncate() = %q", got)
	}
	if got := Truncate("one two", 10); got != "one two" {
		t.Fatalf("Truncate() = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("Truncate(0) = %q, want empty", got)
	}
}

func TestIsSupportedPath(t *testing.T) {
	for _, path := range []string{"a.pdf", "b.TXT", "dir/c.docx", "d.xlsx"} {
		if !IsSupportedPath(path) {
			t.Fatalf("IsSupportedPath(%q) = false", path)
		}
	}
	for _, path := range []string{"a.doc", "b.csv", "noext", "e.pdf.zip"} {
		if IsSupportedPath(path) {
			t.Fatalf("IsSupportedPath(%q) = true", path)
		}
	}
}
