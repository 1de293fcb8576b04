package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestResolveCount(t *testing.T) {
	if got := resolveCount(nil); got != 1 {
		t.Fatalf("unexpected default count: %d", got)
	}
	if got := resolveCount([]string{"5"}); got != 5 {
		t.Fatalf("unexpected arg count: %d", got)
	}
	if got := resolveCount([]string{"0"}); got != 1 {
		t.Fatalf("zero should fall back to 1, got %d", got)
	}
	if got := resolveCount([]string{"abc"}); got != 1 {
		t.Fatalf("non-numeric should fall back to 1, got %d", got)
	}
}

func TestMain_PrintsCodes(t *testing.T) {
	origArgs := os.Args
	origStdout := os.Stdout
	defer func() {
		os.Args = origArgs
		os.Stdout = origStdout
	}()

	os.Args = []string{"code-gen", "3"}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	main()

	_ = w.Close()
	var out bytes.Buffer
	_, _ = out.ReadFrom(r)

	lines := strings.Fields(out.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 codes, got %d: %q", len(lines), out.String())
	}
	for _, code := range lines {
		if len(code) != 8 {
			t.Fatalf("expected 8-char code, got %q", code)
		}
	}
}
