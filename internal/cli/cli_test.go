package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zpayload/internal/payload"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fuzz_payloads.txt")

	s, err := Run(path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Records != payload.Count() {
		t.Errorf("Records = %d, want %d", s.Records, payload.Count())
	}
	if s.Path != path {
		t.Errorf("Path = %s, want %s", s.Path, path)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := bytes.Count(first, []byte("\n")); got != s.Records {
		t.Errorf("file has %d lines, want %d", got, s.Records)
	}

	// a second run truncates and rewrites the same bytes
	if _, err := Run(path); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("reruns produced different files")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file in output dir, got %d", len(entries))
	}
}

func TestRunMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "files")
	_, err := Run(filepath.Join(missing, "fuzz_payloads.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Error("output dir must not be created")
	}
}

func TestRunDirIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "files")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := Run(filepath.Join(file, "fuzz_payloads.txt")); err == nil {
		t.Fatal("expected error when the output dir is a regular file")
	}
}

func TestPrintSummary(t *testing.T) {
	s := Summary{Path: "./files/fuzz_payloads.txt", Records: 200000, Elapsed: 1500 * time.Millisecond}

	tests := []struct {
		name   string
		styled bool
	}{
		{"plain", false},
		{"styled", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			PrintSummary(&b, s, tt.styled)
			out := b.String()

			if !strings.Contains(out, "wrote 200000 payloads") {
				t.Errorf("missing record count in %q", out)
			}
			if !strings.Contains(out, s.Path) {
				t.Errorf("missing path in %q", out)
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("summary should end with newline: %q", out)
			}
		})
	}

	var b bytes.Buffer
	PrintSummary(&b, s, false)
	if want := "wrote 200000 payloads to ./files/fuzz_payloads.txt (1.5s)\n"; b.String() != want {
		t.Errorf("PrintSummary() = %q, want %q", b.String(), want)
	}
}
