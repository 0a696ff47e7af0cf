// Package cli runs payload generation for the zpayload command.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpayload/internal/payload"
)

// OutputPath is where the corpus is written, relative to the working directory.
const OutputPath = "./files/fuzz_payloads.txt"

// Summary describes a finished run.
type Summary struct {
	Path    string
	Records int
	Elapsed time.Duration
}

// Run writes the payload corpus to path. The containing directory must
// already exist; it is never created.
func Run(path string) (Summary, error) {
	start := time.Now()
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("output dir: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("output dir: %s is not a directory", dir)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	n, err := payload.WriteFile(fsys, name)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Path: path, Records: n, Elapsed: time.Since(start)}, nil
}

// PrintSummary writes a one-line report of s to w.
func PrintSummary(w io.Writer, s Summary, styled bool) {
	msg := fmt.Sprintf("wrote %d payloads", s.Records)
	detail := fmt.Sprintf("%s (%s)", s.Path, s.Elapsed.Round(time.Millisecond))

	if !styled {
		fmt.Fprintf(w, "%s to %s\n", msg, detail)
		return
	}

	bold := lipgloss.NewStyle().Bold(true)
	fmt.Fprintf(w, "  %s %s\n", zstyle.StatusOK.Render(bold.Render(msg)), zstyle.MutedText.Render("to "+detail))
}
