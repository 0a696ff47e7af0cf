// Package payload builds the credential corpus used to fuzz the target's
// registration form. Generation is deterministic: the same constants always
// produce the same records in the same order.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// Record is one registration attempt.
type Record struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Recover  string `json:"recover"`
}

// Each calls fn for every record in corpus order: subject, then number
// ascending, then password suffix, then recovery suffix. The recovery loop is
// skipped for a password outside PasswordBounds. An error from fn stops the
// enumeration and is returned as is.
func Each(fn func(Record) error) error {
	for _, subject := range subjects {
		for n := range numbers {
			stem := subject + fmt.Sprintf("%04d", n)
			for _, ps := range passwordSuffixes {
				password := stem + ps
				if !PasswordBounds.Contains(password) {
					continue
				}
				for _, rs := range recoverySuffixes {
					rec := stem + rs
					if !RecoverBounds.Contains(rec) {
						continue
					}
					r := Record{Username: Username, Password: password, Recover: rec}
					if err := fn(r); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Line encodes r as a single JSON object terminated by a newline.
func Line(r Record) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return b.Bytes(), nil
}

// Generate writes every record to w, one per line, and returns the number
// of lines written.
func Generate(w io.Writer) (int, error) {
	written := 0
	err := Each(func(r Record) error {
		line, err := Line(r)
		if err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write record %d: %w", written+1, err)
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("generate: %w", err)
	}
	return written, nil
}

// WriteFile renders the corpus and writes it to name on fsys, replacing any
// existing file.
func WriteFile(fsys zfilesystem.ReadWriteFileFS, name string) (int, error) {
	var b bytes.Buffer
	n, err := Generate(&b)
	if err != nil {
		return 0, err
	}

	if err := fsys.WriteFile(name, b.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write payloads %s: %w", name, err)
	}

	return n, nil
}

// Count returns the number of records Each yields, computed without
// enumerating. Candidate length does not depend on the number since it is
// always zero-padded to the same width.
func Count() int {
	total := 0
	for _, subject := range subjects {
		stem := subject + strings.Repeat("0", digits)
		total += numbers * passing(stem, passwordSuffixes, PasswordBounds) * passing(stem, recoverySuffixes, RecoverBounds)
	}
	return total
}

func passing(stem string, suffixes []string, b Bounds) int {
	n := 0
	for _, s := range suffixes {
		if b.Contains(stem + s) {
			n++
		}
	}
	return n
}
