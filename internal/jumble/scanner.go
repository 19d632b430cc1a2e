// Package jumble finds dictionary words that can be spelled from a set of letters.
package jumble

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/verte-zerg/wordjumble/internal/letters"
)

// DefaultDictionary is the word list path used when none is configured.
const DefaultDictionary = "wordlist.txt"

const maxLineSize = 1 << 20

// ReadError reports a dictionary that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read dictionary: %v", e.Err)
	}
	return fmt.Sprintf("failed to read dictionary %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// FindMatches returns every line of r whose letters fit within query, in input order.
// Lines are returned as stored; only the line terminator is removed.
func FindMatches(query string, r io.Reader) ([]string, error) {
	profile := letters.New(query)
	matches := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if profile.CanForm(line) {
			matches = append(matches, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}
	return matches, nil
}

// FindMatchesInFile scans the dictionary at path. The file is closed before returning.
func FindMatchesInFile(query, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()

	matches, err := FindMatches(query, file)
	if err != nil {
		if rerr, ok := err.(*ReadError); ok {
			rerr.Path = path
			return nil, rerr
		}
		return nil, err
	}
	return matches, nil
}
