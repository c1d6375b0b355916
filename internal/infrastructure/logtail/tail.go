// Package logtail reads a fixed-size window from the end of a log file.
// One pass, no follow mode.
package logtail

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
)

// maxWindowBytes bounds how much of the file tail is read regardless of the
// requested line count.
const maxWindowBytes = 256 * 1024

// Tail returns up to maxLines lines from the end of the file at path. File
// open/read errors are returned verbatim so the dispatcher can surface them.
func Tail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	window := int64(maxWindowBytes)
	if size < window {
		window = size
	}
	buf := make([]byte, window)
	if _, err := file.ReadAt(buf, size-window); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	content := string(buf)
	if size > window {
		// Drop the partial first line of the window.
		if idx := strings.IndexByte(content, '\n'); idx >= 0 {
			content = content[idx+1:]
		}
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

// Grep returns the lines matching any of the given patterns, preserving
// order. Invalid patterns are skipped.
func Grep(lines []string, patterns []string) []string {
	var compiled []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}

	var matches []string
	for _, line := range lines {
		for _, re := range compiled {
			if re.MatchString(line) {
				matches = append(matches, line)
				break
			}
		}
	}
	return matches
}
