// Package trace parses recorded key-access traces.
//
// A trace file holds one key per line as an unsigned decimal integer.
// Blank lines and lines starting with '#' are skipped. Decompression is
// the caller's concern; this package only sees an io.Reader.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses all key accesses from r.
func Read(r io.Reader) ([]uint64, error) {
	var keys []uint64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: parsing key %q: %w", line, text, err)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}

	return keys, nil
}
