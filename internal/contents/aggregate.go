package contents

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Contents lines list every package sharing a file, so they can grow well
// past the default scanner buffer.
const maxLineSize = 1 << 20

// CountFiles builds the package to file-count mapping for a full Contents
// index supplied as decompressed text.
func CountFiles(text string) (map[string]int, error) {
	return CountFilesReader(strings.NewReader(text))
}

// CountFilesReader is the streaming form of CountFiles. Aggregation fails on
// the first malformed line: a bad line means the input is not a Contents
// index, and partial counts would be misleading.
func CountFilesReader(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if isHeader(line) {
				continue
			}
		}

		packages, err := ParsePackages(line)
		if err != nil {
			return nil, err
		}
		for _, pkg := range packages {
			counts[pkg]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contents index: %w", err)
	}

	return counts, nil
}

// isHeader reports whether the first line of the index is the optional
// "FILE ... LOCATION" column header. A header is neither counted nor treated
// as malformed.
func isHeader(line string) bool {
	packages, err := ParsePackages(line)
	if err != nil {
		return false
	}
	return len(packages) == 1 && packages[0] == "LOCATION" && strings.Contains(line, "FILE")
}
