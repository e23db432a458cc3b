package contents

import (
	"fmt"
	"strings"
)

// MalformedLineError reports a Contents line with no whitespace separator
// between the filename and its package list. The caller decides whether to
// abort or skip; the aggregator in this package aborts.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed contents line (no whitespace separator): %q", e.Line)
}

// lastSeparator returns the index of the last space or tab in line, or -1.
func lastSeparator(line string) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' || line[i] == '\t' {
			return i
		}
	}
	return -1
}

// ParsePackages extracts the package names listed on a single Contents line.
// Filenames may contain spaces but the package list never does, so the
// separator is the last whitespace character on the line. Empty tokens from
// stray commas are dropped: a package name is never empty.
func ParsePackages(line string) ([]string, error) {
	sep := lastSeparator(line)
	if sep < 0 {
		return nil, &MalformedLineError{Line: line}
	}

	var packages []string
	for _, name := range strings.Split(line[sep+1:], ",") {
		if name == "" {
			continue
		}
		packages = append(packages, name)
	}
	return packages, nil
}
