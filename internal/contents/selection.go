package contents

import (
	"fmt"
	"strconv"
)

// Selection says how many entries the selector should return: either every
// package, or the n largest. The two cases are distinct values rather than an
// overloaded integer, so zero never doubles as an "all" sentinel.
type Selection struct {
	all bool
	n   int
}

// All selects every package, in descending count order.
func All() Selection {
	return Selection{all: true}
}

// Top selects the n largest entries. Top(0) means no entries at all; callers
// wanting everything use All.
func Top(n int) Selection {
	return Selection{n: n}
}

// IsAll reports whether the selection covers every package.
func (s Selection) IsAll() bool {
	return s.all
}

// limit resolves the effective number of entries for a mapping of size n.
func (s Selection) limit(n int) int {
	if s.all || s.n > n {
		return n
	}
	return s.n
}

// InvalidSelectionError reports a selection token that is neither a
// non-negative integer nor the literal "all".
type InvalidSelectionError struct {
	Token string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection %q: want a non-negative integer or \"all\"", e.Token)
}

// ParseSelection maps a command-line token to a Selection. The tokens "all"
// and "0" both mean every package; any positive integer means that many.
func ParseSelection(token string) (Selection, error) {
	if token == "all" {
		return All(), nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return Selection{}, &InvalidSelectionError{Token: token}
	}
	if n == 0 {
		return All(), nil
	}
	return Top(n), nil
}
