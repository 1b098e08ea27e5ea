package errcode

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

const namePrefix = "LXC_ERROR_"

// Parse resolves a decimal code or a code name such as NOT_FOUND or
// lxc_error_not_found. Names are ASCII; any other input is unknown.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err == nil {
		c := Code(n)
		if !c.Valid() {
			return 0, &InvalidCodeError{Value: s}
		}
		return c, nil
	}
	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		return 0, &InvalidCodeError{Value: s}
	}

	if c, ok := parseName(names[:], s); ok {
		return c, nil
	}
	return 0, &UnknownNameError{Name: s}
}

func parseName(table []string, s string) (Code, bool) {
	if !isASCII(s) {
		return 0, false
	}

	// casers keep state and must not be shared between goroutines
	fold := cases.Fold()
	want := strings.TrimPrefix(fold.String(s), fold.String(namePrefix))
	if want == "" {
		return 0, false
	}

	for i, name := range table {
		if name != "" && fold.String(name) == want {
			return Code(i), true
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
