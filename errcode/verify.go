package errcode

import (
	multierror "github.com/hashicorp/go-multierror"
)

// Verify checks that every code below LastError has a message and a name
// that parses back to the same code. This is stricter than Lookup, which
// tolerates codes without a message: a shipped catalogue is expected to be
// complete.
func Verify() error {
	return verify(names[:], message)
}

func verify(table []string, message func(Code) string) error {
	var result *multierror.Error
	seen := map[string]Code{}

	for i, name := range table {
		c := Code(i)

		if message(c) == "" {
			result = multierror.Append(result, &MissingMessageError{Code: c})
		}

		if name == "" {
			result = multierror.Append(result, &MissingNameError{Code: c})
			continue
		}

		if first, ok := seen[name]; ok {
			result = multierror.Append(result, &DuplicateNameError{Name: name, First: first, Code: c})
			continue
		}
		seen[name] = c

		parsed, ok := parseName(table, name)
		if !ok {
			result = multierror.Append(result, &UnknownNameError{Name: name})
		} else if parsed != c {
			result = multierror.Append(result, &NameMismatchError{Name: name, Code: c, Parsed: parsed})
		}
	}

	return result.ErrorOrNil()
}
