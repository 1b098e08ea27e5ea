package main

import "fmt"

type InvalidLogFormatError struct {
	Format string
}

func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %s", e.Format)
}

type NoMessageError struct {
	Arg string
}

func (e *NoMessageError) Error() string {
	return fmt.Sprintf("no message for error code: %s", e.Arg)
}
