package errcode

import "fmt"

type InvalidCodeError struct {
	Value string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("error code out of range [0, %d): %s", int(LastError), e.Value)
}

type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown error code name: %q", e.Name)
}

type MissingMessageError struct {
	Code Code
}

func (e *MissingMessageError) Error() string {
	return fmt.Sprintf("no message registered for error code %d", int(e.Code))
}

type MissingNameError struct {
	Code Code
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("no name registered for error code %d", int(e.Code))
}

type DuplicateNameError struct {
	Name  string
	First Code
	Code  Code
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("error code name %s used by both %d and %d", e.Name, int(e.First), int(e.Code))
}

type NameMismatchError struct {
	Name   string
	Code   Code
	Parsed Code
}

func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("error code name %s resolves to %d, expected %d", e.Name, int(e.Parsed), int(e.Code))
}
