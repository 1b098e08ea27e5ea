// Package errcode is the catalogue of container library error codes and the
// messages they translate to.
package errcode

import "fmt"

// Code identifies an entry in the catalogue.
type Code int

const (
	Empty Code = iota
	Busy
	NotFound
	PermissionDenied
	WrongCommand

	ConfCgroup
	ConfMount
	ConfUtsname
	ConfNetwork
	ConfRootfs

	SetupCgroup
	SetupMount
	SetupUtsname
	SetupNetwork
	SetupRootfs

	// LastError is the exclusive upper bound of the catalogue.
	LastError
)

// Lookup returns the message registered for code. The result is absent for
// codes without a message, including anything outside [0, LastError).
func Lookup(code int) (string, bool) {
	if code < 0 || code >= int(LastError) {
		return "", false
	}

	msg := message(Code(code))
	return msg, msg != ""
}

func message(c Code) string {
	switch c {
	case Empty:
		return "The container is not running"
	case Busy:
		return "The container is busy"
	case NotFound:
		return "The container was not found"
	case PermissionDenied:
		return "Permission denied"
	case WrongCommand:
		return "Wrong command"

	case ConfCgroup:
		return "Failed to configure the control group"
	case ConfMount:
		return "Failed to configure the mount points"
	case ConfUtsname:
		return "Failed to configure the utsname"
	case ConfNetwork:
		return "Failed to configure the network"
	case ConfRootfs:
		return "Failed to configure the root fs"

	case SetupCgroup:
		return "Failed to setup the control group"
	case SetupMount:
		return "Failed to setup the mount points"
	case SetupUtsname:
		return "Failed to setup the utsname"
	case SetupNetwork:
		return "Failed to setup the network"
	case SetupRootfs:
		return "Failed to setup the root fs"
	}
	return ""
}

var names = [LastError]string{
	Empty:            "EMPTY",
	Busy:             "BUSY",
	NotFound:         "NOT_FOUND",
	PermissionDenied: "PERMISSION_DENIED",
	WrongCommand:     "WRONG_COMMAND",

	ConfCgroup:  "CONF_CGROUP",
	ConfMount:   "CONF_MOUNT",
	ConfUtsname: "CONF_UTSNAME",
	ConfNetwork: "CONF_NETWORK",
	ConfRootfs:  "CONF_ROOTFS",

	SetupCgroup:  "SETUP_CGROUP",
	SetupMount:   "SETUP_MOUNT",
	SetupUtsname: "SETUP_UTSNAME",
	SetupNetwork: "SETUP_NETWORK",
	SetupRootfs:  "SETUP_ROOTFS",
}

// Valid reports whether c lies in [0, LastError).
func (c Code) Valid() bool {
	return 0 <= c && c < LastError
}

// Message is the catalogue text for c, or "" when there is none.
func (c Code) Message() string {
	msg, _ := Lookup(int(c))
	return msg
}

// String is the code name, e.g. NOT_FOUND, or Code(N) outside the catalogue.
func (c Code) String() string {
	if c.Valid() && names[c] != "" {
		return names[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Codes lists every code in the catalogue in ascending order.
func Codes() []Code {
	codes := make([]Code, 0, LastError)
	for c := Empty; c < LastError; c++ {
		codes = append(codes, c)
	}
	return codes
}
