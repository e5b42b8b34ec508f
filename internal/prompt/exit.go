package prompt

import "strconv"

// ExitStatus is the status of the previous command, which the shell may not
// have reported. The zero value is unknown.
type ExitStatus struct {
	code  uint8
	known bool
}

// UnknownExit is the status used when the shell did not pass one.
var UnknownExit = ExitStatus{}

// Exit returns a known status.
func Exit(code uint8) ExitStatus {
	return ExitStatus{code: code, known: true}
}

// Code returns the status and whether it is known.
func (e ExitStatus) Code() (uint8, bool) {
	return e.code, e.known
}

// Success reports a known zero status.
func (e ExitStatus) Success() bool {
	return e.known && e.code == 0
}

// Label is the text shown in the exit segment: "E0", "E127" or "E?".
func (e ExitStatus) Label() string {
	if !e.known {
		return "E?"
	}
	return "E" + strconv.Itoa(int(e.code))
}
