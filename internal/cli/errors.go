package cli

import "fmt"

// inputError names the file (or "stdin") a read or decode failure came from.
type inputError struct {
	source string
	err    error
}

func (e inputError) Error() string {
	return fmt.Sprintf("%s: %v", e.source, e.err)
}

func (e inputError) Unwrap() error { return e.err }

func errInput(source string, err error) error {
	return inputError{source: source, err: err}
}

type flagError struct {
	flag   string
	reason string
}

func (e flagError) Error() string {
	return fmt.Sprintf("--%s %s", e.flag, e.reason)
}

func errFlag(flag, reason string) error {
	return flagError{flag: flag, reason: reason}
}
