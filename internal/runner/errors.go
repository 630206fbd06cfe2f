package runner

import (
	"fmt"
	"strings"
)

// NotFoundError reports that the external executable could not be resolved
// on PATH. The message carries install guidance so the user can act on it.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found on PATH. Install it (see https://docs.astral.sh/uv/getting-started/installation/) or point the uv.executable config key at it", e.Name)
}

// ExitError reports a command that ran to completion with a non-zero exit
// code. Captured output is attached for diagnosis.
type ExitError struct {
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command `%s` exited with code %d", strings.Join(e.Argv, " "), e.ExitCode)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// TimeoutError reports a command that was killed after exceeding the
// configured deadline.
type TimeoutError struct {
	Argv []string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command `%s` timed out", strings.Join(e.Argv, " "))
}
