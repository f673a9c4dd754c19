// Package proc abstracts running an executable and capturing its stdout,
// so that version discovery can be tested with canned output.
package proc

import "os/exec"

// Runner runs an executable to completion and returns what it printed to
// stdout. Implementations must be synchronous.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// NewRunner creates the Runner used outside of tests
func NewRunner() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
