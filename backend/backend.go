// Package backend hands recolored art to the program that prints it next
// to the system information.
package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/hyfetch-cli/hyfetch/where"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Kind identifies a backend program.
type Kind string

const (
	Neofetch  Kind = "neofetch"
	Fastfetch Kind = "fastfetch"
)

// Kinds lists the supported backends.
var Kinds = []Kind{Neofetch, Fastfetch}

// ParseKind accepts a backend name as stored in the config file.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Kinds, kind) {
		return "", fmt.Errorf("unknown backend %q, expected one of %v", s, Kinds)
	}

	return kind, nil
}

// Command is the executable looked up on PATH.
func (k Kind) Command() string {
	return string(k)
}

// Args returns the flags that make the backend print the art in artFile
// as is.
func (k Kind) Args(artFile string) []string {
	switch k {
	case Fastfetch:
		return []string{"--file-raw", artFile}
	default:
		return []string{"--ascii", "--source", artFile}
	}
}

// Available reports whether the backend can be found on PATH.
func (k Kind) Available() bool {
	_, err := exec.LookPath(k.Command())
	return err == nil
}

// NotFoundError means the backend executable is not installed.
type NotFoundError struct {
	Command string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s command not found, is it installed and on PATH?", e.Command)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ExitError means the backend ran and exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s process exited with status code: %d", e.Command, e.Code)
}

// SignalError means the backend was killed by a signal.
type SignalError struct {
	Command string
	Signal  string
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("%s process terminated by signal: %s", e.Command, e.Signal)
}

// Runner runs a backend with the given standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run hands art to the backend with the terminal's standard streams.
func Run(art string, kind Kind, args []string) error {
	return Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}.Run(art, kind, args)
}

// Run writes art to a temporary file, runs the backend on it with the
// user's extra args appended and waits for it to finish.
func (r Runner) Run(art string, kind Kind, args []string) error {
	path, err := exec.LookPath(kind.Command())
	if err != nil {
		return &NotFoundError{Command: kind.Command(), Err: err}
	}

	file, err := afero.TempFile(filesystem.API(), where.Temp(), "art-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp file for ascii art: %w", err)
	}
	defer util.Ignore(func() error { return filesystem.API().Remove(file.Name()) })

	if _, err := file.WriteString(art); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write ascii art to temp file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write ascii art to temp file: %w", err)
	}

	cmd := exec.Command(path, append(kind.Args(file.Name()), args...)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = r.Stdin, r.Stdout, r.Stderr

	log.Debugf("running %s", cmd)

	return classify(kind.Command(), cmd.Run())
}

// classify turns the error of a finished command into one of the errors
// above, so callers can tell a crash from a failure.
func classify(command string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to execute %s as child process: %w", command, err)
	}

	if signal, ok := terminatedBy(exitErr.ProcessState); ok {
		return &SignalError{Command: command, Signal: signal}
	}

	return &ExitError{Command: command, Code: exitErr.ExitCode()}
}
