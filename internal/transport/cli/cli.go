// Package cli is the command-line surface of taskflow.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskflow/internal/entities"
	"taskflow/internal/usecase"
)

const (
	ExitSuccess           = 0
	ExitActionFailed      = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitSessionExpired    = 4
)

const usage = `usage: taskflow <command> [flags]

commands:
  login     -email -password
  register  -username -email -password -confirm -accept-terms
  logout
  tasks     [-team id] [-assignee id] [-search text]
  serve     run the local dashboard
`

// InvocationError is a malformed command line.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// CLI dispatches commands to the usecase layer.
type CLI struct {
	uc     usecase.InterfaceUsecase
	out    io.Writer
	errOut io.Writer
	serve  func(ctx context.Context) error
}

// New builds a CLI. serve runs the dashboard until ctx is done.
func New(uc usecase.InterfaceUsecase, out, errOut io.Writer, serve func(ctx context.Context) error) *CLI {
	return &CLI{uc: uc, out: out, errOut: errOut, serve: serve}
}

// Run executes args (without argv[0]) and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		_, _ = io.WriteString(c.errOut, usage)
		return ExitInvalidInvocation
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "login":
		err = c.login(ctx, rest)
	case "register":
		err = c.register(ctx, rest)
	case "logout":
		err = c.logout(ctx, rest)
	case "tasks":
		err = c.tasks(ctx, rest)
	case "serve":
		err = c.runServe(ctx, rest)
	case "help", "-h", "-help", "--help":
		_, _ = io.WriteString(c.out, usage)
		return ExitSuccess
	default:
		err = invalidInvocationf("unknown command %q", cmd)
	}
	if err == nil {
		return ExitSuccess
	}

	code := ExitCode(err)
	switch code {
	case ExitSessionExpired:
		fmt.Fprintf(c.errOut, "%s: session expired, run taskflow login\n", err)
	case ExitInvalidInvocation:
		fmt.Fprintf(c.errOut, "%s\n\n%s", err, usage)
	default:
		fmt.Fprintln(c.errOut, err)
	}
	return code
}

// ExitCode maps an error to the exit code of the process.
func ExitCode(err error) int {
	var inv *InvocationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &inv):
		return inv.ExitCode
	case errors.Is(err, entities.ErrUnauthorized):
		return ExitSessionExpired
	default:
		return ExitActionFailed
	}
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return invalidInvocationf("%s: %v", fs.Name(), err)
	}
	if fs.NArg() != 0 {
		return invalidInvocationf("%s: unexpected positional arguments: %q", fs.Name(), strings.Join(fs.Args(), " "))
	}
	return nil
}
