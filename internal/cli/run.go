package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/matzehuels/hsmgraph/pkg/errors"
)

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalid     = 2   // the map or an option was rejected
	ExitInterrupted = 130 // shell convention for SIGINT
)

// Run executes the command line args and returns the process exit code.
// Command output goes to stdout; logs, status lines and errors go to stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	oldStatus := statusOut
	statusOut = stderr
	defer func() { statusOut = oldStatus }()

	c := New(stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	code := ExitCode(err)
	switch {
	case code == ExitOK, code == ExitInterrupted:
	case len(errors.OffendingStates(err)) > 0:
		// already listed by printInvalidTopology
	default:
		printError("%s", errors.UserMessage(err))
	}
	return code
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidTopology, errors.ErrCodeMalformedName,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return ExitInvalid
	}
	return ExitFailure
}
