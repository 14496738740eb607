package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quotebank/internal/app"
	qcli "github.com/thenoetrevino/quotebank/internal/cli"
)

// Result holds everything a command run produced
type Result struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// ExecuteCommand runs cmd under a root carrying the global flags, with testApp
// injected so the command never opens a real database.
func ExecuteCommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) Result {
	t.Helper()
	return ExecuteCommandWithInput(t, testApp, cmd, nil, args...)
}

// ExecuteCommandWithInput is ExecuteCommand with stdin
func ExecuteCommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, stdin io.Reader, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "quotebank"}
	qcli.AddGlobalFlags(root)
	root.SetFlagErrorFunc(qcli.FlagError)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(append([]string{cmd.Name()}, args...))

	// Disable usage output on error for cleaner test output
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.ExecuteContext(qcli.WithApp(context.Background(), testApp))
	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
		ExitCode: qcli.ExitCode(err),
	}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
