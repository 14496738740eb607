package configure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quotebank/internal/cli"
	"github.com/thenoetrevino/quotebank/internal/config"
	clitest "github.com/thenoetrevino/quotebank/internal/testutil/cli"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, config.AppName, "config.yaml")
}

func TestConfigPath(t *testing.T) {
	want := setupConfigHome(t)
	_, testApp := clitest.SetupCLITest(t)

	res := clitest.ExecuteCommand(t, testApp, ConfigCmd(), "path", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, want, strings.TrimSpace(res.Stdout))

	res = clitest.ExecuteCommand(t, testApp, ConfigCmd(), "path", "--json")
	require.NoError(t, res.Err)
	result := clitest.ParseJSON(t, res.Stdout)
	assert.Equal(t, false, result["exists"])
}

func TestConfigInit(t *testing.T) {
	path := setupConfigHome(t)
	t.Setenv("QUOTEBANK_PREVIEW_LENGTH", "80")
	_, testApp := clitest.SetupCLITest(t)

	res := clitest.ExecuteCommand(t, testApp, ConfigCmd(), "init")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Wrote config")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "preview_length: 80")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.PreviewLength)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := setupConfigHome(t)
	_, testApp := clitest.SetupCLITest(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	res := clitest.ExecuteCommand(t, testApp, ConfigCmd(), "init")
	assert.Equal(t, cli.ExitUsage, res.ExitCode)

	res = clitest.ExecuteCommand(t, testApp, ConfigCmd(), "init", "--force")
	require.NoError(t, res.Err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: debug")
	assert.Contains(t, string(data), "preview_length:")
}

func TestConfigInit_DoesNotRecordWorkingDirectory(t *testing.T) {
	path := setupConfigHome(t)
	_, testApp := clitest.SetupCLITest(t)

	res := clitest.ExecuteCommand(t, testApp, ConfigCmd(), "init")
	require.NoError(t, res.Err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), wd)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ExportDir)
	assert.Equal(t, filepath.Join(wd, "quotes_export.csv"), cfg.DefaultExportPath())
}
