package e2e_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	configDir  string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "playerlist-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/playerlist")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		configDir:  t.TempDir(),
	}
}

// run executes the CLI and returns stdout and stderr separately
func (r *cliRunner) run(args ...string) (string, string, error) {
	fullArgs := append([]string{
		"--config-dir", r.configDir,
		"--storage", "file",
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (r *cliRunner) playerlistPath() string {
	return filepath.Join(r.configDir, "playerlist.json")
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing
type recordResponse struct {
	SteamID       string         `json:"steamid"`
	Steam3        string         `json:"steam3"`
	Verdict       string         `json:"verdict"`
	CustomData    map[string]any `json:"custom_data"`
	PreviousNames []string       `json:"previous_names"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type playerlistFile struct {
	Records map[string]map[string]any `json:"records"`
}

// Tests

func TestCLI_FirstRunCreatesPlayerlist(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.JSONEq(t, "[]", stdout)
	assert.Contains(t, stderr, "creating new playerlist")
	assert.NoFileExists(t, cli.playerlistPath())

	stdout, stderr, err = cli.run("verdict", "[U:1:22202]", "Cheater")
	require.NoError(t, err, "stderr: %s", stderr)

	var rec recordResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	assert.Equal(t, "76561197960287930", rec.SteamID)
	assert.Equal(t, "Cheater", rec.Verdict)
	assert.Equal(t, map[string]any{}, rec.CustomData)
	assert.FileExists(t, cli.playerlistPath())
}

func TestCLI_NameHistoryAndFileLayout(t *testing.T) {
	cli := newCLIRunner(t)

	_, stderr, err := cli.run("verdict", "76561197960287930", "Bot")
	require.NoError(t, err, "stderr: %s", stderr)

	for _, name := range []string{"alpha", "alpha", "beta"} {
		_, stderr, err = cli.run("name", "76561197960287930", name)
		require.NoError(t, err, "stderr: %s", stderr)
	}

	stdout, stderr, err := cli.run("name", "76561198012345678", "stranger")
	require.NoError(t, err, "stderr: %s", stderr)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &msg))
	assert.Contains(t, msg.Message, "No record")

	data, err := os.ReadFile(cli.playerlistPath())
	require.NoError(t, err)

	var file playerlistFile
	require.NoError(t, json.Unmarshal(data, &file))
	require.Len(t, file.Records, 1)
	rec := file.Records["76561197960287930"]
	assert.Equal(t, "Bot", rec["verdict"])
	assert.Equal(t, []any{"alpha", "beta"}, rec["previous_names"])
	assert.NotContains(t, rec, "steamid")
}

func TestCLI_LegacyNullCustomData(t *testing.T) {
	cli := newCLIRunner(t)

	legacy := `{"records":{"76561197960287930":{"custom_data":null,"verdict":"Suspicious",` +
		`"previous_names":["old"],"modified":"2021-01-01T00:00:00Z","created":"2021-01-01T00:00:00Z"}}}`
	require.NoError(t, os.WriteFile(cli.playerlistPath(), []byte(legacy), 0600))

	stdout, stderr, err := cli.run("show", "76561197960287930")
	require.NoError(t, err, "stderr: %s", stderr)

	var rec recordResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	assert.Equal(t, map[string]any{}, rec.CustomData)
	assert.Equal(t, []string{"old"}, rec.PreviousNames)
}

func TestCLI_MalformedPlayerlistAborts(t *testing.T) {
	cli := newCLIRunner(t)

	require.NoError(t, os.WriteFile(cli.playerlistPath(), []byte("{not json"), 0600))

	_, stderr, err := cli.run("verdict", "76561197960287930", "Cheater")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr, "otherwise data may be lost")

	data, err := os.ReadFile(cli.playerlistPath())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}
