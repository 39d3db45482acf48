package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	binaryPath := buildBinary(t)
	outputDir := filepath.Join(t.TempDir(), "scenarios")

	_, stderr, err := runMatbgen(t, binaryPath, "scenario", outputDir, "--seed", "0")
	require.NoError(t, err, "stderr: %s", stderr)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	// Two high versions, two low versions, the tutorial, and the manifest.
	assert.Len(t, names, 6)
	assert.Contains(t, names, "run_manifest.toml")

	sawTutorial := false
	for _, name := range names {
		if name == "run_manifest.toml" {
			continue
		}
		if filepath.Ext(name) == ".xml" && len(name) > len("MATB_EVENTS_tutorial") &&
			name[:len("MATB_EVENTS_tutorial")] == "MATB_EVENTS_tutorial" {
			sawTutorial = true
		}
		content, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		if filepath.Ext(name) == ".xml" {
			assert.Contains(t, string(content), "<MATB-EVENTS>")
			assert.Contains(t, string(content), "<control>END</control>")
		}
	}
	assert.True(t, sawTutorial, "tutorial scenario missing: %v", names)
}

func TestVersionCommand(t *testing.T) {
	binaryPath := buildBinary(t)

	stdout, stderr, err := runMatbgen(t, binaryPath, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "dev\n", stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "matbgen-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/matbgen")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build matbgen binary: %s", string(output))
	return binaryPath
}

func runMatbgen(t *testing.T, binaryPath string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
