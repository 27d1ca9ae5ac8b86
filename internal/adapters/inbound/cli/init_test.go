package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/adapters/inbound/cli"
	"github.com/tillbook/tillbook/internal/adapters/outbound/config"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".tillbook.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "commit_mode: immediate")
	assert.Contains(t, string(data), "validation: legacy-permissive")
}

func TestInitCmd_GeneratedFileLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--commit-mode", "staged", "--validation", "strict"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(filepath.Join(tmpDir, ".tillbook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "staged", string(cfg.CommitMode))
	assert.Equal(t, "strict", string(cfg.Validation))
	assert.Equal(t, 5, cfg.LowStockThreshold)
}

func TestInitCmd_RejectsUnknownMode(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--commit-mode", "eventually"})
	assert.Error(t, root.Execute())

	_, err := os.Stat(filepath.Join(tmpDir, ".tillbook.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".tillbook.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".tillbook.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".tillbook.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: data")
}
