package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tillbook/tillbook/internal/adapters/inbound/cli"
)

// shop is a temp store directory with its own .tillbook.yaml.
type shop struct {
	dir    string
	config string
	data   string
	bills  string
}

func newShop(t *testing.T, extra string) *shop {
	t.Helper()
	dir := t.TempDir()
	s := &shop{
		dir:    dir,
		config: filepath.Join(dir, ".tillbook.yaml"),
		data:   filepath.Join(dir, "data"),
		bills:  filepath.Join(dir, "bills"),
	}
	cfg := fmt.Sprintf("data_dir: %s\nreceipts_dir: %s\ntimezone: UTC\n%s", s.data, s.bills, extra)
	require.NoError(t, os.WriteFile(s.config, []byte(cfg), 0644))
	require.NoError(t, os.MkdirAll(s.data, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(s.data, "inventory.txt"), []byte(
		"Apple,Fruit,0.50,1.00,100\nBanana,Fruit,0.30,0.80,50\n"), 0644))
	return s
}

// run executes the root command against the shop and returns stdout.
func (s *shop) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", s.config}, args...))
	err := root.Execute()
	return out.String(), err
}

func (s *shop) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := s.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func (s *shop) inventory(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.data, "inventory.txt"))
	require.NoError(t, err)
	return string(data)
}
