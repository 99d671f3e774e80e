package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nglint/internal/cli/config"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		existing string // existing nglint.yaml content
		args     []string
		wantErr  bool
	}{
		{
			name: "init empty directory",
		},
		{
			name:     "init existing config without force",
			existing: "format: json\n",
			wantErr:  true,
		},
		{
			name:     "init existing config with force",
			existing: "format: json\n",
			args:     []string{"--force"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfgPath := filepath.Join(dir, "nglint.yaml")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(cfgPath, []byte(tt.existing), 0o600))
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(append([]string{dir}, tt.args...))
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			err := cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already exists")
				assert.Equal(t, tt.existing, readFile(t, cfgPath), "existing config must be left alone")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "Created "+cfgPath)

			cfg, err := config.Load(dir, "", nil)
			require.NoError(t, err)
			assert.Equal(t, cfgPath, cfg.ConfigFile)
			assert.Equal(t, "text", cfg.Format)
			assert.Len(t, cfg.Rules, 8)
			require.NotNil(t, cfg.Rules["scss-per-component"].Enabled)
			assert.False(t, *cfg.Rules["scss-per-component"].Enabled)
		})
	}
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "web", "app")

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "nglint.yaml"))
}
