package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	assert.Equal(t, "config", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "path", "init"}, names)
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cmd := NewCmdPath()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, filepath.Join(dir, "tagmark", "config.yml")+"\n", buf.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "", formatBool(false))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "", formatInt(0))
	assert.Equal(t, "128", formatInt(128))
}
