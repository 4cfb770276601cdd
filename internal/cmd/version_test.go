package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	setupEnv(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "kamut version")
	assert.Contains(t, out.String(), "Go:")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	setupEnv(t)

	err := execute("version", "extra")
	assert.Error(t, err)
}

func TestVersionCmd_IgnoresBrokenConfig(t *testing.T) {
	dir := setupEnv(t)
	t.Setenv("KAMUT_CONFIG", dir)

	assert.NoError(t, execute("version"))
}
