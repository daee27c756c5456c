package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestFlags_Names(t *testing.T) {
	var names []string
	for _, flag := range Flags() {
		names = append(names, flag.Names()[0])
	}

	assert.Equal(t, []string{
		"config-file",
		"log-level",
		"env",
		"log-file",
		"no-color",
		"reveal-interval",
		"response-delay",
		"connect-delay",
		"clock-interval",
	}, names)
}

func TestFlags_DurationFlagsHaveEnvVars(t *testing.T) {
	flag := durationFlag("reveal-interval", "usage", "REVEAL_INTERVAL")

	assert.Equal(t, "reveal-interval", flag.Name)
	assert.Equal(t, cli.EnvVars("REVEAL_INTERVAL"), flag.Sources)
}

func TestValidateFileInput(t *testing.T) {
	existing := writeConfig(t, "config.yaml", "")

	assert.NoError(t, validateFileInput(existing))
	assert.Error(t, validateFileInput(""))
	assert.Error(t, validateFileInput(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidateParentDirectory(t *testing.T) {
	dir := t.TempDir()
	existing := writeConfig(t, "config.yaml", "")

	assert.NoError(t, validateParentDirectory(filepath.Join(dir, "ghostterm.log")))
	assert.Error(t, validateParentDirectory(""))
	assert.Error(t, validateParentDirectory(filepath.Join(dir, "missing", "ghostterm.log")))
	assert.Error(t, validateParentDirectory(filepath.Join(existing, "ghostterm.log")), "parent is a file")
}
