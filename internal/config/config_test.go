package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFile(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultColumns, conf.Columns)
	assert.Empty(t, conf.InputPath)
	assert.Empty(t, conf.SourcePath())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analizzalog.yaml")
	yamlData := `
inputPath: data/logs.json
outputPath: out/risultati.json
columns:
  event: 3
where: "NOT user:bot"
concurrent: true
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/logs.json", conf.InputPath)
	assert.Equal(t, "out/risultati.json", conf.OutputPath)
	assert.Equal(t, engine.ColumnMapping{User: 1, Event: 3}, conf.Columns, "unset user column keeps its default")
	assert.Equal(t, "NOT user:bot", conf.Where)
	assert.True(t, conf.Concurrent)
	assert.False(t, conf.Strict)
	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
	assert.Equal(t, path, conf.SourcePath())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidateAndDefaults(t *testing.T) {
	conf := New()
	require.NoError(t, conf.ValidateAndDefaults())
	assert.Equal(t, "info", conf.Logging.Level)

	conf.Columns.Event = -2
	assert.Error(t, conf.ValidateAndDefaults())
}

func TestResolvePaths(t *testing.T) {
	conf := New()
	in, out := conf.ResolvePaths()
	assert.True(t, in)
	assert.True(t, out)
	assert.Equal(t, engine.Config{InputPath: DefaultInputPath, OutputPath: DefaultOutputPath}, conf.Pipeline())

	conf = New()
	conf.InputPath = "mine.json"
	in, out = conf.ResolvePaths()
	assert.False(t, in)
	assert.True(t, out)
	assert.Equal(t, "mine.json", conf.InputPath)
}
