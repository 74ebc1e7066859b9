package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xPolygon/zk-smt/log"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
	require.Equal(t, "0.0.0.0", cfg.RPC.Host)
	require.Equal(t, 5576, cfg.RPC.Port)
}

func TestLoadFileOverrides(t *testing.T) {
	user := FileData{Name: "user", Content: "RPCPort = 8080\n[Log]\nLevel = \"debug\"\n"}
	cfg, err := LoadFile([]FileData{user}, "")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.RPC.Port)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	t.Setenv("ZKSMT_RPCHost", "127.0.0.1")
	t.Setenv("ZKSMT_RPC_PORT", "9090")
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.RPC.Host)
	require.Equal(t, 9090, cfg.RPC.Port)
}

func TestLoadSavesRenderedConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFile(nil, dir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	require.Contains(t, string(data), "Port = 5576")
	require.NotContains(t, string(data), "{{")
}

func TestReadFilesConvertsJSON(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"Log": {"Level": "warn"}}`), DefaultCreationFilePermissions))
	yamlFile := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("Log:\n  Level: warn\n"), DefaultCreationFilePermissions))

	files, err := readFiles([]string{jsonFile})
	require.NoError(t, err)
	cfg, err := LoadFile(files, "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)

	_, err = readFiles([]string{yamlFile})
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}
