package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverServers(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"discordsrv", "gmailsrv", "README.md", "srv", "helper"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0755))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "trellosrv"), 0755)) // directories are skipped

	servers, err := DiscoverServers(dir, &ManagerMockLogger{})
	require.NoError(t, err)

	names := make([]string, 0, len(servers))
	for _, s := range servers {
		names = append(names, s.Name)
		assert.Equal(t, filepath.Join(dir, s.Name+"srv"), s.Executable)
	}
	assert.ElementsMatch(t, []string{"discord", "gmail"}, names)
}

func TestDiscoverServers_MissingDirectory(t *testing.T) {
	_, err := DiscoverServers(filepath.Join(t.TempDir(), "absent"), &ManagerMockLogger{})
	assert.Error(t, err)
}

func TestNewManager_ConfigOverridesDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "discordsrv"), []byte("bin"), 0755))

	config := &Config{
		Manager: ManagerOptions{
			RegistryPath:    filepath.Join(t.TempDir(), "servers.json"),
			LogDirectory:    t.TempDir(),
			ServerDirectory: dir,
		},
		Servers: []ServerConfig{
			{Name: "discord", Executable: "/custom/discordsrv", Args: []string{"--seed", "1"}},
		},
	}
	setConfigDefaults(config)

	m, err := NewManager(config, &ManagerMockLogger{})
	require.NoError(t, err)

	configs := m.ServerConfigs()
	require.Len(t, configs, 1)
	assert.Equal(t, "/custom/discordsrv", configs[0].Executable)
	assert.Equal(t, []string{"--seed", "1"}, configs[0].Args)
}
