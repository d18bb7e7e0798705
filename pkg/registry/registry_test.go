package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RegistryMockLogger is a no-op Logger for testing
type RegistryMockLogger struct{}

func (m *RegistryMockLogger) Debugf(format string, args ...interface{}) {}
func (m *RegistryMockLogger) Infof(format string, args ...interface{})  {}
func (m *RegistryMockLogger) Warnf(format string, args ...interface{})  {}
func (m *RegistryMockLogger) Errorf(format string, args ...interface{}) {}

func registryPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "servers.json")
}

func TestLoad_MissingFile(t *testing.T) {
	r, err := Load(registryPath(t), &RegistryMockLogger{})

	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := registryPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path, &RegistryMockLogger{})

	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := registryPath(t)
	logger := &RegistryMockLogger{}

	r, err := Load(path, logger)
	require.NoError(t, err)

	started := time.Now().UTC().Truncate(time.Second)
	r.Put("discord", Entry{PID: 4242, Executable: "/opt/mockhub/discordsrv", StartedAt: started})
	r.Put("gmail", Entry{PID: 4243, Executable: "/opt/mockhub/gmailsrv", StartedAt: started})
	require.NoError(t, r.Save())

	reloaded, err := Load(path, logger)
	require.NoError(t, err)

	entry, ok := reloaded.Get("discord")
	require.True(t, ok)
	assert.Equal(t, 4242, entry.PID)
	assert.Equal(t, "/opt/mockhub/discordsrv", entry.Executable)
	assert.True(t, entry.StartedAt.Equal(started))

	assert.Equal(t, []string{"discord", "gmail"}, reloaded.Names())
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "servers.json")

	r, err := Load(path, &RegistryMockLogger{})
	require.NoError(t, err)

	r.Put("slack", Entry{PID: 1, Executable: "slacksrv", StartedAt: time.Now()})
	require.NoError(t, r.Save())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_WritesValidJSONMap(t *testing.T) {
	path := registryPath(t)

	r, err := Load(path, &RegistryMockLogger{})
	require.NoError(t, err)
	r.Put("trello", Entry{PID: 777, Executable: "trellosrv", StartedAt: time.Now()})
	require.NoError(t, r.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m map[string]Entry
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 777, m["trello"].PID)
}

func TestRemove(t *testing.T) {
	r, err := Load(registryPath(t), &RegistryMockLogger{})
	require.NoError(t, err)

	r.Put("discord", Entry{PID: 10})
	r.Remove("discord")
	r.Remove("never-existed") // no-op

	_, ok := r.Get("discord")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestPrune_DropsDeadEntries(t *testing.T) {
	r, err := Load(registryPath(t), &RegistryMockLogger{})
	require.NoError(t, err)

	r.Put("discord", Entry{PID: 100})
	r.Put("gmail", Entry{PID: 200})
	r.Put("slack", Entry{PID: 300})

	alive := map[int]bool{200: true}
	pruned := r.Prune(func(pid int) (bool, error) {
		return alive[pid], nil
	})

	assert.Equal(t, []string{"discord", "slack"}, pruned)
	assert.Equal(t, []string{"gmail"}, r.Names())
}

func TestPrune_ProbeErrorTreatedAsDead(t *testing.T) {
	r, err := Load(registryPath(t), &RegistryMockLogger{})
	require.NoError(t, err)

	r.Put("woocommerce", Entry{PID: 999})

	pruned := r.Prune(func(pid int) (bool, error) {
		return false, assert.AnError
	})

	assert.Equal(t, []string{"woocommerce"}, pruned)
	assert.Equal(t, 0, r.Len())
}
