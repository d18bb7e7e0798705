package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

type testLogger struct{}

func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Errorf(format string, args ...interface{}) {}

func readDocument(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var document map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &document))
	return document
}

func TestIntegrateCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	err := Integrate(path, []ServerEntry{
		{Name: "slack", Command: "/opt/mockhub/slacksrv", Environment: map[string]string{"LOG_LEVEL": "debug"}},
	}, testLogger{})
	require.NoError(t, err)

	document := readDocument(t, path)
	section, ok := document["mcpServers"].(map[string]interface{})
	require.True(t, ok)
	entry, ok := section["slack"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/opt/mockhub/slacksrv", entry["command"])
	assert.NotContains(t, entry, "name")

	_, err = os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err), "no backup expected for a new file")
}

func TestIntegrateMapShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{
  "theme": "dark",
  "mcpServers": {
    "existing": {"command": "/usr/bin/existing"}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	err := Integrate(path, []ServerEntry{
		{Name: "gmail", Command: "/opt/mockhub/gmailsrv", Args: []string{"--log-level", "info"}},
	}, testLogger{})
	require.NoError(t, err)

	document := readDocument(t, path)
	assert.Equal(t, "dark", document["theme"], "unrelated keys preserved")

	section := document["mcpServers"].(map[string]interface{})
	assert.Contains(t, section, "existing")
	entry := section["gmail"].(map[string]interface{})
	assert.Equal(t, "/opt/mockhub/gmailsrv", entry["command"])
	assert.Equal(t, []interface{}{"--log-level", "info"}, entry["args"])

	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err, "backup expected for an existing file")
}

func TestIntegrateListShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{
  "mcpServers": [
    {"name": "existing", "command": "/usr/bin/existing"},
    {"name": "slack", "command": "/old/slacksrv"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	err := Integrate(path, []ServerEntry{
		{Name: "slack", Command: "/opt/mockhub/slacksrv"},
	}, testLogger{})
	require.NoError(t, err)

	document := readDocument(t, path)
	section := document["mcpServers"].([]interface{})
	require.Len(t, section, 2, "same-name entry replaced, not appended")

	byName := map[string]map[string]interface{}{}
	for _, item := range section {
		object := item.(map[string]interface{})
		byName[object["name"].(string)] = object
	}
	assert.Equal(t, "/usr/bin/existing", byName["existing"]["command"])
	assert.Equal(t, "/opt/mockhub/slacksrv", byName["slack"]["command"])
}

func TestIntegrateUnsupportedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers": "oops"}`), 0644))

	err := Integrate(path, []ServerEntry{{Name: "slack", Command: "/x"}}, testLogger{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRemoveMapShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{"mcpServers": {"slack": {"command": "/x"}, "gmail": {"command": "/y"}}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	removed, err := Remove(path, []string{"slack", "missing"}, testLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{"slack"}, removed)

	document := readDocument(t, path)
	section := document["mcpServers"].(map[string]interface{})
	assert.NotContains(t, section, "slack")
	assert.Contains(t, section, "gmail")
}

func TestRemoveListShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{"mcpServers": [{"name": "slack", "command": "/x"}, {"name": "gmail", "command": "/y"}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	removed, err := Remove(path, []string{"gmail"}, testLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{"gmail"}, removed)

	document := readDocument(t, path)
	section := document["mcpServers"].([]interface{})
	require.Len(t, section, 1)
	assert.Equal(t, "slack", section[0].(map[string]interface{})["name"])
}

func TestRemoveMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	_, err := Remove(path, []string{"slack"}, testLogger{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRemoveNothingMatched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{"mcpServers": {"slack": {"command": "/x"}}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	removed, err := Remove(path, []string{"missing"}, testLogger{})
	require.NoError(t, err)
	assert.Empty(t, removed)

	_, err = os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err), "no backup when nothing changed")
}

func TestListIntegrated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	names, err := ListIntegrated(path)
	require.NoError(t, err)
	assert.Empty(t, names)

	seed := `{"mcpServers": {"slack": {"command": "/x"}, "gmail": {"command": "/y"}}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	names, err = ListIntegrated(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gmail", "slack"}, names)
}
