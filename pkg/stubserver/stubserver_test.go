package stubserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

func TestIntegrations(t *testing.T) {
	names := Integrations()
	assert.Equal(t, []string{"discord", "gmail", "slack", "trello", "woocommerce"}, names)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("slack"))
	assert.False(t, IsKnown("jira"))
}

func TestNew(t *testing.T) {
	for _, name := range Integrations() {
		s, err := New(name)
		require.NoError(t, err, "integration: %s", name)
		require.NotNil(t, s)
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("jira")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
