package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChannels(t *testing.T) {
	channels := ListChannels()

	require.Len(t, channels, 5)
	for _, c := range channels {
		assert.Contains(t, c, "id")
		assert.Contains(t, c, "name")
		assert.Contains(t, c, "members")
	}
	assert.Equal(t, true, channels[4]["is_private"])
}

func TestListUsers(t *testing.T) {
	users := ListUsers()

	require.Len(t, users, 4)
	assert.Equal(t, true, users[0]["is_admin"])
	for _, u := range users {
		assert.Contains(t, u, "real_name")
		assert.Contains(t, u, "status")
	}
}

func TestPostMessage(t *testing.T) {
	ack := PostMessage("C02ENGINEER", "ship it")

	assert.Equal(t, true, ack["ok"])
	assert.Equal(t, "C02ENGINEER", ack["channel"])
	message, ok := ack["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ship it", message["text"])
}

func TestChannelHistory(t *testing.T) {
	history := ChannelHistory("C01GENERAL0", 3)

	require.Len(t, history, 3)
	for _, m := range history {
		assert.Equal(t, "C01GENERAL0", m["channel"])
		assert.Contains(t, m, "user")
		assert.Contains(t, m, "text")
		assert.Contains(t, m, "ts")
	}
}

func TestChannelHistory_LimitClamping(t *testing.T) {
	assert.Len(t, ChannelHistory("C01GENERAL0", 0), 5)
	assert.Len(t, ChannelHistory("C01GENERAL0", 999), 5)
	assert.Len(t, ChannelHistory("C01GENERAL0", 20), 20)
}
