package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServers(t *testing.T) {
	servers := ListServers()

	require.Len(t, servers, 3)
	for _, s := range servers {
		assert.Contains(t, s, "id")
		assert.Contains(t, s, "name")
		assert.Contains(t, s, "member_count")
		assert.Contains(t, s, "owner")
	}
	assert.Equal(t, "Gaming Hub", servers[0]["name"])
}

func TestListChannels(t *testing.T) {
	channels := ListChannels("813245987654321001")

	require.Len(t, channels, 5)
	for _, c := range channels {
		assert.Equal(t, "813245987654321001", c["server_id"])
		assert.Contains(t, c, "name")
		assert.Contains(t, c, "type")
	}
	assert.Equal(t, "voice", channels[4]["type"])
}

func TestSendMessage(t *testing.T) {
	msg := SendMessage("99887766", "hello from the test")

	assert.Equal(t, "99887766", msg["channel_id"])
	assert.Equal(t, "hello from the test", msg["content"])
	assert.Equal(t, true, msg["delivered"])
	assert.NotEmpty(t, msg["id"])
	assert.NotEmpty(t, msg["timestamp"])
}

func TestGetUserInfo(t *testing.T) {
	info := GetUserInfo("813245987654321999")

	assert.Equal(t, "813245987654321999", info["id"])
	assert.Contains(t, info, "username")
	assert.Contains(t, info, "status")
	assert.Contains(t, info, "roles")
}

func TestGetUserInfo_ShortID(t *testing.T) {
	info := GetUserInfo("x1")
	assert.Equal(t, "x1", info["id"])
	assert.Contains(t, info["username"], "x1")
}
