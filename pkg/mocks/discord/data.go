// Package discord is a stub Discord integration: every tool returns
// hardcoded or randomly generated data in the shape the real API would use.
package discord

import (
	"fmt"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// ListServers returns three static guilds.
func ListServers() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":           "813245987654321001",
			"name":         "Gaming Hub",
			"member_count": 15420,
			"owner":        "GameMaster#0001",
			"created_at":   "2020-03-15T10:00:00Z",
		},
		{
			"id":           "813245987654321002",
			"name":         "Dev Community",
			"member_count": 8932,
			"owner":        "CodeWizard#1337",
			"created_at":   "2021-07-22T14:30:00Z",
		},
		{
			"id":           "813245987654321003",
			"name":         "Music Lounge",
			"member_count": 3217,
			"owner":        "DJFlow#8080",
			"created_at":   "2022-01-05T09:15:00Z",
		},
	}
}

// ListChannels returns a fixed channel layout for any server ID.
func ListChannels(serverID string) []map[string]interface{} {
	channels := []map[string]interface{}{}
	for i, name := range []string{"general", "announcements", "random", "help"} {
		channels = append(channels, map[string]interface{}{
			"id":        mockdata.NumericID(),
			"server_id": serverID,
			"name":      name,
			"type":      "text",
			"position":  i,
		})
	}
	channels = append(channels, map[string]interface{}{
		"id":        mockdata.NumericID(),
		"server_id": serverID,
		"name":      "Voice Chat",
		"type":      "voice",
		"position":  len(channels),
	})
	return channels
}

// SendMessage pretends to post a message and returns the created record.
func SendMessage(channelID, content string) map[string]interface{} {
	return map[string]interface{}{
		"id":         mockdata.NumericID(),
		"channel_id": channelID,
		"content":    content,
		"author":     "MockHub Bot#0000",
		"timestamp":  mockdata.Timestamp(0),
		"delivered":  true,
	}
}

// GetUserInfo fabricates a member profile for any user ID.
func GetUserInfo(userID string) map[string]interface{} {
	suffix := userID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return map[string]interface{}{
		"id":       userID,
		"username": fmt.Sprintf("user_%s", suffix),
		"status":   mockdata.Pick("online", "idle", "dnd", "offline"),
		"roles":    []string{"member", mockdata.Pick("moderator", "contributor", "regular")},
		"joined_at": mockdata.Timestamp(
			mockdata.Count(24, 24*365)),
	}
}
