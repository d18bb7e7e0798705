// Package slack is a stub Slack integration with canned workspace data.
package slack

import (
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// ListChannels returns a fixed workspace channel list.
func ListChannels() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "C01GENERAL0", "name": "general", "members": 48, "is_private": false, "topic": "Company-wide chatter"},
		{"id": "C02ENGINEER", "name": "engineering", "members": 17, "is_private": false, "topic": "Build breakages and bragging"},
		{"id": "C03INCIDENT", "name": "incidents", "members": 9, "is_private": false, "topic": "Pager follow-ups"},
		{"id": "C04WATERCLR", "name": "watercooler", "members": 35, "is_private": false, "topic": "Anything but work"},
		{"id": "C05SECRETS0", "name": "leads-only", "members": 4, "is_private": true, "topic": ""},
	}
}

// ListUsers returns a fixed member roster.
func ListUsers() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "U100ALICE00", "name": "alice", "real_name": "Alice Moreau", "is_admin": true, "status": "active"},
		{"id": "U200BOB0000", "name": "bob", "real_name": "Bob Tanaka", "is_admin": false, "status": "active"},
		{"id": "U300CAROL00", "name": "carol", "real_name": "Carol Okafor", "is_admin": false, "status": "away"},
		{"id": "U400DAVE000", "name": "dave", "real_name": "Dave Lindqvist", "is_admin": false, "status": "dnd"},
	}
}

// PostMessage pretends to post to a channel and returns the API-shaped ack.
func PostMessage(channel, text string) map[string]interface{} {
	return map[string]interface{}{
		"ok":      true,
		"channel": channel,
		"ts":      mockdata.Timestamp(0),
		"message": map[string]interface{}{
			"text": text,
			"user": "UBOTMOCKHUB",
			"type": "message",
		},
	}
}

// ChannelHistory fabricates recent messages for a channel.
func ChannelHistory(channel string, limit int) []map[string]interface{} {
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	users := []string{"U100ALICE00", "U200BOB0000", "U300CAROL00", "U400DAVE000"}
	texts := []string{
		"Deploy went out clean.",
		"Anyone else seeing flaky CI on the release branch?",
		"Lunch thread is that way ->",
		"Reminder: retro at 15:00.",
		"The coffee machine is self-hosting now.",
	}
	history := make([]map[string]interface{}, 0, limit)
	for i := 0; i < limit; i++ {
		history = append(history, map[string]interface{}{
			"channel": channel,
			"user":    users[i%len(users)],
			"text":    texts[i%len(texts)],
			"ts":      mockdata.Timestamp(i + 1),
		})
	}
	return history
}
