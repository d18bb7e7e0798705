// Package gmail is a stub Gmail integration with canned mailbox data.
package gmail

import (
	"strings"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

var sampleEmails = []map[string]interface{}{
	{
		"id":      "msg_a1b2c3d4",
		"from":    "alice@example.com",
		"subject": "Quarterly planning notes",
		"snippet": "Attached are the notes from yesterday's planning session...",
		"labels":  []string{"INBOX", "IMPORTANT"},
		"unread":  true,
	},
	{
		"id":      "msg_e5f6a7b8",
		"from":    "build-bot@ci.example.com",
		"subject": "Nightly build #482 passed",
		"snippet": "All 1,204 tests passed in 96 seconds.",
		"labels":  []string{"INBOX", "CI"},
		"unread":  false,
	},
	{
		"id":      "msg_c9d0e1f2",
		"from":    "newsletter@devweekly.io",
		"subject": "Dev Weekly: process supervisors revisited",
		"snippet": "This week we look at PID files and why they refuse to die...",
		"labels":  []string{"INBOX", "NEWSLETTERS"},
		"unread":  true,
	},
	{
		"id":      "msg_13579bdf",
		"from":    "bob@example.com",
		"subject": "Re: lunch on Thursday?",
		"snippet": "Works for me, see you at noon.",
		"labels":  []string{"INBOX"},
		"unread":  false,
	},
}

// ListEmails returns up to maxResults canned inbox entries.
func ListEmails(maxResults int) []map[string]interface{} {
	if maxResults <= 0 || maxResults > len(sampleEmails) {
		maxResults = len(sampleEmails)
	}
	emails := make([]map[string]interface{}, 0, maxResults)
	for _, e := range sampleEmails[:maxResults] {
		copied := make(map[string]interface{}, len(e)+1)
		for k, v := range e {
			copied[k] = v
		}
		copied["received_at"] = mockdata.Timestamp(mockdata.Count(1, 72))
		emails = append(emails, copied)
	}
	return emails
}

// GetEmail returns the full fake body for a message ID.
func GetEmail(messageID string) map[string]interface{} {
	for _, e := range sampleEmails {
		if e["id"] == messageID {
			full := make(map[string]interface{}, len(e)+1)
			for k, v := range e {
				full[k] = v
			}
			full["body"] = "This is the full mock body of " + messageID + ".\n\nRegards,\nThe MockHub mail fixture"
			return full
		}
	}
	return nil
}

// SendEmail pretends to send a message and returns the sent record.
func SendEmail(to, subject, body string) map[string]interface{} {
	return map[string]interface{}{
		"id":      mockdata.ID("msg"),
		"to":      to,
		"subject": subject,
		"body":    body,
		"sent_at": mockdata.Timestamp(0),
		"status":  "sent",
	}
}

// SearchEmails does a substring match over the canned inbox.
func SearchEmails(query string) []map[string]interface{} {
	query = strings.ToLower(query)
	var matches []map[string]interface{}
	for _, e := range sampleEmails {
		subject, _ := e["subject"].(string)
		snippet, _ := e["snippet"].(string)
		from, _ := e["from"].(string)
		haystack := strings.ToLower(subject + " " + snippet + " " + from)
		if strings.Contains(haystack, query) {
			matches = append(matches, e)
		}
	}
	return matches
}
