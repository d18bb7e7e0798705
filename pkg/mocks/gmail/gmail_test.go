package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmails(t *testing.T) {
	emails := ListEmails(0)

	require.Len(t, emails, 4)
	for _, e := range emails {
		assert.Contains(t, e, "id")
		assert.Contains(t, e, "from")
		assert.Contains(t, e, "subject")
		assert.Contains(t, e, "received_at")
	}
}

func TestListEmails_MaxResults(t *testing.T) {
	assert.Len(t, ListEmails(2), 2)
	assert.Len(t, ListEmails(100), 4)
	assert.Len(t, ListEmails(-1), 4)
}

func TestGetEmail(t *testing.T) {
	email := GetEmail("msg_a1b2c3d4")

	require.NotNil(t, email)
	assert.Equal(t, "alice@example.com", email["from"])
	assert.Contains(t, email, "body")
}

func TestGetEmail_NotFound(t *testing.T) {
	assert.Nil(t, GetEmail("msg_does_not_exist"))
}

func TestSendEmail(t *testing.T) {
	sent := SendEmail("bob@example.com", "hi", "short body")

	assert.Equal(t, "bob@example.com", sent["to"])
	assert.Equal(t, "hi", sent["subject"])
	assert.Equal(t, "sent", sent["status"])
	assert.NotEmpty(t, sent["id"])
}

func TestSearchEmails(t *testing.T) {
	matches := SearchEmails("build")
	require.Len(t, matches, 1)
	assert.Equal(t, "msg_e5f6a7b8", matches[0]["id"])

	assert.Len(t, SearchEmails("EXAMPLE.COM"), 3, "search is case-insensitive and matches sender")
	assert.Empty(t, SearchEmails("zebra unicorns"))
}
