package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	ms := NewModerationService(nil)

	cases := []struct {
		name   string
		text   string
		ok     bool
		reason string
	}{
		{"clean text passes", "what a lovely sunset today", true, ""},
		{"empty text passes", "", true, ""},
		{"profanity", "this is fucking terrible", false, "inappropriate_language"},
		{"profanity is word-bounded", "classic assessment", true, ""},
		{"url", "check out https://example.com/deal", false, "url_not_allowed"},
		{"email", "contact me at someone@example.com", false, "contact_info_not_allowed"},
		{"phone number", "call 555-123-4567 now", false, "contact_info_not_allowed"},
		{"repeated characters", "soooooo good", false, "spam_detected"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := ms.FilterContent(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestGetRejectionMessage(t *testing.T) {
	ms := NewModerationService(nil)

	assert.Contains(t, ms.GetRejectionMessage("url_not_allowed"), "URLs")
	assert.Contains(t, ms.GetRejectionMessage("something_else"), "guidelines")
}

func TestContainsProfanity(t *testing.T) {
	ms := NewModerationService(nil)
	assert.True(t, ms.ContainsProfanity("you absolute bastard"))
	assert.False(t, ms.ContainsProfanity("a perfectly pleasant sentence"))
}
