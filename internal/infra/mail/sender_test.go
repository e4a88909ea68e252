package mail

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/infra/queue"
)

func TestInquiryTemplateRendersPayload(t *testing.T) {
	payload := queue.NotificationPayload{
		Kind:       queue.NotificationKindContact,
		Name:       "Fatima Ali",
		Email:      "fatima@example.com",
		Phone:      "+971501234567",
		Message:    "Villa renovation quote",
		Source:     "WEBSITE",
		ReceivedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	var body bytes.Buffer
	assert.NoError(t, inquiryTemplate.Execute(&body, payload))

	html := body.String()
	assert.Contains(t, html, "Fatima Ali")
	assert.Contains(t, html, "fatima@example.com")
	assert.Contains(t, html, "+971501234567")
	assert.Contains(t, html, "Villa renovation quote")
	assert.Contains(t, html, "2026-03-14 09:30")
}

func TestInquiryTemplateOmitsEmptyOptionalFields(t *testing.T) {
	payload := queue.NotificationPayload{
		Kind:       queue.NotificationKindLead,
		Name:       "Omar",
		Email:      "omar@example.com",
		ReceivedAt: time.Now(),
	}

	var body bytes.Buffer
	assert.NoError(t, inquiryTemplate.Execute(&body, payload))
	assert.NotContains(t, body.String(), "Phone:")
}
