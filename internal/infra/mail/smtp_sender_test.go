package mail

import (
	"bytes"
	"testing"

	"resumebuilder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_HeadersAndAttachment(t *testing.T) {
	msg := buildMessage(
		"noreply@resumebuilder.dev",
		"hr@corp.com",
		"Resume: Alice Doe",
		"<p>Please find attached my resume.</p>",
		service.EmailAttachment{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 fake"),
		},
	)

	assert.Equal(t, []string{"noreply@resumebuilder.dev"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"hr@corp.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Resume: Alice Doe"}, msg.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "resume.pdf")
	assert.Contains(t, raw.String(), "application/pdf")
}

func TestBuildMessage_NoAttachments(t *testing.T) {
	msg := buildMessage("noreply@resumebuilder.dev", "hr@corp.com", "Hello", "<p>Hi</p>")

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/html")
}
