package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("practice@example.com", "nina@example.com", "Red flags", "line one\nline two")
	require.True(t, strings.HasPrefix(msg, "From: practice@example.com\r\n"))
	require.Contains(t, msg, "Subject: Red flags\r\n")
	require.Contains(t, msg, "\r\n\r\nline one\r\nline two\r\n")
}

func TestSendEMailNotConfigured(t *testing.T) {
	require.Nil(t, Connect("", "", "", "", false, "Practice"))
	require.Nil(t, Instance.SendEMail("nina@example.com", "subject", "body"))
}
