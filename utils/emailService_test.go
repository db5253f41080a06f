package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codecamp/config"
	"codecamp/models"
)

type sentMail struct {
	to, subject, body string
}

// The mail contract is fire-and-forget: assert the message was enqueued, not
// that delivery succeeded.
func TestSendVerificationMailEnqueues(t *testing.T) {
	config.LoadConfig()

	sent := make(chan sentMail, 1)
	old := Dispatch
	Dispatch = func(toEmail, toName, subject, htmlBody string) error {
		sent <- sentMail{to: toEmail, subject: subject, body: htmlBody}
		return nil
	}
	defer func() { Dispatch = old }()

	SendVerificationMail(models.User{
		FirstName:  "Ada",
		Email:      "ada@example.com",
		EmailToken: "token-123",
	})

	select {
	case m := <-sent:
		assert.Equal(t, "ada@example.com", m.to)
		assert.Contains(t, m.body, "emailToken=token-123")
	case <-time.After(time.Second):
		t.Fatal("verification mail was not enqueued")
	}
}

func TestSendPasswordResetEmailEnqueues(t *testing.T) {
	config.LoadConfig()

	sent := make(chan sentMail, 1)
	old := Dispatch
	Dispatch = func(toEmail, toName, subject, htmlBody string) error {
		sent <- sentMail{to: toEmail, subject: subject, body: htmlBody}
		return nil
	}
	defer func() { Dispatch = old }()

	SendPasswordResetEmail(models.User{
		FirstName:          "Ada",
		Email:              "ada@example.com",
		PasswordResetToken: "reset-456",
	})

	select {
	case m := <-sent:
		assert.Equal(t, "ada@example.com", m.to)
		assert.Contains(t, m.body, "passwordResetToken=reset-456")
	case <-time.After(time.Second):
		t.Fatal("password reset mail was not enqueued")
	}
}
