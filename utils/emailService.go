package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"codecamp/config"
	"codecamp/models"
)

// Dispatch delivers one mail. Swappable so tests can assert a message was
// enqueued without talking to Sendgrid.
var Dispatch = sendgridDispatch

func sendgridDispatch(toEmail, toName, subject, htmlBody string) error {
	from := sgmail.NewEmail("codecamp", config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendVerificationMail mails the account verification link. Fire-and-forget:
// the result is logged, never awaited and never propagated to the caller.
func SendVerificationMail(user models.User) {
	subject := "Verify your codecamp account"
	body := fmt.Sprintf(`<p>
		Hello, %s, thank you for signing up to learn to code with our platform. Please click on the link
		below to verify your account.
		<a href="%s/auth/verify-email?emailToken=%s">Verify Email</a>
	</p>`, user.FirstName, config.AppConfig.FrontendURL, user.EmailToken)

	go func() {
		if err := Dispatch(user.Email, user.FirstName, subject, body); err != nil {
			log.Printf("Error sending verification mail to %s: %v", user.Email, err)
			return
		}
		log.Println("Verification sent")
	}()
}

// SendPasswordResetEmail mails the password reset link. Fire-and-forget.
func SendPasswordResetEmail(user models.User) {
	subject := "Reset your codecamp password"
	body := fmt.Sprintf(`<p>
		Hello 👋 %s, click the link to reset your password
		<a href="%s/password-reset?passwordResetToken=%s">Reset Password</a>
	</p>`, user.FirstName, config.AppConfig.FrontendURL, user.PasswordResetToken)

	go func() {
		if err := Dispatch(user.Email, user.FirstName, subject, body); err != nil {
			log.Printf("Error sending password reset mail to %s: %v", user.Email, err)
			return
		}
		log.Println("Email sent")
	}()
}
