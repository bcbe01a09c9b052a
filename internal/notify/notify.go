// Package notify formats and delivers tenant invitation messages.
// Actual SMS transport is an external service; the default notifier
// just records the message.
package notify

import (
	"fmt"
	"log/slog"
)

// Notifier delivers a message to a phone number.
type Notifier interface {
	Send(phoneNumber, message string) error
}

// InviteMessage builds the SMS body for a tenant invitation.
func InviteMessage(landlordName, otp string) string {
	return fmt.Sprintf(
		"Hi! %s, your landlord, sent you an invitation to homedoc!\n"+
			"This is your OTP **%s**\n"+
			"Use it when logging in as a tenant!",
		landlordName, otp,
	)
}

// LogNotifier writes outbound messages to the structured log instead
// of sending them. Used when no SMS gateway is configured.
type LogNotifier struct{}

// Send logs the message.
func (LogNotifier) Send(phoneNumber, message string) error {
	slog.Info("sms notification", "to", phoneNumber, "message", message)
	return nil
}
