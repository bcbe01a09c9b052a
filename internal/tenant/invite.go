package tenant

import (
	"fmt"
	"math/rand"

	"github.com/homedoc/homedoc/internal/notify"
	"github.com/homedoc/homedoc/internal/survey"
)

// GenerateOTP returns a four-digit one-time passcode.
func GenerateOTP() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

// Inviter links tenants to committed surveys and sends them their OTP.
type Inviter struct {
	tenants  *Repository
	surveys  *survey.Repository
	notifier notify.Notifier

	// Overridable OTP source for testing.
	otp func() string
}

// NewInviter creates an inviter.
func NewInviter(tenants *Repository, surveys *survey.Repository, notifier notify.Notifier) *Inviter {
	return &Inviter{
		tenants:  tenants,
		surveys:  surveys,
		notifier: notifier,
		otp:      GenerateOTP,
	}
}

// SetTestOTP overrides OTP generation. Only for tests.
func SetTestOTP(i *Inviter, otp func() string) {
	i.otp = otp
}

// Invite assigns a tenant to the survey under surveyKey, creates the
// tenant record with a fresh OTP, and sends the invitation message.
func (i *Inviter) Invite(surveyKey, landlordName, name, phoneNumber string) (*Info, error) {
	if name == "" || phoneNumber == "" {
		return nil, fmt.Errorf("tenant name and phone number are required")
	}

	if _, err := i.surveys.Get(surveyKey); err != nil {
		return nil, err
	}

	otp := i.otp()
	if err := i.notifier.Send(phoneNumber, notify.InviteMessage(landlordName, otp)); err != nil {
		return nil, fmt.Errorf("sending invitation: %w", err)
	}

	ref := &survey.TenantRef{Name: name, PhoneNumber: phoneNumber, OTP: otp}
	if err := i.surveys.UpdateTenantInfo(surveyKey, ref); err != nil {
		return nil, err
	}
	if landlordName != "" {
		if err := i.surveys.SetLandlord(surveyKey, landlordName); err != nil {
			return nil, err
		}
	}

	info := &Info{
		Name:        name,
		PhoneNumber: phoneNumber,
		OTP:         otp,
		SurveyKey:   surveyKey,
	}
	if err := i.tenants.Put(name, info); err != nil {
		return nil, err
	}
	return info, nil
}

// VerifyOTP looks up a tenant by name and checks the passcode. A wrong
// code reports the same ErrNotFound as a missing tenant.
func (i *Inviter) VerifyOTP(name, otp string) (*Info, error) {
	info, err := i.tenants.Get(name)
	if err != nil {
		return nil, err
	}
	if otp == "" || info.OTP != otp {
		return nil, fmt.Errorf("tenant %s: wrong otp: %w", name, ErrNotFound)
	}
	return info, nil
}
