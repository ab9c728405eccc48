package submit

import (
	"fmt"
	"strings"
)

// Mode selects the backend endpoint and payload shape for a submission.
type Mode string

const (
	// ModeCredentials updates a bot's credential values.
	ModeCredentials Mode = "credentials"
	// ModeActivate activates a bot on a phone number and channel.
	ModeActivate Mode = "activate"
	// ModeInstall installs a new bot; the only mode requiring an access token.
	ModeInstall Mode = "install"
)

// ParseMode normalises a raw mode tag.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeCredentials:
		return ModeCredentials, nil
	case ModeActivate:
		return ModeActivate, nil
	case ModeInstall:
		return ModeInstall, nil
	default:
		return "", fmt.Errorf("submit: unknown mode %q", raw)
	}
}

// RequiredKeys lists the field names a mode expects to exist in the field
// set before any value validation runs. Modes without well-known keys return
// nil.
func (m Mode) RequiredKeys() []string {
	if m == ModeActivate {
		return []string{FieldPhoneNumber, FieldWhatsApp}
	}
	return nil
}

// NeedsToken reports whether submissions in this mode must attach an access
// token fetched from the secret collaborator.
func (m Mode) NeedsToken() bool {
	return m == ModeInstall
}

// Well-known field names consumed by activate mode.
const (
	FieldPhoneNumber = "phone_number"
	FieldWhatsApp    = "whatsapp"
)
