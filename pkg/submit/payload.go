package submit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/model"
)

// Payload is the tagged union of request bodies, one variant per mode. Each
// variant is built from a validated field set by its constructor; the dynamic
// any-shaped assembly this replaces lives on only inside InstallPayload's
// value map.
type Payload interface {
	Mode() Mode
	MarshalBody() ([]byte, error)
}

// CredentialsPayload wraps every field verbatim under a credentials object.
type CredentialsPayload struct {
	Credentials map[string]any `json:"credentials"`
}

// Mode reports ModeCredentials.
func (CredentialsPayload) Mode() Mode { return ModeCredentials }

// MarshalBody serialises the payload as JSON.
func (p CredentialsPayload) MarshalBody() ([]byte, error) { return json.Marshal(p) }

// ActivatePayload places the phone number at the top level and nests the
// whatsapp key under channels.
type ActivatePayload struct {
	PhoneNumber string   `json:"phone_number"`
	Channels    Channels `json:"channels"`
}

// Channels holds per-channel activation keys.
type Channels struct {
	WhatsApp string `json:"whatsapp"`
}

// Mode reports ModeActivate.
func (ActivatePayload) Mode() Mode { return ModeActivate }

// MarshalBody serialises the payload as JSON.
func (p ActivatePayload) MarshalBody() ([]byte, error) { return json.Marshal(p) }

// InstallPayload carries the install fields as a flat object; list-typed
// fields are pre-split into ordered string sequences.
type InstallPayload struct {
	Fields map[string]any
}

// Mode reports ModeInstall.
func (InstallPayload) Mode() Mode { return ModeInstall }

// MarshalBody serialises the flat field map as JSON.
func (p InstallPayload) MarshalBody() ([]byte, error) { return json.Marshal(p.Fields) }

// Build validates the field set for the given mode and constructs the
// matching payload variant. No payload is produced when validation fails.
func Build(mode Mode, fields *model.FieldSet) (Payload, error) {
	if err := ValidateSchema(mode, fields); err != nil {
		return nil, err
	}
	switch mode {
	case ModeCredentials:
		return buildCredentials(fields)
	case ModeActivate:
		return buildActivate(fields)
	case ModeInstall:
		return buildInstall(fields)
	default:
		return nil, fmt.Errorf("submit: unknown mode %q", mode)
	}
}

func buildCredentials(fields *model.FieldSet) (Payload, error) {
	if err := ValidateRequired(fields); err != nil {
		return nil, err
	}
	credentials := make(map[string]any, fields.Len())
	for _, field := range fields.Fields() {
		credentials[field.Name] = field.Value
	}
	return CredentialsPayload{Credentials: credentials}, nil
}

func buildActivate(fields *model.FieldSet) (Payload, error) {
	verr := &ValidationError{}
	phone, _ := fields.Get(FieldPhoneNumber)
	if phone.Empty() {
		verr.add(FieldPhoneNumber, "phone_number is required")
	}
	whatsapp, _ := fields.Get(FieldWhatsApp)
	if whatsapp.Empty() {
		verr.add(FieldWhatsApp, "whatsapp key is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return ActivatePayload{
		PhoneNumber: phone.StringValue(),
		Channels:    Channels{WhatsApp: whatsapp.StringValue()},
	}, nil
}

func buildInstall(fields *model.FieldSet) (Payload, error) {
	if err := ValidateRequired(fields); err != nil {
		return nil, err
	}
	out := make(map[string]any, fields.Len())
	for _, field := range fields.Fields() {
		if field.Type == model.FieldTypeList {
			out[field.Name] = SplitList(field.StringValue())
			continue
		}
		out[field.Name] = field.Value
	}
	return InstallPayload{Fields: out}, nil
}

// SplitList splits a comma-separated value into an ordered sequence, trimming
// each segment. Empty segments (for example from a trailing comma) are kept,
// matching the backend's expectation for index URL lists.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}
