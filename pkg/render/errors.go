package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/submit"
	"github.com/goliatone/go-botsettings/pkg/transport"
)

// ErrorMapping splits submission feedback into field-level and form-level
// messages keyed by field name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapSubmitError normalises a failed submission into renderable messages.
// Validation errors map onto their fields; server errors surface the
// provided detail as a form-level message, falling back to a generic notice.
func MapSubmitError(err error) ErrorMapping {
	if err == nil {
		return ErrorMapping{}
	}

	var verr *submit.ValidationError
	if errors.As(err, &verr) {
		fields := make(map[string][]string, len(verr.Fields))
		for name, messages := range verr.Fields {
			fields[name] = normalizeMessages(messages)
		}
		return ErrorMapping{Fields: fields}
	}

	var apiErr *transport.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return ErrorMapping{Form: []string{apiErr.Detail}}
	}

	return ErrorMapping{Form: []string{"Submission failed. Please try again."}}
}

// Merge folds the mapping into an Errors map suitable for RenderOptions,
// with form-level messages stored under the empty key.
func (m ErrorMapping) Merge(into map[string][]string) map[string][]string {
	if into == nil {
		into = make(map[string][]string)
	}
	for name, messages := range m.Fields {
		into[name] = append(into[name], messages...)
	}
	if len(m.Form) > 0 {
		into[""] = append(into[""], m.Form...)
	}
	return into
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
