package submit

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Endpoints resolves the backend URL for each submission mode. BaseURL points
// at the bot-manager API root (for example "https://manager.example.com/v2").
type Endpoints struct {
	BaseURL string
}

// Resolve returns the endpoint URL for the given mode. Credentials and
// activate submissions are scoped to a bot id; install is not.
func (e Endpoints) Resolve(mode Mode, botID string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(e.BaseURL), "/")
	if base == "" {
		return "", errors.New("submit: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("submit: invalid base URL %q: %w", e.BaseURL, err)
	}

	switch mode {
	case ModeCredentials, ModeActivate:
		id := strings.TrimSpace(botID)
		if id == "" {
			return "", fmt.Errorf("submit: mode %q requires a bot id", mode)
		}
		action := "configure"
		if mode == ModeActivate {
			action = "activate"
		}
		return fmt.Sprintf("%s/bot/%s/%s", base, url.PathEscape(id), action), nil
	case ModeInstall:
		return base + "/bot/install", nil
	default:
		return "", fmt.Errorf("submit: unknown mode %q", mode)
	}
}
