package dialog

import (
	"github.com/goliatone/go-botsettings/pkg/submit"
	"github.com/goliatone/go-botsettings/pkg/transport"
)

// Option configures a Dialog before construction.
type Option func(*Dialog)

// WithTitle sets the dialog title shown by renderers.
func WithTitle(title string) Option {
	return func(d *Dialog) {
		d.title = title
	}
}

// WithEndpoints points the dialog at a bot-manager API root.
func WithEndpoints(endpoints submit.Endpoints) Option {
	return func(d *Dialog) {
		d.endpoints = endpoints
	}
}

// WithClient swaps the transport client, for timeouts or test doubles.
func WithClient(client *transport.Client) Option {
	return func(d *Dialog) {
		if client != nil {
			d.client = client
		}
	}
}

// WithTokenSource wires the secret-fetch collaborator used by install mode.
func WithTokenSource(tokens transport.TokenSource) Option {
	return func(d *Dialog) {
		d.tokens = tokens
	}
}

// WithCloseFunc registers the caller's close callback.
func WithCloseFunc(onClose CloseFunc) Option {
	return func(d *Dialog) {
		d.onClose = onClose
	}
}
