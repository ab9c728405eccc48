package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data renderers can use to customise
// their output without mutating the form.
type RenderOptions struct {
	// Values pre-populates rendered controls by field name, overriding the
	// descriptor values for this render only.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field name. Messages under
	// the empty key are treated as form-level. Renderers map these into
	// inline chrome next to the offending control.
	Errors map[string][]string
	// Theme carries resolved go-theme tokens and CSS variables; renderers
	// fall back to their built-in classes when nil.
	Theme *theme.RendererConfig
}
