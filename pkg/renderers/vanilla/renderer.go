package vanilla

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/render"
	"github.com/goliatone/go-botsettings/pkg/render/template"
	"github.com/goliatone/go-botsettings/pkg/render/template/gotemplate"
)

const dialogTemplate = "templates/dialog"

// Default chrome classes; theme tokens with matching keys override them.
var defaultClasses = map[string]string{
	"form":   "settings-dialog grid gap-4",
	"title":  "settings-dialog-title",
	"field":  "grid gap-2",
	"label":  "settings-dialog-label",
	"input":  "settings-dialog-input",
	"error":  "settings-dialog-error",
	"footer": "settings-dialog-footer",
	"cancel": "settings-dialog-cancel",
	"submit": "settings-dialog-submit",
}

// Renderer implements render.Renderer producing standalone HTML for the
// settings dialog.
type Renderer struct {
	templates template.TemplateRenderer
}

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine, for callers that bring
// their own chrome templates.
func WithTemplateRenderer(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// New constructs a vanilla renderer backed by the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
		if err != nil {
			return nil, fmt.Errorf("vanilla: build template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "vanilla"
}

// ContentType reports the output MIME type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the dialog form markup: chrome from the template, field
// widgets in insertion order, and inline error messages when present.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classes := chromeClasses(opts)
	perField := fieldClasses{
		wrapper: classes["field"],
		label:   classes["label"],
		input:   classes["input"],
		error:   classes["error"],
	}

	fields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		fields = append(fields, renderField(field, opts, perField))
	}

	data := map[string]any{
		"title":        sanitizeText(form.Title),
		"mode":         string(form.Mode),
		"bot_id":       form.BotID,
		"endpoint":     form.Endpoint,
		"fields":       fields,
		"form_errors":  opts.Errors[""],
		"css_vars":     cssVarsStyle(opts),
		"form_class":   classes["form"],
		"title_class":  classes["title"],
		"error_class":  classes["error"],
		"footer_class": classes["footer"],
		"cancel_class": classes["cancel"],
		"submit_class": classes["submit"],
	}

	output, err := r.templates.RenderTemplate(dialogTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla: render dialog: %w", err)
	}
	return []byte(output), nil
}

func chromeClasses(opts render.RenderOptions) map[string]string {
	classes := make(map[string]string, len(defaultClasses))
	for key, value := range defaultClasses {
		classes[key] = value
	}
	if opts.Theme == nil {
		return classes
	}
	for key, value := range opts.Theme.Tokens {
		if _, known := classes[key]; known && strings.TrimSpace(value) != "" {
			classes[key] = value
		}
	}
	return classes
}

func cssVarsStyle(opts render.RenderOptions) string {
	if opts.Theme == nil || len(opts.Theme.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(opts.Theme.CSSVars))
	for name := range opts.Theme.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, "--") {
			key = "--" + key
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(strings.TrimSpace(opts.Theme.CSSVars[name]))
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}
