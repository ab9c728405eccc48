// Package botsettings renders a configurable settings/credentials dialog for
// a bot and submits the entered values to the bot-manager backend, shaped by
// the submission mode (credentials, activate, install).
package botsettings

import (
	"context"

	"github.com/goliatone/go-botsettings/pkg/dialog"
	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/render"
	"github.com/goliatone/go-botsettings/pkg/renderers/tui"
	"github.com/goliatone/go-botsettings/pkg/renderers/vanilla"
	"github.com/goliatone/go-botsettings/pkg/submit"
)

// FieldDescriptor re-exports the model descriptor for one dialog input.
type FieldDescriptor = model.FieldDescriptor

// FieldType re-exports the field type enumeration.
type FieldType = model.FieldType

const (
	FieldTypeString  = model.FieldTypeString
	FieldTypeNumber  = model.FieldTypeNumber
	FieldTypeBoolean = model.FieldTypeBoolean
	FieldTypeList    = model.FieldTypeList
	FieldTypeText    = model.FieldTypeText
)

// Mode re-exports the submission mode tag.
type Mode = submit.Mode

const (
	ModeCredentials = submit.ModeCredentials
	ModeActivate    = submit.ModeActivate
	ModeInstall     = submit.ModeInstall
)

// Endpoints re-exports the endpoint resolver.
type Endpoints = submit.Endpoints

// Dialog re-exports the dialog component.
type Dialog = dialog.Dialog

// NewDialog exposes the dialog constructor from the top-level module.
func NewDialog(mode Mode, botID string, fields []FieldDescriptor, options ...dialog.Option) (*Dialog, error) {
	return dialog.New(mode, botID, fields, options...)
}

// DefaultRegistry returns a renderer registry with the built-in HTML and
// terminal renderers registered.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(html)
	registry.MustRegister(tui.New())
	return registry, nil
}

// Form builds the renderer view model for a dialog, resolving the endpoint
// the form will post to.
func Form(d *Dialog, endpoints Endpoints) (render.Form, error) {
	endpoint, err := endpoints.Resolve(d.Mode(), d.BotID())
	if err != nil {
		return render.Form{}, err
	}
	return render.Form{
		Title:    d.Title(),
		Mode:     d.Mode(),
		BotID:    d.BotID(),
		Endpoint: endpoint,
		Fields:   d.Fields(),
	}, nil
}

// RenderHTML renders the dialog as standalone HTML. It is the simplest entry
// point for callers that just want the form markup.
func RenderHTML(ctx context.Context, d *Dialog, endpoints Endpoints, options render.RenderOptions) ([]byte, error) {
	form, err := Form(d, endpoints)
	if err != nil {
		return nil, err
	}
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, options)
}
