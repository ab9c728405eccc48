package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions. It walks
// the field set in order, prompts for each value with the widget matching
// the descriptor, and serialises the collected values as JSON.
type Renderer struct {
	driver PromptDriver
}

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithDriver swaps the prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs a TUI renderer backed by survey prompts.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialisation format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts for every field and returns the collected name/value map as
// JSON. Secrets use masked input, text fields a multi-line prompt, numbers a
// validated numeric prompt.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if title := strings.TrimSpace(form.Title); title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return nil, err
		}
	}
	for _, message := range opts.Errors[""] {
		if err := r.driver.Info(ctx, message); err != nil {
			return nil, err
		}
	}

	values := make(map[string]any, len(form.Fields))
	for _, field := range form.Fields {
		value, err := r.promptField(ctx, field, opts)
		if err != nil {
			return nil, err
		}
		values[field.Name] = value
	}

	return json.Marshal(values)
}

func (r *Renderer) promptField(ctx context.Context, field model.FieldDescriptor, opts render.RenderOptions) (any, error) {
	for _, message := range opts.Errors[field.Name] {
		if err := r.driver.Info(ctx, message); err != nil {
			return nil, err
		}
	}

	defaultVal := field.StringValue()
	if override, ok := opts.Values[field.Name]; ok {
		defaultVal = model.FieldDescriptor{Value: override}.StringValue()
	}

	switch {
	case field.Type == model.FieldTypeText:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label(),
			Default: defaultVal,
			Help:    field.Placeholder,
		})
	case field.Secret:
		return r.driver.Password(ctx, InputConfig{
			Message:   field.Label(),
			Help:      field.Placeholder,
			Validator: requiredValidator(field),
		})
	case field.Type == model.FieldTypeNumber:
		raw, err := r.driver.Input(ctx, InputConfig{
			Message:   field.Label(),
			Default:   defaultVal,
			Help:      field.Placeholder,
			Validator: numberValidator(field),
		})
		if err != nil {
			return nil, err
		}
		return parseNumber(raw)
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:   field.Label(),
			Default:   defaultVal,
			Help:      field.Placeholder,
			Validator: requiredValidator(field),
		})
	}
}

func requiredValidator(field model.FieldDescriptor) func(string) error {
	if !field.Required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field.Name)
		}
		return nil
	}
}

func numberValidator(field model.FieldDescriptor) func(string) error {
	required := requiredValidator(field)
	return func(value string) error {
		if required != nil {
			if err := required(value); err != nil {
				return err
			}
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return fmt.Errorf("%s must be a number", field.Name)
		}
		return nil
	}
}

func parseNumber(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return number, nil
	}
	return nil, fmt.Errorf("tui: %q is not a number", raw)
}
