package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/render"
	"github.com/goliatone/go-botsettings/pkg/submit"
	"github.com/goliatone/go-botsettings/pkg/transport"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, render.Form, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestMapSubmitErrorValidation(t *testing.T) {
	fields := model.NewFieldSet(
		model.FieldDescriptor{Name: "api_key", Required: true},
	)
	err := submit.ValidateRequired(fields)

	mapping := render.MapSubmitError(err)

	want := map[string][]string{"api_key": {"api_key is required"}}
	if diff := cmp.Diff(want, mapping.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if len(mapping.Form) != 0 {
		t.Fatalf("unexpected form errors: %v", mapping.Form)
	}
}

func TestMapSubmitErrorServerDetail(t *testing.T) {
	mapping := render.MapSubmitError(&transport.APIError{StatusCode: 409, Detail: "bot already active"})

	want := []string{"bot already active"}
	if diff := cmp.Diff(want, mapping.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestMapSubmitErrorGenericFallback(t *testing.T) {
	mapping := render.MapSubmitError(errors.New("dial tcp: connection refused"))

	if len(mapping.Form) != 1 || mapping.Form[0] != "Submission failed. Please try again." {
		t.Fatalf("form = %v", mapping.Form)
	}
}

func TestErrorMappingMerge(t *testing.T) {
	mapping := render.ErrorMapping{
		Fields: map[string][]string{"api_key": {"api_key is required"}},
		Form:   []string{"oops"},
	}

	merged := mapping.Merge(nil)

	want := map[string][]string{
		"api_key": {"api_key is required"},
		"":        {"oops"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "vanilla"}); err == nil {
		t.Fatal("duplicate registration must fail")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("unknown renderer must fail")
	}
	want := []string{"vanilla"}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
