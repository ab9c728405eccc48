package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-botsettings/pkg/model"
)

func TestFieldSetPreservesInsertionOrder(t *testing.T) {
	fs := model.NewFieldSet(
		model.FieldDescriptor{Name: "api_key", Type: model.FieldTypeString, Required: true},
		model.FieldDescriptor{Name: "region", Type: model.FieldTypeString},
		model.FieldDescriptor{Name: "timeout", Type: model.FieldTypeNumber},
	)

	want := []string{"api_key", "region", "timeout"}
	if diff := cmp.Diff(want, fs.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSetUpdateValueLeavesSiblingsUntouched(t *testing.T) {
	fs := model.NewFieldSet(
		model.FieldDescriptor{Name: "api_key", Type: model.FieldTypeString, Secret: true, Required: true, Value: "old"},
		model.FieldDescriptor{Name: "region", Type: model.FieldTypeString, Placeholder: "us-east-1", Value: "eu"},
	)

	if err := fs.UpdateValue("api_key", "new"); err != nil {
		t.Fatalf("UpdateValue: %v", err)
	}

	want := []model.FieldDescriptor{
		{Name: "api_key", Type: model.FieldTypeString, Secret: true, Required: true, Value: "new"},
		{Name: "region", Type: model.FieldTypeString, Placeholder: "us-east-1", Value: "eu"},
	}
	if diff := cmp.Diff(want, fs.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSetUpdateValueRejectsUnknownField(t *testing.T) {
	fs := model.NewFieldSet(model.FieldDescriptor{Name: "api_key"})

	if err := fs.UpdateValue("missing", "x"); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if fs.Has("missing") {
		t.Fatal("unknown field must not be created")
	}
	if got := fs.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestFieldSetReplaceReseedsWholesale(t *testing.T) {
	fs := model.NewFieldSet(
		model.FieldDescriptor{Name: "api_key", Value: "x"},
		model.FieldDescriptor{Name: "region", Value: "y"},
	)

	fs.Replace(model.FieldDescriptor{Name: "phone_number", Required: true})

	if fs.Has("api_key") || fs.Has("region") {
		t.Fatal("old fields survived Replace")
	}
	want := []string{"phone_number"}
	if diff := cmp.Diff(want, fs.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldDescriptorLabelAndEmpty(t *testing.T) {
	tests := []struct {
		name      string
		field     model.FieldDescriptor
		wantLabel string
		wantEmpty bool
	}{
		{
			name:      "required gets asterisk",
			field:     model.FieldDescriptor{Name: "api_key", Required: true, Value: "x"},
			wantLabel: "api_key *",
			wantEmpty: false,
		},
		{
			name:      "optional plain label",
			field:     model.FieldDescriptor{Name: "region"},
			wantLabel: "region",
			wantEmpty: true,
		},
		{
			name:      "whitespace counts as empty",
			field:     model.FieldDescriptor{Name: "token", Value: "   "},
			wantLabel: "token",
			wantEmpty: true,
		},
		{
			name:      "numeric zero is non-empty",
			field:     model.FieldDescriptor{Name: "port", Type: model.FieldTypeNumber, Value: 0},
			wantLabel: "port",
			wantEmpty: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.Label(); got != tc.wantLabel {
				t.Fatalf("Label() = %q, want %q", got, tc.wantLabel)
			}
			if got := tc.field.Empty(); got != tc.wantEmpty {
				t.Fatalf("Empty() = %v, want %v", got, tc.wantEmpty)
			}
		})
	}
}

func TestParseFieldType(t *testing.T) {
	if got, err := model.ParseFieldType(" List "); err != nil || got != model.FieldTypeList {
		t.Fatalf("ParseFieldType(List) = %v, %v", got, err)
	}
	if got, err := model.ParseFieldType(""); err != nil || got != model.FieldTypeString {
		t.Fatalf("ParseFieldType(empty) = %v, %v", got, err)
	}
	if _, err := model.ParseFieldType("widget"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
