package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-botsettings/pkg/model"
)

// Extension keys recognised on request body properties.
const (
	extSecret = "x-secret"
	extWidget = "x-widget"
)

// FieldsFromOpenAPI derives an ordered descriptor slice from the JSON
// request body of the named operation. Property names are sorted, required
// fields first, since JSON schema objects carry no author order.
func FieldsFromOpenAPI(ctx context.Context, raw []byte, operationID string) ([]model.FieldDescriptor, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return nil, fmt.Errorf("schema: operation %q not found", operationID)
	}

	bodySchema := requestBodySchema(operation)
	if bodySchema == nil {
		return nil, fmt.Errorf("schema: operation %q has no JSON request body", operationID)
	}

	required := make(map[string]bool, len(bodySchema.Required))
	for _, name := range bodySchema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(bodySchema.Properties))
	for name := range bodySchema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	fields := make([]model.FieldDescriptor, 0, len(names))
	for _, name := range names {
		property := bodySchema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		fields = append(fields, descriptorFromProperty(name, property.Value, required[name]))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema: operation %q request body has no properties", operationID)
	}
	return fields, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	mt, ok := operation.RequestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil || mt.Schema.Value == nil {
		return nil
	}
	return mt.Schema.Value
}

func descriptorFromProperty(name string, property *openapi3.Schema, required bool) model.FieldDescriptor {
	field := model.FieldDescriptor{
		Name:        name,
		Type:        fieldTypeFromSchema(property),
		Value:       property.Default,
		Placeholder: property.Description,
		Required:    required,
	}
	if property.Format == "password" {
		field.Secret = true
	}
	if flag, ok := property.Extensions[extSecret].(bool); ok && flag {
		field.Secret = true
	}
	return field
}

func fieldTypeFromSchema(property *openapi3.Schema) model.FieldType {
	if widget, ok := property.Extensions[extWidget].(string); ok {
		if parsed, err := model.ParseFieldType(widget); err == nil {
			return parsed
		}
	}

	var schemaType string
	if property.Type != nil {
		if values := property.Type.Slice(); len(values) > 0 {
			schemaType = values[0]
		}
	}
	switch schemaType {
	case "integer", "number":
		return model.FieldTypeNumber
	case "boolean":
		return model.FieldTypeBoolean
	case "array":
		return model.FieldTypeList
	default:
		if strings.EqualFold(property.Format, "textarea") {
			return model.FieldTypeText
		}
		return model.FieldTypeString
	}
}
