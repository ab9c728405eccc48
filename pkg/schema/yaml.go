package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/submit"
)

// Document is a caller-supplied dialog description: the chrome plus the
// ordered descriptor set.
type Document struct {
	Title  string                  `yaml:"title"`
	Mode   submit.Mode             `yaml:"mode"`
	BotID  string                  `yaml:"bot_id"`
	Fields []model.FieldDescriptor `yaml:"fields"`
}

type rawDocument struct {
	Title  string     `yaml:"title"`
	Mode   string     `yaml:"mode"`
	BotID  string     `yaml:"bot_id"`
	Fields []rawField `yaml:"fields"`
}

type rawField struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Value       any    `yaml:"value"`
	Secret      bool   `yaml:"secret"`
	Placeholder string `yaml:"placeholder"`
	Required    bool   `yaml:"required"`
}

// ParseYAML decodes a dialog document, validating the mode tag, every field
// type, and the mode's well-known keys.
func ParseYAML(data []byte) (Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("schema: decode yaml: %w", err)
	}

	mode, err := submit.ParseMode(raw.Mode)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Title:  raw.Title,
		Mode:   mode,
		BotID:  raw.BotID,
		Fields: make([]model.FieldDescriptor, 0, len(raw.Fields)),
	}
	for i, field := range raw.Fields {
		if field.Name == "" {
			return Document{}, fmt.Errorf("schema: field %d has no name", i)
		}
		fieldType, err := model.ParseFieldType(field.Type)
		if err != nil {
			return Document{}, fmt.Errorf("schema: field %q: %w", field.Name, err)
		}
		doc.Fields = append(doc.Fields, model.FieldDescriptor{
			Name:        field.Name,
			Type:        fieldType,
			Value:       field.Value,
			Secret:      field.Secret,
			Placeholder: field.Placeholder,
			Required:    field.Required,
		})
	}

	if err := submit.ValidateSchema(mode, model.NewFieldSet(doc.Fields...)); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadYAMLFile reads and parses a dialog document from disk.
func LoadYAMLFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return ParseYAML(data)
}
