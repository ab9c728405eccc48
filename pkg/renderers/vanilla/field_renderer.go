package vanilla

import (
	"html"
	"strings"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/render"
)

type fieldClasses struct {
	wrapper string
	label   string
	input   string
	error   string
}

// renderField maps one descriptor to its widget markup. Widget choice, in
// order: text type gets a fixed-height textarea, secrets get a masked input,
// number type gets a numeric input, everything else a plain text input. The
// label is the field name, suffixed with an asterisk when required.
func renderField(field model.FieldDescriptor, opts render.RenderOptions, classes fieldClasses) string {
	value := field.StringValue()
	if override, ok := opts.Values[field.Name]; ok {
		value = model.FieldDescriptor{Value: override}.StringValue()
	}

	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(`  <div class="`)
	builder.WriteString(classes.wrapper)
	builder.WriteString(`">` + "\n")

	builder.WriteString(`    <label class="`)
	builder.WriteString(classes.label)
	builder.WriteString(`" for="field-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(field.Label()))
	builder.WriteString("</label>\n")

	builder.WriteString("    ")
	builder.WriteString(controlMarkup(field, value, classes.input))
	builder.WriteString("\n")

	for _, message := range opts.Errors[field.Name] {
		builder.WriteString(`    <p class="`)
		builder.WriteString(classes.error)
		builder.WriteString(`" role="alert">`)
		builder.WriteString(html.EscapeString(message))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("  </div>")
	return builder.String()
}

func controlMarkup(field model.FieldDescriptor, value, inputClass string) string {
	id := "field-" + html.EscapeString(field.Name)
	name := html.EscapeString(field.Name)

	if field.Type == model.FieldTypeText {
		var builder strings.Builder
		builder.WriteString(`<textarea class="`)
		builder.WriteString(inputClass)
		builder.WriteString(`" id="`)
		builder.WriteString(id)
		builder.WriteString(`" name="`)
		builder.WriteString(name)
		builder.WriteString(`" rows="5"`)
		writeCommonAttrs(&builder, field)
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteString(`</textarea>`)
		return builder.String()
	}

	inputType := "text"
	switch {
	case field.Secret:
		inputType = "password"
	case field.Type == model.FieldTypeNumber:
		inputType = "number"
	}

	var builder strings.Builder
	builder.WriteString(`<input class="`)
	builder.WriteString(inputClass)
	builder.WriteString(`" type="`)
	builder.WriteString(inputType)
	builder.WriteString(`" id="`)
	builder.WriteString(id)
	builder.WriteString(`" name="`)
	builder.WriteString(name)
	builder.WriteString(`" value="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
	writeCommonAttrs(&builder, field)
	builder.WriteString(` />`)
	return builder.String()
}

func writeCommonAttrs(builder *strings.Builder, field model.FieldDescriptor) {
	if placeholder := sanitizeText(field.Placeholder); placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(placeholder))
		builder.WriteString(`"`)
	}
	if field.Required {
		builder.WriteString(` required`)
	}
}
