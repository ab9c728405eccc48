package render

import (
	"context"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/submit"
)

// Form is the view model renderers consume: the dialog chrome plus the
// ordered field descriptors.
type Form struct {
	Title    string
	Mode     submit.Mode
	BotID    string
	Endpoint string
	Fields   []model.FieldDescriptor
}

// Renderer converts a Form into a byte representation (HTML, terminal
// session output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
