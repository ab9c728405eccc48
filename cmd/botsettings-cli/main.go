package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	botsettings "github.com/goliatone/go-botsettings"
	"github.com/goliatone/go-botsettings/pkg/dialog"
	"github.com/goliatone/go-botsettings/pkg/render"
	"github.com/goliatone/go-botsettings/pkg/renderers/tui"
	"github.com/goliatone/go-botsettings/pkg/schema"
	"github.com/goliatone/go-botsettings/pkg/transport"
)

func main() {
	docPath := flag.String("doc", "settings.yaml", "dialog document (YAML)")
	baseURL := flag.String("base-url", "http://localhost:8000/v2", "bot-manager API root")
	tokenEnv := flag.String("token-env", "BOT_MANAGER_TOKEN", "env var holding the install access token")
	htmlOut := flag.String("html", "", "write the form as HTML to this file instead of prompting")
	flag.Parse()

	ctx := context.Background()

	doc, err := schema.LoadYAMLFile(*docPath)
	if err != nil {
		log.Fatalf("Failed to load dialog document: %v", err)
	}

	endpoints := botsettings.Endpoints{BaseURL: *baseURL}
	d, err := botsettings.NewDialog(doc.Mode, doc.BotID, doc.Fields,
		dialog.WithTitle(doc.Title),
		dialog.WithEndpoints(endpoints),
		dialog.WithTokenSource(transport.EnvToken(*tokenEnv)),
		dialog.WithCloseFunc(func() { fmt.Println("Saved.") }),
	)
	if err != nil {
		log.Fatalf("Failed to build dialog: %v", err)
	}

	if *htmlOut != "" {
		output, err := botsettings.RenderHTML(ctx, d, endpoints, render.RenderOptions{})
		if err != nil {
			log.Fatalf("Failed to render form: %v", err)
		}
		if err := os.WriteFile(*htmlOut, output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *htmlOut)
		return
	}

	if err := promptAndSubmit(ctx, d, endpoints); err != nil {
		log.Fatalf("Submission aborted: %v", err)
	}
}

// promptAndSubmit runs terminal prompt sessions until a submission succeeds.
// Validation and server failures keep the dialog open: the mapped messages
// are fed back into the next prompt round.
func promptAndSubmit(ctx context.Context, d *botsettings.Dialog, endpoints botsettings.Endpoints) error {
	renderer := tui.New()
	opts := render.RenderOptions{}

	for !d.Closed() {
		form, err := botsettings.Form(d, endpoints)
		if err != nil {
			return err
		}

		raw, err := renderer.Render(ctx, form, opts)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				d.Cancel()
				return nil
			}
			return err
		}

		var values map[string]any
		if err := json.Unmarshal(raw, &values); err != nil {
			return fmt.Errorf("decode prompt values: %w", err)
		}
		for name, value := range values {
			if err := d.UpdateValue(name, value); err != nil {
				return err
			}
		}

		if err := d.Submit(ctx); err != nil {
			opts.Errors = render.MapSubmitError(err).Merge(nil)
			continue
		}
	}
	return nil
}
