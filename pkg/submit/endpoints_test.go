package submit_test

import (
	"testing"

	"github.com/goliatone/go-botsettings/pkg/submit"
)

func TestEndpointsResolve(t *testing.T) {
	endpoints := submit.Endpoints{BaseURL: "https://manager.example.com/v2/"}

	tests := []struct {
		name    string
		mode    submit.Mode
		botID   string
		want    string
		wantErr bool
	}{
		{
			name:  "credentials scoped to bot",
			mode:  submit.ModeCredentials,
			botID: "bot-1",
			want:  "https://manager.example.com/v2/bot/bot-1/configure",
		},
		{
			name:  "activate scoped to bot",
			mode:  submit.ModeActivate,
			botID: "bot-1",
			want:  "https://manager.example.com/v2/bot/bot-1/activate",
		},
		{
			name: "install has no bot id",
			mode: submit.ModeInstall,
			want: "https://manager.example.com/v2/bot/install",
		},
		{
			name:    "credentials without bot id",
			mode:    submit.ModeCredentials,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := endpoints.Resolve(tc.mode, tc.botID)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Resolve = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEndpointsResolveRequiresBaseURL(t *testing.T) {
	if _, err := (submit.Endpoints{}).Resolve(submit.ModeInstall, ""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestParseMode(t *testing.T) {
	if got, err := submit.ParseMode(" Install "); err != nil || got != submit.ModeInstall {
		t.Fatalf("ParseMode(Install) = %v, %v", got, err)
	}
	if _, err := submit.ParseMode("upgrade"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !submit.ModeInstall.NeedsToken() || submit.ModeActivate.NeedsToken() {
		t.Fatal("NeedsToken wiring incorrect")
	}
}
