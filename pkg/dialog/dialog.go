package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-botsettings/pkg/model"
	"github.com/goliatone/go-botsettings/pkg/submit"
	"github.com/goliatone/go-botsettings/pkg/transport"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still outstanding.
var ErrSubmitInFlight = errors.New("dialog: submission already in flight")

// ErrTokenFetch wraps secret-retrieval failures so callers can show the
// generic "could not retrieve access token" notice.
var ErrTokenFetch = errors.New("dialog: could not retrieve access token")

// CloseFunc is the caller's close callback. It fires exactly once on a
// successful submission, or when Cancel is invoked.
type CloseFunc func()

// Dialog owns a field set for one bot and submits it in a mode-specific
// shape. Validation or network failures leave the dialog open so the user
// can correct and retry; there are no automatic retries.
type Dialog struct {
	mu         sync.Mutex
	title      string
	botID      string
	mode       submit.Mode
	fields     *model.FieldSet
	endpoints  submit.Endpoints
	client     *transport.Client
	tokens     transport.TokenSource
	onClose    CloseFunc
	submitting bool
	closed     bool
}

// New constructs a dialog for the given mode, validating the mode's
// well-known keys against the supplied descriptors before anything renders.
func New(mode submit.Mode, botID string, fields []model.FieldDescriptor, options ...Option) (*Dialog, error) {
	d := &Dialog{
		mode:   mode,
		botID:  botID,
		fields: model.NewFieldSet(fields...),
		client: transport.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if err := submit.ValidateSchema(mode, d.fields); err != nil {
		return nil, err
	}
	return d, nil
}

// Title reports the dialog title.
func (d *Dialog) Title() string {
	return d.title
}

// Mode reports the submission mode.
func (d *Dialog) Mode() submit.Mode {
	return d.mode
}

// BotID reports the bot the dialog is scoped to; empty in install mode.
func (d *Dialog) BotID() string {
	return d.botID
}

// Fields returns an ordered snapshot of the current descriptors.
func (d *Dialog) Fields() []model.FieldDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fields.Fields()
}

// Replace re-seeds the field set wholesale, re-checking the mode's
// well-known keys. Used when the caller supplies a new descriptor set.
func (d *Dialog) Replace(fields ...model.FieldDescriptor) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := model.NewFieldSet(fields...)
	if err := submit.ValidateSchema(d.mode, next); err != nil {
		return err
	}
	d.fields = next
	return nil
}

// UpdateValue replaces one field's value; all other fields and their
// metadata are preserved. Unknown names are rejected.
func (d *Dialog) UpdateValue(name string, value any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fields.UpdateValue(name, value)
}

// Submitting reports whether a submission is outstanding.
func (d *Dialog) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitting
}

// Closed reports whether the close callback has fired.
func (d *Dialog) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Submit validates the field set, builds the mode-shaped body, and posts it.
// Install mode fetches the access token first and aborts on failure without
// validating or touching the network. On success the close callback fires
// exactly once; any error keeps the dialog open.
func (d *Dialog) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return ErrSubmitInFlight
	}
	d.submitting = true
	snapshot := d.fields.Clone()
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.submitting = false
		d.mu.Unlock()
	}()

	var token string
	if d.mode.NeedsToken() {
		if d.tokens == nil {
			return fmt.Errorf("%w: no token source configured", ErrTokenFetch)
		}
		fetched, err := d.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTokenFetch, err)
		}
		token = fetched
	}

	payload, err := submit.Build(d.mode, snapshot)
	if err != nil {
		return err
	}
	endpoint, err := d.endpoints.Resolve(d.mode, d.botID)
	if err != nil {
		return err
	}
	body, err := payload.MarshalBody()
	if err != nil {
		return fmt.Errorf("dialog: encode body: %w", err)
	}

	if err := d.client.PostJSON(ctx, endpoint, body, token); err != nil {
		return err
	}

	d.fireClose()
	return nil
}

// Cancel closes the dialog without submitting.
func (d *Dialog) Cancel() {
	d.fireClose()
}

func (d *Dialog) fireClose() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	onClose := d.onClose
	d.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}
