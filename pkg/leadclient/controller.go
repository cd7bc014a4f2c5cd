package leadclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/leadcapture/pkg/lead"
)

// State is the controller's submission phase.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// User-facing copy, keyed off the server's machine-readable error codes.
// Configuration and provider failures all collapse into the generic
// message: there is nothing the visitor can do about either.
const (
	MsgSuccess      = "You're on the list. We'll notify you at launch."
	MsgInvalidEmail = "Please enter a valid email address."
	MsgGenericError = "Something went wrong. Please try again."
	MsgNetworkError = "Network error. Please try again."
)

// defaultDismissAfter matches the landing page's toast lifetime.
const defaultDismissAfter = 2600 * time.Millisecond

// Presenter renders the controller's feedback. The UI layer implements it;
// the controller only decides what to show and when to clear it.
type Presenter interface {
	ShowMessage(msg string)
	ClearMessage()
	ClearInput()
}

// Controller drives one submission at a time against the lead endpoint.
// The Submitting state is a single-slot mutex: a submit while one is in
// flight is dropped, not queued.
type Controller struct {
	endpoint  string
	client    *http.Client
	presenter Presenter
	dismiss   time.Duration

	mu      sync.Mutex
	state   State
	outcome State
	timer   *time.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.client = c
		}
	}
}

// WithDismissAfter sets how long a message stays visible.
func WithDismissAfter(d time.Duration) Option {
	return func(ctrl *Controller) {
		if d > 0 {
			ctrl.dismiss = d
		}
	}
}

// New creates a controller posting to endpoint and rendering through p.
func New(endpoint string, p Presenter, opts ...Option) *Controller {
	c := &Controller{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 30 * time.Second},
		presenter: p,
		dismiss:   defaultDismissAfter,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastOutcome reports how the most recent completed submission ended,
// StateSucceeded or StateFailed. Empty before the first one completes.
func (c *Controller) LastOutcome() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Submit runs one submission to completion and reports whether a request
// was issued. The local shape check mirrors the server's validator purely
// to save an obviously wasted round trip; the server stays authoritative.
// A call made while another submission is in flight is dropped.
func (c *Controller) Submit(ctx context.Context, rawEmail string) bool {
	email, err := lead.NormalizeEmail(rawEmail)
	if err != nil {
		c.show(MsgInvalidEmail)
		return false
	}

	if !c.begin() {
		return false
	}

	outcome, msg := c.post(ctx, email)

	c.finish(outcome)
	if outcome == StateSucceeded {
		c.presenter.ClearInput()
	}
	c.show(msg)
	return true
}

// begin claims the single submission slot.
func (c *Controller) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return false
	}
	c.state = StateSubmitting
	return true
}

// finish records the terminal outcome and rests at Idle so the next submit
// is accepted.
func (c *Controller) finish(outcome State) {
	c.mu.Lock()
	c.outcome = outcome
	c.state = StateIdle
	c.mu.Unlock()
}

type submitResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// post issues the request and maps the answer to a terminal state plus the
// message to show. Transport failures and unrecognized codes collapse into
// the two generic messages.
func (c *Controller) post(ctx context.Context, email string) (State, string) {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return StateFailed, MsgGenericError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return StateFailed, MsgGenericError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return StateFailed, MsgNetworkError
	}
	defer resp.Body.Close()

	var out submitResponse
	// An unreadable body is treated like an unrecognized error code.
	_ = json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode == http.StatusOK && out.OK {
		return StateSucceeded, MsgSuccess
	}

	switch out.Error {
	case lead.CodeInvalidEmail:
		return StateFailed, MsgInvalidEmail
	case lead.CodeMissingEnv, "MISSING_CONFIGURATION":
		return StateFailed, MsgGenericError
	case lead.CodeProviderError, lead.CodeServerError:
		return StateFailed, MsgGenericError
	default:
		return StateFailed, MsgGenericError
	}
}

// show replaces any visible message and restarts the dismissal clock.
// Cancelling the previous timer first keeps messages from stacking.
func (c *Controller) show(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.presenter.ShowMessage(msg)
	c.timer = time.AfterFunc(c.dismiss, c.presenter.ClearMessage)
}
