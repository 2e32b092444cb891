// Package form drives the landing page lead form outside the browser. The
// Controller runs the same submit cycle as the page script against a View,
// which lets the CLI and tests exercise the flow.
package form

import (
	"context"
	"strings"
	"sync"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// State of the submit cycle
type State int

const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// StatusKind tells the View how to style a status message
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// View is the form UI the controller manipulates
type View interface {
	Values() models.LeadSubmission
	ButtonLabel() string
	SetButton(label string, enabled bool)
	SetStatus(text string, kind StatusKind)
	Reset()
}

// Submitter delivers a lead; satisfied by landing.Client
type Submitter interface {
	SubmitLead(ctx context.Context, submission models.LeadSubmission) (models.Result, error)
}

// Controller owns the submit cycle Idle -> Submitting -> Success|Error -> Idle
type Controller struct {
	view      View
	submitter Submitter
	tracker   Tracker
	messages  Messages

	mu    sync.Mutex
	state State
}

// NewController binds a controller to a view. A nil tracker disables
// form_success and form_error events.
func NewController(view View, submitter Submitter, tracker Tracker, messages Messages) *Controller {
	if tracker == nil {
		tracker = nopTracker{}
	}
	return &Controller{
		view:      view,
		submitter: submitter,
		tracker:   tracker,
		messages:  messages.withDefaults(),
		state:     Idle,
	}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Submit runs one cycle and returns its outcome, Success or Error. A call
// made while another cycle is in flight is ignored and returns Submitting.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return Submitting
	}
	c.state = Submitting
	c.mu.Unlock()

	originalLabel := c.view.ButtonLabel()
	payload := c.view.Values()

	c.view.SetButton(c.messages.Pending, false)
	c.view.SetStatus("", StatusNone)

	outcome := c.send(ctx, payload)

	c.view.SetButton(originalLabel, true)
	c.setState(Idle)
	return outcome
}

func (c *Controller) send(ctx context.Context, payload models.LeadSubmission) State {
	result, err := c.submitter.SubmitLead(ctx, payload)

	if err == nil && result.OK {
		c.setState(Success)
		c.view.SetStatus(c.messages.Success, StatusSuccess)
		c.view.Reset()
		c.tracker.Track(models.EventFormSuccess, map[string]any{"name": strings.TrimSpace(payload.Name)})
		return Success
	}

	text := c.messages.Failure
	if err == nil && result.Error != "" {
		text = result.Error
	}

	c.setState(Error)
	c.view.SetStatus(text, StatusError)
	c.tracker.Track(models.EventFormError, map[string]any{"error": text})
	return Error
}
