package form

import (
	"sync"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// MemoryView is a View backed by plain fields. OnStatus, when set, is called
// for every status change.
type MemoryView struct {
	OnStatus func(text string, kind StatusKind)

	mu         sync.Mutex
	fields     models.LeadSubmission
	label      string
	enabled    bool
	status     string
	statusKind StatusKind
}

// NewMemoryView creates an enabled view pre-filled with fields
func NewMemoryView(fields models.LeadSubmission, buttonLabel string) *MemoryView {
	return &MemoryView{fields: fields, label: buttonLabel, enabled: true}
}

func (v *MemoryView) Values() models.LeadSubmission {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fields
}

// SetValues replaces the field values, as a visitor typing would
func (v *MemoryView) SetValues(fields models.LeadSubmission) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields = fields
}

func (v *MemoryView) ButtonLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

// ButtonEnabled reports whether the submit control accepts input
func (v *MemoryView) ButtonEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *MemoryView) SetButton(label string, enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.label = label
	v.enabled = enabled
}

// Status returns the last status text and its kind
func (v *MemoryView) Status() (string, StatusKind) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status, v.statusKind
}

func (v *MemoryView) SetStatus(text string, kind StatusKind) {
	v.mu.Lock()
	v.status = text
	v.statusKind = kind
	onStatus := v.OnStatus
	v.mu.Unlock()

	if onStatus != nil {
		onStatus(text, kind)
	}
}

func (v *MemoryView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields = models.LeadSubmission{}
}
