package form

import "sync"

// Snapshot is a point-in-time copy of a MemoryView.
type Snapshot struct {
	Topic              string
	Tone               string
	Busy               bool
	ResultVisible      bool
	Setup              string
	Punchline          string
	Explanation        string
	ExplanationVisible bool
	Notifications      []string
}

// MemoryView is an in-memory View. It backs non-interactive runs and tests,
// and records the order of display mutations in Events.
type MemoryView struct {
	mu     sync.Mutex
	state  Snapshot
	events []string
}

// Ensure the implementation satisfies the View contract.
var _ View = (*MemoryView)(nil)

// NewMemoryView returns a view with the given field values. The result and
// explanation regions start hidden.
func NewMemoryView(topic, tone string) *MemoryView {
	return &MemoryView{
		state: Snapshot{Topic: topic, Tone: tone},
	}
}

// SetFields replaces the topic and tone field values.
func (v *MemoryView) SetFields(topic, tone string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Topic = topic
	v.state.Tone = tone
}

// ReadTopic returns the current topic field value.
func (v *MemoryView) ReadTopic() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Topic
}

// ReadTone returns the current tone field value.
func (v *MemoryView) ReadTone() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Tone
}

// SetBusy toggles the busy indicator and records "busy" or "idle".
func (v *MemoryView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Busy = busy
	if busy {
		v.record("busy")
	} else {
		v.record("idle")
	}
}

// ShowResult reveals the result region.
func (v *MemoryView) ShowResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ResultVisible = true
	v.record("show-result")
}

// HideResult hides the result region.
func (v *MemoryView) HideResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ResultVisible = false
	v.record("hide-result")
}

// SetSetup stores the setup text.
func (v *MemoryView) SetSetup(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Setup = text
	v.record("setup")
}

// SetPunchline stores the punchline text.
func (v *MemoryView) SetPunchline(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Punchline = text
	v.record("punchline")
}

// SetExplanation stores the explanation text and reveals it.
func (v *MemoryView) SetExplanation(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Explanation = text
	v.state.ExplanationVisible = true
	v.record("explanation")
}

// HideExplanation hides the explanation element, keeping its text.
func (v *MemoryView) HideExplanation() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ExplanationVisible = false
	v.record("hide-explanation")
}

// SetupText returns the displayed setup.
func (v *MemoryView) SetupText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Setup
}

// PunchlineText returns the displayed punchline.
func (v *MemoryView) PunchlineText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Punchline
}

// Notify appends message to the notification log.
func (v *MemoryView) Notify(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Notifications = append(v.state.Notifications, message)
	v.record("notify")
}

// Snapshot returns a copy of the current state.
func (v *MemoryView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.state
	out.Notifications = append([]string(nil), v.state.Notifications...)
	return out
}

// Events returns the recorded mutation sequence.
func (v *MemoryView) Events() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

// Reset clears notifications and the event log, keeping displayed state.
func (v *MemoryView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Notifications = nil
	v.events = nil
}

func (v *MemoryView) record(event string) {
	v.events = append(v.events, event)
}
