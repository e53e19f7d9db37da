package tui

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/goliatone/go-jokeform/pkg/contract"
	"github.com/goliatone/go-jokeform/pkg/form"
)

const (
	fieldTopic = "topic"
	fieldTone  = "tone"

	busyMessage = "Generating joke..."
)

// View renders the joke form on a terminal. Field values and display state
// are held in a form.MemoryView; this type adds prompting and printing.
type View struct {
	state    *form.MemoryView
	driver   PromptDriver
	out      io.Writer
	theme    Theme
	themeSet bool
	blocking bool

	mu  sync.Mutex
	ctx context.Context
}

// Ensure the implementation satisfies the View contract.
var _ form.View = (*View)(nil)

// NewView constructs a terminal view backed by survey unless a driver is
// supplied.
func NewView(options ...Option) *View {
	v := &View{
		state: form.NewMemoryView("", ""),
		ctx:   context.Background(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	if v.out == nil {
		v.out = os.Stdout
	}
	if v.driver == nil {
		v.driver = newSurveyDriver(v.out)
	}
	if !v.themeSet {
		v.theme = DefaultTheme(v.out)
	}
	return v
}

// Bind scopes driver calls made from View methods to ctx.
func (v *View) Bind(ctx context.Context) {
	if ctx == nil {
		return
	}
	v.mu.Lock()
	v.ctx = ctx
	v.mu.Unlock()
}

func (v *View) boundContext() context.Context {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctx
}

// Fill prompts for every visible field of def and stores the answers as the
// current topic and tone. Previous answers are offered as defaults.
func (v *View) Fill(ctx context.Context, def contract.Form) error {
	values := map[string]string{
		fieldTopic: v.state.ReadTopic(),
		fieldTone:  v.state.ReadTone(),
	}

	for _, field := range def.Fields {
		if field.Hidden {
			continue
		}
		if _, tracked := values[field.Name]; !tracked {
			continue
		}
		answer, err := v.promptField(ctx, field, values[field.Name])
		if err != nil {
			return err
		}
		values[field.Name] = answer
	}

	v.state.SetFields(values[fieldTopic], values[fieldTone])
	return nil
}

func (v *View) promptField(ctx context.Context, field contract.Field, current string) (string, error) {
	if current == "" {
		current = field.Default
	}

	if len(field.Enum) > 0 {
		idx, err := v.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      field.Enum,
			DefaultIndex: indexOf(field.Enum, current),
			Help:         field.Description,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Enum) {
			return current, nil
		}
		return field.Enum[idx], nil
	}

	return v.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Default: current,
		Help:    field.Description,
	})
}

// SetFields replaces the field values without prompting.
func (v *View) SetFields(topic, tone string) {
	v.state.SetFields(topic, tone)
}

// ReadTopic returns the last answered topic.
func (v *View) ReadTopic() string { return v.state.ReadTopic() }

// ReadTone returns the last selected tone.
func (v *View) ReadTone() string { return v.state.ReadTone() }

// SetBusy records the busy state and prints a status line when it turns on.
func (v *View) SetBusy(busy bool) {
	v.state.SetBusy(busy)
	if busy {
		_ = v.driver.Info(v.boundContext(), v.theme.busy(busyMessage))
	}
}

// HideResult marks the result region hidden. Nothing is printed.
func (v *View) HideResult() { v.state.HideResult() }

// ShowResult prints the result region: setup, punchline, and the explanation
// when it is visible.
func (v *View) ShowResult() {
	v.state.ShowResult()
	snap := v.state.Snapshot()

	var b strings.Builder
	b.WriteString(v.theme.result(snap.Setup))
	b.WriteString("\n")
	b.WriteString(v.theme.result(snap.Punchline))
	if snap.ExplanationVisible && snap.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(v.theme.notice(snap.Explanation, false))
	}
	_ = v.driver.Info(v.boundContext(), b.String())
}

// SetSetup stores the setup; it is printed on the next ShowResult.
func (v *View) SetSetup(text string) { v.state.SetSetup(text) }

// SetPunchline stores the punchline; it is printed on the next ShowResult.
func (v *View) SetPunchline(text string) { v.state.SetPunchline(text) }

// SetExplanation stores the explanation and marks it visible.
func (v *View) SetExplanation(text string) { v.state.SetExplanation(text) }

// HideExplanation drops the explanation from the next ShowResult.
func (v *View) HideExplanation() { v.state.HideExplanation() }

// SetupText returns the rendered setup.
func (v *View) SetupText() string { return v.state.SetupText() }

// PunchlineText returns the rendered punchline.
func (v *View) PunchlineText() string { return v.state.PunchlineText() }

// Notify prints message, blocking for acknowledgement when configured.
func (v *View) Notify(message string) {
	v.state.Notify(message)
	line := v.theme.notice(message, strings.HasPrefix(message, form.ErrorPrefix))
	if v.blocking {
		_ = v.driver.Alert(v.boundContext(), line)
		return
	}
	_ = v.driver.Info(v.boundContext(), line)
}

// HasResult reports whether a result is currently displayed.
func (v *View) HasResult() bool {
	return v.state.Snapshot().ResultVisible
}

// Snapshot exposes the underlying display state.
func (v *View) Snapshot() form.Snapshot {
	return v.state.Snapshot()
}
