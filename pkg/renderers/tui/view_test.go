package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jokeform/pkg/contract"
	"github.com/goliatone/go-jokeform/pkg/form"
	"github.com/goliatone/go-jokeform/pkg/joke"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	selectErr    error
	confirm      []bool
	inputPos     int
	selectPos    int
	confirmPos   int
	confirmSeen  []ConfirmConfig
	inputConfigs []InputConfig
	selectSeen   [][]string
	infoMessages []string
	alerts       []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirmSeen = append(s.confirmSeen, cfg)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectSeen = append(s.selectSeen, append([]string(nil), cfg.Options...))
	if s.selectPos >= len(s.selectIdx) {
		if s.selectErr != nil {
			return -1, s.selectErr
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) Alert(_ context.Context, msg string) error {
	s.alerts = append(s.alerts, msg)
	return nil
}

type stubGenerator struct {
	resp joke.Response
	err  error
	reqs []joke.Request
}

func (s *stubGenerator) Generate(_ context.Context, req joke.Request) (joke.Response, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

type stubClipboard struct {
	writes []string
}

func (s *stubClipboard) WriteText(_ context.Context, text string) error {
	s.writes = append(s.writes, text)
	return nil
}

func plainTheme() Theme {
	return Theme{BusyPrefix: "…", ResultLabel: "»", ErrorPrefix: "!", InfoPrefix: "i"}
}

func defaultForm(t *testing.T) contract.Form {
	t.Helper()
	def, err := contract.Default(context.Background())
	if err != nil {
		t.Fatalf("default contract: %v", err)
	}
	return def
}

func TestFill_PromptsTopicAndTone(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"cats"},
		selectIdx: []int{3},
	}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))

	if err := view.Fill(context.Background(), defaultForm(t)); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if view.ReadTopic() != "cats" || view.ReadTone() != "dark" {
		t.Fatalf("unexpected fields topic=%q tone=%q", view.ReadTopic(), view.ReadTone())
	}

	wantOptions := [][]string{{"witty", "sarcastic", "dad-joke", "dark", "silly"}}
	if diff := cmp.Diff(wantOptions, driver.selectSeen); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
	if len(driver.inputConfigs) != 1 || driver.inputConfigs[0].Message != "Topic" {
		t.Fatalf("unexpected input prompts: %+v", driver.inputConfigs)
	}
}

func TestFill_ReusesPreviousAnswersAsDefaults(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"dogs"},
		selectIdx: []int{1},
	}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	view.SetFields("cats", "silly")

	if err := view.Fill(context.Background(), defaultForm(t)); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if driver.inputConfigs[0].Default != "cats" {
		t.Fatalf("expected previous topic as default, got %q", driver.inputConfigs[0].Default)
	}
	if view.ReadTone() != "sarcastic" {
		t.Fatalf("unexpected tone %q", view.ReadTone())
	}
}

func TestFill_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{inputs: []string{"cats"}, selectErr: ErrAborted}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))

	err := view.Fill(context.Background(), defaultForm(t))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestView_SubmitPrintsBusyAndResult(t *testing.T) {
	driver := &stubDriver{}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	view.SetFields("cats", "dark")

	gen := &stubGenerator{resp: joke.Response{Setup: "S", Punchline: "P", Explanation: "wordplay"}}
	ctrl, err := form.NewController(view, gen)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	if _, err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := []string{
		"… Generating joke...",
		"» S\n» P\ni Why it's funny: wordplay",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	snap := view.Snapshot()
	if snap.Busy || !snap.ResultVisible {
		t.Fatalf("unexpected state %+v", snap)
	}
}

func TestView_BlockingNotifyAlerts(t *testing.T) {
	driver := &stubDriver{}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()), WithBlockingNotify(true))

	gen := &stubGenerator{err: &joke.StatusError{StatusCode: 500}}
	ctrl, err := form.NewController(view, gen)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	if _, err := ctrl.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	if diff := cmp.Diff([]string{"! Error: Failed to generate joke"}, driver.alerts); diff != "" {
		t.Fatalf("alerts mismatch (-want +got):\n%s", diff)
	}
	if view.HasResult() {
		t.Fatalf("result should stay hidden")
	}
}

func TestSession_GenerateCopyQuit(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"cats"},
		// menu: generate, tone: dark, menu: copy, menu: quit
		selectIdx: []int{0, 3, 1, 2},
	}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	gen := &stubGenerator{resp: joke.Response{Setup: "S", Punchline: "P"}}
	cb := &stubClipboard{}
	ctrl, err := form.NewController(view, gen, form.WithClipboard(cb))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}

	session, err := NewSession(view, ctrl, defaultForm(t), nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]joke.Request{{Topic: "cats", Tone: "dark", Language: "english"}}, gen.reqs); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"S\n\nP"}, cb.writes); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}

	wantMenus := [][]string{
		{actionGenerate, actionQuit},
		{"witty", "sarcastic", "dad-joke", "dark", "silly"},
		{actionGenerate, actionCopy, actionQuit},
		{actionGenerate, actionCopy, actionQuit},
	}
	if diff := cmp.Diff(wantMenus, driver.selectSeen); diff != "" {
		t.Fatalf("menus mismatch (-want +got):\n%s", diff)
	}

	last := driver.infoMessages[len(driver.infoMessages)-1]
	if !strings.Contains(last, form.CopiedMessage) {
		t.Fatalf("expected copy confirmation, got %q", last)
	}
}

func TestSession_ConfirmsQuitWithUncopiedJoke(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"cats"},
		// menu: generate, tone: dark, menu: quit (declined), menu: quit
		selectIdx: []int{0, 3, 2, 2},
		confirm:   []bool{false, true},
	}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	gen := &stubGenerator{resp: joke.Response{Setup: "S", Punchline: "P"}}
	ctrl, err := form.NewController(view, gen, form.WithClipboard(&stubClipboard{}))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	session, err := NewSession(view, ctrl, defaultForm(t), nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []ConfirmConfig{
		{Message: quitUncopiedMessage},
		{Message: quitUncopiedMessage},
	}
	if diff := cmp.Diff(want, driver.confirmSeen); diff != "" {
		t.Fatalf("confirm prompts mismatch (-want +got):\n%s", diff)
	}
	if driver.selectPos != 4 {
		t.Fatalf("expected the menu to be shown again after declining, got %d selects", driver.selectPos)
	}
}

func TestSession_QuitWithoutResultSkipsConfirm(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	ctrl, err := form.NewController(view, &stubGenerator{})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	session, err := NewSession(view, ctrl, defaultForm(t), nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(driver.confirmSeen) != 0 {
		t.Fatalf("expected no confirmation, got %+v", driver.confirmSeen)
	}
}

func TestSession_AbortEndsCleanly(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	view := NewView(WithPromptDriver(driver), WithTheme(plainTheme()))
	ctrl, err := form.NewController(view, &stubGenerator{})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	session, err := NewSession(view, ctrl, defaultForm(t), nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("expected nil on abort, got %v", err)
	}
}

func TestNewSession_RequiresController(t *testing.T) {
	view := NewView(WithPromptDriver(&stubDriver{}))
	if _, err := NewSession(view, nil, contract.Form{}, nil); !errors.Is(err, ErrControllerRequired) {
		t.Fatalf("expected ErrControllerRequired, got %v", err)
	}
}

func TestView_WithOutputWritesThroughDefaultDriver(t *testing.T) {
	var buf bytes.Buffer
	view := NewView(WithOutput(&buf), WithTheme(plainTheme()))

	view.SetBusy(true)
	view.SetBusy(false)

	if got := buf.String(); got != "… Generating joke...\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTheme_ColorsOnlyWhenEnabled(t *testing.T) {
	theme := plainTheme()
	if got := theme.busy("x"); got != "… x" {
		t.Fatalf("unexpected plain output %q", got)
	}
	theme.Color = true
	if got := theme.busy("x"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escape in %q", got)
	}
}
