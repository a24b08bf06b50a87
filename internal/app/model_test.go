package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"hotkeyedit/internal/config"
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
)

type fakeSuppressor struct {
	acquired int
	released int
	err      error
}

func (f *fakeSuppressor) Suppress() (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.acquired++
	return func() { f.released++ }, nil
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	origTick := toastTickCmd
	t.Cleanup(func() { toastTickCmd = origTick })
	toastTickCmd = func() tea.Cmd { return nil }

	if opts.Config.Policy.KeyRange == "" {
		opts.Config = config.Default()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

// send feeds msg to m and then every message its commands produce. It
// reports whether the program would have quit.
func send(m *Model, msg tea.Msg) (quit bool) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := next.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		_, cmd := m.Update(next)
		queue = append(queue, runCmd(cmd)...)
	}
	return quit
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, next := range batch {
			out = append(out, runCmd(next)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

var (
	pressTab        = tea.KeyPressMsg{Code: tea.KeyTab}
	pressEsc        = tea.KeyPressMsg{Code: tea.KeyEscape}
	pressRelease    = tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	pressForceQuit  = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	pressCtrlAltShK = tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl | tea.ModAlt | tea.ModShift}
)

func pressText(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func TestModelCapturesWhileFocused(t *testing.T) {
	suppressor := &fakeSuppressor{}
	m := newTestModel(t, Options{Suppressor: suppressor})

	send(m, pressTab)
	if !m.editor.Focused() || suppressor.acquired != 1 {
		t.Fatalf("expected focused editor holding suppression, acquired=%d", suppressor.acquired)
	}

	send(m, pressCtrlAltShK)
	if got := m.editor.Field().Text(); got != "Ctrl+Alt+Shift+K" {
		t.Fatalf("field text: got=%q want=%q", got, "Ctrl+Alt+Shift+K")
	}
	if m.status != "hotkey: Ctrl+Alt+Shift+K" {
		t.Fatalf("status: got=%q", m.status)
	}

	// Host keys other than release and force quit reach the editor.
	if quit := send(m, pressText("q")); quit {
		t.Fatalf("q must not quit while capturing")
	}
	if !m.editor.Field().Value().IsNone() || m.editor.Field().Text() != "Unsupported" {
		t.Fatalf("expected rejected capture, got %q", m.editor.Field().Text())
	}
	if got := m.log.Len(); got != 2 {
		t.Fatalf("decision log entries: got=%d want=2", got)
	}
}

func TestModelTabAndEscapeClearWhileFocused(t *testing.T) {
	initial := hotkey.New(hotkey.KeyF5, hotkey.RequiredAll)
	m := newTestModel(t, Options{Initial: initial})
	send(m, pressTab)
	send(m, pressTab)
	if !m.editor.Focused() {
		t.Fatalf("tab must not release focus")
	}
	if !m.editor.Field().Value().IsNone() {
		t.Fatalf("tab alone should clear the value")
	}
	m.editor.SetValue(initial)
	send(m, pressEsc)
	if !m.editor.Field().Value().IsNone() {
		t.Fatalf("esc alone should clear the value")
	}
}

func TestModelReleaseFocusKeepsValue(t *testing.T) {
	suppressor := &fakeSuppressor{}
	m := newTestModel(t, Options{Suppressor: suppressor})
	send(m, pressTab)
	send(m, pressCtrlAltShK)
	send(m, pressRelease)
	if m.editor.Focused() {
		t.Fatalf("expected editor blurred")
	}
	if suppressor.released != 1 {
		t.Fatalf("expected suppression released, got %d", suppressor.released)
	}
	if got := m.editor.Field().Value(); got != hotkey.New(hotkey.KeyK, hotkey.RequiredAll) {
		t.Fatalf("value lost on release: %v", got)
	}
	if got := m.log.Len(); got != 1 {
		t.Fatalf("release key must not be decided, log=%d", got)
	}
}

func TestModelForceQuitWhileFocused(t *testing.T) {
	suppressor := &fakeSuppressor{}
	m := newTestModel(t, Options{Suppressor: suppressor})
	send(m, pressTab)
	if quit := send(m, pressForceQuit); !quit {
		t.Fatalf("expected quit")
	}
	if suppressor.released != 1 || m.editor.Focused() {
		t.Fatalf("quit must release the editor")
	}
}

func TestModelQuitWhenBlurred(t *testing.T) {
	m := newTestModel(t, Options{})
	if quit := send(m, pressText("q")); !quit {
		t.Fatalf("expected quit")
	}
}

func TestModelTerminalBlurReleasesFocus(t *testing.T) {
	suppressor := &fakeSuppressor{}
	m := newTestModel(t, Options{Suppressor: suppressor})
	send(m, pressTab)
	send(m, tea.BlurMsg{})
	if m.editor.Focused() || suppressor.released != 1 {
		t.Fatalf("terminal blur must release the editor")
	}
}

func TestModelSuppressionFailureWarns(t *testing.T) {
	m := newTestModel(t, Options{Suppressor: &fakeSuppressor{err: errors.New("registrar busy")}})
	send(m, pressTab)
	if !m.editor.Focused() {
		t.Fatalf("editor should still take focus")
	}
	if m.toastLevel != toastLevelWarning || !strings.Contains(m.toastText, "registrar busy") {
		t.Fatalf("unexpected toast %q", m.toastText)
	}
}

func TestModelCopyUsesRenderedHotkey(t *testing.T) {
	var copied string
	stubClipboard(t, func(text string) error {
		copied = text
		return nil
	}, func(string) error { return nil })

	m := newTestModel(t, Options{Initial: hotkey.New(hotkey.KeyF5, hotkey.ModControl|hotkey.ModAlt)})
	send(m, pressText("y"))
	if copied != "Ctrl+Alt+F5" {
		t.Fatalf("copied: got=%q want=%q", copied, "Ctrl+Alt+F5")
	}
	if m.toastText != "copied Ctrl+Alt+F5" {
		t.Fatalf("toast: got=%q", m.toastText)
	}
}

func TestModelCopyWithoutValueWarns(t *testing.T) {
	called := false
	stubClipboard(t, func(string) error {
		called = true
		return nil
	}, func(string) error { return nil })

	m := newTestModel(t, Options{})
	send(m, pressText("y"))
	if called {
		t.Fatalf("nothing should be copied")
	}
	if m.toastLevel != toastLevelWarning {
		t.Fatalf("expected warning toast, got %q", m.toastText)
	}
}

func TestModelClearResetsValue(t *testing.T) {
	m := newTestModel(t, Options{Initial: hotkey.New(hotkey.KeyF5, hotkey.RequiredAll)})
	send(m, pressText("x"))
	if !m.editor.Field().Value().IsNone() {
		t.Fatalf("expected value cleared")
	}
	if m.status != "hotkey: <None>" {
		t.Fatalf("status: got=%q", m.status)
	}
}

func TestModelReloadAppliesPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	m := newTestModel(t, Options{ConfigPath: path})

	if err := os.WriteFile(path, []byte("[policy]\nmin_required_modifiers = \"ctrl\"\nkey_range = \"all\"\n\n[display]\nunsupported_text = \"Nope\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	send(m, pressText("r"))
	// Ctrl alone now satisfies the policy, so the capture keys are flagged.
	want := "config reloaded: ctrl+g, ctrl+c reserved while capturing, cannot be recorded"
	if m.toastText != want || m.toastLevel != toastLevelWarning {
		t.Fatalf("toast: got=%q want=%q", m.toastText, want)
	}
	if m.policy.MinRequired != hotkey.ModControl {
		t.Fatalf("policy not swapped: %v", m.policy.MinRequired)
	}

	send(m, pressTab)
	send(m, tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	if got := m.editor.Field().Text(); got != "Ctrl+K" {
		t.Fatalf("field text: got=%q want=%q", got, "Ctrl+K")
	}
	send(m, pressText("k"))
	if got := m.editor.Field().Text(); got != "Nope" {
		t.Fatalf("unsupported text: got=%q want=%q", got, "Nope")
	}
}

func TestModelReloadWithoutReservedConflictIsInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	m := newTestModel(t, Options{ConfigPath: path})
	send(m, pressText("r"))
	if m.toastText != "config reloaded" || m.toastLevel != toastLevelInfo {
		t.Fatalf("toast: got=%q level=%d", m.toastText, m.toastLevel)
	}
}

func TestModelStartupWarnsAboutReservedChords(t *testing.T) {
	cfg := config.Default()
	cfg.Policy.MinRequiredModifiers = "ctrl"
	m := newTestModel(t, Options{Config: cfg})
	m.maybeShowNextStartupToast()
	if m.toastLevel != toastLevelWarning || !strings.Contains(m.toastText, "ctrl+c") {
		t.Fatalf("toast: got=%q level=%d", m.toastText, m.toastLevel)
	}
}

func TestModelReloadClearedDisplayTextRestoresDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Display.NoneText = "(unset)"
	m := newTestModel(t, Options{Config: cfg})
	if got := m.editor.Field().Text(); got != "(unset)" {
		t.Fatalf("field text: got=%q", got)
	}
	reloaded := config.Default()
	reloaded.Display.NoneText = ""
	reloaded.Display.UnsupportedText = ""
	send(m, configReloadedMsg{cfg: reloaded})
	if got := m.editor.Field().Text(); got != hotkey.NoneText {
		t.Fatalf("field text after reload: got=%q want=%q", got, hotkey.NoneText)
	}
}

func TestModelReloadErrorKeepsPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[policy]\nkey_range = \"everything\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m := newTestModel(t, Options{ConfigPath: path})
	send(m, pressText("r"))
	if m.toastLevel != toastLevelError || !strings.Contains(m.toastText, "key_range") {
		t.Fatalf("unexpected toast %q", m.toastText)
	}
	if m.policy.KeyRange != hotkey.KeyRangeLettersDigitsFunctions {
		t.Fatalf("policy changed on error")
	}
}

func TestModelGlobalHotkeyToast(t *testing.T) {
	m := newTestModel(t, Options{})
	binding := globalhotkey.Binding{Label: "quick note", HotKey: hotkey.New(hotkey.KeyN, hotkey.ModControl|hotkey.ModAlt)}
	send(m, globalHotkeyMsg{binding: binding})
	if m.toastText != "quick note (Ctrl+Alt+N)" {
		t.Fatalf("toast: got=%q", m.toastText)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, pressText("?"))
	if !m.showHelp {
		t.Fatalf("expected help")
	}
	view := xansi.Strip(m.render())
	if !strings.Contains(view, "Help") || !strings.Contains(view, "close help") {
		t.Fatalf("help view missing content:\n%s", view)
	}
	// Editor keys are inert while help is open.
	send(m, pressText("x"))
	send(m, pressText("?"))
	if m.showHelp {
		t.Fatalf("expected help closed")
	}
}

func TestModelViewShowsEditorLogAndHints(t *testing.T) {
	m := newTestModel(t, Options{Globals: []globalhotkey.Binding{{Label: "notes", HotKey: hotkey.New(hotkey.KeyN, hotkey.ModControl|hotkey.ModAlt)}}})
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := xansi.Strip(m.render())
	for _, want := range []string{"Hotkey editor", "<None>", "Decisions (0)", "tab edit", "global: notes Ctrl+Alt+N"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	send(m, pressTab)
	send(m, pressCtrlAltShK)
	view = xansi.Strip(m.render())
	for _, want := range []string{"Ctrl+Alt+Shift+K", "Decisions (1)", "ctrl+g done", "global (paused)", "09:26:53"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	for _, line := range strings.Split(view, "\n") {
		if w := xansi.StringWidth(line); w != 100 {
			t.Fatalf("line width: got=%d want=100 (%q)", w, line)
		}
	}
}

func TestModelViewEnablesFocusReporting(t *testing.T) {
	m := newTestModel(t, Options{})
	v := m.View()
	if !v.AltScreen || !v.ReportFocus {
		t.Fatalf("expected alt screen with focus reporting")
	}
	if v.KeyboardEnhancements.ReportEventTypes {
		t.Fatalf("release events only needed while capturing")
	}
	send(m, pressTab)
	if !m.View().KeyboardEnhancements.ReportEventTypes {
		t.Fatalf("expected release events while capturing")
	}
}

func TestModelKeybindingOverride(t *testing.T) {
	m := newTestModel(t, Options{Keybindings: NewKeybindings(map[string]string{KeyCommandFocusEditor: "e"})})
	send(m, pressText("e"))
	if !m.editor.Focused() {
		t.Fatalf("expected override to focus the editor")
	}
	if !strings.Contains(xansi.Strip(m.render()), "ctrl+g done") {
		t.Fatalf("expected editor hints")
	}
	send(m, pressRelease)
	if hint := m.hotkeys.Render(m, 0); !strings.Contains(hint, "e edit") {
		t.Fatalf("hints should show the bound key: %q", hint)
	}
}

func TestModelStartupConflictToast(t *testing.T) {
	m := newTestModel(t, Options{Keybindings: NewKeybindings(map[string]string{KeyCommandCopy: "x"})})
	if cmd := m.maybeShowNextStartupToast(); cmd != nil {
		runCmd(cmd)
	}
	if m.toastLevel != toastLevelError || !strings.Contains(m.toastText, "keybinding conflict: x in normal") {
		t.Fatalf("unexpected toast %q", m.toastText)
	}
}
