package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"hotkeyedit/internal/config"
	"hotkeyedit/internal/editor"
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/logging"
)

const (
	defaultWidth      = 80
	defaultHeight     = 24
	minLogHeight      = 3
	editorBlockHeight = 4
)

// Model is the host window: one hotkey editor, the decision log and the
// hint bar.
type Model struct {
	editor      *editor.Editor
	log         *DecisionLogController
	help        *HelpController
	keybindings *Keybindings
	hotkeys     *HotkeyRenderer
	logger      logging.Logger
	policy      hotkey.Policy
	globals     []globalhotkey.Binding
	configPath  string
	nowFunc     func() time.Time

	width    int
	height   int
	showHelp bool
	status   string

	toastText     string
	toastLevel    toastLevel
	toastUntil    time.Time
	startupToasts []queuedToast
}

// Options configures NewModel. Config is expected to start from
// config.Default; the remaining fields are optional.
type Options struct {
	Config      config.Config
	ConfigPath  string
	Initial     hotkey.HotKey
	Keybindings *Keybindings
	Suppressor  editor.Suppressor
	Globals     []globalhotkey.Binding
	Logger      logging.Logger
	Now         func() time.Time
}

func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	policy, err := cfg.CapturePolicy()
	if err != nil {
		return nil, err
	}
	resolver, err := cfg.KeyLabels()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	field := editor.NewField(policy,
		editor.WithResolver(resolver),
		editor.WithNoneText(cfg.Display.NoneText),
		editor.WithUnsupportedText(cfg.Display.UnsupportedText),
	)
	field.SetValue(opts.Initial)
	m := &Model{
		editor: editor.New(field,
			editor.WithSuppressor(opts.Suppressor),
			editor.WithLogger(logging.Named(logger, "editor")),
			editor.WithWidth(cfg.FieldWidth()),
		),
		log:        NewDecisionLogController(defaultWidth, minLogHeight, resolver),
		help:       NewHelpController(defaultWidth-4, defaultHeight-4),
		logger:     logger,
		policy:     policy,
		globals:    opts.Globals,
		configPath: opts.ConfigPath,
		nowFunc:    now,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.applyKeybindings(opts.Keybindings)
	m.enqueueStartupKeybindingConflictToasts(DetectKeybindingConflicts(m.keybindings))
	if msg := reservedChordsMessage(reservedCaptureChords(m.policy, m.keybindings)); msg != "" {
		m.enqueueStartupToast(toastLevelWarning, msg)
	}
	m.resize(defaultWidth, defaultHeight)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.RequestBackgroundColor, m.maybeShowNextStartupToast())
}

// Editor exposes the hotkey editor, e.g. to read the final value after
// the program exits.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.BackgroundColorMsg:
		if setMarkdownBackgroundDark(msg.IsDark()) {
			m.refreshHelp(true)
		}
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case editor.DecisionMsg:
		m.log.Append(decisionLogEntry{at: m.now(), event: msg.Event, decision: msg.Decision, text: msg.Text})
		return m, nil
	case editor.ValueChangedMsg:
		m.status = "hotkey: " + msg.Text
		m.logger.Info("hotkey_changed", logging.F("session", msg.Session), logging.F("hotkey", msg.Value))
		return m, nil
	case clipboardResultMsg:
		if msg.err != nil {
			m.logger.Warn("copy_failed", logging.F("error", msg.err))
			return m, m.showErrorToast("copy failed: " + msg.err.Error())
		}
		m.logger.Debug("copied", logging.F("method", msg.method), logging.F("text", msg.text))
		return m, m.showInfoToast("copied " + msg.text)
	case configReloadedMsg:
		return m, m.handleConfigReloaded(msg)
	case globalHotkeyMsg:
		m.logger.Info("global_hotkey_fired", logging.F("label", msg.binding.Label), logging.F("hotkey", msg.binding.HotKey))
		return m, m.showInfoToast(fmt.Sprintf("%s (%s)", msg.binding.Label, m.renderHotKey(msg.binding.HotKey)))
	case toastExpiredMsg:
		return m, m.maybeShowNextStartupToast()
	}
	_, cmd := m.editor.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.editor.Focused() {
		switch {
		case m.keyMatchesCommand(msg, KeyCommandForceQuit):
			return m.quit()
		case m.keyMatchesCommand(msg, KeyCommandReleaseFocus):
			m.editor.Blur()
			m.status = "capture finished"
			return nil
		}
		_, cmd := m.editor.Update(msg)
		return cmd
	}
	if m.showHelp {
		switch {
		case m.keyMatchesCommand(msg, KeyCommandQuit), m.keyMatchesCommand(msg, KeyCommandForceQuit):
			return m.quit()
		case m.keyMatchesCommand(msg, KeyCommandHelp):
			m.showHelp = false
		case m.keyMatchesCommand(msg, KeyCommandLogUp):
			m.help.ScrollUp()
		case m.keyMatchesCommand(msg, KeyCommandLogDown):
			m.help.ScrollDown()
		}
		return nil
	}
	switch {
	case m.keyMatchesCommand(msg, KeyCommandQuit), m.keyMatchesCommand(msg, KeyCommandForceQuit):
		return m.quit()
	case m.keyMatchesCommand(msg, KeyCommandFocusEditor):
		return m.focusEditor()
	case m.keyMatchesCommand(msg, KeyCommandCopy):
		value := m.editor.Field().Value()
		if value.IsNone() {
			return m.showWarningToast("no hotkey to copy")
		}
		return copyCmd(m.renderHotKey(value))
	case m.keyMatchesCommand(msg, KeyCommandClear):
		return m.editor.Clear()
	case m.keyMatchesCommand(msg, KeyCommandReload):
		return reloadConfigCmd(m.configPath)
	case m.keyMatchesCommand(msg, KeyCommandHelp):
		m.showHelp = true
		m.refreshHelp(false)
	case m.keyMatchesCommand(msg, KeyCommandLogUp):
		m.log.PageUp()
	case m.keyMatchesCommand(msg, KeyCommandLogDown):
		m.log.PageDown()
	case m.keyMatchesCommand(msg, KeyCommandLogTop):
		m.log.GotoTop()
	case m.keyMatchesCommand(msg, KeyCommandLogBottom):
		m.log.GotoBottom()
	}
	return nil
}

func (m *Model) focusEditor() tea.Cmd {
	m.showHelp = false
	m.status = "capturing: press a combination"
	if err := m.editor.Focus(); err != nil {
		return m.showWarningToast("global hotkeys still active: " + err.Error())
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.editor.Close()
	return tea.Quit
}

func reloadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var (
			cfg config.Config
			err error
		)
		if strings.TrimSpace(path) == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(path)
		}
		return configReloadedMsg{cfg: cfg, err: err, manual: true}
	}
}

// handleConfigReloaded swaps policy and labels. The bound value is kept
// even if the new policy would no longer accept it.
func (m *Model) handleConfigReloaded(msg configReloadedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("config_reload_failed", logging.F("error", msg.err))
		return m.showErrorToast("config: " + msg.err.Error())
	}
	if err := m.applyConfig(msg.cfg); err != nil {
		m.logger.Warn("config_invalid", logging.F("error", err))
		return m.showErrorToast("config: " + err.Error())
	}
	m.logger.Info("config_reloaded", logging.F("manual", msg.manual))
	if reserved := reservedChordsMessage(reservedCaptureChords(m.policy, m.keybindings)); reserved != "" {
		return m.showWarningToast("config reloaded: " + reserved)
	}
	return m.showInfoToast("config reloaded")
}

func (m *Model) applyConfig(cfg config.Config) error {
	policy, err := cfg.CapturePolicy()
	if err != nil {
		return err
	}
	resolver, err := cfg.KeyLabels()
	if err != nil {
		return err
	}
	m.policy = policy
	m.editor.SetPolicy(policy)
	m.editor.SetWidth(cfg.FieldWidth())
	m.editor.Field().Apply(
		editor.WithResolver(resolver),
		editor.WithNoneText(cfg.Display.NoneText),
		editor.WithUnsupportedText(cfg.Display.UnsupportedText),
	)
	m.log.SetResolver(resolver)
	m.refreshHelp(false)
	return nil
}

func (m *Model) renderHotKey(h hotkey.HotKey) string {
	return h.Render(m.editor.Field().Resolver())
}

func (m *Model) refreshHelp(force bool) {
	if force {
		m.help.source = ""
	}
	m.help.SetContent(helpMarkdown(m.policy, m.keybindings))
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width = width
	m.height = height
	// title, editor, divider, log header, status and hints
	reserved := editorBlockHeight + 5
	if len(m.globals) > 0 {
		reserved++
	}
	logHeight := max(minLogHeight, height-reserved)
	m.log.Resize(width, logHeight)
	m.help.Resize(max(1, width-4), max(1, height-4))
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.ReportFocus = true
	v.WindowTitle = "hotkeyedit"
	v.KeyboardEnhancements.ReportEventTypes = m.editor.Focused()
	return v
}

func (m *Model) render() string {
	width := max(1, m.width)
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Help"),
			m.help.View(),
			helpStyle.Render(truncateToWidth(m.hotkeys.Render(m, width), width)),
		)
	}
	lines := []string{
		headerStyle.Render("Hotkey editor") + "  " + policyStyle.Render(m.policySummary()),
		m.editor.View(),
	}
	if len(m.globals) > 0 {
		lines = append(lines, statusStyle.Render(truncateToWidth(m.globalsSummary(), width)))
	}
	lines = append(lines, dividerStyle.Render(strings.Repeat("─", width)))
	logView, _ := m.log.View()
	lines = append(lines, logView)
	statusLine := statusStyle.Render(truncateToWidth(m.status, width))
	if toast := m.toastLine(width); toast != "" {
		statusLine = toast
	}
	lines = append(lines, statusLine, helpStyle.Render(m.hotkeys.Render(m, width)))
	return padLines(strings.Split(strings.Join(lines, "\n"), "\n"), width)
}

func (m *Model) policySummary() string {
	return fmt.Sprintf("requires %s • %s", m.policy.MinRequired, describeKeyRange(m.policy.KeyRange))
}

func (m *Model) globalsSummary() string {
	parts := make([]string, 0, len(m.globals))
	for _, binding := range m.globals {
		parts = append(parts, binding.Label+" "+m.renderHotKey(binding.HotKey))
	}
	state := "global"
	if m.editor.Focused() {
		state = "global (paused)"
	}
	return state + ": " + strings.Join(parts, ", ")
}

func (m *Model) now() time.Time {
	return m.nowFunc()
}
