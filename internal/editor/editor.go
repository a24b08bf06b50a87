package editor

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/logging"
)

const defaultFieldWidth = 28

// DecisionMsg is emitted for every key the focused editor decides on.
type DecisionMsg struct {
	Session  string
	Event    hotkey.KeyEvent
	Decision hotkey.Decision
	Text     string
}

// ValueChangedMsg is emitted when the bound value changes.
type ValueChangedMsg struct {
	Session string
	Value   hotkey.HotKey
	Text    string
}

type Styles struct {
	Label       lipgloss.Style
	Box         lipgloss.Style
	FocusedBox  lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Unsupported lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		FocusedBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Unsupported: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

// Editor is the interactive surface around a Field. While focused it
// consumes every key event and holds global hotkey suppression.
type Editor struct {
	field      *Field
	suppressor Suppressor
	logger     logging.Logger
	styles     Styles
	label      string
	width      int
	newSession func() string

	focused bool
	session string
	release func()
}

type Option func(*Editor)

func WithSuppressor(s Suppressor) Option {
	return func(e *Editor) {
		if s != nil {
			e.suppressor = s
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithStyles(styles Styles) Option {
	return func(e *Editor) {
		e.styles = styles
	}
}

func WithLabel(label string) Option {
	return func(e *Editor) {
		e.label = label
	}
}

func WithWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.width = width
		}
	}
}

// WithSessionIDs overrides how focus sessions are named in logs and
// messages.
func WithSessionIDs(next func() string) Option {
	return func(e *Editor) {
		if next != nil {
			e.newSession = next
		}
	}
}

func New(field *Field, opts ...Option) *Editor {
	if field == nil {
		field = NewField(hotkey.DefaultPolicy())
	}
	e := &Editor{
		field:      field,
		suppressor: nopSuppressor{},
		logger:     logging.Nop(),
		styles:     DefaultStyles(),
		label:      "Hotkey",
		width:      defaultFieldWidth,
		newSession: logging.NewSessionID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Editor) Field() *Field {
	if e == nil {
		return nil
	}
	return e.field
}

func (e *Editor) Focused() bool {
	return e != nil && e.focused
}

// Session is the id of the current focus session, empty when blurred.
func (e *Editor) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Focus starts a capture session and acquires hotkey suppression. A
// suppression failure is returned but the editor still takes focus.
func (e *Editor) Focus() error {
	if e == nil || e.focused {
		return nil
	}
	e.focused = true
	e.session = e.newSession()
	e.logger.Debug("editor_focus", logging.F("session", e.session))
	release, err := e.suppressor.Suppress()
	// A partial failure still holds suppression; keep the release.
	e.release = nil
	if release != nil {
		e.release = releaseOnce(release)
	}
	if err != nil {
		e.logger.Warn("hotkey_suppress_failed", logging.F("session", e.session), logging.F("error", err))
		return err
	}
	return nil
}

// Blur ends the capture session and releases suppression. Safe to call
// repeatedly.
func (e *Editor) Blur() {
	if e == nil {
		return
	}
	if e.release != nil {
		e.release()
		e.release = nil
	}
	if e.focused {
		e.logger.Debug("editor_blur", logging.F("session", e.session))
	}
	e.focused = false
	e.session = ""
}

// Close releases everything the editor holds.
func (e *Editor) Close() {
	e.Blur()
}

// Update routes msg to the editor. handled is true when the message was
// consumed and must not reach other components.
func (e *Editor) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	if e == nil {
		return false, nil
	}
	switch msg := msg.(type) {
	case tea.BlurMsg:
		e.Blur()
		return false, nil
	case tea.KeyPressMsg:
		if !e.focused {
			return false, nil
		}
		return true, e.Press(TranslateKey(msg.Key()))
	case tea.KeyReleaseMsg, tea.PasteMsg:
		return e.focused, nil
	}
	return false, nil
}

// Press applies one capture event and returns the resulting messages.
func (e *Editor) Press(ev hotkey.KeyEvent) tea.Cmd {
	if e == nil {
		return nil
	}
	decision, changed := e.field.Press(ev)
	text := e.field.Text()
	e.logger.Debug("hotkey_decision",
		logging.F("session", e.session),
		logging.F("outcome", decision.Outcome),
		logging.F("key", decision.Key),
		logging.F("mods", ev.Modifiers),
		logging.F("reason", string(decision.Reason)),
		logging.F("text", text),
	)
	cmds := []tea.Cmd{emit(DecisionMsg{Session: e.session, Event: ev, Decision: decision, Text: text})}
	if changed {
		cmds = append(cmds, emit(ValueChangedMsg{Session: e.session, Value: e.field.Value(), Text: text}))
	}
	return tea.Batch(cmds...)
}

// SetValue replaces the bound value and reports the change, if any.
func (e *Editor) SetValue(h hotkey.HotKey) tea.Cmd {
	if e == nil || !e.field.SetValue(h) {
		return nil
	}
	return emit(ValueChangedMsg{Session: e.session, Value: e.field.Value(), Text: e.field.Text()})
}

// Clear resets the value to None.
func (e *Editor) Clear() tea.Cmd {
	return e.SetValue(hotkey.None)
}

func (e *Editor) SetPolicy(policy hotkey.Policy) {
	if e == nil {
		return
	}
	e.field.SetPolicy(policy)
}

func (e *Editor) SetWidth(width int) {
	if e == nil || width <= 0 {
		return
	}
	e.width = width
}

func (e *Editor) View() string {
	if e == nil {
		return ""
	}
	text := runewidth.Truncate(e.field.Text(), e.width, "…")
	text = runewidth.FillRight(text, e.width)
	switch e.field.Indicator() {
	case IndicatorValue:
		text = e.styles.Value.Render(text)
	case IndicatorUnsupported:
		text = e.styles.Unsupported.Render(text)
	default:
		text = e.styles.Placeholder.Render(text)
	}
	box := e.styles.Box
	if e.focused {
		box = e.styles.FocusedBox
	}
	var b strings.Builder
	if label := strings.TrimSpace(e.label); label != "" {
		b.WriteString(e.styles.Label.Render(label))
		b.WriteByte('\n')
	}
	b.WriteString(box.Render(text))
	return b.String()
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
