package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"

	"hotkeyedit/internal/hotkey"
)

var commandDescriptions = map[string]string{
	KeyCommandQuit:         "Quit",
	KeyCommandForceQuit:    "Quit, also while editing",
	KeyCommandFocusEditor:  "Start capturing a hotkey",
	KeyCommandReleaseFocus: "Stop capturing",
	KeyCommandCopy:         "Copy the hotkey text",
	KeyCommandClear:        "Reset the hotkey to none",
	KeyCommandReload:       "Reload the config file",
	KeyCommandHelp:         "Toggle this help",
	KeyCommandLogUp:        "Scroll decisions up",
	KeyCommandLogDown:      "Scroll decisions down",
	KeyCommandLogTop:       "First decision",
	KeyCommandLogBottom:    "Latest decision",
}

// helpMarkdown describes the active policy and the host keys.
func helpMarkdown(policy hotkey.Policy, bindings *Keybindings) string {
	var b strings.Builder
	b.WriteString("# Hotkey editor\n\n")
	b.WriteString("While capturing, every key goes to the editor. A combination is kept only when it passes the policy below; anything else shows as unsupported.\n\n")
	b.WriteString("## Policy\n\n")
	fmt.Fprintf(&b, "- Required modifiers: %s\n", escapeMarkdown(policy.MinRequired.String()))
	fmt.Fprintf(&b, "- Allowed keys: %s\n", escapeMarkdown(describeKeyRange(policy.KeyRange)))
	fmt.Fprintf(&b, "- Excluded keys: %s\n", escapeMarkdown(describeKeySet(policy.Excluded)))
	fmt.Fprintf(&b, "- Clear keys (pressed alone): %s\n", escapeMarkdown(describeKeySet(policy.Clear)))
	if policy.AllowMeta {
		b.WriteString("- The Windows/Super key may be used\n")
	} else {
		b.WriteString("- The Windows/Super key is rejected\n")
	}
	reserved := make([]string, 0, len(captureCommands))
	for _, command := range captureCommands {
		reserved = append(reserved, "`"+bindings.KeyFor(command, defaultKeybindingByCommand[command])+"`")
	}
	fmt.Fprintf(&b, "- Reserved while capturing, never recorded: %s\n", strings.Join(reserved, ", "))
	b.WriteString("\n## Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, command := range KnownKeybindingCommands() {
		key := bindings.KeyFor(command, defaultKeybindingByCommand[command])
		fmt.Fprintf(&b, "| `%s` | %s |\n", key, commandDescriptions[command])
	}
	return b.String()
}

func describeKeyRange(r hotkey.KeyRange) string {
	if r == hotkey.KeyRangeLettersDigitsFunctions {
		return "letters, digits, F1-F12"
	}
	return "all keys"
}

func describeKeySet(set hotkey.KeySet) string {
	if set.Len() == 0 {
		return "none"
	}
	return strings.Join(set.Names(), ", ")
}

// HelpController renders the help overlay into a scrollable viewport.
type HelpController struct {
	viewport viewport.Model
	source   string
	width    int
}

func NewHelpController(width, height int) *HelpController {
	return &HelpController{
		viewport: viewport.New(viewport.WithWidth(max(1, width)), viewport.WithHeight(max(1, height))),
		width:    max(1, width),
	}
}

func (c *HelpController) SetContent(markdown string) {
	if c == nil || c.source == markdown {
		return
	}
	c.source = markdown
	c.render()
}

func (c *HelpController) Resize(width, height int) {
	if c == nil {
		return
	}
	width = max(1, width)
	c.viewport.SetHeight(max(1, height))
	if width == c.width {
		return
	}
	c.width = width
	c.viewport.SetWidth(width)
	c.render()
}

func (c *HelpController) render() {
	c.viewport.SetContent(renderMarkdown(c.source, c.width))
	c.viewport.GotoTop()
}

func (c *HelpController) ScrollUp() {
	if c != nil {
		c.viewport.PageUp()
	}
}

func (c *HelpController) ScrollDown() {
	if c != nil {
		c.viewport.PageDown()
	}
}

func (c *HelpController) View() string {
	if c == nil {
		return ""
	}
	return helpFrameStyle.Render(c.viewport.View())
}
