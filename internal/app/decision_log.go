package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"

	"hotkeyedit/internal/hotkey"
)

const (
	decisionLogWaitingMessage = "Press a key combination in the editor."
	maxDecisionLogEntries     = 500
)

type decisionLogEntry struct {
	at       time.Time
	event    hotkey.KeyEvent
	decision hotkey.Decision
	text     string
}

func (e decisionLogEntry) render(resolver hotkey.KeyNameResolver) string {
	pressed := hotkey.HotKey{Key: e.event.EffectiveKey(), Modifiers: e.event.Modifiers}.RenderWithPlaceholder(resolver, "-")
	outcome := outcomeStyle(e.decision.Outcome).Render(fmt.Sprintf("%-6s", e.decision.Outcome))
	return fmt.Sprintf("%s %s %-22s %-18s %s",
		logTimeStyle.Render(e.at.Format("15:04:05")),
		outcome,
		pressed,
		e.decision.Reason,
		e.text,
	)
}

// DecisionLogController shows the most recent capture decisions, newest
// last, and follows the tail unless scrolled up.
type DecisionLogController struct {
	viewport     viewport.Model
	resolver     hotkey.KeyNameResolver
	entries      []decisionLogEntry
	follow       bool
	cachedView   string
	cachedHeight int
	dirty        bool
}

func NewDecisionLogController(width, height int, resolver hotkey.KeyNameResolver) *DecisionLogController {
	vp := viewport.New(viewport.WithWidth(max(1, width)), viewport.WithHeight(max(1, height)))
	vp.SetContent(decisionLogWaitingMessage)
	return &DecisionLogController{
		viewport: vp,
		resolver: resolver,
		follow:   true,
		dirty:    true,
	}
}

func (c *DecisionLogController) Resize(width, height int) {
	if c == nil {
		return
	}
	nextWidth := max(1, width)
	nextHeight := max(1, height)
	if c.viewport.Width() == nextWidth && c.viewport.Height() == nextHeight {
		return
	}
	c.viewport.SetWidth(nextWidth)
	c.viewport.SetHeight(nextHeight)
	c.dirty = true
}

// SetResolver re-renders existing entries with new key labels.
func (c *DecisionLogController) SetResolver(resolver hotkey.KeyNameResolver) {
	if c == nil {
		return
	}
	c.resolver = resolver
	c.refresh()
}

func (c *DecisionLogController) Append(entry decisionLogEntry) {
	if c == nil {
		return
	}
	c.entries = append(c.entries, entry)
	if over := len(c.entries) - maxDecisionLogEntries; over > 0 {
		c.entries = c.entries[over:]
	}
	c.refresh()
}

func (c *DecisionLogController) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *DecisionLogController) refresh() {
	if len(c.entries) == 0 {
		c.viewport.SetContent(decisionLogWaitingMessage)
		c.dirty = true
		return
	}
	lines := make([]string, len(c.entries))
	for i, entry := range c.entries {
		lines[i] = entry.render(c.resolver)
	}
	c.viewport.SetContentLines(lines)
	if c.follow {
		c.viewport.GotoBottom()
	}
	c.dirty = true
}

func (c *DecisionLogController) PageUp() {
	if c == nil {
		return
	}
	c.viewport.PageUp()
	c.follow = c.viewport.AtBottom()
	c.dirty = true
}

func (c *DecisionLogController) PageDown() {
	if c == nil {
		return
	}
	c.viewport.PageDown()
	c.follow = c.viewport.AtBottom()
	c.dirty = true
}

func (c *DecisionLogController) GotoTop() {
	if c == nil {
		return
	}
	c.viewport.GotoTop()
	c.follow = c.viewport.AtBottom()
	c.dirty = true
}

func (c *DecisionLogController) GotoBottom() {
	if c == nil {
		return
	}
	c.viewport.GotoBottom()
	c.follow = true
	c.dirty = true
}

func (c *DecisionLogController) Following() bool {
	return c != nil && c.follow
}

func (c *DecisionLogController) View() (string, int) {
	if c == nil {
		return "", 0
	}
	if c.dirty {
		body := c.viewport.View()
		if strings.TrimSpace(body) == "" {
			body = decisionLogWaitingMessage
		}
		c.cachedView = headerStyle.Render(fmt.Sprintf("Decisions (%d)", len(c.entries))) + "\n" + body
		c.cachedHeight = blockLineCount(c.cachedView)
		c.dirty = false
	}
	return c.cachedView, c.cachedHeight
}
