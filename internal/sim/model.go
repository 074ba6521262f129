// Package sim runs the display loop against a virtual LCD in the terminal,
// with the keyboard standing in for the NEXT and PREV buttons.
package sim

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/lcdstat/internal/app"
	"github.com/rileyhilliard/lcdstat/internal/buttons"
	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/pages"
	"github.com/rileyhilliard/lcdstat/internal/ui"
)

const gaugeWidth = 10

// tickMsg drives one loop step.
type tickMsg time.Time

// Model is the bubbletea model wrapping an app.Loop.
type Model struct {
	ctx      context.Context
	loop     *app.Loop
	screen   *Screen
	events   *keyEvents
	clock    app.Clock
	interval time.Duration
	quitting bool
}

// NewModel builds a model sampling through sampler. A nil clock uses the
// real monotonic clock.
func NewModel(ctx context.Context, sampler app.Sampler, clock app.Clock, log logger.Logger) Model {
	if clock == nil {
		clock = app.RealClock()
	}
	if log == nil {
		log = logger.Noop()
	}
	screen := NewScreen()
	events := &keyEvents{}
	loop := app.NewLoop(sampler, screen,
		app.WithButtons(events),
		app.WithClock(clock),
		app.WithLogger(log),
	)
	return Model{
		ctx:      ctx,
		loop:     loop,
		screen:   screen,
		events:   events,
		clock:    clock,
		interval: app.TickInterval,
	}
}

// Init runs the first step immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update handles key presses and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			_ = m.screen.Clear()
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.events.push(buttons.EventNext)
		case key.Matches(msg, keys.Prev):
			m.events.push(buttons.EventPrev)
		}

	case tickMsg:
		m.loop.Step(m.ctx, m.clock.NowMS())
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the virtual panel and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	line1, line2 := m.screen.Lines()
	r := m.loop.Router()
	caption := fmt.Sprintf("lcdstat · %s %d/%d", r.Name(), r.Index()+1, pages.Count)
	panel := ui.RenderPanel(caption, line1, line2)
	rows := []string{panel}
	if g := m.gaugeView(); g != "" {
		rows = append(rows, g)
	}
	rows = append(rows, m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// gaugeView shows CPU and RAM bars for the last snapshot, empty before
// the first successful sample.
func (m Model) gaugeView() string {
	snap := m.loop.Snapshot()
	if snap == nil {
		return ""
	}
	return ui.Label("CPU ") + ui.RenderBar(snap.CPUUsagePercent, gaugeWidth) +
		"  " + ui.Label("RAM ") + ui.RenderBar(snap.MemUsedPercent(), gaugeWidth)
}

func (m Model) helpView() string {
	var parts []string
	for _, b := range keys.help() {
		h := b.Help()
		parts = append(parts, ui.Paint(ui.ColorInfo, h.Key)+" "+ui.Paint(ui.ColorMuted, h.Desc))
	}
	return strings.Join(parts, "  ")
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run shows the simulator until the user quits or ctx is cancelled.
func Run(ctx context.Context, sampler app.Sampler, log logger.Logger, output io.Writer, input io.Reader) error {
	p := tea.NewProgram(
		NewModel(ctx, sampler, nil, log),
		tea.WithContext(ctx),
		tea.WithOutput(output),
		tea.WithInput(input),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrDriver, "Simulator failed", "Run from an interactive terminal.")
	}
	return nil
}
