package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Progress creates stage displays.
type Progress interface {
	// Stages creates a display for a run of total numbered stages.
	Stages(total int) StageDisplay
}

// StageDisplay shows which stage of a run is executing and how many are done.
type StageDisplay interface {
	// Begin marks name as the running stage.
	Begin(name string)
	// Complete counts the running stage as done.
	Complete()
	// Close removes the display. Calling it again is a no-op.
	Close()
}

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress drawing on w. A nil w means os.Stderr.
// Headless sessions and colorless themes get plain log lines.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stderr
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) Stages(total int) StageDisplay {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &plainStages{theme: p.theme, total: total, writer: p.writer}
	}
	// The program reads no input and leaves SIGINT alone so that Ctrl-C
	// cancels the command's context instead of only closing the display.
	return newAnimatedStages(p.theme, total,
		tea.WithOutput(p.writer),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
}

type (
	stageBeginMsg    string
	stageCompleteMsg struct{}
	stageCloseMsg    struct{}
)

// stageModel renders a spinner next to the running stage and a bar over
// all stages. Completed stages are printed above it.
type stageModel struct {
	theme   *Theme
	spinner spinner.Model
	bar     progress.Model
	name    string
	current int
	total   int
	closed  bool
}

func newStageModel(theme *Theme, total int) stageModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return stageModel{
		theme:   theme,
		spinner: s,
		bar: progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
		total: total,
	}
}

func (m stageModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m stageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageBeginMsg:
		m.name = string(msg)
		return m, nil
	case stageCompleteMsg:
		if m.current < m.total {
			m.current++
		}
		line := fmt.Sprintf("%s %s", m.theme.Success().Render("✓"), m.name)
		m.name = ""
		return m, tea.Println(line)
	case stageCloseMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m stageModel) View() string {
	if m.closed || m.name == "" {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	counter := m.theme.Muted().Render(fmt.Sprintf("%d/%d", m.current, m.total))
	return fmt.Sprintf("%s %s  %s %s\n", m.spinner.View(), m.name, m.bar.ViewAs(pct), counter)
}

// animatedStages runs a stageModel in its own bubbletea program.
type animatedStages struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

// @MX:WARN: [AUTO] The program goroutine lives until Close; a display that is never closed leaks it.
// @MX:REASON: [AUTO] Send blocks once the program has exited, so Close is guarded by sync.Once.
func newAnimatedStages(theme *Theme, total int, opts ...tea.ProgramOption) *animatedStages {
	a := &animatedStages{
		program: tea.NewProgram(newStageModel(theme, total), opts...),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(a.done)
		_, _ = a.program.Run()
	}()
	return a
}

func (a *animatedStages) Begin(name string) {
	a.program.Send(stageBeginMsg(name))
}

func (a *animatedStages) Complete() {
	a.program.Send(stageCompleteMsg{})
}

func (a *animatedStages) Close() {
	a.once.Do(func() {
		a.program.Send(stageCloseMsg{})
		<-a.done
	})
}

// plainStages prints one line per completed stage.
type plainStages struct {
	theme   *Theme
	writer  io.Writer
	name    string
	current int
	total   int
}

func (p *plainStages) Begin(name string) {
	p.name = name
}

func (p *plainStages) Complete() {
	if p.current < p.total {
		p.current++
	}
	counter := p.theme.Muted().Render(fmt.Sprintf("[%d/%d]", p.current, p.total))
	_, _ = fmt.Fprintf(p.writer, "%s %s\n", counter, p.name)
}

func (p *plainStages) Close() {}
