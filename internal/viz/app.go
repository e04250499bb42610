package viz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lissajous/internal/config"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/export"
	"github.com/san-kum/lissajous/internal/render"
	"github.com/san-kum/lissajous/internal/session"
)

// exportSize is the plot area of SVG snapshots, in pixels.
const exportSize = 600

type frameMsg struct{}

type dispatchMsg session.Outcome

type configMsg struct{ cfg *config.Config }

// reconfiguredMsg follows a configMsg once the session took the new settings.
type reconfiguredMsg struct{}

type exportedMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model of the explorer: four sliders, the animate
// and stop buttons, and the plot fed by the session's display surface.
type Model struct {
	ctx     context.Context
	sess    *session.Session
	log     *slog.Logger
	theme   Theme
	cols    int
	rows    int
	cursor  int
	presets []string
	preset  int
	fig     render.Figure
	hasFig  bool
	frames  int
	status  string
	outDir  string
	help    bool
}

// Options configure NewModel.
type Options struct {
	Config  *config.Config
	Initial *curve.Params
	OutDir  string
	Logger  *slog.Logger
}

func NewModel(ctx context.Context, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	so := cfg.SessionOptions()
	so.Logger = log
	sess := session.New(so)
	if opts.Initial != nil {
		sess.SetParams(*opts.Initial)
	} else {
		sess.SetParams(cfg.InitialParams())
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	return Model{
		ctx:     ctx,
		sess:    sess,
		log:     log,
		theme:   GetTheme(cfg.View.Theme),
		cols:    cfg.View.Width,
		rows:    cfg.View.Height,
		presets: config.ListPresets(),
		preset:  -1,
		outDir:  outDir,
	}
}

// Session exposes the underlying session.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.dispatch(), m.waitFrame())
}

// dispatch runs one interaction cycle off the UI goroutine. A sweep blocks
// this command until it ends, which is what keeps the UI responsive.
func (m Model) dispatch() tea.Cmd {
	sess, ctx := m.sess, m.ctx
	return func() tea.Msg {
		return dispatchMsg(sess.Dispatch(ctx))
	}
}

// reconfigure hands sweep and slider settings to the session. It blocks
// while a sweep is rendering, so it runs off the UI goroutine.
func (m Model) reconfigure(cfg *config.Config) tea.Cmd {
	sess := m.sess
	opts := cfg.SessionOptions()
	return func() tea.Msg {
		sess.Reconfigure(opts)
		return reconfiguredMsg{}
	}
}

// waitFrame blocks until the surface holds a new figure.
func (m Model) waitFrame() tea.Cmd {
	updates := m.sess.Surface().Updates()
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return frameMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		if fig, ok := m.sess.Surface().Current(); ok {
			m.fig, m.hasFig = fig, true
			m.frames++
		}
		return m, m.waitFrame()
	case dispatchMsg:
		outcome := session.Outcome(msg)
		if outcome == session.OutcomeAnimated {
			res := m.sess.LastSweep()
			m.status = fmt.Sprintf("sweep %s after %d frames", res.Reason, res.Frames)
			m.log.Info("sweep ended", "reason", res.Reason.String(), "frames", res.Frames)
		}
		return m, nil
	case configMsg:
		m.theme = GetTheme(msg.cfg.View.Theme)
		m.cols, m.rows = msg.cfg.View.Width, msg.cfg.View.Height
		m.status = "reloading config"
		return m, m.reconfigure(msg.cfg)
	case reconfiguredMsg:
		m.status = "config reloaded"
		m.log.Info("config reloaded")
		if m.sess.Animating() {
			return m, nil
		}
		return m, m.dispatch()
	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
			m.log.Error("export failed", "err", msg.err)
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		m.sess.Close()
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.sess.Sliders().All())-1 {
			m.cursor++
		}
		return m, nil
	case "left", "h":
		m.sess.Nudge(m.cursor, -1)
	case "right", "l":
		m.sess.Nudge(m.cursor, 1)
	case "H":
		m.sess.Nudge(m.cursor, -10)
	case "L":
		m.sess.Nudge(m.cursor, 10)
	case "a":
		m.sess.Animate()
		m.status = ""
	case "s", " ":
		m.sess.Stop()
	case "r":
		m.sess.Reset()
		m.preset = -1
	case "p":
		if len(m.presets) == 0 {
			return m, nil
		}
		m.preset = (m.preset + 1) % len(m.presets)
		p, _ := config.GetPreset(m.presets[m.preset])
		m.sess.SetParams(p)
		m.status = "preset " + m.presets[m.preset]
	case "t":
		m.theme = NextTheme(m.theme)
		return m, nil
	case "e":
		return m, m.exportSVG()
	case "?":
		m.help = true
		return m, nil
	default:
		return m, nil
	}
	return m, m.dispatch()
}

// fit sizes the plot to the terminal, leaving room for the side panel.
func (m *Model) fit(w, h int) {
	cols := w - 50
	rows := h - 4
	if cols >= 10 {
		m.cols = cols
	}
	if rows >= 5 {
		m.rows = rows
	}
}

func (m Model) exportSVG() tea.Cmd {
	fig, ok := m.fig, m.hasFig
	dir := m.outDir
	return func() tea.Msg {
		if !ok {
			return exportedMsg{err: fmt.Errorf("nothing on display")}
		}
		name := fmt.Sprintf("lissajous-%s.svg", time.Now().Format("20060102-150405"))
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, []byte(export.FigureToSVG(fig, exportSize)), 0644)
		return exportedMsg{path: path, err: err}
	}
}

// Run starts the explorer and blocks until it quits. When cfgPath is set the
// file is watched and reloaded while the program runs.
func Run(ctx context.Context, opts Options, cfgPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfgPath != "" {
		go func() {
			err := config.Watch(ctx, cfgPath, m.log, func(cfg *config.Config) {
				p.Send(configMsg{cfg: cfg})
			})
			if err != nil {
				m.log.Warn("config watch stopped", "err", err)
			}
		}()
	}

	_, err := p.Run()
	m.sess.Close()
	return err
}
