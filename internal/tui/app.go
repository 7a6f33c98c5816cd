package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"tabnado/internal/cluster"
	"tabnado/internal/export"
	"tabnado/internal/tabs"
	"tabnado/internal/viz"
	"tabnado/internal/vortex"
)

const frameInterval = 16 * time.Millisecond

type uiState int

const (
	stateList uiState = iota
	stateStorm
	stateGrid
)

// Options configure the interactive session.
type Options struct {
	Items []tabs.Item
	Store *vortex.Store
	// Result is a pre-computed clustering result; when nil and Endpoint is
	// set, the classification service is called after launch. When both are
	// empty the offline by-domain classifier runs.
	Result   *cluster.Result
	Endpoint string
	// Light forces the light theme; by default the terminal background
	// decides.
	Light bool
	Cap   int
	Seed  int64
	// Now overrides the engine clock, for tests.
	Now func() time.Time
}

type model struct {
	opts  Options
	state uiState
	keys  keyMap

	list   list.Model
	engine *vortex.Engine
	canvas *viz.Canvas
	comp   *viz.Compositor

	clusters   *cluster.Result
	clusterErr error

	themeIdx int
	styles   viz.Styles

	width, height int
	lastFrame     time.Time
	fps           float64
	exported      string
}

type tickMsg time.Time

type clustersMsg struct {
	res *cluster.Result
	err error
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Run starts the interactive application and blocks until it exits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(opts Options) model {
	themeIdx := 0
	if opts.Light || !termenv.HasDarkBackground() {
		themeIdx = 1
	}
	theme := viz.Themes[themeIdx]

	items := make([]list.Item, len(opts.Items))
	for i, it := range opts.Items {
		items[i] = tabItem{tab: it}
	}
	l := list.New(items, newCompactDelegate(theme.Accent, theme.Muted), 80, 20)
	l.Title = "tabs"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return model{
		opts:     opts,
		state:    stateList,
		keys:     defaultKeys(),
		list:     l,
		comp:     &viz.Compositor{},
		clusters: opts.Result,
		themeIdx: themeIdx,
		styles:   viz.NewStyles(theme),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) theme() viz.Theme { return viz.Themes[m.themeIdx] }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-4)
		if m.canvas != nil {
			m.canvas = viz.NewCanvas(msg.Width, max(1, msg.Height-3))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.state == stateStorm && m.engine != nil {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.engine.Scroll(1)
			case tea.MouseButtonWheelDown:
				m.engine.Scroll(-1)
			}
		}
		return m, nil

	case clustersMsg:
		m.clusters, m.clusterErr = msg.res, msg.err
		if m.engine != nil && msg.err == nil {
			m.engine.SetResult(msg.res)
		}
		return m, nil

	case tickMsg:
		if m.state != stateStorm || m.engine == nil {
			// Dismissed or replaced: let the pending callback die instead of
			// stepping a detached pool.
			return m, nil
		}
		now := time.Now()
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastFrame = now

		m.engine.Step()
		if m.engine.Settled() {
			m.state = stateGrid
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.opts.Store != nil {
			m.opts.Store.Flush()
		}
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Theme) {
		m.themeIdx = (m.themeIdx + 1) % len(viz.Themes)
		m.styles = viz.NewStyles(m.theme())
		return m, nil
	}

	switch m.state {
	case stateList:
		if key.Matches(msg, m.keys.Launch) {
			return m.launch()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case stateStorm:
		return m.stormKey(msg)

	case stateGrid:
		if key.Matches(msg, m.keys.Export) {
			path := "tabnado-bookmarks.html"
			if err := os.WriteFile(path, []byte(export.Bookmarks(m.clusters, m.opts.Items)), 0644); err == nil {
				m.exported = path
			}
		}
		return m, nil
	}
	return m, nil
}

// launch builds the engine and begins the visualization session.
func (m model) launch() (tea.Model, tea.Cmd) {
	m.engine = vortex.New(toEngineItems(m.opts.Items), m.opts.Store, vortex.Options{
		Cap:  m.opts.Cap,
		Seed: m.opts.Seed,
		Now:  m.opts.Now,
	})
	m.canvas = viz.NewCanvas(m.width, max(1, m.height-3))
	m.state = stateStorm
	m.lastFrame = time.Time{}

	cmds := []tea.Cmd{tick()}
	switch {
	case m.clusters != nil:
		m.engine.SetResult(m.clusters)
	case m.opts.Endpoint != "":
		cmds = append(cmds, fetchClusters(m.opts.Endpoint, m.opts.Items))
	default:
		res := cluster.ByDomain(m.opts.Items)
		m.clusters = res
		m.engine.SetResult(res)
	}
	return m, tea.Batch(cmds...)
}

func (m model) stormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine == nil {
		return m, nil
	}
	live := m.engine.Store().Live()
	commit := false
	switch {
	case key.Matches(msg, m.keys.SpinUp):
		m.engine.Scroll(1)
	case key.Matches(msg, m.keys.SpinDown):
		m.engine.Scroll(-1)
	default:
		switch msg.String() {
		case "1":
			live.BaseSpeed = clampF(live.BaseSpeed-0.005, 0.005, 0.1)
			commit = true
		case "2":
			live.BaseSpeed = clampF(live.BaseSpeed+0.005, 0.005, 0.1)
			commit = true
		case "3":
			live.RadiusScale = clampF(live.RadiusScale-0.1, 0.2, 3)
			commit = true
		case "4":
			live.RadiusScale = clampF(live.RadiusScale+0.1, 0.2, 3)
			commit = true
		case "5":
			live.Wobble = clampF(live.Wobble-5, 0, 120)
			commit = true
		case "6":
			live.Wobble = clampF(live.Wobble+5, 0, 120)
			commit = true
		}
	}
	if commit {
		m.engine.Store().Commit()
	}
	return m, nil
}

func fetchClusters(endpoint string, items []tabs.Item) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		res, err := cluster.NewClient(endpoint).Classify(ctx, items)
		return clustersMsg{res: res, err: err}
	}
}

func toEngineItems(items []tabs.Item) []vortex.Item {
	out := make([]vortex.Item, len(items))
	for i, it := range items {
		out[i] = vortex.Item{ID: it.ID, Title: it.Title, URL: it.URL, Domain: it.Domain}
	}
	return out
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
