package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/shytable/config"
	"github.com/miosa/shytable/dataset"
	"github.com/miosa/shytable/logger"
	"github.com/miosa/shytable/msg"
	"github.com/miosa/shytable/style"
	"github.com/miosa/shytable/ui/anim"
	"github.com/miosa/shytable/ui/clipboard"
	"github.com/miosa/shytable/ui/common"
	"github.com/miosa/shytable/ui/header"
	"github.com/miosa/shytable/ui/help"
	"github.com/miosa/shytable/ui/host"
	"github.com/miosa/shytable/ui/status"
	"github.com/miosa/shytable/ui/toast"
	"github.com/miosa/shytable/ui/vlist"
)

const (
	wheelLines    = 3
	toastInterval = 500 * time.Millisecond
)

// Source labels shown in the header.
const (
	sourceGenerated = "generated"
	sourceStdin     = "stdin"
)

// -- Model --------------------------------------------------------------------

// Options configures New.
type Options struct {
	Config config.Config
	// ConfigPath is where theme changes are saved. Empty disables saving.
	ConfigPath string
	// Input is a file to read rows from, "-" for stdin, or empty to
	// generate Config.Rows demo rows.
	Input   string
	Version string
	Logger  *slog.Logger
}

// Model is the root Bubble Tea model. It owns the terminal document the
// virtual list draws into and every pane around it.
type Model struct {
	header  header.Model
	status  status.Model
	toasts  toast.Model
	help    *help.Model
	spinner anim.Model

	viewport *host.Viewport
	list     *vlist.VirtualList[dataset.Record]
	// rows is the loaded dataset, kept for copying the row under the cursor.
	rows []dataset.Record

	state  State
	layout Layout
	keys   KeyMap

	cfg        config.Config
	configPath string
	input      string
	log        *slog.Logger

	width        int
	height       int
	loading      bool
	loadSeq      int
	toastTicking bool
}

// New constructs the root Model. It applies the configured theme and
// prepares an empty table; Init starts the first load.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}
	cfg := opts.Config
	if !style.SetTheme(cfg.Theme) {
		cfg.Theme = style.CurrentThemeName
	}

	vp := host.NewViewport(0, 0)
	list := vlist.New(vp, dataset.RowFactory,
		vlist.WithRowHeight(cfg.RowHeight),
		vlist.WithBufferRows(cfg.BufferRows),
		vlist.WithLogger(log),
	)

	keys := DefaultKeyMap()
	h := help.New(keys.HelpSections()...)
	sp := anim.New("loading rows")
	sp.Start()

	m := Model{
		header:     header.New(opts.Version),
		status:     status.New(),
		toasts:     toast.New(),
		help:       &h,
		spinner:    sp,
		viewport:   vp,
		list:       list,
		state:      StateLoading,
		keys:       keys,
		cfg:        cfg,
		configPath: opts.ConfigPath,
		input:      opts.Input,
		log:        log,
		loading:    true,
		loadSeq:    1,
	}
	m.header.SetSource(sourceLabel(opts.Input))
	m.status.SetTheme(style.CurrentThemeName)
	m.status.SetHint(common.KeyHelp(m.keys.Help, m.keys.Quit))
	m.syncStatus()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(m.loadSeq),
		m.spinner.Tick(),
		func() tea.Msg { return tea.RequestWindowSize() },
	)
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.header.SetWidth(v.Width)
		m.status.SetWidth(v.Width)
		m.help.SetSize(v.Width, v.Height)
		m.recomputeLayout()
		return m, nil

	case tea.MouseWheelMsg:
		if m.state != StateReady {
			return m, nil
		}
		switch v.Button {
		case tea.MouseWheelUp:
			m.scrollBy(-wheelLines)
		case tea.MouseWheelDown:
			m.scrollBy(wheelLines)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(v)

	// -- Data --

	case msg.DataLoaded:
		return m.handleDataLoaded(v)

	case msg.LoadFailed:
		return m.handleLoadFailed(v)

	case msg.Copied:
		if v.Err != nil {
			m.log.Warn("copy row", "err", v.Err)
			m.toasts.Add(fmt.Sprintf("copy failed: %v", v.Err), toast.Error)
		} else {
			m.toasts.Infof("copied %q", v.Text)
		}
		return m, m.startToastTick()

	case anim.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(v)
		return m, cmd

	// -- Settings --

	case msg.ThemeSaved:
		if v.Err != nil {
			m.log.Error("save theme", "path", v.Path, "err", v.Err)
			m.toasts.Add(fmt.Sprintf("could not save theme: %v", v.Err), toast.Warning)
			return m, m.startToastTick()
		}
		m.log.Debug("theme saved", "theme", v.Theme, "path", v.Path)
		return m, nil

	// -- Tick --

	case msg.ToastTick:
		m.toasts.Tick()
		m.recomputeLayout()
		if !m.toasts.HasToasts() {
			m.toastTicking = false
			return m, nil
		}
		return m, toastTickCmd()
	}

	return m, nil
}

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.state == StateHelp {
		return m.handleHelpKey(k)
	}

	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Theme):
		return m, m.cycleTheme()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Reload):
		return m, m.reload()
	}

	if m.state == StateReady {
		return m.handleTableKey(k)
	}
	return m, nil
}

func (m Model) handleHelpKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Close):
		m.state = StateReady
		if m.loading {
			m.state = StateLoading
		}
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTableKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	page := max(1, m.viewport.Height())
	line := m.list.RowHeight()

	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollDown):
		m.scrollBy(line)
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollUp):
		m.scrollBy(-line)
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		m.scrollBy(page)
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		m.scrollBy(-page)
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		m.scrollBy(max(1, page/2))
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		m.scrollBy(-max(1, page/2))
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollTop):
		m.scrollTo(0)
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollBottom):
		m.scrollTo(m.viewport.MaxScroll())

	case key.Matches[tea.KeyPressMsg](k, m.keys.Copy):
		if cmd := m.copyTopRow(); cmd != nil {
			return m, cmd
		}
		m.toasts.Add("nothing to copy", toast.Warning)
		return m, m.startToastTick()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Clear):
		m.list.Clear()
		m.rows = nil
		m.header.SetRows(0)
		m.toasts.Add("table cleared", toast.Info)
		m.syncStatus()
		return m, m.startToastTick()
	}
	return m, nil
}

// -- Scrolling ----------------------------------------------------------------

// scrollBy moves the viewport and lets the list reconcile the rows at the new
// offset. Nothing happens when the table is empty or the clamped offset does
// not change.
func (m *Model) scrollBy(delta int) {
	if m.list.Len() == 0 {
		return
	}
	if m.viewport.ScrollBy(delta) {
		m.afterScroll()
	}
}

func (m *Model) scrollTo(y int) {
	if m.list.Len() == 0 {
		return
	}
	if m.viewport.ScrollTo(y) {
		m.afterScroll()
	}
}

func (m *Model) afterScroll() {
	m.list.HandleScroll(m.viewport.ScrollTop())
	m.syncStatus()
}

// -- Loading ------------------------------------------------------------------

func (m *Model) reload() tea.Cmd {
	m.loading = true
	m.state = StateLoading
	m.loadSeq++
	m.syncStatus()
	m.spinner.Start()
	return tea.Batch(m.loadCmd(m.loadSeq), m.spinner.Tick())
}

// loadCmd reads or generates the dataset off the event loop. Results carry a
// sequence number so a slow, superseded load cannot overwrite a newer one.
func (m Model) loadCmd(seq int) tea.Cmd {
	input, n := m.input, m.cfg.Rows
	return func() tea.Msg {
		start := time.Now()
		src := sourceLabel(input)
		if input == "" {
			return msg.DataLoaded{Seq: seq, Rows: dataset.Generate(n), Source: src, Elapsed: time.Since(start)}
		}
		rows, err := dataset.Open(input)
		if err != nil {
			return msg.LoadFailed{Seq: seq, Source: src, Err: err}
		}
		return msg.DataLoaded{Seq: seq, Rows: rows, Source: src, Elapsed: time.Since(start)}
	}
}

func (m Model) handleDataLoaded(v msg.DataLoaded) (Model, tea.Cmd) {
	if v.Seq != m.loadSeq {
		m.log.Debug("discarding stale load", "seq", v.Seq, "want", m.loadSeq)
		return m, nil
	}
	m.finishLoading()

	// The toast takes a body line, so the viewport settles before any row
	// is built.
	m.toasts.Infof("loaded %d rows from %s", len(v.Rows), v.Source)
	tick := m.startToastTick()

	m.rows = v.Rows
	m.list.SetData(v.Rows)
	m.header.SetSource(v.Source)
	m.header.SetRows(len(v.Rows))
	m.log.Info("dataset loaded",
		"source", v.Source,
		"rows", len(v.Rows),
		"elapsed", v.Elapsed,
	)
	m.syncStatus()
	return m, tick
}

func (m Model) handleLoadFailed(v msg.LoadFailed) (Model, tea.Cmd) {
	if v.Seq != m.loadSeq {
		return m, nil
	}
	m.finishLoading()

	m.log.Error("load dataset", "source", v.Source, "err", v.Err)
	m.toasts.Add(fmt.Sprintf("load failed: %v", v.Err), toast.Error)
	m.syncStatus()
	return m, m.startToastTick()
}

func (m *Model) finishLoading() {
	m.loading = false
	m.spinner.Stop()
	if m.state == StateLoading {
		m.state = StateReady
	}
}

func sourceLabel(input string) string {
	switch input {
	case "":
		return sourceGenerated
	case "-":
		return sourceStdin
	}
	return input
}

// -- Clipboard ----------------------------------------------------------------

// topRow returns the index of the row at the top edge of the viewport.
func (m Model) topRow() (int, bool) {
	i := m.viewport.ScrollTop() / m.list.RowHeight()
	return i, i < len(m.rows)
}

func (m Model) copyTopRow() tea.Cmd {
	i, ok := m.topRow()
	if !ok {
		return nil
	}
	text := m.rows[i].Name
	return func() tea.Msg {
		return msg.Copied{Text: text, Err: clipboard.Copy(text)}
	}
}

// -- Theme --------------------------------------------------------------------

// cycleTheme switches to the next theme and persists it when a config path
// is known.
func (m *Model) cycleTheme() tea.Cmd {
	name := style.NextTheme()
	style.SetTheme(name)
	m.cfg.Theme = name
	m.status.SetTheme(name)
	m.toasts.Infof("theme %s", name)
	m.log.Debug("theme changed", "theme", name)

	return tea.Batch(m.saveConfigCmd(), m.startToastTick())
}

func (m Model) saveConfigCmd() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	theme, path := m.cfg.Theme, m.configPath
	return func() tea.Msg {
		return msg.ThemeSaved{Theme: theme, Path: path, Err: config.SaveTheme(path, theme)}
	}
}

// -- Toasts -------------------------------------------------------------------

// startToastTick makes room for new toasts and starts the expiry timer if it
// is not already running.
func (m *Model) startToastTick() tea.Cmd {
	m.recomputeLayout()
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return toastTickCmd()
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastInterval, func(time.Time) tea.Msg { return msg.ToastTick{} })
}

// -- Layout -------------------------------------------------------------------

// recomputeLayout resizes the viewport to the body area. The list is only
// re-measured when the body actually changed size.
func (m *Model) recomputeLayout() {
	m.layout = ComputeLayout(m.width, m.height, countLines(m.toasts.View(m.width)))
	if m.layout.BodyWidth == m.viewport.Width() && m.layout.BodyHeight == m.viewport.Height() {
		return
	}
	m.viewport.Resize(m.layout.BodyWidth, m.layout.BodyHeight)
	m.list.HandleResize()
	m.syncStatus()
}

func (m *Model) syncStatus() {
	w := m.list.Window()
	m.status.SetLoading(m.loading)
	m.status.SetRows(m.list.Len())
	m.status.SetWindow(w.From, w.To)
	m.status.SetCreated(m.list.Created())
	m.status.SetScroll(m.viewport.ScrollTop(), m.viewport.MaxScroll())
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// -- View ---------------------------------------------------------------------

// View returns the tea.View for the current frame.
// AltScreen and MouseMode are set on every frame.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.state == StateHelp {
		return m.help.View()
	}

	sections := []string{m.header.HeaderView(), m.renderBody()}
	if m.layout.ToastHeight > 0 && m.toasts.HasToasts() {
		sections = append(sections, lastLines(m.toasts.View(m.width), m.layout.ToastHeight))
	}
	sections = append(sections, m.status.View())
	return strings.Join(sections, "\n")
}

// renderBody draws the table with its scrollbar column.
func (m Model) renderBody() string {
	w, h := m.layout.BodyWidth, m.layout.BodyHeight
	if m.list.Len() == 0 {
		hint := style.Hint.Render("no rows · " + m.keys.Reload.Help().Key + " to reload")
		if m.loading {
			hint = m.spinner.View()
		}
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, hint)
	}

	table := m.viewport.Render(style.RowStyle)
	bar := common.Scrollbar(h, m.viewport.ContentHeight(), m.viewport.ScrollTop())
	if bar == "" {
		bar = strings.TrimSuffix(strings.Repeat(" \n", h), "\n")
	}
	if w == 0 {
		return bar
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, table, bar)
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
