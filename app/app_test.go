package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/shytable/config"
	"github.com/miosa/shytable/msg"
	"github.com/miosa/shytable/style"
)

func press(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func update(t *testing.T, m Model, in tea.Msg) Model {
	t.Helper()
	out, _ := m.Update(in)
	mm, ok := out.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", out)
	}
	return mm
}

// newLoaded returns a model sized w×h with n generated rows loaded.
func newLoaded(t *testing.T, n, w, h int) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Rows = n
	m := New(Options{Config: cfg})
	m = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	m = update(t, m, m.loadCmd(m.loadSeq)())
	if m.state != StateReady {
		t.Fatalf("state = %v after load, want ready", m.state)
	}
	return m
}

func TestNew_StartsLoading(t *testing.T) {
	m := New(Options{Config: config.Default()})
	if m.state != StateLoading {
		t.Errorf("state = %v, want loading", m.state)
	}
	if m.list.Len() != 0 {
		t.Errorf("Len = %d before load", m.list.Len())
	}
	if got := m.list.RowHeight(); got != 1 {
		t.Errorf("RowHeight = %d, want 1", got)
	}
}

func TestLoad_FillsWindow(t *testing.T) {
	m := newLoaded(t, 500, 80, 24)

	if m.list.Len() != 500 {
		t.Fatalf("Len = %d, want 500", m.list.Len())
	}
	// Body is 24 - header(2) - status(1) - toast(1) = 20 lines.
	if got := m.viewport.Height(); got != 20 {
		t.Errorf("viewport height = %d, want 20", got)
	}
	w := m.list.Window()
	// 20 visible rows plus the buffer twice below: 20 + 2*20 + 20.
	if w.From != 0 || w.To != 80 {
		t.Errorf("window = %+v, want {0 80}", w)
	}
	// The load toast shrinks the body before any row is built, so nothing
	// outside the final window is materialised.
	if got := m.list.Created(); got != w.To+1 {
		t.Errorf("Created = %d, want %d", got, w.To+1)
	}
}

func TestLoad_ToastDoesNotStrandRows(t *testing.T) {
	m := newLoaded(t, 500, 80, 24)
	m.toasts.Clear()
	m = update(t, m, msg.ToastTick{})
	m = update(t, m, press("r"))
	m = update(t, m, m.loadCmd(m.loadSeq)())

	w := m.list.Window()
	if w.From != 0 || w.To != 80 {
		t.Fatalf("window = %+v, want {0 80}", w)
	}
	if got := m.list.Created(); got != 81 {
		t.Errorf("Created = %d, want 81", got)
	}
}

func TestKeys_IgnoredWhileLoading(t *testing.T) {
	m := New(Options{Config: config.Default()})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, press("j"))
	if m.viewport.ScrollTop() != 0 {
		t.Error("scroll key should be ignored while loading")
	}
}

func TestKeys_Scroll(t *testing.T) {
	m := newLoaded(t, 1000, 80, 24)

	m = update(t, m, press("j"))
	if got := m.viewport.ScrollTop(); got != 1 {
		t.Fatalf("after j ScrollTop = %d, want 1", got)
	}
	m = update(t, m, press("k"))
	m = update(t, m, press("k"))
	if got := m.viewport.ScrollTop(); got != 0 {
		t.Fatalf("k should clamp at 0, got %d", got)
	}

	m = update(t, m, press("d"))
	if got := m.viewport.ScrollTop(); got != m.viewport.Height()/2 {
		t.Errorf("after d ScrollTop = %d, want %d", got, m.viewport.Height()/2)
	}

	m = update(t, m, press("G"))
	if got, want := m.viewport.ScrollTop(), m.viewport.MaxScroll(); got != want {
		t.Errorf("after G ScrollTop = %d, want %d", got, want)
	}
	if w := m.list.Window(); w.To != 999 {
		t.Errorf("window at bottom = %+v, want To 999", w)
	}

	m = update(t, m, press("g"))
	if m.viewport.ScrollTop() != 0 || m.list.Window().From != 0 {
		t.Errorf("g should return to the first row, window %+v", m.list.Window())
	}
}

func TestMouseWheel_ScrollsThreeLines(t *testing.T) {
	m := newLoaded(t, 1000, 80, 24)
	m = update(t, m, tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if got := m.viewport.ScrollTop(); got != wheelLines {
		t.Fatalf("ScrollTop = %d, want %d", got, wheelLines)
	}
	m = update(t, m, tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if got := m.viewport.ScrollTop(); got != 0 {
		t.Errorf("ScrollTop = %d, want 0", got)
	}
}

func TestClear_EmptiesTable(t *testing.T) {
	m := newLoaded(t, 1000, 80, 24)
	m = update(t, m, press("G"))
	m = update(t, m, press("c"))

	if m.list.Len() != 0 || m.list.Created() != 0 {
		t.Errorf("after clear Len=%d Created=%d", m.list.Len(), m.list.Created())
	}
	if m.viewport.ScrollTop() != 0 {
		t.Errorf("clear should rewind, ScrollTop = %d", m.viewport.ScrollTop())
	}
	if !strings.Contains(ansi.Strip(m.renderView()), "no rows") {
		t.Error("cleared table should show the empty hint")
	}
}

func TestReload_DropsStaleResults(t *testing.T) {
	m := newLoaded(t, 10, 80, 24)

	m = update(t, m, press("r"))
	stale := m.loadCmd(m.loadSeq)()
	m = update(t, m, press("r"))
	if m.state != StateLoading {
		t.Fatalf("state = %v during reload, want loading", m.state)
	}

	m = update(t, m, stale)
	if !m.loading {
		t.Error("stale result must not finish the current load")
	}

	m = update(t, m, m.loadCmd(m.loadSeq)())
	if m.loading || m.state != StateReady {
		t.Errorf("current result should finish loading, state %v", m.state)
	}
}

func TestLoadFailed_ShowsError(t *testing.T) {
	cfg := config.Default()
	m := New(Options{Config: cfg, Input: filepath.Join(t.TempDir(), "missing.txt")})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	res := m.loadCmd(m.loadSeq)()
	if _, ok := res.(msg.LoadFailed); !ok {
		t.Fatalf("load of a missing file returned %T", res)
	}
	m = update(t, m, res)
	if m.state != StateReady || !m.toasts.HasToasts() {
		t.Errorf("state = %v, toasts = %v", m.state, m.toasts.HasToasts())
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("ada\ngrace\n\nlinus\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := New(Options{Config: config.Default(), Input: path})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, m.loadCmd(m.loadSeq)())

	if m.list.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.list.Len())
	}
	if !strings.Contains(ansi.Strip(m.renderView()), "grace") {
		t.Error("loaded names should be drawn")
	}
}

func TestHelp_Toggle(t *testing.T) {
	m := newLoaded(t, 10, 80, 24)
	m = update(t, m, press("?"))
	if m.state != StateHelp {
		t.Fatalf("state = %v, want help", m.state)
	}
	m = update(t, m, press("j"))
	if m.viewport.ScrollTop() != 0 {
		t.Error("keys must not scroll the table behind the help overlay")
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.state != StateReady {
		t.Errorf("state = %v after esc, want ready", m.state)
	}
}

func TestQuit(t *testing.T) {
	m := newLoaded(t, 10, 80, 24)
	_, cmd := m.Update(press("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTheme_CycleAndSave(t *testing.T) {
	defer style.SetTheme(style.CurrentThemeName)

	path := filepath.Join(t.TempDir(), config.FileName)
	m := New(Options{Config: config.Default(), ConfigPath: path})
	next := style.NextTheme()

	m = update(t, m, press("t"))
	if style.CurrentThemeName != next || m.cfg.Theme != next {
		t.Fatalf("theme = %q / %q, want %q", style.CurrentThemeName, m.cfg.Theme, next)
	}

	saved, ok := m.saveConfigCmd()().(msg.ThemeSaved)
	if !ok || saved.Err != nil {
		t.Fatalf("save: %+v", saved)
	}
	got, err := config.Load(config.LoadInput{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != next {
		t.Errorf("persisted theme = %q, want %q", got.Theme, next)
	}
}

func TestTheme_SaveLeavesOverridesOutOfFile(t *testing.T) {
	defer style.SetTheme(style.CurrentThemeName)

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(`{"buffer_rows": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, buffer := 7, 0
	cfg, err := config.Load(config.LoadInput{
		ConfigPath: path,
		Overrides:  config.Overrides{Rows: &rows, BufferRows: &buffer},
	})
	if err != nil {
		t.Fatal(err)
	}

	m := New(Options{Config: cfg, ConfigPath: path})
	m = update(t, m, press("t"))
	if saved := m.saveConfigCmd()().(msg.ThemeSaved); saved.Err != nil {
		t.Fatalf("save: %v", saved.Err)
	}

	got, err := config.Load(config.LoadInput{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != m.cfg.Theme {
		t.Errorf("theme = %q, want %q", got.Theme, m.cfg.Theme)
	}
	if got.Rows != config.Default().Rows || got.BufferRows != 5 {
		t.Errorf("rows = %d, buffer_rows = %d; want %d, 5", got.Rows, got.BufferRows, config.Default().Rows)
	}
}

func TestSaveConfigCmd_NoPath(t *testing.T) {
	m := New(Options{Config: config.Default()})
	if m.saveConfigCmd() != nil {
		t.Error("no config path should mean no save command")
	}
}

func TestToastTick_StopsWhenEmpty(t *testing.T) {
	m := newLoaded(t, 10, 80, 24)
	if !m.toastTicking {
		t.Fatal("load toast should start the ticker")
	}
	m.toasts.Clear()
	m = update(t, m, msg.ToastTick{})
	if m.toastTicking {
		t.Error("ticker should stop once toasts are gone")
	}
	if m.layout.ToastHeight != 0 {
		t.Errorf("ToastHeight = %d, want 0", m.layout.ToastHeight)
	}
}

func TestView_FrameFillsTerminal(t *testing.T) {
	m := newLoaded(t, 1000, 80, 24)
	v := m.View()
	if !v.AltScreen {
		t.Error("AltScreen should be set")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Error("mouse mode should be cell motion")
	}
	frame := ansi.Strip(m.renderView())
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	for _, want := range []string{"Test 0", "Test 19", "rows 1000"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if strings.Contains(frame, "Test 20 ") {
		t.Error("row below the viewport should not be drawn")
	}
}

func TestTopRow_FollowsScroll(t *testing.T) {
	m := newLoaded(t, 100, 80, 24)
	for range 5 {
		m = update(t, m, press("j"))
	}
	i, ok := m.topRow()
	if !ok || i != 5 {
		t.Errorf("topRow = %d, %v; want 5, true", i, ok)
	}

	m = update(t, m, press("c"))
	if m.copyTopRow() != nil {
		t.Error("nothing to copy from an empty table")
	}
	m.toasts.Clear()
	m = update(t, m, press("y"))
	if !strings.Contains(ansi.Strip(m.toasts.View(80)), "⚠ nothing to copy") {
		t.Errorf("empty copy should warn:\n%s", ansi.Strip(m.toasts.View(80)))
	}
}

func TestCopied_Toasts(t *testing.T) {
	m := newLoaded(t, 10, 80, 24)
	m.toasts.Clear()
	m = update(t, m, msg.Copied{Text: "Test 3"})
	if !strings.Contains(ansi.Strip(m.toasts.View(80)), "Test 3") {
		t.Errorf("copy toast missing:\n%s", m.toasts.View(80))
	}
}

func TestSpinner_RunsOnlyWhileLoading(t *testing.T) {
	cfg := config.Default()
	cfg.Rows = 10
	m := New(Options{Config: cfg})
	if !m.spinner.IsSpinning() {
		t.Fatal("spinner should run during the first load")
	}
	m = update(t, m, m.loadCmd(m.loadSeq)())
	if m.spinner.IsSpinning() {
		t.Error("spinner should stop once rows arrive")
	}
	m = update(t, m, press("r"))
	if !m.spinner.IsSpinning() {
		t.Error("reload should restart the spinner")
	}
}
