package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/config"
	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/history"
	"github.com/sadopc/gopanel/internal/ui/msgs"
)

// testConfig returns a config whose panel starts at 40 cols so a drag has
// room in both directions.
func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Watch = false
	cfg.Panel.InitialWidth = 40
	cfg.Panel.DefaultToMaxWidth = false
	return cfg
}

// testApp creates a minimal App for testing without side effects
// (no watcher, no zone manager).
func testApp() App {
	return New(testConfig(), Options{})
}

// testAppResized returns an App laid out in a 100x30 terminal. The
// container then sits at x=2, y=1 and is 96x28; the handle of the 40-col
// panel covers x=40..41.
func testAppResized() App {
	return resized(testApp())
}

func resized(a App) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

// keyMsg creates a tea.KeyMsg for a single rune key.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func mouseMsg(action tea.MouseAction, x, y int) tea.MouseMsg {
	msg := tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
	if action == tea.MouseActionRelease {
		msg.Button = tea.MouseButtonNone
	}
	return msg
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// press sends a key and feeds the resulting messages back into the App.
func press(a App, k tea.KeyMsg) App {
	m, cmd := a.Update(k)
	a = m.(App)
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		m, _ = a.Update(msg)
		a = m.(App)
	}
	return a
}

func hasMsg[T any](got []tea.Msg) (T, bool) {
	for _, m := range got {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// --- Tests ---

func TestNew_DefaultState(t *testing.T) {
	a := testApp()

	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
	if a.ready {
		t.Error("expected ready=false before WindowSizeMsg")
	}
	if a.panel.Mounted() {
		t.Error("panel should not mount before the first layout")
	}
	if a.View() != "Loading..." {
		t.Errorf("expected loading view, got %q", a.View())
	}
}

func TestWindowSizeMsg_SetsReadyAndLayout(t *testing.T) {
	a := testApp()

	m, cmd := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cmd != nil {
		t.Error("expected nil cmd from WindowSizeMsg")
	}
	a = m.(App)

	if !a.ready {
		t.Error("expected ready=true after WindowSizeMsg")
	}
	if !a.panel.Mounted() {
		t.Fatal("expected the panel to mount")
	}
	want := element.Rect{X: 2, Y: 1, Width: 96, Height: 28}
	if a.layout.Container != want {
		t.Errorf("container = %+v, want %+v", a.layout.Container, want)
	}
	if a.panel.Width() != 40 {
		t.Errorf("expected width 40, got %d", a.panel.Width())
	}
	if b := a.panel.Bounds(); b.Min != 20 || b.Max != 96 {
		t.Errorf("bounds = %+v, want {20 96}", b)
	}
}

func TestWindowSizeMsg_DefaultToMaxWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Panel.DefaultToMaxWidth = true
	a := resized(New(cfg, Options{}))

	if a.panel.Width() != 96 {
		t.Errorf("expected the panel to open at max width 96, got %d", a.panel.Width())
	}
}

func TestView_FillsTerminal(t *testing.T) {
	a := testAppResized()
	view := a.View()

	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("expected 30 lines, got %d", lines)
	}
	if !strings.Contains(view, "gopanel") {
		t.Error("expected the header to name the app")
	}
	if !strings.Contains(view, "40 cols") {
		t.Error("expected the status bar to show the panel width")
	}
}

func TestKeys_NudgeWidth(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want int
	}{
		{"grow", keyMsg('>'), 41},
		{"shrink", keyMsg('<'), 39},
		{"grow more", keyMsg('L'), 50},
		{"shrink more", keyMsg('H'), 30},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := press(testAppResized(), tt.key)
			if a.panel.Width() != tt.want {
				t.Errorf("expected width %d, got %d", tt.want, a.panel.Width())
			}
		})
	}
}

func TestKeys_WidthPresets(t *testing.T) {
	a := testAppResized()

	a = press(a, keyMsg('M'))
	if a.panel.Width() != 96 {
		t.Errorf("max: expected 96, got %d", a.panel.Width())
	}
	a = press(a, keyMsg('m'))
	if a.panel.Width() != 20 {
		t.Errorf("min: expected 20, got %d", a.panel.Width())
	}
	a = press(a, keyMsg('0'))
	if a.panel.Width() != 40 {
		t.Errorf("reset: expected 40, got %d", a.panel.Width())
	}
}

func TestNudge_ClampsToBounds(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.NudgeWidthMsg{Delta: 500})
	a = m.(App)
	if a.panel.Width() != 96 {
		t.Errorf("expected clamp to 96, got %d", a.panel.Width())
	}
	m, _ = a.Update(msgs.NudgeWidthMsg{Delta: -500})
	a = m.(App)
	if a.panel.Width() != 20 {
		t.Errorf("expected clamp to 20, got %d", a.panel.Width())
	}
}

func TestMouse_DragResizesPanel(t *testing.T) {
	a := testAppResized()

	m, cmd := a.Update(mouseMsg(tea.MouseActionPress, 40, 5))
	a = m.(App)
	if !a.panel.IsDragging() {
		t.Fatal("expected a drag to start on the handle")
	}
	for _, msg := range collect(cmd) {
		m, _ = a.Update(msg)
		a = m.(App)
	}
	if a.mode != msgs.ModeDragging {
		t.Errorf("expected ModeDragging, got %v", a.mode)
	}

	m, _ = a.Update(mouseMsg(tea.MouseActionMotion, 60, 5))
	a = m.(App)
	if a.panel.Width() != 60 {
		t.Errorf("expected width 60 mid-drag, got %d", a.panel.Width())
	}

	m, cmd = a.Update(mouseMsg(tea.MouseActionRelease, 60, 5))
	a = m.(App)
	got := collect(cmd)
	resizedMsg, ok := hasMsg[msgs.PanelResizedMsg](got)
	if !ok {
		t.Fatal("expected PanelResizedMsg on release")
	}
	if resizedMsg.From != 40 || resizedMsg.To != 60 {
		t.Errorf("resized = %+v, want {40 60}", resizedMsg)
	}
	for _, msg := range got {
		m, _ = a.Update(msg)
		a = m.(App)
	}
	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal after the drag, got %v", a.mode)
	}
}

func TestMouse_IgnoredUnderOverlay(t *testing.T) {
	a := press(testAppResized(), tea.KeyMsg{Type: tea.KeyCtrlK})
	if !a.commandPalette.Visible {
		t.Fatal("expected the command palette to open")
	}

	m, cmd := a.Update(mouseMsg(tea.MouseActionPress, 40, 5))
	a = m.(App)
	if cmd != nil || a.panel.IsDragging() {
		t.Error("mouse input should not reach the panel under the palette")
	}
}

func TestFullscreen_ToggleRelayouts(t *testing.T) {
	a := testAppResized()

	a = press(a, keyMsg('f'))
	if !a.panel.Fullscreen() {
		t.Fatal("expected fullscreen")
	}
	want := element.Rect{Width: 100, Height: 30}
	if a.layout.Container != want {
		t.Errorf("fullscreen container = %+v, want %+v", a.layout.Container, want)
	}
	if !a.toast.Visible {
		t.Error("expected a toast")
	}
	if lines := strings.Count(a.View(), "\n") + 1; lines != 30 {
		t.Errorf("expected 30 lines in fullscreen, got %d", lines)
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.panel.Fullscreen() {
		t.Error("esc should leave fullscreen")
	}
	if a.layout.Container.X != 2 {
		t.Errorf("expected the normal layout back, got %+v", a.layout.Container)
	}
}

func TestFullscreen_EmitsChange(t *testing.T) {
	a := testAppResized()
	_, cmd := a.Update(msgs.ToggleFullscreenMsg{})

	changed, ok := hasMsg[msgs.FullscreenChangedMsg](collect(cmd))
	if !ok || !changed.Active {
		t.Errorf("expected FullscreenChangedMsg{Active: true}, got %v", changed)
	}
}

func TestContentLoaded(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.ContentLoadedMsg{Path: "notes.txt", Data: []byte("hello world")})
	a = m.(App)

	if !a.panel.Content().HasContent() {
		t.Fatal("expected content")
	}
	if a.panel.Content().Path() != "notes.txt" {
		t.Errorf("expected path notes.txt, got %q", a.panel.Content().Path())
	}
	if !strings.Contains(a.View(), "hello world") {
		t.Error("expected the content in the view")
	}
}

func TestContentLoaded_Error(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.ContentLoadedMsg{Path: "missing.txt", Err: os.ErrNotExist})
	a = m.(App)

	if a.panel.Content().HasContent() {
		t.Error("expected no content")
	}
	if !a.toast.Visible {
		t.Error("expected an error toast")
	}
}

func TestInit_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	a := New(testConfig(), Options{File: path})

	loaded, ok := hasMsg[msgs.ContentLoadedMsg](collect(a.Init()))
	if !ok {
		t.Fatal("expected Init to load the file")
	}
	if loaded.Err != nil || string(loaded.Data) != `{"a":1}` {
		t.Errorf("unexpected load result: %+v", loaded)
	}
}

func TestFileChanged_ReloadsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, []byte("panel:\n  min_width: 30\n  initial_width: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := New(testConfig(), Options{File: file, ConfigPath: cfgPath})

	_, cmd := a.Update(msgs.FileChangedMsg{Paths: []string{file, cfgPath, filepath.Join(dir, "other")}})
	got := collect(cmd)

	if _, ok := hasMsg[msgs.ContentLoadedMsg](got); !ok {
		t.Error("expected the content file to reload")
	}
	reloaded, ok := hasMsg[msgs.ConfigReloadedMsg](got)
	if !ok {
		t.Fatal("expected the config file to reload")
	}
	if reloaded.Err != nil || reloaded.Config.Panel.MinWidth != 30 {
		t.Errorf("unexpected config reload: %+v", reloaded)
	}
}

func TestConfigReloaded_AppliesPanelOptions(t *testing.T) {
	a := testAppResized()
	cfg := testConfig()
	cfg.Panel.MinWidth = 30
	cfg.Panel.MaxWidth = 35
	cfg.Theme = "nord"

	m, _ := a.Update(msgs.ConfigReloadedMsg{Config: cfg})
	a = m.(App)

	if b := a.panel.Bounds(); b.Min != 30 || b.Max != 35 {
		t.Errorf("bounds = %+v, want {30 35}", b)
	}
	if a.panel.Width() != 35 {
		t.Errorf("expected the width clamped to 35, got %d", a.panel.Width())
	}
	if a.theme.Name != "Nord" {
		t.Errorf("expected the Nord theme, got %q", a.theme.Name)
	}
}

func TestConfigReloaded_ErrorKeepsConfig(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.ConfigReloadedMsg{Err: errors.New("bad yaml")})
	a = m.(App)

	if a.cfg.Panel.InitialWidth != 40 {
		t.Error("expected the previous config to stay")
	}
	if !a.toast.Visible {
		t.Error("expected an error toast")
	}
}

func TestCopyContent(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	a := testAppResized()
	m, _ := a.Update(msgs.CopyContentMsg{})
	a = m.(App)
	if copied != "" || a.toast.Text() != "Nothing to copy" {
		t.Errorf("expected nothing copied, got %q / %q", copied, a.toast.Text())
	}

	m, _ = a.Update(msgs.ContentLoadedMsg{Path: "a.txt", Data: []byte("payload")})
	a = press(m.(App), keyMsg('y'))
	if copied != "payload" {
		t.Errorf("expected payload copied, got %q", copied)
	}
}

func TestCopyContent_ClipboardError(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	a := testAppResized()
	m, _ := a.Update(msgs.ContentLoadedMsg{Path: "a.txt", Data: []byte("payload")})
	m, _ = m.(App).Update(msgs.CopyContentMsg{})
	a = m.(App)

	if !strings.Contains(a.toast.Text(), "no clipboard") {
		t.Errorf("expected clipboard error toast, got %q", a.toast.Text())
	}
}

func TestReload_WithoutFile(t *testing.T) {
	a := testAppResized()
	m, cmd := a.Update(msgs.ReloadContentMsg{})
	a = m.(App)
	if !a.toast.Visible {
		t.Error("expected a toast when there is nothing to reload")
	}
	if cmd == nil {
		t.Error("expected the toast dismiss cmd")
	}
}

func TestCommandPalette_OpenAndClose(t *testing.T) {
	a := press(testAppResized(), tea.KeyMsg{Type: tea.KeyCtrlK})
	if !a.commandPalette.Visible {
		t.Fatal("expected the palette open")
	}
	if a.mode != msgs.ModeCommandPalette {
		t.Errorf("expected ModeCommandPalette, got %v", a.mode)
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.commandPalette.Visible {
		t.Error("expected esc to close the palette")
	}
	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
}

func TestHelp_Toggle(t *testing.T) {
	a := press(testAppResized(), keyMsg('?'))
	if !a.help.Visible || a.mode != msgs.ModeHelp {
		t.Fatal("expected help open in ModeHelp")
	}
	a = press(a, keyMsg('?'))
	if a.help.Visible || a.mode != msgs.ModeNormal {
		t.Error("expected help closed in ModeNormal")
	}
}

func TestSwitchTheme(t *testing.T) {
	a := testAppResized()

	m, _ := a.Update(msgs.SwitchThemeMsg{})
	a = m.(App)
	if !a.commandPalette.Visible {
		t.Error("expected an empty name to open the theme picker")
	}

	m, _ = a.Update(msgs.SwitchThemeMsg{Name: "Dracula"})
	a = m.(App)
	if a.theme.Name != "Dracula" {
		t.Errorf("expected Dracula, got %q", a.theme.Name)
	}

	m, _ = a.Update(msgs.SwitchThemeMsg{Name: "no-such-theme"})
	a = m.(App)
	if a.theme.Name != "Dracula" {
		t.Error("an unknown theme should not change the theme")
	}
	if !strings.Contains(a.toast.Text(), "Unknown theme") {
		t.Errorf("expected an unknown theme toast, got %q", a.toast.Text())
	}
}

func TestSearch_CapturesKeys(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.ContentLoadedMsg{Path: "a.txt", Data: []byte("alpha\nbeta\nalpha")})
	a = press(m.(App), keyMsg('/'))

	if !a.panel.EditingSearch() || a.mode != msgs.ModeSearch {
		t.Fatal("expected search editing in ModeSearch")
	}

	// 'q' is typed into the search bar instead of quitting.
	m, cmd := a.Update(keyMsg('q'))
	a = m.(App)
	if _, ok := hasMsg[tea.QuitMsg](collect(cmd)); ok {
		t.Error("q should not quit while searching")
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.panel.EditingSearch() || a.mode != msgs.ModeNormal {
		t.Error("expected esc to leave search")
	}
}

func TestQuit(t *testing.T) {
	a := testAppResized()
	_, cmd := a.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("expected a quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestToggleWrap(t *testing.T) {
	a := testAppResized()
	before := a.panel.Content().Wrap()
	a = press(a, keyMsg('w'))
	if a.panel.Content().Wrap() == before {
		t.Error("expected wrap to flip")
	}
}

func TestOverlayTopRight_KeepsHeight(t *testing.T) {
	bg := strings.Repeat("x\n", 9) + "x"
	out := overlayTopRight(bg, "ab\ncd", 10)

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[0] != "      ab" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[2] != "x" {
		t.Errorf("expected the background below the overlay, got %q", lines[2])
	}
}

func TestContentLoaded_ReloadSummarizesChanges(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.ContentLoadedMsg{Path: "a.txt", Data: []byte("one\ntwo\nthree")})
	a = m.(App)
	if a.toast.Visible {
		t.Error("the first load should not toast")
	}

	m, _ = a.Update(msgs.ContentLoadedMsg{Path: "a.txt", Data: []byte("one\n2\nthree\nfour")})
	a = m.(App)
	if a.toast.Text() != "Reloaded a.txt: +2 -1" {
		t.Errorf("unexpected toast %q", a.toast.Text())
	}
}

type fakeRecorder struct {
	paths []string
	kinds []string
	err   error
}

func (f *fakeRecorder) Record(path, kind string, size int64, at time.Time) error {
	f.paths = append(f.paths, path)
	f.kinds = append(f.kinds, kind)
	return nil
}

func (f *fakeRecorder) Recent(limit int) ([]history.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []history.Entry
	for i := len(f.paths) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history.Entry{Path: f.paths[i], Kind: f.kinds[i]})
	}
	return out, nil
}

func TestContentLoaded_RecordsFirstOpen(t *testing.T) {
	rec := &fakeRecorder{}
	a := resized(New(testConfig(), Options{History: rec}))

	m, cmd := a.Update(msgs.ContentLoadedMsg{Path: "/tmp/notes.md", Data: []byte("# hi")})
	a = m.(App)
	collect(cmd)
	if len(rec.paths) != 1 || rec.paths[0] != "/tmp/notes.md" || rec.kinds[0] != "markdown" {
		t.Fatalf("expected one markdown record, got %v %v", rec.paths, rec.kinds)
	}

	// Reloads are not new opens.
	_, cmd = a.Update(msgs.ContentLoadedMsg{Path: "/tmp/notes.md", Data: []byte("# hi")})
	collect(cmd)
	if len(rec.paths) != 1 {
		t.Errorf("expected the reload not to record, got %v", rec.paths)
	}
}

func TestOpenRecent_WithoutHistory(t *testing.T) {
	a := testAppResized()
	m, cmd := a.Update(msgs.OpenRecentMsg{})
	a = m.(App)
	if cmd == nil || !strings.Contains(a.toast.Text(), "disabled") {
		t.Fatalf("expected a disabled toast, got %q", a.toast.Text())
	}
	if a.commandPalette.Visible {
		t.Error("the picker should stay closed")
	}
}

func TestOpenRecent_ListsFilesInPicker(t *testing.T) {
	rec := &fakeRecorder{paths: []string{"/tmp/a.go", "/tmp/b.md"}, kinds: []string{"code", "markdown"}}
	a := testAppResized()
	a.history = rec

	_, cmd := a.Update(msgs.OpenRecentMsg{})
	got := collect(cmd)
	list, ok := hasMsg[msgs.RecentFilesMsg](got)
	if !ok {
		t.Fatalf("expected RecentFilesMsg, got %v", got)
	}
	if len(list.Paths) != 2 || list.Paths[0] != "/tmp/b.md" {
		t.Fatalf("expected most recent first, got %v", list.Paths)
	}

	m, _ := a.Update(list)
	a = m.(App)
	if !a.commandPalette.Visible || a.commandPalette.Heading() != "Recent Files" {
		t.Fatalf("expected the recent files picker, got visible=%t heading=%q",
			a.commandPalette.Visible, a.commandPalette.Heading())
	}
	if a.mode != msgs.ModeCommandPalette {
		t.Errorf("expected ModeCommandPalette, got %v", a.mode)
	}
}

func TestRecentFiles_EmptyAndError(t *testing.T) {
	a := testAppResized()
	m, _ := a.Update(msgs.RecentFilesMsg{})
	a = m.(App)
	if a.commandPalette.Visible || a.toast.Text() != "No recent files" {
		t.Errorf("expected a no recent files toast, got %q", a.toast.Text())
	}

	m, _ = a.Update(msgs.RecentFilesMsg{Err: errors.New("locked")})
	a = m.(App)
	if !strings.Contains(a.toast.Text(), "locked") {
		t.Errorf("expected the history error in the toast, got %q", a.toast.Text())
	}
}

func TestOpenFile_LoadsAndRecordsNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "next.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec := &fakeRecorder{}
	a := testAppResized()
	a.history = rec

	m, cmd := a.Update(msgs.OpenFileMsg{Path: path})
	a = m.(App)
	if a.file != path {
		t.Fatalf("expected file %q, got %q", path, a.file)
	}
	loaded, ok := hasMsg[msgs.ContentLoadedMsg](collect(cmd))
	if !ok || loaded.Err != nil {
		t.Fatalf("expected the new file loaded, got %+v", loaded)
	}

	m, cmd = a.Update(loaded)
	a = m.(App)
	collect(cmd)
	if string(a.panel.Content().Raw()) != "one\ntwo\n" {
		t.Errorf("unexpected content %q", a.panel.Content().Raw())
	}
	if len(rec.paths) != 1 || rec.paths[0] != path {
		t.Errorf("expected the open recorded, got %v", rec.paths)
	}
	if !strings.Contains(a.header(), "next.txt") {
		t.Errorf("expected the header to name the new file, got %q", a.header())
	}
}

func TestPalette_SelectingRecentFileOpensIt(t *testing.T) {
	a := testAppResized()
	a.commandPalette.OpenRecentPicker([]string{"/tmp/x.txt"})
	a.setMode(msgs.ModeCommandPalette)

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	open, ok := hasMsg[msgs.OpenFileMsg](collect(cmd))
	if !ok || open.Path != "/tmp/x.txt" {
		t.Fatalf("expected OpenFileMsg for /tmp/x.txt, got %+v", open)
	}
	if a.commandPalette.Visible {
		t.Error("expected the picker closed after a selection")
	}
}
