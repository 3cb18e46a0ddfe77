package content

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gopanel/internal/ui/theme"
)

func newViewerForTest() Model {
	th := theme.Default()
	m := New(th, theme.NewStyles(th))
	m.SetFrame(Frame{Width: 60, Height: 10, ContainerWidth: 80, ContainerHeight: 12})
	return m
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want Kind
	}{
		{name: "markdown", path: "README.md", data: "# hi", want: KindMarkdown},
		{name: "json by extension", path: "data.json", data: `{"a":1}`, want: KindJSON},
		{name: "go source", path: "main.go", data: "package main", want: KindCode},
		{name: "plain", path: "notes", data: "just words", want: KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := detectKind(tt.path, []byte(tt.data))
			if got != tt.want {
				t.Fatalf("detectKind(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPrettyJSONLeavesInvalidInputAlone(t *testing.T) {
	in := []byte("not json")
	if got := prettyJSON(in); string(got) != "not json" {
		t.Fatalf("prettyJSON() = %q, want input unchanged", got)
	}

	got := string(prettyJSON([]byte(`{"a":1,"b":[1,2]}`)))
	if !strings.Contains(got, "\n") {
		t.Fatalf("prettyJSON() = %q, want multi-line output", got)
	}
}

func TestSetContentRendersFile(t *testing.T) {
	m := newViewerForTest()
	m.SetContent("main.go", []byte("package main\n\nfunc main() {}\n"))

	if !m.HasContent() {
		t.Fatal("expected content to be loaded")
	}
	if m.Kind() != KindCode {
		t.Fatalf("Kind() = %v, want code", m.Kind())
	}
	if !strings.Contains(m.View(), "main") {
		t.Fatalf("View() missing source text: %q", m.View())
	}
}

func TestMarkdownReflowsWithFrameWidth(t *testing.T) {
	m := newViewerForTest()
	long := strings.Repeat("word ", 40)
	m.SetContent("doc.md", []byte("# Title\n\n"+long))

	at60 := m.viewport.TotalLineCount()
	m.SetFrame(Frame{Width: 30, Height: 10})
	at30 := m.viewport.TotalLineCount()

	if at30 <= at60 {
		t.Fatalf("line count at width 30 = %d, want more than %d at width 60", at30, at60)
	}
	if m.Frame().Width != 30 {
		t.Fatalf("Frame().Width = %d, want 30", m.Frame().Width)
	}
}

func TestEmptyAndErrorViews(t *testing.T) {
	m := newViewerForTest()
	if !strings.Contains(m.View(), "Nothing to show") {
		t.Fatalf("empty View() = %q", m.View())
	}

	m.SetError("missing.txt", errString("no such file"))
	if m.HasContent() {
		t.Fatal("HasContent() should be false after an error")
	}
	if !strings.Contains(m.View(), "missing.txt") {
		t.Fatalf("error View() = %q, want path mentioned", m.View())
	}
}

func TestHandleMouseCountsHoverAndClick(t *testing.T) {
	m := newViewerForTest()
	m.SetContent("notes.txt", []byte("hello"))

	m, _ = m.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	m, _ = m.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	m, _ = m.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	hovers, clicks := m.MouseStats()
	if hovers != 2 || clicks != 1 {
		t.Fatalf("MouseStats() = (%d, %d), want (2, 1)", hovers, clicks)
	}
}

func TestHandleMouseWheelScrolls(t *testing.T) {
	m := newViewerForTest()
	m.SetContent("notes.txt", []byte(strings.Repeat("line\n", 100)))

	m, _ = m.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.ScrollOffset() == 0 {
		t.Fatal("wheel down did not scroll the viewport")
	}
	m, _ = m.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.ScrollOffset() != 0 {
		t.Fatalf("ScrollOffset() = %d after wheel up, want 0", m.ScrollOffset())
	}
	if _, clicks := m.MouseStats(); clicks != 0 {
		t.Fatalf("clicks = %d, want 0 for wheel input", clicks)
	}
}

func TestSearchFindsMatches(t *testing.T) {
	m := newViewerForTest()
	m.SetContent("notes.txt", []byte("alpha\nbeta\nAlphabet\n"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.Searching() || !m.EditingSearch() {
		t.Fatal("expected search bar to open and take input")
	}
	for _, r := range "alpha" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.EditingSearch() {
		t.Fatal("enter should leave the query input")
	}
	if got := m.search.Matches(); got != 2 {
		t.Fatalf("matches = %d, want 2", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Searching() {
		t.Fatal("esc should close search")
	}
}

func TestHighlightMatchesReportsLines(t *testing.T) {
	th := theme.Default()
	_, lines := highlightMatches("one\ntwo\nOne more", "one", markStyle(th))
	if len(lines) != 2 || lines[0] != 0 || lines[1] != 2 {
		t.Fatalf("lines = %v, want [0 2]", lines)
	}
}

func TestToggleWrap(t *testing.T) {
	m := newViewerForTest()
	if !m.Wrap() {
		t.Fatal("wrap should default on")
	}
	m.ToggleWrap()
	if m.Wrap() {
		t.Fatal("ToggleWrap() should turn wrap off")
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestWrapTextKeepsLinesWithinWidth(t *testing.T) {
	out := wrapText("alpha beta gamma delta", 11)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 11 {
			t.Errorf("line %q is wider than 11", line)
		}
	}
	if got := strings.Join(strings.Fields(out), " "); got != "alpha beta gamma delta" {
		t.Errorf("words changed: %q", got)
	}

	long := wrapText("abcdefghijkl", 5)
	if strings.ReplaceAll(long, "\n", "") != "abcdefghijkl" {
		t.Errorf("hard wrap lost text: %q", long)
	}
	for _, line := range strings.Split(long, "\n") {
		if len(line) > 5 {
			t.Errorf("long word not broken: %q", line)
		}
	}

	if wrapText("as is", 0) != "as is" {
		t.Error("zero width should leave text alone")
	}
}
