package content

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/tidwall/pretty"
)

// Kind is the rendering mode chosen for a content file.
type Kind int

const (
	KindText Kind = iota
	KindCode
	KindJSON
	KindMarkdown
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindJSON:
		return "json"
	case KindMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// detectKind picks a rendering mode and chroma lexer from the file name,
// falling back to content analysis.
func detectKind(path string, data []byte) (Kind, string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return KindMarkdown, "markdown"
	case ".json":
		return KindJSON, "json"
	}

	if path != "" {
		if l := lexers.Match(filepath.Base(path)); l != nil {
			return KindCode, l.Config().Name
		}
	}

	if l := lexers.Analyse(string(data)); l != nil {
		name := l.Config().Name
		if strings.EqualFold(name, "json") {
			return KindJSON, "json"
		}
		return KindCode, name
	}
	return KindText, "text"
}

// highlight applies chroma syntax highlighting to source code.
func highlight(source, lexerName, styleName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

// renderMarkdown reflows markdown to width with glamour.
func renderMarkdown(source, styleName string, width int) (string, error) {
	if width < 1 {
		width = 1
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}

// prettyJSON indents JSON; invalid input is returned unchanged.
func prettyJSON(data []byte) []byte {
	if !isJSON(data) {
		return data
	}
	return pretty.Pretty(data)
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// wrapText breaks lines at word boundaries, then hard-wraps words longer
// than width. Escape sequences from highlighting do not count.
func wrapText(s string, width int) string {
	if width < 1 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
