// Package codestyle normalizes the layout of model nodes and rendered
// source text. Node-level reformatting keeps generated method bodies
// one statement per line; file-level formatting reindents rendered
// output by brace depth.
package codestyle

import (
	"strings"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

// Indent is the unit of indentation in formatted output.
const Indent = "    "

// Styler reformats model nodes in place.
type Styler interface {
	ReformatMethod(m *classmodel.Method)
	ReformatClass(c *classmodel.Class)
}

type stylerImpl struct{}

// NewStyler creates a Styler.
func NewStyler() Styler {
	return &stylerImpl{}
}

// ReformatMethod rewrites the body to one statement per line with
// single-space separation inside each statement.
func (s *stylerImpl) ReformatMethod(m *classmodel.Method) {
	var out []string
	for _, line := range m.Body {
		for _, stmt := range splitStatements(line) {
			stmt = strings.Join(strings.Fields(stmt), " ")
			if stmt != "" {
				out = append(out, stmt)
			}
		}
	}
	m.Body = out
}

// ReformatClass reformats every method of the class and its nested
// classes.
func (s *stylerImpl) ReformatClass(c *classmodel.Class) {
	for _, m := range c.Methods {
		s.ReformatMethod(m)
	}
	for _, in := range c.Inner {
		s.ReformatClass(in)
	}
}

// splitStatements breaks a line after each top-level semicolon.
// Semicolons inside parentheses, brackets or literals do not split.
func splitStatements(line string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			quote = ch
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ';':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(line[start:i+1]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(line[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// Format reindents source text by brace depth, collapses runs of
// blank lines to one and drops blank lines that touch a brace.
// Braces inside string and character literals are ignored. The result
// always ends in a single newline.
func Format(src string) string {
	var (
		b         strings.Builder
		depth     int
		pending   bool
		afterOpen bool
		wrote     bool
	)
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			pending = true
			continue
		}
		if pending && wrote && !afterOpen && !strings.HasPrefix(line, "}") {
			b.WriteByte('\n')
		}
		pending = false

		indent := depth
		if strings.HasPrefix(line, "}") {
			indent--
		}
		if indent < 0 {
			indent = 0
		}
		for i := 0; i < indent; i++ {
			b.WriteString(Indent)
		}
		b.WriteString(line)
		b.WriteByte('\n')
		depth += braceDelta(line)
		if depth < 0 {
			depth = 0
		}
		afterOpen = strings.HasSuffix(line, "{")
		wrote = true
	}
	return b.String()
}

func braceDelta(line string) int {
	var (
		delta int
		quote byte
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			quote = ch
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}
