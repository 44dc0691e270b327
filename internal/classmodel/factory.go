package classmodel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDeclaration reports malformed names or declaration text
// handed to the factory.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// Factory constructs model nodes from names and declaration text.
type Factory interface {
	NewClass(name string) (*Class, error)
	NewField(name, typeText string) (*Field, error)
	MethodFromText(text string) (*Method, error)
}

type factoryImpl struct{}

// NewFactory creates a Factory.
func NewFactory() Factory {
	return &factoryImpl{}
}

func (f *factoryImpl) NewClass(name string) (*Class, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("new class: bad name %q: %w", name, ErrInvalidDeclaration)
	}
	return &Class{Name: name, QualifiedName: name}, nil
}

func (f *factoryImpl) NewField(name, typeText string) (*Field, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("new field: bad name %q: %w", name, ErrInvalidDeclaration)
	}
	if !isTypeText(typeText) {
		return nil, fmt.Errorf("new field: bad type %q: %w", typeText, ErrInvalidDeclaration)
	}
	return &Field{Name: name, Type: typeText}, nil
}

// MethodFromText parses a method or constructor declaration of the
// form "<modifiers> [<return type>] <name>(<params>) { <body> }".
// A header with no word between the modifiers and the parameter list
// other than the name itself is a constructor.
func (f *factoryImpl) MethodFromText(text string) (*Method, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open < 0 {
		return nil, fmt.Errorf("method from text: missing parameter list: %w", ErrInvalidDeclaration)
	}
	end := matchParen(text, open)
	if end < 0 {
		return nil, fmt.Errorf("method from text: unbalanced parameter list: %w", ErrInvalidDeclaration)
	}

	m := &Method{}
	words := splitHeader(text[:open])
	for len(words) > 0 {
		mod, ok := ModifierForKeyword(words[0])
		if !ok {
			break
		}
		m.Mods.Set(mod)
		words = words[1:]
	}
	switch len(words) {
	case 0:
		return nil, fmt.Errorf("method from text: missing name: %w", ErrInvalidDeclaration)
	case 1:
		m.Name = words[0]
		m.Constructor = true
	default:
		m.Name = words[len(words)-1]
		m.ReturnType = strings.Join(words[:len(words)-1], " ")
	}
	if !isIdentifier(m.Name) {
		return nil, fmt.Errorf("method from text: bad name %q: %w", m.Name, ErrInvalidDeclaration)
	}

	params, err := parseParams(text[open+1 : end])
	if err != nil {
		return nil, err
	}
	m.Params = params

	rest := strings.TrimSpace(text[end+1:])
	if rest != "" {
		if rest[0] != '{' || rest[len(rest)-1] != '}' {
			return nil, fmt.Errorf("method from text: malformed body: %w", ErrInvalidDeclaration)
		}
		m.Body = bodyLines(rest[1 : len(rest)-1])
	}
	return m, nil
}

// splitHeader splits header text on spaces outside angle brackets so
// generic return types like Map<String, Integer> stay one word.
func splitHeader(header string) []string {
	var words []string
	var cur strings.Builder
	depth := 0
	for _, r := range header {
		switch {
		case r == '<':
			depth++
			cur.WriteRune(r)
		case r == '>':
			depth--
			cur.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n'):
			if cur.Len() > 0 {
				words = append(words, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

func parseParams(list string) ([]Parameter, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}
	var params []Parameter
	for _, part := range splitTopLevel(list, ',') {
		words := splitHeader(strings.TrimSpace(part))
		if len(words) > 0 && words[0] == "final" {
			words = words[1:]
		}
		if len(words) < 2 {
			return nil, fmt.Errorf("method from text: bad parameter %q: %w", part, ErrInvalidDeclaration)
		}
		params = append(params, Parameter{
			Type: strings.Join(words[:len(words)-1], " "),
			Name: words[len(words)-1],
		})
	}
	return params, nil
}

// bodyLines turns raw body text into one statement or line per entry.
// Multi-line text keeps its lines; single-line text is kept whole and
// left to the styler to break up.
func bodyLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits on sep outside angle brackets and parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit {
			return false
		}
	}
	return true
}

// isTypeText accepts identifiers plus the punctuation of generic,
// array and qualified type references.
func isTypeText(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		ok := r == '_' || r == '$' || r == '<' || r == '>' || r == ',' ||
			r == '[' || r == ']' || r == '.' || r == ' ' || r == '?' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !ok {
			return false
		}
	}
	return true
}
