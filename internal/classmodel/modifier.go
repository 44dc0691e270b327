package classmodel

import "strings"

// Modifier is a single declaration modifier flag.
type Modifier uint8

const (
	ModPublic Modifier = 1 << iota
	ModProtected
	ModPrivate
	ModAbstract
	ModStatic
	ModFinal
)

// keywordOrder lists modifiers in canonical rendering order.
var keywordOrder = []struct {
	mod  Modifier
	word string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
}

var keywordMap = map[string]Modifier{
	"public":    ModPublic,
	"protected": ModProtected,
	"private":   ModPrivate,
	"abstract":  ModAbstract,
	"static":    ModStatic,
	"final":     ModFinal,
}

// ModifierSet is a bit set of declaration modifiers.
type ModifierSet uint8

// Has reports whether mod is present.
func (m ModifierSet) Has(mod Modifier) bool {
	return m&ModifierSet(mod) != 0
}

// Set adds mod to the set.
func (m *ModifierSet) Set(mod Modifier) {
	*m |= ModifierSet(mod)
}

// Clear removes mod from the set.
func (m *ModifierSet) Clear(mod Modifier) {
	*m &^= ModifierSet(mod)
}

// Keywords returns the present modifiers in canonical order.
func (m ModifierSet) Keywords() []string {
	words := make([]string, 0, len(keywordOrder))
	for _, k := range keywordOrder {
		if m.Has(k.mod) {
			words = append(words, k.word)
		}
	}
	return words
}

// String renders the set as declaration-prefix text, with a trailing
// space when non-empty so it can be prepended directly to a declaration.
func (m ModifierSet) String() string {
	words := m.Keywords()
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ") + " "
}

// ModifierForKeyword maps a modifier keyword to its flag.
func ModifierForKeyword(word string) (Modifier, bool) {
	mod, ok := keywordMap[word]
	return mod, ok
}
