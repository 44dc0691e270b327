package classmodel

import "strings"

// Field is a named, typed member of a class.
type Field struct {
	Name string
	Type string
	Mods ModifierSet
}

// IsFinal reports whether the field carries the final modifier.
func (f *Field) IsFinal() bool {
	return f.Mods.Has(ModFinal)
}

func (f *Field) clone() *Field {
	c := *f
	return &c
}

// Parameter is a formal parameter of a method.
type Parameter struct {
	Name string
	Type string
}

// Method is a method or constructor of a class. Constructors have
// Constructor set and an empty ReturnType.
type Method struct {
	Name        string
	Constructor bool
	ReturnType  string
	Mods        ModifierSet
	Params      []Parameter
	Body        []string
}

// Signature identifies a method by name and parameter types. Parameter
// names do not participate, so methods differing only in parameter
// naming share a signature.
func (m *Method) Signature() string {
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = canonicalType(p.Type)
	}
	return m.Name + "(" + strings.Join(types, ",") + ")"
}

func (m *Method) clone() *Method {
	c := *m
	c.Params = append([]Parameter(nil), m.Params...)
	c.Body = append([]string(nil), m.Body...)
	return &c
}

// canonicalType collapses whitespace inside a type text so that
// "Map<String, Integer>" and "Map<String,Integer>" compare equal.
func canonicalType(t string) string {
	return strings.Join(strings.Fields(t), "")
}
