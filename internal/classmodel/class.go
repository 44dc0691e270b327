package classmodel

import "fmt"

// Class is a class declaration: fields, methods and nested classes,
// plus an optional superclass link. Nested classes carry a
// QualifiedName of the form Outer.Inner for reference rendering.
type Class struct {
	Name          string
	QualifiedName string
	Mods          ModifierSet
	Super         *Class
	Fields        []*Field
	Methods       []*Method
	Inner         []*Class
}

// IsAbstract reports whether the class carries the abstract modifier.
func (c *Class) IsAbstract() bool {
	return c.Mods.Has(ModAbstract)
}

// FieldByName returns the declared field with the given name, or nil.
func (c *Class) FieldByName(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldInHierarchy returns the field with the given name declared on
// the class or the nearest superclass, or nil.
func (c *Class) FieldInHierarchy(name string) *Field {
	for cur := c; cur != nil; cur = cur.Super {
		if f := cur.FieldByName(name); f != nil {
			return f
		}
	}
	return nil
}

// InnerClassByName returns the directly nested class with the given
// name, or nil.
func (c *Class) InnerClassByName(name string) *Class {
	for _, in := range c.Inner {
		if in.Name == name {
			return in
		}
	}
	return nil
}

// MethodBySignature returns the method whose signature matches proto.
// With includeSupers it walks the superclass chain after the class
// itself, returning the nearest match.
func (c *Class) MethodBySignature(proto *Method, includeSupers bool) *Method {
	want := proto.Signature()
	for cur := c; cur != nil; cur = cur.Super {
		for _, m := range cur.Methods {
			if m.Signature() == want {
				return m
			}
		}
		if !includeSupers {
			return nil
		}
	}
	return nil
}

// AddField appends a field. Field names are unique within a class.
func (c *Class) AddField(f *Field) error {
	if c.FieldByName(f.Name) != nil {
		return fmt.Errorf("add field: %s already declares a field %q", c.Name, f.Name)
	}
	c.Fields = append(c.Fields, f)
	return nil
}

// AddMethod appends a method without signature checks.
func (c *Class) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
}

// ReplaceMethod swaps in m at the position of the existing method with
// the same signature, or appends when no method matches. Members are
// never removed, only replaced or added.
func (c *Class) ReplaceMethod(m *Method) {
	want := m.Signature()
	for i, old := range c.Methods {
		if old.Signature() == want {
			c.Methods[i] = m
			return
		}
	}
	c.Methods = append(c.Methods, m)
}

// AddInnerClass nests in under c and assigns its qualified name.
func (c *Class) AddInnerClass(in *Class) {
	in.QualifiedName = c.QualifiedName + "." + in.Name
	c.Inner = append(c.Inner, in)
}

// SetSuper links the superclass. Callers decide when relinking is
// legal; SetSuper itself overwrites unconditionally.
func (c *Class) SetSuper(super *Class) {
	c.Super = super
}
