package classmodel

import "fmt"

// Project holds the top-level classes of a model in declaration order.
type Project struct {
	Classes []*Class
}

// ClassByName returns the top-level class with the given name, or nil.
func (p *Project) ClassByName(name string) *Class {
	for _, c := range p.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddClass appends a top-level class and assigns its qualified name.
func (p *Project) AddClass(c *Class) error {
	if p.ClassByName(c.Name) != nil {
		return fmt.Errorf("add class: project already declares %q", c.Name)
	}
	c.QualifiedName = c.Name
	p.Classes = append(p.Classes, c)
	return nil
}

// Clone deep-copies the project. Superclass links are remapped onto
// the cloned classes so the copy shares no nodes with the original;
// links that point outside the project are kept as-is.
func (p *Project) Clone() *Project {
	seen := make(map[*Class]*Class)
	out := &Project{Classes: make([]*Class, len(p.Classes))}
	for i, c := range p.Classes {
		out.Classes[i] = cloneClass(c, seen)
	}
	for orig, cl := range seen {
		if orig.Super != nil {
			if mapped, ok := seen[orig.Super]; ok {
				cl.Super = mapped
			}
		}
	}
	return out
}

func cloneClass(c *Class, seen map[*Class]*Class) *Class {
	cl := &Class{
		Name:          c.Name,
		QualifiedName: c.QualifiedName,
		Mods:          c.Mods,
		Super:         c.Super,
		Fields:        make([]*Field, len(c.Fields)),
		Methods:       make([]*Method, len(c.Methods)),
		Inner:         make([]*Class, len(c.Inner)),
	}
	seen[c] = cl
	for i, f := range c.Fields {
		cl.Fields[i] = f.clone()
	}
	for i, m := range c.Methods {
		cl.Methods[i] = m.clone()
	}
	for i, in := range c.Inner {
		cl.Inner[i] = cloneClass(in, seen)
	}
	return cl
}
