// Package classdesc loads class descriptions from HCL files into the
// structural class model. A description declares classes with fields,
// methods and nested classes, plus generate blocks naming the classes
// to receive builders and the field selection for each.
package classdesc

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

// Selection names a class and the ordered fields chosen for builder
// generation. Field names are resolved against the live model by the
// caller, so a selection stays valid across model replacement.
type Selection struct {
	ClassName  string
	FieldNames []string
}

// Description is a loaded class model plus its generate selections.
type Description struct {
	Project    *classmodel.Project
	Selections []Selection
}

// Loader parses class description files.
type Loader interface {
	Load(path string) (*Description, error)
	LoadSource(src []byte, filename string) (*Description, error)
}

type loaderImpl struct {
	factory classmodel.Factory
}

// NewLoader creates a Loader constructing model nodes with factory.
func NewLoader(factory classmodel.Factory) Loader {
	return &loaderImpl{factory: factory}
}

func (l *loaderImpl) Load(path string) (*Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	return l.build(file)
}

func (l *loaderImpl) LoadSource(src []byte, filename string) (*Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	return l.build(file)
}

func (l *loaderImpl) build(file *hcl.File) (*Description, error) {
	var root rootSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode class description: %w", diags)
	}

	project := &classmodel.Project{}
	for _, cs := range root.Classes {
		c, err := l.buildClass(cs)
		if err != nil {
			return nil, err
		}
		if err := project.AddClass(c); err != nil {
			return nil, err
		}
	}
	if err := resolveExtends(project, root.Classes, nil); err != nil {
		return nil, err
	}

	selections, err := buildSelections(project, root.Generates)
	if err != nil {
		return nil, err
	}
	return &Description{Project: project, Selections: selections}, nil
}

func (l *loaderImpl) buildClass(cs *classSchema) (*classmodel.Class, error) {
	c, err := l.factory.NewClass(cs.Name)
	if err != nil {
		return nil, err
	}
	if err := applyVisibility(&c.Mods, cs.Visibility, cs.Name); err != nil {
		return nil, err
	}
	if cs.Abstract {
		c.Mods.Set(classmodel.ModAbstract)
	}
	if cs.Static {
		c.Mods.Set(classmodel.ModStatic)
	}
	for _, fs := range cs.Fields {
		f, err := l.factory.NewField(fs.Name, fs.Type)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cs.Name, err)
		}
		if err := applyVisibility(&f.Mods, fs.Visibility, fs.Name); err != nil {
			return nil, err
		}
		if fs.Final {
			f.Mods.Set(classmodel.ModFinal)
		}
		if err := c.AddField(f); err != nil {
			return nil, err
		}
	}
	for _, ms := range cs.Methods {
		m, err := l.factory.MethodFromText(ms.Text)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cs.Name, err)
		}
		c.AddMethod(m)
	}
	for _, inner := range cs.Classes {
		in, err := l.buildClass(inner)
		if err != nil {
			return nil, err
		}
		c.AddInnerClass(in)
	}
	return c, nil
}

// resolveExtends links superclass references after all classes exist.
// References use qualified names, so "AbstractPerson.Builder" reaches
// a nested class.
func resolveExtends(project *classmodel.Project, schemas []*classSchema, path []string) error {
	for _, cs := range schemas {
		if cs.Extends != "" {
			super := classByQualifiedName(project, cs.Extends)
			if super == nil {
				return fmt.Errorf("class %s: unknown superclass %q", cs.Name, cs.Extends)
			}
			target := classByQualifiedName(project, strings.Join(append(path, cs.Name), "."))
			target.SetSuper(super)
		}
		if err := resolveExtends(project, cs.Classes, append(path, cs.Name)); err != nil {
			return err
		}
	}
	return nil
}

func classByQualifiedName(project *classmodel.Project, qualified string) *classmodel.Class {
	parts := strings.Split(qualified, ".")
	c := project.ClassByName(parts[0])
	for _, part := range parts[1:] {
		if c == nil {
			return nil
		}
		c = c.InnerClassByName(part)
	}
	return c
}

// ResolveSelection resolves a selection against a model, returning
// the target class and the selected fields in selection order. Field
// names may resolve to superclass fields.
func ResolveSelection(project *classmodel.Project, sel Selection) (*classmodel.Class, []*classmodel.Field, error) {
	target := classByQualifiedName(project, sel.ClassName)
	if target == nil {
		return nil, nil, fmt.Errorf("select %s: unknown class", sel.ClassName)
	}
	fields := make([]*classmodel.Field, 0, len(sel.FieldNames))
	for _, name := range sel.FieldNames {
		f := target.FieldInHierarchy(name)
		if f == nil {
			return nil, nil, fmt.Errorf("select %s: unknown field %q", sel.ClassName, name)
		}
		fields = append(fields, f)
	}
	return target, fields, nil
}

func buildSelections(project *classmodel.Project, generates []*generateSchema) ([]Selection, error) {
	selections := make([]Selection, 0, len(generates))
	for _, gs := range generates {
		target := classByQualifiedName(project, gs.Class)
		if target == nil {
			return nil, fmt.Errorf("generate %s: unknown class", gs.Class)
		}
		names, err := fieldNames(target, gs)
		if err != nil {
			return nil, err
		}
		selections = append(selections, Selection{ClassName: gs.Class, FieldNames: names})
	}
	return selections, nil
}

// fieldNames evaluates the fields expression of a generate block: the
// string "*" selects every field the class declares in order, a list
// selects the named fields, which may live on a superclass.
func fieldNames(target *classmodel.Class, gs *generateSchema) ([]string, error) {
	v, diags := gs.Fields.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("generate %s: %w", gs.Class, diags)
	}

	if v.Type() == cty.String {
		var s string
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return nil, fmt.Errorf("generate %s: %w", gs.Class, err)
		}
		if s != "*" {
			return nil, fmt.Errorf("generate %s: fields must be %q or a list of names, got %q", gs.Class, "*", s)
		}
		names := make([]string, len(target.Fields))
		for i, f := range target.Fields {
			names[i] = f.Name
		}
		return names, nil
	}

	if !v.Type().IsTupleType() && !v.Type().IsListType() {
		return nil, fmt.Errorf("generate %s: fields must be %q or a list of names", gs.Class, "*")
	}
	var names []string
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		var name string
		if err := gocty.FromCtyValue(el, &name); err != nil {
			return nil, fmt.Errorf("generate %s: %w", gs.Class, err)
		}
		if target.FieldInHierarchy(name) == nil {
			return nil, fmt.Errorf("generate %s: unknown field %q", gs.Class, name)
		}
		names = append(names, name)
	}
	return names, nil
}

func applyVisibility(mods *classmodel.ModifierSet, visibility, owner string) error {
	switch visibility {
	case "":
		return nil
	case "public":
		mods.Set(classmodel.ModPublic)
	case "protected":
		mods.Set(classmodel.ModProtected)
	case "private":
		mods.Set(classmodel.ModPrivate)
	default:
		return fmt.Errorf("%s: unknown visibility %q", owner, visibility)
	}
	return nil
}
