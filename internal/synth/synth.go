// Package synth generates builder-pattern members for a class. Given
// a target class and an ordered field selection it resolves or creates
// the nested builder class, rewires the target constructor to accept a
// builder, and merges fields, constructors, setters and the build
// method into the builder by signature, so repeated runs never
// duplicate members.
package synth

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/seitarof/gen-builder/internal/classmodel"
	"github.com/seitarof/gen-builder/internal/codestyle"
)

// BuilderClassName is the conventional name of the nested builder.
const BuilderClassName = "Builder"

// Synthesizer merges builder members into a target class.
type Synthesizer interface {
	Execute(target *classmodel.Class, selected []*classmodel.Field) error
}

type synthesizerImpl struct {
	factory classmodel.Factory
	styler  codestyle.Styler
	log     *zap.Logger
}

// NewSynthesizer creates a Synthesizer using the given node factory
// and styler. A nil logger disables logging.
func NewSynthesizer(factory classmodel.Factory, styler codestyle.Styler, log *zap.Logger) Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &synthesizerImpl{factory: factory, styler: styler, log: log}
}

// Execute synthesizes builder members for target from the ordered
// field selection. Selection order becomes constructor parameter and
// setter order. Members already present in the builder are replaced
// when a generated member shares their signature and kept otherwise;
// nothing is removed.
func (s *synthesizerImpl) Execute(target *classmodel.Class, selected []*classmodel.Field) error {
	abstract := target.IsAbstract()

	builder, created, err := s.resolveBuilder(target, abstract)
	if err != nil {
		return err
	}
	ancestor := findAncestorBuilder(target)
	if ancestor != nil && builder.Super == nil {
		builder.SetSuper(ancestor)
	}
	s.log.Debug("resolved builder class",
		zap.String("target", target.Name),
		zap.Bool("created", created),
		zap.Bool("chained", ancestor != nil))

	if err := s.regenerateTargetConstructor(target, ancestor != nil, selected, abstract); err != nil {
		return err
	}

	finals, nonFinals := partition(selected)

	if err := s.addMissingFields(builder, finals, true); err != nil {
		return err
	}
	if err := s.addMissingFields(builder, nonFinals, false); err != nil {
		return err
	}
	if err := s.generatePrimaryConstructor(builder, finals); err != nil {
		return err
	}
	if err := s.generateCopyConstructor(builder, target, finals, nonFinals); err != nil {
		return err
	}
	if err := s.generateSetters(builder, nonFinals); err != nil {
		return err
	}
	if !abstract {
		if err := s.generateBuild(builder, target); err != nil {
			return err
		}
	}

	s.styler.ReformatClass(builder)
	return nil
}

// resolveBuilder returns the nested builder class, creating it when
// absent. A created builder is static, and additionally protected and
// abstract when the target is abstract.
func (s *synthesizerImpl) resolveBuilder(target *classmodel.Class, abstract bool) (*classmodel.Class, bool, error) {
	if existing := target.InnerClassByName(BuilderClassName); existing != nil {
		return existing, false, nil
	}
	builder, err := s.factory.NewClass(BuilderClassName)
	if err != nil {
		return nil, false, fmt.Errorf("builder class: %w", err)
	}
	builder.Mods.Set(classmodel.ModStatic)
	if abstract {
		builder.Mods.Set(classmodel.ModProtected)
		builder.Mods.Set(classmodel.ModAbstract)
	}
	target.AddInnerClass(builder)
	return builder, true, nil
}

// findAncestorBuilder walks the superclass chain and returns the
// nested builder of the first ancestor that has one, or nil.
func findAncestorBuilder(target *classmodel.Class) *classmodel.Class {
	for cur := target.Super; cur != nil; cur = cur.Super {
		if b := cur.InnerClassByName(BuilderClassName); b != nil {
			return b
		}
	}
	return nil
}

// regenerateTargetConstructor rebuilds the builder-accepting
// constructor on the target: private (protected when abstract), one
// builder parameter, delegating to super(builder) when an ancestor
// builder exists, then per selected field either calling an existing
// conventional setter or assigning directly.
func (s *synthesizerImpl) regenerateTargetConstructor(target *classmodel.Class, chained bool, selected []*classmodel.Field, abstract bool) error {
	var text strings.Builder
	if abstract {
		text.WriteString("protected ")
	} else {
		text.WriteString("private ")
	}
	text.WriteString(target.Name)
	text.WriteString("(")
	text.WriteString(BuilderClassName)
	text.WriteString(" builder) { ")
	if chained {
		text.WriteString("super(builder); ")
	}
	for _, f := range selected {
		proto := classmodel.SetterPrototype(f)
		if setter := target.MethodBySignature(proto, true); setter != nil {
			fmt.Fprintf(&text, "%s(builder.%s); ", setter.Name, f.Name)
		} else {
			fmt.Fprintf(&text, "%s = builder.%s; ", f.Name, f.Name)
		}
	}
	text.WriteString("}")

	ctor, err := s.factory.MethodFromText(text.String())
	if err != nil {
		return fmt.Errorf("target constructor: %w", err)
	}
	s.styler.ReformatMethod(ctor)
	target.ReplaceMethod(ctor)
	return nil
}

// partition splits the selection into final and non-final fields,
// preserving order within each group.
func partition(selected []*classmodel.Field) (finals, nonFinals []*classmodel.Field) {
	for _, f := range selected {
		if f.IsFinal() {
			finals = append(finals, f)
		} else {
			nonFinals = append(nonFinals, f)
		}
	}
	return finals, nonFinals
}

// addMissingFields adds each field absent from the builder by name.
// Present fields are left untouched, whatever their type or modifiers.
func (s *synthesizerImpl) addMissingFields(builder *classmodel.Class, fields []*classmodel.Field, final bool) error {
	for _, f := range fields {
		if builder.FieldByName(f.Name) != nil {
			continue
		}
		nf, err := s.factory.NewField(f.Name, f.Type)
		if err != nil {
			return fmt.Errorf("builder field %s: %w", f.Name, err)
		}
		nf.Mods.Set(classmodel.ModPrivate)
		if final {
			nf.Mods.Set(classmodel.ModFinal)
		}
		if err := builder.AddField(nf); err != nil {
			return fmt.Errorf("builder field %s: %w", f.Name, err)
		}
	}
	return nil
}

func (s *synthesizerImpl) generatePrimaryConstructor(builder *classmodel.Class, finals []*classmodel.Field) error {
	var text strings.Builder
	text.WriteString("public ")
	text.WriteString(BuilderClassName)
	text.WriteString("(")
	for i, f := range finals {
		if i > 0 {
			text.WriteString(", ")
		}
		text.WriteString(f.Type)
		text.WriteString(" ")
		text.WriteString(f.Name)
	}
	text.WriteString(") { ")
	for _, f := range finals {
		fmt.Fprintf(&text, "this.%s = %s; ", f.Name, f.Name)
	}
	text.WriteString("}")

	ctor, err := s.factory.MethodFromText(text.String())
	if err != nil {
		return fmt.Errorf("builder constructor: %w", err)
	}
	builder.ReplaceMethod(ctor)
	return nil
}

func (s *synthesizerImpl) generateCopyConstructor(builder, target *classmodel.Class, finals, nonFinals []*classmodel.Field) error {
	var text strings.Builder
	fmt.Fprintf(&text, "public %s(%s copy) { ", BuilderClassName, target.Name)
	for _, f := range finals {
		fmt.Fprintf(&text, "this.%s = copy.%s; ", f.Name, f.Name)
	}
	for _, f := range nonFinals {
		fmt.Fprintf(&text, "this.%s = copy.%s; ", f.Name, f.Name)
	}
	text.WriteString("}")

	ctor, err := s.factory.MethodFromText(text.String())
	if err != nil {
		return fmt.Errorf("builder copy constructor: %w", err)
	}
	builder.ReplaceMethod(ctor)
	return nil
}

func (s *synthesizerImpl) generateSetters(builder *classmodel.Class, nonFinals []*classmodel.Field) error {
	for _, f := range nonFinals {
		text := fmt.Sprintf("public %s %s(%s %s) { this.%s = %s; return this; }",
			BuilderClassName, f.Name, f.Type, f.Name, f.Name, f.Name)
		setter, err := s.factory.MethodFromText(text)
		if err != nil {
			return fmt.Errorf("builder setter %s: %w", f.Name, err)
		}
		builder.ReplaceMethod(setter)
	}
	return nil
}

func (s *synthesizerImpl) generateBuild(builder, target *classmodel.Class) error {
	text := fmt.Sprintf("public %s build() { return new %s(this); }", target.Name, target.Name)
	m, err := s.factory.MethodFromText(text)
	if err != nil {
		return fmt.Errorf("build method: %w", err)
	}
	builder.ReplaceMethod(m)
	return nil
}
