package codestyle

import (
	"testing"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

func TestStyler_ReformatMethod_SplitsStatements(t *testing.T) {
	s := NewStyler()
	m := &classmodel.Method{
		Name: "Person",
		Body: []string{"name = builder.name; age = builder.age;"},
	}
	s.ReformatMethod(m)

	want := []string{"name = builder.name;", "age = builder.age;"}
	if len(m.Body) != len(want) {
		t.Fatalf("body = %q, want %d statements", m.Body, len(want))
	}
	for i := range want {
		if m.Body[i] != want[i] {
			t.Errorf("body[%d] = %q, want %q", i, m.Body[i], want[i])
		}
	}
}

func TestStyler_ReformatMethod_QuotedSemicolon(t *testing.T) {
	s := NewStyler()
	m := &classmodel.Method{
		Name: "greet",
		Body: []string{`return "a;b";`},
	}
	s.ReformatMethod(m)

	if len(m.Body) != 1 || m.Body[0] != `return "a;b";` {
		t.Fatalf("body = %q, quoted semicolon must not split", m.Body)
	}
}

func TestStyler_ReformatMethod_NormalizesSpacing(t *testing.T) {
	s := NewStyler()
	m := &classmodel.Method{
		Name: "age",
		Body: []string{"this.age  =   age;", "  return   this;  "},
	}
	s.ReformatMethod(m)

	want := []string{"this.age = age;", "return this;"}
	for i := range want {
		if m.Body[i] != want[i] {
			t.Errorf("body[%d] = %q, want %q", i, m.Body[i], want[i])
		}
	}
}

func TestStyler_ReformatClass_Recurses(t *testing.T) {
	s := NewStyler()
	inner := &classmodel.Class{Name: "Builder"}
	inner.AddMethod(&classmodel.Method{Name: "build", Body: []string{"return  new   Person(this);"}})
	outer := &classmodel.Class{Name: "Person", QualifiedName: "Person"}
	outer.AddInnerClass(inner)

	s.ReformatClass(outer)
	if got := inner.Methods[0].Body[0]; got != "return new Person(this);" {
		t.Errorf("inner body = %q, want normalized statement", got)
	}
}

func TestFormat_Reindents(t *testing.T) {
	src := "public class Person {\nprivate final String name;\nprivate Person(Builder builder) {\nname = builder.name;\n}\n}\n"
	want := "public class Person {\n" +
		Indent + "private final String name;\n" +
		Indent + "private Person(Builder builder) {\n" +
		Indent + Indent + "name = builder.name;\n" +
		Indent + "}\n" +
		"}\n"
	if got := Format(src); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_CollapsesBlankRuns(t *testing.T) {
	src := "class A {\nint x;\n\n\n\nint y;\n}\n"
	want := "class A {\n" + Indent + "int x;\n\n" + Indent + "int y;\n}\n"
	if got := Format(src); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormat_DropsBlanksTouchingBraces(t *testing.T) {
	src := "class A {\n\nint x;\n\n}\n"
	want := "class A {\n" + Indent + "int x;\n}\n"
	if got := Format(src); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormat_BraceInLiteral(t *testing.T) {
	src := "class A {\nString s = \"{\";\nint x;\n}\n"
	got := Format(src)
	want := "class A {\n" + Indent + "String s = \"{\";\n" + Indent + "int x;\n}\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}
