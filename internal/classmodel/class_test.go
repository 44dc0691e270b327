package classmodel

import "testing"

func TestClass_MethodBySignature(t *testing.T) {
	c := &Class{Name: "Person"}
	c.AddMethod(&Method{
		Name:       "setName",
		ReturnType: "void",
		Params:     []Parameter{{Name: "value", Type: "String"}},
	})

	probe := &Method{
		Name:       "setName",
		ReturnType: "void",
		Params:     []Parameter{{Name: "name", Type: "String"}},
	}
	if got := c.MethodBySignature(probe, false); got == nil {
		t.Fatal("expected match regardless of parameter names")
	}

	probe.Params[0].Type = "int"
	if got := c.MethodBySignature(probe, false); got != nil {
		t.Fatalf("matched %q, want no match for different parameter type", got.Signature())
	}
}

func TestClass_MethodBySignature_Supers(t *testing.T) {
	base := &Class{Name: "Base"}
	base.AddMethod(&Method{
		Name:       "setId",
		ReturnType: "void",
		Params:     []Parameter{{Name: "id", Type: "long"}},
	})
	child := &Class{Name: "Child", Super: base}

	probe := &Method{Name: "setId", Params: []Parameter{{Name: "x", Type: "long"}}}
	if got := child.MethodBySignature(probe, true); got == nil {
		t.Fatal("expected inherited setter to match with includeSupers")
	}
	if got := child.MethodBySignature(probe, false); got != nil {
		t.Fatal("expected no match without includeSupers")
	}
}

func TestClass_ReplaceMethod(t *testing.T) {
	c := &Class{Name: "Builder"}
	c.AddMethod(&Method{Name: "build", ReturnType: "Person", Body: []string{"return null;"}})
	c.AddMethod(&Method{Name: "name", ReturnType: "Builder", Params: []Parameter{{Name: "name", Type: "String"}}})

	c.ReplaceMethod(&Method{Name: "build", ReturnType: "Person", Body: []string{"return new Person(this);"}})
	if len(c.Methods) != 2 {
		t.Fatalf("method count = %d, want replacement in place", len(c.Methods))
	}
	if c.Methods[0].Body[0] != "return new Person(this);" {
		t.Errorf("body = %q, want replaced body at original position", c.Methods[0].Body)
	}

	c.ReplaceMethod(&Method{Name: "age", ReturnType: "Builder", Params: []Parameter{{Name: "age", Type: "int"}}})
	if len(c.Methods) != 3 {
		t.Fatalf("method count = %d, want append when no signature matches", len(c.Methods))
	}
}

func TestClass_AddField_Duplicate(t *testing.T) {
	c := &Class{Name: "Person"}
	if err := c.AddField(&Field{Name: "name", Type: "String"}); err != nil {
		t.Fatalf("first AddField returned error: %v", err)
	}
	if err := c.AddField(&Field{Name: "name", Type: "int"}); err == nil {
		t.Fatal("expected error for duplicate field name")
	}
}

func TestClass_AddInnerClass(t *testing.T) {
	outer := &Class{Name: "Person", QualifiedName: "Person"}
	inner := &Class{Name: "Builder"}
	outer.AddInnerClass(inner)

	if inner.QualifiedName != "Person.Builder" {
		t.Errorf("qualified name = %q, want %q", inner.QualifiedName, "Person.Builder")
	}
	if outer.InnerClassByName("Builder") != inner {
		t.Error("InnerClassByName did not return the nested class")
	}
	if outer.InnerClassByName("Missing") != nil {
		t.Error("InnerClassByName returned a class for an unknown name")
	}
}

func TestMethod_Signature_WhitespaceInsensitive(t *testing.T) {
	a := &Method{Name: "scores", Params: []Parameter{{Name: "scores", Type: "Map<String, Integer>"}}}
	b := &Method{Name: "scores", Params: []Parameter{{Name: "s", Type: "Map<String,Integer>"}}}
	if a.Signature() != b.Signature() {
		t.Errorf("signatures differ: %q vs %q", a.Signature(), b.Signature())
	}
}
