package classmodel

import "testing"

func TestModifierSet_Keywords_Order(t *testing.T) {
	var m ModifierSet
	m.Set(ModStatic)
	m.Set(ModAbstract)
	m.Set(ModProtected)

	got := m.String()
	want := "protected abstract static "
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestModifierSet_SetClear(t *testing.T) {
	var m ModifierSet
	m.Set(ModFinal)
	if !m.Has(ModFinal) {
		t.Fatal("Has(ModFinal) = false after Set")
	}
	m.Clear(ModFinal)
	if m.Has(ModFinal) {
		t.Fatal("Has(ModFinal) = true after Clear")
	}
	if m.String() != "" {
		t.Errorf("String() = %q, want empty for empty set", m.String())
	}
}

func TestModifierForKeyword(t *testing.T) {
	if mod, ok := ModifierForKeyword("private"); !ok || mod != ModPrivate {
		t.Errorf("ModifierForKeyword(private) = %v, %v", mod, ok)
	}
	if _, ok := ModifierForKeyword("synchronized"); ok {
		t.Error("ModifierForKeyword accepted an unsupported keyword")
	}
}
