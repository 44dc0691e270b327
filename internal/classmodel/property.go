package classmodel

import "strings"

// SetterName returns the conventional setter name for a field:
// "set" plus the capitalized field name.
func SetterName(fieldName string) string {
	if fieldName == "" {
		return "set"
	}
	return "set" + strings.ToUpper(fieldName[:1]) + fieldName[1:]
}

// SetterPrototype builds the lookup prototype for a field's
// conventional setter: void return, single parameter of the field
// type. Only the name and parameter type matter for matching.
func SetterPrototype(f *Field) *Method {
	return &Method{
		Name:       SetterName(f.Name),
		ReturnType: "void",
		Params:     []Parameter{{Name: f.Name, Type: f.Type}},
	}
}
