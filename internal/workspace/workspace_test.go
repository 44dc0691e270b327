package workspace

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

type recordingNotifier struct {
	warns  []string
	errors []string
}

func (n *recordingNotifier) Warn(msg string)  { n.warns = append(n.warns, msg) }
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

func newTestProject(t *testing.T) *classmodel.Project {
	t.Helper()
	p := &classmodel.Project{}
	c := &classmodel.Class{Name: "Person"}
	if err := c.AddField(&classmodel.Field{Name: "name", Type: "String"}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddClass(c); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunCommand_CommitAndUndo(t *testing.T) {
	n := &recordingNotifier{}
	ws := NewWorkspace(newTestProject(t), n, nil)
	before := ws.Project().Clone()

	err := ws.RunCommand("GenerateBuilder", func(p *classmodel.Project) error {
		return p.ClassByName("Person").AddField(&classmodel.Field{Name: "age", Type: "int"})
	})
	if err != nil {
		t.Fatalf("RunCommand returned error: %v", err)
	}
	if ws.Project().ClassByName("Person").FieldByName("age") == nil {
		t.Fatal("committed mutation is not visible")
	}

	name, ok := ws.Undo()
	if !ok || name != "GenerateBuilder" {
		t.Fatalf("Undo = %q, %v", name, ok)
	}
	if diff := cmp.Diff(before, ws.Project()); diff != "" {
		t.Errorf("undo did not restore the model (-before +after):\n%s", diff)
	}
}

func TestRunCommand_ToolingFaultAbsorbedAndRolledBack(t *testing.T) {
	n := &recordingNotifier{}
	ws := NewWorkspace(newTestProject(t), n, nil)
	before := ws.Project().Clone()

	err := ws.RunCommand("GenerateBuilder", func(p *classmodel.Project) error {
		if err := p.ClassByName("Person").AddField(&classmodel.Field{Name: "partial", Type: "int"}); err != nil {
			return err
		}
		return &ToolingError{Op: "reformat", Err: errors.New("formatter unavailable")}
	})
	if err != nil {
		t.Fatalf("tooling fault must be absorbed, got %v", err)
	}
	if len(n.warns) != 1 {
		t.Fatalf("warns = %q, want one warning", n.warns)
	}
	if diff := cmp.Diff(before, ws.Project()); diff != "" {
		t.Errorf("partial mutation survived rollback (-before +after):\n%s", diff)
	}
	if _, ok := ws.Undo(); ok {
		t.Error("abandoned command left an undo entry")
	}
}

func TestRunCommand_StructuralFaultReRaised(t *testing.T) {
	n := &recordingNotifier{}
	ws := NewWorkspace(newTestProject(t), n, nil)

	fault := fmt.Errorf("builder field x: %w", classmodel.ErrInvalidDeclaration)
	err := ws.RunCommand("GenerateBuilder", func(p *classmodel.Project) error {
		return fault
	})
	if !errors.Is(err, classmodel.ErrInvalidDeclaration) {
		t.Fatalf("err = %v, want the structural fault re-raised", err)
	}
	if len(n.errors) != 1 {
		t.Errorf("errors = %q, want one error notification", n.errors)
	}
}

func TestRunCommand_UnknownFaultReRaised(t *testing.T) {
	n := &recordingNotifier{}
	ws := NewWorkspace(newTestProject(t), n, nil)
	before := ws.Project().Clone()

	fault := errors.New("model node in unexpected state")
	err := ws.RunCommand("GenerateBuilder", func(p *classmodel.Project) error {
		p.ClassByName("Person").Name = "Mangled"
		return fault
	})
	if !errors.Is(err, fault) {
		t.Fatalf("err = %v, want the unknown fault re-raised", err)
	}
	if diff := cmp.Diff(before, ws.Project()); diff != "" {
		t.Errorf("mutation survived rollback (-before +after):\n%s", diff)
	}
}

func TestUndo_Empty(t *testing.T) {
	ws := NewWorkspace(newTestProject(t), &recordingNotifier{}, nil)
	if _, ok := ws.Undo(); ok {
		t.Error("Undo reported success on an empty history")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FaultKind
	}{
		{"tooling", &ToolingError{Op: "write", Err: errors.New("disk full")}, FaultTooling},
		{"wrapped tooling", fmt.Errorf("render: %w", &ToolingError{Op: "write", Err: errors.New("x")}), FaultTooling},
		{"structural", fmt.Errorf("new field: %w", classmodel.ErrInvalidDeclaration), FaultStructural},
		{"unknown", errors.New("boom"), FaultUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}
