// Package workspace wraps mutations of a class model in undoable
// commands. A command runs against the live model; on failure the
// pre-command snapshot is restored so no partial mutation stays
// visible, and the failure is classified for warn-versus-fatal
// handling.
package workspace

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

// Notifier surfaces command outcomes to the user.
type Notifier interface {
	Warn(msg string)
	Error(msg string)
}

type consoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a Notifier writing to w.
func NewConsoleNotifier(w io.Writer) Notifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Warn(msg string) {
	fmt.Fprintf(n.w, "warning: %s\n", msg)
}

func (n *consoleNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "error: %s\n", msg)
}

// Workspace owns a class model and runs named, undoable commands
// against it.
type Workspace interface {
	// Project returns the live model. Commands and undo replace the
	// model instance, so callers must not hold nodes across calls.
	Project() *classmodel.Project
	RunCommand(name string, mutate func(p *classmodel.Project) error) error
	Undo() (string, bool)
}

type workspaceImpl struct {
	project  *classmodel.Project
	notifier Notifier
	log      *zap.Logger
	history  []undoEntry
}

type undoEntry struct {
	name     string
	snapshot *classmodel.Project
}

// NewWorkspace creates a Workspace over project. A nil logger
// disables logging.
func NewWorkspace(project *classmodel.Project, notifier Notifier, log *zap.Logger) Workspace {
	if log == nil {
		log = zap.NewNop()
	}
	return &workspaceImpl{project: project, notifier: notifier, log: log}
}

func (w *workspaceImpl) Project() *classmodel.Project {
	return w.project
}

// RunCommand snapshots the model, applies mutate and either records
// the snapshot for undo or rolls back to it. Tooling faults are
// surfaced as warnings and absorbed; structural and unknown faults
// are surfaced as errors and re-raised.
func (w *workspaceImpl) RunCommand(name string, mutate func(p *classmodel.Project) error) error {
	snapshot := w.project.Clone()
	err := mutate(w.project)
	if err == nil {
		w.history = append(w.history, undoEntry{name: name, snapshot: snapshot})
		w.log.Debug("command committed", zap.String("command", name))
		return nil
	}

	w.project = snapshot
	kind := Classify(err)
	switch kind {
	case FaultTooling:
		w.log.Warn("command abandoned",
			zap.String("command", name),
			zap.Error(err))
		w.notifier.Warn(err.Error())
		return nil
	default:
		w.log.Error("command failed",
			zap.String("command", name),
			zap.String("fault", kind.String()),
			zap.Error(err))
		w.notifier.Error(err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
}

// Undo restores the model from before the most recent committed
// command and reports that command's name.
func (w *workspaceImpl) Undo() (string, bool) {
	if len(w.history) == 0 {
		return "", false
	}
	last := w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.project = last.snapshot
	w.log.Debug("command undone", zap.String("command", last.name))
	return last.name, true
}
