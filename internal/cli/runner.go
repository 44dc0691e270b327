package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/seitarof/gen-builder/internal/classdesc"
	"github.com/seitarof/gen-builder/internal/classmodel"
	"github.com/seitarof/gen-builder/internal/render"
	"github.com/seitarof/gen-builder/internal/synth"
	"github.com/seitarof/gen-builder/internal/workspace"
)

// commandName labels generation commands for undo and logging.
const commandName = "GenerateBuilder"

// Runner orchestrates loader/synthesizer/emitter layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader   classdesc.Loader
	synth    synth.Synthesizer
	emitter  render.Emitter
	notifier workspace.Notifier
	log      *zap.Logger
}

// NewRunner creates a default runner implementation. A nil logger
// disables logging.
func NewRunner(
	l classdesc.Loader,
	s synth.Synthesizer,
	e render.Emitter,
	n workspace.Notifier,
	log *zap.Logger,
) Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &runnerImpl{
		loader:   l,
		synth:    s,
		emitter:  e,
		notifier: n,
		log:      log,
	}
}

// Run executes a single generation cycle: load the class description,
// run one generation command per selection, then render every
// top-level class into the output directory.
func (r *runnerImpl) Run(cfg *Config) error {
	desc, err := r.loader.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input, err)
	}

	ws := workspace.NewWorkspace(desc.Project, r.notifier, r.log)
	for _, sel := range desc.Selections {
		err := ws.RunCommand(commandName, func(p *classmodel.Project) error {
			target, fields, err := classdesc.ResolveSelection(p, sel)
			if err != nil {
				return err
			}
			return r.synth.Execute(target, fields)
		})
		if err != nil {
			return err
		}
		r.log.Info("builder generated", zap.String("class", sel.ClassName))
	}

	if err := r.emitter.Emit(cfg.OutDir, ws.Project().Classes); err != nil {
		return &workspace.ToolingError{Op: "emit", Err: err}
	}
	r.log.Info("sources written",
		zap.String("dir", cfg.OutDir),
		zap.Int("classes", len(ws.Project().Classes)))
	return nil
}
