package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/seitarof/gen-builder/internal/classdesc"
	"github.com/seitarof/gen-builder/internal/classmodel"
	"github.com/seitarof/gen-builder/internal/cli"
	"github.com/seitarof/gen-builder/internal/codestyle"
	"github.com/seitarof/gen-builder/internal/logging"
	"github.com/seitarof/gen-builder/internal/render"
	"github.com/seitarof/gen-builder/internal/synth"
	"github.com/seitarof/gen-builder/internal/workspace"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	factory := classmodel.NewFactory()
	styler := codestyle.NewStyler()
	loader := classdesc.NewLoader(factory)
	synthesizer := synth.NewSynthesizer(factory, styler, logger)
	emitter := render.New(render.NewJavaFormatter(), render.NewFileWriter())
	notifier := workspace.NewConsoleNotifier(os.Stderr)

	runner := cli.NewRunner(loader, synthesizer, emitter, notifier, logger)
	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := cli.NewWatcher(runner, logger).Watch(ctx, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
