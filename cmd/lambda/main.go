package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/WilliamRagstad/lamda-calc/config"
	"github.com/WilliamRagstad/lamda-calc/untyped"
)

type options struct {
	configPath string
	color      string
	maxSteps   int
	eval       string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "read settings from `file` instead of searching for "+config.FileName)
	fs.StringVar(&o.color, "color", config.ColorAuto, "highlight output: auto, always or never")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "give up after `n` reductions per statement (0 for no limit)")
	fs.StringVar(&o.eval, "e", "", "evaluate `src` and exit")
}

// apply overrides cfg with the flags that were set explicitly in fs.
func (o *options) apply(cfg *config.Config, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Color = o.color
		case "max-steps":
			if o.maxSteps < 0 {
				err = fmt.Errorf("-max-steps must not be negative, got %d", o.maxSteps)
			}
			cfg.MaxSteps = o.maxSteps
		}
	})
	if err != nil {
		return err
	}
	switch cfg.Color {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		return fmt.Errorf("-color must be auto, always or never, got %q", cfg.Color)
	}
	return nil
}

func usage() {
	fmt.Fprint(os.Stderr, "usage: lambda [flags] [file]\n\n")
	fmt.Fprint(os.Stderr, "lambda evaluates untyped lambda calculus terms to normal form.\n")
	fmt.Fprint(os.Stderr, "With no file it starts an interactive session.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		if path, err = config.FindConfig("."); err != nil || path == "" {
			return config.Default(), err
		}
	}
	return config.LoadConfig(path)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lambda: ")
	var opts options
	opts.register(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) > 1 || (len(args) == 1 && opts.eval != "") {
		usage()
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := opts.apply(cfg, flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	ev := untyped.NewEvaluator()
	ev.MaxSteps = cfg.MaxSteps
	s := &session{ev: ev, out: os.Stdout, palette: paletteFor(cfg.Color, os.Stdout)}
	for _, path := range cfg.Prelude {
		if err := s.interruptible(func(ctx context.Context) error { return s.load(ctx, path) }); err != nil {
			log.Fatal(err)
		}
	}

	switch {
	case opts.eval != "":
		runOnce(s, opts.eval)
	case len(args) == 1:
		b, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		runOnce(s, string(b))
	default:
		runREPL(s, cfg.HistoryPath())
	}
}

func runOnce(s *session, src string) {
	if err := s.interruptible(func(ctx context.Context) error { return s.run(ctx, src) }); err != nil {
		log.Fatal(err)
	}
}
