package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/frazabot/fraza/pkg/bot"
	"github.com/frazabot/fraza/pkg/config"
	"github.com/frazabot/fraza/pkg/generator"
	"github.com/frazabot/fraza/pkg/janitor"
	"github.com/frazabot/fraza/pkg/pipeline"
	"github.com/frazabot/fraza/pkg/repository"
	"github.com/frazabot/fraza/pkg/speech"
	"github.com/frazabot/fraza/pkg/translator"
	"github.com/frazabot/fraza/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Telegram.Token, cfg.Generator.OpenAI.APIKey,
		cfg.Translator.OpenAI.APIKey, cfg.Speech.OpenAI.APIKey)

	log.Printf("[INFO] starting fraza version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] fraza failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until all workers exit
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	}, repository.Defaults{
		SourceLang: cfg.Defaults.SourceLang,
		TargetLang: cfg.Defaults.TargetLang,
		DailyQuota: cfg.Defaults.DailyQuota,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] storage close: %v", err)
		}
	}()

	gen, err := generator.New(cfg.Generator)
	if err != nil {
		return fmt.Errorf("init generator: %w", err)
	}
	trans, err := translator.New(cfg.Translator)
	if err != nil {
		return fmt.Errorf("init translator: %w", err)
	}
	synth, err := speech.New(cfg.Speech)
	if err != nil {
		return fmt.Errorf("init synthesizer: %w", err)
	}
	log.Printf("[INFO] providers: generator=%s, synthesizer=%s", gen.Name(), synth.Name())

	pipe := pipeline.New(gen, trans, synth, cfg.Speech.AudioDir)

	client := bot.NewClient(cfg.Telegram.APIURL, cfg.Telegram.Token, cfg.Telegram.PollTimeout)
	processor := bot.NewProcessor(repos.User, pipe, client)
	poller := bot.NewPoller(client, processor, cfg.Telegram.PollTimeout)

	audioDir := cfg.Speech.AudioDir
	if audioDir == "" {
		audioDir = os.TempDir()
	}
	sweeper := janitor.New(audioDir, cfg.Janitor.Interval, cfg.Janitor.MaxAge)

	srv := server.New(cfg, repos.User, revision, debug)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return poller.Run(gctx) })
	group.Go(func() error { return sweeper.Run(gctx) })
	group.Go(func() error { return srv.Run(gctx) })

	return group.Wait()
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// keep tokens and api keys out of the logs
	secrets := []string{}
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
