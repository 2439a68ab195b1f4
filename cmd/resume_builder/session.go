package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/kvstore"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/persistence"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	configFile   string
	storeFlag    string
	dataDirFlag  string
	logLevelFlag string
	outputDir    string
	assumeYes    bool
)

// settings is resolved once per invocation by loadSettings.
var settings struct {
	cfg       config.Config
	log       *logrus.Logger
	confirmer Confirmer
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	flags.StringVar(&storeFlag, "store", "", "Storage backend: memory, file, sqlite, redis, postgres")
	flags.StringVar(&dataDirFlag, "data-dir", "", "Data directory for the file and sqlite backends")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVarP(&outputDir, "output-dir", "o", "", "Directory for exported files")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
}

// loadSettings resolves configuration: defaults, then the config file, then
// environment variables, then flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv(os.Getenv)
	if storeFlag != "" {
		cfg.Store = storeFlag
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings.cfg = cfg
	settings.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if assumeYes {
		settings.confirmer = AlwaysConfirm{}
	} else {
		settings.confirmer = &PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}
	}
	return nil
}

// session is an open store for the duration of one command.
type session struct {
	store *editor.Store
	kv    kvstore.Store
}

func openSession(ctx context.Context) (*session, error) {
	kv, err := kvstore.Open(ctx, settings.cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", settings.cfg.Store, err)
	}

	gw := persistence.NewGateway(kv, settings.log)
	store, err := editor.Open(ctx, gw, editor.Options{
		AutosaveDelay: settings.cfg.AutosaveDelay(),
		Strict:        settings.cfg.Strict,
		Logger:        settings.log,
	})
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return &session{store: store, kv: kv}, nil
}

// Close flushes pending edits and releases the backend.
func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.kv.Close())
}

// withSession opens a session, runs fn and closes it, reporting the first error.
func withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to save changes: %w", cerr)
		}
	}()
	return fn(s)
}

func newExporter(templateFile string) *export.Exporter {
	renderer := export.NewChromeRenderer(settings.cfg.ChromePath, settings.cfg.RenderTimeout())
	return export.NewExporter(renderer, export.Options{
		OutputDir:    settings.cfg.OutputDir,
		TemplateFile: templateFile,
		Logger:       settings.log,
	})
}

// report prints a store Result and turns a failure into a command error.
func report(cmd *cobra.Command, res types.Result) error {
	if !res.Success {
		return errors.New(res.Message)
	}
	if res.Message != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	}
	return nil
}
