package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"binclock/internal/adapters/terminal"
	"binclock/internal/application"
	"binclock/internal/config"
	"binclock/internal/domain"
	"binclock/internal/infrastructure/i18n"
	"binclock/internal/infrastructure/timesource"
	"binclock/internal/logging"
)

// commonFlags are shared by the root and snapshot commands. Flags beat the
// config file, which beats built-in defaults.
type commonFlags struct {
	configPath string
	mode       string
	locale     string
	timezone   string
	utcOffset  int
	color      string
	ascii      bool
	noSeconds  bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Display mode: bcd or binary")
	cmd.Flags().StringVarP(&f.locale, "locale", "l", "", "UI locale (e.g. en, fr, de)")
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA timezone name (default: system)")
	cmd.Flags().IntVar(&f.utcOffset, "utc-offset", 0, "Fixed UTC offset in minutes")
	cmd.Flags().StringVar(&f.color, "color", "", "Colored output: auto, always or never")
	cmd.Flags().BoolVar(&f.ascii, "ascii", false, "Use ASCII indicators instead of Unicode")
	cmd.Flags().BoolVar(&f.noSeconds, "no-seconds", false, "Hide the seconds columns")
}

// app is the wired application: output adapters -> use cases -> renderers.
type app struct {
	cfg        config.Config
	mode       domain.Mode
	locale     string
	clock      *application.ClockService
	source     *timesource.System
	translator *i18n.Translator
	logger     *slog.Logger
}

// buildApp loads configuration, applies flag overrides and wires ports.
func buildApp(flags commonFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.timezone != "" {
		cfg.Timezone = flags.timezone
	}
	if flags.utcOffset != 0 {
		cfg.UTCOffsetMinutes = flags.utcOffset
	}
	if flags.color != "" {
		cfg.Color = flags.color
	}
	if flags.ascii {
		cfg.ASCII = true
	}
	if flags.noSeconds {
		cfg.ShowSeconds = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := domain.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	locale := cfg.Locale
	if locale == "" {
		locale = i18n.DetectLocale()
	}

	source, err := timesource.NewSystem(cfg.Timezone, cfg.UTCOffsetMinutes)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		mode:       mode,
		locale:     locale,
		clock:      application.NewClockService(source),
		source:     source,
		translator: i18n.NewTranslator("en"),
		logger:     logging.New(logging.Options{Level: cfg.LogLevel, Writer: os.Stderr}),
	}, nil
}

func (a *app) newRenderer(w io.Writer, live bool) *terminal.Renderer {
	return terminal.NewRenderer(terminal.Options{
		Writer:      w,
		Translator:  a.translator,
		Locale:      a.locale,
		Color:       a.cfg.Color,
		ASCII:       a.cfg.ASCII,
		ShowSeconds: a.cfg.ShowSeconds,
		Live:        live,
	})
}
