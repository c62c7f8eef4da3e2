// Package cli es el front end de terminal del dashboard (cobra). Opera directo sobre
// el store configurado, igual que la API.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"pet-care-dashboard/internal/app"
	"pet-care-dashboard/internal/platform/config"
	"pet-care-dashboard/internal/platform/i18n"
	"pet-care-dashboard/internal/platform/logger"
)

// session es lo que comparten los subcomandos: flags globales y el container armado
// en PersistentPreRunE.
type session struct {
	configPath string
	output     string
	lang       string
	verbose    bool

	container *app.Container
	labels    i18n.Labels
}

func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "petcare",
		Short: "Pet care dashboard",
		Long:  "petcare lleva el registro de mascotas, citas y controles de salud en un store local.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", os.Getenv("PETCARE_CONFIG"), "Path to YAML config file")
	root.PersistentFlags().StringVarP(&s.output, "output", "o", "text", "Output format: text, json or yaml")
	root.PersistentFlags().StringVar(&s.lang, "lang", "", "Label language (en, tr); default from LANG")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	root.AddCommand(
		newServeCommand(s),
		newPetCommand(s),
		newAppointmentCommand(s),
		newHealthCommand(s),
		newSummaryCommand(s),
	)
	return root
}

func (s *session) open(cmd *cobra.Command) error {
	switch s.output {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q", s.output)
	}
	if err := checkLang(s.lang); err != nil {
		return err
	}

	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	// en los comandos cortos el log de info solo estorba; serve mantiene el nivel configurado
	level := logger.ParseLevel(cfg.Log.Level)
	if !s.verbose && cmd.Name() != "serve" && level < logger.Warn {
		level = logger.Warn
	}
	log := logger.New(logger.Options{
		Level:  level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	c, err := app.Build(cmd.Context(), cfg, app.Options{Logger: log})
	if err != nil {
		return err
	}
	s.container = c
	s.labels = i18n.For(i18n.Resolve(s.lang, langFromEnv()))
	return nil
}

func (s *session) close(ctx context.Context) error {
	if s.container == nil {
		return nil
	}
	err := s.container.Close(ctx)
	s.container = nil
	return err
}

// checkLang rechaza un --lang explícito sin catálogo; vacío deja decidir a LANG.
func checkLang(lang string) error {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", lang, err)
	}
	base, _ := tag.Base()
	names := make([]string, 0, 2)
	for _, t := range i18n.Supported() {
		if b, _ := t.Base(); b == base {
			return nil
		}
		names = append(names, t.String())
	}
	return fmt.Errorf("unsupported --lang %q (available: %s)", lang, strings.Join(names, ", "))
}

// langFromEnv convierte LANG=tr_TR.UTF-8 en "tr-TR".
func langFromEnv() string {
	v := os.Getenv("LANG")
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	v = strings.ReplaceAll(v, "_", "-")
	if _, err := language.Parse(v); err != nil {
		return ""
	}
	return v
}
