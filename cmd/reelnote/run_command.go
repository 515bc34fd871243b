package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelnote/internal/config"
	"reelnote/internal/enrich"
	"reelnote/internal/logging"
	"reelnote/internal/picker"
	"reelnote/internal/services/tmdb"
	"reelnote/internal/vault"
)

func newRunCommand(configFlag *string) *cobra.Command {
	var (
		force           bool
		generateContent bool
		sectionsFlag    string
	)

	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Enrich the notes at the given vault or file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(strings.TrimSpace(*configFlag))
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			target, err := vault.Resolve(args[0])
			if err != nil {
				return err
			}
			release, err := vault.Lock(target.Root)
			if err != nil {
				return err
			}
			defer release()

			client, err := tmdb.New(cfg.TMDB.APIKey,
				tmdb.WithBaseURL(cfg.TMDB.BaseURL),
				tmdb.WithImageBaseURL(cfg.TMDB.ImageBaseURL),
				tmdb.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			sections := cfg.Content.Sections
			if trimmed := strings.TrimSpace(sectionsFlag); trimmed != "" {
				sections = splitSections(trimmed)
			}

			tty := stdoutIsTerminal()
			enricher := enrich.New(client, newPicker(tty), logger, enrich.Options{
				Force:           force,
				GenerateContent: generateContent,
				ContentSections: sections,
				MaxCoverWidth:   cfg.Covers.MaxWidth,
			})

			logger.Info("run starting",
				logging.Int("notes", len(target.Files)),
				logging.Bool("force", force),
				logging.Bool("generate_content", generateContent))

			report, err := enricher.Run(cmd.Context(), target)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(report, tty))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Refresh covers and metadata even when present")
	cmd.Flags().BoolVarP(&generateContent, "generate-content", "g", false, "Generate the marker-delimited content region")
	cmd.Flags().StringVar(&sectionsFlag, "content-sections", "", "Comma-separated content sections (overview,info,seasons)")

	return cmd
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// newPicker returns the interactive selector on a terminal and the
// first-match fallback everywhere else.
func newPicker(tty bool) picker.Picker {
	if tty {
		return picker.Interactive{}
	}
	return picker.Auto{}
}

func splitSections(value string) []string {
	parts := strings.Split(value, ",")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}
