package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"reelnote/internal/content"
	"reelnote/internal/images"
	"reelnote/internal/logging"
	"reelnote/internal/note"
	"reelnote/internal/picker"
	"reelnote/internal/services"
	"reelnote/internal/services/tmdb"
	"reelnote/internal/vault"
)

const searchLimit = 10

// Client is the TMDB surface the enricher consumes.
type Client interface {
	SearchMulti(ctx context.Context, query string, limit int) ([]tmdb.SearchResult, error)
	Details(ctx context.Context, mediaType string, id int, full bool) (tmdb.Details, error)
	Metadata(ctx context.Context, mediaType string, id int, details tmdb.Details) (*tmdb.Metadata, error)
	PosterURL(details tmdb.Details) (string, error)
	DownloadImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Options control a run.
type Options struct {
	Force           bool
	GenerateContent bool
	ContentSections []string
	MaxCoverWidth   int
}

// Enricher walks notes and fills in covers, metadata, and generated content.
type Enricher struct {
	client Client
	picker picker.Picker
	logger *slog.Logger
	opts   Options
}

// New creates an Enricher.
func New(client Client, pick picker.Picker, logger *slog.Logger, opts Options) *Enricher {
	if pick == nil {
		pick = picker.Auto{}
	}
	return &Enricher{
		client: client,
		picker: pick,
		logger: logging.NewComponentLogger(logger, "enrich"),
		opts:   opts,
	}
}

// Run processes every note in the target. A user stop ends the loop early;
// notes already processed keep their results. Per-note failures never abort
// the run.
func (e *Enricher) Run(ctx context.Context, target vault.Target) (Report, error) {
	attachments, err := vault.AttachmentsDir(target.Root)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, file := range target.Files {
		result, err := e.processNote(ctx, file, attachments)
		if err != nil {
			if services.IsStop(err) {
				e.logger.Warn("run stopped by user", logging.String(logging.FieldNote, file))
				report.Stopped = true
				break
			}
			if errors.Is(err, context.Canceled) {
				return report, err
			}
			e.logger.Error("note failed",
				logging.String(logging.FieldNote, file),
				logging.Error(err))
			report.add(NoteResult{Path: file, Status: StatusFailed, Detail: err.Error()})
			continue
		}
		report.add(result)
	}
	return report, nil
}

func (e *Enricher) processNote(ctx context.Context, path, attachments string) (NoteResult, error) {
	n, err := note.Load(path)
	if err != nil {
		return NoteResult{}, err
	}
	title := n.Title()
	logger := e.logger.With(
		logging.String(logging.FieldNote, filepath.Base(path)),
		logging.String(logging.FieldTitle, title))

	needs := DetectNeeds(n)
	plan := BuildPlan(n, needs, e.opts.Force, e.opts.GenerateContent)
	if plan.Kind == PlanNoFetch {
		logger.Info("note complete, skipping")
		return NoteResult{Path: path, Title: title, Status: StatusSkipped, Detail: "already enriched"}, nil
	}

	id, mediaType := plan.ID, plan.MediaType
	if plan.Kind == PlanSearchByTitle {
		var skipDetail string
		id, mediaType, skipDetail, err = e.resolveBySearch(ctx, title, logger)
		if err != nil {
			return NoteResult{}, err
		}
		if skipDetail != "" {
			return NoteResult{Path: path, Title: title, Status: StatusSkipped, Detail: skipDetail}, nil
		}
	} else {
		logger.Info("using stored identity",
			logging.Int("tmdb_id", id),
			logging.String("media_type", mediaType))
	}

	// one details fetch serves cover, metadata, and content generation
	details, err := e.client.Details(ctx, mediaType, id, e.opts.GenerateContent)
	if err != nil {
		return NoteResult{}, err
	}

	var applied []string
	var failures []string

	if needs.Cover || e.opts.Force {
		if err := e.updateCover(ctx, n, details, attachments, logger); err != nil {
			logger.Error("cover update failed", logging.Error(err))
			failures = append(failures, fmt.Sprintf("cover: %v", err))
		} else {
			applied = append(applied, "cover")
		}
	}

	if needs.Metadata || needs.LookupID || e.opts.Force {
		meta, err := e.client.Metadata(ctx, mediaType, id, details)
		if err != nil {
			logger.Error("metadata fetch failed", logging.Error(err))
			failures = append(failures, fmt.Sprintf("metadata: %v", err))
		} else {
			n.ApplyMetadata(toNoteMetadata(meta))
			logMetadata(logger, meta)
			applied = append(applied, "metadata")
		}
	}

	if e.opts.GenerateContent {
		text := content.Build(details, mediaType, e.opts.ContentSections)
		if strings.TrimSpace(text) == "" {
			failures = append(failures, "content: nothing to render")
		} else if err := n.SetGeneratedContent(text); err != nil {
			failures = append(failures, fmt.Sprintf("content: %v", err))
		} else {
			applied = append(applied, "content")
		}
	}

	if len(applied) == 0 {
		if len(failures) > 0 {
			return NoteResult{}, errors.New(strings.Join(failures, "; "))
		}
		return NoteResult{Path: path, Title: title, Status: StatusSkipped, Detail: "nothing to update"}, nil
	}

	if err := n.Save(); err != nil {
		return NoteResult{}, err
	}

	detail := strings.Join(applied, ", ")
	if len(failures) > 0 {
		detail += "; " + strings.Join(failures, "; ")
	}
	logger.Info("note updated", logging.String("updated", strings.Join(applied, ",")))
	return NoteResult{Path: path, Title: title, Status: StatusProcessed, Detail: detail}, nil
}

// resolveBySearch finds the note's identity by title. A non-empty skipDetail
// means the note should be skipped without error.
func (e *Enricher) resolveBySearch(ctx context.Context, title string, logger *slog.Logger) (id int, mediaType, skipDetail string, err error) {
	results, err := e.client.SearchMulti(ctx, title, searchLimit)
	if err != nil {
		return 0, "", "", err
	}
	if len(results) == 0 {
		logger.Warn("no search results")
		return 0, "", "", services.Wrap(services.ErrNotFound, "enrich", "search", "no results for "+title, nil)
	}

	chosen := results[0]
	if len(results) > 1 {
		selection, err := e.picker.Pick(title, results)
		if err != nil {
			return 0, "", "", err
		}
		switch selection.Action {
		case picker.ActionSkipped:
			logger.Info("selection skipped by user")
			return 0, "", "skipped by user", nil
		case picker.ActionStopped:
			return 0, "", "", services.Wrap(services.ErrStopped, "enrich", "select", title, nil)
		case picker.ActionSelected:
			if selection.Selection == nil {
				return 0, "", "", errors.New("selection missing result")
			}
			chosen = *selection.Selection
		default:
			return 0, "", "", fmt.Errorf("unknown selection action %d", selection.Action)
		}
	}

	logger.Info("matched",
		logging.String("result", chosen.DisplayTitle()),
		logging.String("media_type", chosen.MediaType),
		logging.Int("tmdb_id", chosen.ID))
	return chosen.ID, chosen.MediaType, "", nil
}

// updateCover downloads the poster (or the note's existing external URL) and
// points the cover property at the local attachment.
func (e *Enricher) updateCover(ctx context.Context, n *note.Note, details tmdb.Details, attachments string, logger *slog.Logger) error {
	source, ok := n.ExternalCoverURL()
	if ok {
		logger.Info("downloading existing external cover", logging.String("url", source))
	} else {
		var err error
		source, err = e.client.PosterURL(details)
		if err != nil {
			return err
		}
	}

	data, err := e.client.DownloadImage(ctx, source)
	if err != nil {
		return err
	}

	localPath := filepath.Join(attachments, n.CoverFileName())
	if err := images.SaveCover(data, localPath, e.opts.MaxCoverWidth); err != nil {
		return err
	}

	relative, err := vault.RelativeTo(filepath.Dir(n.Path), localPath)
	if err != nil {
		return err
	}
	n.SetCover(relative)
	logger.Info("cover saved", logging.String("cover", relative))
	return nil
}

func toNoteMetadata(meta *tmdb.Metadata) note.Metadata {
	result := note.Metadata{
		Runtime:       meta.Runtime,
		TotalEpisodes: meta.TotalEpisodes,
		TMDBID:        &meta.TMDBID,
		TMDBType:      &meta.TMDBType,
	}
	if len(meta.GenreTags) > 0 {
		result.GenreTags = append([]string(nil), meta.GenreTags...)
	}
	return result
}

func logMetadata(logger *slog.Logger, meta *tmdb.Metadata) {
	attrs := []logging.Attr{logging.Int("tmdb_id", meta.TMDBID)}
	if meta.Runtime != nil {
		attrs = append(attrs, logging.Int("runtime", *meta.Runtime))
	}
	if meta.TotalEpisodes != nil {
		attrs = append(attrs, logging.Int("total_episodes", *meta.TotalEpisodes))
	}
	if len(meta.GenreTags) > 0 {
		attrs = append(attrs, logging.String("genres", strings.Join(meta.GenreTags, ",")))
	}
	logger.Info("metadata applied", logging.Args(attrs...)...)
}
