package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/mfranzen/fuzzycp/pkg/config"
	"github.com/mfranzen/fuzzycp/pkg/match"
	"github.com/mfranzen/fuzzycp/pkg/names"
	"github.com/mfranzen/fuzzycp/pkg/normalize"
	"github.com/mfranzen/fuzzycp/pkg/report"
	"github.com/mfranzen/fuzzycp/pkg/resolve"
	"github.com/mfranzen/fuzzycp/pkg/transfer"
	"github.com/mfranzen/fuzzycp/pkg/ui"
)

// run executes the whole pipeline: names -> snapshot -> match -> resolve ->
// filter -> report -> optional transfer. Each stage consumes the previous
// stage's immutable output; nothing reaches backward.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	logger := zerolog.Ctx(ctx)
	printer := ui.New(ctx)

	queries, err := names.Read(cfg.NamesFile)
	if err != nil {
		return err
	}

	cands, err := resolve.Snapshot(cfg.WorkDir, cfg.Exclude, normalize.Key)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("queries", len(queries)).
		Int("candidates", len(cands)).
		Msg("snapshot complete")

	groups := resolve.Group(cands)
	matches := match.All(queries, groups.Keys(), match.QRatio)
	rows := resolve.Filter(resolve.Resolve(matches, groups), cfg.Threshold)
	logger.Debug().Int("kept", len(rows)).Int("threshold", cfg.Threshold).Msg("rows filtered")

	if err := render(cfg, rows, stdout); err != nil {
		return err
	}

	if !cfg.TransferRequested() {
		return nil
	}
	if len(rows) == 0 {
		printer.Warning("no files matched, nothing to transfer")
		return nil
	}

	mode, dest := transfer.ModeCopy, cfg.CopyDest
	if cfg.MoveDest != "" {
		mode, dest = transfer.ModeMove, cfg.MoveDest
	}

	exec := transfer.New(transfer.Options{
		Mode:      mode,
		SourceDir: cfg.WorkDir,
		DestDir:   dest,
		AssumeYes: cfg.AssumeYes,
		Prompt:    stdin,
		PromptOut: stdout,
		UI:        printer,
	})
	res, err := exec.Run(ctx, rows)
	if err != nil {
		return errors.Errorf("transferring files: %w", err)
	}
	if res.Cancelled {
		printer.Warning("transfer cancelled, no files were touched")
		return nil
	}
	printer.Success(fmt.Sprintf("%d file(s) transferred to %s", res.Transferred, dest))
	return nil
}

// render writes either the flat listing or the colorized table, with the
// disk-space total only in table mode.
func render(cfg *config.Config, rows []resolve.Row, stdout io.Writer) error {
	if cfg.ListingMode() {
		if cfg.Output == "-" {
			return report.WriteListing(stdout, rows)
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := report.WriteListing(f, rows); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Errorf("closing output file: %w", err)
		}
		return nil
	}

	if err := report.WriteTable(stdout, rows); err != nil {
		return err
	}
	if cfg.Space {
		total, err := report.TotalSize(cfg.WorkDir, rows)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(stdout, "Disk space = %s\n", report.FormatSize(total)); err != nil {
			return errors.Errorf("writing disk space total: %w", err)
		}
	}
	return nil
}
