package highlight_cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/walteh/nsislex/cmd/nsislex/cliutil"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/highlight"
	"github.com/walteh/nsislex/pkg/keywords"
	"github.com/walteh/nsislex/pkg/position"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	jsonOut      bool
	keywordsPath string
}

func NewHighlightCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "highlight [globs...]",
		Short: "print the classified spans of NSIS scripts",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolVar(&me.jsonOut, "json", false, "emit spans as JSON")
	cmd.Flags().StringVar(&me.keywordsPath, "keywords", "", "HCL file overriding the built-in keyword table")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd, args)
	}

	return cmd
}

// spanRecord is the JSON shape of one classified span.
type spanRecord struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Class  string `json:"class"`
	Text   string `json:"text"`
}

func (me *Handler) Run(ctx context.Context, cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()

	table, err := cliutil.Table(fsys, me.keywordsPath)
	if err != nil {
		return err
	}

	files, err := cliutil.ExpandGlobs(fsys, args)
	if err != nil {
		return err
	}

	var errs error
	var records []spanRecord
	for _, f := range files {
		recs, err := me.highlightFile(ctx, cmd, fsys, f, table)
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("highlighting %s: %w", f, err))
			continue
		}
		records = append(records, recs...)
	}

	if me.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			errs = multierr.Append(errs, errors.Errorf("encoding spans: %w", err))
		}
	}

	return errs
}

func (me *Handler) highlightFile(ctx context.Context, cmd *cobra.Command, fsys afero.Fs, path string, table *keywords.Table) ([]spanRecord, error) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	doc := document.New(path, content)
	if err := highlight.Run(ctx, doc, table); err != nil {
		return nil, err
	}

	var records []spanRecord
	for _, sp := range highlight.Spans(doc) {
		pl := position.PlaceOf(doc, sp.Start)
		text := string(doc.Content()[sp.Start:sp.End])
		if me.jsonOut {
			records = append(records, spanRecord{
				File:   path,
				Line:   pl.Line,
				Column: pl.Column,
				Class:  sp.Class.String(),
				Text:   text,
			})
		} else {
			cmd.Printf("%s:%s %s %q\n", path, pl, sp.Class, text)
		}
	}
	return records, nil
}
