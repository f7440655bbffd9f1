package outline_cmd

import (
	"context"
	"strconv"
	"strings"

	editorconfig "github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/walteh/nsislex/cmd/nsislex/cliutil"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/highlight"
	"github.com/walteh/nsislex/pkg/keywords"
	"gitlab.com/tozd/go/errors"
)

const defaultIndent = 4

type Handler struct {
	keywordsPath string
}

func NewOutlineCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "outline [globs...]",
		Short: "print the fold outline of NSIS scripts",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().StringVar(&me.keywordsPath, "keywords", "", "HCL file overriding the built-in keyword table")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd, args)
	}

	return cmd
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
	for _, f := range files {
		if err := me.outlineFile(ctx, cmd, fsys, f, table); err != nil {
			errs = multierr.Append(errs, errors.Errorf("outlining %s: %w", f, err))
		}
	}
	return errs
}

func (me *Handler) outlineFile(ctx context.Context, cmd *cobra.Command, fsys afero.Fs, path string, table *keywords.Table) error {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	doc := document.New(path, content)
	if err := highlight.Run(ctx, doc, table); err != nil {
		return err
	}

	indent := indentWidth(path)
	for line := 0; line < doc.LineCount(); line++ {
		lv := doc.Level(line)
		marker := ' '
		if lv.Header() {
			marker = '+'
		}
		depth := lv.Before
		if depth < 0 {
			depth = 0
		}
		cmd.Printf("%3d%c %s%s\n", lv.Before, marker, strings.Repeat(" ", depth*indent), doc.LineText(line))
	}
	return nil
}

// indentWidth resolves the display indent from the file's .editorconfig,
// falling back to four spaces per level.
func indentWidth(path string) int {
	def, err := editorconfig.GetDefinitionForFilename(path)
	if err != nil || def == nil {
		return defaultIndent
	}
	if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
		return n
	}
	return defaultIndent
}
