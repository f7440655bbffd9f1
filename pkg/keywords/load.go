package keywords

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// config file structure
type keywordConfig struct {
	Words []wordsBlock `hcl:"words,block"`
}

type wordsBlock struct {
	List []string `hcl:"list"`
}

// Load reads an HCL keyword file and returns the table it defines. The
// file holds one or more `words` blocks, each with a `list` attribute;
// all lists are merged:
//
//	words {
//	  list = ["section", "sectionend", "function"]
//	}
func Load(fsys afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading keyword file: %w", err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing keyword file: %s", diags.Error())
	}

	var cfg keywordConfig
	diags = gohcl.DecodeBody(hclFile.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding keyword file: %s", diags.Error())
	}

	var invalid *multierror.Error
	var words []string
	for _, block := range cfg.Words {
		for _, w := range block.List {
			if w == "" {
				invalid = multierror.Append(invalid, errors.Errorf("empty word in %s", path))
				continue
			}
			if strings.ContainsAny(w, " \t") {
				invalid = multierror.Append(invalid, errors.Errorf("word %q contains whitespace", w))
				continue
			}
			words = append(words, w)
		}
	}
	if err := invalid.ErrorOrNil(); err != nil {
		return nil, errors.Errorf("invalid keyword file %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, errors.Errorf("keyword file %s defines no words", path)
	}

	return New(words...), nil
}
