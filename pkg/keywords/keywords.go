// Package keywords provides the case-insensitive word table the scanner
// consults when it resolves a completed identifier span. Exactly one list
// is used: the instruction/section keyword set.
package keywords

import "strings"

// Table is a case-insensitive membership set.
type Table struct {
	words map[string]struct{}
}

// New builds a table. Words are lowercased on the way in.
func New(words ...string) *Table {
	t := &Table{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		t.words[strings.ToLower(w)] = struct{}{}
	}
	return t
}

// Contains reports membership. The scanner always passes already
// lowercased text; arbitrary callers are folded here too.
func (t *Table) Contains(word string) bool {
	if t == nil {
		return false
	}
	_, ok := t.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	return len(t.words)
}

// Default returns the built-in NSIS keyword set: the block-structured
// words plus the common declarative ones. Fold behavior only depends on
// the section/function/pageex families; the rest exist so ordinary
// scripts highlight the way the original editor does.
func Default() *Table {
	return New(
		"section", "sectionend",
		"sectiongroup", "sectiongroupend",
		"sectionin", "addsize",
		"subsection", "subsectionend",
		"function", "functionend",
		"page", "pageex", "pageexend", "pagecallbacks",
		"var", "goto", "return", "call",
		"abort", "quit",
		"ifabort", "iferrors", "iffileexists", "ifrebootflag", "ifsilent",
		"insttype", "installdir", "installdirregkey",
		"langstring", "licensedata", "licensetext",
		"name", "outfile", "caption", "subcaption", "brandingtext",
		"uninstall", "uninstpage",
	)
}
