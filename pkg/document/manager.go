package document

import (
	"strings"
	"sync"
)

// Manager is a concurrency-safe store of open documents keyed by
// normalized URI.
type Manager struct {
	store *sync.Map // map[string]*Document
}

func NewManager() *Manager {
	return &Manager{
		store: &sync.Map{},
	}
}

func normalizeURI(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

func (m *Manager) Get(uri string) (*Document, bool) {
	v, ok := m.store.Load(normalizeURI(uri))
	if !ok {
		return nil, false
	}
	return v.(*Document), true
}

// Open stores a new document for uri, replacing any previous one.
func (m *Manager) Open(uri string, content []byte) *Document {
	doc := New(normalizeURI(uri), content)
	m.store.Store(doc.URI, doc)
	return doc
}

func (m *Manager) Close(uri string) {
	m.store.Delete(normalizeURI(uri))
}
