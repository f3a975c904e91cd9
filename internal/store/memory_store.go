package store

import (
	"sync"

	"passvault/internal/domain"
)

// MemoryStore is the in-memory, ordered credential list a session edits.
// Lookups ignore case and return the first match in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	creds domain.Collection
}

// NewMemoryStore returns a MemoryStore holding a copy of creds.
func NewMemoryStore(creds domain.Collection) *MemoryStore {
	return &MemoryStore{creds: creds.Clone()}
}

// Add appends cred. Duplicate services are allowed.
func (m *MemoryStore) Add(cred domain.Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = append(m.creds, cred)
}

// Remove deletes the first credential matching service.
func (m *MemoryStore) Remove(service string) (domain.Credential, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.creds.Index(service)
	if i < 0 {
		return domain.Credential{}, false
	}
	removed := m.creds[i]
	m.creds = append(m.creds[:i:i], m.creds[i+1:]...)
	return removed, true
}

// Find returns the first credential matching service.
func (m *MemoryStore) Find(service string) (domain.Credential, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.creds.Index(service)
	if i < 0 {
		return domain.Credential{}, false
	}
	return m.creds[i], true
}

// List returns a copy of all credentials in insertion order.
func (m *MemoryStore) List() domain.Collection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds.Clone()
}

// Replace discards the current contents and holds a copy of creds instead.
func (m *MemoryStore) Replace(creds domain.Collection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds.Clone()
}

// Len returns the number of credentials.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.creds)
}

// Compile-time assertion that MemoryStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*MemoryStore)(nil)
