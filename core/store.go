package core

import (
	"fmt"
	"sync"

	"contact-editor/internal/debuglog"
	"contact-editor/ui/editor/models"
)

// ContactStore хранит контакты в памяти в стабильном порядке добавления.
// Это слой данных, с которым работает презентер: форма сообщает ему о
// сохранении и удалении, список контактов читает из него строки.
type ContactStore struct {
	mu       sync.RWMutex
	contacts []models.Contact
	byID     map[string]int
	nextID   int
}

// NewContactStore создает пустое хранилище контактов.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make([]models.Contact, 0),
		byID:     make(map[string]int),
		nextID:   1,
	}
}

// Add добавляет контакт и возвращает его с присвоенным ID.
func (s *ContactStore) Add(c models.Contact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = fmt.Sprintf("c-%03d", s.nextID)
	s.nextID++

	s.byID[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)

	debuglog.DebugLog("ContactStore.Add: added %s (%s)", c.ID, c.Name)
	return c
}

// Update заменяет контакт с тем же ID.
func (s *ContactStore) Update(c models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[c.ID]
	if !ok {
		return fmt.Errorf("contact %q not found", c.ID)
	}
	s.contacts[idx] = c

	debuglog.DebugLog("ContactStore.Update: updated %s (%s)", c.ID, c.Name)
	return nil
}

// Delete удаляет контакт по ID.
func (s *ContactStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("contact %q not found", id)
	}

	s.contacts = append(s.contacts[:idx], s.contacts[idx+1:]...)
	delete(s.byID, id)
	// Переиндексация хвоста после сдвига
	for i := idx; i < len(s.contacts); i++ {
		s.byID[s.contacts[i].ID] = i
	}

	debuglog.DebugLog("ContactStore.Delete: removed %s", id)
	return nil
}

// Get возвращает контакт по ID.
func (s *ContactStore) Get(id string) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return models.Contact{}, false
	}
	return s.contacts[idx], true
}

// At возвращает контакт по позиции в списке.
func (s *ContactStore) At(index int) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.contacts) {
		return models.Contact{}, false
	}
	return s.contacts[index], true
}

// Len возвращает количество контактов.
func (s *ContactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// List возвращает копию списка контактов в порядке добавления.
func (s *ContactStore) List() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}
