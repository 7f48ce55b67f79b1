package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
)

// FileStorage keeps everything in memory and flushes each entity set to its
// own JSON file, debounced so a burst of writes costs one disk write.
type FileStorage struct {
	checkins     map[string]*internal.CheckIn
	userCheckins map[string][]*internal.CheckIn // userID -> check-ins, newest date first
	notes        map[string]*internal.Note
	contacts     map[string]*internal.Contact

	mu sync.RWMutex

	checkinsFile string
	notesFile    string
	contactsFile string

	saveCheckins chan struct{}
	saveNotes    chan struct{}
	saveContacts chan struct{}
	shutdownChan chan struct{}
	saveDelay    time.Duration

	logger internal.Logger
}

func NewFileStorage(checkinsFile, notesFile, contactsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		checkins:     make(map[string]*internal.CheckIn),
		userCheckins: make(map[string][]*internal.CheckIn),
		notes:        make(map[string]*internal.Note),
		contacts:     make(map[string]*internal.Contact),
		checkinsFile: checkinsFile,
		notesFile:    notesFile,
		contactsFile: contactsFile,
		saveCheckins: make(chan struct{}, 1),
		saveNotes:    make(chan struct{}, 1),
		saveContacts: make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := s.loadCheckIns(); err != nil {
		logger.Errorf("storage: failed to load check-ins: %v", err)
		return nil, err
	}
	if err := loadJSONFile(s.notesFile, func(n *internal.Note) { s.notes[n.ID] = n }); err != nil {
		logger.Errorf("storage: failed to load notes: %v", err)
		return nil, err
	}
	if err := loadJSONFile(s.contactsFile, func(c *internal.Contact) { s.contacts[c.ID] = c }); err != nil {
		logger.Errorf("storage: failed to load contacts: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveCheckins, "check-ins", s.flushCheckIns)
	go s.saveWorker(s.saveNotes, "notes", s.flushNotes)
	go s.saveWorker(s.saveContacts, "contacts", s.flushContacts)

	return s, nil
}

func loadJSONFile[T any](path string, add func(*T)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var items []*T
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, it := range items {
		add(it)
	}
	return nil
}

func (s *FileStorage) loadCheckIns() error {
	if err := loadJSONFile(s.checkinsFile, func(c *internal.CheckIn) {
		s.checkins[c.ID] = c
		s.userCheckins[c.UserID] = append(s.userCheckins[c.UserID], c)
	}); err != nil {
		return err
	}
	for userID := range s.userCheckins {
		sort.Slice(s.userCheckins[userID], func(i, j int) bool {
			return s.userCheckins[userID][i].Date > s.userCheckins[userID][j].Date
		})
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) flushCheckIns() error {
	s.mu.RLock()
	items := make([]*internal.CheckIn, 0, len(s.checkins))
	for _, c := range s.checkins {
		items = append(items, c)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.checkinsFile, items)
}

func (s *FileStorage) flushNotes() error {
	s.mu.RLock()
	items := make([]*internal.Note, 0, len(s.notes))
	for _, n := range s.notes {
		items = append(items, n)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.notesFile, items)
}

func (s *FileStorage) flushContacts() error {
	s.mu.RLock()
	items := make([]*internal.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		items = append(items, c)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.contactsFile, items)
}

func (s *FileStorage) saveWorker(trigger chan struct{}, what string, flush func() error) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-trigger:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := flush(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func requestSave(trigger chan struct{}) {
	select {
	case trigger <- struct{}{}:
	default:
	}
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.flushCheckIns(); err != nil {
		return err
	}
	if err := s.flushNotes(); err != nil {
		return err
	}
	return s.flushContacts()
}

// --- CheckInRepository ---

func (s *FileStorage) SaveCheckIn(ctx context.Context, c *internal.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.userCheckins[c.UserID] {
		if existing.Date == c.Date {
			return ErrDuplicateCheckIn
		}
	}

	s.checkins[c.ID] = c
	list := s.userCheckins[c.UserID]
	inserted := false
	for i, existing := range list {
		if existing.Date < c.Date {
			list = append(list[:i], append([]*internal.CheckIn{c}, list[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		list = append(list, c)
	}
	s.userCheckins[c.UserID] = list
	requestSave(s.saveCheckins)
	return nil
}

func (s *FileStorage) ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ptrs, ok := s.userCheckins[userID]
	if !ok {
		return []internal.CheckIn{}, nil
	}
	items := make([]internal.CheckIn, len(ptrs))
	for i, c := range ptrs {
		items[i] = *c
	}
	return items, nil
}

// --- NoteRepository ---

func (s *FileStorage) SaveNote(ctx context.Context, n *internal.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.ID] = n
	requestSave(s.saveNotes)
	return nil
}

func (s *FileStorage) GetNote(ctx context.Context, userID, id string) (*internal.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[id]
	if !ok || n.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *n
	return &copied, nil
}

func (s *FileStorage) ListNotes(ctx context.Context, userID string) ([]internal.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []internal.Note
	for _, n := range s.notes {
		if n.UserID == userID {
			items = append(items, *n)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if items == nil {
		items = []internal.Note{}
	}
	return items, nil
}

func (s *FileStorage) UpdateNote(ctx context.Context, n *internal.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.notes[n.ID]
	if !ok || existing.UserID != n.UserID {
		return ErrNotFound
	}
	s.notes[n.ID] = n
	requestSave(s.saveNotes)
	return nil
}

func (s *FileStorage) DeleteNote(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.notes[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(s.notes, id)
	requestSave(s.saveNotes)
	return nil
}

// --- ContactRepository ---

func (s *FileStorage) SaveContact(ctx context.Context, c *internal.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[c.ID] = c
	requestSave(s.saveContacts)
	return nil
}

func (s *FileStorage) GetContact(ctx context.Context, userID, id string) (*internal.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	if !ok || c.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *FileStorage) ListContacts(ctx context.Context, userID string) ([]internal.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []internal.Contact
	for _, c := range s.contacts {
		if c.UserID == userID {
			items = append(items, *c)
		}
	}
	sortContacts(items)
	if items == nil {
		items = []internal.Contact{}
	}
	return items, nil
}

// sortContacts orders by most recently seen first; never-seen contacts sink
// to the end, newest created first.
func sortContacts(items []internal.Contact) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].LastSeen, items[j].LastSeen
		switch {
		case a != nil && b != nil:
			return a.After(*b)
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
	})
}

func (s *FileStorage) UpdateContact(ctx context.Context, c *internal.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.contacts[c.ID]
	if !ok || existing.UserID != c.UserID {
		return ErrNotFound
	}
	s.contacts[c.ID] = c
	requestSave(s.saveContacts)
	return nil
}

func (s *FileStorage) DeleteContact(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.contacts[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(s.contacts, id)
	requestSave(s.saveContacts)
	return nil
}

// --- Compile-time assertions ---
var _ CheckInRepository = (*FileStorage)(nil)
var _ NoteRepository = (*FileStorage)(nil)
var _ ContactRepository = (*FileStorage)(nil)
