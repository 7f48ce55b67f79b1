package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/dial"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS checkins (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	date           TEXT NOT NULL,
	bedtime_min    INTEGER NOT NULL,
	wake_min       INTEGER NOT NULL,
	sleep_quality  INTEGER NOT NULL,
	gratitude      TEXT NOT NULL DEFAULT '[]',
	intention      TEXT NOT NULL DEFAULT '',
	mindset        TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMP NOT NULL,
	UNIQUE(user_id, date)
);

CREATE TABLE IF NOT EXISTS notes (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL DEFAULT '',
	excerpt     TEXT NOT NULL DEFAULT '',
	tags        TEXT NOT NULL DEFAULT '[]',
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	name        TEXT NOT NULL,
	met_at      TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	last_seen   TIMESTAMP,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkins_user_date ON checkins(user_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id);
CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_id);
`

type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite db: %v", err)
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		logger.Errorf("failed to apply sqlite schema: %v", err)
		return nil, err
	}
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// string slices are stored as JSON arrays in TEXT columns.
func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// --- CheckInRepository ---

func (s *SQLiteStorage) SaveCheckIn(ctx context.Context, c *internal.CheckIn) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM checkins WHERE user_id = ? AND date = ?`, c.UserID, c.Date).Scan(&exists)
	if err != nil {
		s.logger.Errorf("failed to check existing check-in: %v", err)
		return err
	}
	if exists > 0 {
		return ErrDuplicateCheckIn
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO checkins (id, user_id, date, bedtime_min, wake_min, sleep_quality, gratitude, intention, mindset, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Date, c.Bedtime.TotalMinutes(), c.WakeTime.TotalMinutes(),
		c.SleepQuality, encodeList(c.Gratitude), c.Intention, c.Mindset, c.CreatedAt)
	if err != nil {
		s.logger.Errorf("failed to insert check-in: %v", err)
	}
	return err
}

func (s *SQLiteStorage) ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, date, bedtime_min, wake_min, sleep_quality, gratitude, intention, mindset, created_at
		FROM checkins WHERE user_id = ? ORDER BY date DESC`, userID)
	if err != nil {
		s.logger.Errorf("failed to query check-ins: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := []internal.CheckIn{}
	for rows.Next() {
		var c internal.CheckIn
		var bedMin, wakeMin int
		var gratitude string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &bedMin, &wakeMin, &c.SleepQuality, &gratitude, &c.Intention, &c.Mindset, &c.CreatedAt); err != nil {
			s.logger.Errorf("failed to scan check-in: %v", err)
			return nil, err
		}
		c.Bedtime = dial.FromMinutes(bedMin)
		c.WakeTime = dial.FromMinutes(wakeMin)
		c.Gratitude = decodeList(gratitude)
		items = append(items, c)
	}
	return items, rows.Err()
}

// --- NoteRepository ---

func (s *SQLiteStorage) SaveNote(ctx context.Context, n *internal.Note) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO notes (id, user_id, title, author, excerpt, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, n.Author, n.Excerpt, encodeList(n.Tags), n.CreatedAt, n.UpdatedAt)
	if err != nil {
		s.logger.Errorf("failed to insert note: %v", err)
	}
	return err
}

func (s *SQLiteStorage) GetNote(ctx context.Context, userID, id string) (*internal.Note, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, user_id, title, author, excerpt, tags, created_at, updated_at
		FROM notes WHERE id = ? AND user_id = ?`, id, userID)
	var n internal.Note
	var tags string
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Author, &n.Excerpt, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to get note: %v", err)
		return nil, err
	}
	n.Tags = decodeList(tags)
	return &n, nil
}

func (s *SQLiteStorage) ListNotes(ctx context.Context, userID string) ([]internal.Note, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, title, author, excerpt, tags, created_at, updated_at
		FROM notes WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		s.logger.Errorf("failed to query notes: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := []internal.Note{}
	for rows.Next() {
		var n internal.Note
		var tags string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Author, &n.Excerpt, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
			s.logger.Errorf("failed to scan note: %v", err)
			return nil, err
		}
		n.Tags = decodeList(tags)
		items = append(items, n)
	}
	return items, rows.Err()
}

func (s *SQLiteStorage) UpdateNote(ctx context.Context, n *internal.Note) error {
	res, err := s.db.ExecContext(ctx, `UPDATE notes SET title = ?, author = ?, excerpt = ?, tags = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		n.Title, n.Author, n.Excerpt, encodeList(n.Tags), n.UpdatedAt, n.ID, n.UserID)
	if err != nil {
		s.logger.Errorf("failed to update note: %v", err)
		return err
	}
	return checkAffected(res)
}

func (s *SQLiteStorage) DeleteNote(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		s.logger.Errorf("failed to delete note: %v", err)
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- ContactRepository ---

func (s *SQLiteStorage) SaveContact(ctx context.Context, c *internal.Contact) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO contacts (id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.MetAt, c.Status, c.LastSeen, c.Notes, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		s.logger.Errorf("failed to insert contact: %v", err)
	}
	return err
}

func (s *SQLiteStorage) GetContact(ctx context.Context, userID, id string) (*internal.Contact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at
		FROM contacts WHERE id = ? AND user_id = ?`, id, userID)
	var c internal.Contact
	var lastSeen sql.NullTime
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.MetAt, &c.Status, &lastSeen, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to get contact: %v", err)
		return nil, err
	}
	if lastSeen.Valid {
		t := lastSeen.Time
		c.LastSeen = &t
	}
	return &c, nil
}

func (s *SQLiteStorage) ListContacts(ctx context.Context, userID string) ([]internal.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at
		FROM contacts WHERE user_id = ? ORDER BY last_seen IS NULL, last_seen DESC, created_at DESC`, userID)
	if err != nil {
		s.logger.Errorf("failed to query contacts: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := []internal.Contact{}
	for rows.Next() {
		var c internal.Contact
		var lastSeen sql.NullTime
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.MetAt, &c.Status, &lastSeen, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			s.logger.Errorf("failed to scan contact: %v", err)
			return nil, err
		}
		if lastSeen.Valid {
			t := lastSeen.Time
			c.LastSeen = &t
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *SQLiteStorage) UpdateContact(ctx context.Context, c *internal.Contact) error {
	res, err := s.db.ExecContext(ctx, `UPDATE contacts SET name = ?, met_at = ?, status = ?, last_seen = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		c.Name, c.MetAt, c.Status, c.LastSeen, c.Notes, c.UpdatedAt, c.ID, c.UserID)
	if err != nil {
		s.logger.Errorf("failed to update contact: %v", err)
		return err
	}
	return checkAffected(res)
}

func (s *SQLiteStorage) DeleteContact(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		s.logger.Errorf("failed to delete contact: %v", err)
		return err
	}
	return checkAffected(res)
}

// --- Compile-time assertions ---
var _ CheckInRepository = (*SQLiteStorage)(nil)
var _ NoteRepository = (*SQLiteStorage)(nil)
var _ ContactRepository = (*SQLiteStorage)(nil)
