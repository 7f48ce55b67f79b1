package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/dial"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- CheckInRepository ---

// Dial times are stored as minutes since midnight; the unique
// (user_id, date) index enforces the one-check-in-per-day rule.
func (p *PostgresStorage) SaveCheckIn(ctx context.Context, c *internal.CheckIn) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO checkins (id, user_id, date, bedtime_min, wake_min, sleep_quality, gratitude, intention, mindset, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.UserID, c.Date, c.Bedtime.TotalMinutes(), c.WakeTime.TotalMinutes(),
		c.SleepQuality, c.Gratitude, c.Intention, c.Mindset, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCheckIn
		}
		p.logger.Errorf("failed to insert check-in: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, bedtime_min, wake_min, sleep_quality, gratitude, intention, mindset, created_at
		FROM checkins WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query check-ins: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []internal.CheckIn
	for rows.Next() {
		var c internal.CheckIn
		var bedMin, wakeMin int
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &bedMin, &wakeMin, &c.SleepQuality, &c.Gratitude, &c.Intention, &c.Mindset, &c.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan check-in: %v", err)
			return nil, err
		}
		c.Bedtime = dial.FromMinutes(bedMin)
		c.WakeTime = dial.FromMinutes(wakeMin)
		items = append(items, c)
	}
	return items, rows.Err()
}

// --- NoteRepository ---

func (p *PostgresStorage) SaveNote(ctx context.Context, n *internal.Note) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO notes (id, user_id, title, author, excerpt, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.Title, n.Author, n.Excerpt, n.Tags, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert note: %v", err)
	}
	return err
}

func (p *PostgresStorage) GetNote(ctx context.Context, userID, id string) (*internal.Note, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, title, author, excerpt, tags, created_at, updated_at
		FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	var n internal.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Author, &n.Excerpt, &n.Tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to get note: %v", err)
		return nil, err
	}
	return &n, nil
}

func (p *PostgresStorage) ListNotes(ctx context.Context, userID string) ([]internal.Note, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, title, author, excerpt, tags, created_at, updated_at
		FROM notes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query notes: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := []internal.Note{}
	for rows.Next() {
		var n internal.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Author, &n.Excerpt, &n.Tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
			p.logger.Errorf("failed to scan note: %v", err)
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (p *PostgresStorage) UpdateNote(ctx context.Context, n *internal.Note) error {
	tag, err := p.pool.Exec(ctx, `UPDATE notes SET title = $1, author = $2, excerpt = $3, tags = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7`,
		n.Title, n.Author, n.Excerpt, n.Tags, n.UpdatedAt, n.ID, n.UserID)
	if err != nil {
		p.logger.Errorf("failed to update note: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteNote(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete note: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- ContactRepository ---

func (p *PostgresStorage) SaveContact(ctx context.Context, c *internal.Contact) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO contacts (id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.UserID, c.Name, c.MetAt, c.Status, c.LastSeen, c.Notes, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert contact: %v", err)
	}
	return err
}

func (p *PostgresStorage) GetContact(ctx context.Context, userID, id string) (*internal.Contact, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at
		FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	var c internal.Contact
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.MetAt, &c.Status, &c.LastSeen, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to get contact: %v", err)
		return nil, err
	}
	return &c, nil
}

func (p *PostgresStorage) ListContacts(ctx context.Context, userID string) ([]internal.Contact, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, name, met_at, status, last_seen, notes, created_at, updated_at
		FROM contacts WHERE user_id = $1 ORDER BY last_seen DESC NULLS LAST, created_at DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query contacts: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := []internal.Contact{}
	for rows.Next() {
		var c internal.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.MetAt, &c.Status, &c.LastSeen, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			p.logger.Errorf("failed to scan contact: %v", err)
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (p *PostgresStorage) UpdateContact(ctx context.Context, c *internal.Contact) error {
	tag, err := p.pool.Exec(ctx, `UPDATE contacts SET name = $1, met_at = $2, status = $3, last_seen = $4, notes = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		c.Name, c.MetAt, c.Status, c.LastSeen, c.Notes, c.UpdatedAt, c.ID, c.UserID)
	if err != nil {
		p.logger.Errorf("failed to update contact: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteContact(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete contact: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ CheckInRepository = (*PostgresStorage)(nil)
var _ NoteRepository = (*PostgresStorage)(nil)
var _ ContactRepository = (*PostgresStorage)(nil)
