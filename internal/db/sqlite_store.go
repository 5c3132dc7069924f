package db

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/soaringjerry/ipss-selfcheck/internal/models"
	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

// timeLayout is fixed width so text ordering in SQLite matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// JournalStore keeps a local audit trail of submit attempts in SQLite.
type JournalStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenJournal opens (creating if needed) the journal database at path and migrates it.
func OpenJournal(ctx context.Context, path string, logger *zap.Logger) (*JournalStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.ToSlash(path))
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewJournalStore(ctx, sqlDB, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// NewJournalStore wraps an open database, applying pragmas and migrations.
func NewJournalStore(ctx context.Context, db *sql.DB, logger *zap.Logger) (*JournalStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &JournalStore{db: db, logger: logger}, nil
}

func (s *JournalStore) Close() error { return s.db.Close() }

// RecordAttempt stores a, replacing the email address with its digest.
func (s *JournalStore) RecordAttempt(ctx context.Context, a services.Attempt) error {
	row := models.AttemptRow{
		ID:          a.ID,
		At:          a.At.UTC(),
		Outcome:     string(a.State),
		Total:       a.Total,
		Tier:        string(a.Tier),
		EmailDigest: EmailDigest(a.Email),
		Message:     a.Message,
		RequestID:   a.RequestID,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, at, outcome, total, tier, email_digest, message, request_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.At.Format(timeLayout), row.Outcome, row.Total, row.Tier, row.EmailDigest, row.Message, row.RequestID)
	if err != nil {
		return fmt.Errorf("insert attempt %s: %w", row.ID, err)
	}
	s.logger.Debug("attempt journaled", zap.String("attempt_id", row.ID), zap.String("outcome", row.Outcome))
	return nil
}

// ListAttempts returns the most recent attempts first. limit <= 0 means no limit.
func (s *JournalStore) ListAttempts(ctx context.Context, limit int) ([]models.AttemptRow, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, at, outcome, total, tier, email_digest, message, request_id
		 FROM attempts ORDER BY at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []models.AttemptRow
	for rows.Next() {
		var (
			r  models.AttemptRow
			at string
		)
		if err := rows.Scan(&r.ID, &at, &r.Outcome, &r.Total, &r.Tier, &r.EmailDigest, &r.Message, &r.RequestID); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if r.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			s.logger.Warn("bad attempt timestamp", zap.String("attempt_id", r.ID), zap.Error(err))
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// EmailDigest is the hex BLAKE2b-256 of the lower-cased, trimmed address.
func EmailDigest(email string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

var _ services.AttemptRecorder = (*JournalStore)(nil)
var _ services.AttemptLister = (*JournalStore)(nil)
