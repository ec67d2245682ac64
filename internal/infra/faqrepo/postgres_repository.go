package faqrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
)

// PostgresRepository implements faq.Repository using pgx. The unique index on
// lower(question) plus ON CONFLICT DO NOTHING keeps concurrent inserts of the
// same question from ever producing duplicate rows.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the FAQ table and its uniqueness index if absent.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS medical_faq (
			id         BIGSERIAL PRIMARY KEY,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS medical_faq_question_key
		ON medical_faq (lower(question))
	`)
	return err
}

// FindExact matches the stored question text case-insensitively.
func (r *PostgresRepository) FindExact(ctx context.Context, question string) (faq.Entry, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT question, answer
		FROM medical_faq
		WHERE lower(question) = lower($1)
		LIMIT 1
	`, question)
	return scanEntry(row)
}

// FindContaining returns the first stored question containing the query.
func (r *PostgresRepository) FindContaining(ctx context.Context, query string) (faq.Entry, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT question, answer
		FROM medical_faq
		WHERE question ILIKE '%' || $1 || '%'
		LIMIT 1
	`, query)
	return scanEntry(row)
}

// ListEntries returns every stored entry.
func (r *PostgresRepository) ListEntries(ctx context.Context) ([]faq.Entry, error) {
	rows, err := r.pool.Query(ctx, `SELECT question, answer FROM medical_faq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []faq.Entry
	for rows.Next() {
		var entry faq.Entry
		if err := rows.Scan(&entry.Question, &entry.Answer); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Insert stores a new entry; an existing question is silently ignored.
func (r *PostgresRepository) Insert(ctx context.Context, entry faq.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_faq (question, answer)
		VALUES ($1, $2)
		ON CONFLICT (lower(question)) DO NOTHING
	`, entry.Question, entry.Answer)
	return err
}

// Seed bulk-inserts curated entries with ignore-on-conflict semantics.
func (r *PostgresRepository) Seed(ctx context.Context, entries []faq.Entry) error {
	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(`
			INSERT INTO medical_faq (question, answer)
			VALUES ($1, $2)
			ON CONFLICT (lower(question)) DO NOTHING
		`, entry.Question, entry.Answer)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func scanEntry(row pgx.Row) (faq.Entry, bool, error) {
	var entry faq.Entry
	if err := row.Scan(&entry.Question, &entry.Answer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return faq.Entry{}, false, nil
		}
		return faq.Entry{}, false, err
	}
	return entry, true, nil
}

var _ faq.Repository = (*PostgresRepository)(nil)
