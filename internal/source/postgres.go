package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx operations the PostgresSource needs.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource stores all sheets in a single generic table. Cells are
// kept as text in row order; position preserves append order so reads
// return rows in the same order they were written.
type PostgresSource struct {
	db DB
}

// NewPostgres creates a PostgresSource backed by db.
func NewPostgres(db DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Migrate creates the backing table if it does not exist.
func (s *PostgresSource) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sheet_rows (
			id       UUID PRIMARY KEY,
			sheet    TEXT NOT NULL,
			position BIGSERIAL,
			cells    TEXT[] NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate sheet_rows: %w", err)
	}
	_, err = s.db.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS sheet_rows_sheet_idx ON sheet_rows (sheet, position)`)
	if err != nil {
		return fmt.Errorf("migrate sheet_rows index: %w", err)
	}
	return nil
}

// Rows returns every row of the named sheet in append order.
func (s *PostgresSource) Rows(ctx context.Context, sheet string) ([]Row, error) {
	rows, err := s.db.Query(ctx,
		`SELECT cells FROM sheet_rows WHERE sheet = $1 ORDER BY position`, sheet)
	if err != nil {
		return nil, fmt.Errorf("query sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan sheet %q: %w", sheet, err)
		}
		row := make(Row, len(cells))
		for i, c := range cells {
			row[i] = ParseCell(c)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sheet %q: %w", sheet, err)
	}
	return result, nil
}

// Append inserts one row at the end of the named sheet.
func (s *PostgresSource) Append(ctx context.Context, sheet string, row Row) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cell.Text()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO sheet_rows (id, sheet, cells) VALUES ($1, $2, $3)`,
		uuid.NewString(), sheet, cells)
	if err != nil {
		return fmt.Errorf("append to sheet %q: %w", sheet, err)
	}
	return nil
}
