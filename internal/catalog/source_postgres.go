// internal/catalog/source_postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/lib/pq"
)

// PostgresSource reads catalog rows from a table with the columns
// id, name, description, color, image, price.
type PostgresSource struct {
	db    *sql.DB
	table string
	name  string
}

// OpenPostgresSource opens a connection pool for dsn. The pool is not pinged here;
// connection problems surface from Fetch as load failures.
func OpenPostgresSource(dsn, table string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &PostgresSource{db: db, table: table, name: redactDSN(dsn) + "#" + table}, nil
}

// NewPostgresSource wraps an existing pool. The caller keeps ownership of db.
func NewPostgresSource(db *sql.DB, table string) *PostgresSource {
	return &PostgresSource{db: db, table: table, name: "postgres#" + table}
}

func (s *PostgresSource) Fetch(ctx context.Context) ([]Item, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, color, image, price
		FROM %s
		ORDER BY id ASC
	`, pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Color, &item.Image, &item.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (s *PostgresSource) String() string {
	return s.name
}

// Close releases the pool opened by OpenPostgresSource.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "postgres"
	}
	return u.Redacted()
}
