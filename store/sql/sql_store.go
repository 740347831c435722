// Package sql provides a SQL-backed word-list store for MySQL, PostgreSQL,
// and TiDB. Lists live in a single filter_word table managed by the admin
// CRUD; the filter only ever reads it.
package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/store"
)

// Dialect represents the SQL dialect.
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectTiDB     Dialect = "tidb"
)

// Config holds the configuration for the SQL store.
type Config struct {
	Dialect         Dialect
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Table is the word table name. Empty means "filter_word".
	Table string
}

// DefaultConfig returns the default SQL store configuration.
func DefaultConfig() Config {
	return Config{
		Dialect:         DialectMySQL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		Table:           "filter_word",
	}
}

// Store implements store.Store backed by a SQL database.
//
// Expected schema:
//
//	CREATE TABLE filter_word (
//	    id      BIGINT PRIMARY KEY AUTO_INCREMENT,
//	    list    VARCHAR(32)  NOT NULL,
//	    word    VARCHAR(128) NOT NULL,
//	    enabled TINYINT(1)   NOT NULL DEFAULT 1,
//	    UNIQUE KEY uniq_list_word (list, word)
//	);
//
// The list column holds one of the dict.Wordlists list names.
type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
}

// rebind converts MySQL-style placeholders (?) to the appropriate format
// for the dialect. For PostgreSQL, converts ? to $1, $2, etc.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var result []byte
	paramIndex := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, []byte(fmt.Sprintf("%d", paramIndex))...)
			paramIndex++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}

// New creates a new SQL store.
func New(cfg Config) (*Store, error) {
	db, err := sql.Open(string(cfg.Dialect), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, contentfilter.NewStoreError("ping", "sql", contentfilter.WrapNetworkError(err))
	}

	return NewWithDB(db, cfg.Dialect, cfg.Table), nil
}

// NewWithDB creates a new SQL store with an existing database connection.
func NewWithDB(db *sql.DB, dialect Dialect, table string) *Store {
	if table == "" {
		table = "filter_word"
	}
	return &Store{
		db:      db,
		dialect: dialect,
		table:   table,
	}
}

// Name returns "sql".
func (s *Store) Name() string { return "sql" }

// listFields maps the list column values to their Wordlists fields.
func listFields(w *dict.Wordlists) map[string]*[]string {
	return map[string]*[]string{
		"profanity_high":   &w.ProfanityHigh,
		"profanity_medium": &w.ProfanityMedium,
		"profanity":        &w.Profanity,
		"threats":          &w.Threats,
		"harassment":       &w.Harassment,
		"discrimination":   &w.Discrimination,
		"scam_keywords":    &w.ScamKeywords,
		"money_keywords":   &w.MoneyKeywords,
	}
}

// LoadWordlists loads all enabled words from the word table.
func (s *Store) LoadWordlists(ctx context.Context) (dict.Wordlists, error) {
	var lists dict.Wordlists
	fields := listFields(&lists)

	query := s.rebind(fmt.Sprintf(
		`SELECT list, word FROM %s WHERE enabled = ? ORDER BY list, id`, s.table))

	rows, err := s.db.QueryContext(ctx, query, true)
	if err != nil {
		return dict.Wordlists{}, contentfilter.NewStoreError("load", "sql", contentfilter.WrapNetworkError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var list, word string
		if err := rows.Scan(&list, &word); err != nil {
			return dict.Wordlists{}, contentfilter.NewStoreError("load", "sql", err)
		}

		target, ok := fields[list]
		if !ok {
			return dict.Wordlists{}, fmt.Errorf("%w: %q", contentfilter.ErrUnknownList, list)
		}
		*target = append(*target, word)
	}
	if err := rows.Err(); err != nil {
		return dict.Wordlists{}, contentfilter.NewStoreError("load", "sql", contentfilter.WrapNetworkError(err))
	}

	return lists, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return contentfilter.NewStoreError("ping", "sql", contentfilter.WrapNetworkError(err))
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)
