package sql

import (
	"testing"
)

func TestRebind(t *testing.T) {
	query := `SELECT list, word FROM filter_word WHERE enabled = ? AND list = ?`

	mysql := NewWithDB(nil, DialectMySQL, "")
	if got := mysql.rebind(query); got != query {
		t.Errorf("mysql rebind changed the query: %q", got)
	}

	pg := NewWithDB(nil, DialectPostgres, "")
	want := `SELECT list, word FROM filter_word WHERE enabled = $1 AND list = $2`
	if got := pg.rebind(query); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}

func TestNewWithDB_TableDefault(t *testing.T) {
	s := NewWithDB(nil, DialectMySQL, "")
	if s.table != "filter_word" {
		t.Errorf("default table = %q", s.table)
	}
	s = NewWithDB(nil, DialectMySQL, "custom_words")
	if s.table != "custom_words" {
		t.Errorf("table = %q", s.table)
	}
}
