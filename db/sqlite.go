package db

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriver is the sqlite3 driver with the ulower function registered on
// every connection. The books title index depends on it, so every
// connection that writes books must be opened with this driver.
const SQLiteDriver = "sqlite3_literalura"

func init() {
	sql.Register(SQLiteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// Built-in LOWER only folds ASCII.
			return conn.RegisterFunc("ulower", strings.ToLower, true)
		},
	})
}
