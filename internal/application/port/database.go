package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database, opening it on first use so
// commands that never touch saved layouts never create the file.
type DatabaseProvider interface {
	// DB returns the connection, opening and migrating it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the connection if it was opened.
	Close() error

	// IsInitialized reports whether DB has opened the connection.
	IsInitialized() bool
}
