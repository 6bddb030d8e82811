package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Store persists the catalog's two collections in a SQLite file. The whole
// state is loaded once at startup and written once at shutdown; the store is
// never touched while commands run.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

const schemaVersion = 1

// OpenStore opens (or creates) the SQLite store at path and applies schema
// migrations. The containing directory is created so first runs succeed.
func OpenStore(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create store dir: %v", ErrPersistence, err)
		}
	}

	// Enable busy_timeout and foreign keys.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrPersistence, err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS books (
            id INTEGER PRIMARY KEY,
            title TEXT NOT NULL,
            author TEXT NOT NULL,
            available BOOLEAN NOT NULL DEFAULT 1
        );`,
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY,
            name TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS user_borrows (
            user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            position INTEGER NOT NULL,
            book_id INTEGER NOT NULL REFERENCES books(id),
            PRIMARY KEY (user_id, position)
        );`,
	}
	for _, stmt := range ddl {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}

// Save rewrites the full catalog state in one transaction. On failure the
// transaction rolls back and the previous on-disk state is left intact.
func (s *Store) Save(books []*Book, users []*User) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin save: %v", ErrPersistence, err)
	}
	defer tx.Rollback()

	// Borrow rows reference both tables, so they go first.
	for _, table := range []string{"user_borrows", "users", "books"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("%w: clear %s: %v", ErrPersistence, table, err)
		}
	}

	for _, b := range books {
		if _, err := tx.Exec(`INSERT INTO books(id,title,author,available) VALUES(?,?,?,?)`,
			b.id, b.title, b.author, b.available); err != nil {
			return fmt.Errorf("%w: save book %d: %v", ErrPersistence, b.id, err)
		}
	}
	for _, u := range users {
		if _, err := tx.Exec(`INSERT INTO users(id,name) VALUES(?,?)`, u.id, u.name); err != nil {
			return fmt.Errorf("%w: save user %d: %v", ErrPersistence, u.id, err)
		}
		for pos, bookID := range u.borrowedBookIDs {
			if _, err := tx.Exec(`INSERT INTO user_borrows(user_id,position,book_id) VALUES(?,?,?)`,
				u.id, pos, bookID); err != nil {
				return fmt.Errorf("%w: save borrow %d->%d: %v", ErrPersistence, u.id, bookID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit save: %v", ErrPersistence, err)
	}
	s.log.Info("catalog saved", zap.Int("books", len(books)), zap.Int("users", len(users)))
	return nil
}

// Load reads both collections, preserving collection order and each user's
// borrow order. A fresh store yields two empty collections.
func (s *Store) Load() ([]*Book, []*User, error) {
	rows, err := s.db.Query(`SELECT id,title,author,available FROM books ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load books: %v", ErrPersistence, err)
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.id, &b.title, &b.author, &b.available); err != nil {
			return nil, nil, fmt.Errorf("%w: scan book: %v", ErrPersistence, err)
		}
		books = append(books, &b)
	}

	urows, err := s.db.Query(`SELECT id,name FROM users ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load users: %v", ErrPersistence, err)
	}
	defer urows.Close()

	var users []*User
	for urows.Next() {
		var u User
		if err := urows.Scan(&u.id, &u.name); err != nil {
			return nil, nil, fmt.Errorf("%w: scan user: %v", ErrPersistence, err)
		}
		users = append(users, &u)
	}

	for _, u := range users {
		if err := s.loadBorrows(u); err != nil {
			return nil, nil, err
		}
	}

	s.log.Info("catalog loaded", zap.Int("books", len(books)), zap.Int("users", len(users)))
	return books, users, nil
}

func (s *Store) loadBorrows(u *User) error {
	rows, err := s.db.Query(`SELECT book_id FROM user_borrows WHERE user_id=? ORDER BY position`, u.id)
	if err != nil {
		return fmt.Errorf("%w: load borrows for user %d: %v", ErrPersistence, u.id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int
		if err := rows.Scan(&bookID); err != nil {
			return fmt.Errorf("%w: scan borrow for user %d: %v", ErrPersistence, u.id, err)
		}
		u.borrowedBookIDs = append(u.borrowedBookIDs, bookID)
	}
	return nil
}
