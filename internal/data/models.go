// internal/data/models.go
package data

import (
	"database/sql"
	"errors"
)

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// BookStore describes the persistence operations the application needs for
// books. BookModel implements it against PostgreSQL; tests substitute
// in-memory fakes.
type BookStore interface {
	Insert(book *Book) error
	Get(id int64) (*Book, error)
	GetAll() ([]*Book, error)
	Update(book *Book) error
	Delete(id int64) error
}

// ReviewStore describes the persistence operations the application needs for
// reviews. ReviewModel implements it against PostgreSQL.
type ReviewStore interface {
	Insert(review *Review) error
	Get(id int64) (*Review, error)
	GetAllForBook(bookID int64) ([]*Review, error)
	Update(review *Review) error
	Delete(id int64) error
}

// Models is a top-level container that groups all database model types together.
// It is passed around the application via applicationDependencies so every handler
// has access to the database without importing sql directly.
type Models struct {
	Books   BookStore   // Handles all database operations for the books table
	Reviews ReviewStore // Handles all database operations for the reviews table
}

// NewModels constructs a Models value wired up to the given database connection pool.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(db *sql.DB) Models {
	return Models{
		Books:   BookModel{DB: db},
		Reviews: ReviewModel{DB: db},
	}
}

var (
	_ BookStore   = BookModel{}
	_ ReviewStore = ReviewModel{}
)
