// Package data provides the record types and database interaction logic
// for the book review service.
package data

import (
	"database/sql"
	"errors"
	"time"

	"github.com/aoideee/book-review-service/internal/validator"
)

// Book represents a single book record stored in the database.
// It maps directly to a row in the "books" table.
type Book struct {
	ID          int64     `json:"id"`                    // Unique identifier assigned by the database
	Title       string    `json:"title"`                 // Title of the book
	Author      string    `json:"author"`                // Name of the author
	Description string    `json:"description,omitempty"` // Optional short description (omitted from JSON if empty)
	CreatedAt   time.Time `json:"created_at"`            // Timestamp when the record was created
}

// BookInput holds the fields a client supplies when creating or replacing a book.
// Description may be left empty; title and author are required.
type BookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// ValidateBook checks the client-supplied fields of book and records any
// failures on v. ID and CreatedAt are database-assigned and never validated.
func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 255, "title", "must not be more than 255 characters long")
	v.Check(book.Author != "", "author", "must be provided")
	v.Check(len(book.Author) <= 255, "author", "must not be more than 255 characters long")
}

// BookModel wraps a *sql.DB connection pool and provides methods for
// creating, reading, updating, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new book record to the database.
// After a successful insert, the database-assigned id and created_at values
// are written back into the book struct.
func (m BookModel) Insert(book *Book) error {
	query := `
		INSERT INTO books (title, author, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	// Run the INSERT and scan the auto-generated columns back into the struct.
	return m.DB.QueryRow(query, book.Title, book.Author, book.Description).
		Scan(&book.ID, &book.CreatedAt)
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(id int64) (*Book, error) {
	// Guard against obviously bad IDs before touching the database.
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, title, author, description, created_at
		FROM books
		WHERE id = $1`

	var book Book
	err := m.DB.QueryRow(query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Description,
		&book.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAll retrieves every book ordered by id.
// The result is never nil, so an empty table serializes to a JSON array.
func (m BookModel) GetAll() ([]*Book, error) {
	query := `
		SELECT id, title, author, description, created_at
		FROM books
		ORDER BY id`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	// Always close the result set when we are done to free the database connection.
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Description,
			&book.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	// Check for any error that occurred while iterating the rows.
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// Update replaces the title, author, and description of book in the database.
// The id and created_at columns are immutable and never touched.
// Returns ErrRecordNotFound if the book no longer exists.
func (m BookModel) Update(book *Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, description = $3
		WHERE id = $4`

	result, err := m.DB.Exec(query, book.Title, book.Author, book.Description, book.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete removes the book with the given id from the database. The reviews
// belonging to the book are removed by the ON DELETE CASCADE constraint on
// the reviews table. Returns ErrRecordNotFound if no matching record exists.
func (m BookModel) Delete(id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `DELETE FROM books WHERE id = $1`

	// Exec returns a Result that tells us how many rows were affected.
	result, err := m.DB.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// If no rows were deleted, the book didn't exist.
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
