// internal/data/reviews.go
package data

import (
	"database/sql"
	"errors"
	"time"

	"github.com/aoideee/book-review-service/internal/validator"
)

// Review represents a single review record stored in the database.
// A review always belongs to exactly one book; the book_id reference is
// fixed at creation time and never changes afterwards.
type Review struct {
	ID           int64     `json:"id"`                // Unique identifier assigned by the database
	BookID       int64     `json:"book_id"`           // The book this review belongs to
	ReviewerName string    `json:"reviewer_name"`     // Display name of the reviewer
	Rating       int       `json:"rating"`            // Star rating from 1 to 5
	Comment      string    `json:"comment,omitempty"` // Optional free-form comment (omitted from JSON if empty)
	CreatedAt    time.Time `json:"created_at"`        // Timestamp when the record was created
}

// ReviewInput holds the fields a client supplies when creating or replacing
// a review. The owning book is identified by the URL, never by the body.
type ReviewInput struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// ValidateReview checks the client-supplied fields of review and records any
// failures on v. A missing rating is the zero value and fails the lower bound.
func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.ReviewerName != "", "reviewer_name", "must be provided")
	v.Check(len(review.ReviewerName) <= 255, "reviewer_name", "must not be more than 255 characters long")
	v.Check(review.Rating >= 1, "rating", "must be at least 1")
	v.Check(review.Rating <= 5, "rating", "must not be more than 5")
}

// ReviewModel wraps a *sql.DB connection pool and provides methods for
// creating, reading, updating, and deleting review records.
type ReviewModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new review record to the database. The caller is responsible
// for checking that review.BookID references an existing book first, so a
// friendly not-found error can be returned before any write is attempted.
// After a successful insert, the database-assigned id and created_at values
// are written back into the review struct.
func (m ReviewModel) Insert(review *Review) error {
	query := `
		INSERT INTO reviews (book_id, reviewer_name, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return m.DB.QueryRow(query, review.BookID, review.ReviewerName, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

// Get retrieves a single review by its primary key.
// Returns ErrRecordNotFound if no review with the given id exists.
func (m ReviewModel) Get(id int64) (*Review, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, book_id, reviewer_name, rating, comment, created_at
		FROM reviews
		WHERE id = $1`

	var review Review
	err := m.DB.QueryRow(query, id).Scan(
		&review.ID,
		&review.BookID,
		&review.ReviewerName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// GetAllForBook retrieves every review belonging to the given book, ordered
// by id. The result is never nil, so a book without reviews serializes to a
// JSON array. The idx_reviews_book_id index keeps this query cheap.
func (m ReviewModel) GetAllForBook(bookID int64) ([]*Review, error) {
	query := `
		SELECT id, book_id, reviewer_name, rating, comment, created_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY id`

	rows, err := m.DB.Query(query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.ReviewerName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update replaces the reviewer_name, rating, and comment of review in the
// database. The book_id reference is immutable and deliberately excluded
// from the SET clause. Returns ErrRecordNotFound if the review no longer
// exists.
func (m ReviewModel) Update(review *Review) error {
	query := `
		UPDATE reviews
		SET reviewer_name = $1, rating = $2, comment = $3
		WHERE id = $4`

	result, err := m.DB.Exec(query, review.ReviewerName, review.Rating, review.Comment, review.ID)
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

// Delete removes the review with the given id from the database.
// Returns ErrRecordNotFound if no matching record exists.
func (m ReviewModel) Delete(id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `DELETE FROM reviews WHERE id = $1`

	result, err := m.DB.Exec(query, id)
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
