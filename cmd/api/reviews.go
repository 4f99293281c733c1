// cmd/api/reviews.go
// This file contains all HTTP request handlers for the reviews resource.
// Review writes also invalidate the cached book list: the aggregate list
// must never serve data older than the last mutation of any kind.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/book-review-service/internal/data"
	"github.com/aoideee/book-review-service/internal/validator"
)

// createReviewHandler handles POST /v1/books/:id/reviews.
// The review is attached to the book named in the URL. Responds 404 before
// any write if that book does not exist, 422 if the review fails validation.
func (app *applicationDependencies) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input data.ReviewInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &data.Review{
		BookID:       bookID,
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}

	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// Confirm the owning book exists before inserting anything.
	_, err = app.models.Books.Get(bookID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.models.Reviews.Insert(review)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.bookCache.Invalidate()

	err = app.writeJSON(w, http.StatusCreated, envelope{"review": review}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBookReviewsHandler handles GET /v1/books/:id/reviews.
// Responds 404 if the book does not exist; a book with no reviews yields an
// empty array, not an error.
func (app *applicationDependencies) listBookReviewsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// "No such book" and "book with no reviews" must be distinguishable, so
	// look the book up first.
	_, err = app.models.Books.Get(bookID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	reviews, err := app.models.Reviews.GetAllForBook(bookID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reviews": reviews}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showReviewHandler handles GET /v1/reviews/:id.
func (app *applicationDependencies) showReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.models.Reviews.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"review": review}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateReviewHandler handles PUT /v1/reviews/:id.
// The body replaces the review's mutable fields; the owning book can never
// be changed. Responds 404 if the review does not exist.
func (app *applicationDependencies) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.models.Reviews.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input data.ReviewInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review.ReviewerName = input.ReviewerName
	review.Rating = input.Rating
	review.Comment = input.Comment

	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Reviews.Update(review)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.bookCache.Invalidate()

	err = app.writeJSON(w, http.StatusOK, envelope{"review": review}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteReviewHandler handles DELETE /v1/reviews/:id.
// Responds 404 if no review with that ID exists, 204 No Content on success.
func (app *applicationDependencies) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.models.Reviews.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.bookCache.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}
