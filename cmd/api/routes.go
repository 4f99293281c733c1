// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware stack.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → requestID → enableCORS → rateLimit → router
//
// Current endpoints:
//
//	GET    /v1/healthcheck          – service status and version
//	POST   /v1/books                – create a new book
//	GET    /v1/books                – list all books (cache-backed)
//	GET    /v1/books/:id            – retrieve one book with its reviews
//	PUT    /v1/books/:id            – replace an existing book
//	DELETE /v1/books/:id            – delete a book and its reviews
//	POST   /v1/books/:id/reviews    – add a review to a book
//	GET    /v1/books/:id/reviews    – list all reviews for a book
//	GET    /v1/reviews/:id          – retrieve a single review
//	PUT    /v1/reviews/:id          – replace an existing review
//	DELETE /v1/reviews/:id          – delete a review
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	// Book CRUD routes
	router.HandlerFunc(http.MethodPost, "/v1/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/v1/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/books/:id", app.deleteBookHandler)

	// Review routes. The collection is nested under its owning book; single
	// reviews get top-level routes so a client never needs the book ID to
	// address one.
	router.HandlerFunc(http.MethodPost, "/v1/books/:id/reviews", app.createReviewHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:id/reviews", app.listBookReviewsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reviews/:id", app.showReviewHandler)
	router.HandlerFunc(http.MethodPut, "/v1/reviews/:id", app.updateReviewHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/reviews/:id", app.deleteReviewHandler)

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// raised anywhere further down the chain.
	return app.recoverPanic(app.requestID(app.enableCORS(app.rateLimit(router))))
}
