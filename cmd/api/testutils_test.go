// cmd/api/testutils_test.go
// Shared fixtures for handler tests: in-memory stand-ins for the database
// models and the cache backend, plus helpers for driving the full router.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aoideee/book-review-service/internal/cache"
	"github.com/aoideee/book-review-service/internal/data"
)

var errBackendDown = errors.New("connection refused")

// fakeBookStore is an in-memory data.BookStore. getAllCalls lets tests tell
// whether a list read reached the store or was served from cache.
type fakeBookStore struct {
	books       map[int64]*data.Book
	nextID      int64
	getAllCalls int
	insertCalls int
}

var _ data.BookStore = (*fakeBookStore)(nil)

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[int64]*data.Book), nextID: 1}
}

func (s *fakeBookStore) Insert(book *data.Book) error {
	s.insertCalls++
	book.ID = s.nextID
	book.CreatedAt = time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	s.nextID++
	clone := *book
	s.books[book.ID] = &clone
	return nil
}

func (s *fakeBookStore) Get(id int64) (*data.Book, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	clone := *book
	return &clone, nil
}

func (s *fakeBookStore) GetAll() ([]*data.Book, error) {
	s.getAllCalls++
	books := []*data.Book{}
	for id := int64(1); id < s.nextID; id++ {
		if book, ok := s.books[id]; ok {
			clone := *book
			books = append(books, &clone)
		}
	}
	return books, nil
}

func (s *fakeBookStore) Update(book *data.Book) error {
	if _, ok := s.books[book.ID]; !ok {
		return data.ErrRecordNotFound
	}
	clone := *book
	s.books[book.ID] = &clone
	return nil
}

func (s *fakeBookStore) Delete(id int64) error {
	if _, ok := s.books[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(s.books, id)
	return nil
}

// fakeReviewStore is an in-memory data.ReviewStore.
type fakeReviewStore struct {
	reviews     map[int64]*data.Review
	nextID      int64
	insertCalls int
}

var _ data.ReviewStore = (*fakeReviewStore)(nil)

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[int64]*data.Review), nextID: 1}
}

func (s *fakeReviewStore) Insert(review *data.Review) error {
	s.insertCalls++
	review.ID = s.nextID
	review.CreatedAt = time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	s.nextID++
	clone := *review
	s.reviews[review.ID] = &clone
	return nil
}

func (s *fakeReviewStore) Get(id int64) (*data.Review, error) {
	review, ok := s.reviews[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	clone := *review
	return &clone, nil
}

func (s *fakeReviewStore) GetAllForBook(bookID int64) ([]*data.Review, error) {
	reviews := []*data.Review{}
	for id := int64(1); id < s.nextID; id++ {
		if review, ok := s.reviews[id]; ok && review.BookID == bookID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	return reviews, nil
}

func (s *fakeReviewStore) Update(review *data.Review) error {
	if _, ok := s.reviews[review.ID]; !ok {
		return data.ErrRecordNotFound
	}
	clone := *review
	s.reviews[review.ID] = &clone
	return nil
}

func (s *fakeReviewStore) Delete(id int64) error {
	if _, ok := s.reviews[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(s.reviews, id)
	return nil
}

// fakeCacheClient is an in-memory cache.Client. deletes counts invalidations;
// setting err simulates a total backend outage.
type fakeCacheClient struct {
	entries map[string]string
	gets    int
	sets    int
	deletes int
	err     error
}

var _ cache.Client = (*fakeCacheClient)(nil)

func newFakeCacheClient() *fakeCacheClient {
	return &fakeCacheClient{entries: make(map[string]string)}
}

func (c *fakeCacheClient) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	if c.err != nil {
		return "", false, c.err
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *fakeCacheClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.entries[key] = value
	return nil
}

func (c *fakeCacheClient) Delete(ctx context.Context, key string) error {
	c.deletes++
	if c.err != nil {
		return c.err
	}
	delete(c.entries, key)
	return nil
}

// newTestApplication builds an applicationDependencies backed entirely by
// in-memory fakes, with logging discarded and rate limiting switched off.
func newTestApplication(t *testing.T) (*applicationDependencies, *fakeBookStore, *fakeReviewStore, *fakeCacheClient) {
	t.Helper()

	books := newFakeBookStore()
	reviews := newFakeReviewStore()
	client := newFakeCacheClient()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &applicationDependencies{
		config:    serverConfig{environment: "testing"},
		logger:    logger,
		models:    data.Models{Books: books, Reviews: reviews},
		bookCache: cache.NewBookList(client, books, time.Minute, logger),
	}
	return app, books, reviews, client
}

// send drives one request through the full router and middleware stack.
func send(t *testing.T, handler http.Handler, method, urlPath, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, urlPath, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// seedBook inserts a book directly into the fake store, bypassing the API.
func seedBook(t *testing.T, books *fakeBookStore, title, author string) *data.Book {
	t.Helper()

	book := &data.Book{Title: title, Author: author}
	if err := books.Insert(book); err != nil {
		t.Fatal(err)
	}
	return book
}

// seedReview inserts a review directly into the fake store, bypassing the API.
func seedReview(t *testing.T, reviews *fakeReviewStore, bookID int64, reviewer string, rating int) *data.Review {
	t.Helper()

	review := &data.Review{BookID: bookID, ReviewerName: reviewer, Rating: rating}
	if err := reviews.Insert(review); err != nil {
		t.Fatal(err)
	}
	return review
}
