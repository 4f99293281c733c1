// internal/cache/books.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aoideee/book-review-service/internal/data"
)

const (
	// BooksKey is the single cache key under which the aggregate book list
	// is stored.
	BooksKey = "books:all"

	// DefaultTTL is how long a cached book list lives when no explicit TTL
	// is configured. The backend evicts the entry on expiry; the service
	// never checks entry age itself.
	DefaultTTL = 300 * time.Second
)

// BookLister is the slice of the store the book list cache reads through to.
// data.BookStore satisfies it.
type BookLister interface {
	GetAll() ([]*data.Book, error)
}

// BookList decides whether the "list all books" read is served from the
// cache or the database, and drops the cached copy whenever a write could
// change it. Reads populate the cache; writes only ever delete the entry,
// and the next reader rebuilds it from the database.
type BookList struct {
	client Client
	books  BookLister
	ttl    time.Duration
	logger *slog.Logger
}

// NewBookList constructs the coordinator for the aggregate book list.
// A non-positive ttl falls back to DefaultTTL.
func NewBookList(client Client, books BookLister, ttl time.Duration, logger *slog.Logger) *BookList {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &BookList{
		client: client,
		books:  books,
		ttl:    ttl,
		logger: logger,
	}
}

// ReadAll returns the full book collection: from the cache when a
// well-formed entry is present, from the database otherwise. A database
// read refreshes the cache best-effort. The returned error is non-nil only
// when the database read fails; cache trouble of any kind is logged and
// absorbed here, never surfaced to the caller.
func (bl *BookList) ReadAll() ([]*data.Book, error) {
	// Cache operations run on a fresh context rather than the request's:
	// a caller hanging up must not cancel a populate halfway and leave the
	// entry in whatever state the backend happened to reach.
	ctx := context.Background()

	value, ok, err := bl.client.Get(ctx, BooksKey)
	if err != nil {
		bl.logCacheError("get", err)
	} else if ok {
		var books []*data.Book
		err := json.Unmarshal([]byte(value), &books)
		if err == nil {
			return books, nil
		}
		// An entry that does not decode is treated exactly like a miss;
		// the Set below replaces it with a fresh snapshot.
		bl.logCacheError("decode", err)
	}

	books, err := bl.books.GetAll()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(books)
	if err != nil {
		bl.logCacheError("encode", err)
		return books, nil
	}
	if err := bl.client.Set(ctx, BooksKey, string(payload), bl.ttl); err != nil {
		bl.logCacheError("set", err)
	}
	return books, nil
}

// Invalidate drops the cached book list so the next reader rebuilds it from
// the database. Handlers must call it after the triggering write has
// committed and before they respond, so a reader arriving after the response
// is observed cannot be served the pre-write snapshot. (A reader already
// in flight may still repopulate the old value; that window is accepted and
// bounded by the TTL.) Failure to delete is logged and absorbed: the stale
// entry then lives at most until its TTL expires.
func (bl *BookList) Invalidate() {
	if err := bl.client.Delete(context.Background(), BooksKey); err != nil {
		bl.logCacheError("delete", err)
	}
}

// logCacheError records a degraded cache interaction at warning level.
// A backend that was already down at startup stays quiet here; that state
// was announced once when the process started.
func (bl *BookList) logCacheError(op string, err error) {
	if errors.Is(err, ErrNotConnected) {
		return
	}
	bl.logger.Warn("book list cache degraded",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}
