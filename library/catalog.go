package library

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// SearchField selects the book attribute SearchBooks matches against.
type SearchField string

const (
	// SearchByTitle matches the title.
	SearchByTitle SearchField = "title"

	// SearchByAuthor matches the author.
	SearchByAuthor SearchField = "author"

	// SearchByISBN matches the ISBN.
	SearchByISBN SearchField = "isbn"
)

// DefaultCopies is the number of copies a title usually enters the catalog with.
const DefaultCopies = 1

// AddBook adds a title with the given number of copies to the catalog, all of them available.
// It fails with core.ErrDuplicateKey if the ISBN is already present and with
// core.ErrInvalidCopyCount for a negative number of copies.
func (s *System) AddBook(
	ctx context.Context,
	isbn core.ISBNString,
	title string,
	author string,
	publisher string,
	publicationYear int,
	copies int,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationAddBook, map[string]string{
		attrISBN:   isbn,
		attrCopies: strconv.Itoa(copies),
	})

	if _, exists := s.books[isbn]; exists {
		err := fmt.Errorf("book %q: %w", isbn, core.ErrDuplicateKey)
		op.fail(err, nil)

		return err
	}

	now := s.clock.Now()

	book, err := core.BuildBook(isbn, title, author, publisher, publicationYear, copies, now)
	if err != nil {
		op.fail(err, nil)
		return err
	}

	s.books[isbn] = &book
	s.bookOrder = append(s.bookOrder, isbn)

	s.record(ctx, core.BuildBookAddedToCatalog(book, now))
	op.succeed(nil)

	return nil
}

// IncreaseCopies adds n copies to a title already in the catalog; both the total and the
// available count grow by n. It fails with core.ErrNotFound for an unknown ISBN and with
// core.ErrInvalidCopyCount for a negative n.
func (s *System) IncreaseCopies(ctx context.Context, isbn core.ISBNString, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ctx := s.startOperation(ctx, operationIncreaseCopies, map[string]string{
		attrISBN:   isbn,
		attrCopies: strconv.Itoa(n),
	})

	book, ok := s.books[isbn]
	if !ok {
		err := fmt.Errorf("book %q: %w", isbn, core.ErrNotFound)
		op.fail(err, nil)

		return err
	}

	if err := book.AddCopies(n); err != nil {
		op.fail(err, nil)
		return err
	}

	s.record(ctx, core.BuildBookCopiesAdded(isbn, n, book.TotalCopies(), s.clock.Now()))
	op.succeed(nil)

	return nil
}

// SearchBooks returns the books whose field contains value, ignoring case, in catalog order.
// The field name is matched case-insensitively too; an unknown field matches nothing.
func (s *System) SearchBooks(field SearchField, value string) []core.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(value)
	matches := make([]core.Book, 0)

	for _, isbn := range s.bookOrder {
		book := s.books[isbn]

		var haystack string
		switch SearchField(strings.ToLower(string(field))) {
		case SearchByTitle:
			haystack = book.Title
		case SearchByAuthor:
			haystack = book.Author
		case SearchByISBN:
			haystack = book.ISBN
		default:
			return matches
		}

		if strings.Contains(strings.ToLower(haystack), needle) {
			matches = append(matches, *book)
		}
	}

	return matches
}

// ListBooks returns the catalog in insertion order, optionally only titles with a copy on the shelf.
func (s *System) ListBooks(availableOnly bool) []core.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]core.Book, 0, len(s.bookOrder))
	for _, isbn := range s.bookOrder {
		book := s.books[isbn]
		if availableOnly && !book.IsAvailable() {
			continue
		}

		books = append(books, *book)
	}

	return books
}
