package core

import (
	"fmt"
	"time"
)

// Book is a bibliographic record together with the number of copies the library owns
// and the number of copies currently on the shelf.
//
// The copy counters are unexported so that 0 <= AvailableCopies() <= TotalCopies() holds
// after every call. Borrow and GiveBack report failure through their boolean result only.
type Book struct {
	ISBN            ISBNString
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	DateAdded       time.Time

	totalCopies     int
	availableCopies int
}

// BuildBook creates a new Book with all copies available.
func BuildBook(
	isbn ISBNString,
	title string,
	author string,
	publisher string,
	publicationYear int,
	copies int,
	dateAdded time.Time,
) (Book, error) {

	if copies < 0 {
		return Book{}, fmt.Errorf("%w: %d", ErrInvalidCopyCount, copies)
	}

	return Book{
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		Publisher:       publisher,
		PublicationYear: publicationYear,
		DateAdded:       ToOccurredAt(dateAdded),
		totalCopies:     copies,
		availableCopies: copies,
	}, nil
}

// TotalCopies returns the number of copies the library owns.
func (b *Book) TotalCopies() int {
	return b.totalCopies
}

// AvailableCopies returns the number of copies that are not on loan.
func (b *Book) AvailableCopies() int {
	return b.availableCopies
}

// CopiesOnLoan returns the number of copies that are currently lent out.
func (b *Book) CopiesOnLoan() int {
	return b.totalCopies - b.availableCopies
}

// IsAvailable returns true if at least one copy can be lent.
func (b *Book) IsAvailable() bool {
	return b.availableCopies > 0
}

// Borrow takes one copy off the shelf. It returns false if no copy is available.
func (b *Book) Borrow() bool {
	if b.availableCopies > 0 {
		b.availableCopies--
		return true
	}

	return false
}

// GiveBack puts one copy back on the shelf. It returns false if all copies are already on the shelf.
func (b *Book) GiveBack() bool {
	if b.availableCopies < b.totalCopies {
		b.availableCopies++
		return true
	}

	return false
}

// AddCopies increases both the total and the available number of copies by n.
func (b *Book) AddCopies(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCopyCount, n)
	}

	b.totalCopies += n
	b.availableCopies += n

	return nil
}

// AvailabilityRate returns the share of copies on the shelf in the range [0,1].
func (b *Book) AvailabilityRate() float64 {
	if b.totalCopies == 0 {
		return 0.0
	}

	return float64(b.availableCopies) / float64(b.totalCopies)
}

func (b *Book) String() string {
	return fmt.Sprintf(
		"Book(isbn=%s, title='%s', author='%s', available=%t)",
		b.ISBN, b.Title, b.Author, b.IsAvailable(),
	)
}
