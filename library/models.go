package library

import (
	"fmt"
	"strings"
)

// MaxBorrowLimit is the maximum number of books a user may have out at once.
const MaxBorrowLimit = 5

// Book represents a single title in the catalog. Identity, title and author
// are fixed at creation; only availability changes, and only through the
// Catalog that owns the book.
type Book struct {
	id        int
	title     string
	author    string
	available bool
}

// NewBook trims and validates title and author. New books start available.
func NewBook(id int, title, author string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return nil, fmt.Errorf("%w: book title cannot be empty", ErrValidation)
	}
	if author == "" {
		return nil, fmt.Errorf("%w: author name cannot be empty", ErrValidation)
	}
	return &Book{id: id, title: title, author: author, available: true}, nil
}

func (b *Book) ID() int         { return b.id }
func (b *Book) Title() string   { return b.title }
func (b *Book) Author() string  { return b.author }
func (b *Book) Available() bool { return b.available }

// setAvailable is reserved for the Catalog; nothing outside this package
// can flip availability directly.
func (b *Book) setAvailable(available bool) { b.available = available }

// String formats the book for listing output.
func (b *Book) String() string {
	status := "AVAILABLE"
	if !b.available {
		status = "BORROWED"
	}
	return fmt.Sprintf("ID: %03d | TITLE: %-30s | AUTHOR: %-20s | STATUS: %s",
		b.id, strings.ToUpper(b.title), strings.ToUpper(b.author), status)
}

// User represents a registered borrower and the ids of the books they
// currently hold, in borrow order.
type User struct {
	id              int
	name            string
	borrowedBookIDs []int
}

// NewUser trims and validates the name. New users start with nothing borrowed.
func NewUser(id int, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name cannot be empty", ErrValidation)
	}
	return &User{id: id, name: name}, nil
}

func (u *User) ID() int      { return u.id }
func (u *User) Name() string { return u.name }

// CanBorrowMore reports whether the user is below the borrow limit.
func (u *User) CanBorrowMore() bool { return len(u.borrowedBookIDs) < MaxBorrowLimit }

// BorrowedBookIDs returns a copy; callers cannot mutate the user's record
// through it.
func (u *User) BorrowedBookIDs() []int {
	ids := make([]int, len(u.borrowedBookIDs))
	copy(ids, u.borrowedBookIDs)
	return ids
}

// borrowBook appends without a duplicate check; the Catalog's availability
// check is what keeps the same book from being appended twice.
func (u *User) borrowBook(bookID int) {
	u.borrowedBookIDs = append(u.borrowedBookIDs, bookID)
}

// returnBook removes the first occurrence of bookID, silently doing nothing
// if it is absent. Callers check membership first.
func (u *User) returnBook(bookID int) {
	for i, id := range u.borrowedBookIDs {
		if id == bookID {
			u.borrowedBookIDs = append(u.borrowedBookIDs[:i], u.borrowedBookIDs[i+1:]...)
			return
		}
	}
}

// String formats the user for listing output.
func (u *User) String() string {
	return fmt.Sprintf("ID: %03d | NAME: %-20s | BORROWED: %d/%d",
		u.id, strings.ToUpper(u.name), len(u.borrowedBookIDs), MaxBorrowLimit)
}
