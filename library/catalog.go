package library

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Catalog is the aggregate root for one running session: it exclusively owns
// the book and user collections and every mutation goes through its methods.
// It is hydrated from the Store at startup and flushed back at exit.
type Catalog struct {
	books []*Book
	users []*User
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Hydrate replaces both collections wholesale. It is meant for the
// persistence gateway at startup, before any commands run.
func (c *Catalog) Hydrate(books []*Book, users []*User) {
	c.books = books
	c.users = users
}

// Books returns the book collection in insertion order. The slice is a copy;
// the records themselves only mutate through Catalog operations.
func (c *Catalog) Books() []*Book {
	return slices.Clone(c.books)
}

// Users returns the user collection in insertion order.
func (c *Catalog) Users() []*User {
	return slices.Clone(c.users)
}

// AddBook creates a book under a fresh id and appends it to the collection.
// Ids are max existing id + 1, strictly monotonic from 1; there is no delete
// operation, so ids are never reused.
func (c *Catalog) AddBook(title, author string) (int, error) {
	book, err := NewBook(c.nextBookID(), title, author)
	if err != nil {
		return 0, err
	}
	c.books = append(c.books, book)
	return book.id, nil
}

// RegisterUser creates a user under a fresh id and appends it.
func (c *Catalog) RegisterUser(name string) (int, error) {
	user, err := NewUser(c.nextUserID(), name)
	if err != nil {
		return 0, err
	}
	c.users = append(c.users, user)
	return user.id, nil
}

// BorrowBook checks out a book to a user. Checks run in a fixed order, each
// short-circuiting with a distinct outcome and no mutation on failure:
// empty collection, user lookup, book lookup, availability, borrow limit.
func (c *Catalog) BorrowBook(userID, bookID int) (string, error) {
	if len(c.books) == 0 {
		return "", fmt.Errorf("%w: no books available for borrowing", ErrPolicy)
	}

	user := c.findUserByID(userID)
	if user == nil {
		return "", fmt.Errorf("%w: user id %d not found (registered user ids: %s)",
			ErrNotFound, userID, c.userIDList())
	}

	book := c.findBookByID(bookID)
	if book == nil {
		return "", fmt.Errorf("%w: book id %d not found (available book ids: %s)",
			ErrNotFound, bookID, c.availableBookIDList())
	}

	if !book.available {
		return "", fmt.Errorf("%w: book %q is already borrowed", ErrPolicy, book.title)
	}

	if !user.CanBorrowMore() {
		return "", fmt.Errorf("%w: user %q has reached the max limit (%d books); currently borrowed: %s",
			ErrPolicy, user.name, MaxBorrowLimit, c.borrowedTitles(user))
	}

	user.borrowBook(bookID)
	book.setAvailable(false)
	return fmt.Sprintf("book %q borrowed by %q", book.title, user.name), nil
}

// ReturnBook takes a book back from a user. Both records must resolve and
// the user must actually hold the book; nothing mutates on failure.
func (c *Catalog) ReturnBook(userID, bookID int) (string, error) {
	user := c.findUserByID(userID)
	book := c.findBookByID(bookID)
	if user == nil || book == nil {
		return "", fmt.Errorf("%w: invalid user or book id", ErrNotFound)
	}

	if !slices.Contains(user.borrowedBookIDs, bookID) {
		return "", fmt.Errorf("%w: user %q did not borrow book id %d; currently borrowed: %s",
			ErrPolicy, user.name, bookID, c.borrowedTitles(user))
	}

	user.returnBook(bookID)
	book.setAvailable(true)
	return fmt.Sprintf("book %q returned by %q", book.title, user.name), nil
}

func (c *Catalog) nextBookID() int {
	max := 0
	for _, b := range c.books {
		if b.id > max {
			max = b.id
		}
	}
	return max + 1
}

func (c *Catalog) nextUserID() int {
	max := 0
	for _, u := range c.users {
		if u.id > max {
			max = u.id
		}
	}
	return max + 1
}

func (c *Catalog) findBookByID(id int) *Book {
	for _, b := range c.books {
		if b.id == id {
			return b
		}
	}
	return nil
}

func (c *Catalog) findUserByID(id int) *User {
	for _, u := range c.users {
		if u.id == id {
			return u
		}
	}
	return nil
}

// userIDList lists every registered user id for not-found diagnostics.
func (c *Catalog) userIDList() string {
	if len(c.users) == 0 {
		return "none registered"
	}
	ids := make([]string, 0, len(c.users))
	for _, u := range c.users {
		ids = append(ids, strconv.Itoa(u.id))
	}
	return strings.Join(ids, ", ")
}

// availableBookIDList lists ids of books that can currently be borrowed.
func (c *Catalog) availableBookIDList() string {
	var ids []string
	for _, b := range c.books {
		if b.available {
			ids = append(ids, strconv.Itoa(b.id))
		}
	}
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}

// borrowedTitles lists a user's outstanding books as id:title pairs.
// Ids that no longer resolve are skipped.
func (c *Catalog) borrowedTitles(u *User) string {
	var entries []string
	for _, id := range u.borrowedBookIDs {
		if b := c.findBookByID(id); b != nil {
			entries = append(entries, fmt.Sprintf("%d:%s", b.id, b.title))
		}
	}
	if len(entries) == 0 {
		return "none"
	}
	return strings.Join(entries, ", ")
}
