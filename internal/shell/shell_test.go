package shell

import (
	"errors"
	"strings"
	"testing"

	"library-catalog/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	books []*library.Book
	users []*library.User
	err   error
	calls int
}

func (f *fakeSaver) Save(books []*library.Book, users []*library.User) error {
	f.calls++
	f.books, f.users = books, users
	return f.err
}

func runSession(t *testing.T, catalog *library.Catalog, saver Saver, input string) string {
	t.Helper()
	var out strings.Builder
	New(catalog, saver, strings.NewReader(input), &out, nil).Run()
	return out.String()
}

// The canonical session: add a book, register a user, borrow it, fail to
// borrow it again, return it, exit.
func TestFullSession(t *testing.T) {
	saver := &fakeSaver{}
	catalog := library.NewCatalog()

	input := strings.Join([]string{
		"1", "Dune", "Frank Herbert",
		"2", "Alice",
		"3", "1", "1",
		"3", "1", "1",
		"4", "1", "1",
		"7",
	}, "\n") + "\n"

	out := runSession(t, catalog, saver, input)

	assert.Contains(t, out, "Book added successfully! ID: 1")
	assert.Contains(t, out, "User registered successfully! ID: 1")
	assert.Contains(t, out, `Success: book "Dune" borrowed by "Alice"`)
	assert.Contains(t, out, "already borrowed")
	assert.Contains(t, out, `Success: book "Dune" returned by "Alice"`)
	assert.Contains(t, out, "Data saved successfully.")
	assert.Contains(t, out, "Thank you for using the library system!")

	require.Equal(t, 1, saver.calls)
	require.Len(t, saver.books, 1)
	assert.True(t, saver.books[0].Available())
	require.Len(t, saver.users, 1)
	assert.Empty(t, saver.users[0].BorrowedBookIDs())
}

func TestEmptyListingsAreDistinctNotices(t *testing.T) {
	out := runSession(t, library.NewCatalog(), &fakeSaver{}, "5\n6\n7\n")
	assert.Contains(t, out, "No books available in library.")
	assert.Contains(t, out, "No users registered.")
}

func TestBorrowWithEmptyCatalogSkipsPrompts(t *testing.T) {
	out := runSession(t, library.NewCatalog(), &fakeSaver{}, "3\n7\n")
	assert.Contains(t, out, "No books available for borrowing.")
	assert.NotContains(t, out, "Enter user id")
}

func TestMenuRepromptsOutOfRangeChoice(t *testing.T) {
	out := runSession(t, library.NewCatalog(), &fakeSaver{}, "9\n7\n")
	assert.Contains(t, out, "Please enter between 1 and 7.")
}

func TestEOFFlushesState(t *testing.T) {
	saver := &fakeSaver{}
	runSession(t, library.NewCatalog(), saver, "")
	assert.Equal(t, 1, saver.calls)
}

func TestSaveFailureIsReportedNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	out := runSession(t, library.NewCatalog(), saver, "7\n")
	assert.Contains(t, out, "Error saving data: disk full")
}

func TestNilSaverRunsInMemoryOnly(t *testing.T) {
	out := runSession(t, library.NewCatalog(), nil, "7\n")
	assert.Contains(t, out, "No store is open; this session's data was not saved.")
}
