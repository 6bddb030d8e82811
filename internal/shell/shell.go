package shell

import (
	"fmt"
	"io"

	"library-catalog/library"

	"go.uber.org/zap"
)

// Saver is the slice of the persistence gateway the shell needs at exit.
type Saver interface {
	Save(books []*library.Book, users []*library.User) error
}

// Shell drives the numbered menu over an injected reader/writer pair. It
// owns no catalog state; every command routes to the Catalog and the result
// text is written back to the user.
type Shell struct {
	catalog *library.Catalog
	saver   Saver
	prompt  *Prompter
	out     io.Writer
	log     *zap.Logger
}

// New builds a shell. saver may be nil when no store could be opened; the
// session then runs in memory only and says so on exit.
func New(catalog *library.Catalog, saver Saver, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		catalog: catalog,
		saver:   saver,
		prompt:  NewPrompter(in, out),
		out:     out,
		log:     log,
	}
}

// Run processes commands until exit is chosen or input ends. State is
// flushed to the store on the way out.
func (s *Shell) Run() {
	for {
		s.printMenu()
		choice, ok := s.prompt.IntInRange("your choice (1-7)", 1, 7)
		if !ok {
			s.flush()
			return
		}

		switch choice {
		case 1:
			s.addBook()
		case 2:
			s.registerUser()
		case 3:
			s.borrowBook()
		case 4:
			s.returnBook()
		case 5:
			s.listBooks()
		case 6:
			s.listUsers()
		case 7:
			s.flush()
			fmt.Fprintln(s.out, "\nThank you for using the library system!")
			return
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "======== LIBRARY MANAGEMENT SYSTEM ========")
	fmt.Fprintln(s.out, "| 1. Add new book     || 2. Register user  |")
	fmt.Fprintln(s.out, "| 3. Borrow a book    || 4. Return a book  |")
	fmt.Fprintln(s.out, "| 5. View all books   || 6. View all users |")
	fmt.Fprintln(s.out, "==================  7. Exit  ==============")
	fmt.Fprintln(s.out)
}

func (s *Shell) addBook() {
	title, ok := s.prompt.NonEmptyString("book title")
	if !ok {
		return
	}
	author, ok := s.prompt.NonEmptyString("author name")
	if !ok {
		return
	}

	id, err := s.catalog.AddBook(title, author)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Book added successfully! ID: %d\n", id)
}

func (s *Shell) registerUser() {
	name, ok := s.prompt.NonEmptyString("user name")
	if !ok {
		return
	}

	id, err := s.catalog.RegisterUser(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "User registered successfully! ID: %d\n", id)
}

func (s *Shell) borrowBook() {
	// Checked again inside BorrowBook; the early check just avoids
	// prompting for ids that cannot possibly resolve.
	if len(s.catalog.Books()) == 0 {
		fmt.Fprintln(s.out, "No books available for borrowing.")
		return
	}

	userID, ok := s.prompt.Int("user id")
	if !ok {
		return
	}
	bookID, ok := s.prompt.Int("book id")
	if !ok {
		return
	}

	msg, err := s.catalog.BorrowBook(userID, bookID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Success: %s\n", msg)
}

func (s *Shell) returnBook() {
	userID, ok := s.prompt.Int("user id")
	if !ok {
		return
	}
	bookID, ok := s.prompt.Int("book id to return")
	if !ok {
		return
	}

	msg, err := s.catalog.ReturnBook(userID, bookID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Success: %s\n", msg)
}

func (s *Shell) listBooks() {
	books := s.catalog.Books()
	if len(books) == 0 {
		fmt.Fprintln(s.out, "\nNo books available in library.")
		return
	}

	fmt.Fprintf(s.out, "\n=== ALL BOOKS (%d) ===\n", len(books))
	for _, b := range books {
		fmt.Fprintln(s.out, b)
	}
	fmt.Fprintln(s.out, "============================")
}

func (s *Shell) listUsers() {
	users := s.catalog.Users()
	if len(users) == 0 {
		fmt.Fprintln(s.out, "\nNo users registered.")
		return
	}

	fmt.Fprintf(s.out, "\n=== ALL USERS (%d) ===\n", len(users))
	for _, u := range users {
		fmt.Fprintln(s.out, u)
	}
	fmt.Fprintln(s.out, "============================")
}

// flush writes the session state through the saver. A failed save keeps the
// prior on-disk state and tells the operator; it never crashes the process.
func (s *Shell) flush() {
	if s.saver == nil {
		fmt.Fprintln(s.out, "No store is open; this session's data was not saved.")
		return
	}
	if err := s.saver.Save(s.catalog.Books(), s.catalog.Users()); err != nil {
		s.log.Error("saving catalog failed", zap.Error(err))
		fmt.Fprintf(s.out, "Error saving data: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Data saved successfully.")
}
