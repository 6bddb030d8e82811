package main

import (
	"fmt"
	"os"

	"library-catalog/library"

	"go.uber.org/zap"
)

const storePath = "library_data/library.db"

// Title/author pairs for the starter catalog.
var seedBooks = [][2]string{
	{"1984", "George Orwell"},
	{"Animal Farm", "George Orwell"},
	{"Dune", "Frank Herbert"},
	{"The Fellowship of the Ring", "J.R.R. Tolkien"},
	{"The Two Towers", "J.R.R. Tolkien"},
	{"The Return of the King", "J.R.R. Tolkien"},
	{"Romeo and Juliet", "William Shakespeare"},
	{"The Art of War", "Sun Tzu"},
	{"The Three Musketeers", "Alexandre Dumas"},
}

var seedUsers = []string{"Alice", "Bob", "Charlie"}

func main() {
	// Start from a clean store.
	fmt.Println("Cleaning up existing store files...")
	for _, file := range []string{storePath, storePath + "-shm", storePath + "-wal"} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: could not remove %s: %v\n", file, err)
		}
	}

	log, _ := zap.NewDevelopment()
	defer func() { _ = log.Sync() }()

	store, err := library.OpenStore(storePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	catalog := library.NewCatalog()

	added := 0
	for _, meta := range seedBooks {
		title, author := meta[0], meta[1]
		id, err := catalog.AddBook(title, author)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", title, err)
			continue
		}
		fmt.Printf("Added %q by %s (ID: %d)\n", title, author, id)
		added++
	}

	for _, name := range seedUsers {
		id, err := catalog.RegisterUser(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error registering %q: %v\n", name, err)
			continue
		}
		fmt.Printf("Registered %q (ID: %d)\n", name, id)
	}

	if err := store.Save(catalog.Books(), catalog.Users()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving seed catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSeed complete: %d books, %d users at %s\n",
		added, len(catalog.Users()), storePath)
}
