package inmemory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log"
	"sort"

	"github.com/bookstore-service/cmd/api/book"
	"github.com/hashicorp/go-memdb"
)

const (
	bookTable     = "book"
	sequenceTable = "sequence"
)

type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn // set only on stores returned by BeginTx
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			bookTable: {
				Name: bookTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			// Ids live in a table so that an aborted transaction also gives its ids back.
			sequenceTable: {
				Name: sequenceTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}

	errV := schema.Validate()
	if errV != nil {
		log.Println("schema validating error: ", errV)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, exc: nil}, nil
}

/* Satisfies book.Opener: the in-memory store is its own writable handle. */
func (store *InMemoryStore) Writable(ctx context.Context) (book.Repository, error) {
	return store, nil
}

type sequence struct {
	Name  string
	Value int64
}

/*
Returns the transaction to run on and the function that ends it. Inside BeginTx the shared
transaction is used and ending it is left to the caller of BeginTx.
*/
func (store *InMemoryStore) txn(write bool) (*memdb.Txn, func(commit bool)) {
	if store.exc != nil {
		return store.exc, func(bool) {}
	}
	txn := store.db.Txn(write)
	return txn, func(commit bool) {
		if commit && write {
			txn.Commit()
			return
		}
		txn.Abort()
	}
}

func nextID(txn *memdb.Txn) (int64, error) {
	raw, err := txn.First(sequenceTable, "id", bookTable)
	if err != nil {
		return 0, err
	}
	seq := sequence{Name: bookTable}
	if raw != nil {
		seq = raw.(sequence)
	}
	seq.Value++
	if err := txn.Insert(sequenceTable, seq); err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func (store *InMemoryStore) InsertBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn, end := store.txn(true)
	committed := false
	defer func() { end(committed) }()

	id, err := nextID(txn)
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	bookEntry.ID = id

	err = txn.Insert(bookTable, bookEntry)
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	committed = true
	return bookEntry, nil
}

func (store *InMemoryStore) UpdatePriceByName(ctx context.Context, name string, price float64) (int64, error) {
	txn, end := store.txn(true)
	committed := false
	defer func() { end(committed) }()

	matching, err := collect(txn, func(b book.Book) bool { return b.Name == name })
	if err != nil {
		return 0, fmt.Errorf("updating price on db: %w", err)
	}

	for _, b := range matching {
		b.Price = price
		if err := txn.Insert(bookTable, b); err != nil {
			return 0, fmt.Errorf("updating price on db: %w", err)
		}
	}

	committed = true
	return int64(len(matching)), nil
}

func (store *InMemoryStore) DeleteBooksWithPagesOver(ctx context.Context, pages int) (int64, error) {
	txn, end := store.txn(true)
	committed := false
	defer func() { end(committed) }()

	matching, err := collect(txn, func(b book.Book) bool { return b.Pages > pages })
	if err != nil {
		return 0, fmt.Errorf("deleting books by pages on db: %w", err)
	}

	for _, b := range matching {
		if err := txn.Delete(bookTable, b); err != nil {
			return 0, fmt.Errorf("deleting books by pages on db: %w", err)
		}
	}

	committed = true
	return int64(len(matching)), nil
}

func (store *InMemoryStore) DeleteAllBooks(ctx context.Context) (int64, error) {
	txn, end := store.txn(true)
	committed := false
	defer func() { end(committed) }()

	n, err := txn.DeleteAll(bookTable, "id")
	if err != nil {
		return 0, fmt.Errorf("deleting all books on db: %w", err)
	}

	committed = true
	return int64(n), nil
}

func (store *InMemoryStore) ListBooks(ctx context.Context) ([]book.Book, error) {
	txn, end := store.txn(false)
	defer end(false)

	books, err := collect(txn, func(book.Book) bool { return true })
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}
	return books, nil
}

/* Returns the books accepted by keep, ordered by id. */
func collect(txn *memdb.Txn, keep func(book.Book) bool) ([]book.Book, error) {
	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return nil, err
	}

	books := []book.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := obj.(book.Book)
		if keep(b) {
			books = append(books, b)
		}
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ID < books[j].ID
	})
	return books, nil
}

// -- Transactions --

func (store *InMemoryStore) BeginTx(ctx context.Context, opts *sql.TxOptions) (book.Repository, driver.Tx, error) {
	txn := store.db.Txn(true)
	if txn == nil {
		return nil, nil, fmt.Errorf("failed to create transaction")
	}

	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txWrapper.txn,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

// Rollback after Commit is a no-op, memdb ignores Abort on a finished transaction.
func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}
