package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bookstore-service/cmd/api/book"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite3  = "sqlite3"  // mattn/go-sqlite3, cgo
	DriverSQLite   = "sqlite"   // modernc.org/sqlite, pure Go
	DriverPostgres = "postgres" // lib/pq
)

//go:embed migrations
var migrationsFS embed.FS

func init() {
	// sqlx does not know the modernc driver name, it takes the same placeholders as sqlite3.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

type DBTX interface {
	sqlx.ExtContext
}

type Store struct {
	db  *sqlx.DB
	exc DBTX
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:  db,
		exc: db,
	}
}

/* Returns the underlying connection pool. */
func (store *Store) DB() *sqlx.DB {
	return store.db
}

/* Returns a store whose statements all run inside one transaction, and the transaction itself. */
func (store *Store) BeginTx(ctx context.Context, opts *sql.TxOptions) (book.Repository, driver.Tx, error) {
	tx, err := store.db.BeginTxx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	txStore := &Store{
		db:  store.db,
		exc: tx,
	}
	return txStore, tx, nil
}

/* Connects to the database through a driver name and a data source name and checks it answers. */
func ConnectDb(ctx context.Context, driverName, dsn string) (*sqlx.DB, error) {
	switch driverName {
	case DriverSQLite3, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("connecting to db: unsupported driver %q", driverName)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	if isSQLite(driverName) {
		// A single connection serializes writers and keeps ":memory:" databases alive.
		db.SetMaxOpenConns(1)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	log.Printf("Successfully connected to %s database %q", driverName, dsn)
	return db, nil
}

/*
Migrates the schema to the given version. Migrations are read from path when it is set,
otherwise from the ones embedded for the store's dialect.
*/
func MigrationUp(store *Store, version uint, path string) error {
	dbName := store.db.DriverName()
	dbDriver, err := migrationDriver(store)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	var m *migrate.Migrate
	if path != "" {
		m, err = migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", path), dbName, dbDriver)
	} else {
		src, srcErr := iofs.New(migrationsFS, "migrations/"+dialect(dbName))
		if srcErr != nil {
			return fmt.Errorf("migrating up: %w", srcErr)
		}
		m, err = migrate.NewWithInstance("iofs", src, dbName, dbDriver)
	}
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Migrate(version)
	if errors.Is(err, os.ErrNotExist) {
		// Versions past the last migration have no upgrade path, the newest known schema is used.
		log.Printf("no migration for database version %d, applying the available ones: %v", version, err)
		err = m.Up()
	}
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

func migrationDriver(store *Store) (migratedb.Driver, error) {
	switch store.db.DriverName() {
	case DriverSQLite3:
		return sqlite3.WithInstance(store.db.DB, &sqlite3.Config{})
	case DriverSQLite:
		return sqlite.WithInstance(store.db.DB, &sqlite.Config{})
	case DriverPostgres:
		return postgres.WithInstance(store.db.DB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migration driver for %q", store.db.DriverName())
	}
}

func isSQLite(driverName string) bool {
	return driverName == DriverSQLite3 || driverName == DriverSQLite
}

func dialect(driverName string) string {
	if isSQLite(driverName) {
		return "sqlite"
	}
	return driverName
}

/* Stores the book and returns it with the id assigned by the database. */
func (store *Store) InsertBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	sqlStatement := store.exc.Rebind(`
	INSERT INTO Book (name, author, pages, price)
	VALUES (?, ?, ?, ?)
	RETURNING id`)
	createdRow := store.exc.QueryRowxContext(ctx, sqlStatement, bookEntry.Name, bookEntry.Author, bookEntry.Pages, bookEntry.Price)
	err := createdRow.Scan(&bookEntry.ID)
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	return bookEntry, nil
}

/* Sets the price of every book with that exact name. Returns how many rows changed. */
func (store *Store) UpdatePriceByName(ctx context.Context, name string, price float64) (int64, error) {
	sqlStatement := store.exc.Rebind(`
	UPDATE Book
	SET price = ?
	WHERE name = ?`)
	result, err := store.exc.ExecContext(ctx, sqlStatement, price, name)
	if err != nil {
		return 0, fmt.Errorf("updating price on db: %w", err)
	}
	return rowsAffected(result, "updating price on db")
}

/* Deletes every book with more than 'pages' pages. */
func (store *Store) DeleteBooksWithPagesOver(ctx context.Context, pages int) (int64, error) {
	sqlStatement := store.exc.Rebind(`
	DELETE FROM Book
	WHERE pages > ?`)
	result, err := store.exc.ExecContext(ctx, sqlStatement, pages)
	if err != nil {
		return 0, fmt.Errorf("deleting books by pages on db: %w", err)
	}
	return rowsAffected(result, "deleting books by pages on db")
}

func (store *Store) DeleteAllBooks(ctx context.Context) (int64, error) {
	result, err := store.exc.ExecContext(ctx, `DELETE FROM Book`)
	if err != nil {
		return 0, fmt.Errorf("deleting all books on db: %w", err)
	}
	return rowsAffected(result, "deleting all books on db")
}

/* Returns every stored book in insertion order. */
func (store *Store) ListBooks(ctx context.Context) ([]book.Book, error) {
	bookslist := []book.Book{}
	err := sqlx.SelectContext(ctx, store.exc, &bookslist, `SELECT id, name, author, pages, price FROM Book ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}
	return bookslist, nil
}

func rowsAffected(result sql.Result, doing string) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s, counting rows: %w", doing, err)
	}
	return n, nil
}
