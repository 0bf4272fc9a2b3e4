package book

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_book.go -package=mocks

type ServiceAPI interface {
	CreateDatabase(ctx context.Context) error
	InsertSampleBooks(ctx context.Context) (ActionResult, error)
	UpdateSamplePrice(ctx context.Context) (ActionResult, error)
	DeleteLongBooks(ctx context.Context) (ActionResult, error)
	ReplaceBooks(ctx context.Context) (ActionResult, error)
	ListBooks(ctx context.Context) ([]Book, error)
}

type Repository interface {
	InsertBook(ctx context.Context, b Book) (Book, error)
	UpdatePriceByName(ctx context.Context, name string, price float64) (int64, error)
	DeleteBooksWithPagesOver(ctx context.Context, pages int) (int64, error)
	DeleteAllBooks(ctx context.Context) (int64, error)
	ListBooks(ctx context.Context) ([]Book, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Repository, driver.Tx, error)
}

// Opener hands out the writable database handle, creating the schema on first use.
type Opener interface {
	Writable(ctx context.Context) (Repository, error)
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(ctx context.Context) (Repository, error)

func (f OpenerFunc) Writable(ctx context.Context) (Repository, error) {
	return f(ctx)
}

type Notifier interface {
	BooksChanged(ctx context.Context, action string, rowsAffected int64) error
}

type Service struct {
	opener               Opener
	ntfy                 Notifier
	notificationsTimeout time.Duration
}

func NewService(opener Opener, ntfy Notifier, notificationsTimeout time.Duration) *Service {
	return &Service{
		opener:               opener,
		ntfy:                 ntfy,
		notificationsTimeout: notificationsTimeout,
	}
}

/* Opens the writable database, which creates the file and the Book table if they are missing. */
func (s *Service) CreateDatabase(ctx context.Context) error {
	_, err := s.opener.Writable(ctx)
	if err != nil {
		return wrapRepoErr("CreateDatabase", err)
	}
	return nil
}

/* Inserts both sample books. Nothing prevents duplicates: every call adds two more rows. */
func (s *Service) InsertSampleBooks(ctx context.Context) (ActionResult, error) {
	repo, err := s.opener.Writable(ctx)
	if err != nil {
		return ActionResult{}, wrapRepoErr("InsertSampleBooks", err)
	}

	result := ActionResult{Action: ActionInsert, Books: []Book{}}
	for _, b := range SampleBooks() {
		stored, err := repo.InsertBook(ctx, b)
		if err != nil {
			return ActionResult{}, wrapRepoErr("InsertSampleBooks", err)
		}
		result.Books = append(result.Books, stored)
		result.RowsAffected++
	}

	s.notify(ActionInsert, result.RowsAffected)
	return result, nil
}

/* Sets the fixed price on every book named UpdateName. */
func (s *Service) UpdateSamplePrice(ctx context.Context) (ActionResult, error) {
	repo, err := s.opener.Writable(ctx)
	if err != nil {
		return ActionResult{}, wrapRepoErr("UpdateSamplePrice", err)
	}

	n, err := repo.UpdatePriceByName(ctx, UpdateName, UpdatedPrice)
	if err != nil {
		return ActionResult{}, wrapRepoErr("UpdateSamplePrice", err)
	}

	s.notify(ActionUpdate, n)
	return ActionResult{Action: ActionUpdate, RowsAffected: n}, nil
}

/* Removes every book with more than PagesThreshold pages. */
func (s *Service) DeleteLongBooks(ctx context.Context) (ActionResult, error) {
	repo, err := s.opener.Writable(ctx)
	if err != nil {
		return ActionResult{}, wrapRepoErr("DeleteLongBooks", err)
	}

	n, err := repo.DeleteBooksWithPagesOver(ctx, PagesThreshold)
	if err != nil {
		return ActionResult{}, wrapRepoErr("DeleteLongBooks", err)
	}

	s.notify(ActionDelete, n)
	return ActionResult{Action: ActionDelete, RowsAffected: n}, nil
}

/*
Replaces the whole table content with ReplacementBook inside one transaction.
Failing to open the database or to begin the transaction is returned to the caller.
Any failure inside the transaction body is logged and swallowed: the transaction is
rolled back and the result reports Committed false.
*/
func (s *Service) ReplaceBooks(ctx context.Context) (ActionResult, error) {
	repo, err := s.opener.Writable(ctx)
	if err != nil {
		return ActionResult{}, wrapRepoErr("ReplaceBooks", err)
	}

	txRepo, tx, err := repo.BeginTx(ctx, nil)
	if err != nil {
		return ActionResult{}, wrapRepoErr("ReplaceBooks", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(); err != nil {
			log.Println("replacing books, rolling back:", err)
		}
	}()

	result := ActionResult{Action: ActionReplace}
	deleted, stored, err := replaceBody(ctx, txRepo)
	if err != nil {
		log.Println("replacing books:", err)
		return result, nil
	}

	err = tx.Commit()
	if err != nil {
		log.Println("replacing books, committing:", err)
		return result, nil
	}
	committed = true

	result.Committed = true
	result.RowsAffected = deleted + 1
	result.Books = []Book{stored}

	s.notify(ActionReplace, result.RowsAffected)
	return result, nil
}

func replaceBody(ctx context.Context, txRepo Repository) (int64, Book, error) {
	deleted, err := txRepo.DeleteAllBooks(ctx)
	if err != nil {
		return 0, Book{}, fmt.Errorf("deleting all books: %w", err)
	}

	stored, err := txRepo.InsertBook(ctx, ReplacementBook())
	if err != nil {
		return 0, Book{}, fmt.Errorf("inserting replacement book: %w", err)
	}

	return deleted, stored, nil
}

/* Lists every stored book and logs each one. */
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	repo, err := s.opener.Writable(ctx)
	if err != nil {
		return nil, wrapRepoErr("ListBooks", err)
	}

	books, err := repo.ListBooks(ctx)
	if err != nil {
		return nil, wrapRepoErr("ListBooks", err)
	}

	for _, b := range books {
		log.Printf("book name is %s, book author is %s, book pages is %d, book price is %.2f.", b.Name, b.Author, b.Pages, b.Price)
	}
	return books, nil
}

/* Sends the change notification in the background, it never blocks or fails an action. */
func (s *Service) notify(action string, rowsAffected int64) {
	if s.ntfy == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
		defer cancel()
		err := s.ntfy.BooksChanged(ctx, action, rowsAffected)
		if err != nil {
			log.Println("notifying", action+":", err)
		}
	}()
}

func wrapRepoErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timeout on call to %s: %w", op, err)
	}
	return ErrResponse{
		Code:    ErrResponseFromRepository.Code,
		Message: ErrResponseFromRepository.Message + err.Error(),
	}
}
