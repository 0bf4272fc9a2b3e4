package book_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bookstore-service/cmd/api/book"
	bookmock "github.com/bookstore-service/cmd/api/book/mocks"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

var notificationsTimeout = 1 * time.Second

// fakeTx records what the service did with the transaction.
type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit() error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.rolledBack = true
	return nil
}

func newService(ctrl *gomock.Controller) (*book.Service, *bookmock.MockRepository, *bookmock.MockNotifier) {
	mockRepo := bookmock.NewMockRepository(ctrl)
	mockNtfy := bookmock.NewMockNotifier(ctrl)
	opener := book.OpenerFunc(func(context.Context) (book.Repository, error) {
		return mockRepo, nil
	})
	return book.NewService(opener, mockNtfy, notificationsTimeout), mockRepo, mockNtfy
}

// expectNotification makes the mock notifier release wg once it is called.
func expectNotification(mockNtfy *bookmock.MockNotifier, wg *sync.WaitGroup, action string, rows int64) {
	wg.Add(1)
	mockNtfy.EXPECT().BooksChanged(gomock.Any(), action, rows).DoAndReturn(func(_ context.Context, _ string, _ int64) error {
		defer wg.Done()
		return nil
	})
}

func TestCreateDatabase(t *testing.T) {
	t.Run("opens the writable database", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockOpener := bookmock.NewMockOpener(ctrl)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockOpener, nil, notificationsTimeout)

		mockOpener.EXPECT().Writable(gomock.Any()).Return(mockRepo, nil)

		err := mS.CreateDatabase(ctx)
		is.NoErr(err)
	})

	t.Run("expected error from opener", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockOpener := bookmock.NewMockOpener(ctrl)
		mS := book.NewService(mockOpener, nil, notificationsTimeout)

		mockOpener.EXPECT().Writable(gomock.Any()).Return(nil, errors.New("disk full"))

		err := mS.CreateDatabase(ctx)
		is.True(errors.Is(err, book.ErrResponseFromRepository))
		is.Equal(err.Error(), book.ErrResponseFromRepository.Message+"disk full")
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockOpener := bookmock.NewMockOpener(ctrl)
		mS := book.NewService(mockOpener, nil, notificationsTimeout)

		mockOpener.EXPECT().Writable(gomock.Any()).Return(nil, context.DeadlineExceeded)

		err := mS.CreateDatabase(ctx)
		is.True(errors.Is(err, context.DeadlineExceeded))
		is.Equal(err.Error(), "timeout on call to CreateDatabase: "+context.DeadlineExceeded.Error())
	})
}

func TestInsertSampleBooks(t *testing.T) {
	t.Run("inserts both sample books without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, mockNtfy := newService(ctrl)

		var nextID int64
		mockRepo.EXPECT().InsertBook(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, b book.Book) (book.Book, error) {
			nextID++
			b.ID = nextID
			return b, nil
		})

		wg := sync.WaitGroup{}
		expectNotification(mockNtfy, &wg, book.ActionInsert, 2)

		result, err := mS.InsertSampleBooks(ctx)
		is.NoErr(err)
		is.Equal(result.Action, book.ActionInsert)
		is.Equal(result.RowsAffected, int64(2))
		is.Equal(len(result.Books), 2)

		samples := book.SampleBooks()
		for i, b := range result.Books {
			is.Equal(b.ID, int64(i+1))
			samples[i].ID = b.ID
			is.Equal(b, samples[i])
		}

		wg.Wait()
	})

	t.Run("stops at the first failing insert", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		dbErr := errors.New("fake error from database")
		mockRepo.EXPECT().InsertBook(gomock.Any(), gomock.Any()).Return(book.Book{}, dbErr)

		result, err := mS.InsertSampleBooks(ctx)
		is.True(errors.Is(err, book.ErrResponseFromRepository))
		is.Equal(result.RowsAffected, int64(0))
	})
}

func TestUpdateSamplePrice(t *testing.T) {
	t.Run("updates the price of the matching books", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, mockNtfy := newService(ctrl)

		mockRepo.EXPECT().UpdatePriceByName(gomock.Any(), book.UpdateName, book.UpdatedPrice).Return(int64(3), nil)

		wg := sync.WaitGroup{}
		expectNotification(mockNtfy, &wg, book.ActionUpdate, 3)

		result, err := mS.UpdateSamplePrice(ctx)
		is.NoErr(err)
		is.Equal(result, book.ActionResult{Action: book.ActionUpdate, RowsAffected: 3})

		wg.Wait()
	})

	t.Run("expected error from database", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		dbErr := errors.New("no such table: Book")
		errRepo := book.ErrResponse{
			Code:    book.ErrResponseFromRepository.Code,
			Message: book.ErrResponseFromRepository.Message + dbErr.Error(),
		}
		mockRepo.EXPECT().UpdatePriceByName(gomock.Any(), book.UpdateName, book.UpdatedPrice).Return(int64(0), dbErr)

		result, err := mS.UpdateSamplePrice(ctx)
		is.Equal(result, book.ActionResult{})
		is.Equal(err, errRepo)
	})
}

func TestDeleteLongBooks(t *testing.T) {
	t.Run("deletes the books above the pages threshold", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, mockNtfy := newService(ctrl)

		mockRepo.EXPECT().DeleteBooksWithPagesOver(gomock.Any(), book.PagesThreshold).Return(int64(1), nil)

		wg := sync.WaitGroup{}
		expectNotification(mockNtfy, &wg, book.ActionDelete, 1)

		result, err := mS.DeleteLongBooks(ctx)
		is.NoErr(err)
		is.Equal(result, book.ActionResult{Action: book.ActionDelete, RowsAffected: 1})

		wg.Wait()
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().DeleteBooksWithPagesOver(gomock.Any(), book.PagesThreshold).Return(int64(0), context.DeadlineExceeded)

		_, err := mS.DeleteLongBooks(ctx)
		is.Equal(err.Error(), "timeout on call to DeleteLongBooks: "+context.DeadlineExceeded.Error())
	})
}

func TestReplaceBooks(t *testing.T) {
	t.Run("replaces every book inside a committed transaction", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, mockNtfy := newService(ctrl)
		mockTxRepo := bookmock.NewMockRepository(ctrl)
		tx := &fakeTx{}

		replacement := book.ReplacementBook()
		stored := replacement
		stored.ID = 7

		mockRepo.EXPECT().BeginTx(gomock.Any(), gomock.Nil()).Return(mockTxRepo, tx, nil)
		gomock.InOrder(
			mockTxRepo.EXPECT().DeleteAllBooks(gomock.Any()).Return(int64(4), nil),
			mockTxRepo.EXPECT().InsertBook(gomock.Any(), replacement).Return(stored, nil),
		)

		wg := sync.WaitGroup{}
		expectNotification(mockNtfy, &wg, book.ActionReplace, 5)

		result, err := mS.ReplaceBooks(ctx)
		is.NoErr(err)
		is.True(result.Committed)
		is.Equal(result.RowsAffected, int64(5))
		is.Equal(result.Books, []book.Book{stored})
		is.True(tx.committed)
		is.True(!tx.rolledBack)

		wg.Wait()
	})

	t.Run("insert failure after delete is rolled back and swallowed", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)
		mockTxRepo := bookmock.NewMockRepository(ctrl)
		tx := &fakeTx{}

		mockRepo.EXPECT().BeginTx(gomock.Any(), gomock.Nil()).Return(mockTxRepo, tx, nil)
		mockTxRepo.EXPECT().DeleteAllBooks(gomock.Any()).Return(int64(4), nil)
		mockTxRepo.EXPECT().InsertBook(gomock.Any(), gomock.Any()).Return(book.Book{}, errors.New("constraint failed"))

		result, err := mS.ReplaceBooks(ctx)
		is.NoErr(err)
		is.True(!result.Committed)
		is.Equal(result.RowsAffected, int64(0))
		is.True(!tx.committed)
		is.True(tx.rolledBack)
	})

	t.Run("commit failure is swallowed", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)
		mockTxRepo := bookmock.NewMockRepository(ctrl)
		tx := &fakeTx{commitErr: errors.New("database is locked")}

		mockRepo.EXPECT().BeginTx(gomock.Any(), gomock.Nil()).Return(mockTxRepo, tx, nil)
		mockTxRepo.EXPECT().DeleteAllBooks(gomock.Any()).Return(int64(0), nil)
		mockTxRepo.EXPECT().InsertBook(gomock.Any(), gomock.Any()).Return(book.ReplacementBook(), nil)

		result, err := mS.ReplaceBooks(ctx)
		is.NoErr(err)
		is.True(!result.Committed)
		is.True(tx.rolledBack)
	})

	t.Run("failing to begin the transaction is returned", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().BeginTx(gomock.Any(), gomock.Nil()).Return(nil, nil, errors.New("database is locked"))

		_, err := mS.ReplaceBooks(ctx)
		is.True(errors.Is(err, book.ErrResponseFromRepository))
	})
}

func TestListBooks(t *testing.T) {
	t.Run("lists stored books without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		stored := []book.Book{
			{ID: 1, Name: "剑来", Author: "我吃西红柿", Pages: 60000, Price: 50.99},
		}
		mockRepo.EXPECT().ListBooks(gomock.Any()).Return(stored, nil)

		books, err := mS.ListBooks(ctx)
		is.NoErr(err)
		is.Equal(books, stored)
	})

	t.Run("expected error from database", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mS, mockRepo, _ := newService(ctrl)

		mockRepo.EXPECT().ListBooks(gomock.Any()).Return(nil, errors.New("fake error from database"))

		books, err := mS.ListBooks(ctx)
		is.True(books == nil)
		is.True(errors.Is(err, book.ErrResponseFromRepository))
	})
}
