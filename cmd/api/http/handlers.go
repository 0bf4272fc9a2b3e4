package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bookstore-service/cmd/api/book"
)

// RequestTimeout bounds every call from a handler into the book service.
var RequestTimeout = 5 * time.Second

type BookHandler struct {
	bookService book.ServiceAPI
}

func NewBookHandler(bookService book.ServiceAPI) *BookHandler {
	return &BookHandler{bookService: bookService}
}

/* Addresses a call to "/actions/(action name)". Every action is a POST without body. */
func (h *BookHandler) action(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name, _ := strings.CutPrefix(r.URL.Path, "/actions/")
	reqID := requestID(r.Context())
	log.Printf("[%s] action %q", reqID, name)

	ctx, cancel := context.WithTimeout(r.Context(), RequestTimeout)
	defer cancel()

	var result book.ActionResult
	var err error
	status := http.StatusOK
	switch name {
	case book.ActionCreate:
		err = h.bookService.CreateDatabase(ctx)
		result = book.ActionResult{Action: book.ActionCreate}
	case book.ActionInsert:
		result, err = h.bookService.InsertSampleBooks(ctx)
		status = http.StatusCreated
	case book.ActionUpdate:
		result, err = h.bookService.UpdateSamplePrice(ctx)
	case book.ActionDelete:
		result, err = h.bookService.DeleteLongBooks(ctx)
	case book.ActionReplace:
		result, err = h.bookService.ReplaceBooks(ctx)
	default:
		responseJSON(w, http.StatusNotFound, book.ErrResponseInvalidAction)
		return
	}
	if err != nil {
		serviceError(w, reqID, err)
		return
	}

	responseJSON(w, status, resultToResponse(result))
}

/* Addresses a call to "/books": the query action. */
func (h *BookHandler) books(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	reqID := requestID(r.Context())
	log.Printf("[%s] action %q", reqID, book.ActionQuery)

	ctx, cancel := context.WithTimeout(r.Context(), RequestTimeout)
	defer cancel()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		serviceError(w, reqID, err)
		return
	}

	results := booksToResponse(books)
	responseJSON(w, http.StatusOK, BooksResponse{ItemsTotal: len(results), Results: results})
}

func serviceError(w http.ResponseWriter, reqID string, err error) {
	log.Printf("[%s] %v", reqID, err)
	if errors.Is(err, context.DeadlineExceeded) {
		responseJSON(w, http.StatusServiceUnavailable, book.ErrResponseRequestTimeout)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

type BookResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Pages  int     `json:"pages"`
	Price  float64 `json:"price"`
}

type ActionResponse struct {
	Action       string         `json:"action"`
	RowsAffected int64          `json:"rows_affected"`
	Committed    *bool          `json:"committed,omitempty"`
	Books        []BookResponse `json:"books,omitempty"`
}

type BooksResponse struct {
	ItemsTotal int            `json:"items_total"`
	Results    []BookResponse `json:"results"`
}

/*Copy the fields of a book object to an http layer struct with json tags*/
func bookToResponse(b book.Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Name:   b.Name,
		Author: b.Author,
		Pages:  b.Pages,
		Price:  b.Price,
	}
}

func booksToResponse(books []book.Book) []BookResponse {
	results := []BookResponse{}
	for _, b := range books {
		results = append(results, bookToResponse(b))
	}
	return results
}

func resultToResponse(result book.ActionResult) ActionResponse {
	resp := ActionResponse{
		Action:       result.Action,
		RowsAffected: result.RowsAffected,
	}
	if len(result.Books) > 0 {
		resp.Books = booksToResponse(result.Books)
	}
	// Only the transactional action reports whether it committed.
	if result.Action == book.ActionReplace {
		committed := result.Committed
		resp.Committed = &committed
	}
	return resp
}

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Println(err)
	}
}
