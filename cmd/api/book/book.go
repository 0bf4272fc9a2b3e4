package book

// Book is a row of the Book table. ID is assigned by the store on insert.
type Book struct {
	ID     int64   `db:"id"`
	Name   string  `db:"name"`
	Author string  `db:"author"`
	Pages  int     `db:"pages"`
	Price  float64 `db:"price"`
}

const (
	// UpdateName is the name matched by the update action.
	UpdateName = "剑来"
	// UpdatedPrice is the price written by the update action.
	UpdatedPrice = 50.99
	// PagesThreshold is the page count above which the delete action removes a book.
	PagesThreshold = 50000
)

/* Returns the two records written by the insert action. */
func SampleBooks() []Book {
	return []Book{
		{Name: "雪中悍刀行", Author: "我吃西红柿", Pages: 50000, Price: 50.99},
		{Name: "剑来", Author: "我吃西红柿", Pages: 60000, Price: 52.99},
	}
}

/* Returns the record left alone in the table by the replace action. */
func ReplacementBook() Book {
	return Book{Name: "诛仙", Author: "萧鼎", Pages: 40000, Price: 45.99}
}

// Action names, as exposed by the http layer and sent to the notifier.
const (
	ActionCreate  = "create"
	ActionInsert  = "insert"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionReplace = "replace"
	ActionQuery   = "query"
)

// ActionResult describes what an action did to the Book table.
type ActionResult struct {
	Action       string
	RowsAffected int64
	Committed    bool
	Books        []Book
}
