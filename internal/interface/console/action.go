package console

// ActionType menu entry
type ActionType int

const (
	ActionExit ActionType = iota
	ActionUpdateBookDetails
	ActionListBooksByGenre
	ActionListBooksByAuthor
	ActionUpdateCustomerInfo
	ActionCustomerPurchaseHistory
	ActionRevenueByGenre
	ActionProcessNewSale
	ActionSoldBookReport
	ActionRevenueByGenreReport
)

// menu bounds
const (
	firstAction = ActionExit
	lastAction  = ActionRevenueByGenreReport
)

// ParseAction maps a menu number to its action; ok is false outside 0..9
func ParseAction(n int) (ActionType, bool) {
	if n < int(firstAction) || n > int(lastAction) {
		return 0, false
	}
	return ActionType(n), true
}

// String metric/log label of the action
func (a ActionType) String() string {
	switch a {
	case ActionExit:
		return "exit"
	case ActionUpdateBookDetails:
		return "update_book_details"
	case ActionListBooksByGenre:
		return "list_books_by_genre"
	case ActionListBooksByAuthor:
		return "list_books_by_author"
	case ActionUpdateCustomerInfo:
		return "update_customer_info"
	case ActionCustomerPurchaseHistory:
		return "customer_purchase_history"
	case ActionRevenueByGenre:
		return "revenue_by_genre"
	case ActionProcessNewSale:
		return "process_new_sale"
	case ActionSoldBookReport:
		return "sold_book_report"
	case ActionRevenueByGenreReport:
		return "revenue_by_genre_report"
	default:
		return "unknown"
	}
}

const menuText = `Choose action you want to execute from list below.
1: Update book details.
2: List books by genre.
3: List books by author.
4: Update customer information.
5: View a customer's purchase history.
6: Calculate total revenue by genre.
7: Process new sale.
8: Generate a report of all books sold.
9: Generate a report of revenue of each genre.
0: Exit.`
