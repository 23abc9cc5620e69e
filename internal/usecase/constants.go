package usecase

const (
	// DefaultPageSize is the page size used when a request does not
	// provide one.
	DefaultPageSize = 10

	// MaxPageSize caps requested page sizes.
	MaxPageSize = 100

	// RecentTransactionsLimit bounds the dashboard's recent list.
	RecentTransactionsLimit = 10
)
