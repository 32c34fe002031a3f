package services

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// MovieFullParams holds the raw /movies/full query. A nil Query means q was
// absent; nil page values take their defaults.
type MovieFullParams struct {
	Query   *string
	Page    *int
	PerPage *int
}

func NormalizePage(page *int) int {
	if page == nil || *page < 1 {
		return DefaultPage
	}
	return *page
}

func NormalizePerPage(perPage *int) int {
	if perPage == nil {
		return DefaultPerPage
	}
	switch {
	case *perPage < 1:
		return 1
	case *perPage > MaxPerPage:
		return MaxPerPage
	}
	return *perPage
}

// LastPage is ceil(total/perPage), never below 1.
func LastPage(total int64, perPage int) int {
	if total <= 0 || perPage < 1 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
