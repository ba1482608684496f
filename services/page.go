package services

// PageResult is the uniform shape of every paginated listing.
type PageResult[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Records  []T   `json:"records"`
}
