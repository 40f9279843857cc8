package ports

// ListFilter carries the query parameters shared by every admin listing.
type ListFilter struct {
	All          bool  // include inactive records (default lists active only)
	OrderCreated bool  // newest first by created_at
	Limit        int64 // max rows per page (capped at 100 by services)
	Offset       int64
}
