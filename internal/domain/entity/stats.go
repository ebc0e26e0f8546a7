package entity

import "time"

// CategoryTotal is one aggregation row: confirmed amount and count for a category
type CategoryTotal struct {
	Category DonationCategory
	Total    int64
	Count    int64
}

// MonthlyTotal is one aggregation row keyed by the donation's creation month
// in "YYYY-MM" form
type MonthlyTotal struct {
	Month string
	Total int64
	Count int64
}

// StatusCounts holds donation counts per lifecycle state
type StatusCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Cancelled int64
}

// DateRange bounds an aggregation or listing query by creation time.
// A nil bound means unbounded on that side.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no bound is set
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// DonationStats is the derived aggregate view over the ledger.
// All amount figures cover confirmed donations only; counts cover every
// status. Recomputed from the ledger on read, never stored.
type DonationStats struct {
	TotalAmount    int64
	TotalCount     int64
	PendingCount   int64
	ConfirmedCount int64
	CancelledCount int64
	ByCategory     map[DonationCategory]CategoryTotal
	ByMonth        map[string]MonthlyTotal
}
