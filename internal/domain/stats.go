package domain

import "time"

// OwnerStats summarises the bookings an owner has received.
type OwnerStats struct {
	OwnerAccountID   AccountID `json:"owner_account_id"`
	Pending          int64     `json:"pending"`
	Confirmed        int64     `json:"confirmed"`
	Cancelled        int64     `json:"cancelled"`
	ConfirmedRevenue int64     `json:"confirmed_revenue"`
	SnapshotDate     time.Time `json:"snapshot_date,omitempty"`
}

func (s *OwnerStats) Total() int64 {
	return s.Pending + s.Confirmed + s.Cancelled
}
