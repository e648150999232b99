package domain

// AccountID is the opaque account identifier issued by the identity service.
type AccountID string

func (a AccountID) String() string {
	return string(a)
}

func (a AccountID) IsZero() bool {
	return a == ""
}
