package library

// ItemFilter specifies criteria for listing items.
type ItemFilter struct {
	Kind          *Kind
	Status        *Status
	Author        *string // case-insensitive substring
	Series        *string
	MissingSeries bool // only items with no series recorded
	Limit         int  // 0 = no limit
	Offset        int
}
