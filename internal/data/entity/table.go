package entity

// Table is a VIP table. Invariant: is_available is false exactly while one
// non-cancelled VIP booking references the table.
type Table struct {
	BaseSimple
	TableNumber int  `db:"table_number"`
	Capacity    int  `db:"capacity"`
	IsAvailable bool `db:"is_available"`
}
