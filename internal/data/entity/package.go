package entity

type PackageType string

const (
	PackageTypeVIP   PackageType = "VIP"
	PackageTypeRider PackageType = "RIDER"
)

type Package struct {
	Base
	Name        string      `db:"name"`
	Type        PackageType `db:"type"`
	Price       float64     `db:"price"`
	Description string      `db:"description"`
	MaxCapacity int         `db:"max_capacity"`
}
