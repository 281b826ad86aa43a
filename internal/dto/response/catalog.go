package response

import (
	"event-booking/internal/data/entity"
)

type PackageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	MaxCapacity int     `json:"max_capacity"`
}

type TableResponse struct {
	ID          string `json:"id"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
}

func PackageToResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:          pkg.ID.String(),
		Name:        pkg.Name,
		Type:        string(pkg.Type),
		Price:       pkg.Price,
		Description: pkg.Description,
		MaxCapacity: pkg.MaxCapacity,
	}
}

func TableToResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:          table.ID.String(),
		TableNumber: table.TableNumber,
		Capacity:    table.Capacity,
		IsAvailable: table.IsAvailable,
	}
}
