package models

// Product represents a single tracked inventory item.
// Type and status are stored as free text; the well-known values below are
// conventions shared with the frontend, not constraints.
type Product struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Type   string `db:"type" json:"type"`
	Status string `db:"status" json:"status"`
}

// Well-known status values used by the stats aggregation.
const (
	StatusAvailable = "Available"
	StatusDefective = "Defective"
)

// Stats is the aggregate returned by GET /products/stats. Field names are
// capitalized on the wire to match the consumer contract.
type Stats struct {
	Total     int `json:"Total"`
	Defective int `json:"Defective"`
	Available int `json:"Available"`
}
