package domain

import "time"

type Product struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Image     string    `db:"image" json:"image"`
	Category  string    `db:"category" json:"category"`
	NewPrice  float64   `db:"new_price" json:"new_price"`
	OldPrice  float64   `db:"old_price" json:"old_price"`
	Available bool      `db:"available" json:"available"`
	Date      time.Time `db:"created_at" json:"date"`
}
