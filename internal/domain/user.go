package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SeedCartSize is the number of item ids every new cart starts with.
const SeedCartSize = 300

// Cart maps a catalog item id to a quantity. Quantities never go below zero.
type Cart map[int]int

// NewCart returns a cart holding ids 0..SeedCartSize-1, all at zero.
func NewCart() Cart {
	c := make(Cart, SeedCartSize)
	for i := 0; i < SeedCartSize; i++ {
		c[i] = 0
	}
	return c
}

// Add bumps itemID by one, creating the key if needed.
func (c Cart) Add(itemID int) {
	c[itemID]++
}

// Remove drops itemID by one if it is above zero.
func (c Cart) Remove(itemID int) {
	if c[itemID] > 0 {
		c[itemID]--
	}
}

// Value stores the cart as a JSON object.
func (c Cart) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[int]int(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Cart) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = Cart{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cart: unsupported column type %T", src)
	}
	m := map[int]int{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("cart: %w", err)
	}
	*c = m
	return nil
}

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"` // plain or bcrypt, depending on PASSWORD_HASHING
	Cart      Cart      `db:"cart_json"`
	CreatedAt time.Time `db:"created_at"`
}
