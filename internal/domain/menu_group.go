package domain

import "time"

// MenuGroup is a plain grouping label for menus. Immutable after creation.
type MenuGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
