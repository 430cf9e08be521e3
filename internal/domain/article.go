package domain

import "github.com/google/uuid"

// Article is a sellable item classified under a Category.
type Article struct {
	ID          uuid.UUID
	CategoryID  int64
	State       string
	Description string
	Price       Money
	Available   bool
}
