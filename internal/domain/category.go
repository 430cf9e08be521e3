package domain

// Category is a catalog grouping (a body part) under which articles are sold.
type Category struct {
	ID   int64
	Name string
}
