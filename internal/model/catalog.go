package model

// KnownItem is one row of the read-only reference catalog.
type KnownItem struct {
	Name   string
	Type   string
	Bundle bool // transactable in multi-unit lots (materials, consumables)
}
