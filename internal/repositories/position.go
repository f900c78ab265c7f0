package repositories

// PositionUpdate is one (id, position) assignment in a reorder batch.
type PositionUpdate struct {
	ID       uint
	Position int
}
