//go:build !tinygo

package core

// Clear empties the cell. It models a device reset for host tests and the
// simulator; firmware never empties a cell.
func (c *GuardedCell[T]) Clear() {
	var zero T
	c.value = zero
	c.filled = false
}
