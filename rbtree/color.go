package rbtree

// Color is the color of a red-black tree node.
type Color uint8

// Black is the zero value, which makes the zero node a valid sentinel.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}
