package entity

import "image"

// Direction is a horizontal heading.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// boxAt builds the integer bounding box of a w×h sprite whose bottom edge
// sits on footY and whose centre is at x.
func boxAt(x, footY float64, w, h int) image.Rectangle {
	x0 := int(x - float64(w)/2)
	y0 := int(footY - float64(h))
	return image.Rect(x0, y0, x0+w, y0+h)
}
