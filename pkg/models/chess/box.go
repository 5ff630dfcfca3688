package chess

// Box is identified by its centre cell, which has two odd coordinates.
type Box struct {
	X int
	Y int
}

func (b Box) Valid(size BoardSize) bool {
	return b.X > 0 && b.Y > 0 && b.X < size.GridWidth() && b.Y < size.GridHeight() && b.X%2 == 1 && b.Y%2 == 1
}

func (b Box) Edges() [4]Edge {
	return [...]Edge{
		NewEdge(b.X, b.Y-1),
		NewEdge(b.X-1, b.Y),
		NewEdge(b.X+1, b.Y),
		NewEdge(b.X, b.Y+1),
	}
}

func Boxes(size BoardSize) (boxes []Box) {
	for j := 1; j < size.GridHeight(); j += 2 {
		for i := 1; i < size.GridWidth(); i += 2 {
			boxes = append(boxes, Box{X: i, Y: j})
		}
	}
	return
}
