package model

// Up returns the index directly above index, wrapping row 0 to the last row.
func Up(index, width, height int) int {
	if index/width == 0 {
		return (height-1)*width + index
	}
	return index - width
}

// Down returns the index directly below index, wrapping the last row to row 0.
func Down(index, width, height int) int {
	if index/width == height-1 {
		return index % width
	}
	return index + width
}

// Left returns the index to the left of index, wrapping column 0 to the last column of the same row.
func Left(index, width, _ int) int {
	if index%width == 0 {
		return index + width - 1
	}
	return index - 1
}

// Right returns the index to the right of index, wrapping the last column to column 0 of the same row.
func Right(index, width, _ int) int {
	if index%width+1 == width {
		return index - index%width
	}
	return index + 1
}

// Neighbors returns the Moore neighborhood of index on a width×height torus, ordered
// up-left, up, up-right, left, right, down-left, down, down-right.
func Neighbors(index, width, height int) [8]int {
	var (
		left  = Left(index, width, height)
		right = Right(index, width, height)
	)
	return [8]int{
		Up(left, width, height), Up(index, width, height), Up(right, width, height),
		left, right,
		Down(left, width, height), Down(index, width, height), Down(right, width, height),
	}
}
