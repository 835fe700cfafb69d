package rules

/*
ApplyConwayRules decides the next state of a cell under B3/S23.

A live cell survives with 2 or 3 live neighbors and a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
