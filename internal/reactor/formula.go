package reactor

// MaxAdjacency is the most fuel neighbors an orthogonal cell can have.
const MaxAdjacency = 4

// ClampAdjacency forces an adjacency count into [0, MaxAdjacency].
func ClampAdjacency(n int) int {
	return min(max(n, 0), MaxAdjacency)
}

// EnergyPerCell is the EU a fuel cell with n fuel neighbors produces per tick.
func EnergyPerCell(n int) int {
	n = ClampAdjacency(n)
	return 5 * (n + 1)
}

// HeatPerCell is the heat a fuel cell with n fuel neighbors adds to the hull
// per tick. It grows quadratically while energy grows linearly.
func HeatPerCell(n int) int {
	n = ClampAdjacency(n)
	return 2 * (n + 1) * (n + 2)
}
