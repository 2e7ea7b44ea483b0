package engine

// kUnitsToCheckNumber is the original's adjacentUnitType table size: a
// cell's proximity check visits itself plus four neighbors rather than
// all eight, halving the bucket scans; because the four are the forward
// half of the neighborhood, no adjacent pair is missed (motion.hpp, §4.2
// collision note).
const kUnitsToCheckNumber = 5

// gridOffsets lists the five (dCol, dRow) pairs scanned per cell: self,
// then the four forward neighbors (right, below, below-right,
// below-left). Using only forward
// neighbors (never backward) avoids checking every pair twice while still
// covering every adjacency once across the full grid sweep.
var gridOffsets = [kUnitsToCheckNumber][2]int32{
	{0, 0}, {1, 0}, {0, 1}, {1, 1}, {-1, 1},
}

// spatialGrid is a toroidal bucket grid at one resolution. The engine
// keeps two instances — coarse and fine — because a single resolution
// cannot cheaply serve both "is anything nearby at all" (coarse, few
// buckets, fast sweep) and "exactly what touches my hull" (fine, many
// buckets, precise) queries in the same pass (§4.2).
type spatialGrid struct {
	cols, rows int32
	cellSize   Fixed
	buckets    [][]int32 // slot indices, by (row*cols + col)
}

func newSpatialGrid(cols, rows int32, cellSize Fixed) *spatialGrid {
	return &spatialGrid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		buckets:  make([][]int32, cols*rows),
	}
}

func (g *spatialGrid) cellOf(pos FixedPoint) int32 {
	col := wrapIndex(EvilFixedToLong(pos.H.Div(g.cellSize)), g.cols)
	row := wrapIndex(EvilFixedToLong(pos.V.Div(g.cellSize)), g.rows)
	return row*g.cols + col
}

func wrapIndex(v, n int32) int32 {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// File removes idx from its previous bucket (if any) and inserts it into
// the bucket for pos, returning the new cell index for the caller to
// remember (SpaceObject.gridCellCoarse/gridCellFine).
func (g *spatialGrid) File(idx int32, prevCell int32, hadPrev bool, pos FixedPoint) int32 {
	if hadPrev {
		g.remove(prevCell, idx)
	}
	cell := g.cellOf(pos)
	g.buckets[cell] = append(g.buckets[cell], idx)
	return cell
}

func (g *spatialGrid) remove(cell int32, idx int32) {
	b := g.buckets[cell]
	for i, v := range b {
		if v == idx {
			b[i] = b[len(b)-1]
			g.buckets[cell] = b[:len(b)-1]
			return
		}
	}
}

// VisitPairs calls fn once for every unordered pair of slot indices that
// share a cell or one of the five neighbor offsets, skipping an index
// pairing with itself. fn receives slot indices, not handles: the caller
// (collision.go) already holds the arena and validates liveness.
func (g *spatialGrid) VisitPairs(fn func(a, b int32)) {
	for row := int32(0); row < g.rows; row++ {
		for col := int32(0); col < g.cols; col++ {
			home := g.buckets[row*g.cols+col]
			if len(home) == 0 {
				continue
			}
			for _, off := range gridOffsets {
				nc := wrapIndex(col+off[0], g.cols)
				nr := wrapIndex(row+off[1], g.rows)
				other := g.buckets[nr*g.cols+nc]
				sameCell := off[0] == 0 && off[1] == 0
				for i, a := range home {
					start := 0
					if sameCell {
						start = i + 1
					}
					for j := start; j < len(other); j++ {
						if sameCell && other[j] == a {
							continue
						}
						fn(a, other[j])
					}
				}
			}
		}
	}
}
