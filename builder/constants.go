// Package builder defines shared constants used by mesh builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodMesh is the canonical name for the Mesh constructor.
	MethodMesh = "Mesh"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodNodeValues is the canonical name for the NodeValues constructor.
	MethodNodeValues = "NodeValues"
	// MethodEdgeValues is the canonical name for the EdgeValues constructor.
	MethodEdgeValues = "EdgeValues"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinMeshPoints is the smallest point list Mesh accepts.
const MinMeshPoints = 1

// MinGridDim is the smallest row/column count for Grid: one square cell
// needs two points along each axis.
const MinGridDim = 2

// CellCorners is the number of point indices per cell. Tetrahedra use all
// four; square cells list corners as (r,c), (r,c+1), (r+1,c), (r+1,c+1).
const CellCorners = 4
