// Package tensor provides the array types shared by the computation graph:
// shapes, the runtime data type tag and row-major float64 arrays.
package tensor

// DataType represents runtime type information for port data.
//
// Every array in the graph holds double precision values. Undefined marks a
// port whose type has not been propagated yet.
type DataType int

// Supported data types.
const (
	Undefined DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}
