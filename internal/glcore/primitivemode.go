package glcore

// PrimitiveMode selects how begin/end groups a vertex stream into
// triangles. The numeric values must stay stable: the ABI's glBegin token
// is this ordinal.
type PrimitiveMode uint32

const (
	Points PrimitiveMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
	Polygon
)

// triangulable reports whether end() knows how to turn this primitive mode
// into triangles. Points/Lines/LineStrip/LineLoop/QuadStrip are recognized
// tokens but have no rasterizing back end.
func (m PrimitiveMode) triangulable() bool {
	switch m {
	case Triangles, TriangleStrip, TriangleFan, Quads, Polygon:
		return true
	default:
		return false
	}
}
