// Package pathkit is the vector path geometry kernel behind a freehand
// drawing surface.
//
// # Overview
//
// pathkit represents strokes as ordered point sequences ([PathData]),
// turns them into renderable curve descriptions ([Path]), and implements
// the geometric edits a drawing tool needs: erasing with a circular
// brush, boolean combination of closed shapes, signed-distance
// offsetting, and anchor-point editing. It also imports SVG markup into
// the same representation and generates canonical primitive shapes.
//
// # Quick Start
//
//	import "github.com/gogpu/pathkit"
//
//	// A freehand stroke with curve smoothing.
//	pd := pathkit.NewPathData([]pathkit.Point{{0, 0}, {40, 10}, {80, 0}}, 4)
//
//	// Bake it into a concrete polyline before geometric edits.
//	baked := pathkit.Bake(pd)
//
//	// Subtract a circular eraser pass.
//	pieces := pathkit.Erase(baked, pathkit.Pt(40, 5), 6)
//
// # Architecture
//
// The kernel is purely computational: it never touches pixels. The two
// operations that need a curve renderer (baking and SVG import) take
// the renderer as an injected [Measurer] (arc-length sampling contract)
// and fall back to coarse approximations when it is unavailable. The
// default [FlattenMeasure] satisfies the contract with adaptive
// subdivision, so the kernel is self-sufficient out of the box.
//
// All operations are total over their documented input domain:
// degenerate input (single-click strokes, zero-length segments,
// sub-triangle polygons) yields the input unchanged or an empty result,
// never an error.
package pathkit
