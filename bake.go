package pathkit

// Baking collapses a smoothing-parameterized path into a concrete,
// densely-sampled point sequence. Every geometric edit (erase, boolean,
// offset, anchors) operates on baked paths, so baking is the bridge
// that lets them work uniformly on smoothed and raw strokes alike.

// bakeStep is the fixed arc-length distance between samples.
const bakeStep = 2.0

// BakeOption configures a Bake call.
type BakeOption func(*bakeOptions)

type bakeOptions struct {
	measurer Measurer
	step     float64
}

func defaultBakeOptions() bakeOptions {
	return bakeOptions{
		measurer: FlattenMeasure{},
		step:     bakeStep,
	}
}

// WithMeasurer injects the rendering collaborator used for arc-length
// sampling. Use this to sample through a host rendering surface, or a
// synthetic analytic measurer in tests. Passing nil selects the
// built-in [FlattenMeasure].
func WithMeasurer(m Measurer) BakeOption {
	return func(o *bakeOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithStep overrides the arc-length distance between samples.
// Non-positive values are ignored.
func WithStep(step float64) BakeOption {
	return func(o *bakeOptions) {
		if step > 0 {
			o.step = step
		}
	}
}

// Bake resolves the smoothed curve of pd and resamples it at fixed
// arc-length steps, returning a new PathData with Smoothing == 0.
//
// Baking is idempotent: text paths and already-baked paths are returned
// unchanged. If the measurer yields no usable geometry the raw skeleton
// points are kept as a coarse approximation rather than failing.
func Bake(pd PathData, opts ...BakeOption) PathData {
	if pd.Kind == KindText || pd.Baked() || len(pd.Points) < 2 {
		return pd
	}

	o := defaultBakeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	curve := SmoothedPath(pd.Points, pd.Smoothing)
	points := samplePath(curve, o.measurer, o.step)
	if len(points) < 2 {
		logger().Warn("bake: measurer produced no geometry, keeping skeleton",
			"id", pd.ID, "points", len(pd.Points))
		out := pd.Clone()
		out.Smoothing = 0
		return out
	}

	out := pd.Clone()
	out.Points = points
	out.Smoothing = 0
	return out
}

// samplePath walks the measured curve at fixed arc-length steps,
// always including the exact final point.
func samplePath(curve *Path, m Measurer, step float64) []Point {
	if curve.IsEmpty() {
		return nil
	}
	pm := m.Measure(curve)
	if pm == nil {
		return nil
	}
	total := pm.Length()
	if total <= 0 {
		return nil
	}
	points := make([]Point, 0, int(total/step)+2)
	for dist := 0.0; dist < total; dist += step {
		points = append(points, pm.PointAtLength(dist))
	}
	points = append(points, pm.PointAtLength(total))
	return points
}
