package evaluator

// EvaluationContext carries the per-feature, per-view state a compiled
// expression reads at evaluation time: feature properties, style
// variables, and the ambient view/feature readers ("id", "geometry-type",
// "resolution", "zoom", "time", "line-metric"). Properties and variables
// are keyed by the canonical accessor key assigned during parsing, not by
// the original path, so the evaluator never re-walks a path.
type EvaluationContext struct {
	properties map[string]any
	variables  map[string]any

	featureID    any
	geometryType string
	resolution   float64
	zoom         float64
	time         float64
	lineMetric   float64
}

// NewEvaluationContext returns an empty evaluation context. Use the
// setters to populate it before compiling/evaluating an expression that
// reads "get"/"var"/"id"/"geometry-type"/"resolution"/"zoom"/"time"/
// "line-metric".
func NewEvaluationContext() *EvaluationContext {
	return &EvaluationContext{
		properties: make(map[string]any),
		variables:  make(map[string]any),
	}
}

// SetProperty records the already-coerced value for a "get"/"has"
// accessor key, as produced by the accessor package's Process.
func (c *EvaluationContext) SetProperty(slug string, value any) {
	c.properties[slug] = value
}

// SetVariable records the already-coerced value for a "var" accessor
// key.
func (c *EvaluationContext) SetVariable(slug string, value any) {
	c.variables[slug] = value
}

// SetFeatureID sets the value "id" reads: a string, a number, or absent
// (nil).
func (c *EvaluationContext) SetFeatureID(id any) { c.featureID = id }

// SetGeometryType sets the string "geometry-type" reads (e.g. "Point",
// "LineString", "Polygon").
func (c *EvaluationContext) SetGeometryType(t string) { c.geometryType = t }

// SetResolution sets the map resolution, in map units per pixel, that
// "resolution" reads. It does not affect "zoom".
func (c *EvaluationContext) SetResolution(r float64) { c.resolution = r }

// SetZoom sets the zoom level "zoom" reads. "zoom" is never derived from
// the resolution; it reads only what SetZoom stored.
func (c *EvaluationContext) SetZoom(z float64) { c.zoom = z }

// SetTime sets the value "time" reads, typically an animation clock in
// seconds.
func (c *EvaluationContext) SetTime(t float64) { c.time = t }

// SetLineMetric sets the value "line-metric" reads: the normalized
// along-line position, in [0, 1], used by line-pattern and text-along-line
// styling.
func (c *EvaluationContext) SetLineMetric(m float64) { c.lineMetric = m }

func (c *EvaluationContext) property(slug string) (any, bool) {
	v, ok := c.properties[slug]
	return v, ok
}

func (c *EvaluationContext) variable(slug string) (any, bool) {
	v, ok := c.variables[slug]
	return v, ok
}
