package vtk

// PointsOption configures a structured points dataset.
type PointsOption func(*pointsOptions)

type pointsOptions struct {
	spacing [3]float64
	origin  [3]float64
}

func defaultPointsOptions() *pointsOptions {
	return &pointsOptions{
		spacing: [3]float64{1, 1, 1},
		origin:  [3]float64{0, 0, 0},
	}
}

// WithSpacing sets the per-axis sample spacing (default 1,1,1).
func WithSpacing(sx, sy, sz float64) PointsOption {
	return func(o *pointsOptions) {
		o.spacing = [3]float64{sx, sy, sz}
	}
}

// WithOrigin sets the dataset origin (default 0,0,0).
func WithOrigin(ox, oy, oz float64) PointsOption {
	return func(o *pointsOptions) {
		o.origin = [3]float64{ox, oy, oz}
	}
}

// PolyOption configures a polydata dataset.
type PolyOption func(*polyOptions)

type polyOptions struct {
	precision int
}

func defaultPolyOptions() *polyOptions {
	return &polyOptions{precision: 3}
}

// WithPrecision sets the number of decimal digits for polydata coordinates
// (default 3). Negative values are rejected when the dataset is written,
// before any file is created.
func WithPrecision(digits int) PolyOption {
	return func(o *polyOptions) {
		o.precision = digits
	}
}

// WriteOption configures a single Write call.
type WriteOption func(*writeOptions)

type writeOptions struct {
	viewerHook ViewerHook
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{}
}

// WithViewerHook installs the hook fired after a successful write to the
// reserved default export filename. See DefaultExportFile.
func WithViewerHook(h ViewerHook) WriteOption {
	return func(o *writeOptions) {
		o.viewerHook = h
	}
}
