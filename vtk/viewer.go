package vtk

// DefaultExportFile is the reserved output filename. Writing to it signals
// that the caller wants the surrounding tool to open the result in an
// external viewer after the file is closed.
const DefaultExportFile = "matlab_export.vtk"

// ViewerHook is invoked asynchronously after a successful write to the
// reserved default export filename. The write itself never blocks on the
// hook; errors from the viewer are the hook's own concern.
type ViewerHook func(path string) error
