// Vtkwrite exports numeric grid, point and mesh data to legacy VTK files
// for consumption by visualization tools such as ParaView.
//
// Usage:
//
//	# Write every dataset listed in a YAML manifest
//	vtkwrite export --manifest scene.yaml
//
//	# Generate a demo dataset and open it in the system viewer
//	vtkwrite sample --kind structured_points --open
//
//	# List the supported dataset kinds
//	vtkwrite kinds
//
// Writing to the reserved filename matlab_export.vtk triggers the external
// viewer automatically.
package main

func main() {
	Execute()
}
