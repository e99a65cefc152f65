// Package viz renders temperature fields in the terminal.
//
// Temperatures map to colors through the inferno colormap with linear
// interpolation between table entries. The map auto-ranges over the
// current field with a small margin so early frames are not washed out
// by the full-run dynamic range.
//
//   - [Colormap]: temperature to RGB mapping with auto-ranging
//   - [RenderBar]: a 1D field as a colored strip
//   - [RenderPlate]: a 2D field as colored half-block rows
//   - [Colorbar]: the legend strip with range labels
package viz
