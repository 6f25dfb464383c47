// Package svgrender serializes turtle geometry and smoothed Bezier
// paths to SVG documents and rasterized PNG images.
//
// What lives here:
//
//   - Write     — polyline SVG of raw segments, stroke-colored by
//     bracket-nesting depth so branch generations stand apart.
//   - WritePath — SVG of a smoothed path, one cubic command per curve.
//   - WritePNG  — the same segments rasterized to a PNG, for contexts
//     where a vector viewer is unavailable.
//
// Coordinates: turtle space is y-up, screen space is y-down; the
// renderer fits the drawing's bounding box into the canvas (minus
// padding), flips the y axis, and centers the result.
//
// Errors: ErrNoGeometry for empty input, ErrBadCanvas for a canvas the
// padding leaves no room on.
package svgrender
