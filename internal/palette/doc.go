// Package palette maps escape-time iteration counts to colors.
//
// A [Gradient] is a table of color stops over [0, 1]; [MapColor] locates the
// normalized count in the table and interpolates linearly between the two
// bracketing stops. Lookup is a linear scan, O(stops) per pixel, which is
// fine for the handful of stops a gradient carries. The stops are sorted, so
// a binary search would give identical results for much larger tables.
package palette
