// Package geometry provides plane-geometry helpers for points and circles:
// Euclidean distance, circle containment, area and circumference. Like the
// rest of the module it is pure value computation — no I/O, no shared state.
package geometry
