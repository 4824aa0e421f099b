// Package leveldata parses Tiled levels into an immutable, validated domain
// model: spawn/finish/safe/trigger/gravity areas, rectangular and polygon
// collision objects and a dense per-tile collision grid.
// It has no dependencies on ebitengine, donburi, cp or resolv.
package leveldata
