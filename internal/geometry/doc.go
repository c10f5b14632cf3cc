// Package geometry provides the axis-aligned rectangle math the dungeon
// core runs on. Coordinates are y-up: a rectangle's origin is its
// bottom-left corner and Top is Y+Height.
package geometry
