// Package dungeon models a level as a graph of rectangular rooms.
//
// A Level owns every Room and indexes them by id. Rooms refer to their
// neighbors by id only; whether a neighbor is really across a given edge
// is decided from rectangle coordinates at query time, never from the
// direction the level data declared.
//
// Each room runs a small encounter lifecycle on three flags. visited gates
// the curtain that hides unexplored rooms. prepared marks a room that will
// trap the player once fully inside. active means the encounter is engaged
// and blocks leaving. All flag changes go through the transition methods
// in encounter.go so that active always implies prepared.
package dungeon
