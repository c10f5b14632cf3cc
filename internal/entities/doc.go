// Package entities provides the characters and objects that live in dungeon
// rooms: the player, enemies, the dragon boss, the trader and the portal.
package entities
