// Package scaffold renders and writes the database-seeder module. Render maps a
// dialect and a config mode to the three generated TypeScript files (entry,
// wiring and service modules) using embedded templates; Write puts them on
// disk under the scaffold directory.
package scaffold
