// Package locate finds the generated seeder entry file inside a project's
// source tree. The search looks at most two levels deep, stops at the first
// match, and falls back to the conventional location when nothing matches.
package locate
