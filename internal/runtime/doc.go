// Package runtime executes the generated seeder through an external
// TypeScript runner (npx ts-node by default) and checks that the runner's
// toolchain is installed.
package runtime
