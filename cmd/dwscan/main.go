// Package main provides the entry point for the dwscan CLI.
//
// dwscan locates double-word typos in documentation and source-comment
// text, e.g.:
//
//	This way it it possible to obtain neighbors across a periodic
//
// Usage:
//
//	dwscan <path> [<path>...]
//	dwscan --markdown <path>
//
// The default output format is similar to GCC's, so dwscan can be run
// conveniently from inside editors' compilation modes.
package main

// main is the entry point for dwscan.
func main() {
	Execute()
}
