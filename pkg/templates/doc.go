// Package templates finds template documents on disk and moves them in and
// out of memory.
//
// A Source resolves which documents a command works on: the names given on
// the command line, an allow-list of names in the template directory, or
// every file in it matching a glob. Store loads documents and writes changed
// ones back, keeping the original file mode.
package templates
