// Package types defines the core data model shared by hublfix packages:
// documents, discovered blocks, per-document rewrite results and the
// filesystem interface the pipeline consumes.
package types
