// Package testutil provides utilities for testing hublfix components.
//
// Key components:
//   - NewTestFS: in-memory filesystem backed by afero
//   - TemplateDir: declarative template directory setup on any types.FS
//   - HubL fixtures shared by scanner, rewriter and command tests
//
// All test data is defined inline; each test builds its own isolated
// filesystem.
package testutil
