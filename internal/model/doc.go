// Package model defines the user-facing data model: the tree of placed block
// instances that the generator renders. The tree is owned by the editing
// session (out of process for us, in tests and the CLI it comes from HCL
// script documents); generation only ever reads it.
package model
