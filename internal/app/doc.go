// Package app wires the application together: configuration, logging, the
// block-type catalog, and the script-to-source generation run.
package app
