// Package report renders the end-of-run summary.
//
// Formats are registered by name; text reproduces the three classic count
// lines, json and yaml go through pkg/api (v1) for a stable schema.
package report
