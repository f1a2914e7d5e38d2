// Package inference detects the Dtype of a column from the text of its cells,
// and parses cells into the numeric values which statistics are computed from.
package inference
