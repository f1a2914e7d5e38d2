// Package file provides a DataSource which reads Frames from a set of files on disk,
// selected by a glob pattern. Files are read in lexical order and concatenated.
package file
