// Package frame provides constructors for Frames, the growable, append-only
// tables of text cells at the heart of this module.
package frame
