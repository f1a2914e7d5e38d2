// Package dataframe contains the core components of an in-memory, text-celled tabular container.
// This root package defines the types which are employed during the regular use of the library,
// as well as in its extension, and is a good overview of its key concepts: a Frame owns rows of
// text cells, and every numeric interpretation of those cells (Dtypes, summaries, orderings) is
// derived on demand rather than stored.
package dataframe
