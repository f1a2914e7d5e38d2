// Package dsv provides a Parser which loads delimiter-separated values, such as CSV, into a Frame
package dsv
