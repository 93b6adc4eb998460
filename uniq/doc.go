// Package uniq counts total versus distinct items in a slice of strings.
package uniq
