// Package textutil turns user-supplied names such as dataset and rater into
// filesystem-safe tokens.
package textutil
