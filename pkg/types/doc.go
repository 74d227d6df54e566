// Package types defines the Store interface, the Record and Page value
// types, the Config structure, and the standard errors shared by all
// rolodex storage backends.
package types
