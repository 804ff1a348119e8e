// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package maxscene

// config.go reduces the Decode API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
//      https://commandcenter.blogspot.ca/2014/01/self-referential-functions-and-design.html

import "log"

// Config contains configuration attributes that can be set by the caller
// before decoding a scene container.
type Config struct {
	// logf receives one diagnostic message per call: unrecognized
	// classes, missing links, corrupted face arrays, unresolved
	// parents. None of these abort the decode; see Attr Strict.
	logf func(format string, args ...any)

	// strict makes Decode return the first diagnostic as an error; every
	// diagnostic is still logged. Off by default: real-world files accumulate small
	// inconsistencies across 3ds Max versions that are safe to skip
	// past.
	strict bool
}

// configDefaults provides reasonable defaults so Decode runs even if no
// configuration attributes are set.
var configDefaults = Config{
	logf:   log.Printf,
	strict: false,
}

// Attr defines optional attributes that can be used to configure a
// Decode call.
//
//	root, err := maxscene.Decode(streams,
//	    maxscene.Logger(myLogFunc),
//	    maxscene.Strict(),
//	)
type Attr func(*Config)

// Logger overrides the function that receives diagnostic messages.
// For use in Decode().
func Logger(logf func(format string, args ...any)) Attr {
	return func(c *Config) { c.logf = logf }
}

// Strict makes Decode return the first diagnostic as a *DecodeError, with
// no scene. The decode still runs to completion and every diagnostic is
// still logged.
func Strict() Attr {
	return func(c *Config) { c.strict = true }
}
