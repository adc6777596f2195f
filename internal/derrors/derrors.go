// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package derrors defines internal error values to categorize the different
// types of error semantics the codec and serializer support.
package derrors

import (
	"errors"
	"fmt"
)

//lint:file-ignore ST1012 prefixing error values with Err would stutter

var (
	// BadBase64 indicates malformed base64 input: characters outside the
	// standard alphabet, invalid padding, or a stray partial group at the
	// end of a stream.
	BadBase64 = errors.New("malformed base64 data")

	// BadGzip indicates a corrupt or truncated gzip member: bad magic
	// bytes, a failed checksum, or a stream that ends mid-block.
	BadGzip = errors.New("malformed gzip stream")

	// BadTableStructure indicates a structurally inconsistent table
	// section, such as a data row with more fields than its header.
	BadTableStructure = errors.New("inconsistent table structure")
)

// Add adds context to the error.
// The result cannot be unwrapped to recover the original error.
// It does nothing when *errp == nil.
//
// Example:
//
//	defer derrors.Add(&err, "copy(%s, %s)", src, dst)
//
// See Wrap for an equivalent function that allows
// the result to be unwrapped.
func Add(errp *error, format string, args ...any) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %v", fmt.Sprintf(format, args...), *errp)
	}
}

// Wrap adds context to the error and allows
// unwrapping the result to recover the original error.
//
// Example:
//
//	defer derrors.Wrap(&err, "envelope.Decode(%d bytes)", n)
//
// See Add for an equivalent function that does not allow
// the result to be unwrapped.
func Wrap(errp *error, format string, args ...any) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp)
	}
}
