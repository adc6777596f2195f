// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envelope converts between raw bytes and the textual save-file
// envelope, defined as base64(gzip(bytes)). It provides whole-buffer
// conversions here and streaming equivalents in stream.go.
//
// The envelope uses the standard base64 alphabet with padding and wraps a
// single gzip member. Anything after the logical end of that member is
// ignored on decode.
package envelope

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/klauspost/compress/gzip"
)

// Decode converts envelope text to the raw bytes it wraps. Surrounding
// whitespace is trimmed before the text is interpreted as base64.
//
// Failures report the stage that rejected the input: derrors.BadBase64 for
// text outside the base64 alphabet or with invalid padding, derrors.BadGzip
// for a compressed stream that is not a well-formed gzip member.
func Decode(data []byte) (_ []byte, err error) {
	defer derrors.Wrap(&err, "envelope.Decode(%d bytes)", len(data))

	text := bytes.TrimSpace(data)
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadBase64, err)
	}
	gz, err := gzip.NewReader(bytes.NewReader(raw[:n]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadGzip, err)
	}
	// Read a single member; trailing bytes after it are not our problem.
	gz.Multistream(false)
	out, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadGzip, err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadGzip, err)
	}
	return out, nil
}

// DecodeString is Decode for envelope text held in a string.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// Encode converts raw bytes to envelope text: a single gzip member at the
// default compression level, base64-encoded with standard alphabet and
// padding. The result contains no line breaks.
//
// Decode(Encode(x)) == x for every byte sequence x, including the empty one.
func Encode(data []byte) (_ string, err error) {
	defer derrors.Wrap(&err, "envelope.Encode(%d bytes)", len(data))

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return "", err
	}
	if err := gz.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
