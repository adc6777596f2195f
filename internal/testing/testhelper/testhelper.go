// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testhelper provides shared functionality and fixtures to be used
// in YLSE tests. It should only be imported by test files.
package testhelper

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"testing"
)

// SamplePlaintext is a minimal decoded save with one table and one row.
const SamplePlaintext = "###Savegame\nName\tMoney\nAlice\t500\n\n"

// Envelope builds envelope text for payload using the standard library's
// gzip and base64, independently of the code under test.
func Envelope(t *testing.T, payload []byte) string {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(payload); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// Gunzip decompresses a gzip member using the standard library.
func Gunzip(t *testing.T, data []byte) []byte {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(gz); err != nil {
		t.Fatalf("gunzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return out.Bytes()
}
