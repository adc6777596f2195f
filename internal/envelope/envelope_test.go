// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/bagaspratmanta/YLSE/internal/testing/testhelper"
	"github.com/google/go-cmp/cmp"
)

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"hello", []byte("Hello from test\n")},
		{"all byte values", allBytes()},
		{"repetitive", bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 2000)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text, err := Encode(test.payload)
			if err != nil {
				t.Fatal(err)
			}
			got, err := DecodeString(text)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.payload, got, byteCmp()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// byteCmp treats nil and empty byte slices as equal.
func byteCmp() cmp.Option {
	return cmp.Comparer(func(a, b []byte) bool { return bytes.Equal(a, b) })
}

func TestDecodeReference(t *testing.T) {
	// Envelopes built by an independent implementation must decode.
	payload := []byte("###Savegame\nName\tMoney\nAlice\t500\n\n")
	env := testhelper.Envelope(t, payload)
	got, err := DecodeString(env)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decode = %q, want %q", got, payload)
	}
}

func TestEncodeReference(t *testing.T) {
	// Encode output must be plain base64 of a gzip member readable by an
	// independent implementation.
	payload := []byte("Hello from test\n")
	text, err := Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		t.Fatalf("Encode output is not valid base64: %v", err)
	}
	if got := testhelper.Gunzip(t, raw); !bytes.Equal(got, payload) {
		t.Errorf("gunzip(unbase64(Encode)) = %q, want %q", got, payload)
	}
}

func TestDecodeTrimsWhitespace(t *testing.T) {
	payload := []byte("payload")
	env := "  \n\t" + testhelper.Envelope(t, payload) + "\r\n "
	got, err := DecodeString(env)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decode = %q, want %q", got, payload)
	}
}

func TestDecodeIgnoresTrailingGarbage(t *testing.T) {
	payload := []byte("payload")
	env := testhelper.Envelope(t, payload)
	raw, err := base64.StdEncoding.DecodeString(env)
	if err != nil {
		t.Fatal(err)
	}
	raw = append(raw, "junk after the member"...)
	got, err := Decode([]byte(base64.StdEncoding.EncodeToString(raw)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decode = %q, want %q", got, payload)
	}
}

func TestDecodeErrors(t *testing.T) {
	env := testhelper.Envelope(t, []byte("payload"))
	raw, err := base64.StdEncoding.DecodeString(env)
	if err != nil {
		t.Fatal(err)
	}
	truncated := base64.StdEncoding.EncodeToString(raw[:len(raw)/2])
	corrupted := append([]byte(nil), raw...)
	corrupted[len(corrupted)-1] ^= 0xff // flip a CRC byte
	badCRC := base64.StdEncoding.EncodeToString(corrupted)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad alphabet", "not-valid-base64!!", derrors.BadBase64},
		{"bad padding", "AAA=AAA=", derrors.BadBase64},
		{"not gzip", base64.StdEncoding.EncodeToString([]byte("notgzipdata0")), derrors.BadGzip},
		{"empty input", "", derrors.BadGzip},
		{"truncated stream", truncated, derrors.BadGzip},
		{"bad checksum", badCRC, derrors.BadGzip},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeString(test.input)
			if !errors.Is(err, test.want) {
				t.Errorf("DecodeString(%q) error = %v, want errors.Is(..., %v)", test.input, err, test.want)
			}
		})
	}
}
