// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package save ties the envelope codec and the table serializer together
// into one load/edit/save session. Callers decode an envelope into a File,
// edit the tables in memory, and encode the File back out. The package
// performs no file I/O; the caller owns paths and persistence timing.
package save

import (
	"context"
	"fmt"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/bagaspratmanta/YLSE/internal/envelope"
	"github.com/bagaspratmanta/YLSE/internal/savedata"
)

// RequiredTables are the tables a well-formed save is expected to contain.
var RequiredTables = []string{"Savegame", "Youtuber", "Channel"}

// A File is one loaded save session: the decoded tables plus the header
// order captured when the plaintext was parsed. Both are created fresh by
// Load and fully replace any prior session.
type File struct {
	Tables  *savedata.Set
	Headers savedata.HeaderOrder
}

// Load decodes envelope text and parses the resulting plaintext into a
// new session.
func Load(ctx context.Context, envelopeText []byte, opts ...savedata.ParseOption) (_ *File, err error) {
	defer derrors.Wrap(&err, "save.Load(%d bytes)", len(envelopeText))

	plaintext, err := envelope.Decode(envelopeText)
	if err != nil {
		return nil, err
	}
	return LoadPlaintext(ctx, string(plaintext), opts...)
}

// LoadPlaintext parses already-decoded plaintext into a new session.
func LoadPlaintext(ctx context.Context, plaintext string, opts ...savedata.ParseOption) (_ *File, err error) {
	defer derrors.Wrap(&err, "save.LoadPlaintext(%d bytes)", len(plaintext))

	tables, headers, err := savedata.Parse(ctx, plaintext, opts...)
	if err != nil {
		return nil, err
	}
	return &File{Tables: tables, Headers: headers}, nil
}

// Plaintext formats the session's tables back to plaintext, using the
// header order captured at load time.
func (f *File) Plaintext() string {
	return savedata.Format(f.Tables, f.Headers)
}

// Encode formats the session and wraps the plaintext in an envelope.
func (f *File) Encode() (_ string, err error) {
	defer derrors.Wrap(&err, "save.File.Encode")

	return envelope.Encode([]byte(f.Plaintext()))
}

// Validate reports human-readable issues with the session, currently one
// per missing required table. With no arguments it checks RequiredTables.
// An empty result means the save looks valid.
func (f *File) Validate(required ...string) []string {
	if len(required) == 0 {
		required = RequiredTables
	}
	var issues []string
	for _, name := range required {
		if f.Tables.Lookup(name) == nil {
			issues = append(issues, fmt.Sprintf("missing required table: %s", name))
		}
	}
	return issues
}
