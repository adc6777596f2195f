// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package save

import (
	"context"
	"testing"

	"github.com/bagaspratmanta/YLSE/internal/savedata"
	"github.com/bagaspratmanta/YLSE/internal/testing/testhelper"
	"github.com/google/go-cmp/cmp"
)

func TestLoadEncodeCycle(t *testing.T) {
	ctx := context.Background()
	env := testhelper.Envelope(t, []byte(testhelper.SamplePlaintext))

	f, err := Load(ctx, []byte(env))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Plaintext(); got != testhelper.SamplePlaintext {
		t.Errorf("Plaintext = %q, want %q", got, testhelper.SamplePlaintext)
	}

	// Edit a field the way the UI layer would, then save.
	row := f.Tables.Lookup("Savegame").Rows[0]
	row["Money"] = savedata.IntCell(9999)

	encoded, err := f.Encode()
	if err != nil {
		t.Fatal(err)
	}
	g, err := Load(ctx, []byte(encoded))
	if err != nil {
		t.Fatal(err)
	}
	want := savedata.Row{"Name": savedata.TextCell("Alice"), "Money": savedata.IntCell(9999)}
	got := g.Tables.Lookup("Savegame").Rows[0]
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(savedata.Cell{})); diff != "" {
		t.Errorf("row mismatch after save cycle (-want +got):\n%s", diff)
	}
}

func TestLoadBadEnvelope(t *testing.T) {
	if _, err := Load(context.Background(), []byte("not-valid-base64!!")); err == nil {
		t.Error("Load of malformed envelope succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	f, err := LoadPlaintext(ctx, testhelper.SamplePlaintext)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"missing required table: Youtuber",
		"missing required table: Channel",
	}
	if diff := cmp.Diff(want, f.Validate()); diff != "" {
		t.Errorf("Validate mismatch (-want +got):\n%s", diff)
	}
	if issues := f.Validate("Savegame"); len(issues) != 0 {
		t.Errorf("Validate(Savegame) = %v, want none", issues)
	}
}
