// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// DefaultChunkSize is the read-buffer size used by the streaming
// conversions when no ChunkSize option is given.
const DefaultChunkSize = 8192

type options struct {
	chunkSize int
}

// An Option configures a streaming conversion.
type Option func(*options)

// ChunkSize sets the size of the bounded read buffer. Streaming memory use
// is proportional to this size, not to the payload. Values below 1 are
// ignored.
func ChunkSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.chunkSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// StreamDecode reads envelope text from r and writes the raw bytes it
// wraps to w, holding at most a chunk of text and a chunk of decompressed
// output in memory at a time. The output is byte-identical to Decode
// applied to the whole text, for any chunk size.
//
// Errors are fatal to the stream and carry the stage that failed:
// derrors.BadBase64 or derrors.BadGzip. Errors from r or w pass through
// untagged.
func StreamDecode(r io.Reader, w io.Writer, opts ...Option) (err error) {
	defer derrors.Wrap(&err, "envelope.StreamDecode")

	o := newOptions(opts)
	br := &base64Reader{r: r, buf: make([]byte, o.chunkSize)}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return classifyInflateErr(err)
	}
	gz.Multistream(false)
	if _, err := io.CopyBuffer(w, gz, make([]byte, o.chunkSize)); err != nil {
		return classifyInflateErr(err)
	}
	if err := gz.Close(); err != nil {
		return classifyInflateErr(err)
	}
	return nil
}

// StreamEncode reads raw bytes from r and writes envelope text to w,
// compressing and encoding incrementally. The output is byte-identical to
// Encode applied to the whole input, for any chunk size and any input
// length including zero.
func StreamEncode(r io.Reader, w io.Writer, opts ...Option) (err error) {
	defer derrors.Wrap(&err, "envelope.StreamEncode")

	o := newOptions(opts)
	bw := &base64Writer{w: w}
	gz := gzip.NewWriter(bw)
	if _, err := io.CopyBuffer(gz, r, make([]byte, o.chunkSize)); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return bw.Close()
}

// classifyInflateErr tags decompression-side failures with the stage that
// produced them. Base64 failures are already tagged by base64Reader and
// pass through; known gzip corruption errors become derrors.BadGzip;
// anything else is an underlying I/O error and stays as is.
func classifyInflateErr(err error) error {
	if errors.Is(err, derrors.BadBase64) {
		return err
	}
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, gzip.ErrHeader),
		errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF),
		errors.As(err, &corrupt):
		return fmt.Errorf("%w: %v", derrors.BadGzip, err)
	}
	return err
}

// base64Reader incrementally decodes base64 text read from an underlying
// reader. It keeps a pending buffer of not-yet-decoded characters so that
// decoding always happens on whole 4-character groups, and skips ASCII
// whitespace in the text (the streaming analogue of the whole-buffer trim).
type base64Reader struct {
	r       io.Reader
	buf     []byte // chunk-sized read buffer
	pending []byte // undecoded text, at most 3 bytes between fills
	dec     []byte // decoded bytes not yet returned
	eof     bool
}

func (b *base64Reader) Read(p []byte) (int, error) {
	for len(b.dec) == 0 {
		if b.eof {
			if len(b.pending) > 0 {
				// The total stream must encode a whole number of
				// 4-character groups.
				return 0, fmt.Errorf("%w: %d stray characters at end of stream", derrors.BadBase64, len(b.pending))
			}
			return 0, io.EOF
		}
		n, err := b.r.Read(b.buf)
		for _, c := range b.buf[:n] {
			switch c {
			case ' ', '\t', '\r', '\n':
				// whitespace is trimmed, never decoded
			default:
				b.pending = append(b.pending, c)
			}
		}
		if g := len(b.pending) / 4 * 4; g > 0 {
			out := make([]byte, base64.StdEncoding.DecodedLen(g))
			m, derr := base64.StdEncoding.Decode(out, b.pending[:g])
			if derr != nil {
				return 0, fmt.Errorf("%w: %v", derrors.BadBase64, derr)
			}
			b.dec = out[:m]
			b.pending = append(b.pending[:0], b.pending[g:]...)
		}
		if err == io.EOF {
			b.eof = true
		} else if err != nil {
			return 0, err
		}
	}
	n := copy(p, b.dec)
	b.dec = b.dec[n:]
	return n, nil
}

// base64Writer incrementally encodes bytes onto an underlying text writer.
// It carries up to two pending bytes so that every write encodes whole
// 3-byte groups and the interior of the stream never contains padding;
// Close encodes the final short group with padding.
type base64Writer struct {
	w       io.Writer
	pending []byte // 0-2 carried bytes
	enc     []byte // scratch for encoded output
}

func (b *base64Writer) Write(p []byte) (int, error) {
	written := len(p)
	if len(b.pending) > 0 {
		need := 3 - len(b.pending)
		if len(p) < need {
			b.pending = append(b.pending, p...)
			return written, nil
		}
		b.pending = append(b.pending, p[:need]...)
		p = p[need:]
		if err := b.emit(b.pending); err != nil {
			return 0, err
		}
		b.pending = b.pending[:0]
	}
	g := len(p) / 3 * 3
	if err := b.emit(p[:g]); err != nil {
		return 0, err
	}
	b.pending = append(b.pending, p[g:]...)
	return written, nil
}

// Close encodes any carried bytes as the final base64 group. It does not
// close the underlying writer.
func (b *base64Writer) Close() error {
	err := b.emit(b.pending)
	b.pending = b.pending[:0]
	return err
}

func (b *base64Writer) emit(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	n := base64.StdEncoding.EncodedLen(len(src))
	if cap(b.enc) < n {
		b.enc = make([]byte, n)
	}
	buf := b.enc[:n]
	base64.StdEncoding.Encode(buf, src)
	_, err := b.w.Write(buf)
	return err
}
