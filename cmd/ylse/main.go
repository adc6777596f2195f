// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ylse converts Youtubers Life save files between their on-disk envelope
// (base64 over gzip) and plaintext.
//
// Usage:
//
//	ylse [flags]          # decode stdin
//	ylse [flags] BASE64   # decode the given envelope text
//
// The flags are:
//
//	-encode
//	    Compress input with gzip then base64-encode it (the reverse direction)
//	-stream
//	    Stream the conversion with bounded memory instead of buffering it
//	-infile FILE
//	    Read input from FILE instead of stdin or the positional argument
//	-o FILE
//	    Write output to FILE instead of stdout
//	-encoding NAME
//	    After decoding, convert the payload to UTF-8 from the named IANA
//	    charset before printing
//	-validate
//	    After decoding, parse the payload as save tables and report on them
//	    instead of printing it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bagaspratmanta/YLSE/internal/config"
	"github.com/bagaspratmanta/YLSE/internal/envelope"
	"github.com/bagaspratmanta/YLSE/internal/log"
	"github.com/bagaspratmanta/YLSE/internal/save"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	encodeMode = flag.Bool("encode", false, "gzip-compress then base64-encode the input instead of decoding")
	streamMode = flag.Bool("stream", false, "stream the conversion with bounded memory")
	inFile     = flag.String("infile", "", "read input from this file")
	outFile    = flag.String("o", "", "write output to this file")
	charset    = flag.String("encoding", "", "decode output bytes to UTF-8 text using this IANA charset (e.g. utf-8)")
	chunkSize  = flag.Int("chunk", 0, "streaming chunk size in bytes (0 means configured default)")
	configFile = flag.String("config", "", "path to a YAML config file")
	validate   = flag.Bool("validate", false, "parse the decoded payload as save tables and report on them")
	logLevel   = flag.String("loglevel", "", "minimum log severity (debug, info, warning, error)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [BASE64]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "    where BASE64 is envelope text to decode; if omitted, read stdin\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	ctx := context.Background()
	log.SetLevel(*logLevel)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf(ctx, "loading config: %v", err)
	}
	if *chunkSize > 0 {
		cfg.ChunkSize = *chunkSize
	}
	if err := run(ctx, cfg, flag.Arg(0)); err != nil {
		log.Fatalf(ctx, "%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, arg string) error {
	in, closeIn, err := openInput(arg)
	if err != nil {
		return err
	}
	defer closeIn()
	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}

	if *encodeMode {
		err = runEncode(cfg, in, out)
	} else {
		err = runDecode(ctx, cfg, in, out)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func runEncode(cfg *config.Config, in io.Reader, out io.Writer) error {
	if *streamMode {
		return envelope.StreamEncode(in, out, cfg.EnvelopeOptions()...)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	text, err := envelope.Encode(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func runDecode(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if *streamMode && !*validate && *charset == "" {
		return envelope.StreamDecode(in, out, cfg.EnvelopeOptions()...)
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	payload, err := envelope.Decode(text)
	if err != nil {
		return err
	}
	if *validate {
		return report(ctx, cfg, payload, out)
	}
	if *charset != "" {
		payload, err = toUTF8(*charset, payload)
		if err != nil {
			return err
		}
	}
	_, err = out.Write(payload)
	return err
}

// report parses the decoded payload as save tables and prints a summary:
// validation issues, if any, then per-table row counts.
func report(ctx context.Context, cfg *config.Config, payload []byte, out io.Writer) error {
	f, err := save.LoadPlaintext(ctx, string(payload), cfg.ParseOptions()...)
	if err != nil {
		return err
	}
	var sb strings.Builder
	if issues := f.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintln(&sb, issue)
		}
	} else {
		fmt.Fprintln(&sb, "save data appears valid")
	}
	for _, t := range f.Tables.Tables() {
		fmt.Fprintf(&sb, "%s: %d rows, %d columns\n", t.Name, len(t.Rows), len(f.Headers.Columns(t)))
	}
	_, err = io.WriteString(out, sb.String())
	return err
}

func toUTF8(name string, payload []byte) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %v", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q has no decoder", name)
	}
	return enc.NewDecoder().Bytes(payload)
}

func openInput(arg string) (io.Reader, func() error, error) {
	switch {
	case *inFile != "":
		f, err := os.Open(*inFile)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	case arg != "":
		if *encodeMode {
			return nil, nil, errors.New("positional input is only for decoding; use -infile or stdin to encode")
		}
		return strings.NewReader(arg), func() error { return nil }, nil
	default:
		return os.Stdin, func() error { return nil }, nil
	}
}

func openOutput() (io.Writer, func() error, error) {
	if *outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(*outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
