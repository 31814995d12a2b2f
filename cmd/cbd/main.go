// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/fotoetienne/cbd/lib/transcode"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("cbd", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		encode      = flags.BoolP("encode", "e", false, "encode JSON from stdin to CBOR (default is decode)")
		base64Mode  = flags.BoolP("base64", "b", false, "base64 transport: decode base64 input / emit base64 output")
		hexMode     = flags.BoolP("hex", "x", false, "hex transport: decode hex input / emit hex output")
		diag        = flags.Bool("diag", false, "output RFC 8949 diagnostic notation instead of JSON")
		jsoncInput  = flags.Bool("jsonc", false, "allow comments and trailing commas in JSON input")
		maxDepth    = flags.Int("max-depth", 0, "maximum container nesting depth (0 = default)")
		verbose     = flags.BoolP("verbose", "v", false, "debug logging on stderr")
		showVersion = flags.Bool("version", false, "print version and exit")
	)

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(os.Stderr)
		return 2
	}

	if *showVersion {
		fmt.Printf("cbd %s\n", version)
		return 0
	}

	arguments := flags.Args()
	if len(arguments) > 1 {
		fmt.Fprintf(os.Stderr, "error: at most one file argument, got %q\n", arguments)
		printUsage(os.Stderr)
		return 2
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	input, err := readInput(arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	transcoder, err := transcode.New(transcode.Options{
		Encode:   *encode,
		Base64:   *base64Mode,
		Hex:      *hexMode,
		Diag:     *diag,
		JSONC:    *jsoncInput,
		MaxDepth: *maxDepth,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	output, err := transcoder.Run(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if _, err := os.Stdout.Write(output); err != nil {
		fmt.Fprintf(os.Stderr, "error: write stdout: %v\n", err)
		return 1
	}
	return 0
}

// readInput reads the whole input: the file named by the optional
// positional argument, otherwise stdin.
func readInput(arguments []string) ([]byte, error) {
	if len(arguments) == 1 {
		data, err := os.ReadFile(arguments[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arguments[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `cbd - transcode between CBOR and JSON

Usage:
  cbd [flags] [file]

Reads from the file argument if given, otherwise stdin. Writes the
result to stdout. Default direction is CBOR in, compact JSON out.

Flags:
  -e, --encode      encode JSON to CBOR (default is decode)
  -b, --base64      base64 transport for the CBOR side
  -x, --hex         hex transport for the CBOR side
      --diag        RFC 8949 diagnostic notation output (decode only)
      --jsonc       allow comments and trailing commas in JSON input
      --max-depth N maximum container nesting depth
  -v, --verbose     debug logging on stderr
      --version     print version and exit
  -h, --help        this help

Examples:
  cat file.cbor | cbd                     decode CBOR to JSON
  echo '{"key": "value"}' | cbd -e        encode JSON to CBOR
  echo oWNrZXlldmFsdWU | cbd -b           decode base64-wrapped CBOR
  echo '{"n": 42}' | cbd -e -b            encode to unpadded base64
  echo 'a1636b65796576616c7565' | cbd -x  decode hex-dumped CBOR
  cbd --diag message.cbor                 inspect CBOR structure
`)
}
