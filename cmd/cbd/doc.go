// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Command cbd transcodes between CBOR and JSON on standard streams.
//
// With no flags, cbd reads CBOR from stdin and writes compact JSON to
// stdout:
//
//	$ cat file.cbor | cbd
//	{"key": "value"}
//
// With -e, the direction reverses: JSON in, CBOR out:
//
//	$ echo '{"key": "value"}' | cbd -e > file.cbor
//
// The -b flag routes the binary side through base64, so CBOR payloads
// can travel through logs and shell pipelines as text:
//
//	$ echo oWNrZXlldmFsdWU | cbd -b
//	{"key": "value"}
//
// -x does the same with hex, --diag prints RFC 8949 diagnostic
// notation instead of JSON, and --jsonc accepts commented JSON on the
// encode side. Input comes from stdin or from an optional trailing
// file path argument. Errors go to stderr and exit non-zero; no
// partial output is ever written.
package main
