// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"io"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// Outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}%d holds{{/}}\n", n)
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	Fprintf(formatter.ColorableStdOut, format, args...)
}

// Fprintf renders formatter markup to [w].
func Fprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, formatter.F(format, args...))
}
