// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"fmt"
	"strings"

	"github.com/pdiddy/book-pipeline/pkg/types"
)

// BuildArgs turns stage options into "--key=value" flags in option order.
// Keys and values pass through untouched so options the stage does not know
// about still reach the tool. A nil config yields no flags.
func BuildArgs(sc *types.StageConfig) []string {
	if sc == nil || sc.Config == nil {
		return []string{}
	}
	args := make([]string, 0, len(sc.Config))
	for _, opt := range sc.Config {
		args = append(args, fmt.Sprintf("--%s=%v", opt.Key, opt.Value))
	}
	return args
}

// CommandLine renders the invocation in shell form for display, e.g.
//
//	prince-books --media=A4 "build/pdf/index.html" -o "build/pdf/book.pdf"
func CommandLine(bin string, flags []string, input, output string) string {
	var b strings.Builder
	b.WriteString(bin)
	for _, f := range flags {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	fmt.Fprintf(&b, " %q -o %q", input, output)
	return b.String()
}
