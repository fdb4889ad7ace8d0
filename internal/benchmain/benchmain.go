// Package benchmain is the entry point shared by the benchmark programs.
//
// Each program takes at most one argument, the input n, and prints exactly
// one line: the decimal result. Nothing is reported as an error. Arguments
// that fail to parse become 0, and extra arguments are ignored.
package benchmain

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pain-lng/pain/internal/kernel"
)

// ParseLenient parses s the way C's atoll does. It skips leading
// whitespace, accepts an optional sign, and reads the longest run of
// decimal digits that follows. Input without digits yields 0, and values
// out of range saturate at the int64 bounds.
func ParseLenient(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	// On ErrRange ParseInt already returns the saturated bound.
	n, _ := strconv.ParseInt(s[start:i], 10, 64)
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Input returns the value k should be computed for, given the arguments
// that follow the program name.
func Input(k kernel.Kernel, args []string) int64 {
	if len(args) == 0 {
		return k.Default
	}
	return ParseLenient(args[0])
}

// Run computes k for args and writes the result line to w.
func Run(k kernel.Kernel, args []string, w io.Writer) {
	fmt.Fprintln(w, k.Fn(Input(k, args)))
}

// Main runs k against the process arguments and exits 0.
func Main(k kernel.Kernel) {
	Run(k, os.Args[1:], os.Stdout)
	os.Exit(0)
}
