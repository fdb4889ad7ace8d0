// factorial benchmark
//
// Usage: factorial [n]

package main

import (
	"github.com/pain-lng/pain/internal/benchmain"
	"github.com/pain-lng/pain/internal/kernel"
)

func main() {
	benchmain.Main(kernel.FactorialKernel)
}
