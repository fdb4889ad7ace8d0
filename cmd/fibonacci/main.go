// fibonacci benchmark
//
// Usage: fibonacci [n]

package main

import (
	"github.com/pain-lng/pain/internal/benchmain"
	"github.com/pain-lng/pain/internal/kernel"
)

func main() {
	benchmain.Main(kernel.FibonacciKernel)
}
