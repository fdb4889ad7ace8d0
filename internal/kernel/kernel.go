// Numeric Kernels
//
// Shared implementations for the factorial, fibonacci and sum benchmark
// programs and their benchmarks. All arithmetic is int64 and wraps silently
// on overflow.

package kernel

// Kernel describes one benchmark program: its name, the input used when no
// argument is given, and the function it computes.
type Kernel struct {
	Name    string
	Default int64
	Fn      func(n int64) int64
}

var (
	FibonacciKernel = Kernel{Name: "fibonacci", Default: 20, Fn: Fibonacci}
	FactorialKernel = Kernel{Name: "factorial", Default: 15, Fn: Factorial}
	SumKernel       = Kernel{Name: "sum", Default: 10000, Fn: Sum}
)

// All returns every kernel in benchmark run order.
func All() []Kernel {
	return []Kernel{FibonacciKernel, FactorialKernel, SumKernel}
}

// Lookup returns the kernel with the given name.
func Lookup(name string) (Kernel, bool) {
	for _, k := range All() {
		if k.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}

// ============================================================================
// Factorial
// ============================================================================

// Factorial returns n! by plain recursion. Any n <= 1, negatives included,
// yields 1.
func Factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// ============================================================================
// Fibonacci
// ============================================================================

// Fibonacci returns the n-th Fibonacci number using the naive double
// recursion. It must stay exponential: the call overhead is what gets
// measured.
func Fibonacci(n int64) int64 {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// ============================================================================
// Sum
// ============================================================================

// Sum returns 0 + 1 + ... + n. The loop body never runs for n < 0.
func Sum(n int64) int64 {
	result := int64(0)
	for i := int64(0); i <= n; i++ {
		result += i
	}
	return result
}
