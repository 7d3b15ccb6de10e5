package primes_test

import (
	"math"
	"primecount/pkg/primes"
	"testing"

	"github.com/stretchr/testify/require"
)

// sieve returns flags[i] == true when i is prime, for 0 <= i <= n.
func sieve(n int) []bool {
	flags := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		flags[i] = true
	}
	for p := 2; p*p <= n; p++ {
		if flags[p] {
			for j := p * p; j <= n; j += p {
				flags[j] = false
			}
		}
	}

	return flags
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want bool
	}{
		{name: "min int", n: math.MinInt64, want: false},
		{name: "negative prime magnitude", n: -7, want: false},
		{name: "zero", n: 0, want: false},
		{name: "one", n: 1, want: false},
		{name: "two", n: 2, want: true},
		{name: "three", n: 3, want: true},
		{name: "four", n: 4, want: false},
		{name: "square of prime", n: 49, want: false},
		{name: "lower bound", n: 100, want: false},
		{name: "first prime above 100", n: 101, want: true},
		{name: "largest 32-bit prime", n: 2147483647, want: true},
		{name: "product of two large primes", n: 1000003 * 1000033, want: false},
		{name: "max int64 is composite", n: math.MaxInt64, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, primes.IsPrime(tt.n))
		})
	}
}

func TestIsPrimeMatchesSieve(t *testing.T) {
	const limit = 100000
	flags := sieve(limit)

	for n := 0; n <= limit; n++ {
		if got := primes.IsPrime(int64(n)); got != flags[n] {
			t.Fatalf("IsPrime(%d) = %v, sieve says %v", n, got, flags[n])
		}
	}
}

func TestIsPrimeDeterministic(t *testing.T) {
	var c primes.TrialDivision
	for _, n := range []int64{97, 100, 7919, 7921} {
		first := c.IsPrime(n)
		for range 3 {
			require.Equal(t, first, c.IsPrime(n), "IsPrime(%d) changed between calls", n)
		}
	}
}
