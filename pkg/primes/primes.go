// Package primes implements primality testing by trial division.
package primes

// IsPrime reports whether n is prime. It tests every divisor i in
// [2, floor(sqrt(n))] and returns false on the first one that divides n.
// Every n < 2 is not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	// i <= n/i instead of i*i <= n so candidates close to MaxInt64 cannot overflow.
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// TrialDivision is a stateless checker backed by IsPrime.
type TrialDivision struct{}

// IsPrime reports whether n is prime.
func (TrialDivision) IsPrime(n int64) bool { return IsPrime(n) }
