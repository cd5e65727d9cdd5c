package utils

// IsPrime - Returns true if n is a prime number.
// Uses 6k +/- 1 trial division, which is plenty for the universe sizes a hash family is built over.
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime strictly greater than n.
// For n < 2 the answer is 2.
func NextPrime(n int64) (prime int64) {
	if n < 2 {
		return 2
	}

	prime = n + 1
	if prime > 3 && prime%2 == 0 {
		prime++
	}

	for !IsPrime(prime) {
		if prime == 2 {
			prime++
			continue
		}
		prime += 2
	}

	return
}

// FloorMod - Returns x modulo m with the sign of m, so for m > 0 the result is always in [0, m).
// This differs from Go's % operator only for negative x.
func FloorMod(x, m int64) int64 {
	r := x % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}

	return r
}
