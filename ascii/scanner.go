package ascii

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/polylat/polylat/coefficient"
)

// Scanner tokenizes a dump stream into whitespace-separated words, the
// granularity every reader in this package operates at.
type Scanner struct {
	sc  *bufio.Scanner
	cur string
	err error
}

// NewScanner wraps r for word-at-a-time reading.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Next advances to the next token, returning false at EOF or on a prior error.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.sc.Scan() {
		s.err = s.sc.Err()
		return false
	}
	s.cur = s.sc.Text()
	return true
}

// Token returns the current token.
func (s *Scanner) Token() string { return s.cur }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// Expect advances and requires the token to equal want exactly.
func (s *Scanner) Expect(want string) error {
	if !s.Next() {
		return fmt.Errorf("%w: expected %q, got EOF", ErrMalformed, want)
	}
	if s.cur != want {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformed, want, s.cur)
	}
	return nil
}

// Int advances and parses the token as a machine integer.
func (s *Scanner) Int() (int, error) {
	if !s.Next() {
		return 0, fmt.Errorf("%w: expected integer, got EOF", ErrMalformed)
	}
	n, err := strconv.Atoi(s.cur)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, s.cur)
	}
	return n, nil
}

// Coefficient advances and parses the token as a decimal Coefficient.
func (s *Scanner) Coefficient() (coefficient.Coefficient, error) {
	if !s.Next() {
		return coefficient.Coefficient{}, fmt.Errorf("%w: expected coefficient, got EOF", ErrMalformed)
	}
	c, ok := coefficient.SetString(s.cur, 10)
	if !ok {
		return coefficient.Coefficient{}, fmt.Errorf("%w: %q is not a coefficient", ErrMalformed, s.cur)
	}
	return c, nil
}
