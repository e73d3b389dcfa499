package order

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

const (
	// codePrefix starts every customer-facing order code.
	codePrefix = "CMD-"
	// codeSuffixLen is the number of random characters after the prefix.
	codeSuffixLen = 6
	// codeAlphabet holds the characters the random suffix draws from.
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Code is the short customer-facing order identifier, e.g. "CMD-7KQ2ZD".
// Customers quote it on the phone and couriers write it on the bag, so it
// stays short and unambiguous. Uniqueness is not guaranteed by construction;
// the checkout flow checks the generated code against existing orders and
// regenerates on collision.
type Code string

// GenerateCode produces a random order code.
//
// The suffix draws six characters from an uppercase alphanumeric alphabet,
// giving about two billion distinct codes. Collisions are possible and are
// handled by the caller via an existence check.
func GenerateCode() Code {
	suffix := make([]byte, codeSuffixLen)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.IntN(len(codeAlphabet))] //nolint:gosec // it's ok
	}

	return Code(codePrefix + string(suffix))
}

// CodeFromString parses an order code received from outside (HTTP path,
// database row). Surrounding whitespace is trimmed and the code is
// uppercased before validation, so "cmd-7kq2zd" resolves the same order
// as "CMD-7KQ2ZD".
//
// Returns:
//   - the normalized Code if the input is well-formed
//   - error if the input is empty or does not match the code format
func CodeFromString(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", errs.NewValueIsRequiredError("code")
	}

	code := Code(s)
	if err := code.Validate(); err != nil {
		return "", err
	}

	return code, nil
}

// Validate checks that the code matches the "CMD-" prefix plus six
// characters from the code alphabet.
func (c Code) Validate() error {
	s := string(c)
	if s == "" {
		return errs.NewValueIsRequiredError("code")
	}

	suffix, ok := strings.CutPrefix(s, codePrefix)
	if !ok || len(suffix) != codeSuffixLen {
		return errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%q does not match %s followed by %d characters", s, codePrefix, codeSuffixLen),
		)
	}

	for _, r := range suffix {
		if !strings.ContainsRune(codeAlphabet, r) {
			return errs.NewValueIsInvalidErrorWithCause(
				"code",
				fmt.Errorf("%q contains a character outside the code alphabet", s),
			)
		}
	}

	return nil
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}
