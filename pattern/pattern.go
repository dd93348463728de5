// Package pattern pre-flights caller-supplied regex patterns before they
// become chips or raw query fragments.
package pattern

import (
	"regexp"

	"github.com/pkg/errors"
)

// Check compiles each pattern in order and reports the first failure,
// naming the offending pattern. A nil return means all patterns are
// syntactically well formed; whether they make sense for the target field
// is the backend's call. Callers show the error text verbatim and block
// submission until it clears.
func Check(patterns []string) (err error) {

	for _, pat := range patterns {
		_, err = regexp.Compile(pat)
		if err != nil {
			err = errors.Wrapf(err, "invalid pattern %q", pat)
			return
		}
	}

	return
}
