package eventually

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                10,
}

// AssertionError reports that the expected condition did not hold by the
// final evaluation. Actual is the value of that evaluation.
type AssertionError struct {
	Message  string
	Expected string
	Actual   interface{}
}

func (e *AssertionError) Error() string {
	if e.Message == "" {
		return e.mismatch()
	}
	return e.Message + "\n" + e.mismatch()
}

func (e *AssertionError) mismatch() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expected: %s\n", e.Expected)
	fmt.Fprintf(&b, "     but: was %s", spewConfig.Sprintf("%+v", e.Actual))
	return b.String()
}

func IsAssertionError(err error) bool {
	var failure *AssertionError
	return errors.As(err, &failure)
}
