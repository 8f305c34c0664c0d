package cmd

import (
	"errors"
	"fmt"
)

// usageError marks bad CLI input so main can exit with the usage code.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err came from CLI input validation.
func IsUsageError(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}
