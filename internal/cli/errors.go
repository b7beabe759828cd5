package cli

import "fmt"

type badMonthError struct {
	value string
}

func (e badMonthError) Error() string {
	return fmt.Sprintf("invalid month %q (expected YYYY-MM)", e.value)
}
