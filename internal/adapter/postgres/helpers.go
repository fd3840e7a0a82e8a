package postgres

import "strconv"

// itoaArg renders a positional query placeholder such as $3.
func itoaArg(n int) string {
	return "$" + strconv.Itoa(n)
}
