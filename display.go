// display.go — message rendering shared by both build configurations.
//
// Kept in an untagged file on purpose: the concise output contract must be
// byte-identical whether or not backtrace support is compiled in, so both
// Context implementations funnel through this single helper.
package xgxerrctx

import "fmt"

// displayString renders a message value as text.
//
// Rendering order: string as-is, then error, then fmt.Stringer, then
// fmt.Sprint as the general fallback. error is checked before Stringer
// because it is the more specific contract for values in an error chain.
func displayString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
