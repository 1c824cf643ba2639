package service

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ClampLimit forces n into [1, MaxLimit]. Adapters clamp; the HTTP layer rejects.
func ClampLimit(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}
