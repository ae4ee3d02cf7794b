package numberutils

import "strconv"

// IsInt reports whether the given string parses as an integer.
func IsInt(str string) bool {
	_, err := strconv.Atoi(str)
	return err == nil
}

// ToInt converts the given string to an integer, returning 0 when it
// cannot be parsed.
func ToInt(s string) int {
	return ToIntWithDefault(s, 0)
}

// ToIntWithDefault converts the given string to an integer, returning
// defaultVal when it cannot be parsed. Useful for optional query
// parameters where an absent or malformed value falls back to a default.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ClampInt bounds num to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
