package harness

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
)

const msgInvalidIntegers = "Invalid input. Please enter valid integers."

// ParseInts splits line on whitespace (and commas) and parses each field as
// an int32. An empty line yields an empty, non-nil slice.
func ParseInts(line string) ([]int32, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, errors.InvalidInput(msgInvalidIntegers, err).WithContext("field", f)
		}
		out = append(out, int32(v))
	}
	return out, nil
}

// parseChoice returns -1 for anything that is not an integer.
func parseChoice(line string) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1
	}
	return n
}

// GenerateArray returns size values drawn uniformly from [lo, hi].
func GenerateArray(rng *rand.Rand, size int, lo, hi int32) []int32 {
	span := int64(hi) - int64(lo) + 1
	out := make([]int32, size)
	for i := range out {
		out[i] = int32(int64(lo) + rng.Int64N(span))
	}
	return out
}

// formatInts renders the first limit values as "[a, b, c]".
func formatInts(seq []int32, limit int) string {
	limit = min(limit, len(seq))
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range seq[:limit] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}
