package harness

import "math"

// EdgeCase is one fixed input of the edge-case suite.
type EdgeCase struct {
	Description string
	Input       []int32
}

// EdgeCases returns the fixed suite in presentation order.
func EdgeCases() []EdgeCase {
	return []EdgeCase{
		{"Single positive element", []int32{5}},
		{"Single negative element", []int32{-3}},
		{"All negative elements", []int32{-5, -2, -8, -1}},
		{"All positive elements", []int32{1, 2, 3, 4, 5}},
		{"All negative elements (descending)", []int32{-1, -2, -3, -4, -5}},
		{"Mixed positive/negative", []int32{-2, 1, -3, 4, -1, 2, 1, -5, 4}},
		{"All zeros", []int32{0, 0, 0, 0}},
		{"Mixed with zeros", []int32{-1, 0, -2, 3, 0, -1, 2}},
		{"Large positive values", []int32{math.MaxInt32, -1, math.MaxInt32}},
		{"Extreme values", []int32{math.MinInt32 + 1, math.MaxInt32, math.MinInt32 + 1}},
	}
}
