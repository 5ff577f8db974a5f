// Package kadane finds the maximum-sum contiguous subarray of an int32
// sequence in a single pass while counting every primitive operation the scan
// performs.
//
// The scan starts a new candidate range only when the accumulated running sum
// is negative (not when the current element alone is negative), and replaces
// the best range only on a strict improvement, so the earliest maximal range
// wins ties.
//
// Operation accounting for an input of length n:
//
//   - memory allocations: 2 (the counter and the result)
//   - array accesses: n+1 (seq[0] is read twice during initialization)
//   - comparisons: 3n-2 (n loop-guard evaluations including the exit check,
//     plus the sign test and the improvement test of each iteration)
//   - assignments: 5 for initialization, then per iteration 1 for the element
//     read, 2 on a reset or 1 on an extension, and 3 per strict improvement
package kadane

import (
	"fmt"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
)

// MaxInputSize is the largest sequence accepted by ValidateInput.
const MaxInputSize = 1_000_000

const (
	msgNull     = "Array cannot be null"
	msgEmpty    = "Array cannot be empty"
	msgTooLarge = "Array size exceeds maximum limit of 1,000,000 elements"

	msgInputNull  = "Input array cannot be null"
	msgInputEmpty = "Input array cannot be empty"
)

// Result is the outcome of one invocation. StartIndex and EndIndex are
// inclusive and zero-based.
type Result struct {
	MaxSum     int64
	StartIndex int
	EndIndex   int
	Metrics    Metrics
}

func (r Result) String() string {
	return fmt.Sprintf("Max Sum: %d, Range: [%d, %d], %s", r.MaxSum, r.StartIndex, r.EndIndex, r.Metrics)
}

// Len returns the number of elements in the maximal range.
func (r Result) Len() int { return r.EndIndex - r.StartIndex + 1 }

// FindMaxSubarray runs the instrumented scan. A nil sequence and an empty
// sequence are rejected with distinct invalid-argument errors; the size limit
// is not checked here (see ValidateInput).
func FindMaxSubarray(seq []int32) (Result, error) {
	if err := checkPresent(seq, msgNull, msgEmpty); err != nil {
		return Result{}, err
	}

	c := NewCounter()
	c.IncMemoryAllocations()

	maxSum := int64(seq[0])
	c.IncArrayAccesses()
	c.IncAssignments()

	currentSum := int64(seq[0])
	c.IncArrayAccesses()
	c.IncAssignments()

	startIndex, endIndex, tempStart := 0, 0, 0
	c.IncAssignments()
	c.IncAssignments()
	c.IncAssignments()

	for i := 1; ; i++ {
		c.IncComparisons()
		if i >= len(seq) {
			break
		}

		currentElement := int64(seq[i])
		c.IncArrayAccesses()
		c.IncAssignments()

		c.IncComparisons()
		if currentSum < 0 {
			currentSum = currentElement
			tempStart = i
			c.IncAssignments()
			c.IncAssignments()
		} else {
			currentSum += currentElement
			c.IncAssignments()
		}

		c.IncComparisons()
		if currentSum > maxSum {
			maxSum = currentSum
			startIndex = tempStart
			endIndex = i
			c.IncAssignments()
			c.IncAssignments()
			c.IncAssignments()
		}
	}

	c.IncMemoryAllocations()
	return Result{
		MaxSum:     maxSum,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		Metrics:    c.Snapshot(),
	}, nil
}

// ValidateInput applies the presence checks and the MaxInputSize limit.
func ValidateInput(seq []int32) error {
	if err := checkPresent(seq, msgInputNull, msgInputEmpty); err != nil {
		return err
	}
	if len(seq) > MaxInputSize {
		return errors.InvalidArgument(msgTooLarge).WithContext("size", len(seq))
	}
	return nil
}

func checkPresent(seq []int32, nullMsg, emptyMsg string) error {
	if seq == nil {
		return errors.InvalidArgument(nullMsg)
	}
	if len(seq) == 0 {
		return errors.InvalidArgument(emptyMsg)
	}
	return nil
}
