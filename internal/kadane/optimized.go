package kadane

// FindMaxSubarrayOptimized returns the same Result as FindMaxSubarray,
// including identical Metrics, without touching a Counter inside the loop.
// Only resets and improvements are tallied; every other count is a function
// of the input length.
func FindMaxSubarrayOptimized(seq []int32) (Result, error) {
	if err := checkPresent(seq, msgNull, msgEmpty); err != nil {
		return Result{}, err
	}

	maxSum := int64(seq[0])
	currentSum := maxSum
	startIndex, endIndex, tempStart := 0, 0, 0
	var resets, improvements uint64

	for i, v := range seq[1:] {
		if currentSum < 0 {
			currentSum = int64(v)
			tempStart = i + 1
			resets++
		} else {
			currentSum += int64(v)
		}
		if currentSum > maxSum {
			maxSum = currentSum
			startIndex = tempStart
			endIndex = i + 1
			improvements++
		}
	}

	return Result{
		MaxSum:     maxSum,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		Metrics:    derivedMetrics(uint64(len(seq)), resets, improvements),
	}, nil
}

// derivedMetrics reproduces the instrumented scan's accounting for an input
// of length n with the given number of resets and strict improvements.
func derivedMetrics(n, resets, improvements uint64) Metrics {
	iterations := n - 1
	return Metrics{
		Comparisons:       n + 2*iterations,
		ArrayAccesses:     2 + iterations,
		MemoryAllocations: 2,
		Assignments:       5 + 2*iterations + resets + 3*improvements,
	}
}
