package errors

// Convenience functions for common error patterns

// Argument and input errors

// InvalidArgument reports a violated algorithm precondition. The message is
// part of the observable contract and is kept verbatim.
func InvalidArgument(message string) *BenchError {
	return New(CategoryInvalidArgument, SeverityError, message)
}

func IsInvalidArgument(err error) bool {
	return IsCategory(err, CategoryInvalidArgument)
}

func InvalidInput(message string, cause error) *BenchError {
	return Wrap(cause, CategoryInput, SeverityWarning, message)
}

// Config errors

func ConfigInvalid(field, reason string) *BenchError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ConfigLoad(path string, cause error) *BenchError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to load configuration").
		WithContext("path", path)
}

// Output errors

func FileSystemError(operation, path string, cause error) *BenchError {
	return Wrap(cause, CategoryFileSystem, SeverityError, operation+" failed").
		WithContext("path", path)
}

func StoreError(operation string, cause error) *BenchError {
	return Wrap(cause, CategoryStore, SeverityError, "history store "+operation+" failed")
}

// Internal errors

func InternalError(message string, cause error) *BenchError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
