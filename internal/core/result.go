package core

// Result is the universal return shape for exchange operations. A Result is
// exactly one of success-with-value or failure-with-error; the only way to
// build one is Ok or Fail, so the two states cannot be mixed.
type Result[T any] struct {
	value T
	err   *Error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = NewError(CodeAPIError, "failure constructed without an error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the success payload. On a failed Result it returns the zero
// value of T; callers must check IsSuccess (or use Unpack) first.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() *Error {
	return r.err
}

func (r Result[T]) Unpack() (T, *Error) {
	return r.value, r.err
}
