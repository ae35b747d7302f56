package sanitizer

// Apply runs value through the given transformations in order. It is the
// building block for per-content-type pipelines.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the given transformations.
// Preferred over repeated Apply calls when the same chain is used for
// every request, as the engine does for its content-type table.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
