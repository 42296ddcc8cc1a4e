package codec

import "fmt"

// Binary encoding helpers for curve objects (groups, points, scalars).
// Use codec.Marshal(...) and codec.Unmarshal(...) / codec.UnmarshalUsing(...) at the top level; they recover from
// panics raised by the individual MarshalTo / UnmarshalFrom implementations and return them as errors.

// IntSize is the encoded size of an integer (32-bit, big-endian).
const IntSize = 4

type Marshaler interface {
	MarshalTo(target Target)
}

type MarshalerWithNilSupport interface {
	Marshaler

	// IsNil returns true if the object is nil.
	IsNil() bool
}

type Unmarshaler[T any] interface {
	UnmarshalFrom(source Source) T
}

type Codec[T any] interface {
	MarshalerWithNilSupport
	Unmarshaler[T]
}

type Target = *target
type Source = *source

// NewSource returns a Source reading from data. The slice is not copied.
func NewSource(data []byte) Source {
	return &source{data}
}

// Marshals the given (non-nil) object into a byte slice.
// Panics during marshaling are recovered and returned as errors.
func Marshal(object Marshaler) ([]byte, error) {
	target := &target{}
	if err := target.Marshal(object); err != nil {
		return nil, err
	}
	return target.buffer, nil
}

// Unmarshal the given byte slice into the object provided by unmarshaler. Panics during unmarshaling are recovered
// and returned as errors. All input bytes must be consumed.
func Unmarshal[T any](data []byte, unmarshaler Unmarshaler[T]) (T, error) {
	return UnmarshalUsing(data, unmarshaler.UnmarshalFrom)
}

// Unmarshal the given byte slice using the provided function. Panics during unmarshaling are recovered and returned
// as errors. All input bytes must be consumed.
func UnmarshalUsing[T any](data []byte, unmarshalFunc func(Source) T) (result T, err error) {
	src := &source{data}
	result, err = ReadUsing(src, unmarshalFunc)
	if err != nil {
		return result, err
	}
	if src.Available() > 0 {
		var zero T
		return zero, fmt.Errorf("unmarshaling did not consume all bytes, %d bytes remaining", src.Available())
	}
	return result, nil
}

// Read the next object from the given source using the provided function. Panics during unmarshaling are recovered
// and returned as errors. Additional data remaining in the source is not considered an error.
func ReadUsing[T any](src Source, unmarshalFunc func(Source) T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, fmt.Errorf("recovered panic while unmarshaling: %v", r)
		}
	}()
	return unmarshalFunc(src), nil
}
