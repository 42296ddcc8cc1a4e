package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

type target struct {
	buffer []byte
}

// Written returns the number of bytes written so far.
func (t *target) Written() int {
	return len(t.buffer)
}

// Marshal writes the given object into this target. Panics raised by the object's MarshalTo are recovered and
// returned as errors. Use Write to propagate them instead.
func (t *target) Marshal(object Marshaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic during marshaling: %v", r)
		}
	}()

	t.Write(object)
	return nil
}

// Write the given (non-nil) object into this target. Panics raised during marshaling are NOT recovered.
func (t *target) Write(object Marshaler) {
	if object == nil {
		panic("Write called with nil object")
	}
	object.MarshalTo(t)
}

// WriteInt writes value as a 32-bit signed integer in BigEndian byte order.
func (t *target) WriteInt(value int) {
	if value > math.MaxInt32 || value < math.MinInt32 {
		panic(fmt.Sprintf("WriteInt called with value %d, which is out of range of int32", value))
	}
	t.buffer = binary.BigEndian.AppendUint32(t.buffer, uint32(int32(value)))
}

func (t *target) WriteUint8(value byte) {
	t.buffer = append(t.buffer, value)
}

func (t *target) WriteBytes(value []byte) {
	t.buffer = append(t.buffer, value...)
}

// WriteLengthPrefixedBytes writes len(value) followed by value. A nil slice is written with length -1.
func (t *target) WriteLengthPrefixedBytes(value []byte) {
	if value == nil {
		t.WriteInt(-1)
		return
	}
	t.WriteInt(len(value))
	t.WriteBytes(value)
}
