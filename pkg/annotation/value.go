package annotation

// Value is the closed set of shapes an annotation entry can carry.
// The unexported marker method seals the set: only this package can
// add variants, so consumers may switch over them exhaustively.
type Value interface {
	annotationValue()
}

// IntValue carries a single 32-bit integer.
type IntValue int32

// LongValue carries a single 64-bit integer.
type LongValue int64

// StringValue carries a single string.
type StringValue string

// StringStringValue carries an ordered pair of strings, typically a
// name and its value.
type StringStringValue struct {
	First  string
	Second string
}

// IntStringStringValue carries an integer with two strings.
type IntStringStringValue struct {
	Int    int32
	First  string
	Second string
}

// BytesStringStringValue carries a raw byte payload with two strings.
type BytesStringStringValue struct {
	Bytes  []byte
	First  string
	Second string
}

// LongIntIntByteByteStringValue is the composite shape used for
// packed intermediate-node metadata.
type LongIntIntByteByteStringValue struct {
	Long   int64
	Int1   int32
	Int2   int32
	Byte1  byte
	Byte2  byte
	String string
}

func (IntValue) annotationValue()                      {}
func (LongValue) annotationValue()                     {}
func (StringValue) annotationValue()                   {}
func (StringStringValue) annotationValue()             {}
func (IntStringStringValue) annotationValue()          {}
func (BytesStringStringValue) annotationValue()        {}
func (LongIntIntByteByteStringValue) annotationValue() {}
