// Package types implements the typed value / tuple / schema model:
// inlined vs. not-inlined column layout, little-endian on-disk encoding,
// and three-valued comparison logic.
package types

import (
	"bytes"
	"fmt"

	"github.com/graindb/graindb/pkg/bx"
)

// Kind identifies a value's/column's SQL type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindBoolean
	KindVarchar
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "INTEGER"
	case KindBoolean:
		return "BOOLEAN"
	case KindVarchar:
		return "VARCHAR"
	default:
		return "INVALID"
	}
}

// CmpBool is a three-valued logical result: comparisons and boolean
// combinators may be Unknown when either operand is null.
type CmpBool uint8

const (
	CmpFalse CmpBool = iota
	CmpTrue
	CmpUnknown
)

func boolToCmp(b bool) CmpBool {
	if b {
		return CmpTrue
	}
	return CmpFalse
}

// Value is a tagged, possibly-null typed value.
type Value struct {
	kind   Kind
	isNull bool
	i      int32
	b      bool
	s      string
}

func NullValue(kind Kind) Value { return Value{kind: kind, isNull: true} }

func NewInteger(v int32) Value  { return Value{kind: KindInteger, i: v} }
func NewBoolean(v bool) Value   { return Value{kind: KindBoolean, b: v} }
func NewVarchar(v string) Value { return Value{kind: KindVarchar, s: v} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsNull() bool  { return v.isNull }
func (v Value) AsInteger() int32 { return v.i }
func (v Value) AsBoolean() bool  { return v.b }
func (v Value) AsString() string { return v.s }

// Serialize writes v's type-specific byte encoding (the tail/inline
// payload bytes, never the not-inlined offset word).
func (v Value) Serialize() []byte {
	switch v.kind {
	case KindInteger:
		buf := make([]byte, 4)
		bx.PutI32(buf, v.i)
		return buf
	case KindBoolean:
		if v.b {
			return []byte{1}
		}
		return []byte{0}
	case KindVarchar:
		buf := make([]byte, 4+len(v.s))
		bx.PutU32(buf[:4], uint32(len(v.s)))
		copy(buf[4:], v.s)
		return buf
	default:
		panic(fmt.Sprintf("types: serialize of invalid kind"))
	}
}

// FixedLen returns the inline byte width for inlined kinds.
func (k Kind) FixedLen() int {
	switch k {
	case KindInteger:
		return 4
	case KindBoolean:
		return 1
	default:
		return 0
	}
}

// IsInlined reports whether values of this kind live entirely in the
// fixed region of a tuple.
func (k Kind) IsInlined() bool {
	return k == KindInteger || k == KindBoolean
}

// DeserializeInteger reads a 4-byte little-endian INTEGER from the fixed
// region at the given column offset.
func DeserializeInteger(data []byte) Value {
	return NewInteger(bx.I32(data[:4]))
}

// DeserializeBoolean reads a 1-byte BOOLEAN from the fixed region.
func DeserializeBoolean(data []byte) Value {
	return NewBoolean(data[0] != 0)
}

// DeserializeVarchar reads [len:u32][bytes] starting at data[0].
func DeserializeVarchar(data []byte) Value {
	n := bx.U32(data[:4])
	return NewVarchar(string(data[4 : 4+n]))
}

// Add/Sub/Mul/Div implement INTEGER arithmetic; non-integer operands or
// a null operand yield a null INTEGER.
func (v Value) Add(other Value) Value { return v.arith(other, func(a, b int32) int32 { return a + b }) }
func (v Value) Sub(other Value) Value { return v.arith(other, func(a, b int32) int32 { return a - b }) }
func (v Value) Mul(other Value) Value { return v.arith(other, func(a, b int32) int32 { return a * b }) }
func (v Value) Div(other Value) Value {
	if other.kind == KindInteger && !other.isNull && other.i == 0 {
		return NullValue(KindInteger)
	}
	return v.arith(other, func(a, b int32) int32 { return a / b })
}

func (v Value) arith(other Value, f func(a, b int32) int32) Value {
	if v.isNull || other.isNull || v.kind != KindInteger || other.kind != KindInteger {
		return NullValue(KindInteger)
	}
	return NewInteger(f(v.i, other.i))
}

// Equal, Less, etc. implement the comparison rules: numeric
// interpretation for INTEGER, byte-lexicographic for VARCHAR, either
// null operand yields CmpUnknown.
func (v Value) Equal(other Value) CmpBool   { return v.compare(other, func(c int) bool { return c == 0 }) }
func (v Value) NotEqual(other Value) CmpBool { return v.compare(other, func(c int) bool { return c != 0 }) }
func (v Value) Less(other Value) CmpBool    { return v.compare(other, func(c int) bool { return c < 0 }) }
func (v Value) LessEqual(other Value) CmpBool { return v.compare(other, func(c int) bool { return c <= 0 }) }
func (v Value) Greater(other Value) CmpBool { return v.compare(other, func(c int) bool { return c > 0 }) }
func (v Value) GreaterEqual(other Value) CmpBool {
	return v.compare(other, func(c int) bool { return c >= 0 })
}

func (v Value) compare(other Value, pred func(c int) bool) CmpBool {
	if v.isNull || other.isNull {
		return CmpUnknown
	}
	switch v.kind {
	case KindInteger:
		return boolToCmp(pred(cmpInt(v.i, other.i)))
	case KindBoolean:
		return boolToCmp(pred(cmpInt(b2i(v.b), b2i(other.b))))
	case KindVarchar:
		return boolToCmp(pred(bytes.Compare([]byte(v.s), []byte(other.s))))
	default:
		return CmpUnknown
	}
}

func cmpInt(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// And/Or implement three-valued logic over boolean values (used by
// planner-level logical combinators, left as an extension point in
// planner; the helpers live here so evaluation stays in one place).
func (c CmpBool) And(other CmpBool) CmpBool {
	if c == CmpFalse || other == CmpFalse {
		return CmpFalse
	}
	if c == CmpUnknown || other == CmpUnknown {
		return CmpUnknown
	}
	return CmpTrue
}

func (c CmpBool) Or(other CmpBool) CmpBool {
	if c == CmpTrue || other == CmpTrue {
		return CmpTrue
	}
	if c == CmpUnknown || other == CmpUnknown {
		return CmpUnknown
	}
	return CmpFalse
}

func (c CmpBool) IsTrue() bool { return c == CmpTrue }
