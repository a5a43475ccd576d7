package types

import "github.com/graindb/graindb/pkg/bx"

// RID is a record identifier: (page_id, slot_id) within a table heap.
type RID struct {
	PageID int32
	Slot   uint16
}

func (r RID) IsValid() bool { return r.PageID >= 0 }

// Tuple is a schema-shaped byte payload plus the RID it was read from
// (zero-value RID for tuples not yet persisted).
type Tuple struct {
	RID  RID
	Data []byte
}

// BuildTuple serializes values against schema:
// fixed region first (raw bytes for inlined columns, u32 offsets for
// not-inlined columns), then a tail region holding each not-inlined
// value's [len:u32][bytes].
func BuildTuple(values []Value, schema *Schema) Tuple {
	tailLen := 0
	for _, idx := range schema.NotInlinedIndices() {
		tailLen += len(values[idx].Serialize())
	}
	total := schema.FixedLen() + tailLen
	buf := make([]byte, total)

	tailOff := schema.FixedLen()
	for i, col := range schema.Columns {
		v := values[i]
		if col.IsInlined() {
			copy(buf[col.Offset():col.Offset()+col.FixedLen()], v.Serialize())
			continue
		}
		bx.PutU32(buf[col.Offset():col.Offset()+4], uint32(tailOff))
		payload := v.Serialize()
		copy(buf[tailOff:], payload)
		tailOff += len(payload)
	}
	return Tuple{Data: buf}
}

// GetValue is the inverse of BuildTuple for column colIdx: read directly
// from the fixed region for inlined columns; for not-inlined columns,
// follow the offset into the tail region and decode [len][bytes].
func (t Tuple) GetValue(schema *Schema, colIdx int) Value {
	col := schema.Columns[colIdx]
	region := t.Data[col.Offset() : col.Offset()+col.FixedLen()]
	switch col.Kind {
	case KindInteger:
		return DeserializeInteger(region)
	case KindBoolean:
		return DeserializeBoolean(region)
	case KindVarchar:
		off := bx.U32(region)
		return DeserializeVarchar(t.Data[off:])
	default:
		return NullValue(col.Kind)
	}
}

// Len returns the total serialized length of the tuple payload.
func (t Tuple) Len() int { return len(t.Data) }
