// Package heap implements the table heap: a chain of slotted table
// pages storing variable-length tuples, plus the table heap and its
// sequential iterator.
package heap

import (
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/txn"
	"github.com/graindb/graindb/internal/types"
	"github.com/graindb/graindb/pkg/bx"
)

const (
	headerSize = 4 + 2 + 2 // next_page_id:i32, num_tuples:u16, num_deleted_tuples:u16
	slotSize   = 2 + 2 + 4 + 4 + 1
)

const (
	offNextPageID = 0
	offNumTuples  = 4
	offNumDeleted = 6
)

// TupleMeta is the per-tuple metadata: insert/delete transaction
// sequence numbers plus a deleted flag.
type TupleMeta struct {
	InsertTxn int32
	DeleteTxn int32
	IsDeleted bool
}

// TablePage is a thin view over a storage.Page's byte payload,
// interpreting it as a slotted layout.
type TablePage struct {
	data *[storage.PageSize]byte
}

func NewTablePage(data *[storage.PageSize]byte) *TablePage {
	return &TablePage{data: data}
}

// Init sets next_page_id = -1 and all counts to 0.
func (p *TablePage) Init() {
	for i := range p.data[:headerSize] {
		p.data[i] = 0
	}
	bx.PutI32(p.data[offNextPageID:offNextPageID+4], storage.InvalidPageID)
}

func (p *TablePage) NextPageID() int32 {
	return bx.I32(p.data[offNextPageID : offNextPageID+4])
}

func (p *TablePage) SetNextPageID(pid int32) {
	bx.PutI32(p.data[offNextPageID:offNextPageID+4], pid)
}

func (p *TablePage) NumTuples() int {
	return int(bx.U16(p.data[offNumTuples : offNumTuples+2]))
}

func (p *TablePage) NumDeletedTuples() int {
	return int(bx.U16(p.data[offNumDeleted : offNumDeleted+2]))
}

func (p *TablePage) setNumTuples(n int) {
	bx.PutU16(p.data[offNumTuples:offNumTuples+2], uint16(n))
}

func (p *TablePage) setNumDeletedTuples(n int) {
	bx.PutU16(p.data[offNumDeleted:offNumDeleted+2], uint16(n))
}

func (p *TablePage) slotOffset(slot int) int {
	return headerSize + slot*slotSize
}

func (p *TablePage) readSlot(slot int) (offset, length uint16, meta TupleMeta) {
	o := p.slotOffset(slot)
	s := p.data[o : o+slotSize]
	offset = bx.U16(s[0:2])
	length = bx.U16(s[2:4])
	meta = TupleMeta{
		InsertTxn: bx.I32(s[4:8]),
		DeleteTxn: bx.I32(s[8:12]),
		IsDeleted: s[12] != 0,
	}
	return
}

func (p *TablePage) writeSlot(slot int, offset, length uint16, meta TupleMeta) {
	o := p.slotOffset(slot)
	s := p.data[o : o+slotSize]
	bx.PutU16(s[0:2], offset)
	bx.PutU16(s[2:4], length)
	bx.PutI32(s[4:8], meta.InsertTxn)
	bx.PutI32(s[8:12], meta.DeleteTxn)
	if meta.IsDeleted {
		s[12] = 1
	} else {
		s[12] = 0
	}
}

// InsertTuple appends tup's bytes to the backward-growing tuple area and
// a new slot entry, exact offset arithmetic. Returns
// (slotID, true) on success, or (0, false) if there is no room.
func (p *TablePage) InsertTuple(meta TupleMeta, tup []byte) (int, bool) {
	numSlots := p.NumTuples()

	tupleEnd := storage.PageSize
	if numSlots > 0 {
		prevOff, _, _ := p.readSlot(numSlots - 1)
		tupleEnd = int(prevOff)
	}
	tupleEnd -= len(tup)

	slotsEnd := headerSize + (numSlots+1)*slotSize
	if tupleEnd < slotsEnd {
		return 0, false
	}

	copy(p.data[tupleEnd:tupleEnd+len(tup)], tup)
	p.writeSlot(numSlots, uint16(tupleEnd), uint16(len(tup)), meta)
	p.setNumTuples(numSlots + 1)
	if meta.IsDeleted {
		p.setNumDeletedTuples(p.NumDeletedTuples() + 1)
	}
	return numSlots, true
}

// GetTuple returns the tuple and metadata at slot, bounds-checked.
func (p *TablePage) GetTuple(slot int) (TupleMeta, types.Tuple, bool) {
	if slot < 0 || slot >= p.NumTuples() {
		return TupleMeta{}, types.Tuple{}, false
	}
	off, length, meta := p.readSlot(slot)
	data := make([]byte, length)
	copy(data, p.data[off:int(off)+int(length)])
	return meta, types.Tuple{Data: data}, true
}

// GetTupleMeta returns only the metadata at slot.
func (p *TablePage) GetTupleMeta(slot int) (TupleMeta, bool) {
	if slot < 0 || slot >= p.NumTuples() {
		return TupleMeta{}, false
	}
	_, _, meta := p.readSlot(slot)
	return meta, true
}

// UpdateTupleMeta replaces slot's metadata in place. If the update flips
// is_deleted from false to true, the deleted-tuple count is incremented
// (it is never decremented — undelete is not part of the core).
func (p *TablePage) UpdateTupleMeta(slot int, meta TupleMeta) bool {
	if slot < 0 || slot >= p.NumTuples() {
		return false
	}
	off, length, old := p.readSlot(slot)
	p.writeSlot(slot, off, length, meta)
	if !old.IsDeleted && meta.IsDeleted {
		p.setNumDeletedTuples(p.NumDeletedTuples() + 1)
	}
	return true
}

// InvalidTxnSeq is the on-page sentinel written for the no-op stub
// transaction, matching txn.Invalid().Seq().
var InvalidTxnSeq = txn.Invalid().Seq()
