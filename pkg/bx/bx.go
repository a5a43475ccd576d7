// Package bx packs and unpacks fixed-width integers on little-endian byte
// slices, used for all on-disk and on-wire layouts in graindb.
package bx

import "encoding/binary"

func U16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func U32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func U64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func PutU16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func I32(b []byte) int32  { return int32(U32(b)) }
func PutI32(b []byte, v int32) { PutU32(b, uint32(v)) }

func I64(b []byte) int64  { return int64(U64(b)) }
func PutI64(b []byte, v int64) { PutU64(b, uint64(v)) }
