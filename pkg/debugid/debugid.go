package debugid

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// ID is a debug identifier: a 16-byte unique value in logical (big-endian)
// byte order plus a 32-bit appendix. The zero value is the nil identifier.
//
// ID is an immutable comparable value: use ==, copy freely, key maps with it.
type ID struct {
	uuid     uuid.UUID
	appendix uint32
}

// Nil is the all-zero identifier, used as an explicit "absent/unknown"
// sentinel.
var Nil ID

// idSize is the fixed width of the unique value in bytes.
const idSize = 16

// guidByteOrder maps canonical byte positions to their location in the
// Microsoft mixed-endian GUID layout: the three leading fields (4+2+2 bytes)
// are stored little-endian, the trailing 8 bytes are sequential. The mapping
// is an involution, so it serves both directions of the conversion.
var guidByteOrder = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// FromParts constructs an ID from its UUID and appendix parts.
func FromParts(u uuid.UUID, appendix uint32) ID {
	return ID{uuid: u, appendix: appendix}
}

// FromUUID constructs an ID from a UUID with a zero appendix.
func FromUUID(u uuid.UUID) ID {
	return FromParts(u, 0)
}

// FromGUIDBytes constructs an ID from a Microsoft mixed-endian GUID and age,
// as extracted from a PDB or PE file. The three little-endian leading fields
// are swapped into logical byte order. It fails only when guid is not
// exactly 16 bytes.
func FromGUIDBytes(guid []byte, age uint32) (ID, error) {
	if len(guid) != idSize {
		return Nil, fmt.Errorf("debugid: guid must be %d bytes, got %d: %w", idSize, len(guid), ErrInvalidLength)
	}

	var u uuid.UUID
	for i, j := range guidByteOrder {
		u[i] = guid[j]
	}

	return FromParts(u, age), nil
}

// FromRawBytes constructs an ID from 16 bytes that are already in logical
// byte order, such as an ELF build-id prefix or a Mach-O UUID. It fails only
// when raw is not exactly 16 bytes.
func FromRawBytes(raw []byte, age uint32) (ID, error) {
	if len(raw) != idSize {
		return Nil, fmt.Errorf("debugid: identifier must be %d bytes, got %d: %w", idSize, len(raw), ErrInvalidLength)
	}

	var u uuid.UUID
	copy(u[:], raw)

	return FromParts(u, age), nil
}

// UUID returns the unique value part of the identifier.
func (id ID) UUID() uuid.UUID {
	return id.uuid
}

// Appendix returns the appendix part of the identifier.
//
// On Windows this is the PDB age, an incrementing build counter. On all
// other platforms it is zero.
func (id ID) Appendix() uint32 {
	return id.appendix
}

// IsNil reports whether the identifier is the all-zero sentinel.
func (id ID) IsNil() bool {
	return id == Nil
}

// GUIDBytes returns the identifier's unique value in the Microsoft
// mixed-endian GUID layout. It is the exact inverse of FromGUIDBytes; the
// appendix is not representable in this layout and is dropped.
func (id ID) GUIDBytes() [16]byte {
	var guid [16]byte
	for i, j := range guidByteOrder {
		guid[j] = id.uuid[i]
	}
	return guid
}

// RawBytes returns the identifier's unique value in logical byte order.
func (id ID) RawBytes() [16]byte {
	return id.uuid
}

// Compare returns -1, 0 or 1, ordering identifiers lexicographically over
// (unique value, appendix).
func (id ID) Compare(other ID) int {
	if c := bytes.Compare(id.uuid[:], other.uuid[:]); c != 0 {
		return c
	}
	switch {
	case id.appendix < other.appendix:
		return -1
	case id.appendix > other.appendix:
		return 1
	default:
		return 0
	}
}

// Hash64 returns an xxh3 hash of the canonical 20-byte record. Identifiers
// that compare equal hash identically, regardless of which codec produced
// them. Intended for hash-based placement in sharded symbol stores.
func (id ID) Hash64() uint64 {
	var record [20]byte
	copy(record[:], id.uuid[:])
	binary.BigEndian.PutUint32(record[16:], id.appendix)
	return xxh3.Hash(record[:])
}
