package debugid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// msGUID is the mixed-endian byte layout a PDB stores for
// 3ae4b8df-42f2-733d-a453-aeb6a777ef75: the 4-2-2 leading fields are
// little-endian, the trailing 8 bytes sequential.
var msGUID = []byte{
	0xdf, 0xb8, 0xe4, 0x3a,
	0xf2, 0x42,
	0x3d, 0x73,
	0xa4, 0x53, 0xae, 0xb6, 0xa7, 0x77, 0xef, 0x75,
}

func TestFromParts(t *testing.T) {
	id := FromParts(testUUID, 42)
	assert.Equal(t, testUUID, id.UUID())
	assert.Equal(t, uint32(42), id.Appendix())

	assert.Equal(t, FromParts(testUUID, 0), FromUUID(testUUID))
}

func TestNilSentinel(t *testing.T) {
	var zero ID
	assert.Equal(t, Nil, zero, "the zero value is the nil identifier")
	assert.True(t, Nil.IsNil())
	assert.True(t, FromParts(uuid.Nil, 0).IsNil())
	assert.False(t, FromParts(uuid.Nil, 1).IsNil())
	assert.False(t, FromUUID(testUUID).IsNil())
}

func TestFromGUIDBytes(t *testing.T) {
	id, err := FromGUIDBytes(msGUID, 1)
	require.NoError(t, err)

	assert.Equal(t, "3ae4b8df-42f2-733d-a453-aeb6a777ef75", id.UUID().String())
	assert.Equal(t, uint32(1), id.Appendix())

	// The swap is its own inverse: converting back reproduces the exact
	// on-disk bytes.
	guid := id.GUIDBytes()
	assert.Equal(t, msGUID, guid[:])
}

func TestFromGUIDBytes_InvalidLength(t *testing.T) {
	_, err := FromGUIDBytes(msGUID[:15], 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "must be 16 bytes", "error reports the fixed identifier width")

	_, err = FromGUIDBytes(append(msGUID, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestFromRawBytes(t *testing.T) {
	id, err := FromRawBytes(msGUID, 0)
	require.NoError(t, err)

	// No swap: logical order is the input order.
	assert.Equal(t, "dfb8e43a-f242-3d73-a453-aeb6a777ef75", id.UUID().String())

	raw := id.RawBytes()
	assert.Equal(t, msGUID, raw[:])

	_, err = FromRawBytes(msGUID[:8], 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGUIDAndRawDisagreeOnByteOrder(t *testing.T) {
	fromGUID, err := FromGUIDBytes(msGUID, 0)
	require.NoError(t, err)
	fromRaw, err := FromRawBytes(msGUID, 0)
	require.NoError(t, err)

	assert.NotEqual(t, fromGUID, fromRaw)
}

func TestEqualityAcrossCodecs(t *testing.T) {
	parsed, err := Parse("3ae4b8df-42f2-733d-a453-aeb6a777ef75-2")
	require.NoError(t, err)

	converted, err := FromGUIDBytes(msGUID, 2)
	require.NoError(t, err)

	assert.Equal(t, parsed, converted)
	assert.True(t, parsed == converted, "identifiers are comparable values")
	assert.Equal(t, parsed.Hash64(), converted.Hash64())

	seen := map[ID]string{parsed: "module.pdb"}
	assert.Equal(t, "module.pdb", seen[converted])
}

func TestHash64_DistinguishesAppendix(t *testing.T) {
	a := FromParts(testUUID, 1)
	b := FromParts(testUUID, 2)
	assert.NotEqual(t, a.Hash64(), b.Hash64())
}

func TestCompare(t *testing.T) {
	low := FromParts(uuid.MustParse("00000000-0000-0000-0000-000000000001"), 5)
	high := FromParts(uuid.MustParse("00000000-0000-0000-0000-000000000002"), 0)

	assert.Equal(t, -1, low.Compare(high), "unique value dominates the appendix")
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))

	older := FromParts(testUUID, 1)
	newer := FromParts(testUUID, 2)
	assert.Equal(t, -1, older.Compare(newer))
	assert.Equal(t, 1, newer.Compare(older))
}
