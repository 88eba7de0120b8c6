package debugid

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog"
)

// binaryRecordSize is the fixed width of the binary record: 16 bytes of
// unique value in logical order plus a big-endian uint32 appendix.
const binaryRecordSize = 20

// MarshalText encodes the canonical string form. Together with
// UnmarshalText this drives encoding/json, so an ID embedded in a host
// structure serializes as its string, the form existing symbol stores
// exchange.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses any form accepted by Parse.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary encodes the fixed 20-byte record.
func (id ID) MarshalBinary() ([]byte, error) {
	record := make([]byte, binaryRecordSize)
	copy(record, id.uuid[:])
	binary.BigEndian.PutUint32(record[16:], id.appendix)
	return record, nil
}

// UnmarshalBinary decodes the fixed 20-byte record.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) != binaryRecordSize {
		return fmt.Errorf("debugid: binary record must be %d bytes, got %d: %w", binaryRecordSize, len(data), ErrInvalidLength)
	}

	parsed, err := FromRawBytes(data[:16], binary.BigEndian.Uint32(data[16:]))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical string form.
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the canonical string form as a
// string or []byte; NULL scans to Nil.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("debugid: cannot scan %T into ID", src)
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler, logging the
// identifier as structured uuid and appendix fields.
func (id ID) MarshalZerologObject(e *zerolog.Event) {
	e.Str("uuid", id.uuid.String()).Uint32("appendix", id.appendix)
}
