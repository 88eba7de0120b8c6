package debugid

import (
	"encoding/hex"
)

// CodeID identifies the code file that a debug identifier's debug
// information describes: the ELF build-id, the Mach-O UUID, or the PE
// timestamp+size pair. Unlike ID it has no fixed width and no byte-order
// normalization; it is an opaque, case-preserving hex string compared
// exactly as written. The zero value is the nil sentinel.
type CodeID struct {
	inner string
}

// NewCodeID wraps an identifier string as-is, preserving case.
func NewCodeID(s string) CodeID {
	return CodeID{inner: s}
}

// CodeIDFromBinary encodes raw identifier bytes as lowercase hex.
func CodeIDFromBinary(b []byte) CodeID {
	return CodeID{inner: hex.EncodeToString(b)}
}

// ParseCodeIDHex validates that s is well-formed hex of even length and
// wraps it, preserving case. It fails with ErrInvalidLength on odd length
// and ErrInvalidCharacter on a non-hex byte.
func ParseCodeIDHex(s string) (CodeID, error) {
	if len(s)%2 != 0 {
		return CodeID{}, parseError(s, ErrInvalidLength)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return CodeID{}, parseError(s, ErrInvalidCharacter)
		}
	}
	return CodeID{inner: s}, nil
}

// IsNil reports whether the identifier is empty.
func (c CodeID) IsNil() bool {
	return c.inner == ""
}

// String returns the identifier as written.
func (c CodeID) String() string {
	return c.inner
}

// MarshalText encodes the identifier string.
func (c CodeID) MarshalText() ([]byte, error) {
	return []byte(c.inner), nil
}

// UnmarshalText validates and stores a hex identifier.
func (c *CodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseCodeIDHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
