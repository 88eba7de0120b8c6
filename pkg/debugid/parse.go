package debugid

import (
	"encoding/hex"
	"strconv"

	"github.com/google/uuid"
)

// Parse parses a textual debug identifier. Grammar alternatives are tried
// most specific first:
//
//  1. Hyphenated UUID ("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"), optionally
//     followed by "-" or " " and a hex age.
//  2. 32 concatenated hex digits, optionally followed by a hex age with no
//     separator (the breakpad symbol-file naming), a single "-" tolerated
//     in between.
//
// Hex digits are matched case-insensitively. The age is 1 to 8 hex digits;
// a missing age means zero. The recognizer is a single deterministic pass:
// the first alternative whose fixed prefix matches decides the error class
// for the remainder.
func Parse(s string) (ID, error) {
	if hasHyphenLayout(s) {
		return parseHyphenated(s)
	}
	return parseCompact(s)
}

// FromBreakpad parses a breakpad-style identifier, such as
// "DFB8E43AF2423D73A453AEB6A777EF75a". It accepts everything Parse accepts;
// breakpad inputs are a subset.
func FromBreakpad(s string) (ID, error) {
	return Parse(s)
}

func hasHyphenLayout(s string) bool {
	return len(s) >= 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}

func parseHyphenated(s string) (ID, error) {
	u, err := decodeHexBody(s[:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36])
	if err != nil {
		return Nil, parseError(s, err)
	}

	rest := s[36:]
	if rest == "" {
		return FromParts(u, 0), nil
	}

	// The age must be set off by a separator; a bare hex digit here is a
	// misplaced hyphen layout, not an appendix.
	if rest[0] != '-' && rest[0] != ' ' {
		return Nil, parseError(s, ErrInvalidCharacter)
	}

	appendix, err := parseAppendix(rest[1:])
	if err != nil {
		return Nil, parseError(s, err)
	}
	return FromParts(u, appendix), nil
}

func parseCompact(s string) (ID, error) {
	if len(s) < 32 {
		for i := 0; i < len(s); i++ {
			if !isHexDigit(s[i]) {
				return Nil, parseError(s, ErrInvalidCharacter)
			}
		}
		return Nil, parseError(s, ErrInvalidLength)
	}

	u, err := decodeHexBody(s[:32])
	if err != nil {
		return Nil, parseError(s, err)
	}

	rest := s[32:]
	if rest == "" {
		return FromParts(u, 0), nil
	}
	if rest[0] == '-' {
		rest = rest[1:]
	}

	appendix, err := parseAppendix(rest)
	if err != nil {
		return Nil, parseError(s, err)
	}
	return FromParts(u, appendix), nil
}

func decodeHexBody(body string) (uuid.UUID, error) {
	var u uuid.UUID
	if _, err := hex.Decode(u[:], []byte(body)); err != nil {
		return uuid.Nil, ErrInvalidCharacter
	}
	return u, nil
}

// parseAppendix decodes the trailing age segment. The segment is always hex:
// breakpad tooling writes the age in hex, and a hex/decimal dual rule would
// make ages like "10" ambiguous. Width is not pinned to what current
// toolchains emit; anything that fits 32 bits parses.
func parseAppendix(s string) (uint32, error) {
	if s == "" {
		return 0, ErrInvalidAppendix
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, ErrInvalidAppendix
	}
	return uint32(v), nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
