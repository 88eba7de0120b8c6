package debugid

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String returns the canonical form: the lowercase hyphenated UUID, followed
// by "-" and the lowercase hex appendix when the appendix is nonzero.
// Parse(id.String()) reproduces id exactly.
func (id ID) String() string {
	if id.appendix == 0 {
		return id.uuid.String()
	}
	return fmt.Sprintf("%s-%x", id.uuid.String(), id.appendix)
}

// Breakpad returns the breakpad form: 32 uppercase hex digits immediately
// followed by the lowercase hex appendix. The appendix is always emitted,
// zero included, matching symbol-server file naming.
func (id ID) Breakpad() string {
	return fmt.Sprintf("%s%x", strings.ToUpper(hex.EncodeToString(id.uuid[:])), id.appendix)
}
