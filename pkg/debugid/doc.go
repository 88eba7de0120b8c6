// Package debugid implements the canonical debug identifier that names a
// build's debug information across the object-file conventions used by
// different toolchains: PDB GUID+age on Windows, ELF build-id, Mach-O UUID.
//
// Symbolication, crash reporting and symbol-server tooling all need to treat
// these heterogeneous native identifiers as one comparable, serializable
// value. An ID holds a 16-byte unique value in one fixed logical byte order
// plus a 32-bit appendix (the PDB "age" counter; zero on all other
// platforms), and converts losslessly between every accepted textual and
// binary layout.
//
// # String representation
//
// The default form is the lowercase hyphenated UUID, followed by a hex
// appendix when it is nonzero:
//
//	id, err := debugid.Parse("dfb8e43a-f242-3d73-a453-aeb6a777ef75-a")
//	if err != nil {
//	    return err
//	}
//	id.String()   // "dfb8e43a-f242-3d73-a453-aeb6a777ef75-a"
//	id.Appendix() // 10
//
// The breakpad form used by minidump and symbol-server tooling concatenates
// the uppercase hex UUID with a lowercase hex age, no hyphens:
//
//	id.Breakpad() // "DFB8E43AF2423D73A453AEB6A777EF75a"
//
// Parse accepts both layouts, case-insensitively, and tolerates appendix
// widths other than the ones current toolchains emit (1 to 8 hex digits).
//
// # Byte order
//
// Microsoft tooling stores the first three GUID fields little-endian inside
// an otherwise sequential 16-byte layout. FromGUIDBytes and GUIDBytes apply
// that mixed-endian swap; FromRawBytes and RawBytes pass bytes through
// unchanged for ELF build-ids and Mach-O UUIDs, which are already in logical
// order. The same native identifier therefore compares equal no matter which
// container it was extracted from.
//
// # Integration
//
// ID implements encoding.TextMarshaler/TextUnmarshaler (which also drives
// encoding/json), encoding.BinaryMarshaler/BinaryUnmarshaler, the
// database/sql driver.Valuer and sql.Scanner contracts, and zerolog's
// LogObjectMarshaler. All operations are pure functions over immutable
// values; IDs are safe to copy, compare with ==, and use as map keys from
// any number of goroutines.
package debugid
