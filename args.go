package coregex

import "strconv"

// Arg is a polymorphic output binding for the convenience matchers
// (FullMatch, PartialMatch, Consume, FindAndConsume — SPEC_FULL.md §4.8).
// Each Arg wraps a parse closure plus a human-readable type name used in
// diagnostics; this mirrors the corpus's preference for small constructor
// functions over exported struct literals (SPEC_FULL.md §9).
type Arg struct {
	typeName string
	parse    func(capture []byte) bool
}

func (a Arg) String() string { return a.typeName }

// Discard accepts any capture and binds nothing; useful to skip a group
// whose value the caller does not need.
func Discard() Arg {
	return Arg{typeName: "discard", parse: func([]byte) bool { return true }}
}

// Bytes binds a capture's raw bytes. The slice aliases the caller's input
// and is only valid for as long as that input is.
func Bytes(dst *[]byte) Arg {
	return Arg{typeName: "[]byte", parse: func(capture []byte) bool {
		*dst = capture
		return true
	}}
}

// String binds a capture as an owned, copied string.
func String(dst *string) Arg {
	return Arg{typeName: "string", parse: func(capture []byte) bool {
		*dst = string(capture)
		return true
	}}
}

// Byte binds a capture that must be exactly one byte long.
func Byte(dst *byte) Arg {
	return Arg{typeName: "byte", parse: func(capture []byte) bool {
		if len(capture) != 1 {
			return false
		}
		*dst = capture[0]
		return true
	}}
}

// Int binds a capture parsed as a base-10 signed int, rejecting leading
// whitespace, trailing junk, and overflow of the platform int width.
func Int(dst *int) Arg {
	return Arg{typeName: "int", parse: func(capture []byte) bool {
		n, err := strconv.ParseInt(string(capture), 10, strconv.IntSize)
		if err != nil {
			return false
		}
		*dst = int(n)
		return true
	}}
}

// Int32 binds a capture parsed as a base-10 signed 32-bit int.
func Int32(dst *int32) Arg {
	return Arg{typeName: "int32", parse: func(capture []byte) bool {
		n, err := strconv.ParseInt(string(capture), 10, 32)
		if err != nil {
			return false
		}
		*dst = int32(n)
		return true
	}}
}

// Int64 binds a capture parsed as a base-10 signed 64-bit int.
func Int64(dst *int64) Arg {
	return Arg{typeName: "int64", parse: func(capture []byte) bool {
		n, err := strconv.ParseInt(string(capture), 10, 64)
		if err != nil {
			return false
		}
		*dst = n
		return true
	}}
}

// Uint binds a capture parsed as a base-10 unsigned int. strconv.ParseUint
// rejects a leading '-' outright, satisfying SPEC_FULL.md §4.8's "leading
// '-' on unsigned targets" rejection requirement.
func Uint(dst *uint) Arg {
	return Arg{typeName: "uint", parse: func(capture []byte) bool {
		n, err := strconv.ParseUint(string(capture), 10, strconv.IntSize)
		if err != nil {
			return false
		}
		*dst = uint(n)
		return true
	}}
}

// Uint32 binds a capture parsed as a base-10 unsigned 32-bit int.
func Uint32(dst *uint32) Arg {
	return Arg{typeName: "uint32", parse: func(capture []byte) bool {
		n, err := strconv.ParseUint(string(capture), 10, 32)
		if err != nil {
			return false
		}
		*dst = uint32(n)
		return true
	}}
}

// Uint64 binds a capture parsed as a base-10 unsigned 64-bit int.
func Uint64(dst *uint64) Arg {
	return Arg{typeName: "uint64", parse: func(capture []byte) bool {
		n, err := strconv.ParseUint(string(capture), 10, 64)
		if err != nil {
			return false
		}
		*dst = n
		return true
	}}
}

// Hex binds a capture parsed as a base-16 unsigned 64-bit int, accepting an
// optional "0x"/"0X" prefix (strconv's base-0 auto-detection).
func Hex(dst *uint64) Arg {
	return Arg{typeName: "hex", parse: func(capture []byte) bool {
		s := string(capture)
		n, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			n, err = strconv.ParseUint(s, 0, 64)
			if err != nil {
				return false
			}
		}
		*dst = n
		return true
	}}
}

// Octal binds a capture parsed as a base-8 unsigned 64-bit int.
func Octal(dst *uint64) Arg {
	return Arg{typeName: "octal", parse: func(capture []byte) bool {
		n, err := strconv.ParseUint(string(capture), 8, 64)
		if err != nil {
			return false
		}
		*dst = n
		return true
	}}
}

// Float32 binds a capture parsed as a 32-bit float.
func Float32(dst *float32) Arg {
	return Arg{typeName: "float32", parse: func(capture []byte) bool {
		f, err := strconv.ParseFloat(string(capture), 32)
		if err != nil {
			return false
		}
		*dst = float32(f)
		return true
	}}
}

// Float64 binds a capture parsed as a 64-bit float.
func Float64(dst *float64) Arg {
	return Arg{typeName: "float64", parse: func(capture []byte) bool {
		f, err := strconv.ParseFloat(string(capture), 64)
		if err != nil {
			return false
		}
		*dst = f
		return true
	}}
}
