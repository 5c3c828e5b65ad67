// codes.go — the closed set of result codes and their default messages.
//
// Intent:
//   - One Success value and a fixed list of failure categories with stable
//     numeric values (0x00..0x1D). Values never change between releases.
//   - Every code has exactly one default message, resolved by an exhaustive
//     switch in Text() rather than a parallel ordinal-indexed table.
//   - Names and messages are part of the output contract of Result.Message.
package fruitbowl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Code classifies the outcome of an operation. The zero value is Success.
type Code uint8

const (
	Success           Code = 0x00
	InvalidFunction   Code = 0x01
	AccessDenied      Code = 0x02
	NotEnoughMemory   Code = 0x03
	InvalidData       Code = 0x04
	DiskFull          Code = 0x05
	BadCommand        Code = 0x06
	CRC               Code = 0x07
	WriteFault        Code = 0x08
	ReadFault         Code = 0x09
	EndOfFile         Code = 0x0A
	NotSupported      Code = 0x0B
	FileExists        Code = 0x0C
	CannotMake        Code = 0x0D
	InvalidPassword   Code = 0x0E
	InvalidParameter  Code = 0x0F
	OpenFailed        Code = 0x10
	BufferOverflow    Code = 0x11
	DirNotEmpty       Code = 0x12
	BindFailed        Code = 0x13
	InvalidUTF8       Code = 0x14
	UnknownHash       Code = 0x15
	UnknownReference  Code = 0x16
	ExceptionOccurred Code = 0x17
	UndefinedParent   Code = 0x18
	Incomplete        Code = 0x19
	NoOperation       Code = 0x1A
	Timeout           Code = 0x1B
	NoSystemCall      Code = 0x1C
	InvalidState      Code = 0x1D
)

// ErrUnknownCode is returned when a name or number does not map to a Code.
var ErrUnknownCode = errors.New("unknown result code")

// allCodes is the ordered set of codes. Unexported so callers cannot mutate it.
var allCodes = []Code{
	Success,
	InvalidFunction,
	AccessDenied,
	NotEnoughMemory,
	InvalidData,
	DiskFull,
	BadCommand,
	CRC,
	WriteFault,
	ReadFault,
	EndOfFile,
	NotSupported,
	FileExists,
	CannotMake,
	InvalidPassword,
	InvalidParameter,
	OpenFailed,
	BufferOverflow,
	DirNotEmpty,
	BindFailed,
	InvalidUTF8,
	UnknownHash,
	UnknownReference,
	ExceptionOccurred,
	UndefinedParent,
	Incomplete,
	NoOperation,
	Timeout,
	NoSystemCall,
	InvalidState,
}

// Codes returns a copy of every defined code in numeric order.
func Codes() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes)
	return out
}

// IsValid reports whether c is one of the defined codes.
func (c Code) IsValid() bool { return c <= InvalidState }

// OK reports whether c is Success.
func (c Code) OK() bool { return c == Success }

// Text returns the fixed, human-readable default message for c.
// It never returns an empty string.
func (c Code) Text() string {
	switch c {
	case Success:
		return "[0x00] The operation completed successfully"
	case InvalidFunction:
		return "[0x01] Incorrect function called"
	case AccessDenied:
		return "[0x02] Access is denied"
	case NotEnoughMemory:
		return "[0x03] Not enough memory to complete the command"
	case InvalidData:
		return "[0x04] The data is invalid"
	case DiskFull:
		return "[0x05] Not enough disk space to complete the command"
	case BadCommand:
		return "[0x06] The command is not recognized"
	case CRC:
		return "[0x07] Data error (cyclic redundency check)"
	case WriteFault:
		return "[0x08] Cannot write to the specified device"
	case ReadFault:
		return "[0x09] Cannot read from the specified device"
	case EndOfFile:
		return "[0x0A] Reached EOF before completing the command"
	case NotSupported:
		return "[0x0B] The command is not supported"
	case FileExists:
		return "[0x0C] The file already exists"
	case CannotMake:
		return "[0x0D] Cannot create the specified directory or file"
	case InvalidPassword:
		return "[0x0E] The specified password is not correct"
	case InvalidParameter:
		return "[0x0F] The specified parameter is not correct"
	case OpenFailed:
		return "[0x10] Could not open the specified file or device"
	case BufferOverflow:
		return "[0x11] The buffer exceeded its size"
	case DirNotEmpty:
		return "[0x12] The directory is not empty"
	case BindFailed:
		return "[0x13] Could not bind to the specified address"
	case InvalidUTF8:
		return "[0x14] The character does not follow the UTF8 standard"
	case UnknownHash:
		return "[0x15] The hash is not recognized in the list of known hashes"
	case UnknownReference:
		return "[0x16] The reference is to an undefined object"
	case ExceptionOccurred:
		return "[0x17] The command encountered an exception"
	case UndefinedParent:
		return "[0x18] The parent of the object is undefined"
	case Incomplete:
		return "[0x19] The operation has not completed"
	case NoOperation:
		return "[0x1A] No operation was performed"
	case Timeout:
		return "[0x1B] The operation did not complete before a timeout expired"
	case NoSystemCall:
		return "[0x1C] System call is not available to use"
	case InvalidState:
		return "[0x1D] The current state is not valid"
	}
	return fmt.Sprintf("[0x%02X] Unknown result code", uint8(c))
}

// String returns the constant name of c, e.g. "CRC" or "ACCESS_DENIED".
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case InvalidFunction:
		return "INVALID_FUNCTION"
	case AccessDenied:
		return "ACCESS_DENIED"
	case NotEnoughMemory:
		return "NOT_ENOUGH_MEMORY"
	case InvalidData:
		return "INVALID_DATA"
	case DiskFull:
		return "DISK_FULL"
	case BadCommand:
		return "BAD_COMMAND"
	case CRC:
		return "CRC"
	case WriteFault:
		return "WRITE_FAULT"
	case ReadFault:
		return "READ_FAULT"
	case EndOfFile:
		return "END_OF_FILE"
	case NotSupported:
		return "NOT_SUPPORTED"
	case FileExists:
		return "FILE_EXISTS"
	case CannotMake:
		return "CANNOT_MAKE"
	case InvalidPassword:
		return "INVALID_PASSWORD"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	case OpenFailed:
		return "OPEN_FAILED"
	case BufferOverflow:
		return "BUFFER_OVERFLOW"
	case DirNotEmpty:
		return "DIR_NOT_EMPTY"
	case BindFailed:
		return "BIND_FAILED"
	case InvalidUTF8:
		return "INVALID_UTF8"
	case UnknownHash:
		return "UNKNOWN_HASH"
	case UnknownReference:
		return "UNKNOWN_REFERENCE"
	case ExceptionOccurred:
		return "EXCEPTION_OCCURRED"
	case UndefinedParent:
		return "UNDEFINED_PARENT"
	case Incomplete:
		return "INCOMPLETE"
	case NoOperation:
		return "NO_OPERATION"
	case Timeout:
		return "TIMEOUT"
	case NoSystemCall:
		return "NO_SYSTEM_CALL"
	case InvalidState:
		return "INVALID_STATE"
	}
	return fmt.Sprintf("CODE_0x%02X", uint8(c))
}

// CodeFromInt converts n to a Code, rejecting values that overflow a byte or
// do not name a defined code.
func CodeFromInt(n int) (Code, error) {
	v, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, fmt.Errorf("code %d: %w", n, ErrUnknownCode)
	}
	c := Code(v)
	if !c.IsValid() {
		return 0, fmt.Errorf("code 0x%02X: %w", v, ErrUnknownCode)
	}
	return c, nil
}

// ParseCode resolves a code by name ("crc", "ACCESS_DENIED") or by number
// ("7", "0x07").
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty code: %w", ErrUnknownCode)
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		if n < 0 || n > 0xFF {
			return 0, fmt.Errorf("code %q: %w", s, ErrUnknownCode)
		}
		return CodeFromInt(int(n))
	}
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for _, c := range allCodes {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("code %q: %w", s, ErrUnknownCode)
}
