package cpu

import "fmt"

// Namespace distinguishes a caller's mistake (or an I/O failure) from an
// exception raised by a simulated instruction. See spec.md's caller-facing
// contract: the two namespaces never overlap and a Fault carries no payload.
type Namespace uint8

const (
	NamespaceLibrary Namespace = iota + 1
	NamespaceException
)

// Kind names a specific fault within its Namespace.
type Kind uint8

const (
	KindNotImplemented Kind = iota
	KindInvalidArgument
	KindInvalidHandle
	KindFileReadError
	KindFileWriteError
)

const (
	KindBreak Kind = iota
	KindInvalidAddress
	KindInvalidAlignment
	KindAccessViolation
	KindInvalidInstruction
	KindArithmeticOverflow
	KindCoprocessorUnusable
	KindSystemCall
)

// Fault is the value type returned by every operation in package cpu that
// can fail. It carries no payload: two Faults with the same Namespace and
// Kind are the same fault, and are compared with errors.Is against the
// exported sentinels below.
type Fault struct {
	Namespace Namespace
	Kind      Kind
}

func (f *Fault) Error() string {
	code, desc := faultInfo(f.Namespace, f.Kind)
	return fmt.Sprintf("%s: %s", code, desc)
}

// library faults: caller mistakes and I/O failures.
var (
	ErrNotImplemented  = &Fault{NamespaceLibrary, KindNotImplemented}
	ErrInvalidArgument = &Fault{NamespaceLibrary, KindInvalidArgument}
	ErrInvalidHandle   = &Fault{NamespaceLibrary, KindInvalidHandle}
	ErrFileReadError   = &Fault{NamespaceLibrary, KindFileReadError}
	ErrFileWriteError  = &Fault{NamespaceLibrary, KindFileWriteError}
)

// architectural exceptions: raised by a simulated instruction.
var (
	ErrBreak               = &Fault{NamespaceException, KindBreak}
	ErrInvalidAddress      = &Fault{NamespaceException, KindInvalidAddress}
	ErrInvalidAlignment    = &Fault{NamespaceException, KindInvalidAlignment}
	ErrAccessViolation     = &Fault{NamespaceException, KindAccessViolation}
	ErrInvalidInstruction  = &Fault{NamespaceException, KindInvalidInstruction}
	ErrArithmeticOverflow  = &Fault{NamespaceException, KindArithmeticOverflow}
	ErrCoprocessorUnusable = &Fault{NamespaceException, KindCoprocessorUnusable}
	ErrSystemCall          = &Fault{NamespaceException, KindSystemCall}
)

var libraryFaultInfo = [...]struct{ code, desc string }{
	{"L1", "not implemented"},
	{"L2", "invalid argument"},
	{"L3", "invalid handle"},
	{"L4", "file read error"},
	{"L5", "file write error"},
}

var exceptionFaultInfo = [...]struct{ code, desc string }{
	{"E1", "break"},
	{"E2", "invalid address"},
	{"E3", "invalid alignment"},
	{"E4", "access violation"},
	{"E5", "invalid instruction"},
	{"E6", "arithmetic overflow"},
	{"E7", "coprocessor unusable"},
	{"E8", "system call"},
}

func faultInfo(ns Namespace, k Kind) (code, desc string) {
	var table []struct{ code, desc string }
	switch ns {
	case NamespaceLibrary:
		table = libraryFaultInfo[:]
	case NamespaceException:
		table = exceptionFaultInfo[:]
	}
	if int(k) < len(table) {
		return table[k].code, table[k].desc
	}
	return "E0", "unhandled exception"
}

// FaultName returns the human-readable name of a Fault, the Go equivalent
// of the original C simulator's errors[16]/exceptions[16] lookup tables.
func FaultName(f *Fault) string {
	if f == nil {
		return "no error"
	}
	_, desc := faultInfo(f.Namespace, f.Kind)
	return desc
}
