package registers

import "fmt"

// stackPage is the fixed page the 6502 stack lives in. the stack pointer
// itself only ever stores the low byte of the address.
const stackPage = 0x0100

// StackPointer is the CPU's 8 bit stack pointer. Unlike a general purpose
// Register, its Address() is always within page one - the page the 6502
// hardwires the stack to.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint8) *StackPointer {
	return &StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the raw, page-less value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the stack pointer as a full bus address in page one.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Pushed moves the stack pointer down by one, as happens after a byte has
// been pushed onto the stack.
func (sp *StackPointer) Pushed() {
	sp.value--
}

// Popped moves the stack pointer up by one, as happens before a byte is
// pulled off of the stack.
func (sp *StackPointer) Popped() {
	sp.value++
}
