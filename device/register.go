package device

// Word is the width of a memory-mapped register.
type Word interface {
	~uint8 | ~uint16
}

// Register is a memory-mapped register. On TinyGo *volatile.Register8 and
// *volatile.Register16 satisfy it; host builds use *SimRegister.
type Register[T Word] interface {
	Get() T
	Set(value T)
}

// Reg is a read-modify-write accessor over one register.
type Reg[T Word] struct {
	hw Register[T]
}

// Read returns the current register value
func (r Reg[T]) Read() T {
	return r.hw.Get()
}

// Write replaces the register value
func (r Reg[T]) Write(value T) {
	r.hw.Set(value)
}

// Modify reads the register, writes f(previous) back and returns the
// previous value.
func (r Reg[T]) Modify(f func(prev T) T) T {
	prev := r.hw.Get()
	r.hw.Set(f(prev))
	return prev
}

// SetBits sets the bits in mask
func (r Reg[T]) SetBits(mask T) {
	r.Modify(func(v T) T { return v | mask })
}

// ClearBits clears the bits in mask
func (r Reg[T]) ClearBits(mask T) {
	r.Modify(func(v T) T { return v &^ mask })
}

// HasBits reports whether any bit in mask is set
func (r Reg[T]) HasBits(mask T) bool {
	return r.hw.Get()&mask != 0
}

// Field is a multi-bit field inside a register.
type Field[T Word] struct {
	Shift uint8
	Width uint8
}

// Mask returns the in-place mask of the field
func (f Field[T]) Mask() T {
	var one T = 1
	return (one<<f.Width - 1) << f.Shift
}

// Get extracts the field from a register value
func (f Field[T]) Get(v T) T {
	return (v & f.Mask()) >> f.Shift
}

// Put returns v with the field replaced by x. Bits of x that do not fit
// are dropped.
func (f Field[T]) Put(v, x T) T {
	return v&^f.Mask() | (x<<f.Shift)&f.Mask()
}
