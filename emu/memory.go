package emu

// pageSize is the granularity at which Memory allocates backing storage.
// Pages are allocated lazily on first touch so a 32-bit address space
// (including a stack anchored near 0x7FFF0000, per loader.DefaultStackTop)
// can be addressed without pre-allocating 4GiB up front.
const pageSize = 4096

// Memory is a byte-addressable flat memory implementing the collaborator
// contract the instruction semantics are specified against: byte, half, and
// word loads and stores. Half-word and word accesses assume natural
// alignment, per §6; callers are responsible for supplying aligned
// addresses.
type Memory struct {
	pages map[uint32][]byte
}

// NewMemory creates an empty memory; all addresses read as zero until
// written.
func NewMemory() *Memory {
	return &Memory{pages: make(map[uint32][]byte)}
}

func (m *Memory) page(addr uint32) []byte {
	base := addr &^ (pageSize - 1)
	p, ok := m.pages[base]
	if !ok {
		p = make([]byte, pageSize)
		m.pages[base] = p
	}
	return p
}

// LoadProgram copies program bytes into memory starting at entry. The
// caller is responsible for setting the register file's PC to entry
// separately; this only populates the byte store.
func (m *Memory) LoadProgram(entry uint64, program []byte) {
	for i, b := range program {
		m.Write8(entry+uint64(i), b)
	}
}

// Read8 reads a single byte.
func (m *Memory) Read8(addr uint64) uint8 {
	a := uint32(addr)
	return m.page(a)[a&(pageSize-1)]
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint64, value uint8) {
	a := uint32(addr)
	m.page(a)[a&(pageSize-1)] = value
}

// Read16 reads a little-endian half-word.
func (m *Memory) Read16(addr uint64) uint16 {
	return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
}

// Write16 writes a little-endian half-word.
func (m *Memory) Write16(addr uint64, value uint16) {
	m.Write8(addr, byte(value))
	m.Write8(addr+1, byte(value>>8))
}

// Read32 reads a little-endian word.
func (m *Memory) Read32(addr uint64) uint32 {
	return uint32(m.Read8(addr)) | uint32(m.Read8(addr+1))<<8 |
		uint32(m.Read8(addr+2))<<16 | uint32(m.Read8(addr+3))<<24
}

// Write32 writes a little-endian word.
func (m *Memory) Write32(addr uint64, value uint32) {
	m.Write8(addr, byte(value))
	m.Write8(addr+1, byte(value>>8))
	m.Write8(addr+2, byte(value>>16))
	m.Write8(addr+3, byte(value>>24))
}

// Read64 reads two adjacent little-endian words as a 64-bit value. Used by
// FLD/FSD, which the spec describes as writing two adjacent 32-bit slots to
// form a double.
func (m *Memory) Read64(addr uint64) uint64 {
	return uint64(m.Read32(addr)) | uint64(m.Read32(addr+4))<<32
}

// Write64 writes a 64-bit value as two adjacent little-endian words.
func (m *Memory) Write64(addr uint64, value uint64) {
	m.Write32(addr, uint32(value))
	m.Write32(addr+4, uint32(value>>32))
}
