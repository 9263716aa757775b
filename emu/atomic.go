package emu

// AtomicUnit implements the weakly-modeled A extension (§4.4): since only a
// single hart is simulated, LR/SC/AMO all reduce to a plain load, compute,
// and store with no reservation tracking or cross-hart ordering.
type AtomicUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewAtomicUnit creates a new AtomicUnit connected to the given register
// file and memory.
func NewAtomicUnit(regFile *RegFile, memory *Memory) *AtomicUnit {
	return &AtomicUnit{regFile: regFile, memory: memory}
}

// LRW loads a word from [rs1] into rd. No reservation is recorded.
func (u *AtomicUnit) LRW(rd, rs1 uint8) {
	addr := u.regFile.ReadReg(rs1)
	u.regFile.WriteReg(rd, u.memory.Read32(uint64(addr)))
}

// SCW stores rs2 to [rs1] and always reports success (0 in rd): this model
// does not track reservations across memory.
func (u *AtomicUnit) SCW(rd, rs1, rs2 uint8) {
	addr := u.regFile.ReadReg(rs1)
	u.memory.Write32(uint64(addr), u.regFile.ReadReg(rs2))
	u.regFile.WriteReg(rd, 0)
}

// amoLoad reads the pre-op value from [rs1], writes it to rd, and returns
// it along with the address for the subsequent store.
func (u *AtomicUnit) amoLoad(rd, rs1 uint8) (addr uint32, old uint32) {
	addr = u.regFile.ReadReg(rs1)
	old = u.memory.Read32(uint64(addr))
	u.regFile.WriteReg(rd, old)
	return addr, old
}

// AMOSWAPW atomically swaps rs2 into [rs1], returning the pre-op value in
// rd.
func (u *AtomicUnit) AMOSWAPW(rd, rs1, rs2 uint8) {
	addr, _ := u.amoLoad(rd, rs1)
	u.memory.Write32(uint64(addr), u.regFile.ReadReg(rs2))
}

// AMOADDW atomically adds rs2 to [rs1], returning the pre-op value in rd.
func (u *AtomicUnit) AMOADDW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	u.memory.Write32(uint64(addr), old+u.regFile.ReadReg(rs2))
}

// AMOXORW atomically XORs rs2 into [rs1], returning the pre-op value in rd.
func (u *AtomicUnit) AMOXORW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	u.memory.Write32(uint64(addr), old^u.regFile.ReadReg(rs2))
}

// AMOANDW atomically ANDs rs2 into [rs1], returning the pre-op value in rd.
func (u *AtomicUnit) AMOANDW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	u.memory.Write32(uint64(addr), old&u.regFile.ReadReg(rs2))
}

// AMOORW atomically ORs rs2 into [rs1], returning the pre-op value in rd.
func (u *AtomicUnit) AMOORW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	u.memory.Write32(uint64(addr), old|u.regFile.ReadReg(rs2))
}

// AMOMINW atomically stores the signed minimum of [rs1] and rs2, returning
// the pre-op value in rd. §9 flags the source for not writing the pre-op
// value here; this implementation follows the ISA instead.
func (u *AtomicUnit) AMOMINW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	rs2val := u.regFile.ReadRegSigned(rs2)
	if int32(old) < rs2val {
		return
	}
	u.memory.Write32(uint64(addr), uint32(rs2val))
}

// AMOMAXW atomically stores the signed maximum of [rs1] and rs2, returning
// the pre-op value in rd.
func (u *AtomicUnit) AMOMAXW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	rs2val := u.regFile.ReadRegSigned(rs2)
	if int32(old) > rs2val {
		return
	}
	u.memory.Write32(uint64(addr), uint32(rs2val))
}

// AMOMINUW atomically stores the unsigned minimum of [rs1] and rs2,
// returning the pre-op value in rd.
func (u *AtomicUnit) AMOMINUW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	rs2val := u.regFile.ReadReg(rs2)
	if old < rs2val {
		return
	}
	u.memory.Write32(uint64(addr), rs2val)
}

// AMOMAXUW atomically stores the unsigned maximum of [rs1] and rs2,
// returning the pre-op value in rd.
func (u *AtomicUnit) AMOMAXUW(rd, rs1, rs2 uint8) {
	addr, old := u.amoLoad(rd, rs1)
	rs2val := u.regFile.ReadReg(rs2)
	if old > rs2val {
		return
	}
	u.memory.Write32(uint64(addr), rs2val)
}
