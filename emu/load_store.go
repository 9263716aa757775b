package emu

// LoadStoreUnit implements RV32I loads and stores (§4.2). Every address is
// rs1 + a sign-extended immediate, already assembled by the decoder.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

func (lsu *LoadStoreUnit) addr(rs1 uint8, imm int32) uint64 {
	return uint64(lsu.regFile.ReadReg(rs1) + uint32(imm))
}

// LB loads a byte, sign-extended to 32 bits.
func (lsu *LoadStoreUnit) LB(rd, rs1 uint8, imm int32) {
	value := lsu.memory.Read8(lsu.addr(rs1, imm))
	lsu.regFile.WriteReg(rd, uint32(int32(int8(value))))
}

// LBU loads a byte, zero-extended to 32 bits.
func (lsu *LoadStoreUnit) LBU(rd, rs1 uint8, imm int32) {
	value := lsu.memory.Read8(lsu.addr(rs1, imm))
	lsu.regFile.WriteReg(rd, uint32(value))
}

// LH loads a halfword, sign-extended to 32 bits.
func (lsu *LoadStoreUnit) LH(rd, rs1 uint8, imm int32) {
	value := lsu.memory.Read16(lsu.addr(rs1, imm))
	lsu.regFile.WriteReg(rd, uint32(int32(int16(value))))
}

// LHU loads a halfword, zero-extended to 32 bits.
func (lsu *LoadStoreUnit) LHU(rd, rs1 uint8, imm int32) {
	value := lsu.memory.Read16(lsu.addr(rs1, imm))
	lsu.regFile.WriteReg(rd, uint32(value))
}

// LW loads a word.
func (lsu *LoadStoreUnit) LW(rd, rs1 uint8, imm int32) {
	lsu.regFile.WriteReg(rd, lsu.memory.Read32(lsu.addr(rs1, imm)))
}

// SB stores the low byte of rs2.
func (lsu *LoadStoreUnit) SB(rs1, rs2 uint8, imm int32) {
	lsu.memory.Write8(lsu.addr(rs1, imm), uint8(lsu.regFile.ReadReg(rs2)))
}

// SH stores the low halfword of rs2.
func (lsu *LoadStoreUnit) SH(rs1, rs2 uint8, imm int32) {
	lsu.memory.Write16(lsu.addr(rs1, imm), uint16(lsu.regFile.ReadReg(rs2)))
}

// SW stores rs2.
func (lsu *LoadStoreUnit) SW(rs1, rs2 uint8, imm int32) {
	lsu.memory.Write32(lsu.addr(rs1, imm), lsu.regFile.ReadReg(rs2))
}
