package emu

// ALU implements the RV32I arithmetic, logic, and shift operations (§4.2)
// plus LUI/AUIPC. All results wrap silently on overflow; RISC-V defines no
// integer overflow trap.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD computes rd = rs1 + rs2.
func (a *ALU) ADD(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)+a.regFile.ReadReg(rs2))
}

// SUB computes rd = rs1 - rs2.
func (a *ALU) SUB(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)-a.regFile.ReadReg(rs2))
}

// AND computes rd = rs1 & rs2.
func (a *ALU) AND(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)&a.regFile.ReadReg(rs2))
}

// OR computes rd = rs1 | rs2.
func (a *ALU) OR(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)|a.regFile.ReadReg(rs2))
}

// XOR computes rd = rs1 ^ rs2.
func (a *ALU) XOR(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)^a.regFile.ReadReg(rs2))
}

// shiftAmount masks rs2 to its low 5 bits, the shift amount for the
// register-shift forms.
func (a *ALU) shiftAmount(rs2 uint8) uint32 {
	return a.regFile.ReadReg(rs2) & 0x1F
}

// SLL computes rd = rs1 << (rs2 & 0x1F).
func (a *ALU) SLL(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)<<a.shiftAmount(rs2))
}

// SRL computes rd = rs1 >>(logical) (rs2 & 0x1F).
func (a *ALU) SRL(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)>>a.shiftAmount(rs2))
}

// SRA computes rd = rs1 >>(arithmetic, sign-preserving) (rs2 & 0x1F).
func (a *ALU) SRA(rd, rs1, rs2 uint8) {
	result := a.regFile.ReadRegSigned(rs1) >> a.shiftAmount(rs2)
	a.regFile.WriteReg(rd, uint32(result))
}

// SLT writes 1 to rd if rs1 < rs2 as signed values, else 0.
func (a *ALU) SLT(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, boolToWord(a.regFile.ReadRegSigned(rs1) < a.regFile.ReadRegSigned(rs2)))
}

// SLTU writes 1 to rd if rs1 < rs2 as unsigned values, else 0.
func (a *ALU) SLTU(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, boolToWord(a.regFile.ReadReg(rs1) < a.regFile.ReadReg(rs2)))
}

// ADDI computes rd = rs1 + imm, imm already sign-extended by the decoder.
func (a *ALU) ADDI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)+uint32(imm))
}

// ANDI computes rd = rs1 & imm.
func (a *ALU) ANDI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)&uint32(imm))
}

// ORI computes rd = rs1 | imm.
func (a *ALU) ORI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)|uint32(imm))
}

// XORI computes rd = rs1 ^ imm.
func (a *ALU) XORI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)^uint32(imm))
}

// SLTI writes 1 to rd if rs1 < imm as signed values, else 0.
func (a *ALU) SLTI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, boolToWord(a.regFile.ReadRegSigned(rs1) < imm))
}

// SLTIU writes 1 to rd if rs1 < imm, both compared as unsigned. The
// immediate is sign-extended first (per §4.2) and then reinterpreted as
// unsigned, matching the ISA's SLTIU semantics.
func (a *ALU) SLTIU(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, boolToWord(a.regFile.ReadReg(rs1) < uint32(imm)))
}

// SLLI computes rd = rs1 << shamt, shamt in [0,31].
func (a *ALU) SLLI(rd, rs1 uint8, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)<<shamt)
}

// SRLI computes rd = rs1 >>(logical) shamt.
func (a *ALU) SRLI(rd, rs1 uint8, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)>>shamt)
}

// SRAI computes rd = rs1 >>(arithmetic) shamt.
func (a *ALU) SRAI(rd, rs1 uint8, shamt uint8) {
	a.regFile.WriteReg(rd, uint32(a.regFile.ReadRegSigned(rs1)>>shamt))
}

// LUI writes imm (already shifted into bits [31:12] by the decoder) to rd.
func (a *ALU) LUI(rd uint8, imm int32) {
	a.regFile.WriteReg(rd, uint32(imm))
}

// AUIPC writes pcOfInstruction + imm to rd. imm arrives pre-shifted into
// bits [31:12] by the decoder.
func (a *ALU) AUIPC(rd uint8, pcOfInstruction uint32, imm int32) {
	a.regFile.WriteReg(rd, pcOfInstruction+uint32(imm))
}

// boolToWord converts a boolean comparison result into the ISA's 0/1 word
// encoding.
func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
