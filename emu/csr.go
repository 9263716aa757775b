package emu

import "math/bits"

// CSRUnit implements the Zicsr subset (§4.6): CSRRW, CSRRS, CSRRC against
// the floating-point control/status registers, plus read-only access to the
// vector unit's configuration CSRs (vstart, vl, vtype, vlenb). Vector state
// lives in VectorConfig rather than CSRFile, so this unit is handed a
// pointer to it directly instead of going through CSRFile.Read/Write.
type CSRUnit struct {
	regFile      *RegFile
	csrFile      *CSRFile
	vectorConfig *VectorConfig
}

// NewCSRUnit creates a new CSRUnit connected to the given register file,
// scalar CSR file, and vector configuration.
func NewCSRUnit(regFile *RegFile, csrFile *CSRFile, vectorConfig *VectorConfig) *CSRUnit {
	return &CSRUnit{regFile: regFile, csrFile: csrFile, vectorConfig: vectorConfig}
}

func (c *CSRUnit) read(addr uint16) uint32 {
	switch addr {
	case CSRVStart:
		return 0
	case CSRVL:
		return c.vectorConfig.VL
	case CSRVType:
		return c.vtype()
	case CSRVLenb:
		return VLENB
	default:
		return c.csrFile.Read(addr)
	}
}

// vtype packs the active SEW and LMUL into the standard vtype layout: bits
// [2:0] select vlmul, the power-of-two exponent such that LMUL = 1 << vlmul,
// and bits [5:3] select vsew (000=8b, 001=16b, 010=32b).
func (c *CSRUnit) vtype() uint32 {
	var vsew uint32
	switch c.vectorConfig.SEW {
	case 1:
		vsew = 0b000
	case 2:
		vsew = 0b001
	case 4:
		vsew = 0b010
	}

	vlmul := uint32(bits.TrailingZeros32(c.vectorConfig.LMUL))

	return vsew<<3 | vlmul
}

// CSRRW writes rs1 to the CSR and reads the CSR's prior value into rd,
// unless rd is x0, matching the ISA's rule that CSRRW with rd=x0 must not
// even read the CSR for side effects. None of the CSRs modeled here have
// read side effects, so this implementation always reads for simplicity.
func (c *CSRUnit) CSRRW(rd, rs1 uint8, csr uint16) {
	old := c.read(csr)
	c.csrFile.Write(csr, c.regFile.ReadReg(rs1))
	c.regFile.WriteReg(rd, old)
}

// CSRRS reads the CSR into rd and sets the bits present in rs1.
func (c *CSRUnit) CSRRS(rd, rs1 uint8, csr uint16) {
	old := c.read(csr)
	c.regFile.WriteReg(rd, old)
	if rs1 != 0 {
		c.csrFile.Write(csr, old|c.regFile.ReadReg(rs1))
	}
}

// CSRRC reads the CSR into rd and clears the bits present in rs1.
func (c *CSRUnit) CSRRC(rd, rs1 uint8, csr uint16) {
	old := c.read(csr)
	c.regFile.WriteReg(rd, old)
	if rs1 != 0 {
		c.csrFile.Write(csr, old&^c.regFile.ReadReg(rs1))
	}
}
