package emu

import (
	"fmt"
	"math"
)

// fflagNV is the invalid-operation bit of the fflags CSR.
const fflagNV = 0x10

// FPU implements the F and D extensions (§4.5): single- and double-precision
// arithmetic, fused multiply-add, compares, sign injection, conversions, and
// the moves between the integer and floating-point register files. Rounding
// mode and exception flags are tracked structurally in CSRFile but every
// arithmetic result here is computed with Go's native round-to-nearest-
// even semantics; no other rounding mode is modeled. The float-to-integer
// conversions are the exception: they truncate toward zero.
type FPU struct {
	regFile   *RegFile
	fpRegFile *FPRegFile
	csrFile   *CSRFile
	memory    *Memory
}

// NewFPU creates a new FPU connected to the given register files, CSR file,
// and memory.
func NewFPU(regFile *RegFile, fpRegFile *FPRegFile, csrFile *CSRFile, memory *Memory) *FPU {
	return &FPU{regFile: regFile, fpRegFile: fpRegFile, csrFile: csrFile, memory: memory}
}

// FLW loads a single-precision value from memory into rd, NaN-boxing it.
func (f *FPU) FLW(rd, rs1 uint8, imm int32) {
	addr := uint64(f.regFile.ReadReg(rs1) + uint32(imm))
	bits := f.memory.Read32(addr)
	f.fpRegFile.WriteSingle(rd, math.Float32frombits(bits))
}

// FSW stores the single-precision value in rs2 to memory.
func (f *FPU) FSW(rs1, rs2 uint8, imm int32) {
	addr := uint64(f.regFile.ReadReg(rs1) + uint32(imm))
	f.memory.Write32(addr, math.Float32bits(f.fpRegFile.ReadSingle(rs2)))
}

// FLD loads a double-precision value from memory into rd.
func (f *FPU) FLD(rd, rs1 uint8, imm int32) {
	addr := uint64(f.regFile.ReadReg(rs1) + uint32(imm))
	f.fpRegFile.WriteBits(rd, f.memory.Read64(addr))
}

// FSD stores the double-precision value in rs2 to memory.
func (f *FPU) FSD(rs1, rs2 uint8, imm int32) {
	addr := uint64(f.regFile.ReadReg(rs1) + uint32(imm))
	f.memory.Write64(addr, f.fpRegFile.ReadBits(rs2))
}

// FADDS computes rd = rs1 + rs2, single precision.
func (f *FPU) FADDS(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)+f.fpRegFile.ReadSingle(rs2))
}

// FSUBS computes rd = rs1 - rs2, single precision.
func (f *FPU) FSUBS(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)-f.fpRegFile.ReadSingle(rs2))
}

// FMULS computes rd = rs1 * rs2, single precision.
func (f *FPU) FMULS(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)*f.fpRegFile.ReadSingle(rs2))
}

// FDIVS computes rd = rs1 / rs2, single precision.
func (f *FPU) FDIVS(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)/f.fpRegFile.ReadSingle(rs2))
}

// FSQRTS computes rd = sqrt(rs1), single precision. A negative operand sets
// the invalid-operation flag and returns a non-nil error, signaling the
// caller to halt.
func (f *FPU) FSQRTS(rd, rs1 uint8) error {
	v := f.fpRegFile.ReadSingle(rs1)
	if v < 0 {
		f.csrFile.FFlags |= fflagNV
		return fmt.Errorf("FSQRT.S of negative operand %v", v)
	}
	f.fpRegFile.WriteSingle(rd, float32(math.Sqrt(float64(v))))
	return nil
}

// FMINS writes the smaller of rs1, rs2, single precision. A NaN operand is
// ignored in favor of the other; when both are NaN, rs2's value is written.
func (f *FPU) FMINS(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadSingle(rs1), f.fpRegFile.ReadSingle(rs2)
	f.fpRegFile.WriteSingle(rd, fminFloat32(a, b))
}

// FMAXS writes the larger of rs1, rs2, single precision.
func (f *FPU) FMAXS(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadSingle(rs1), f.fpRegFile.ReadSingle(rs2)
	f.fpRegFile.WriteSingle(rd, fmaxFloat32(a, b))
}

func fminFloat32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func fmaxFloat32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// FSGNJS writes rd = |rs1| with the sign of rs2, single precision.
func (f *FPU) FSGNJS(rd, rs1, rs2 uint8) {
	a := math.Float32bits(f.fpRegFile.ReadSingle(rs1))
	b := math.Float32bits(f.fpRegFile.ReadSingle(rs2))
	f.fpRegFile.WriteSingle(rd, math.Float32frombits(a&0x7FFFFFFF|b&0x80000000))
}

// FSGNJNS writes rd = |rs1| with the opposite of rs2's sign.
func (f *FPU) FSGNJNS(rd, rs1, rs2 uint8) {
	a := math.Float32bits(f.fpRegFile.ReadSingle(rs1))
	b := math.Float32bits(f.fpRegFile.ReadSingle(rs2))
	f.fpRegFile.WriteSingle(rd, math.Float32frombits(a&0x7FFFFFFF|^b&0x80000000))
}

// FSGNJXS writes rd = rs1 with its sign XORed with rs2's sign.
func (f *FPU) FSGNJXS(rd, rs1, rs2 uint8) {
	a := math.Float32bits(f.fpRegFile.ReadSingle(rs1))
	b := math.Float32bits(f.fpRegFile.ReadSingle(rs2))
	f.fpRegFile.WriteSingle(rd, math.Float32frombits(a^(b&0x80000000)))
}

// nvIfNaNS sets the invalid-operation flag if either operand is NaN.
func (f *FPU) nvIfNaNS(a, b float32) {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		f.csrFile.FFlags |= fflagNV
	}
}

// FEQS writes 1 to rd if rs1 == rs2, single precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FEQS(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadSingle(rs1), f.fpRegFile.ReadSingle(rs2)
	f.nvIfNaNS(a, b)
	f.regFile.WriteReg(rd, boolToWord(a == b))
}

// FLTS writes 1 to rd if rs1 < rs2, single precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FLTS(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadSingle(rs1), f.fpRegFile.ReadSingle(rs2)
	f.nvIfNaNS(a, b)
	f.regFile.WriteReg(rd, boolToWord(a < b))
}

// FLES writes 1 to rd if rs1 <= rs2, single precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FLES(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadSingle(rs1), f.fpRegFile.ReadSingle(rs2)
	f.nvIfNaNS(a, b)
	f.regFile.WriteReg(rd, boolToWord(a <= b))
}

// FCVTWS converts rs1 (single) to a signed 32-bit integer in rd, truncating
// toward zero.
func (f *FPU) FCVTWS(rd, rs1 uint8) {
	f.regFile.WriteReg(rd, uint32(int32(f.fpRegFile.ReadSingle(rs1))))
}

// FCVTWUS converts rs1 (single) to an unsigned 32-bit integer in rd.
func (f *FPU) FCVTWUS(rd, rs1 uint8) {
	f.regFile.WriteReg(rd, uint32(f.fpRegFile.ReadSingle(rs1)))
}

// FCVTSW converts the signed integer rs1 to single precision in rd.
func (f *FPU) FCVTSW(rd, rs1 uint8) {
	f.fpRegFile.WriteSingle(rd, float32(f.regFile.ReadRegSigned(rs1)))
}

// FCVTSWU converts the unsigned integer rs1 to single precision in rd.
func (f *FPU) FCVTSWU(rd, rs1 uint8) {
	f.fpRegFile.WriteSingle(rd, float32(f.regFile.ReadReg(rs1)))
}

// FMVXS moves the bit pattern of rs1 (single) into the integer register rd,
// unmodified.
func (f *FPU) FMVXS(rd, rs1 uint8) {
	f.regFile.WriteReg(rd, uint32(f.fpRegFile.ReadBits(rs1)))
}

// FMVSX moves the bit pattern of the integer register rs1 into rd (single),
// NaN-boxing it.
func (f *FPU) FMVSX(rd, rs1 uint8) {
	f.fpRegFile.WriteSingle(rd, math.Float32frombits(f.regFile.ReadReg(rs1)))
}

// FMVS copies rs1 into rd within the FP register file, single precision.
func (f *FPU) FMVS(rd, rs1 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1))
}

// Double-precision arithmetic mirrors the single-precision forms above.

// FADDD computes rd = rs1 + rs2, double precision.
func (f *FPU) FADDD(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)+f.fpRegFile.ReadDouble(rs2))
}

// FSUBD computes rd = rs1 - rs2, double precision.
func (f *FPU) FSUBD(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)-f.fpRegFile.ReadDouble(rs2))
}

// FMULD computes rd = rs1 * rs2, double precision.
func (f *FPU) FMULD(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)*f.fpRegFile.ReadDouble(rs2))
}

// FDIVD computes rd = rs1 / rs2, double precision.
func (f *FPU) FDIVD(rd, rs1, rs2 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)/f.fpRegFile.ReadDouble(rs2))
}

// FSQRTD computes rd = sqrt(rs1), double precision. A negative operand sets
// the invalid-operation flag and returns a non-nil error, signaling the
// caller to halt.
func (f *FPU) FSQRTD(rd, rs1 uint8) error {
	v := f.fpRegFile.ReadDouble(rs1)
	if v < 0 {
		f.csrFile.FFlags |= fflagNV
		return fmt.Errorf("FSQRT.D of negative operand %v", v)
	}
	f.fpRegFile.WriteDouble(rd, math.Sqrt(v))
	return nil
}

// FMIND writes the smaller of rs1, rs2, double precision.
func (f *FPU) FMIND(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadDouble(rs1), f.fpRegFile.ReadDouble(rs2)
	f.fpRegFile.WriteDouble(rd, fminFloat64(a, b))
}

// FMAXD writes the larger of rs1, rs2, double precision.
func (f *FPU) FMAXD(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadDouble(rs1), f.fpRegFile.ReadDouble(rs2)
	f.fpRegFile.WriteDouble(rd, fmaxFloat64(a, b))
}

func fminFloat64(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func fmaxFloat64(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// FSGNJD writes rd = |rs1| with the sign of rs2, double precision.
func (f *FPU) FSGNJD(rd, rs1, rs2 uint8) {
	a := f.fpRegFile.ReadBits(rs1)
	b := f.fpRegFile.ReadBits(rs2)
	f.fpRegFile.WriteBits(rd, a&0x7FFFFFFFFFFFFFFF|b&0x8000000000000000)
}

// FSGNJND writes rd = |rs1| with the opposite of rs2's sign.
func (f *FPU) FSGNJND(rd, rs1, rs2 uint8) {
	a := f.fpRegFile.ReadBits(rs1)
	b := f.fpRegFile.ReadBits(rs2)
	f.fpRegFile.WriteBits(rd, a&0x7FFFFFFFFFFFFFFF|^b&0x8000000000000000)
}

// FSGNJXD writes rd = rs1 with its sign XORed with rs2's sign.
func (f *FPU) FSGNJXD(rd, rs1, rs2 uint8) {
	a := f.fpRegFile.ReadBits(rs1)
	b := f.fpRegFile.ReadBits(rs2)
	f.fpRegFile.WriteBits(rd, a^(b&0x8000000000000000))
}

// nvIfNaND sets the invalid-operation flag if either operand is NaN.
func (f *FPU) nvIfNaND(a, b float64) {
	if math.IsNaN(a) || math.IsNaN(b) {
		f.csrFile.FFlags |= fflagNV
	}
}

// FEQD writes 1 to rd if rs1 == rs2, double precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FEQD(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadDouble(rs1), f.fpRegFile.ReadDouble(rs2)
	f.nvIfNaND(a, b)
	f.regFile.WriteReg(rd, boolToWord(a == b))
}

// FLTD writes 1 to rd if rs1 < rs2, double precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FLTD(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadDouble(rs1), f.fpRegFile.ReadDouble(rs2)
	f.nvIfNaND(a, b)
	f.regFile.WriteReg(rd, boolToWord(a < b))
}

// FLED writes 1 to rd if rs1 <= rs2, double precision, else 0. A NaN operand
// sets the invalid-operation flag.
func (f *FPU) FLED(rd, rs1, rs2 uint8) {
	a, b := f.fpRegFile.ReadDouble(rs1), f.fpRegFile.ReadDouble(rs2)
	f.nvIfNaND(a, b)
	f.regFile.WriteReg(rd, boolToWord(a <= b))
}

// FCVTWD converts rs1 (double) to a signed 32-bit integer in rd.
func (f *FPU) FCVTWD(rd, rs1 uint8) {
	f.regFile.WriteReg(rd, uint32(int32(f.fpRegFile.ReadDouble(rs1))))
}

// FCVTWUD converts rs1 (double) to an unsigned 32-bit integer in rd.
func (f *FPU) FCVTWUD(rd, rs1 uint8) {
	f.regFile.WriteReg(rd, uint32(f.fpRegFile.ReadDouble(rs1)))
}

// FCVTDW converts the signed integer rs1 to double precision in rd.
func (f *FPU) FCVTDW(rd, rs1 uint8) {
	f.fpRegFile.WriteDouble(rd, float64(f.regFile.ReadRegSigned(rs1)))
}

// FCVTDWU converts the unsigned integer rs1 to double precision in rd.
func (f *FPU) FCVTDWU(rd, rs1 uint8) {
	f.fpRegFile.WriteDouble(rd, float64(f.regFile.ReadReg(rs1)))
}

// FCVTSD narrows rs1 from double to single precision in rd.
func (f *FPU) FCVTSD(rd, rs1 uint8) {
	f.fpRegFile.WriteSingle(rd, float32(f.fpRegFile.ReadDouble(rs1)))
}

// FCVTDS widens rs1 from single to double precision in rd.
func (f *FPU) FCVTDS(rd, rs1 uint8) {
	f.fpRegFile.WriteDouble(rd, float64(f.fpRegFile.ReadSingle(rs1)))
}

// FMVD copies rs1 into rd within the FP register file, double precision.
func (f *FPU) FMVD(rd, rs1 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1))
}

// Fused multiply-add family: rd = (rs1 * rs2) +/- rs3, with the sign of
// either product or addend flipped per variant.

// FMADDS computes rd = rs1*rs2 + rs3, single precision.
func (f *FPU) FMADDS(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)*f.fpRegFile.ReadSingle(rs2)+f.fpRegFile.ReadSingle(rs3))
}

// FMSUBS computes rd = rs1*rs2 - rs3, single precision.
func (f *FPU) FMSUBS(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteSingle(rd, f.fpRegFile.ReadSingle(rs1)*f.fpRegFile.ReadSingle(rs2)-f.fpRegFile.ReadSingle(rs3))
}

// FNMSUBS computes rd = -(rs1*rs2) + rs3, single precision.
func (f *FPU) FNMSUBS(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteSingle(rd, -(f.fpRegFile.ReadSingle(rs1)*f.fpRegFile.ReadSingle(rs2))+f.fpRegFile.ReadSingle(rs3))
}

// FNMADDS computes rd = -(rs1*rs2) - rs3, single precision.
func (f *FPU) FNMADDS(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteSingle(rd, -(f.fpRegFile.ReadSingle(rs1)*f.fpRegFile.ReadSingle(rs2))-f.fpRegFile.ReadSingle(rs3))
}

// FMADDD computes rd = rs1*rs2 + rs3, double precision.
func (f *FPU) FMADDD(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)*f.fpRegFile.ReadDouble(rs2)+f.fpRegFile.ReadDouble(rs3))
}

// FMSUBD computes rd = rs1*rs2 - rs3, double precision.
func (f *FPU) FMSUBD(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteDouble(rd, f.fpRegFile.ReadDouble(rs1)*f.fpRegFile.ReadDouble(rs2)-f.fpRegFile.ReadDouble(rs3))
}

// FNMSUBD computes rd = -(rs1*rs2) + rs3, double precision.
func (f *FPU) FNMSUBD(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteDouble(rd, -(f.fpRegFile.ReadDouble(rs1)*f.fpRegFile.ReadDouble(rs2))+f.fpRegFile.ReadDouble(rs3))
}

// FNMADDD computes rd = -(rs1*rs2) - rs3, double precision.
func (f *FPU) FNMADDD(rd, rs1, rs2, rs3 uint8) {
	f.fpRegFile.WriteDouble(rd, -(f.fpRegFile.ReadDouble(rs1)*f.fpRegFile.ReadDouble(rs2))-f.fpRegFile.ReadDouble(rs3))
}
