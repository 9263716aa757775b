package emu

// VectorUnit implements the V extension (§4.7): vsetvli, strided and
// unit-stride loads/stores, integer arithmetic in its vector-vector,
// vector-scalar, and vector-immediate forms, and the two modeled
// reductions. Every arithmetic operation iterates lanes [0, VL) at the
// active SEW, per the VectorConfig established by the most recent vsetvli.
//
// §9's Design Notes call out one deliberate deviation from the upstream V
// extension, preserved here for fidelity to the system being modeled:
// compare instructions (VMSEQ and friends) write their 0/1 result into each
// destination element individually rather than packing results into a
// single mask register.
type VectorUnit struct {
	vRegFile *VRegFile
	regFile  *RegFile
	memory   *Memory
	config   *VectorConfig
}

// NewVectorUnit creates a new VectorUnit connected to the given vector
// register file, integer register file, memory, and vector configuration.
func NewVectorUnit(vRegFile *VRegFile, regFile *RegFile, memory *Memory, config *VectorConfig) *VectorUnit {
	return &VectorUnit{vRegFile: vRegFile, regFile: regFile, memory: memory, config: config}
}

// VSETVLI decodes the vtypei immediate into SEW and LMUL, computes the new
// VL as min(AVL, VLMAX), and writes VL to rd (unless rd is x0). rs1 supplies
// AVL (the application vector length request).
func (v *VectorUnit) VSETVLI(rd, rs1 uint8, vtypei int32) {
	vsew := (vtypei >> 3) & 0x7
	vlmul := vtypei & 0x7

	switch vsew {
	case 0b000:
		v.config.SEW = 1
	case 0b001:
		v.config.SEW = 2
	default:
		v.config.SEW = 4
	}

	v.config.LMUL = 1 << uint32(vlmul)

	avl := v.regFile.ReadReg(rs1)
	vlmax := v.config.VLMAX()
	if avl > vlmax {
		avl = vlmax
	}
	v.config.VL = avl
	v.regFile.WriteReg(rd, avl)
}

func (v *VectorUnit) signExtend(value uint32) int32 {
	switch v.config.SEW {
	case 1:
		return int32(int8(value))
	case 2:
		return int32(int16(value))
	default:
		return int32(value)
	}
}

// VLE loads VL contiguous elements of the active SEW from [rs1] into vd.
func (v *VectorUnit) VLE(vd, rs1 uint8) {
	base := v.regFile.ReadReg(rs1)
	sew := uint32(v.config.SEW)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		value := v.readMemoryElement(uint64(base + lane*sew))
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, value)
	}
}

// VSE stores VL contiguous elements of the active SEW from vd (named vs3 in
// the ISA, decoded into Rd) to [rs1].
func (v *VectorUnit) VSE(vs3, rs1 uint8) {
	base := v.regFile.ReadReg(rs1)
	sew := uint32(v.config.SEW)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		value := v.vRegFile.ReadElement(vs3, int(lane), v.config.SEW)
		v.writeMemoryElement(uint64(base+lane*sew), value)
	}
}

// VLSE loads VL elements from [rs1], striding by rs2 bytes between
// elements, into vd.
func (v *VectorUnit) VLSE(vd, rs1, rs2 uint8) {
	base := v.regFile.ReadReg(rs1)
	stride := v.regFile.ReadReg(rs2)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		value := v.readMemoryElement(uint64(base + lane*stride))
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, value)
	}
}

// VSSE stores VL elements from vs3, striding by rs2 bytes between elements,
// to [rs1].
func (v *VectorUnit) VSSE(vs3, rs1, rs2 uint8) {
	base := v.regFile.ReadReg(rs1)
	stride := v.regFile.ReadReg(rs2)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		value := v.vRegFile.ReadElement(vs3, int(lane), v.config.SEW)
		v.writeMemoryElement(uint64(base+lane*stride), value)
	}
}

func (v *VectorUnit) readMemoryElement(addr uint64) uint32 {
	switch v.config.SEW {
	case 1:
		return uint32(v.memory.Read8(addr))
	case 2:
		return uint32(v.memory.Read16(addr))
	default:
		return v.memory.Read32(addr)
	}
}

func (v *VectorUnit) writeMemoryElement(addr uint64, value uint32) {
	switch v.config.SEW {
	case 1:
		v.memory.Write8(addr, uint8(value))
	case 2:
		v.memory.Write16(addr, uint16(value))
	default:
		v.memory.Write32(addr, value)
	}
}

// binaryVV applies op element-wise across vs2 and vs1 into vd.
func (v *VectorUnit) binaryVV(vd, vs2, vs1 uint8, op func(a, b uint32) uint32) {
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW)
		b := v.vRegFile.ReadElement(vs1, int(lane), v.config.SEW)
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, op(a, b))
	}
}

// binaryVX applies op element-wise between vs2 and the scalar held in rs1.
func (v *VectorUnit) binaryVX(vd, vs2, rs1 uint8, op func(a, b uint32) uint32) {
	scalar := v.regFile.ReadReg(rs1)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW)
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, op(a, scalar))
	}
}

// binaryVI applies op element-wise between vs2 and the sign-extended
// 5-bit immediate imm.
func (v *VectorUnit) binaryVI(vd, vs2 uint8, imm int32, op func(a, b uint32) uint32) {
	scalar := uint32(imm)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW)
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, op(a, scalar))
	}
}

func addOp(a, b uint32) uint32 { return a + b }
func mulOp(a, b uint32) uint32 { return a * b }
func andOp(a, b uint32) uint32 { return a & b }
func orOp(a, b uint32) uint32  { return a | b }
func xorOp(a, b uint32) uint32 { return a ^ b }

// VADDVV computes vd[i] = vs2[i] + vs1[i].
func (v *VectorUnit) VADDVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, addOp) }

// VADDVX computes vd[i] = vs2[i] + rs1.
func (v *VectorUnit) VADDVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, addOp) }

// VADDVI computes vd[i] = vs2[i] + imm.
func (v *VectorUnit) VADDVI(vd, vs2 uint8, imm int32) { v.binaryVI(vd, vs2, imm, addOp) }

// VSUBVV computes vd[i] = vs2[i] - vs1[i].
func (v *VectorUnit) VSUBVV(vd, vs2, vs1 uint8) {
	v.binaryVV(vd, vs2, vs1, func(a, b uint32) uint32 { return a - b })
}

// VSUBVX computes vd[i] = vs2[i] - rs1.
func (v *VectorUnit) VSUBVX(vd, vs2, rs1 uint8) {
	v.binaryVX(vd, vs2, rs1, func(a, b uint32) uint32 { return a - b })
}

// VSUBVI computes vd[i] = vs2[i] - imm.
func (v *VectorUnit) VSUBVI(vd, vs2 uint8, imm int32) {
	v.binaryVI(vd, vs2, imm, func(a, b uint32) uint32 { return a - b })
}

// VMULVV computes vd[i] = vs2[i] * vs1[i].
func (v *VectorUnit) VMULVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, mulOp) }

// VMULVX computes vd[i] = vs2[i] * rs1.
func (v *VectorUnit) VMULVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, mulOp) }

// VMULVI computes vd[i] = vs2[i] * imm.
func (v *VectorUnit) VMULVI(vd, vs2 uint8, imm int32) { v.binaryVI(vd, vs2, imm, mulOp) }

// VANDVV computes vd[i] = vs2[i] & vs1[i].
func (v *VectorUnit) VANDVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, andOp) }

// VANDVX computes vd[i] = vs2[i] & rs1.
func (v *VectorUnit) VANDVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, andOp) }

// VANDVI computes vd[i] = vs2[i] & imm.
func (v *VectorUnit) VANDVI(vd, vs2 uint8, imm int32) { v.binaryVI(vd, vs2, imm, andOp) }

// VORVV computes vd[i] = vs2[i] | vs1[i].
func (v *VectorUnit) VORVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, orOp) }

// VORVX computes vd[i] = vs2[i] | rs1.
func (v *VectorUnit) VORVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, orOp) }

// VORVI computes vd[i] = vs2[i] | imm.
func (v *VectorUnit) VORVI(vd, vs2 uint8, imm int32) { v.binaryVI(vd, vs2, imm, orOp) }

// VXORVV computes vd[i] = vs2[i] ^ vs1[i].
func (v *VectorUnit) VXORVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, xorOp) }

// VXORVX computes vd[i] = vs2[i] ^ rs1.
func (v *VectorUnit) VXORVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, xorOp) }

// VXORVI computes vd[i] = vs2[i] ^ imm.
func (v *VectorUnit) VXORVI(vd, vs2 uint8, imm int32) { v.binaryVI(vd, vs2, imm, xorOp) }

func minuOp(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxuOp(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// VMINUVV computes vd[i] = min(vs2[i], vs1[i]), unsigned.
func (v *VectorUnit) VMINUVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, minuOp) }

// VMINUVX computes vd[i] = min(vs2[i], rs1), unsigned.
func (v *VectorUnit) VMINUVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, minuOp) }

// VMAXUVV computes vd[i] = max(vs2[i], vs1[i]), unsigned.
func (v *VectorUnit) VMAXUVV(vd, vs2, vs1 uint8) { v.binaryVV(vd, vs2, vs1, maxuOp) }

// VMAXUVX computes vd[i] = max(vs2[i], rs1), unsigned.
func (v *VectorUnit) VMAXUVX(vd, vs2, rs1 uint8) { v.binaryVX(vd, vs2, rs1, maxuOp) }

func (v *VectorUnit) shiftMask() uint32 {
	return uint32(v.config.SEW)*8 - 1
}

// VSLLVV computes vd[i] = vs2[i] << (vs1[i] & (8*SEW-1)).
func (v *VectorUnit) VSLLVV(vd, vs2, vs1 uint8) {
	mask := v.shiftMask()
	v.binaryVV(vd, vs2, vs1, func(a, b uint32) uint32 { return a << (b & mask) })
}

// VSLLVX computes vd[i] = vs2[i] << (rs1 & (8*SEW-1)).
func (v *VectorUnit) VSLLVX(vd, vs2, rs1 uint8) {
	mask := v.shiftMask()
	v.binaryVX(vd, vs2, rs1, func(a, b uint32) uint32 { return a << (b & mask) })
}

// VSLLVI computes vd[i] = vs2[i] << (imm & (8*SEW-1)).
func (v *VectorUnit) VSLLVI(vd, vs2 uint8, imm int32) {
	mask := v.shiftMask()
	v.binaryVI(vd, vs2, imm, func(a, b uint32) uint32 { return a << (b & mask) })
}

// VSRLVV computes vd[i] = vs2[i] >> (vs1[i] & (8*SEW-1)), logical.
func (v *VectorUnit) VSRLVV(vd, vs2, vs1 uint8) {
	mask := v.shiftMask()
	v.binaryVV(vd, vs2, vs1, func(a, b uint32) uint32 { return a >> (b & mask) })
}

// VSRLVX computes vd[i] = vs2[i] >> (rs1 & (8*SEW-1)), logical.
func (v *VectorUnit) VSRLVX(vd, vs2, rs1 uint8) {
	mask := v.shiftMask()
	v.binaryVX(vd, vs2, rs1, func(a, b uint32) uint32 { return a >> (b & mask) })
}

// VSRLVI computes vd[i] = vs2[i] >> (imm & (8*SEW-1)), logical.
func (v *VectorUnit) VSRLVI(vd, vs2 uint8, imm int32) {
	mask := v.shiftMask()
	v.binaryVI(vd, vs2, imm, func(a, b uint32) uint32 { return a >> (b & mask) })
}

// compareVV writes 1 or 0 into each element of vd depending on pred applied
// to the signed values of vs2[i] and vs1[i]. Per §9's Design Notes, the
// result lands in every destination element rather than a packed mask bit.
func (v *VectorUnit) compareVV(vd, vs2, vs1 uint8, pred func(a, b int32) bool) {
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.signExtend(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
		b := v.signExtend(v.vRegFile.ReadElement(vs1, int(lane), v.config.SEW))
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, boolToWord(pred(a, b)))
	}
}

func (v *VectorUnit) compareVX(vd, vs2, rs1 uint8, pred func(a, b int32) bool) {
	scalar := v.regFile.ReadRegSigned(rs1)
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.signExtend(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, boolToWord(pred(a, scalar)))
	}
}

func (v *VectorUnit) compareVI(vd, vs2 uint8, imm int32, pred func(a, b int32) bool) {
	for lane := uint32(0); lane < v.config.VL; lane++ {
		a := v.signExtend(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
		v.vRegFile.WriteElement(vd, int(lane), v.config.SEW, boolToWord(pred(a, imm)))
	}
}

// VMSEQVV writes 1 where vs2[i] == vs1[i].
func (v *VectorUnit) VMSEQVV(vd, vs2, vs1 uint8) {
	v.compareVV(vd, vs2, vs1, func(a, b int32) bool { return a == b })
}

// VMSEQVX writes 1 where vs2[i] == rs1.
func (v *VectorUnit) VMSEQVX(vd, vs2, rs1 uint8) {
	v.compareVX(vd, vs2, rs1, func(a, b int32) bool { return a == b })
}

// VMSEQVI writes 1 where vs2[i] == imm.
func (v *VectorUnit) VMSEQVI(vd, vs2 uint8, imm int32) {
	v.compareVI(vd, vs2, imm, func(a, b int32) bool { return a == b })
}

// VMSNEVV writes 1 where vs2[i] != vs1[i].
func (v *VectorUnit) VMSNEVV(vd, vs2, vs1 uint8) {
	v.compareVV(vd, vs2, vs1, func(a, b int32) bool { return a != b })
}

// VMSNEVX writes 1 where vs2[i] != rs1.
func (v *VectorUnit) VMSNEVX(vd, vs2, rs1 uint8) {
	v.compareVX(vd, vs2, rs1, func(a, b int32) bool { return a != b })
}

// VMSNEVI writes 1 where vs2[i] != imm.
func (v *VectorUnit) VMSNEVI(vd, vs2 uint8, imm int32) {
	v.compareVI(vd, vs2, imm, func(a, b int32) bool { return a != b })
}

// VMSLTVV writes 1 where vs2[i] < vs1[i].
func (v *VectorUnit) VMSLTVV(vd, vs2, vs1 uint8) {
	v.compareVV(vd, vs2, vs1, func(a, b int32) bool { return a < b })
}

// VMSLTVX writes 1 where vs2[i] < rs1.
func (v *VectorUnit) VMSLTVX(vd, vs2, rs1 uint8) {
	v.compareVX(vd, vs2, rs1, func(a, b int32) bool { return a < b })
}

// VMSLEVV writes 1 where vs2[i] <= vs1[i].
func (v *VectorUnit) VMSLEVV(vd, vs2, vs1 uint8) {
	v.compareVV(vd, vs2, vs1, func(a, b int32) bool { return a <= b })
}

// VMSLEVX writes 1 where vs2[i] <= rs1.
func (v *VectorUnit) VMSLEVX(vd, vs2, rs1 uint8) {
	v.compareVX(vd, vs2, rs1, func(a, b int32) bool { return a <= b })
}

// VMSLEVI writes 1 where vs2[i] <= imm.
func (v *VectorUnit) VMSLEVI(vd, vs2 uint8, imm int32) {
	v.compareVI(vd, vs2, imm, func(a, b int32) bool { return a <= b })
}

// VMSGTVX writes 1 where vs2[i] > rs1.
func (v *VectorUnit) VMSGTVX(vd, vs2, rs1 uint8) {
	v.compareVX(vd, vs2, rs1, func(a, b int32) bool { return a > b })
}

// VMSGTVI writes 1 where vs2[i] > imm.
func (v *VectorUnit) VMSGTVI(vd, vs2 uint8, imm int32) {
	v.compareVI(vd, vs2, imm, func(a, b int32) bool { return a > b })
}

// VMVXS moves element 0 of vs2 into the integer register rd, sign-extended.
func (v *VectorUnit) VMVXS(rd, vs2 uint8) {
	value := v.vRegFile.ReadElement(vs2, 0, v.config.SEW)
	v.regFile.WriteReg(rd, uint32(v.signExtend(value)))
}

// VMVSX moves the integer register rs1 into element 0 of vd.
func (v *VectorUnit) VMVSX(vd, rs1 uint8) {
	v.vRegFile.WriteElement(vd, 0, v.config.SEW, v.regFile.ReadReg(rs1))
}

// VREDSUMVS reduces vs2[0:VL) by signed sum, adding the scalar held in
// element 0 of vs1, and writes the result to element 0 of vd.
func (v *VectorUnit) VREDSUMVS(vd, vs2, vs1 uint8) {
	sum := v.signExtend(v.vRegFile.ReadElement(vs1, 0, v.config.SEW))
	for lane := uint32(0); lane < v.config.VL; lane++ {
		sum += v.signExtend(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
	}
	v.vRegFile.WriteElement(vd, 0, v.config.SEW, uint32(sum))
}

// VWREDSUMUVS reduces vs2[0:VL) by unsigned sum into a result one SEW wider
// than the source elements, adding the scalar in element 0 of vs1 (read at
// the destination's wider width), and writes the result to element 0 of vd.
func (v *VectorUnit) VWREDSUMUVS(vd, vs2, vs1 uint8) {
	widerSEW := v.config.SEW * 2
	if widerSEW > 4 {
		// A 64-bit element spans two adjacent 32-bit lanes, low word first.
		sum := uint64(v.vRegFile.ReadLane32(vs1, 0)) | uint64(v.vRegFile.ReadLane32(vs1, 1))<<32
		for lane := uint32(0); lane < v.config.VL; lane++ {
			sum += uint64(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
		}
		v.vRegFile.WriteLane32(vd, 0, uint32(sum))
		v.vRegFile.WriteLane32(vd, 1, uint32(sum>>32))
		return
	}
	sum := uint64(v.vRegFile.ReadElement(vs1, 0, widerSEW))
	for lane := uint32(0); lane < v.config.VL; lane++ {
		sum += uint64(v.vRegFile.ReadElement(vs2, int(lane), v.config.SEW))
	}
	v.vRegFile.WriteElement(vd, 0, widerSEW, uint32(sum))
}
