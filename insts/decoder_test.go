package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/insts"
)

func encodeR(opcode, funct3, funct7 uint32, rd, rs1, rs2 uint8) uint32 {
	return funct7<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | opcode
}

func encodeI(opcode, funct3 uint32, rd, rs1 uint8, imm int32) uint32 {
	return (uint32(imm)&0xFFF)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | opcode
}

func encodeS(opcode, funct3 uint32, rs1, rs2 uint8, imm int32) uint32 {
	u := uint32(imm)
	return (u>>5&0x7F)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | (u&0x1F)<<7 | opcode
}

func encodeB(opcode, funct3 uint32, rs1, rs2 uint8, offset int32) uint32 {
	u := uint32(offset)
	imm12 := (u >> 12) & 1
	imm11 := (u >> 11) & 1
	imm10_5 := (u >> 5) & 0x3F
	imm4_1 := (u >> 1) & 0xF
	return imm12<<31 | imm10_5<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 |
		funct3<<12 | imm4_1<<8 | imm11<<7 | opcode
}

func encodeJ(opcode uint32, rd uint8, offset int32) uint32 {
	u := uint32(offset)
	imm20 := (u >> 20) & 1
	imm10_1 := (u >> 1) & 0x3FF
	imm11 := (u >> 11) & 1
	imm19_12 := (u >> 12) & 0xFF
	return imm20<<31 | imm10_1<<21 | imm11<<20 | imm19_12<<12 | uint32(rd)<<7 | opcode
}

func encodeU(opcode uint32, rd uint8, imm int32) uint32 {
	return uint32(imm)&0xFFFFF000 | uint32(rd)<<7 | opcode
}

const (
	opcodeOpImm  = 0x13
	opcodeOp     = 0x33
	opcodeLoad   = 0x03
	opcodeStore  = 0x23
	opcodeBranch = 0x63
	opcodeJAL    = 0x6F
	opcodeJALR   = 0x67
	opcodeLUI    = 0x37
	opcodeAUIPC  = 0x17
	opcodeSystem = 0x73
	opcodeAMO    = 0x2F
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("RV32I register-immediate", func() {
		It("should decode ADDI x1, x2, 42", func() {
			inst := decoder.Decode(encodeI(opcodeOpImm, 0, 1, 2, 42))

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rs1).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int32(42)))
		})

		It("should sign-extend a negative immediate", func() {
			inst := decoder.Decode(encodeI(opcodeOpImm, 0, 1, 2, -8))

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Imm).To(Equal(int32(-8)))
		})

		It("should decode SLTIU as unsigned-compare", func() {
			inst := decoder.Decode(encodeI(opcodeOpImm, 3, 1, 2, 5))
			Expect(inst.Op).To(Equal(insts.OpSLTIU))
		})

		It("should decode SRAI with the funct7 top bit set", func() {
			word := encodeR(opcodeOpImm, 5, 0x20, 1, 2, 10) // shamt in rs2 field
			inst := decoder.Decode(word)

			Expect(inst.Op).To(Equal(insts.OpSRAI))
			Expect(inst.Shamt).To(Equal(uint8(10)))
		})
	})

	Describe("RV32I register-register", func() {
		It("should decode ADD", func() {
			inst := decoder.Decode(encodeR(opcodeOp, 0, 0, 1, 2, 3))

			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rs1).To(Equal(uint8(2)))
			Expect(inst.Rs2).To(Equal(uint8(3)))
		})

		It("should decode SUB using the top funct7 bit", func() {
			inst := decoder.Decode(encodeR(opcodeOp, 0, 0x20, 1, 2, 3))
			Expect(inst.Op).To(Equal(insts.OpSUB))
		})

		It("should decode AND/OR/XOR", func() {
			Expect(decoder.Decode(encodeR(opcodeOp, 7, 0, 1, 2, 3)).Op).To(Equal(insts.OpAND))
			Expect(decoder.Decode(encodeR(opcodeOp, 6, 0, 1, 2, 3)).Op).To(Equal(insts.OpOR))
			Expect(decoder.Decode(encodeR(opcodeOp, 4, 0, 1, 2, 3)).Op).To(Equal(insts.OpXOR))
		})
	})

	Describe("M extension", func() {
		It("should decode MUL", func() {
			inst := decoder.Decode(encodeR(opcodeOp, 0, 1, 1, 2, 3))
			Expect(inst.Op).To(Equal(insts.OpMUL))
		})

		It("should decode DIV and REM", func() {
			Expect(decoder.Decode(encodeR(opcodeOp, 4, 1, 1, 2, 3)).Op).To(Equal(insts.OpDIV))
			Expect(decoder.Decode(encodeR(opcodeOp, 6, 1, 1, 2, 3)).Op).To(Equal(insts.OpREM))
		})
	})

	Describe("A extension", func() {
		It("should decode LR.W and SC.W by their funct5", func() {
			lr := encodeR(opcodeAMO, 2, 0x02<<2, 1, 2, 0)
			sc := encodeR(opcodeAMO, 2, 0x03<<2, 1, 2, 3)

			Expect(decoder.Decode(lr).Op).To(Equal(insts.OpLRW))
			Expect(decoder.Decode(sc).Op).To(Equal(insts.OpSCW))
		})

		It("should decode AMOADD.W", func() {
			word := encodeR(opcodeAMO, 2, 0x00<<2, 1, 2, 3)
			inst := decoder.Decode(word)
			Expect(inst.Op).To(Equal(insts.OpAMOADDW))
		})
	})

	Describe("loads and stores", func() {
		It("should decode LW with a positive offset", func() {
			inst := decoder.Decode(encodeI(opcodeLoad, 2, 1, 2, 100))

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Imm).To(Equal(int32(100)))
		})

		It("should decode LB/LBU/LH/LHU by funct3", func() {
			Expect(decoder.Decode(encodeI(opcodeLoad, 0, 1, 2, 0)).Op).To(Equal(insts.OpLB))
			Expect(decoder.Decode(encodeI(opcodeLoad, 4, 1, 2, 0)).Op).To(Equal(insts.OpLBU))
			Expect(decoder.Decode(encodeI(opcodeLoad, 1, 1, 2, 0)).Op).To(Equal(insts.OpLH))
			Expect(decoder.Decode(encodeI(opcodeLoad, 5, 1, 2, 0)).Op).To(Equal(insts.OpLHU))
		})

		It("should decode SW with the split immediate reassembled", func() {
			inst := decoder.Decode(encodeS(opcodeStore, 2, 1, 2, -20))

			Expect(inst.Op).To(Equal(insts.OpSW))
			Expect(inst.Format).To(Equal(insts.FormatS))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Rs2).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int32(-20)))
		})
	})

	Describe("branches and jumps", func() {
		It("should decode BEQ with a reassembled branch offset", func() {
			inst := decoder.Decode(encodeB(opcodeBranch, 0, 1, 2, 64))

			Expect(inst.Op).To(Equal(insts.OpBEQ))
			Expect(inst.Format).To(Equal(insts.FormatB))
			Expect(inst.Imm).To(Equal(int32(64)))
		})

		It("should decode a negative branch offset", func() {
			inst := decoder.Decode(encodeB(opcodeBranch, 1, 1, 2, -64))
			Expect(inst.Op).To(Equal(insts.OpBNE))
			Expect(inst.Imm).To(Equal(int32(-64)))
		})

		It("should decode JAL with a reassembled jump offset", func() {
			inst := decoder.Decode(encodeJ(opcodeJAL, 1, 1024))

			Expect(inst.Op).To(Equal(insts.OpJAL))
			Expect(inst.Format).To(Equal(insts.FormatJ))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Imm).To(Equal(int32(1024)))
		})

		It("should decode JALR", func() {
			inst := decoder.Decode(encodeI(opcodeJALR, 0, 1, 2, 16))

			Expect(inst.Op).To(Equal(insts.OpJALR))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rs1).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int32(16)))
		})
	})

	Describe("upper-immediate formats", func() {
		It("should decode LUI", func() {
			inst := decoder.Decode(encodeU(opcodeLUI, 1, 0x12345000))

			Expect(inst.Op).To(Equal(insts.OpLUI))
			Expect(inst.Format).To(Equal(insts.FormatU))
			Expect(inst.Imm).To(Equal(int32(0x12345000)))
		})

		It("should decode AUIPC", func() {
			inst := decoder.Decode(encodeU(opcodeAUIPC, 1, 0x1000))

			Expect(inst.Op).To(Equal(insts.OpAUIPC))
			Expect(inst.Format).To(Equal(insts.FormatU))
		})
	})

	Describe("system instructions", func() {
		It("should decode ECALL", func() {
			inst := decoder.Decode(encodeI(opcodeSystem, 0, 0, 0, 0))
			Expect(inst.Op).To(Equal(insts.OpECALL))
		})

		It("should decode EBREAK", func() {
			inst := decoder.Decode(encodeI(opcodeSystem, 0, 0, 0, 1))
			Expect(inst.Op).To(Equal(insts.OpEBREAK))
		})
	})

	Describe("Zicsr", func() {
		It("should decode CSRRW with the CSR address in Imm", func() {
			inst := decoder.Decode(encodeI(opcodeSystem, 1, 1, 2, 0x003))

			Expect(inst.Op).To(Equal(insts.OpCSRRW))
			Expect(inst.Format).To(Equal(insts.FormatCSR))
			Expect(inst.Imm).To(Equal(int32(0x003)))
		})
	})

	Describe("unknown encodings", func() {
		It("should report OpUnknown for a reserved opcode", func() {
			inst := decoder.Decode(0x00000000 | 0x7F) // opcode bits all set, undefined
			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})
})
