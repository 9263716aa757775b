package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("BranchUnit", func() {
	var (
		regFile    *emu.RegFile
		branchUnit *emu.BranchUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		branchUnit = emu.NewBranchUnit(regFile)
	})

	Describe("BEQ", func() {
		It("should branch when operands are equal", func() {
			regFile.WriteReg(1, 42)
			regFile.WriteReg(2, 42)

			branchUnit.BEQ(1, 2, 0x1000, 100)

			Expect(regFile.PC).To(Equal(uint32(0x1000 + 100)))
		})

		It("should not branch when operands differ", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, 2)
			regFile.PC = 0x2000

			branchUnit.BEQ(1, 2, 0x1000, 100)

			Expect(regFile.PC).To(Equal(uint32(0x2000)))
		})

		It("should branch backward on a negative offset", func() {
			branchUnit.BEQ(0, 0, 0x1000, -400)

			Expect(regFile.PC).To(Equal(uint32(0x1000 - 400)))
		})
	})

	Describe("BNE", func() {
		It("should branch when operands differ", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, 2)

			branchUnit.BNE(1, 2, 0x1000, 8)

			Expect(regFile.PC).To(Equal(uint32(0x1008)))
		})

		It("should not branch when operands are equal", func() {
			regFile.PC = 0x3000

			branchUnit.BNE(0, 0, 0x1000, 8)

			Expect(regFile.PC).To(Equal(uint32(0x3000)))
		})
	})

	Describe("BLT / BGE (signed comparison)", func() {
		It("BLT should branch when rs1 < rs2", func() {
			regFile.WriteReg(1, asU32(-5))
			regFile.WriteReg(2, 1)

			branchUnit.BLT(1, 2, 0x1000, 16)

			Expect(regFile.PC).To(Equal(uint32(0x1010)))
		})

		It("BLT should not branch when rs1 >= rs2", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 1)
			regFile.PC = 0x4000

			branchUnit.BLT(1, 2, 0x1000, 16)

			Expect(regFile.PC).To(Equal(uint32(0x4000)))
		})

		It("BGE should branch when rs1 >= rs2", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, asU32(-5))

			branchUnit.BGE(1, 2, 0x1000, 16)

			Expect(regFile.PC).To(Equal(uint32(0x1010)))
		})
	})

	Describe("BLTU / BGEU (unsigned comparison)", func() {
		It("BLTU should treat operands as unsigned", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, asU32(-1)) // 0xFFFFFFFF, huge unsigned

			branchUnit.BLTU(1, 2, 0x1000, 16)

			Expect(regFile.PC).To(Equal(uint32(0x1010)))
		})

		It("BGEU should not branch when rs1 is unsigned-less than rs2", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, asU32(-1))
			regFile.PC = 0x5000

			branchUnit.BGEU(1, 2, 0x1000, 16)

			Expect(regFile.PC).To(Equal(uint32(0x5000)))
		})
	})

	Describe("JAL", func() {
		It("should jump and link the return address", func() {
			branchUnit.JAL(1, 0x1000, 200)

			Expect(regFile.PC).To(Equal(uint32(0x1000 + 200)))
			Expect(regFile.ReadReg(1)).To(Equal(uint32(0x1000 + 4)))
		})

		It("should discard the link when rd is x0", func() {
			branchUnit.JAL(0, 0x1000, 200)

			Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
		})
	})

	Describe("JALR", func() {
		It("should jump to rs1+offset with the low bit cleared", func() {
			regFile.WriteReg(2, 0x2001)

			branchUnit.JALR(1, 2, 0x1000, 4)

			Expect(regFile.PC).To(Equal(uint32(0x2004)))
			Expect(regFile.ReadReg(1)).To(Equal(uint32(0x1000 + 4)))
		})

		It("should compute the link before overwriting rd when rd == rs1", func() {
			regFile.WriteReg(1, 0x2000)

			branchUnit.JALR(1, 1, 0x1000, 0)

			Expect(regFile.PC).To(Equal(uint32(0x2000)))
			Expect(regFile.ReadReg(1)).To(Equal(uint32(0x1000 + 4)))
		})
	})
})
