package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("ALU", func() {
	var (
		regFile *emu.RegFile
		alu     *emu.ALU
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		alu = emu.NewALU(regFile)
	})

	Describe("register-register ops", func() {
		It("ADD should wrap silently on overflow", func() {
			regFile.WriteReg(1, 0xFFFFFFFF)
			regFile.WriteReg(2, 1)

			alu.ADD(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))
		})

		It("SUB should compute rs1 - rs2", func() {
			regFile.WriteReg(1, 10)
			regFile.WriteReg(2, 3)

			alu.SUB(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(7)))
		})

		It("AND/OR/XOR should combine bitwise", func() {
			regFile.WriteReg(1, 0xF0)
			regFile.WriteReg(2, 0x0F)

			alu.AND(3, 1, 2)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))

			alu.OR(4, 1, 2)
			Expect(regFile.ReadReg(4)).To(Equal(uint32(0xFF)))

			alu.XOR(5, 1, 2)
			Expect(regFile.ReadReg(5)).To(Equal(uint32(0xFF)))
		})

		It("SLL/SRL should mask the shift amount to 5 bits", func() {
			regFile.WriteReg(1, 1)
			regFile.WriteReg(2, 33) // masked to 1

			alu.SLL(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(2)))
		})

		It("SRA should sign-extend on right shift", func() {
			regFile.WriteReg(1, asU32(-8))
			regFile.WriteReg(2, 1)

			alu.SRA(3, 1, 2)

			Expect(int32(regFile.ReadReg(3))).To(Equal(int32(-4)))
		})

		It("SLT should compare as signed", func() {
			regFile.WriteReg(1, asU32(-1))
			regFile.WriteReg(2, 1)

			alu.SLT(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(1)))
		})

		It("SLTU should compare as unsigned", func() {
			regFile.WriteReg(1, asU32(-1)) // huge unsigned
			regFile.WriteReg(2, 1)

			alu.SLTU(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))
		})
	})

	Describe("register-immediate ops", func() {
		It("ADDI should add a sign-extended immediate", func() {
			regFile.WriteReg(1, 10)

			alu.ADDI(2, 1, -3)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(7)))
		})

		It("SLTIU should compare the sign-extended immediate as unsigned", func() {
			regFile.WriteReg(1, 0)

			alu.SLTIU(2, 1, -1) // imm sign-extends to 0xFFFFFFFF

			Expect(regFile.ReadReg(2)).To(Equal(uint32(1)))
		})

		It("SLLI/SRLI/SRAI should shift by the decoded shamt", func() {
			regFile.WriteReg(1, 1)
			alu.SLLI(2, 1, 4)
			Expect(regFile.ReadReg(2)).To(Equal(uint32(16)))

			regFile.WriteReg(1, 0x80000000)
			alu.SRLI(2, 1, 4)
			Expect(regFile.ReadReg(2)).To(Equal(uint32(0x08000000)))

			regFile.WriteReg(1, asU32(-16))
			alu.SRAI(2, 1, 2)
			Expect(int32(regFile.ReadReg(2))).To(Equal(int32(-4)))
		})
	})

	Describe("upper-immediate ops", func() {
		It("LUI should write the immediate directly", func() {
			alu.LUI(1, 0x12345000)

			Expect(regFile.ReadReg(1)).To(Equal(uint32(0x12345000)))
		})

		It("AUIPC should add the immediate to the instruction's PC", func() {
			alu.AUIPC(1, 0x1000, 0x2000)

			Expect(regFile.ReadReg(1)).To(Equal(uint32(0x3000)))
		})
	})

	Describe("x0 hardwiring", func() {
		It("should discard writes to x0 through any op", func() {
			alu.ADDI(0, 0, 99)

			Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
		})
	})
})
