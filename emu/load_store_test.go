package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		regFile *emu.RegFile
		memory  *emu.Memory
		lsu     *emu.LoadStoreUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		lsu = emu.NewLoadStoreUnit(regFile, memory)
		regFile.WriteReg(1, 0x1000)
	})

	Describe("byte loads", func() {
		It("LB should sign-extend a negative byte", func() {
			memory.Write8(0x1000, 0xFF)

			lsu.LB(2, 1, 0)

			Expect(int32(regFile.ReadReg(2))).To(Equal(int32(-1)))
		})

		It("LBU should zero-extend the byte", func() {
			memory.Write8(0x1000, 0xFF)

			lsu.LBU(2, 1, 0)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(0xFF)))
		})
	})

	Describe("halfword loads", func() {
		It("LH should sign-extend a negative halfword", func() {
			memory.Write16(0x1000, 0xFFFE)

			lsu.LH(2, 1, 0)

			Expect(int32(regFile.ReadReg(2))).To(Equal(int32(-2)))
		})

		It("LHU should zero-extend the halfword", func() {
			memory.Write16(0x1000, 0xFFFE)

			lsu.LHU(2, 1, 0)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(0xFFFE)))
		})
	})

	Describe("word load/store", func() {
		It("should round-trip a word at rs1+imm", func() {
			regFile.WriteReg(2, 0xCAFEBABE)

			lsu.SW(1, 2, 16)
			lsu.LW(3, 1, 16)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0xCAFEBABE)))
		})

		It("should use a negative offset correctly", func() {
			regFile.WriteReg(1, 0x1010)
			regFile.WriteReg(2, 99)

			lsu.SW(1, 2, -16)

			Expect(memory.Read32(0x1000)).To(Equal(uint32(99)))
		})
	})

	Describe("SB / SH", func() {
		It("SB should store only the low byte", func() {
			regFile.WriteReg(2, 0xAABBCCDD)

			lsu.SB(1, 2, 0)

			Expect(memory.Read8(0x1000)).To(Equal(byte(0xDD)))
		})

		It("SH should store only the low halfword", func() {
			regFile.WriteReg(2, 0xAABBCCDD)

			lsu.SH(1, 2, 0)

			Expect(memory.Read16(0x1000)).To(Equal(uint16(0xCCDD)))
		})
	})
})
