package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("AtomicUnit", func() {
	var (
		regFile *emu.RegFile
		memory  *emu.Memory
		unit    *emu.AtomicUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		unit = emu.NewAtomicUnit(regFile, memory)
	})

	Describe("LRW / SCW", func() {
		It("LRW should load the word at [rs1] into rd", func() {
			memory.Write32(0x1000, 0xABCD1234)
			regFile.WriteReg(1, 0x1000)

			unit.LRW(2, 1)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(0xABCD1234)))
		})

		It("SCW should store rs2 to [rs1] and report success in rd", func() {
			regFile.WriteReg(1, 0x1000)
			regFile.WriteReg(2, 0x55555555)

			unit.SCW(3, 1, 2)

			Expect(memory.Read32(0x1000)).To(Equal(uint32(0x55555555)))
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))
		})
	})

	Describe("AMOADDW", func() {
		It("should return the pre-op value in rd and store the sum", func() {
			memory.Write32(0x2000, 10)
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 5)

			unit.AMOADDW(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(10)))
			Expect(memory.Read32(0x2000)).To(Equal(uint32(15)))
		})
	})

	Describe("AMOSWAPW", func() {
		It("should swap rs2 into memory and return the old value", func() {
			memory.Write32(0x2000, 0x11111111)
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 0x22222222)

			unit.AMOSWAPW(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0x11111111)))
			Expect(memory.Read32(0x2000)).To(Equal(uint32(0x22222222)))
		})
	})

	Describe("AMOXORW / AMOANDW / AMOORW", func() {
		It("should combine bitwise and preserve the pre-op value in rd", func() {
			memory.Write32(0x2000, 0xF0)
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 0x0F)

			unit.AMOORW(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0xF0)))
			Expect(memory.Read32(0x2000)).To(Equal(uint32(0xFF)))
		})
	})

	Describe("AMOMINW / AMOMAXW (signed)", func() {
		It("AMOMINW should store the signed minimum", func() {
			memory.Write32(0x2000, asU32(-5))
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 3)

			unit.AMOMINW(3, 1, 2)

			Expect(int32(regFile.ReadReg(3))).To(Equal(int32(-5)))
			Expect(int32(memory.Read32(0x2000))).To(Equal(int32(-5)))
		})

		It("AMOMAXW should store the signed maximum", func() {
			memory.Write32(0x2000, asU32(-5))
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 3)

			unit.AMOMAXW(3, 1, 2)

			Expect(int32(regFile.ReadReg(3))).To(Equal(int32(-5)))
			Expect(memory.Read32(0x2000)).To(Equal(uint32(3)))
		})
	})

	Describe("AMOMINUW / AMOMAXUW (unsigned)", func() {
		It("AMOMINUW should treat values as unsigned", func() {
			memory.Write32(0x2000, asU32(-5)) // huge unsigned
			regFile.WriteReg(1, 0x2000)
			regFile.WriteReg(2, 3)

			unit.AMOMINUW(3, 1, 2)

			Expect(memory.Read32(0x2000)).To(Equal(uint32(3)))
		})
	})
})
