package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("Memory", func() {
	var memory *emu.Memory

	BeforeEach(func() {
		memory = emu.NewMemory()
	})

	It("should read zero from an untouched address", func() {
		Expect(memory.Read32(0x10000)).To(Equal(uint32(0)))
	})

	It("should round-trip a byte", func() {
		memory.Write8(0x100, 0xAB)
		Expect(memory.Read8(0x100)).To(Equal(byte(0xAB)))
	})

	It("should round-trip a little-endian half-word", func() {
		memory.Write16(0x200, 0xBEEF)
		Expect(memory.Read16(0x200)).To(Equal(uint16(0xBEEF)))
		Expect(memory.Read8(0x200)).To(Equal(byte(0xEF)))
		Expect(memory.Read8(0x201)).To(Equal(byte(0xBE)))
	})

	It("should round-trip a little-endian word", func() {
		memory.Write32(0x300, 0xDEADBEEF)
		Expect(memory.Read32(0x300)).To(Equal(uint32(0xDEADBEEF)))
	})

	It("should round-trip a 64-bit value as two adjacent words", func() {
		memory.Write64(0x400, 0x0123456789ABCDEF)
		Expect(memory.Read64(0x400)).To(Equal(uint64(0x0123456789ABCDEF)))
		Expect(memory.Read32(0x400)).To(Equal(uint32(0x89ABCDEF)))
		Expect(memory.Read32(0x404)).To(Equal(uint32(0x01234567)))
	})

	It("should allocate pages lazily without cross-page corruption", func() {
		memory.Write8(0x0FFF, 0x11)
		memory.Write8(0x1000, 0x22)

		Expect(memory.Read8(0x0FFF)).To(Equal(byte(0x11)))
		Expect(memory.Read8(0x1000)).To(Equal(byte(0x22)))
	})

	It("should load a program's bytes starting at the entry address", func() {
		program := []byte{0x01, 0x02, 0x03, 0x04}

		memory.LoadProgram(0x5000, program)

		Expect(memory.Read32(0x5000)).To(Equal(uint32(0x04030201)))
	})
})
