package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riscv-iss/rv32iss/emu"
)

var _ = Describe("CSRUnit", func() {
	var (
		regFile      *emu.RegFile
		csrFile      *emu.CSRFile
		vectorConfig *emu.VectorConfig
		unit         *emu.CSRUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		csrFile = &emu.CSRFile{}
		vectorConfig = &emu.VectorConfig{SEW: 4, LMUL: 1}
		unit = emu.NewCSRUnit(regFile, csrFile, vectorConfig)
	})

	Describe("CSRRW", func() {
		It("should write rs1 to the CSR and return the prior value in rd", func() {
			csrFile.FRM = 2
			regFile.WriteReg(1, 5)

			unit.CSRRW(2, 1, emu.CSRFRM)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(2)))
			Expect(csrFile.FRM).To(Equal(uint8(5)))
		})
	})

	Describe("CSRRS", func() {
		It("should set bits present in rs1 without touching others", func() {
			csrFile.FFlags = 0b00010
			regFile.WriteReg(1, 0b00001)

			unit.CSRRS(2, 1, emu.CSRFFlags)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(0b00010)))
			Expect(csrFile.FFlags).To(Equal(uint8(0b00011)))
		})

		It("should not write when rs1 is x0", func() {
			csrFile.FFlags = 0b00010

			unit.CSRRS(2, 0, emu.CSRFFlags)

			Expect(csrFile.FFlags).To(Equal(uint8(0b00010)))
		})
	})

	Describe("CSRRC", func() {
		It("should clear bits present in rs1", func() {
			csrFile.FFlags = 0b00111
			regFile.WriteReg(1, 0b00001)

			unit.CSRRC(2, 1, emu.CSRFFlags)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(0b00111)))
			Expect(csrFile.FFlags).To(Equal(uint8(0b00110)))
		})
	})

	Describe("vector CSR mirrors", func() {
		It("should read VL from the vector configuration", func() {
			vectorConfig.VL = 8

			unit.CSRRS(1, 0, emu.CSRVL)

			Expect(regFile.ReadReg(1)).To(Equal(uint32(8)))
		})

		It("should read VLenb as the fixed register width in bytes", func() {
			unit.CSRRS(1, 0, emu.CSRVLenb)

			Expect(regFile.ReadReg(1)).To(Equal(uint32(emu.VLENB)))
		})
	})
})
