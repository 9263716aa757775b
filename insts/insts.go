// Package insts provides RV32 instruction definitions and decoding for the
// integer base plus the M, A, F, D, Zicsr, and V extensions.
package insts

// Op identifies a decoded operation independent of its encoding class.
type Op uint16

// Supported operations.
const (
	OpUnknown Op = iota

	// RV32I
	OpLUI
	OpAUIPC
	OpJAL
	OpJALR
	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU
	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU
	OpSB
	OpSH
	OpSW
	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI
	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND
	OpFENCE
	OpFENCEI
	OpECALL
	OpEBREAK

	// M extension
	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU

	// A extension
	OpLRW
	OpSCW
	OpAMOSWAPW
	OpAMOADDW
	OpAMOXORW
	OpAMOANDW
	OpAMOORW
	OpAMOMINW
	OpAMOMAXW
	OpAMOMINUW
	OpAMOMAXUW

	// F/D extensions
	OpFLW
	OpFSW
	OpFLD
	OpFSD
	OpFMADDS
	OpFMSUBS
	OpFNMSUBS
	OpFNMADDS
	OpFADDS
	OpFSUBS
	OpFMULS
	OpFDIVS
	OpFSQRTS
	OpFSGNJS
	OpFSGNJNS
	OpFSGNJXS
	OpFMINS
	OpFMAXS
	OpFCVTWS
	OpFCVTWUS
	OpFCVTSW
	OpFCVTSWU
	OpFMVXS
	OpFMVSX
	OpFMVS
	OpFEQS
	OpFLTS
	OpFLES
	OpFMADDD
	OpFMSUBD
	OpFNMSUBD
	OpFNMADDD
	OpFADDD
	OpFSUBD
	OpFMULD
	OpFDIVD
	OpFSQRTD
	OpFSGNJD
	OpFSGNJND
	OpFSGNJXD
	OpFMIND
	OpFMAXD
	OpFCVTWD
	OpFCVTWUD
	OpFCVTDW
	OpFCVTDWU
	OpFCVTSD
	OpFCVTDS
	OpFMVD
	OpFEQD
	OpFLTD
	OpFLED

	// Zicsr
	OpCSRRW
	OpCSRRS
	OpCSRRC

	// V extension
	OpVSETVLI
	OpVLE
	OpVLSE
	OpVSE
	OpVSSE
	OpVADDVV
	OpVADDVX
	OpVADDVI
	OpVSUBVV
	OpVSUBVX
	OpVSUBVI
	OpVMULVV
	OpVMULVX
	OpVMULVI
	OpVANDVV
	OpVANDVX
	OpVANDVI
	OpVORVV
	OpVORVX
	OpVORVI
	OpVXORVV
	OpVXORVX
	OpVXORVI
	OpVMINUVV
	OpVMINUVX
	OpVMAXUVV
	OpVMAXUVX
	OpVSLLVV
	OpVSLLVX
	OpVSLLVI
	OpVSRLVV
	OpVSRLVX
	OpVSRLVI
	OpVMSEQVV
	OpVMSEQVX
	OpVMSEQVI
	OpVMSNEVV
	OpVMSNEVX
	OpVMSNEVI
	OpVMSLTVV
	OpVMSLTVX
	OpVMSLEVV
	OpVMSLEVX
	OpVMSLEVI
	OpVMSGTVX
	OpVMSGTVI
	OpVMVXS
	OpVMVSX
	OpVREDSUMVS
	OpVWREDSUMUVS
)

// Format identifies the instruction's encoding shape, used by the decoder to
// know which operand fields to extract.
type Format uint8

// Supported encoding formats.
const (
	FormatUnknown Format = iota
	FormatR               // register-register
	FormatI               // register-immediate / loads / JALR
	FormatS               // stores
	FormatB               // branches
	FormatU               // LUI / AUIPC
	FormatJ               // JAL
	FormatR4              // fused FP ops (rs1, rs2, rs3)
	FormatCSR             // CSRR{W,S,C}
	FormatVSet            // vsetvli
	FormatVLS             // vector load/store
	FormatVALU            // vector arithmetic (OPIVV/OPIVX/OPIVI)
)

// VariantKind distinguishes the three operand shapes a vector ALU
// instruction may take.
type VariantKind uint8

// Vector operand variants.
const (
	VariantVV VariantKind = iota // vector, vector
	VariantVX                    // vector, scalar x-register
	VariantVI                    // vector, 5-bit immediate
)

// Instruction is the set of decoded fields a unit needs to execute one
// instruction. Every field is populated by the decoder; unused fields for a
// given Op are left at their zero value.
type Instruction struct {
	Op     Op
	Format Format

	Rd  uint8
	Rs1 uint8
	Rs2 uint8
	Rs3 uint8

	// Imm holds the fully assembled, sign-extended (per §4.1) immediate for
	// I/S/B/U/J formats, and the raw CSR index for FormatCSR.
	Imm int32

	Funct3 uint8
	Funct7 uint8
	Shamt  uint8

	// Vector fields.
	Variant VariantKind
	EEW     uint8 // element width in bytes for loads/stores (1, 2, 4)
	VM      bool  // unused mask bit, decoded for completeness
}
