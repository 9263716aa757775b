// Package emu provides functional RV32 emulation: register and memory
// state, per-extension execution units, and the instruction dispatcher.
package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/riscv-iss/rv32iss/insts"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Exited is true if the program terminated (via the exit syscall, EBREAK,
	// or FSQRT of a negative operand).
	Exited bool

	// ExitCode is the exit status if Exited is true.
	ExitCode int32

	// Err is set if an error occurred during execution.
	Err error
}

// Emulator executes RV32 instructions functionally.
type Emulator struct {
	regFile        *RegFile
	fpRegFile      *FPRegFile
	vRegFile       *VRegFile
	csrFile        *CSRFile
	vectorConfig   *VectorConfig
	memory         *Memory
	decoder        *insts.Decoder
	syscallHandler SyscallHandler

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit
	mulDiv     *MulDivUnit
	atomicUnit *AtomicUnit
	fpu        *FPU
	csrUnit    *CSRUnit
	vectorUnit *VectorUnit

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stdout = w }
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stderr = w }
}

// WithStdin sets a custom stdin reader.
func WithStdin(r io.Reader) EmulatorOption {
	return func(e *Emulator) { e.stdin = r }
}

// WithSyscallHandler sets a custom syscall handler.
func WithSyscallHandler(handler SyscallHandler) EmulatorOption {
	return func(e *Emulator) { e.syscallHandler = handler }
}

// WithStackPointer sets the initial stack pointer (x2) value.
func WithStackPointer(sp uint32) EmulatorOption {
	return func(e *Emulator) { e.regFile.X[2] = sp }
}

// WithMaxInstructions sets the maximum number of instructions to execute. A
// value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// NewEmulator creates a new RV32 emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := &RegFile{}
	memory := NewMemory()

	e := &Emulator{
		regFile:      regFile,
		fpRegFile:    &FPRegFile{},
		vRegFile:     &VRegFile{},
		csrFile:      &CSRFile{},
		vectorConfig: &VectorConfig{SEW: 4, LMUL: 1},
		memory:       memory,
		decoder:      insts.NewDecoder(),
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.wireUnits()

	if e.syscallHandler == nil {
		e.syscallHandler = NewDefaultSyscallHandler(e.regFile, e.memory, e.stdin, e.stdout, e.stderr)
	}

	return e
}

func (e *Emulator) wireUnits() {
	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)
	e.mulDiv = NewMulDivUnit(e.regFile)
	e.atomicUnit = NewAtomicUnit(e.regFile, e.memory)
	e.fpu = NewFPU(e.regFile, e.fpRegFile, e.csrFile, e.memory)
	e.csrUnit = NewCSRUnit(e.regFile, e.csrFile, e.vectorConfig)
	e.vectorUnit = NewVectorUnit(e.vRegFile, e.regFile, e.memory, e.vectorConfig)
}

// RegFile returns the emulator's integer register file.
func (e *Emulator) RegFile() *RegFile { return e.regFile }

// FPRegFile returns the emulator's floating-point register file.
func (e *Emulator) FPRegFile() *FPRegFile { return e.fpRegFile }

// VRegFile returns the emulator's vector register file.
func (e *Emulator) VRegFile() *VRegFile { return e.vRegFile }

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory { return e.memory }

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 { return e.instructionCount }

// LoadProgram loads a program into memory and sets the entry point. The
// program can be either a []byte or a *Memory.
func (e *Emulator) LoadProgram(entry uint32, program interface{}) {
	switch p := program.(type) {
	case []byte:
		e.memory.LoadProgram(uint64(entry), p)
	case *Memory:
		e.memory = p
		e.wireUnits()
		e.syscallHandler = NewDefaultSyscallHandler(e.regFile, e.memory, e.stdin, e.stdout, e.stderr)
	}
	e.regFile.PC = entry
}

// Reset resets the emulator to its initial state.
func (e *Emulator) Reset() {
	e.regFile = &RegFile{}
	e.fpRegFile = &FPRegFile{}
	e.vRegFile = &VRegFile{}
	e.csrFile = &CSRFile{}
	e.vectorConfig = &VectorConfig{SEW: 4, LMUL: 1}
	e.memory = NewMemory()
	e.instructionCount = 0

	e.wireUnits()
	e.syscallHandler = NewDefaultSyscallHandler(e.regFile, e.memory, e.stdin, e.stdout, e.stderr)
}

// Step executes a single instruction and returns a StepResult indicating
// whether execution should continue.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("max instructions reached")}
	}

	pcOfInstruction := e.regFile.PC
	word := e.memory.Read32(uint64(pcOfInstruction))
	inst := e.decoder.Decode(word)

	if inst.Op == insts.OpUnknown {
		return StepResult{Err: fmt.Errorf("unknown instruction 0x%08X at PC=0x%X", word, pcOfInstruction)}
	}

	// Default next-PC, per §4.1: every format but branches, jumps, and
	// AUIPC's "address of this instruction" computation just wants PC+4,
	// so the dispatcher advances first and semantics that need the
	// instruction's own address are handed pcOfInstruction explicitly.
	e.regFile.PC = pcOfInstruction + 4

	result := e.execute(inst, pcOfInstruction)
	e.instructionCount++
	return result
}

// Run executes instructions until the program exits or an error occurs,
// returning the exit code (-1 if an error stopped execution first).
func (e *Emulator) Run() int32 {
	for {
		result := e.Step()
		if result.Exited {
			return result.ExitCode
		}
		if result.Err != nil {
			_, _ = fmt.Fprintf(e.stderr, "emulation error: %v\n", result.Err)
			return -1
		}
	}
}

func (e *Emulator) execute(inst *insts.Instruction, pc uint32) StepResult {
	switch inst.Op {
	case insts.OpECALL:
		return e.executeECALL()
	case insts.OpEBREAK:
		return StepResult{Exited: true, ExitCode: -1, Err: fmt.Errorf("EBREAK at PC=0x%X", pc)}
	case insts.OpFENCE, insts.OpFENCEI:
		return StepResult{}
	}

	switch inst.Format {
	case insts.FormatR:
		if res := e.executeR(inst); res.Exited || res.Err != nil {
			return res
		}
	case insts.FormatI:
		e.executeI(inst, pc)
	case insts.FormatS:
		e.executeS(inst)
	case insts.FormatB:
		e.executeB(inst, pc)
	case insts.FormatU:
		e.executeU(inst, pc)
	case insts.FormatJ:
		e.executeJ(inst, pc)
	case insts.FormatR4:
		e.executeR4(inst)
	case insts.FormatCSR:
		e.executeCSR(inst)
	case insts.FormatVSet:
		e.vectorUnit.VSETVLI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.FormatVLS:
		e.executeVLS(inst)
	case insts.FormatVALU:
		e.executeVALU(inst)
	default:
		return StepResult{Err: fmt.Errorf("unimplemented format %d at PC=0x%X", inst.Format, pc)}
	}

	return StepResult{}
}

func (e *Emulator) executeECALL() StepResult {
	result := e.syscallHandler.Handle()
	return StepResult{Exited: result.Exited, ExitCode: result.ExitCode}
}

func (e *Emulator) executeR(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpADD:
		e.alu.ADD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSUB:
		e.alu.SUB(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLL:
		e.alu.SLL(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLT:
		e.alu.SLT(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLTU:
		e.alu.SLTU(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpXOR:
		e.alu.XOR(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSRL:
		e.alu.SRL(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSRA:
		e.alu.SRA(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpOR:
		e.alu.OR(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAND:
		e.alu.AND(inst.Rd, inst.Rs1, inst.Rs2)

	case insts.OpMUL:
		e.mulDiv.MUL(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpMULH:
		e.mulDiv.MULH(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpMULHSU:
		e.mulDiv.MULHSU(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpMULHU:
		e.mulDiv.MULHU(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpDIV:
		e.mulDiv.DIV(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpDIVU:
		e.mulDiv.DIVU(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpREM:
		e.mulDiv.REM(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpREMU:
		e.mulDiv.REMU(inst.Rd, inst.Rs1, inst.Rs2)

	case insts.OpLRW:
		e.atomicUnit.LRW(inst.Rd, inst.Rs1)
	case insts.OpSCW:
		e.atomicUnit.SCW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOSWAPW:
		e.atomicUnit.AMOSWAPW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOADDW:
		e.atomicUnit.AMOADDW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOXORW:
		e.atomicUnit.AMOXORW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOANDW:
		e.atomicUnit.AMOANDW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOORW:
		e.atomicUnit.AMOORW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOMINW:
		e.atomicUnit.AMOMINW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOMAXW:
		e.atomicUnit.AMOMAXW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOMINUW:
		e.atomicUnit.AMOMINUW(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAMOMAXUW:
		e.atomicUnit.AMOMAXUW(inst.Rd, inst.Rs1, inst.Rs2)

	default:
		return e.executeOpFP(inst)
	}
	return StepResult{}
}

func (e *Emulator) executeOpFP(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpFADDS:
		e.fpu.FADDS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSUBS:
		e.fpu.FSUBS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMULS:
		e.fpu.FMULS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFDIVS:
		e.fpu.FDIVS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSQRTS:
		if err := e.fpu.FSQRTS(inst.Rd, inst.Rs1); err != nil {
			return StepResult{Exited: true, ExitCode: -1, Err: err}
		}
	case insts.OpFSGNJS:
		e.fpu.FSGNJS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSGNJNS:
		e.fpu.FSGNJNS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSGNJXS:
		e.fpu.FSGNJXS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMINS:
		e.fpu.FMINS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMAXS:
		e.fpu.FMAXS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFEQS:
		e.fpu.FEQS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFLTS:
		e.fpu.FLTS(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFLES:
		e.fpu.FLES(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFCVTWS:
		e.fpu.FCVTWS(inst.Rd, inst.Rs1)
	case insts.OpFCVTWUS:
		e.fpu.FCVTWUS(inst.Rd, inst.Rs1)
	case insts.OpFCVTSW:
		e.fpu.FCVTSW(inst.Rd, inst.Rs1)
	case insts.OpFCVTSWU:
		e.fpu.FCVTSWU(inst.Rd, inst.Rs1)
	case insts.OpFMVXS:
		e.fpu.FMVXS(inst.Rd, inst.Rs1)
	case insts.OpFMVSX:
		e.fpu.FMVSX(inst.Rd, inst.Rs1)
	case insts.OpFMVS:
		e.fpu.FMVS(inst.Rd, inst.Rs1)

	case insts.OpFADDD:
		e.fpu.FADDD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSUBD:
		e.fpu.FSUBD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMULD:
		e.fpu.FMULD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFDIVD:
		e.fpu.FDIVD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSQRTD:
		if err := e.fpu.FSQRTD(inst.Rd, inst.Rs1); err != nil {
			return StepResult{Exited: true, ExitCode: -1, Err: err}
		}
	case insts.OpFSGNJD:
		e.fpu.FSGNJD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSGNJND:
		e.fpu.FSGNJND(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFSGNJXD:
		e.fpu.FSGNJXD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMIND:
		e.fpu.FMIND(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFMAXD:
		e.fpu.FMAXD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFEQD:
		e.fpu.FEQD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFLTD:
		e.fpu.FLTD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFLED:
		e.fpu.FLED(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpFCVTWD:
		e.fpu.FCVTWD(inst.Rd, inst.Rs1)
	case insts.OpFCVTWUD:
		e.fpu.FCVTWUD(inst.Rd, inst.Rs1)
	case insts.OpFCVTDW:
		e.fpu.FCVTDW(inst.Rd, inst.Rs1)
	case insts.OpFCVTDWU:
		e.fpu.FCVTDWU(inst.Rd, inst.Rs1)
	case insts.OpFCVTSD:
		e.fpu.FCVTSD(inst.Rd, inst.Rs1)
	case insts.OpFCVTDS:
		e.fpu.FCVTDS(inst.Rd, inst.Rs1)
	case insts.OpFMVD:
		e.fpu.FMVD(inst.Rd, inst.Rs1)
	}
	return StepResult{}
}

func (e *Emulator) executeI(inst *insts.Instruction, pc uint32) {
	switch inst.Op {
	case insts.OpADDI:
		e.alu.ADDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLTI:
		e.alu.SLTI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLTIU:
		e.alu.SLTIU(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpXORI:
		e.alu.XORI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpORI:
		e.alu.ORI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpANDI:
		e.alu.ANDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLLI:
		e.alu.SLLI(inst.Rd, inst.Rs1, inst.Shamt)
	case insts.OpSRLI:
		e.alu.SRLI(inst.Rd, inst.Rs1, inst.Shamt)
	case insts.OpSRAI:
		e.alu.SRAI(inst.Rd, inst.Rs1, inst.Shamt)

	case insts.OpJALR:
		e.branchUnit.JALR(inst.Rd, inst.Rs1, pc, inst.Imm)

	case insts.OpLB:
		e.lsu.LB(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLH:
		e.lsu.LH(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLW:
		e.lsu.LW(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLBU:
		e.lsu.LBU(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLHU:
		e.lsu.LHU(inst.Rd, inst.Rs1, inst.Imm)

	case insts.OpFLW:
		e.fpu.FLW(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpFLD:
		e.fpu.FLD(inst.Rd, inst.Rs1, inst.Imm)
	}
}

func (e *Emulator) executeS(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpSB:
		e.lsu.SB(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpSH:
		e.lsu.SH(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpSW:
		e.lsu.SW(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpFSW:
		e.fpu.FSW(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpFSD:
		e.fpu.FSD(inst.Rs1, inst.Rs2, inst.Imm)
	}
}

func (e *Emulator) executeB(inst *insts.Instruction, pc uint32) {
	switch inst.Op {
	case insts.OpBEQ:
		e.branchUnit.BEQ(inst.Rs1, inst.Rs2, pc, inst.Imm)
	case insts.OpBNE:
		e.branchUnit.BNE(inst.Rs1, inst.Rs2, pc, inst.Imm)
	case insts.OpBLT:
		e.branchUnit.BLT(inst.Rs1, inst.Rs2, pc, inst.Imm)
	case insts.OpBGE:
		e.branchUnit.BGE(inst.Rs1, inst.Rs2, pc, inst.Imm)
	case insts.OpBLTU:
		e.branchUnit.BLTU(inst.Rs1, inst.Rs2, pc, inst.Imm)
	case insts.OpBGEU:
		e.branchUnit.BGEU(inst.Rs1, inst.Rs2, pc, inst.Imm)
	}
}

func (e *Emulator) executeU(inst *insts.Instruction, pc uint32) {
	switch inst.Op {
	case insts.OpLUI:
		e.alu.LUI(inst.Rd, inst.Imm)
	case insts.OpAUIPC:
		e.alu.AUIPC(inst.Rd, pc, inst.Imm)
	}
}

func (e *Emulator) executeJ(inst *insts.Instruction, pc uint32) {
	if inst.Op == insts.OpJAL {
		e.branchUnit.JAL(inst.Rd, pc, inst.Imm)
	}
}

func (e *Emulator) executeR4(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpFMADDS:
		e.fpu.FMADDS(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFMSUBS:
		e.fpu.FMSUBS(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFNMSUBS:
		e.fpu.FNMSUBS(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFNMADDS:
		e.fpu.FNMADDS(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFMADDD:
		e.fpu.FMADDD(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFMSUBD:
		e.fpu.FMSUBD(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFNMSUBD:
		e.fpu.FNMSUBD(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	case insts.OpFNMADDD:
		e.fpu.FNMADDD(inst.Rd, inst.Rs1, inst.Rs2, inst.Rs3)
	}
}

func (e *Emulator) executeCSR(inst *insts.Instruction) {
	csr := uint16(inst.Imm)
	switch inst.Op {
	case insts.OpCSRRW:
		e.csrUnit.CSRRW(inst.Rd, inst.Rs1, csr)
	case insts.OpCSRRS:
		e.csrUnit.CSRRS(inst.Rd, inst.Rs1, csr)
	case insts.OpCSRRC:
		e.csrUnit.CSRRC(inst.Rd, inst.Rs1, csr)
	}
}

func (e *Emulator) executeVLS(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpVLE:
		e.vectorUnit.VLE(inst.Rd, inst.Rs1)
	case insts.OpVSE:
		e.vectorUnit.VSE(inst.Rd, inst.Rs1)
	case insts.OpVLSE:
		e.vectorUnit.VLSE(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpVSSE:
		e.vectorUnit.VSSE(inst.Rd, inst.Rs1, inst.Rs2)
	}
}

func (e *Emulator) executeVALU(inst *insts.Instruction) {
	v := e.vectorUnit
	switch inst.Op {
	case insts.OpVADDVV:
		v.VADDVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVADDVX:
		v.VADDVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVADDVI:
		v.VADDVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVSUBVV:
		v.VSUBVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSUBVX:
		v.VSUBVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSUBVI:
		v.VSUBVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMULVV:
		v.VMULVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMULVX:
		v.VMULVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMULVI:
		v.VMULVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVANDVV:
		v.VANDVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVANDVX:
		v.VANDVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVANDVI:
		v.VANDVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVORVV:
		v.VORVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVORVX:
		v.VORVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVORVI:
		v.VORVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVXORVV:
		v.VXORVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVXORVX:
		v.VXORVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVXORVI:
		v.VXORVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMINUVV:
		v.VMINUVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMINUVX:
		v.VMINUVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMAXUVV:
		v.VMAXUVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMAXUVX:
		v.VMAXUVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSLLVV:
		v.VSLLVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSLLVX:
		v.VSLLVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSLLVI:
		v.VSLLVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVSRLVV:
		v.VSRLVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSRLVX:
		v.VSRLVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVSRLVI:
		v.VSRLVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMSEQVV:
		v.VMSEQVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSEQVX:
		v.VMSEQVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSEQVI:
		v.VMSEQVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMSNEVV:
		v.VMSNEVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSNEVX:
		v.VMSNEVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSNEVI:
		v.VMSNEVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMSLTVV:
		v.VMSLTVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSLTVX:
		v.VMSLTVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSLEVV:
		v.VMSLEVV(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSLEVX:
		v.VMSLEVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSLEVI:
		v.VMSLEVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMSGTVX:
		v.VMSGTVX(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVMSGTVI:
		v.VMSGTVI(inst.Rd, inst.Rs2, inst.Imm)
	case insts.OpVMVXS:
		v.VMVXS(inst.Rd, inst.Rs2)
	case insts.OpVMVSX:
		v.VMVSX(inst.Rd, inst.Rs1)
	case insts.OpVREDSUMVS:
		v.VREDSUMVS(inst.Rd, inst.Rs2, inst.Rs1)
	case insts.OpVWREDSUMUVS:
		v.VWREDSUMUVS(inst.Rd, inst.Rs2, inst.Rs1)
	}
}
