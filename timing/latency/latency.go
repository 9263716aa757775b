// Package latency provides instruction timing estimates for the emulator's
// approximate cycle accounting.
//
// The values model a simple in-order scalar core and can be overridden via
// TimingConfig.
package latency

import (
	"github.com/riscv-iss/rv32iss/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom timing configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the execution latency in cycles for the given
// instruction. For variable-latency operations (DIV/REM), returns the maximum
// latency.
func (t *Table) GetLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpADD, insts.OpSUB, insts.OpAND, insts.OpOR, insts.OpXOR,
		insts.OpADDI, insts.OpANDI, insts.OpORI, insts.OpXORI,
		insts.OpSLL, insts.OpSRL, insts.OpSRA, insts.OpSLLI, insts.OpSRLI, insts.OpSRAI,
		insts.OpSLT, insts.OpSLTU, insts.OpSLTI, insts.OpSLTIU,
		insts.OpLUI, insts.OpAUIPC:
		return t.config.ALULatency

	case insts.OpBEQ, insts.OpBNE, insts.OpBLT, insts.OpBGE, insts.OpBLTU, insts.OpBGEU,
		insts.OpJAL, insts.OpJALR:
		return t.config.BranchLatency

	case insts.OpLB, insts.OpLH, insts.OpLW, insts.OpLBU, insts.OpLHU,
		insts.OpFLW, insts.OpFLD, insts.OpVLE, insts.OpVLSE:
		return t.config.LoadLatency

	case insts.OpSB, insts.OpSH, insts.OpSW, insts.OpFSW, insts.OpFSD,
		insts.OpVSE, insts.OpVSSE:
		return t.config.StoreLatency

	case insts.OpECALL:
		return t.config.SyscallLatency

	case insts.OpMUL, insts.OpMULH, insts.OpMULHSU, insts.OpMULHU:
		return t.config.MultiplyLatency

	case insts.OpDIV, insts.OpDIVU, insts.OpREM, insts.OpREMU:
		return t.GetMaxLatency(inst)

	default:
		return 1
	}
}

// GetMinLatency returns the minimum execution latency for variable-latency
// operations such as DIV/REM.
func (t *Table) GetMinLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpDIV, insts.OpDIVU, insts.OpREM, insts.OpREMU:
		return t.config.DivideLatencyMin
	default:
		return t.GetLatency(inst)
	}
}

// GetMaxLatency returns the maximum execution latency for variable-latency
// operations such as DIV/REM.
func (t *Table) GetMaxLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpDIV, insts.OpDIVU, insts.OpREM, insts.OpREMU:
		return t.config.DivideLatencyMax
	default:
		return t.GetLatency(inst)
	}
}

// IsMemoryOp returns true if the instruction accesses memory.
func (t *Table) IsMemoryOp(inst *insts.Instruction) bool {
	return t.IsLoadOp(inst) || t.IsStoreOp(inst)
}

// IsLoadOp returns true if the instruction is a load operation.
func (t *Table) IsLoadOp(inst *insts.Instruction) bool {
	if inst == nil {
		return false
	}
	switch inst.Op {
	case insts.OpLB, insts.OpLH, insts.OpLW, insts.OpLBU, insts.OpLHU,
		insts.OpFLW, insts.OpFLD, insts.OpVLE, insts.OpVLSE, insts.OpLRW:
		return true
	default:
		return false
	}
}

// IsStoreOp returns true if the instruction is a store operation.
func (t *Table) IsStoreOp(inst *insts.Instruction) bool {
	if inst == nil {
		return false
	}
	switch inst.Op {
	case insts.OpSB, insts.OpSH, insts.OpSW, insts.OpFSW, insts.OpFSD,
		insts.OpVSE, insts.OpVSSE, insts.OpSCW:
		return true
	default:
		return false
	}
}

// IsBranchOp returns true if the instruction is a branch or jump operation.
func (t *Table) IsBranchOp(inst *insts.Instruction) bool {
	if inst == nil {
		return false
	}
	switch inst.Op {
	case insts.OpBEQ, insts.OpBNE, insts.OpBLT, insts.OpBGE, insts.OpBLTU, insts.OpBGEU,
		insts.OpJAL, insts.OpJALR:
		return true
	default:
		return false
	}
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
