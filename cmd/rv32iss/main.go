// Package main provides the entry point for the RV32 instruction set
// simulator: a functional emulator with an optional approximate timing mode.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/riscv-iss/rv32iss/emu"
	"github.com/riscv-iss/rv32iss/insts"
	"github.com/riscv-iss/rv32iss/loader"
	"github.com/riscv-iss/rv32iss/timing/latency"
)

var (
	timing          = flag.Bool("timing", false, "Enable approximate cycle accounting")
	configPath      = flag.String("config", "", "Path to timing configuration JSON file")
	verbose         = flag.Bool("v", false, "Verbose output")
	maxInstructions = flag.Uint64("max-instructions", 0, "Stop after this many instructions (0 = no limit)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: rv32iss [options] <program.elf>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", programPath)
		fmt.Printf("Entry point: 0x%X\n", prog.EntryPoint)
		fmt.Printf("Segments: %d\n", len(prog.Segments))
	}

	var exitCode int
	if *timing {
		exitCode = runTiming(prog, programPath)
	} else {
		exitCode = runEmulation(prog, programPath)
	}
	os.Exit(exitCode)
}

func loadSegments(memory *emu.Memory, prog *loader.Program) {
	for _, seg := range prog.Segments {
		for i, b := range seg.Data {
			memory.Write8(uint64(seg.VirtAddr)+uint64(i), b)
		}
		for i := uint32(len(seg.Data)); i < seg.MemSize; i++ {
			memory.Write8(uint64(seg.VirtAddr)+uint64(i), 0)
		}
	}
}

// runEmulation runs the program in pure functional emulation mode: no cycle
// accounting, just instruction-by-instruction state transitions.
func runEmulation(prog *loader.Program, programPath string) int {
	memory := emu.NewMemory()
	loadSegments(memory, prog)

	emulator := emu.NewEmulator(
		emu.WithStackPointer(prog.InitialSP),
		emu.WithMaxInstructions(*maxInstructions),
	)
	emulator.LoadProgram(prog.EntryPoint, memory)

	exitCode := emulator.Run()

	if *verbose {
		fmt.Printf("\nProgram: %s\n", programPath)
		fmt.Printf("Exit code: %d\n", exitCode)
		fmt.Printf("Instructions executed: %d\n", emulator.InstructionCount())
	}

	return int(exitCode)
}

// runTiming runs the program with approximate per-instruction cycle
// accounting from the latency table. It re-decodes each instruction solely
// to look up its latency class; no pipeline hazards, stalls, or cache
// effects are modeled, since this simulator scopes timing to a rough
// instruction mix estimate rather than a cycle-accurate microarchitecture.
func runTiming(prog *loader.Program, programPath string) int {
	var timingConfig *latency.TimingConfig
	if *configPath != "" {
		var err error
		timingConfig, err = latency.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timing config: %v\n", err)
			os.Exit(1)
		}
	} else {
		timingConfig = latency.DefaultTimingConfig()
	}

	table := latency.NewTableWithConfig(timingConfig)
	decoder := insts.NewDecoder()

	memory := emu.NewMemory()
	loadSegments(memory, prog)

	emulator := emu.NewEmulator(
		emu.WithStackPointer(prog.InitialSP),
		emu.WithMaxInstructions(*maxInstructions),
	)
	emulator.LoadProgram(prog.EntryPoint, memory)

	var cycles uint64
	var loads, stores, branches uint64

	for {
		pc := emulator.RegFile().PC
		word := emulator.Memory().Read32(uint64(pc))
		inst := decoder.Decode(word)
		cycles += table.GetLatency(inst)
		if table.IsLoadOp(inst) {
			loads++
		}
		if table.IsStoreOp(inst) {
			stores++
		}
		if table.IsBranchOp(inst) {
			branches++
		}

		result := emulator.Step()
		if result.Exited {
			reportTiming(programPath, int(result.ExitCode), emulator.InstructionCount(), cycles, loads, stores, branches)
			return int(result.ExitCode)
		}
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "emulation error: %v\n", result.Err)
			reportTiming(programPath, -1, emulator.InstructionCount(), cycles, loads, stores, branches)
			return -1
		}
	}
}

func reportTiming(programPath string, exitCode int, instructions, cycles, loads, stores, branches uint64) {
	if instructions == 0 {
		instructions = 1
	}
	fmt.Printf("\n")
	fmt.Printf("Program: %s\n", programPath)
	fmt.Printf("Exit code: %d\n", exitCode)
	fmt.Printf("Total Instructions: %d\n", instructions)
	fmt.Printf("Estimated Cycles: %d\n", cycles)
	fmt.Printf("CPI: %.2f\n", float64(cycles)/float64(instructions))
	fmt.Printf("\n")
	fmt.Printf("Mix:\n")
	fmt.Printf("  Loads:    %d\n", loads)
	fmt.Printf("  Stores:   %d\n", stores)
	fmt.Printf("  Branches: %d\n", branches)
}
