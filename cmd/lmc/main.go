// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
)

// registerFlag collects -r name=value presets.
type registerFlag map[string]int

func (rf registerFlag) String() string {
	return fmt.Sprintf("%v", map[string]int(rf))
}

func (rf registerFlag) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok {
		return errors.New("expected name=value")
	}
	rf[name], err = strconv.Atoi(value)
	return
}

// parseInputs turns a comma separated list of numbers into tape lines.
func parseInputs(text string) (tape string, ok bool) {
	for _, word := range strings.Split(text, ",") {
		value, err := strconv.Atoi(strings.TrimSpace(word))
		if err != nil {
			return
		}
		tape += strconv.Itoa(value) + "\n"
	}

	ok = true
	return
}

func main() {
	var debug bool
	var verbose bool
	var listing bool
	var prompt bool
	var steps int
	var input string
	var output string
	registers := registerFlag{}

	flag.BoolVar(&debug, "debug", false, "Print the machine state before every fetch")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing, do not execute")
	flag.BoolVar(&prompt, "p", false, "Prompt for input and label output")
	flag.IntVar(&steps, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.StringVar(&input, "i", "-", "Input: '-' for stdin, a file, or comma separated numbers")
	flag.StringVar(&output, "o", "-", "Output")
	flag.Var(registers, "r", "Preset a register (counter, accumulator, minus_flag) as name=value")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [flags] program.lmc", os.Args[0], os.Args[0])
	}

	compile := flag.Arg(0)

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		err = prog.Listing(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.StepLimit = steps
	emu.Tape.Prompt = prompt
	if debug {
		emu.Trace = os.Stdout
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else if tape, ok := parseInputs(input); ok {
		emu.Tape.Input = strings.NewReader(tape)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	for name, value := range registers {
		err = emu.Cpu.Set(name, value)
		if err != nil {
			log.Fatalf("-r %v=%v: %v", name, value, err)
		}
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
