// Command iapx86run is a minimal demonstration host for the iapx86 core:
// it loads a flat binary at a chosen physical address, seeds CS:IP, runs
// an instruction budget, and dumps the resulting register file. It is
// explicitly not part of the core — loading programs, parsing a CLI, and
// presenting results are all host concerns the core itself leaves entirely
// external.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kestrel-systems/iapx86"
)

func main() {
	loadAddr := flag.Uint("load-addr", 0x7C00, "physical address to load the binary at")
	cs := flag.Uint("cs", 0, "initial CS")
	ip := flag.Uint("ip", 0x7C00, "initial IP")
	budget := flag.Int("budget", 1_000_000, "maximum instructions to execute")
	debug := flag.Bool("debug", false, "attach a debug logger to the dispatch loop")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iapx86run [flags] <binary>")
		os.Exit(2)
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "iapx86run:", err)
		os.Exit(1)
	}

	cpu := iapx86.NewCPU()
	if *debug {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		cpu.AttachLogger(log)
	}

	ram := cpu.RAM()
	n := copy(ram[*loadAddr:], program)
	if n < len(program) {
		fmt.Fprintln(os.Stderr, "iapx86run: program does not fit in RAM at load address")
		os.Exit(1)
	}

	cpu.SetCS(uint16(*cs))
	cpu.SetIP(uint16(*ip))
	cpu.Execute(*budget)

	dumpRegisters(cpu)
}

func dumpRegisters(c *iapx86.CPU) {
	fmt.Printf("AX=%04X CX=%04X DX=%04X BX=%04X SP=%04X BP=%04X SI=%04X DI=%04X\n",
		c.AX(), c.CX(), c.DX(), c.BX(), c.SP(), c.BP(), c.SI(), c.DI())
	fmt.Printf("ES=%04X CS=%04X SS=%04X DS=%04X IP=%04X\n",
		c.ES(), c.CS(), c.SS(), c.DS(), c.IP())
	fmt.Printf("CF=%v PF=%v AF=%v ZF=%v SF=%v TF=%v IF=%v DF=%v OF=%v\n",
		b(c.CF()), b(c.PF()), b(c.AF()), b(c.ZF()), b(c.SF()), b(c.TF()), b(c.IFlag()), b(c.DF()), b(c.OF()))
}

func b(v bool) int {
	if v {
		return 1
	}
	return 0
}
