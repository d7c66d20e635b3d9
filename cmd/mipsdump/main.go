// Command mipsdump loads a MIPS-I image, runs it to completion (or a step
// cap) and pretty-prints the resulting register-file snapshot, in the same
// spirit as the assembler toolchain's object dumper this is adapted from.
package main

import (
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"mipsi/cpu"
	"mipsi/mem"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: mipsdump <image>")
	}

	m := mem.NewFlat(1 << 20)
	if fault := mem.LoadFile(m, os.Args[1]); fault != nil {
		log.Fatalf("load %s: %v", os.Args[1], fault)
	}

	c, fault := cpu.Create(m)
	if fault != nil {
		log.Fatalf("create cpu: %v", fault)
	}
	defer cpu.Free(c)

	const stepCap = 1 << 16
	steps := 0
	var last *cpu.Fault
	for ; steps < stepCap; steps++ {
		if last = c.Step(); last != nil {
			break
		}
	}

	snap, _ := c.Snapshot()
	pp.Println(snap)
	pp.Println(map[string]interface{}{
		"steps executed": steps,
		"halted by":      last,
	})
}
