// Command mipsrun loads a flat, big-endian MIPS-I program image and drives
// it through the cpu package's Step loop until it faults or a step budget
// is exhausted.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mipsi/cpu"
	"mipsi/mem"
)

func main() {
	var (
		memSize    uint32
		maxSteps   int
		debugLevel uint
	)

	rootCmd := &cobra.Command{
		Use:   "mipsrun",
		Short: "Run a MIPS-I program image against the cpu simulator",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load an image at address 0 and execute it to completion",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m := mem.NewFlat(memSize)
			if fault := mem.LoadFile(m, args[0]); fault != nil {
				log.Fatalf("load %s: %v", args[0], fault)
			}

			c, fault := cpu.Create(m)
			if fault != nil {
				log.Fatalf("create cpu: %v", fault)
			}
			defer cpu.Free(c)

			if debugLevel > 0 {
				_ = c.SetDebugLevel(debugLevel, os.Stderr)
			}

			steps := 0
			for maxSteps <= 0 || steps < maxSteps {
				if fault := c.Step(); fault != nil {
					pc, _ := c.GetPC()
					fmt.Printf("halted after %d steps at pc=0x%08X: %v\n", steps, pc, fault)
					return
				}
				steps++
			}
			fmt.Printf("step budget of %d exhausted\n", maxSteps)
		},
	}
	runCmd.Flags().Uint32Var(&memSize, "mem", 1<<20, "simulated memory size in bytes")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = unbounded)")
	runCmd.Flags().UintVar(&debugLevel, "debug", 0, "trace verbosity (0-3)")

	stepCmd := &cobra.Command{
		Use:   "step [image] [count]",
		Short: "Load an image and single-step it count times, printing a snapshot after each step",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			m := mem.NewFlat(memSize)
			if fault := mem.LoadFile(m, args[0]); fault != nil {
				log.Fatalf("load %s: %v", args[0], fault)
			}
			c, fault := cpu.Create(m)
			if fault != nil {
				log.Fatalf("create cpu: %v", fault)
			}
			defer cpu.Free(c)

			var count int
			if _, err := fmt.Sscanf(args[1], "%d", &count); err != nil {
				log.Fatalf("invalid step count %q: %v", args[1], err)
			}
			for i := 0; i < count; i++ {
				fault := c.Step()
				snap, _ := c.Snapshot()
				fmt.Printf("step %d: pc=0x%08X hi=0x%08X lo=0x%08X fault=%v\n", i, snap.PC, snap.HI, snap.LO, fault)
				if fault != nil {
					return
				}
			}
		},
	}
	stepCmd.Flags().Uint32Var(&memSize, "mem", 1<<20, "simulated memory size in bytes")

	rootCmd.AddCommand(runCmd, stepCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
