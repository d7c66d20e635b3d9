// Command mipsmonitor is an interactive single-stepper for a MIPS-I image:
// press n to execute one instruction and watch the register file and
// program counter update, r to reset, q or Esc to quit.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"mipsi/cpu"
	"mipsi/mem"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: mipsmonitor <image>")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)

	var lastFault *cpu.Fault
	var stepCount int

	draw := func() {
		screen.Clear()
		snap, _ := c.Snapshot()
		row := 0
		emit := func(format string, args ...interface{}) {
			line := fmt.Sprintf(format, args...)
			for col, r := range line {
				screen.SetContent(col, row, r, nil, tcell.StyleDefault)
			}
			row++
		}
		emit("mipsmonitor  steps=%d  n=step  r=reset  q=quit", stepCount)
		emit("pc=0x%08X  pcN=0x%08X  hi=0x%08X  lo=0x%08X", snap.PC, snap.PCNext, snap.HI, snap.LO)
		if lastFault != nil {
			emit("fault: %v", lastFault)
		} else {
			emit("fault: none")
		}
		row++
		for i := 0; i < 32; i += 4 {
			emit("r%-2d=0x%08X  r%-2d=0x%08X  r%-2d=0x%08X  r%-2d=0x%08X",
				i, snap.Registers[i], i+1, snap.Registers[i+1], i+2, snap.Registers[i+2], i+3, snap.Registers[i+3])
		}
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Rune() == 'n':
				if lastFault == nil {
					lastFault = c.Step()
					stepCount++
				}
				draw()
			case ev.Rune() == 'r':
				_ = c.Reset()
				lastFault = nil
				stepCount = 0
				draw()
			}
		}
	}
}
