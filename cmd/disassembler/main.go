// disassembler loads an iNES ROM and disassembles its PRG-ROM to stdout
// starting at the reset vector (or an explicit -start_pc).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nesgo/nes2a03/cartridge"
	"github.com/nesgo/nes2a03/disasm"
	"github.com/nesgo/nes2a03/mapper"
	"github.com/nesgo/nes2a03/memory"
)

var startPC = flag.Int("start_pc", -1, "PC value to start disassembling; defaults to the reset vector")

// flatBank wraps a mapper.Mapper to satisfy memory.Bank for disasm.Step,
// which only ever needs Read.
type flatBank struct {
	m mapper.Mapper
}

func (f flatBank) Read(addr uint16) uint8        { return f.m.CPURead(addr) }
func (f flatBank) Write(addr uint16, val uint8)  { f.m.CPUWrite(addr, val) }
func (f flatBank) PowerOn()                      {}
func (f flatBank) Parent() memory.Bank           { return nil }
func (f flatBank) DatabusVal() uint8             { return 0 }

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <PC>] <rom.nes>", os.Args[0])
	}

	f, err := os.Open(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't open %s: %v", flag.Args()[0], err)
	}
	defer f.Close()

	img, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("can't load cartridge: %v", err)
	}
	nrom := mapper.NewNROM(img.PRG, img.CHR)
	bank := flatBank{m: nrom}

	pc := uint16(*startPC)
	if *startPC < 0 {
		pc = uint16(bank.Read(0xFFFC)) | uint16(bank.Read(0xFFFD))<<8
	}

	fmt.Printf("%d bytes PRG-ROM, starting disassembly at %04X\n", len(img.PRG), pc)
	for i := 0; i < 512; i++ {
		dis, off := disasm.Step(pc, bank)
		fmt.Println(dis)
		pc += uint16(off)
	}
}
