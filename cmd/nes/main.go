// nes loads an iNES ROM and runs it against the 2A03 CPU core, showing a
// live register/cycle HUD in an SDL2 window. There is no pixel-accurate
// picture pipeline in this core (explicitly out of scope); this window
// exists to demonstrate the scheduler interleaving the CPU and the PPU
// shell's vblank/NMI timing in real time, the same role the teacher's
// vcs_main.go plays for the Atari core.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/nesgo/nes2a03/bus"
	"github.com/nesgo/nes2a03/cartridge"
	"github.com/nesgo/nes2a03/controller"
	"github.com/nesgo/nes2a03/cpu"
	"github.com/nesgo/nes2a03/irq"
	"github.com/nesgo/nes2a03/mapper"
	"github.com/nesgo/nes2a03/ppu"
	"github.com/nesgo/nes2a03/scheduler"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	cart  = flag.String("cart", "", "Path to an iNES .nes file to load")
	scale = flag.Int("scale", 2, "Window scale factor")
)

const (
	hudWidth  = 320
	hudHeight = 240
)

// keyboardButtons implements controller.ButtonSource over SDL's keyboard
// state, mapping arrow keys + Z/X + Enter/RShift to the NES standard pad.
type keyboardButtons struct {
	keys []uint8
}

func (k *keyboardButtons) Input() uint8 {
	var b uint8
	set := func(bit uint8, code int) {
		if k.keys[code] != 0 {
			b |= bit
		}
	}
	set(0x01, sdl.SCANCODE_Z)
	set(0x02, sdl.SCANCODE_X)
	set(0x04, sdl.SCANCODE_RSHIFT)
	set(0x08, sdl.SCANCODE_RETURN)
	set(0x10, sdl.SCANCODE_UP)
	set(0x20, sdl.SCANCODE_DOWN)
	set(0x40, sdl.SCANCODE_LEFT)
	set(0x80, sdl.SCANCODE_RIGHT)
	return b
}

func main() {
	flag.Parse()
	if *cart == "" {
		log.Fatalf("usage: %s -cart <rom.nes>", os.Args[0])
	}

	f, err := os.Open(*cart)
	if err != nil {
		log.Fatalf("can't open %s: %v", *cart, err)
	}
	img, err := cartridge.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("can't load cartridge: %v", err)
	}
	nrom := mapper.NewNROM(img.PRG, img.CHR)

	var nmiLatch irq.Latch
	ppuChip := ppu.Init(&ppu.ChipDef{NMI: &nmiLatch})

	kb := &keyboardButtons{keys: make([]uint8, sdl.NUM_SCANCODES)}
	pad1 := controller.Init(&controller.ChipDef{Source: kb})
	pad2 := controller.Init(&controller.ChipDef{Source: nil})

	b, err := bus.New(nrom, ppuChip, pad1, pad2)
	if err != nil {
		log.Fatalf("can't build bus: %v", err)
	}
	b.PowerOn()

	mapperIRQ := bus.MapperIRQ{Mapper: nrom}
	c, err := cpu.Init(&cpu.ChipDef{Bus: b, IRQ: mapperIRQ, NMI: &nmiLatch})
	if err != nil {
		log.Fatalf("can't init cpu: %v", err)
	}
	b.AttachCPU(c)

	sched := scheduler.New(c, ppuChip)

	var window *sdl.Window
	var surface *sdl.Surface

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
			var err error
			window, err = sdl.CreateWindow("nes2a03", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(hudWidth**scale), int32(hudHeight**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("can't get window surface: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			window.Destroy()
			sdl.Quit()
		}()

		hud := image.NewRGBA(image.Rect(0, 0, hudWidth, hudHeight))

		for {
			quit := false
			sdl.Do(func() {
				for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
					if _, ok := e.(*sdl.QuitEvent); ok {
						quit = true
					}
				}
				copy(kb.keys, sdl.GetKeyboardState())
			})
			if quit {
				return
			}

			sched.Run(1)

			drawHUD(hud, c, ppuChip)
			sdl.Do(func() {
				blit(hud, surface)
				window.UpdateSurface()
			})
		}
	})
}

func drawHUD(dst *image.RGBA, c *cpu.Chip, p *ppu.Chip) {
	for i := range dst.Pix {
		dst.Pix[i] = 0
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0x30, 0xD0, 0x30, 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 16),
	}
	d.DrawString(c.Debug())
	d.Dot = fixed.P(8, 32)
	d.DrawString(fmt.Sprintf("frames=%d", p.Frames()))
}

// blit copies an RGBA image onto an SDL surface's pixel buffer directly,
// the same fast path the teacher's fastImage.Set uses to avoid
// per-pixel color.Color conversion overhead.
func blit(src *image.RGBA, dst *sdl.Surface) {
	pix := dst.Pixels()
	w := int(dst.W)
	h := int(dst.H)
	bpp := int(dst.Format.BytesPerPixel)
	bounds := src.Bounds()
	for y := 0; y < h && y < bounds.Dy(); y++ {
		for x := 0; x < w && x < bounds.Dx(); x++ {
			si := src.PixOffset(x, y)
			di := y*int(dst.Pitch) + x*bpp
			pix[di+0] = src.Pix[si+2]
			pix[di+1] = src.Pix[si+1]
			pix[di+2] = src.Pix[si+0]
			pix[di+3] = src.Pix[si+3]
		}
	}
}
