package controller

import "testing"

type fixedButtons uint8

func (f fixedButtons) Input() uint8 { return uint8(f) }

func TestShiftOrderLSBFirst(t *testing.T) {
	// bit0=A bit1=B bit2=Select bit3=Start bit4=Up bit5=Down bit6=Left bit7=Right
	c := Init(&ChipDef{Source: fixedButtons(0b10100101)})
	c.Strobe(true)
	c.Strobe(false)

	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadsAfterEightReturnOne(t *testing.T) {
	c := Init(&ChipDef{Source: fixedButtons(0xFF)})
	c.Strobe(true)
	c.Strobe(false)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d past end = %d, want 1", i, got)
		}
	}
}

func TestStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := Init(&ChipDef{Source: fixedButtons(0b00000001)})
	c.Strobe(true)
	for i := 0; i < 5; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d while strobed high = %d, want 1 (button A)", i, got)
		}
	}
}

func TestNilSourceReadsAllReleased(t *testing.T) {
	c := Init(&ChipDef{Source: nil})
	c.Strobe(true)
	c.Strobe(false)
	for i := 0; i < 8; i++ {
		if got := c.Read(); got != 0 {
			t.Errorf("bit %d with nil source = %d, want 0", i, got)
		}
	}
}
