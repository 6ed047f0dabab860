package rv32m1

import (
	"reflect"
	"testing"
	"unsafe"

	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
	"omibyte.io/vega/periph"
)

func TestBlocksValidate(t *testing.T) {
	for _, typ := range Registry.Types() {
		t.Run(typ.Name, func(t *testing.T) {
			if typ.Block.Name != typ.Name {
				t.Errorf("block name %q", typ.Block.Name)
			}
			if err := typ.Block.Validate(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestInstanceArrays(t *testing.T) {
	tests := []struct {
		typ   string
		addrs []uintptr
		ptrs  []uintptr
		irqs  [][]irq.IRQ
	}{
		{"TPM", TPM_BASE_ADDRS[:], ptrs(TPM_BASE_PTRS[:]), TPM_IRQS[:]},
		{"LPUART", LPUART_BASE_ADDRS[:], ptrs(LPUART_BASE_PTRS[:]), LPUART_IRQS[:]},
		{"LPSPI", LPSPI_BASE_ADDRS[:], ptrs(LPSPI_BASE_PTRS[:]), LPSPI_IRQS[:]},
		{"LPI2C", LPI2C_BASE_ADDRS[:], ptrs(LPI2C_BASE_PTRS[:]), LPI2C_IRQS[:]},
		{"LPTMR", LPTMR_BASE_ADDRS[:], ptrs(LPTMR_BASE_PTRS[:]), LPTMR_IRQS[:]},
		{"LPIT", LPIT_BASE_ADDRS[:], ptrs(LPIT_BASE_PTRS[:]), LPIT_IRQS[:]},
		{"PORT", PORT_BASE_ADDRS[:], ptrs(PORT_BASE_PTRS[:]), PORT_IRQS[:]},
		{"GPIO", GPIO_BASE_ADDRS[:], ptrs(GPIO_BASE_PTRS[:]), GPIO_IRQS[:]},
		{"DMA", DMA_BASE_ADDRS[:], ptrs(DMA_BASE_PTRS[:]), DMA_IRQS[:]},
		{"INTMUX", INTMUX_BASE_ADDRS[:], ptrs(INTMUX_BASE_PTRS[:]), INTMUX_IRQS[:]},
		{"WDOG", WDOG_BASE_ADDRS[:], ptrs(WDOG_BASE_PTRS[:]), WDOG_IRQS[:]},
		{"FTFE", FTFE_BASE_ADDRS[:], ptrs(FTFE_BASE_PTRS[:]), FTFE_IRQS[:]},
		{"LLWU", LLWU_BASE_ADDRS[:], ptrs(LLWU_BASE_PTRS[:]), LLWU_IRQS[:]},
		{"TRGMUX", TRGMUX_BASE_ADDRS[:], ptrs(TRGMUX_BASE_PTRS[:]), TRGMUX_IRQS[:]},
		{"CAU3", CAU3_BASE_ADDRS[:], ptrs(CAU3_BASE_PTRS[:]), CAU3_IRQS[:]},
		{"RSIM", RSIM_BASE_ADDRS[:], ptrs(RSIM_BASE_PTRS[:]), RSIM_IRQS[:]},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			instances := Registry.Instances(tt.typ)
			if len(instances) != len(tt.addrs) {
				t.Fatalf("registry has %d instances, arrays have %d", len(instances), len(tt.addrs))
			}
			for i := range instances {
				addr, err := Registry.AddressOf(tt.typ, i)
				if err != nil {
					t.Fatal(err)
				}
				if addr != tt.addrs[i] || tt.ptrs[i] != tt.addrs[i] {
					t.Errorf("instance %d at %#x, array %#x, handle %#x", i, addr, tt.addrs[i], tt.ptrs[i])
				}
				if i > 0 && tt.addrs[i] <= tt.addrs[i-1] {
					t.Errorf("instance %d at %#x is not above %#x", i, tt.addrs[i], tt.addrs[i-1])
				}
				irqs, _ := Registry.IRQsOf(tt.typ, i)
				if len(irqs) != 0 || len(tt.irqs[i]) != 0 {
					if !reflect.DeepEqual(irqs, tt.irqs[i]) {
						t.Errorf("instance %d IRQs %v, array %v", i, irqs, tt.irqs[i])
					}
				}
			}
			if _, err := Registry.AddressOf(tt.typ, len(instances)); err == nil {
				t.Error("index past the last instance accepted")
			}
		})
	}
}

func ptrs[T any](p []*T) []uintptr {
	out := make([]uintptr, len(p))
	for i, v := range p {
		out[i] = uintptr(unsafe.Pointer(v))
	}
	return out
}

func TestHandles(t *testing.T) {
	handles, err := periph.Handles[TPM_TYPE](Registry, "TPM")
	if err != nil {
		t.Fatal(err)
	}
	for i, h := range handles {
		if h != TPM_BASE_PTRS[i] {
			t.Errorf("handle %d = %p, want %p", i, h, TPM_BASE_PTRS[i])
		}
	}
	if _, err := periph.Handles[GPIO_TYPE](Registry, "PORT"); err == nil {
		t.Error("GPIO overlay accepted for PORT")
	}
}

func TestServicedBy(t *testing.T) {
	tests := []struct {
		n     irq.IRQ
		names []string
	}{
		{IRQ_PORTA, []string{"PORTA"}},
		{IRQ_PORTE, []string{"PORTE"}},
		{IRQ_LPUART3, []string{"LPUART3"}},
		{IRQ_SCG, []string{"SCG"}},
		{IRQ_ADC0, []string{"LPADC0"}},
		{IRQ_CAU3_Task_Complete, []string{"CAU3"}},
		{IRQ_CAU3_Security_Violation, []string{"CAU3"}},
		{IRQ_RF0_1, []string{"RSIM"}},
		{IRQ_LLWU1, []string{"LLWU1"}},
		{62, nil},
	}
	for _, tt := range tests {
		var names []string
		for _, ref := range Registry.ServicedBy(tt.n) {
			names = append(names, ref.Name)
		}
		if !reflect.DeepEqual(names, tt.names) {
			t.Errorf("ServicedBy(%d) = %v, want %v", tt.n, names, tt.names)
		}
	}
}

func TestEveryDeviceVectorServiced(t *testing.T) {
	for _, v := range Vectors.Slots() {
		if v.IRQ < 0 || v.IsReserved() {
			continue
		}
		t.Run(v.Name, func(t *testing.T) {
			if refs := Registry.ServicedBy(v.IRQ); len(refs) == 0 {
				t.Errorf("vector %d has no instance", v.IRQ)
			}
		})
	}
}

func TestFastGPIO(t *testing.T) {
	ref, ok := Registry.Lookup("FGPIOE")
	if !ok {
		t.Fatal("FGPIOE missing")
	}
	if ref.Type != "FGPIO" || ref.Index != 0 || ref.AliasOf != "" || ref.Base != FGPIOE_BASE {
		t.Errorf("FGPIOE = %+v", ref)
	}
	if aliases := Registry.Aliases("FGPIO"); len(aliases) != 0 {
		t.Errorf("FGPIO aliases = %v", aliases)
	}
	if irqs, _ := Registry.IRQsOf("GPIO", 0); len(irqs) != 0 {
		t.Errorf("GPIOE IRQs = %v, want none", irqs)
	}
	if unsafe.Sizeof(FGPIO_TYPE{}) != unsafe.Sizeof(GPIO_TYPE{}) {
		t.Error("FGPIO and GPIO overlays differ in size")
	}
}

func TestVectors(t *testing.T) {
	if got, want := Vectors.Len(), 4+IRQ_COUNT; got != want {
		t.Fatalf("table has %d vectors, want %d", got, want)
	}
	if v, ok := Vectors.Lookup(IRQ_Reset); !ok || v.Name != "Reset" {
		t.Errorf("Lookup(Reset) = %v, %v", v, ok)
	}
	for _, n := range []irq.IRQ{62, 63} {
		if v, ok := Vectors.Lookup(n); !ok || !v.IsReserved() {
			t.Errorf("vector %d = %v, want a placeholder", n, v)
		}
	}
	v, ok := Vectors.ByName("LPUART0")
	if !ok || v.IRQ != IRQ_LPUART0 {
		t.Errorf("ByName(LPUART0) = %v, %v", v, ok)
	}
	if v.IRQ != 51 {
		t.Errorf("LPUART0 is vector %d, want 51", v.IRQ)
	}
	if _, ok := Vectors.Lookup(IRQ_COUNT); ok {
		t.Error("vector past the table found")
	}
}

func TestINTMUXSource(t *testing.T) {
	tests := []struct {
		n      irq.IRQ
		source int
		ok     bool
	}{
		{IRQ_RTC, 0, false},
		{IRQ_EWM, 0, false},
		{IRQ_FTFE_Command_Complete, 0, true},
		{IRQ_LPUART0, 19, true},
		{IRQ_LPDAC0, 29, true},
		{62, 0, false},
		{IRQ_COUNT, 0, false},
		{IRQ_Reset, 0, false},
	}
	for _, tt := range tests {
		source, ok := INTMUXSource(tt.n)
		if source != tt.source || ok != tt.ok {
			t.Errorf("INTMUXSource(%d) = %d, %v; want %d, %v", tt.n, source, ok, tt.source, tt.ok)
		}
	}
}

func TestValueTypes(t *testing.T) {
	sc := TPM_SC(0).SetCMOD(TPM_SC_CMOD_INTCLK).SetPS(TPM_SC_PS_DIV8).SetTOIE(true)
	if sc != 0x4B {
		t.Errorf("TPM SC = %#x, want 0x4b", uint32(sc))
	}
	if sc.GetCMOD() != TPM_SC_CMOD_INTCLK || sc.GetPS() != TPM_SC_PS_DIV8 || !sc.GetTOIE() || sc.GetTOF() {
		t.Errorf("TPM SC fields decode wrong from %#x", uint32(sc))
	}
	if got := TPM_SC(0).SetPS(9).GetPS(); got != 1 {
		t.Errorf("oversized prescale = %d, want the low bits only", got)
	}

	pcr := PORT_PCR(0).SetMUX(PORT_PCR_MUX_ALT3).SetIRQC(PORT_PCR_IRQC_INT_FALLING).SetPE(true)
	if want := PORT_PCR(3<<8 | 10<<16 | 1<<1); pcr != want {
		t.Errorf("PORT PCR = %#x, want %#x", uint32(pcr), uint32(want))
	}
	if pcr.SetPE(false).GetPE() || pcr.GetMUX() != PORT_PCR_MUX_ALT3 {
		t.Errorf("PORT PCR fields decode wrong from %#x", uint32(pcr))
	}

	cmd := LPI2C_MTDR(0).SetCMD(LPI2C_MTDR_CMD_START).SetDATA(0x1A4)
	if cmd != 0x4A4 {
		t.Errorf("LPI2C MTDR = %#x, want 0x4a4", uint32(cmd))
	}

	csr := SCG_CSR(0).SetSCS(SCG_CSR_SCS_FIRC).SetDIVCORE(1)
	if csr != 0x03010000 || csr.GetSCS() != SCG_CSR_SCS_FIRC {
		t.Errorf("SCG RCCR = %#x, want 0x3010000", uint32(csr))
	}

	pri := DMA_DCHPRI(0).SetCHPRI(5).SetECP(true)
	if pri != 0x85 {
		t.Errorf("DMA DCHPRI = %#x, want 0x85", uint8(pri))
	}
}

func TestNBYTESViewsShareStorage(t *testing.T) {
	var tcd DMA_TCD
	tcd.NBYTES.MLOFFYES().Store(DMA_TCD_NBYTES_MLOFFYES(0).SetNBYTES(0x10).SetMLOFF(4).SetSMLOE(true))

	if got, want := tcd.NBYTES.MLNO().Load(), DMA_TCD_NBYTES_MLNO(0x10|4<<10|1<<31); got != want {
		t.Errorf("MLNO = %#x, want %#x", uint32(got), uint32(want))
	}
	off := tcd.NBYTES.MLOFFNO().Load()
	if !off.GetSMLOE() || off.GetDMLOE() || off.GetNBYTES() != 0x10|4<<10 {
		t.Errorf("MLOFFNO = %#x", uint32(off))
	}

	tcd.CITER.ELINKYES().Store(DMA_TCD_CITER_ELINKYES(0).SetCITER(3).SetLINKCH(2).SetELINK(true))
	if got := tcd.CITER.ELINKNO().Load(); !got.GetELINK() || got.GetCITER() != 3|2<<9 {
		t.Errorf("ELINKNO = %#x", uint16(got))
	}
}

func TestCRCSubwordViews(t *testing.T) {
	var crc CRC_TYPE
	crc.DATA.DATA().Store(CRC_DATA_DATA(0x11223344))

	if got := crc.DATA.DATAH().Load(); got != 0x1122 {
		t.Errorf("DATAH = %#x", got)
	}
	if got := crc.DATA.DATAL().Load(); got != 0x3344 {
		t.Errorf("DATAL = %#x", got)
	}
	if got := crc.DATA.DATAHU().Load(); got != 0x11 {
		t.Errorf("DATAHU = %#x", got)
	}
	crc.DATA.DATALL().Store(0xAA)
	if got := crc.DATA.DATA().Load(); got.GetLL() != 0xAA || got.GetHU() != 0x11 {
		t.Errorf("DATA = %#x after byte store", uint32(got))
	}
	if addr := crc.DATA.DATAHL().Addr() - uintptr(unsafe.Pointer(&crc)); addr != 2 {
		t.Errorf("DATAHL at byte %d", addr)
	}
}

func TestGPIOSetClear(t *testing.T) {
	var gpio GPIO_TYPE
	base := uintptr(unsafe.Pointer(&gpio))
	offsets := map[string]uintptr{
		"PSOR": gpio.PSOR.Addr() - base,
		"PCOR": gpio.PCOR.Addr() - base,
		"PTOR": gpio.PTOR.Addr() - base,
		"PDIR": gpio.PDIR.Addr() - base,
	}
	want := map[string]uintptr{"PSOR": 0x4, "PCOR": 0x8, "PTOR": 0xC, "PDIR": 0x10}
	if !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
	if s, _ := GPIO_BLOCK.Lookup("PSOR"); s.Access.Readable() {
		t.Error("PSOR is readable")
	}
}

func TestWalkClusters(t *testing.T) {
	tests := []struct {
		block  *layout.Block
		path   string
		offset uint32
	}{
		{TPM_BLOCK, "CONTROLS[5].CnV", 0x4C},
		{TPM_BLOCK, "CONF", 0x84},
		{DMA_BLOCK, "TCD[7].BITER", 0x10FE},
		{DMA_BLOCK, "DCHPRI0", 0x103},
		{INTMUX_BLOCK, "CHANNEL[7].IPR", 0x1E0},
		{LPIT_BLOCK, "CHANNEL[3].TCTRL", 0x58},
		{PORT_BLOCK, "PCR[31]", 0x7C},
		{SEMA42_BLOCK, "RSTGT", 0x42},
		{USB_BLOCK, "ENDPOINT[15].ENDPT", 0xFC},
		{LPADC_BLOCK, "CMD[14].CMDH", 0x174},
		{TRNG_BLOCK, "ENT[15]", 0x7C},
		{FLEXIO_BLOCK, "TIMCMP[7]", 0x51C},
	}
	for _, tt := range tests {
		t.Run(tt.block.Name+"."+tt.path, func(t *testing.T) {
			found := false
			tt.block.Walk(func(path string, offset uint32, s layout.Slot) {
				if path == tt.path {
					found = true
					if offset != tt.offset {
						t.Errorf("at %#x, want %#x", offset, tt.offset)
					}
				}
			})
			if !found {
				t.Error("not found")
			}
		})
	}
}

func TestDescribeEnums(t *testing.T) {
	s, ok := TPM_BLOCK.Lookup("SC")
	if !ok {
		t.Fatal("SC missing")
	}
	for _, f := range s.Fields {
		if f.Name == "CMOD" {
			if len(f.Values) != 3 || f.Values[1].Name != "INTCLK" || f.Values[1].Value != 1 {
				t.Errorf("CMOD values = %+v", f.Values)
			}
			return
		}
	}
	t.Error("CMOD not described")
}
