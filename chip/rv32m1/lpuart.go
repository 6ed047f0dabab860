package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPUART_TYPE is the register block of the low power UART.
type LPUART_TYPE struct {
	VERID  mmio.RO32[LPUART_VERID]  `offset:"0x0" desc:"version ID"`
	PARAM  mmio.RO32[LPUART_PARAM]  `offset:"0x4"`
	GLOBAL mmio.RW32[LPUART_GLOBAL] `offset:"0x8"`
	PINCFG mmio.RW32[LPUART_PINCFG] `offset:"0xC"`
	BAUD   mmio.RW32[LPUART_BAUD]   `offset:"0x10" desc:"baud rate"`
	STAT   mmio.RW32[LPUART_STAT]   `offset:"0x14" desc:"status; flags are cleared by writing one"`
	CTRL   mmio.RW32[LPUART_CTRL]   `offset:"0x18"`
	DATA   mmio.RW32[LPUART_DATA]   `offset:"0x1C"`
	MATCH  mmio.RW32[LPUART_MATCH]  `offset:"0x20"`
	MODIR  mmio.RW32[LPUART_MODIR]  `offset:"0x24" desc:"modem IrDA"`
	FIFO   mmio.RW32[LPUART_FIFO]   `offset:"0x28"`
	WATER  mmio.RW32[LPUART_WATER]  `offset:"0x2C"`
}

const LPUART_SIZE = 0x30

var LPUART_BLOCK = layout.MustFromStruct("LPUART", reflect.TypeOf(LPUART_TYPE{}), LPUART_SIZE)

// LPUART_VERID is the version ID register.
type LPUART_VERID uint32

const (
	LPUART_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPUART_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPUART_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPUART_VERID) GetFEATURE() uint32 {
	return LPUART_VERID_FEATURE.Decode(uint32(r))
}

func (r LPUART_VERID) GetMINOR() uint32 {
	return LPUART_VERID_MINOR.Decode(uint32(r))
}

func (r LPUART_VERID) GetMAJOR() uint32 {
	return LPUART_VERID_MAJOR.Decode(uint32(r))
}

func (r LPUART_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPUART_VERID_FEATURE},
		{Name: "MINOR", Field: LPUART_VERID_MINOR},
		{Name: "MAJOR", Field: LPUART_VERID_MAJOR},
	}
}

type LPUART_PARAM uint32

const (
	LPUART_PARAM_TXFIFO mmio.Field = 8<<8 | 0
	LPUART_PARAM_RXFIFO mmio.Field = 8<<8 | 8
)

func (r LPUART_PARAM) GetTXFIFO() uint32 {
	return LPUART_PARAM_TXFIFO.Decode(uint32(r))
}

func (r LPUART_PARAM) GetRXFIFO() uint32 {
	return LPUART_PARAM_RXFIFO.Decode(uint32(r))
}

func (r LPUART_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXFIFO", Field: LPUART_PARAM_TXFIFO},
		{Name: "RXFIFO", Field: LPUART_PARAM_RXFIFO},
	}
}

type LPUART_GLOBAL uint32

const (
	LPUART_GLOBAL_RST mmio.Field = 1<<8 | 1
)

func (r LPUART_GLOBAL) GetRST() bool {
	return LPUART_GLOBAL_RST.Bool(uint32(r))
}

func (r LPUART_GLOBAL) SetRST(v bool) LPUART_GLOBAL {
	return LPUART_GLOBAL(LPUART_GLOBAL_RST.InsertBool(uint32(r), v))
}

func (r LPUART_GLOBAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RST", Field: LPUART_GLOBAL_RST},
	}
}

type LPUART_PINCFG uint32

const (
	LPUART_PINCFG_TRGSEL mmio.Field = 2<<8 | 0
)

type LPUART_PINCFG_TRGSEL_Value uint32

const (
	LPUART_PINCFG_TRGSEL_DISABLED LPUART_PINCFG_TRGSEL_Value = 0
	LPUART_PINCFG_TRGSEL_RXD      LPUART_PINCFG_TRGSEL_Value = 1
	LPUART_PINCFG_TRGSEL_CTS      LPUART_PINCFG_TRGSEL_Value = 2
	LPUART_PINCFG_TRGSEL_TXD      LPUART_PINCFG_TRGSEL_Value = 3
)

func (r LPUART_PINCFG) GetTRGSEL() LPUART_PINCFG_TRGSEL_Value {
	return LPUART_PINCFG_TRGSEL_Value(LPUART_PINCFG_TRGSEL.Decode(uint32(r)))
}

func (r LPUART_PINCFG) SetTRGSEL(v LPUART_PINCFG_TRGSEL_Value) LPUART_PINCFG {
	return LPUART_PINCFG(LPUART_PINCFG_TRGSEL.Insert(uint32(r), uint32(v)))
}

func (r LPUART_PINCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRGSEL", Field: LPUART_PINCFG_TRGSEL, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LPUART_PINCFG_TRGSEL_DISABLED)},
			{Name: "RXD", Value: uint32(LPUART_PINCFG_TRGSEL_RXD)},
			{Name: "CTS", Value: uint32(LPUART_PINCFG_TRGSEL_CTS)},
			{Name: "TXD", Value: uint32(LPUART_PINCFG_TRGSEL_TXD)},
		}},
	}
}

// LPUART_BAUD is the baud rate register.
type LPUART_BAUD uint32

const (
	LPUART_BAUD_SBR       mmio.Field = 13<<8 | 0
	LPUART_BAUD_SBNS      mmio.Field = 1<<8 | 13
	LPUART_BAUD_RXEDGIE   mmio.Field = 1<<8 | 14
	LPUART_BAUD_LBKDIE    mmio.Field = 1<<8 | 15
	LPUART_BAUD_RESYNCDIS mmio.Field = 1<<8 | 16
	LPUART_BAUD_BOTHEDGE  mmio.Field = 1<<8 | 17
	LPUART_BAUD_MATCFG    mmio.Field = 2<<8 | 18
	LPUART_BAUD_RIDMAE    mmio.Field = 1<<8 | 20
	LPUART_BAUD_RDMAE     mmio.Field = 1<<8 | 21
	LPUART_BAUD_TDMAE     mmio.Field = 1<<8 | 23
	LPUART_BAUD_OSR       mmio.Field = 5<<8 | 24
	LPUART_BAUD_M10       mmio.Field = 1<<8 | 29
	LPUART_BAUD_MAEN2     mmio.Field = 1<<8 | 30
	LPUART_BAUD_MAEN1     mmio.Field = 1<<8 | 31
)

func (r LPUART_BAUD) GetSBR() uint32 {
	return LPUART_BAUD_SBR.Decode(uint32(r))
}

func (r LPUART_BAUD) SetSBR(v uint32) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_SBR.Insert(uint32(r), v))
}

func (r LPUART_BAUD) GetSBNS() bool {
	return LPUART_BAUD_SBNS.Bool(uint32(r))
}

func (r LPUART_BAUD) SetSBNS(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_SBNS.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetRXEDGIE() bool {
	return LPUART_BAUD_RXEDGIE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetRXEDGIE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_RXEDGIE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetLBKDIE() bool {
	return LPUART_BAUD_LBKDIE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetLBKDIE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_LBKDIE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetRESYNCDIS() bool {
	return LPUART_BAUD_RESYNCDIS.Bool(uint32(r))
}

func (r LPUART_BAUD) SetRESYNCDIS(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_RESYNCDIS.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetBOTHEDGE() bool {
	return LPUART_BAUD_BOTHEDGE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetBOTHEDGE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_BOTHEDGE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetMATCFG() uint32 {
	return LPUART_BAUD_MATCFG.Decode(uint32(r))
}

func (r LPUART_BAUD) SetMATCFG(v uint32) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_MATCFG.Insert(uint32(r), v))
}

func (r LPUART_BAUD) GetRIDMAE() bool {
	return LPUART_BAUD_RIDMAE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetRIDMAE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_RIDMAE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetRDMAE() bool {
	return LPUART_BAUD_RDMAE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetRDMAE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_RDMAE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetTDMAE() bool {
	return LPUART_BAUD_TDMAE.Bool(uint32(r))
}

func (r LPUART_BAUD) SetTDMAE(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_TDMAE.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetOSR() uint32 {
	return LPUART_BAUD_OSR.Decode(uint32(r))
}

func (r LPUART_BAUD) SetOSR(v uint32) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_OSR.Insert(uint32(r), v))
}

func (r LPUART_BAUD) GetM10() bool {
	return LPUART_BAUD_M10.Bool(uint32(r))
}

func (r LPUART_BAUD) SetM10(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_M10.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetMAEN2() bool {
	return LPUART_BAUD_MAEN2.Bool(uint32(r))
}

func (r LPUART_BAUD) SetMAEN2(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_MAEN2.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) GetMAEN1() bool {
	return LPUART_BAUD_MAEN1.Bool(uint32(r))
}

func (r LPUART_BAUD) SetMAEN1(v bool) LPUART_BAUD {
	return LPUART_BAUD(LPUART_BAUD_MAEN1.InsertBool(uint32(r), v))
}

func (r LPUART_BAUD) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SBR", Field: LPUART_BAUD_SBR},
		{Name: "SBNS", Field: LPUART_BAUD_SBNS},
		{Name: "RXEDGIE", Field: LPUART_BAUD_RXEDGIE},
		{Name: "LBKDIE", Field: LPUART_BAUD_LBKDIE},
		{Name: "RESYNCDIS", Field: LPUART_BAUD_RESYNCDIS},
		{Name: "BOTHEDGE", Field: LPUART_BAUD_BOTHEDGE},
		{Name: "MATCFG", Field: LPUART_BAUD_MATCFG},
		{Name: "RIDMAE", Field: LPUART_BAUD_RIDMAE},
		{Name: "RDMAE", Field: LPUART_BAUD_RDMAE},
		{Name: "TDMAE", Field: LPUART_BAUD_TDMAE},
		{Name: "OSR", Field: LPUART_BAUD_OSR},
		{Name: "M10", Field: LPUART_BAUD_M10},
		{Name: "MAEN2", Field: LPUART_BAUD_MAEN2},
		{Name: "MAEN1", Field: LPUART_BAUD_MAEN1},
	}
}

// LPUART_STAT is the status register; flags are cleared by writing one.
type LPUART_STAT uint32

const (
	LPUART_STAT_MA2F    mmio.Field = 1<<8 | 14
	LPUART_STAT_MA1F    mmio.Field = 1<<8 | 15
	LPUART_STAT_PF      mmio.Field = 1<<8 | 16
	LPUART_STAT_FE      mmio.Field = 1<<8 | 17
	LPUART_STAT_NF      mmio.Field = 1<<8 | 18
	LPUART_STAT_OR      mmio.Field = 1<<8 | 19
	LPUART_STAT_IDLE    mmio.Field = 1<<8 | 20
	LPUART_STAT_RDRF    mmio.Field = 1<<8 | 21
	LPUART_STAT_TC      mmio.Field = 1<<8 | 22
	LPUART_STAT_TDRE    mmio.Field = 1<<8 | 23
	LPUART_STAT_RAF     mmio.Field = 1<<8 | 24
	LPUART_STAT_LBKDE   mmio.Field = 1<<8 | 25
	LPUART_STAT_BRK13   mmio.Field = 1<<8 | 26
	LPUART_STAT_RWUID   mmio.Field = 1<<8 | 27
	LPUART_STAT_RXINV   mmio.Field = 1<<8 | 28
	LPUART_STAT_MSBF    mmio.Field = 1<<8 | 29
	LPUART_STAT_RXEDGIF mmio.Field = 1<<8 | 30
	LPUART_STAT_LBKDIF  mmio.Field = 1<<8 | 31
)

func (r LPUART_STAT) GetMA2F() bool {
	return LPUART_STAT_MA2F.Bool(uint32(r))
}

func (r LPUART_STAT) SetMA2F(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_MA2F.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetMA1F() bool {
	return LPUART_STAT_MA1F.Bool(uint32(r))
}

func (r LPUART_STAT) SetMA1F(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_MA1F.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetPF() bool {
	return LPUART_STAT_PF.Bool(uint32(r))
}

func (r LPUART_STAT) SetPF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_PF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetFE() bool {
	return LPUART_STAT_FE.Bool(uint32(r))
}

func (r LPUART_STAT) SetFE(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_FE.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetNF() bool {
	return LPUART_STAT_NF.Bool(uint32(r))
}

func (r LPUART_STAT) SetNF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_NF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetOR() bool {
	return LPUART_STAT_OR.Bool(uint32(r))
}

func (r LPUART_STAT) SetOR(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_OR.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetIDLE() bool {
	return LPUART_STAT_IDLE.Bool(uint32(r))
}

func (r LPUART_STAT) SetIDLE(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_IDLE.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetRDRF() bool {
	return LPUART_STAT_RDRF.Bool(uint32(r))
}

func (r LPUART_STAT) SetRDRF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_RDRF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetTC() bool {
	return LPUART_STAT_TC.Bool(uint32(r))
}

func (r LPUART_STAT) SetTC(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_TC.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetTDRE() bool {
	return LPUART_STAT_TDRE.Bool(uint32(r))
}

func (r LPUART_STAT) SetTDRE(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_TDRE.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetRAF() bool {
	return LPUART_STAT_RAF.Bool(uint32(r))
}

func (r LPUART_STAT) SetRAF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_RAF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetLBKDE() bool {
	return LPUART_STAT_LBKDE.Bool(uint32(r))
}

func (r LPUART_STAT) SetLBKDE(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_LBKDE.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetBRK13() bool {
	return LPUART_STAT_BRK13.Bool(uint32(r))
}

func (r LPUART_STAT) SetBRK13(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_BRK13.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetRWUID() bool {
	return LPUART_STAT_RWUID.Bool(uint32(r))
}

func (r LPUART_STAT) SetRWUID(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_RWUID.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetRXINV() bool {
	return LPUART_STAT_RXINV.Bool(uint32(r))
}

func (r LPUART_STAT) SetRXINV(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_RXINV.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetMSBF() bool {
	return LPUART_STAT_MSBF.Bool(uint32(r))
}

func (r LPUART_STAT) SetMSBF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_MSBF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetRXEDGIF() bool {
	return LPUART_STAT_RXEDGIF.Bool(uint32(r))
}

func (r LPUART_STAT) SetRXEDGIF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_RXEDGIF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) GetLBKDIF() bool {
	return LPUART_STAT_LBKDIF.Bool(uint32(r))
}

func (r LPUART_STAT) SetLBKDIF(v bool) LPUART_STAT {
	return LPUART_STAT(LPUART_STAT_LBKDIF.InsertBool(uint32(r), v))
}

func (r LPUART_STAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MA2F", Field: LPUART_STAT_MA2F},
		{Name: "MA1F", Field: LPUART_STAT_MA1F},
		{Name: "PF", Field: LPUART_STAT_PF},
		{Name: "FE", Field: LPUART_STAT_FE},
		{Name: "NF", Field: LPUART_STAT_NF},
		{Name: "OR", Field: LPUART_STAT_OR},
		{Name: "IDLE", Field: LPUART_STAT_IDLE},
		{Name: "RDRF", Field: LPUART_STAT_RDRF},
		{Name: "TC", Field: LPUART_STAT_TC},
		{Name: "TDRE", Field: LPUART_STAT_TDRE},
		{Name: "RAF", Field: LPUART_STAT_RAF},
		{Name: "LBKDE", Field: LPUART_STAT_LBKDE},
		{Name: "BRK13", Field: LPUART_STAT_BRK13},
		{Name: "RWUID", Field: LPUART_STAT_RWUID},
		{Name: "RXINV", Field: LPUART_STAT_RXINV},
		{Name: "MSBF", Field: LPUART_STAT_MSBF},
		{Name: "RXEDGIF", Field: LPUART_STAT_RXEDGIF},
		{Name: "LBKDIF", Field: LPUART_STAT_LBKDIF},
	}
}

type LPUART_CTRL uint32

const (
	LPUART_CTRL_PT      mmio.Field = 1<<8 | 0
	LPUART_CTRL_PE      mmio.Field = 1<<8 | 1
	LPUART_CTRL_ILT     mmio.Field = 1<<8 | 2
	LPUART_CTRL_WAKE    mmio.Field = 1<<8 | 3
	LPUART_CTRL_M       mmio.Field = 1<<8 | 4
	LPUART_CTRL_RSRC    mmio.Field = 1<<8 | 5
	LPUART_CTRL_DOZEEN  mmio.Field = 1<<8 | 6
	LPUART_CTRL_LOOPS   mmio.Field = 1<<8 | 7
	LPUART_CTRL_IDLECFG mmio.Field = 3<<8 | 8
	LPUART_CTRL_M7      mmio.Field = 1<<8 | 11
	LPUART_CTRL_MA2IE   mmio.Field = 1<<8 | 14
	LPUART_CTRL_MA1IE   mmio.Field = 1<<8 | 15
	LPUART_CTRL_SBK     mmio.Field = 1<<8 | 16
	LPUART_CTRL_RWU     mmio.Field = 1<<8 | 17
	LPUART_CTRL_RE      mmio.Field = 1<<8 | 18
	LPUART_CTRL_TE      mmio.Field = 1<<8 | 19
	LPUART_CTRL_ILIE    mmio.Field = 1<<8 | 20
	LPUART_CTRL_RIE     mmio.Field = 1<<8 | 21
	LPUART_CTRL_TCIE    mmio.Field = 1<<8 | 22
	LPUART_CTRL_TIE     mmio.Field = 1<<8 | 23
	LPUART_CTRL_PEIE    mmio.Field = 1<<8 | 24
	LPUART_CTRL_FEIE    mmio.Field = 1<<8 | 25
	LPUART_CTRL_NEIE    mmio.Field = 1<<8 | 26
	LPUART_CTRL_ORIE    mmio.Field = 1<<8 | 27
	LPUART_CTRL_TXINV   mmio.Field = 1<<8 | 28
	LPUART_CTRL_TXDIR   mmio.Field = 1<<8 | 29
	LPUART_CTRL_R9T8    mmio.Field = 1<<8 | 30
	LPUART_CTRL_R8T9    mmio.Field = 1<<8 | 31
)

type LPUART_CTRL_PT_Value uint32

const (
	LPUART_CTRL_PT_EVEN LPUART_CTRL_PT_Value = 0
	LPUART_CTRL_PT_ODD  LPUART_CTRL_PT_Value = 1
)

func (r LPUART_CTRL) GetPT() LPUART_CTRL_PT_Value {
	return LPUART_CTRL_PT_Value(LPUART_CTRL_PT.Decode(uint32(r)))
}

func (r LPUART_CTRL) SetPT(v LPUART_CTRL_PT_Value) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_PT.Insert(uint32(r), uint32(v)))
}

func (r LPUART_CTRL) GetPE() bool {
	return LPUART_CTRL_PE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetPE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_PE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetILT() bool {
	return LPUART_CTRL_ILT.Bool(uint32(r))
}

func (r LPUART_CTRL) SetILT(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_ILT.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetWAKE() bool {
	return LPUART_CTRL_WAKE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetWAKE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_WAKE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetM() bool {
	return LPUART_CTRL_M.Bool(uint32(r))
}

func (r LPUART_CTRL) SetM(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_M.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetRSRC() bool {
	return LPUART_CTRL_RSRC.Bool(uint32(r))
}

func (r LPUART_CTRL) SetRSRC(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_RSRC.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetDOZEEN() bool {
	return LPUART_CTRL_DOZEEN.Bool(uint32(r))
}

func (r LPUART_CTRL) SetDOZEEN(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_DOZEEN.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetLOOPS() bool {
	return LPUART_CTRL_LOOPS.Bool(uint32(r))
}

func (r LPUART_CTRL) SetLOOPS(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_LOOPS.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetIDLECFG() uint32 {
	return LPUART_CTRL_IDLECFG.Decode(uint32(r))
}

func (r LPUART_CTRL) SetIDLECFG(v uint32) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_IDLECFG.Insert(uint32(r), v))
}

func (r LPUART_CTRL) GetM7() bool {
	return LPUART_CTRL_M7.Bool(uint32(r))
}

func (r LPUART_CTRL) SetM7(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_M7.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetMA2IE() bool {
	return LPUART_CTRL_MA2IE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetMA2IE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_MA2IE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetMA1IE() bool {
	return LPUART_CTRL_MA1IE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetMA1IE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_MA1IE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetSBK() bool {
	return LPUART_CTRL_SBK.Bool(uint32(r))
}

func (r LPUART_CTRL) SetSBK(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_SBK.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetRWU() bool {
	return LPUART_CTRL_RWU.Bool(uint32(r))
}

func (r LPUART_CTRL) SetRWU(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_RWU.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetRE() bool {
	return LPUART_CTRL_RE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetRE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_RE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetTE() bool {
	return LPUART_CTRL_TE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetTE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_TE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetILIE() bool {
	return LPUART_CTRL_ILIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetILIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_ILIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetRIE() bool {
	return LPUART_CTRL_RIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetRIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_RIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetTCIE() bool {
	return LPUART_CTRL_TCIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetTCIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_TCIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetTIE() bool {
	return LPUART_CTRL_TIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetTIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_TIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetPEIE() bool {
	return LPUART_CTRL_PEIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetPEIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_PEIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetFEIE() bool {
	return LPUART_CTRL_FEIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetFEIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_FEIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetNEIE() bool {
	return LPUART_CTRL_NEIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetNEIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_NEIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetORIE() bool {
	return LPUART_CTRL_ORIE.Bool(uint32(r))
}

func (r LPUART_CTRL) SetORIE(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_ORIE.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetTXINV() bool {
	return LPUART_CTRL_TXINV.Bool(uint32(r))
}

func (r LPUART_CTRL) SetTXINV(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_TXINV.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetTXDIR() bool {
	return LPUART_CTRL_TXDIR.Bool(uint32(r))
}

func (r LPUART_CTRL) SetTXDIR(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_TXDIR.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetR9T8() bool {
	return LPUART_CTRL_R9T8.Bool(uint32(r))
}

func (r LPUART_CTRL) SetR9T8(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_R9T8.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) GetR8T9() bool {
	return LPUART_CTRL_R8T9.Bool(uint32(r))
}

func (r LPUART_CTRL) SetR8T9(v bool) LPUART_CTRL {
	return LPUART_CTRL(LPUART_CTRL_R8T9.InsertBool(uint32(r), v))
}

func (r LPUART_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PT", Field: LPUART_CTRL_PT, Values: []mmio.EnumValue{
			{Name: "EVEN", Value: uint32(LPUART_CTRL_PT_EVEN)},
			{Name: "ODD", Value: uint32(LPUART_CTRL_PT_ODD)},
		}},
		{Name: "PE", Field: LPUART_CTRL_PE},
		{Name: "ILT", Field: LPUART_CTRL_ILT},
		{Name: "WAKE", Field: LPUART_CTRL_WAKE},
		{Name: "M", Field: LPUART_CTRL_M},
		{Name: "RSRC", Field: LPUART_CTRL_RSRC},
		{Name: "DOZEEN", Field: LPUART_CTRL_DOZEEN},
		{Name: "LOOPS", Field: LPUART_CTRL_LOOPS},
		{Name: "IDLECFG", Field: LPUART_CTRL_IDLECFG},
		{Name: "M7", Field: LPUART_CTRL_M7},
		{Name: "MA2IE", Field: LPUART_CTRL_MA2IE},
		{Name: "MA1IE", Field: LPUART_CTRL_MA1IE},
		{Name: "SBK", Field: LPUART_CTRL_SBK},
		{Name: "RWU", Field: LPUART_CTRL_RWU},
		{Name: "RE", Field: LPUART_CTRL_RE},
		{Name: "TE", Field: LPUART_CTRL_TE},
		{Name: "ILIE", Field: LPUART_CTRL_ILIE},
		{Name: "RIE", Field: LPUART_CTRL_RIE},
		{Name: "TCIE", Field: LPUART_CTRL_TCIE},
		{Name: "TIE", Field: LPUART_CTRL_TIE},
		{Name: "PEIE", Field: LPUART_CTRL_PEIE},
		{Name: "FEIE", Field: LPUART_CTRL_FEIE},
		{Name: "NEIE", Field: LPUART_CTRL_NEIE},
		{Name: "ORIE", Field: LPUART_CTRL_ORIE},
		{Name: "TXINV", Field: LPUART_CTRL_TXINV},
		{Name: "TXDIR", Field: LPUART_CTRL_TXDIR},
		{Name: "R9T8", Field: LPUART_CTRL_R9T8},
		{Name: "R8T9", Field: LPUART_CTRL_R8T9},
	}
}

type LPUART_DATA uint32

const (
	LPUART_DATA_DATA    mmio.Field = 10<<8 | 0
	LPUART_DATA_IDLINE  mmio.Field = 1<<8 | 11
	LPUART_DATA_RXEMPT  mmio.Field = 1<<8 | 12
	LPUART_DATA_FRETSC  mmio.Field = 1<<8 | 13
	LPUART_DATA_PARITYE mmio.Field = 1<<8 | 14
	LPUART_DATA_NOISY   mmio.Field = 1<<8 | 15
)

func (r LPUART_DATA) GetDATA() uint32 {
	return LPUART_DATA_DATA.Decode(uint32(r))
}

func (r LPUART_DATA) SetDATA(v uint32) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_DATA.Insert(uint32(r), v))
}

func (r LPUART_DATA) GetIDLINE() bool {
	return LPUART_DATA_IDLINE.Bool(uint32(r))
}

func (r LPUART_DATA) SetIDLINE(v bool) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_IDLINE.InsertBool(uint32(r), v))
}

func (r LPUART_DATA) GetRXEMPT() bool {
	return LPUART_DATA_RXEMPT.Bool(uint32(r))
}

func (r LPUART_DATA) SetRXEMPT(v bool) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_RXEMPT.InsertBool(uint32(r), v))
}

func (r LPUART_DATA) GetFRETSC() bool {
	return LPUART_DATA_FRETSC.Bool(uint32(r))
}

func (r LPUART_DATA) SetFRETSC(v bool) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_FRETSC.InsertBool(uint32(r), v))
}

func (r LPUART_DATA) GetPARITYE() bool {
	return LPUART_DATA_PARITYE.Bool(uint32(r))
}

func (r LPUART_DATA) SetPARITYE(v bool) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_PARITYE.InsertBool(uint32(r), v))
}

func (r LPUART_DATA) GetNOISY() bool {
	return LPUART_DATA_NOISY.Bool(uint32(r))
}

func (r LPUART_DATA) SetNOISY(v bool) LPUART_DATA {
	return LPUART_DATA(LPUART_DATA_NOISY.InsertBool(uint32(r), v))
}

func (r LPUART_DATA) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPUART_DATA_DATA},
		{Name: "IDLINE", Field: LPUART_DATA_IDLINE},
		{Name: "RXEMPT", Field: LPUART_DATA_RXEMPT},
		{Name: "FRETSC", Field: LPUART_DATA_FRETSC},
		{Name: "PARITYE", Field: LPUART_DATA_PARITYE},
		{Name: "NOISY", Field: LPUART_DATA_NOISY},
	}
}

type LPUART_MATCH uint32

const (
	LPUART_MATCH_MA1 mmio.Field = 10<<8 | 0
	LPUART_MATCH_MA2 mmio.Field = 10<<8 | 16
)

func (r LPUART_MATCH) GetMA1() uint32 {
	return LPUART_MATCH_MA1.Decode(uint32(r))
}

func (r LPUART_MATCH) SetMA1(v uint32) LPUART_MATCH {
	return LPUART_MATCH(LPUART_MATCH_MA1.Insert(uint32(r), v))
}

func (r LPUART_MATCH) GetMA2() uint32 {
	return LPUART_MATCH_MA2.Decode(uint32(r))
}

func (r LPUART_MATCH) SetMA2(v uint32) LPUART_MATCH {
	return LPUART_MATCH(LPUART_MATCH_MA2.Insert(uint32(r), v))
}

func (r LPUART_MATCH) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MA1", Field: LPUART_MATCH_MA1},
		{Name: "MA2", Field: LPUART_MATCH_MA2},
	}
}

// LPUART_MODIR is the modem IrDA register.
type LPUART_MODIR uint32

const (
	LPUART_MODIR_TXCTSE   mmio.Field = 1<<8 | 0
	LPUART_MODIR_TXRTSE   mmio.Field = 1<<8 | 1
	LPUART_MODIR_TXRTSPOL mmio.Field = 1<<8 | 2
	LPUART_MODIR_RXRTSE   mmio.Field = 1<<8 | 3
	LPUART_MODIR_TXCTSC   mmio.Field = 1<<8 | 4
	LPUART_MODIR_TXCTSSRC mmio.Field = 1<<8 | 5
	LPUART_MODIR_RTSWATER mmio.Field = 2<<8 | 8
	LPUART_MODIR_TNP      mmio.Field = 2<<8 | 16
	LPUART_MODIR_IREN     mmio.Field = 1<<8 | 18
)

func (r LPUART_MODIR) GetTXCTSE() bool {
	return LPUART_MODIR_TXCTSE.Bool(uint32(r))
}

func (r LPUART_MODIR) SetTXCTSE(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TXCTSE.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetTXRTSE() bool {
	return LPUART_MODIR_TXRTSE.Bool(uint32(r))
}

func (r LPUART_MODIR) SetTXRTSE(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TXRTSE.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetTXRTSPOL() bool {
	return LPUART_MODIR_TXRTSPOL.Bool(uint32(r))
}

func (r LPUART_MODIR) SetTXRTSPOL(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TXRTSPOL.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetRXRTSE() bool {
	return LPUART_MODIR_RXRTSE.Bool(uint32(r))
}

func (r LPUART_MODIR) SetRXRTSE(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_RXRTSE.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetTXCTSC() bool {
	return LPUART_MODIR_TXCTSC.Bool(uint32(r))
}

func (r LPUART_MODIR) SetTXCTSC(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TXCTSC.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetTXCTSSRC() bool {
	return LPUART_MODIR_TXCTSSRC.Bool(uint32(r))
}

func (r LPUART_MODIR) SetTXCTSSRC(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TXCTSSRC.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) GetRTSWATER() uint32 {
	return LPUART_MODIR_RTSWATER.Decode(uint32(r))
}

func (r LPUART_MODIR) SetRTSWATER(v uint32) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_RTSWATER.Insert(uint32(r), v))
}

func (r LPUART_MODIR) GetTNP() uint32 {
	return LPUART_MODIR_TNP.Decode(uint32(r))
}

func (r LPUART_MODIR) SetTNP(v uint32) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_TNP.Insert(uint32(r), v))
}

func (r LPUART_MODIR) GetIREN() bool {
	return LPUART_MODIR_IREN.Bool(uint32(r))
}

func (r LPUART_MODIR) SetIREN(v bool) LPUART_MODIR {
	return LPUART_MODIR(LPUART_MODIR_IREN.InsertBool(uint32(r), v))
}

func (r LPUART_MODIR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXCTSE", Field: LPUART_MODIR_TXCTSE},
		{Name: "TXRTSE", Field: LPUART_MODIR_TXRTSE},
		{Name: "TXRTSPOL", Field: LPUART_MODIR_TXRTSPOL},
		{Name: "RXRTSE", Field: LPUART_MODIR_RXRTSE},
		{Name: "TXCTSC", Field: LPUART_MODIR_TXCTSC},
		{Name: "TXCTSSRC", Field: LPUART_MODIR_TXCTSSRC},
		{Name: "RTSWATER", Field: LPUART_MODIR_RTSWATER},
		{Name: "TNP", Field: LPUART_MODIR_TNP},
		{Name: "IREN", Field: LPUART_MODIR_IREN},
	}
}

type LPUART_FIFO uint32

const (
	LPUART_FIFO_RXFIFOSIZE mmio.Field = 3<<8 | 0
	LPUART_FIFO_RXFE       mmio.Field = 1<<8 | 3
	LPUART_FIFO_TXFIFOSIZE mmio.Field = 3<<8 | 4
	LPUART_FIFO_TXFE       mmio.Field = 1<<8 | 7
	LPUART_FIFO_RXUFE      mmio.Field = 1<<8 | 8
	LPUART_FIFO_TXOFE      mmio.Field = 1<<8 | 9
	LPUART_FIFO_RXIDEN     mmio.Field = 3<<8 | 10
	LPUART_FIFO_RXFLUSH    mmio.Field = 1<<8 | 14
	LPUART_FIFO_TXFLUSH    mmio.Field = 1<<8 | 15
	LPUART_FIFO_RXUF       mmio.Field = 1<<8 | 16
	LPUART_FIFO_TXOF       mmio.Field = 1<<8 | 17
	LPUART_FIFO_RXEMPT     mmio.Field = 1<<8 | 22
	LPUART_FIFO_TXEMPT     mmio.Field = 1<<8 | 23
)

func (r LPUART_FIFO) GetRXFIFOSIZE() uint32 {
	return LPUART_FIFO_RXFIFOSIZE.Decode(uint32(r))
}

func (r LPUART_FIFO) SetRXFIFOSIZE(v uint32) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXFIFOSIZE.Insert(uint32(r), v))
}

func (r LPUART_FIFO) GetRXFE() bool {
	return LPUART_FIFO_RXFE.Bool(uint32(r))
}

func (r LPUART_FIFO) SetRXFE(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXFE.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetTXFIFOSIZE() uint32 {
	return LPUART_FIFO_TXFIFOSIZE.Decode(uint32(r))
}

func (r LPUART_FIFO) SetTXFIFOSIZE(v uint32) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXFIFOSIZE.Insert(uint32(r), v))
}

func (r LPUART_FIFO) GetTXFE() bool {
	return LPUART_FIFO_TXFE.Bool(uint32(r))
}

func (r LPUART_FIFO) SetTXFE(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXFE.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetRXUFE() bool {
	return LPUART_FIFO_RXUFE.Bool(uint32(r))
}

func (r LPUART_FIFO) SetRXUFE(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXUFE.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetTXOFE() bool {
	return LPUART_FIFO_TXOFE.Bool(uint32(r))
}

func (r LPUART_FIFO) SetTXOFE(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXOFE.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetRXIDEN() uint32 {
	return LPUART_FIFO_RXIDEN.Decode(uint32(r))
}

func (r LPUART_FIFO) SetRXIDEN(v uint32) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXIDEN.Insert(uint32(r), v))
}

func (r LPUART_FIFO) GetRXFLUSH() bool {
	return LPUART_FIFO_RXFLUSH.Bool(uint32(r))
}

func (r LPUART_FIFO) SetRXFLUSH(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXFLUSH.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetTXFLUSH() bool {
	return LPUART_FIFO_TXFLUSH.Bool(uint32(r))
}

func (r LPUART_FIFO) SetTXFLUSH(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXFLUSH.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetRXUF() bool {
	return LPUART_FIFO_RXUF.Bool(uint32(r))
}

func (r LPUART_FIFO) SetRXUF(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXUF.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetTXOF() bool {
	return LPUART_FIFO_TXOF.Bool(uint32(r))
}

func (r LPUART_FIFO) SetTXOF(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXOF.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetRXEMPT() bool {
	return LPUART_FIFO_RXEMPT.Bool(uint32(r))
}

func (r LPUART_FIFO) SetRXEMPT(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_RXEMPT.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) GetTXEMPT() bool {
	return LPUART_FIFO_TXEMPT.Bool(uint32(r))
}

func (r LPUART_FIFO) SetTXEMPT(v bool) LPUART_FIFO {
	return LPUART_FIFO(LPUART_FIFO_TXEMPT.InsertBool(uint32(r), v))
}

func (r LPUART_FIFO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RXFIFOSIZE", Field: LPUART_FIFO_RXFIFOSIZE},
		{Name: "RXFE", Field: LPUART_FIFO_RXFE},
		{Name: "TXFIFOSIZE", Field: LPUART_FIFO_TXFIFOSIZE},
		{Name: "TXFE", Field: LPUART_FIFO_TXFE},
		{Name: "RXUFE", Field: LPUART_FIFO_RXUFE},
		{Name: "TXOFE", Field: LPUART_FIFO_TXOFE},
		{Name: "RXIDEN", Field: LPUART_FIFO_RXIDEN},
		{Name: "RXFLUSH", Field: LPUART_FIFO_RXFLUSH},
		{Name: "TXFLUSH", Field: LPUART_FIFO_TXFLUSH},
		{Name: "RXUF", Field: LPUART_FIFO_RXUF},
		{Name: "TXOF", Field: LPUART_FIFO_TXOF},
		{Name: "RXEMPT", Field: LPUART_FIFO_RXEMPT},
		{Name: "TXEMPT", Field: LPUART_FIFO_TXEMPT},
	}
}

type LPUART_WATER uint32

const (
	LPUART_WATER_TXWATER mmio.Field = 2<<8 | 0
	LPUART_WATER_TXCOUNT mmio.Field = 3<<8 | 8
	LPUART_WATER_RXWATER mmio.Field = 2<<8 | 16
	LPUART_WATER_RXCOUNT mmio.Field = 3<<8 | 24
)

func (r LPUART_WATER) GetTXWATER() uint32 {
	return LPUART_WATER_TXWATER.Decode(uint32(r))
}

func (r LPUART_WATER) SetTXWATER(v uint32) LPUART_WATER {
	return LPUART_WATER(LPUART_WATER_TXWATER.Insert(uint32(r), v))
}

func (r LPUART_WATER) GetTXCOUNT() uint32 {
	return LPUART_WATER_TXCOUNT.Decode(uint32(r))
}

func (r LPUART_WATER) SetTXCOUNT(v uint32) LPUART_WATER {
	return LPUART_WATER(LPUART_WATER_TXCOUNT.Insert(uint32(r), v))
}

func (r LPUART_WATER) GetRXWATER() uint32 {
	return LPUART_WATER_RXWATER.Decode(uint32(r))
}

func (r LPUART_WATER) SetRXWATER(v uint32) LPUART_WATER {
	return LPUART_WATER(LPUART_WATER_RXWATER.Insert(uint32(r), v))
}

func (r LPUART_WATER) GetRXCOUNT() uint32 {
	return LPUART_WATER_RXCOUNT.Decode(uint32(r))
}

func (r LPUART_WATER) SetRXCOUNT(v uint32) LPUART_WATER {
	return LPUART_WATER(LPUART_WATER_RXCOUNT.Insert(uint32(r), v))
}

func (r LPUART_WATER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXWATER", Field: LPUART_WATER_TXWATER},
		{Name: "TXCOUNT", Field: LPUART_WATER_TXCOUNT},
		{Name: "RXWATER", Field: LPUART_WATER_RXWATER},
		{Name: "RXCOUNT", Field: LPUART_WATER_RXCOUNT},
	}
}
