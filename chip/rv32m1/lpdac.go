package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPDAC_TYPE is the register block of the low power 12-bit DAC.
type LPDAC_TYPE struct {
	VERID mmio.RO32[LPDAC_VERID] `offset:"0x0" desc:"version ID"`
	PARAM mmio.RO32[LPDAC_PARAM] `offset:"0x4"`
	DATA  mmio.WO32[LPDAC_DATA]  `offset:"0x8" desc:"data; a write pushes the FIFO"`
	GCR   mmio.RW32[LPDAC_GCR]   `offset:"0xC" desc:"global control"`
	FCR   mmio.RW32[LPDAC_FCR]   `offset:"0x10" desc:"FIFO control"`
	FPR   mmio.RO32[LPDAC_FPR]   `offset:"0x14" desc:"FIFO pointers"`
	FSR   mmio.RW32[LPDAC_FSR]   `offset:"0x18" desc:"FIFO status; write one to OF, UF or PTGCOCO to clear them"`
	IER   mmio.RW32[LPDAC_IER]   `offset:"0x1C"`
	DER   mmio.RW32[LPDAC_DER]   `offset:"0x20"`
	RCR   mmio.RW32[LPDAC_RCR]   `offset:"0x24" desc:"reset control"`
	TCR   mmio.RW32[LPDAC_TCR]   `offset:"0x28" desc:"trigger control"`
}

const LPDAC_SIZE = 0x2C

var LPDAC_BLOCK = layout.MustFromStruct("LPDAC", reflect.TypeOf(LPDAC_TYPE{}), LPDAC_SIZE)

// LPDAC_VERID is the version ID register.
type LPDAC_VERID uint32

const (
	LPDAC_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPDAC_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPDAC_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPDAC_VERID) GetFEATURE() uint32 {
	return LPDAC_VERID_FEATURE.Decode(uint32(r))
}

func (r LPDAC_VERID) GetMINOR() uint32 {
	return LPDAC_VERID_MINOR.Decode(uint32(r))
}

func (r LPDAC_VERID) GetMAJOR() uint32 {
	return LPDAC_VERID_MAJOR.Decode(uint32(r))
}

func (r LPDAC_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPDAC_VERID_FEATURE},
		{Name: "MINOR", Field: LPDAC_VERID_MINOR},
		{Name: "MAJOR", Field: LPDAC_VERID_MAJOR},
	}
}

type LPDAC_PARAM uint32

const (
	LPDAC_PARAM_FIFOSZ mmio.Field = 3<<8 | 0
)

func (r LPDAC_PARAM) GetFIFOSZ() uint32 {
	return LPDAC_PARAM_FIFOSZ.Decode(uint32(r))
}

func (r LPDAC_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FIFOSZ", Field: LPDAC_PARAM_FIFOSZ},
	}
}

// LPDAC_DATA is the data register; a write pushes the FIFO.
type LPDAC_DATA uint32

const (
	LPDAC_DATA_DATA mmio.Field = 12<<8 | 0
)

func (r LPDAC_DATA) SetDATA(v uint32) LPDAC_DATA {
	return LPDAC_DATA(LPDAC_DATA_DATA.Insert(uint32(r), v))
}

func (r LPDAC_DATA) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPDAC_DATA_DATA},
	}
}

// LPDAC_GCR is the global control register.
type LPDAC_GCR uint32

const (
	LPDAC_GCR_DACEN     mmio.Field = 1<<8 | 0
	LPDAC_GCR_DACRFS    mmio.Field = 1<<8 | 1
	LPDAC_GCR_LPEN      mmio.Field = 1<<8 | 2
	LPDAC_GCR_FIFOEN    mmio.Field = 1<<8 | 3
	LPDAC_GCR_SWMD      mmio.Field = 1<<8 | 4
	LPDAC_GCR_TRGSEL    mmio.Field = 1<<8 | 5
	LPDAC_GCR_LATCH_CYC mmio.Field = 4<<8 | 8
)

func (r LPDAC_GCR) GetDACEN() bool {
	return LPDAC_GCR_DACEN.Bool(uint32(r))
}

func (r LPDAC_GCR) SetDACEN(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_DACEN.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetDACRFS() bool {
	return LPDAC_GCR_DACRFS.Bool(uint32(r))
}

func (r LPDAC_GCR) SetDACRFS(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_DACRFS.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetLPEN() bool {
	return LPDAC_GCR_LPEN.Bool(uint32(r))
}

func (r LPDAC_GCR) SetLPEN(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_LPEN.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetFIFOEN() bool {
	return LPDAC_GCR_FIFOEN.Bool(uint32(r))
}

func (r LPDAC_GCR) SetFIFOEN(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_FIFOEN.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetSWMD() bool {
	return LPDAC_GCR_SWMD.Bool(uint32(r))
}

func (r LPDAC_GCR) SetSWMD(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_SWMD.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetTRGSEL() bool {
	return LPDAC_GCR_TRGSEL.Bool(uint32(r))
}

func (r LPDAC_GCR) SetTRGSEL(v bool) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_TRGSEL.InsertBool(uint32(r), v))
}

func (r LPDAC_GCR) GetLATCH_CYC() uint32 {
	return LPDAC_GCR_LATCH_CYC.Decode(uint32(r))
}

func (r LPDAC_GCR) SetLATCH_CYC(v uint32) LPDAC_GCR {
	return LPDAC_GCR(LPDAC_GCR_LATCH_CYC.Insert(uint32(r), v))
}

func (r LPDAC_GCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DACEN", Field: LPDAC_GCR_DACEN},
		{Name: "DACRFS", Field: LPDAC_GCR_DACRFS},
		{Name: "LPEN", Field: LPDAC_GCR_LPEN},
		{Name: "FIFOEN", Field: LPDAC_GCR_FIFOEN},
		{Name: "SWMD", Field: LPDAC_GCR_SWMD},
		{Name: "TRGSEL", Field: LPDAC_GCR_TRGSEL},
		{Name: "LATCH_CYC", Field: LPDAC_GCR_LATCH_CYC},
	}
}

// LPDAC_FCR is the FIFO control register.
type LPDAC_FCR uint32

const (
	LPDAC_FCR_WML mmio.Field = 4<<8 | 0
)

func (r LPDAC_FCR) GetWML() uint32 {
	return LPDAC_FCR_WML.Decode(uint32(r))
}

func (r LPDAC_FCR) SetWML(v uint32) LPDAC_FCR {
	return LPDAC_FCR(LPDAC_FCR_WML.Insert(uint32(r), v))
}

func (r LPDAC_FCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WML", Field: LPDAC_FCR_WML},
	}
}

// LPDAC_FPR is the FIFO pointers register.
type LPDAC_FPR uint32

const (
	LPDAC_FPR_FIFO_RPT mmio.Field = 4<<8 | 0
	LPDAC_FPR_FIFO_WPT mmio.Field = 4<<8 | 16
)

func (r LPDAC_FPR) GetFIFO_RPT() uint32 {
	return LPDAC_FPR_FIFO_RPT.Decode(uint32(r))
}

func (r LPDAC_FPR) GetFIFO_WPT() uint32 {
	return LPDAC_FPR_FIFO_WPT.Decode(uint32(r))
}

func (r LPDAC_FPR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FIFO_RPT", Field: LPDAC_FPR_FIFO_RPT},
		{Name: "FIFO_WPT", Field: LPDAC_FPR_FIFO_WPT},
	}
}

// LPDAC_FSR is the FIFO status register; write one to OF, UF or PTGCOCO to clear them.
type LPDAC_FSR uint32

const (
	LPDAC_FSR_FULL    mmio.Field = 1<<8 | 0
	LPDAC_FSR_EMPTY   mmio.Field = 1<<8 | 1
	LPDAC_FSR_WM      mmio.Field = 1<<8 | 2
	LPDAC_FSR_SWBK    mmio.Field = 1<<8 | 3
	LPDAC_FSR_OF      mmio.Field = 1<<8 | 6
	LPDAC_FSR_UF      mmio.Field = 1<<8 | 7
	LPDAC_FSR_PTGCOCO mmio.Field = 1<<8 | 8
)

func (r LPDAC_FSR) GetFULL() bool {
	return LPDAC_FSR_FULL.Bool(uint32(r))
}

func (r LPDAC_FSR) SetFULL(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_FULL.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetEMPTY() bool {
	return LPDAC_FSR_EMPTY.Bool(uint32(r))
}

func (r LPDAC_FSR) SetEMPTY(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_EMPTY.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetWM() bool {
	return LPDAC_FSR_WM.Bool(uint32(r))
}

func (r LPDAC_FSR) SetWM(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_WM.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetSWBK() bool {
	return LPDAC_FSR_SWBK.Bool(uint32(r))
}

func (r LPDAC_FSR) SetSWBK(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_SWBK.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetOF() bool {
	return LPDAC_FSR_OF.Bool(uint32(r))
}

func (r LPDAC_FSR) SetOF(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_OF.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetUF() bool {
	return LPDAC_FSR_UF.Bool(uint32(r))
}

func (r LPDAC_FSR) SetUF(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_UF.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) GetPTGCOCO() bool {
	return LPDAC_FSR_PTGCOCO.Bool(uint32(r))
}

func (r LPDAC_FSR) SetPTGCOCO(v bool) LPDAC_FSR {
	return LPDAC_FSR(LPDAC_FSR_PTGCOCO.InsertBool(uint32(r), v))
}

func (r LPDAC_FSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FULL", Field: LPDAC_FSR_FULL},
		{Name: "EMPTY", Field: LPDAC_FSR_EMPTY},
		{Name: "WM", Field: LPDAC_FSR_WM},
		{Name: "SWBK", Field: LPDAC_FSR_SWBK},
		{Name: "OF", Field: LPDAC_FSR_OF},
		{Name: "UF", Field: LPDAC_FSR_UF},
		{Name: "PTGCOCO", Field: LPDAC_FSR_PTGCOCO},
	}
}

type LPDAC_IER uint32

const (
	LPDAC_IER_FULL_IE    mmio.Field = 1<<8 | 0
	LPDAC_IER_EMPTY_IE   mmio.Field = 1<<8 | 1
	LPDAC_IER_WM_IE      mmio.Field = 1<<8 | 2
	LPDAC_IER_SWBK_IE    mmio.Field = 1<<8 | 3
	LPDAC_IER_OF_IE      mmio.Field = 1<<8 | 6
	LPDAC_IER_UF_IE      mmio.Field = 1<<8 | 7
	LPDAC_IER_PTGCOCO_IE mmio.Field = 1<<8 | 8
)

func (r LPDAC_IER) GetFULL_IE() bool {
	return LPDAC_IER_FULL_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetFULL_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_FULL_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetEMPTY_IE() bool {
	return LPDAC_IER_EMPTY_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetEMPTY_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_EMPTY_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetWM_IE() bool {
	return LPDAC_IER_WM_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetWM_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_WM_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetSWBK_IE() bool {
	return LPDAC_IER_SWBK_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetSWBK_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_SWBK_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetOF_IE() bool {
	return LPDAC_IER_OF_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetOF_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_OF_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetUF_IE() bool {
	return LPDAC_IER_UF_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetUF_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_UF_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) GetPTGCOCO_IE() bool {
	return LPDAC_IER_PTGCOCO_IE.Bool(uint32(r))
}

func (r LPDAC_IER) SetPTGCOCO_IE(v bool) LPDAC_IER {
	return LPDAC_IER(LPDAC_IER_PTGCOCO_IE.InsertBool(uint32(r), v))
}

func (r LPDAC_IER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FULL_IE", Field: LPDAC_IER_FULL_IE},
		{Name: "EMPTY_IE", Field: LPDAC_IER_EMPTY_IE},
		{Name: "WM_IE", Field: LPDAC_IER_WM_IE},
		{Name: "SWBK_IE", Field: LPDAC_IER_SWBK_IE},
		{Name: "OF_IE", Field: LPDAC_IER_OF_IE},
		{Name: "UF_IE", Field: LPDAC_IER_UF_IE},
		{Name: "PTGCOCO_IE", Field: LPDAC_IER_PTGCOCO_IE},
	}
}

type LPDAC_DER uint32

const (
	LPDAC_DER_EMPTY_DMAEN mmio.Field = 1<<8 | 1
	LPDAC_DER_WM_DMAEN    mmio.Field = 1<<8 | 2
)

func (r LPDAC_DER) GetEMPTY_DMAEN() bool {
	return LPDAC_DER_EMPTY_DMAEN.Bool(uint32(r))
}

func (r LPDAC_DER) SetEMPTY_DMAEN(v bool) LPDAC_DER {
	return LPDAC_DER(LPDAC_DER_EMPTY_DMAEN.InsertBool(uint32(r), v))
}

func (r LPDAC_DER) GetWM_DMAEN() bool {
	return LPDAC_DER_WM_DMAEN.Bool(uint32(r))
}

func (r LPDAC_DER) SetWM_DMAEN(v bool) LPDAC_DER {
	return LPDAC_DER(LPDAC_DER_WM_DMAEN.InsertBool(uint32(r), v))
}

func (r LPDAC_DER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EMPTY_DMAEN", Field: LPDAC_DER_EMPTY_DMAEN},
		{Name: "WM_DMAEN", Field: LPDAC_DER_WM_DMAEN},
	}
}

// LPDAC_RCR is the reset control register.
type LPDAC_RCR uint32

const (
	LPDAC_RCR_SWRST   mmio.Field = 1<<8 | 0
	LPDAC_RCR_FIFORST mmio.Field = 1<<8 | 1
)

func (r LPDAC_RCR) GetSWRST() bool {
	return LPDAC_RCR_SWRST.Bool(uint32(r))
}

func (r LPDAC_RCR) SetSWRST(v bool) LPDAC_RCR {
	return LPDAC_RCR(LPDAC_RCR_SWRST.InsertBool(uint32(r), v))
}

func (r LPDAC_RCR) GetFIFORST() bool {
	return LPDAC_RCR_FIFORST.Bool(uint32(r))
}

func (r LPDAC_RCR) SetFIFORST(v bool) LPDAC_RCR {
	return LPDAC_RCR(LPDAC_RCR_FIFORST.InsertBool(uint32(r), v))
}

func (r LPDAC_RCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SWRST", Field: LPDAC_RCR_SWRST},
		{Name: "FIFORST", Field: LPDAC_RCR_FIFORST},
	}
}

// LPDAC_TCR is the trigger control register.
type LPDAC_TCR uint32

const (
	LPDAC_TCR_SWTRG mmio.Field = 1<<8 | 0
)

func (r LPDAC_TCR) GetSWTRG() bool {
	return LPDAC_TCR_SWTRG.Bool(uint32(r))
}

func (r LPDAC_TCR) SetSWTRG(v bool) LPDAC_TCR {
	return LPDAC_TCR(LPDAC_TCR_SWTRG.InsertBool(uint32(r), v))
}

func (r LPDAC_TCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SWTRG", Field: LPDAC_TCR_SWTRG},
	}
}
