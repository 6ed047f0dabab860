package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// I2S_TYPE is the register block of the synchronous audio interface.
//
// The receive registers share the transmit register types.
type I2S_TYPE struct {
	VERID mmio.RO32[I2S_VERID] `offset:"0x0" desc:"version ID"`
	PARAM mmio.RO32[I2S_PARAM] `offset:"0x4"`
	TCSR  mmio.RW32[I2S_TCSR]  `offset:"0x8" desc:"transmit control; write one to FEF, SEF or WSF to clear them"`
	TCR1  mmio.RW32[I2S_TCR1]  `offset:"0xC" desc:"FIFO watermark"`
	TCR2  mmio.RW32[I2S_TCR2]  `offset:"0x10" desc:"bit clock configuration"`
	TCR3  mmio.RW32[I2S_TCR3]  `offset:"0x14" desc:"channel configuration"`
	TCR4  mmio.RW32[I2S_TCR4]  `offset:"0x18" desc:"frame configuration"`
	TCR5  mmio.RW32[I2S_TCR5]  `offset:"0x1C" desc:"word width configuration"`
	TDR   [2]mmio.WO32[uint32] `offset:"0x20" desc:"transmit data"`
	_     [24]byte
	TFR   [2]mmio.RO32[I2S_TFR] `offset:"0x40" desc:"FIFO pointers"`
	_     [24]byte
	TMR   mmio.RW32[uint32] `offset:"0x60" desc:"transmit word mask"`
	_     [36]byte
	RCSR  mmio.RW32[I2S_RCSR]  `offset:"0x88" desc:"receive control; write one to FEF, SEF or WSF to clear them"`
	RCR1  mmio.RW32[I2S_TCR1]  `offset:"0x8C"`
	RCR2  mmio.RW32[I2S_TCR2]  `offset:"0x90"`
	RCR3  mmio.RW32[I2S_TCR3]  `offset:"0x94"`
	RCR4  mmio.RW32[I2S_TCR4]  `offset:"0x98"`
	RCR5  mmio.RW32[I2S_TCR5]  `offset:"0x9C"`
	RDR   [2]mmio.RO32[uint32] `offset:"0xA0" desc:"receive data"`
	_     [24]byte
	RFR   [2]mmio.RO32[I2S_TFR] `offset:"0xC0"`
	_     [24]byte
	RMR   mmio.RW32[uint32] `offset:"0xE0" desc:"receive word mask"`
}

const I2S_SIZE = 0xE4

var I2S_BLOCK = layout.MustFromStruct("I2S", reflect.TypeOf(I2S_TYPE{}), I2S_SIZE)

// I2S_VERID is the version ID register.
type I2S_VERID uint32

const (
	I2S_VERID_FEATURE mmio.Field = 16<<8 | 0
	I2S_VERID_MINOR   mmio.Field = 8<<8 | 16
	I2S_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r I2S_VERID) GetFEATURE() uint32 {
	return I2S_VERID_FEATURE.Decode(uint32(r))
}

func (r I2S_VERID) GetMINOR() uint32 {
	return I2S_VERID_MINOR.Decode(uint32(r))
}

func (r I2S_VERID) GetMAJOR() uint32 {
	return I2S_VERID_MAJOR.Decode(uint32(r))
}

func (r I2S_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: I2S_VERID_FEATURE},
		{Name: "MINOR", Field: I2S_VERID_MINOR},
		{Name: "MAJOR", Field: I2S_VERID_MAJOR},
	}
}

type I2S_PARAM uint32

const (
	I2S_PARAM_DATALINE mmio.Field = 4<<8 | 0
	I2S_PARAM_FIFO     mmio.Field = 4<<8 | 8
	I2S_PARAM_FRAME    mmio.Field = 4<<8 | 16
)

func (r I2S_PARAM) GetDATALINE() uint32 {
	return I2S_PARAM_DATALINE.Decode(uint32(r))
}

func (r I2S_PARAM) GetFIFO() uint32 {
	return I2S_PARAM_FIFO.Decode(uint32(r))
}

func (r I2S_PARAM) GetFRAME() uint32 {
	return I2S_PARAM_FRAME.Decode(uint32(r))
}

func (r I2S_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATALINE", Field: I2S_PARAM_DATALINE},
		{Name: "FIFO", Field: I2S_PARAM_FIFO},
		{Name: "FRAME", Field: I2S_PARAM_FRAME},
	}
}

// I2S_TCSR is the transmit control register; write one to FEF, SEF or WSF to clear them.
type I2S_TCSR uint32

const (
	I2S_TCSR_FRDE  mmio.Field = 1<<8 | 0
	I2S_TCSR_FWDE  mmio.Field = 1<<8 | 1
	I2S_TCSR_FRIE  mmio.Field = 1<<8 | 8
	I2S_TCSR_FWIE  mmio.Field = 1<<8 | 9
	I2S_TCSR_FEIE  mmio.Field = 1<<8 | 10
	I2S_TCSR_SEIE  mmio.Field = 1<<8 | 11
	I2S_TCSR_WSIE  mmio.Field = 1<<8 | 12
	I2S_TCSR_FRF   mmio.Field = 1<<8 | 16
	I2S_TCSR_FWF   mmio.Field = 1<<8 | 17
	I2S_TCSR_FEF   mmio.Field = 1<<8 | 18
	I2S_TCSR_SEF   mmio.Field = 1<<8 | 19
	I2S_TCSR_WSF   mmio.Field = 1<<8 | 20
	I2S_TCSR_SR    mmio.Field = 1<<8 | 24
	I2S_TCSR_FR    mmio.Field = 1<<8 | 25
	I2S_TCSR_BCE   mmio.Field = 1<<8 | 28
	I2S_TCSR_DBGE  mmio.Field = 1<<8 | 29
	I2S_TCSR_STOPE mmio.Field = 1<<8 | 30
	I2S_TCSR_TE    mmio.Field = 1<<8 | 31
)

func (r I2S_TCSR) GetFRDE() bool {
	return I2S_TCSR_FRDE.Bool(uint32(r))
}

func (r I2S_TCSR) SetFRDE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FRDE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFWDE() bool {
	return I2S_TCSR_FWDE.Bool(uint32(r))
}

func (r I2S_TCSR) SetFWDE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FWDE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFRIE() bool {
	return I2S_TCSR_FRIE.Bool(uint32(r))
}

func (r I2S_TCSR) SetFRIE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FRIE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFWIE() bool {
	return I2S_TCSR_FWIE.Bool(uint32(r))
}

func (r I2S_TCSR) SetFWIE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FWIE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFEIE() bool {
	return I2S_TCSR_FEIE.Bool(uint32(r))
}

func (r I2S_TCSR) SetFEIE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FEIE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetSEIE() bool {
	return I2S_TCSR_SEIE.Bool(uint32(r))
}

func (r I2S_TCSR) SetSEIE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_SEIE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetWSIE() bool {
	return I2S_TCSR_WSIE.Bool(uint32(r))
}

func (r I2S_TCSR) SetWSIE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_WSIE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFRF() bool {
	return I2S_TCSR_FRF.Bool(uint32(r))
}

func (r I2S_TCSR) SetFRF(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FRF.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFWF() bool {
	return I2S_TCSR_FWF.Bool(uint32(r))
}

func (r I2S_TCSR) SetFWF(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FWF.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFEF() bool {
	return I2S_TCSR_FEF.Bool(uint32(r))
}

func (r I2S_TCSR) SetFEF(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FEF.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetSEF() bool {
	return I2S_TCSR_SEF.Bool(uint32(r))
}

func (r I2S_TCSR) SetSEF(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_SEF.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetWSF() bool {
	return I2S_TCSR_WSF.Bool(uint32(r))
}

func (r I2S_TCSR) SetWSF(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_WSF.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetSR() bool {
	return I2S_TCSR_SR.Bool(uint32(r))
}

func (r I2S_TCSR) SetSR(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_SR.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetFR() bool {
	return I2S_TCSR_FR.Bool(uint32(r))
}

func (r I2S_TCSR) SetFR(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_FR.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetBCE() bool {
	return I2S_TCSR_BCE.Bool(uint32(r))
}

func (r I2S_TCSR) SetBCE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_BCE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetDBGE() bool {
	return I2S_TCSR_DBGE.Bool(uint32(r))
}

func (r I2S_TCSR) SetDBGE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_DBGE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetSTOPE() bool {
	return I2S_TCSR_STOPE.Bool(uint32(r))
}

func (r I2S_TCSR) SetSTOPE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_STOPE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) GetTE() bool {
	return I2S_TCSR_TE.Bool(uint32(r))
}

func (r I2S_TCSR) SetTE(v bool) I2S_TCSR {
	return I2S_TCSR(I2S_TCSR_TE.InsertBool(uint32(r), v))
}

func (r I2S_TCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRDE", Field: I2S_TCSR_FRDE},
		{Name: "FWDE", Field: I2S_TCSR_FWDE},
		{Name: "FRIE", Field: I2S_TCSR_FRIE},
		{Name: "FWIE", Field: I2S_TCSR_FWIE},
		{Name: "FEIE", Field: I2S_TCSR_FEIE},
		{Name: "SEIE", Field: I2S_TCSR_SEIE},
		{Name: "WSIE", Field: I2S_TCSR_WSIE},
		{Name: "FRF", Field: I2S_TCSR_FRF},
		{Name: "FWF", Field: I2S_TCSR_FWF},
		{Name: "FEF", Field: I2S_TCSR_FEF},
		{Name: "SEF", Field: I2S_TCSR_SEF},
		{Name: "WSF", Field: I2S_TCSR_WSF},
		{Name: "SR", Field: I2S_TCSR_SR},
		{Name: "FR", Field: I2S_TCSR_FR},
		{Name: "BCE", Field: I2S_TCSR_BCE},
		{Name: "DBGE", Field: I2S_TCSR_DBGE},
		{Name: "STOPE", Field: I2S_TCSR_STOPE},
		{Name: "TE", Field: I2S_TCSR_TE},
	}
}

// I2S_TCR1 is the FIFO watermark register.
type I2S_TCR1 uint32

const (
	I2S_TCR1_TFW mmio.Field = 3<<8 | 0
)

func (r I2S_TCR1) GetTFW() uint32 {
	return I2S_TCR1_TFW.Decode(uint32(r))
}

func (r I2S_TCR1) SetTFW(v uint32) I2S_TCR1 {
	return I2S_TCR1(I2S_TCR1_TFW.Insert(uint32(r), v))
}

func (r I2S_TCR1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TFW", Field: I2S_TCR1_TFW},
	}
}

// I2S_TCR2 is the bit clock configuration register.
type I2S_TCR2 uint32

const (
	I2S_TCR2_DIV  mmio.Field = 8<<8 | 0
	I2S_TCR2_BCD  mmio.Field = 1<<8 | 24
	I2S_TCR2_BCP  mmio.Field = 1<<8 | 25
	I2S_TCR2_MSEL mmio.Field = 2<<8 | 26
	I2S_TCR2_BCI  mmio.Field = 1<<8 | 28
	I2S_TCR2_BCS  mmio.Field = 1<<8 | 29
	I2S_TCR2_SYNC mmio.Field = 2<<8 | 30
)

type I2S_TCR2_SYNC_Value uint32

const (
	I2S_TCR2_SYNC_ASYNC I2S_TCR2_SYNC_Value = 0
	I2S_TCR2_SYNC_SYNC  I2S_TCR2_SYNC_Value = 1
)

func (r I2S_TCR2) GetDIV() uint32 {
	return I2S_TCR2_DIV.Decode(uint32(r))
}

func (r I2S_TCR2) SetDIV(v uint32) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_DIV.Insert(uint32(r), v))
}

func (r I2S_TCR2) GetBCD() bool {
	return I2S_TCR2_BCD.Bool(uint32(r))
}

func (r I2S_TCR2) SetBCD(v bool) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_BCD.InsertBool(uint32(r), v))
}

func (r I2S_TCR2) GetBCP() bool {
	return I2S_TCR2_BCP.Bool(uint32(r))
}

func (r I2S_TCR2) SetBCP(v bool) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_BCP.InsertBool(uint32(r), v))
}

func (r I2S_TCR2) GetMSEL() uint32 {
	return I2S_TCR2_MSEL.Decode(uint32(r))
}

func (r I2S_TCR2) SetMSEL(v uint32) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_MSEL.Insert(uint32(r), v))
}

func (r I2S_TCR2) GetBCI() bool {
	return I2S_TCR2_BCI.Bool(uint32(r))
}

func (r I2S_TCR2) SetBCI(v bool) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_BCI.InsertBool(uint32(r), v))
}

func (r I2S_TCR2) GetBCS() bool {
	return I2S_TCR2_BCS.Bool(uint32(r))
}

func (r I2S_TCR2) SetBCS(v bool) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_BCS.InsertBool(uint32(r), v))
}

func (r I2S_TCR2) GetSYNC() I2S_TCR2_SYNC_Value {
	return I2S_TCR2_SYNC_Value(I2S_TCR2_SYNC.Decode(uint32(r)))
}

func (r I2S_TCR2) SetSYNC(v I2S_TCR2_SYNC_Value) I2S_TCR2 {
	return I2S_TCR2(I2S_TCR2_SYNC.Insert(uint32(r), uint32(v)))
}

func (r I2S_TCR2) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DIV", Field: I2S_TCR2_DIV},
		{Name: "BCD", Field: I2S_TCR2_BCD},
		{Name: "BCP", Field: I2S_TCR2_BCP},
		{Name: "MSEL", Field: I2S_TCR2_MSEL},
		{Name: "BCI", Field: I2S_TCR2_BCI},
		{Name: "BCS", Field: I2S_TCR2_BCS},
		{Name: "SYNC", Field: I2S_TCR2_SYNC, Values: []mmio.EnumValue{
			{Name: "ASYNC", Value: uint32(I2S_TCR2_SYNC_ASYNC)},
			{Name: "SYNC", Value: uint32(I2S_TCR2_SYNC_SYNC)},
		}},
	}
}

// I2S_TCR3 is the channel configuration register.
type I2S_TCR3 uint32

const (
	I2S_TCR3_WDFL mmio.Field = 5<<8 | 0
	I2S_TCR3_TCE  mmio.Field = 2<<8 | 16
	I2S_TCR3_CFR  mmio.Field = 2<<8 | 24
)

func (r I2S_TCR3) GetWDFL() uint32 {
	return I2S_TCR3_WDFL.Decode(uint32(r))
}

func (r I2S_TCR3) SetWDFL(v uint32) I2S_TCR3 {
	return I2S_TCR3(I2S_TCR3_WDFL.Insert(uint32(r), v))
}

func (r I2S_TCR3) GetTCE() uint32 {
	return I2S_TCR3_TCE.Decode(uint32(r))
}

func (r I2S_TCR3) SetTCE(v uint32) I2S_TCR3 {
	return I2S_TCR3(I2S_TCR3_TCE.Insert(uint32(r), v))
}

func (r I2S_TCR3) GetCFR() uint32 {
	return I2S_TCR3_CFR.Decode(uint32(r))
}

func (r I2S_TCR3) SetCFR(v uint32) I2S_TCR3 {
	return I2S_TCR3(I2S_TCR3_CFR.Insert(uint32(r), v))
}

func (r I2S_TCR3) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WDFL", Field: I2S_TCR3_WDFL},
		{Name: "TCE", Field: I2S_TCR3_TCE},
		{Name: "CFR", Field: I2S_TCR3_CFR},
	}
}

// I2S_TCR4 is the frame configuration register.
type I2S_TCR4 uint32

const (
	I2S_TCR4_FSD   mmio.Field = 1<<8 | 0
	I2S_TCR4_FSP   mmio.Field = 1<<8 | 1
	I2S_TCR4_ONDEM mmio.Field = 1<<8 | 2
	I2S_TCR4_FSE   mmio.Field = 1<<8 | 3
	I2S_TCR4_MF    mmio.Field = 1<<8 | 4
	I2S_TCR4_CHMOD mmio.Field = 1<<8 | 5
	I2S_TCR4_SYWD  mmio.Field = 5<<8 | 8
	I2S_TCR4_FRSZ  mmio.Field = 5<<8 | 16
	I2S_TCR4_FPACK mmio.Field = 2<<8 | 24
	I2S_TCR4_FCOMB mmio.Field = 2<<8 | 26
	I2S_TCR4_FCONT mmio.Field = 1<<8 | 28
)

func (r I2S_TCR4) GetFSD() bool {
	return I2S_TCR4_FSD.Bool(uint32(r))
}

func (r I2S_TCR4) SetFSD(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FSD.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetFSP() bool {
	return I2S_TCR4_FSP.Bool(uint32(r))
}

func (r I2S_TCR4) SetFSP(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FSP.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetONDEM() bool {
	return I2S_TCR4_ONDEM.Bool(uint32(r))
}

func (r I2S_TCR4) SetONDEM(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_ONDEM.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetFSE() bool {
	return I2S_TCR4_FSE.Bool(uint32(r))
}

func (r I2S_TCR4) SetFSE(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FSE.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetMF() bool {
	return I2S_TCR4_MF.Bool(uint32(r))
}

func (r I2S_TCR4) SetMF(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_MF.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetCHMOD() bool {
	return I2S_TCR4_CHMOD.Bool(uint32(r))
}

func (r I2S_TCR4) SetCHMOD(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_CHMOD.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) GetSYWD() uint32 {
	return I2S_TCR4_SYWD.Decode(uint32(r))
}

func (r I2S_TCR4) SetSYWD(v uint32) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_SYWD.Insert(uint32(r), v))
}

func (r I2S_TCR4) GetFRSZ() uint32 {
	return I2S_TCR4_FRSZ.Decode(uint32(r))
}

func (r I2S_TCR4) SetFRSZ(v uint32) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FRSZ.Insert(uint32(r), v))
}

func (r I2S_TCR4) GetFPACK() uint32 {
	return I2S_TCR4_FPACK.Decode(uint32(r))
}

func (r I2S_TCR4) SetFPACK(v uint32) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FPACK.Insert(uint32(r), v))
}

func (r I2S_TCR4) GetFCOMB() uint32 {
	return I2S_TCR4_FCOMB.Decode(uint32(r))
}

func (r I2S_TCR4) SetFCOMB(v uint32) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FCOMB.Insert(uint32(r), v))
}

func (r I2S_TCR4) GetFCONT() bool {
	return I2S_TCR4_FCONT.Bool(uint32(r))
}

func (r I2S_TCR4) SetFCONT(v bool) I2S_TCR4 {
	return I2S_TCR4(I2S_TCR4_FCONT.InsertBool(uint32(r), v))
}

func (r I2S_TCR4) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FSD", Field: I2S_TCR4_FSD},
		{Name: "FSP", Field: I2S_TCR4_FSP},
		{Name: "ONDEM", Field: I2S_TCR4_ONDEM},
		{Name: "FSE", Field: I2S_TCR4_FSE},
		{Name: "MF", Field: I2S_TCR4_MF},
		{Name: "CHMOD", Field: I2S_TCR4_CHMOD},
		{Name: "SYWD", Field: I2S_TCR4_SYWD},
		{Name: "FRSZ", Field: I2S_TCR4_FRSZ},
		{Name: "FPACK", Field: I2S_TCR4_FPACK},
		{Name: "FCOMB", Field: I2S_TCR4_FCOMB},
		{Name: "FCONT", Field: I2S_TCR4_FCONT},
	}
}

// I2S_TCR5 is the word width configuration register.
type I2S_TCR5 uint32

const (
	I2S_TCR5_FBT mmio.Field = 5<<8 | 8
	I2S_TCR5_W0W mmio.Field = 5<<8 | 16
	I2S_TCR5_WNW mmio.Field = 5<<8 | 24
)

func (r I2S_TCR5) GetFBT() uint32 {
	return I2S_TCR5_FBT.Decode(uint32(r))
}

func (r I2S_TCR5) SetFBT(v uint32) I2S_TCR5 {
	return I2S_TCR5(I2S_TCR5_FBT.Insert(uint32(r), v))
}

func (r I2S_TCR5) GetW0W() uint32 {
	return I2S_TCR5_W0W.Decode(uint32(r))
}

func (r I2S_TCR5) SetW0W(v uint32) I2S_TCR5 {
	return I2S_TCR5(I2S_TCR5_W0W.Insert(uint32(r), v))
}

func (r I2S_TCR5) GetWNW() uint32 {
	return I2S_TCR5_WNW.Decode(uint32(r))
}

func (r I2S_TCR5) SetWNW(v uint32) I2S_TCR5 {
	return I2S_TCR5(I2S_TCR5_WNW.Insert(uint32(r), v))
}

func (r I2S_TCR5) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FBT", Field: I2S_TCR5_FBT},
		{Name: "W0W", Field: I2S_TCR5_W0W},
		{Name: "WNW", Field: I2S_TCR5_WNW},
	}
}

// I2S_TFR is the FIFO pointers register.
type I2S_TFR uint32

const (
	I2S_TFR_RFP mmio.Field = 4<<8 | 0
	I2S_TFR_WFP mmio.Field = 4<<8 | 16
	I2S_TFR_WCP mmio.Field = 1<<8 | 31
)

func (r I2S_TFR) GetRFP() uint32 {
	return I2S_TFR_RFP.Decode(uint32(r))
}

func (r I2S_TFR) GetWFP() uint32 {
	return I2S_TFR_WFP.Decode(uint32(r))
}

func (r I2S_TFR) GetWCP() bool {
	return I2S_TFR_WCP.Bool(uint32(r))
}

func (r I2S_TFR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RFP", Field: I2S_TFR_RFP},
		{Name: "WFP", Field: I2S_TFR_WFP},
		{Name: "WCP", Field: I2S_TFR_WCP},
	}
}

// I2S_RCSR is the receive control register; write one to FEF, SEF or WSF to clear them.
type I2S_RCSR uint32

const (
	I2S_RCSR_FRDE  mmio.Field = 1<<8 | 0
	I2S_RCSR_FWDE  mmio.Field = 1<<8 | 1
	I2S_RCSR_FRIE  mmio.Field = 1<<8 | 8
	I2S_RCSR_FWIE  mmio.Field = 1<<8 | 9
	I2S_RCSR_FEIE  mmio.Field = 1<<8 | 10
	I2S_RCSR_SEIE  mmio.Field = 1<<8 | 11
	I2S_RCSR_WSIE  mmio.Field = 1<<8 | 12
	I2S_RCSR_FRF   mmio.Field = 1<<8 | 16
	I2S_RCSR_FWF   mmio.Field = 1<<8 | 17
	I2S_RCSR_FEF   mmio.Field = 1<<8 | 18
	I2S_RCSR_SEF   mmio.Field = 1<<8 | 19
	I2S_RCSR_WSF   mmio.Field = 1<<8 | 20
	I2S_RCSR_SR    mmio.Field = 1<<8 | 24
	I2S_RCSR_FR    mmio.Field = 1<<8 | 25
	I2S_RCSR_BCE   mmio.Field = 1<<8 | 28
	I2S_RCSR_DBGE  mmio.Field = 1<<8 | 29
	I2S_RCSR_STOPE mmio.Field = 1<<8 | 30
	I2S_RCSR_RE    mmio.Field = 1<<8 | 31
)

func (r I2S_RCSR) GetFRDE() bool {
	return I2S_RCSR_FRDE.Bool(uint32(r))
}

func (r I2S_RCSR) SetFRDE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FRDE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFWDE() bool {
	return I2S_RCSR_FWDE.Bool(uint32(r))
}

func (r I2S_RCSR) SetFWDE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FWDE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFRIE() bool {
	return I2S_RCSR_FRIE.Bool(uint32(r))
}

func (r I2S_RCSR) SetFRIE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FRIE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFWIE() bool {
	return I2S_RCSR_FWIE.Bool(uint32(r))
}

func (r I2S_RCSR) SetFWIE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FWIE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFEIE() bool {
	return I2S_RCSR_FEIE.Bool(uint32(r))
}

func (r I2S_RCSR) SetFEIE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FEIE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetSEIE() bool {
	return I2S_RCSR_SEIE.Bool(uint32(r))
}

func (r I2S_RCSR) SetSEIE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_SEIE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetWSIE() bool {
	return I2S_RCSR_WSIE.Bool(uint32(r))
}

func (r I2S_RCSR) SetWSIE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_WSIE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFRF() bool {
	return I2S_RCSR_FRF.Bool(uint32(r))
}

func (r I2S_RCSR) SetFRF(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FRF.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFWF() bool {
	return I2S_RCSR_FWF.Bool(uint32(r))
}

func (r I2S_RCSR) SetFWF(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FWF.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFEF() bool {
	return I2S_RCSR_FEF.Bool(uint32(r))
}

func (r I2S_RCSR) SetFEF(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FEF.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetSEF() bool {
	return I2S_RCSR_SEF.Bool(uint32(r))
}

func (r I2S_RCSR) SetSEF(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_SEF.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetWSF() bool {
	return I2S_RCSR_WSF.Bool(uint32(r))
}

func (r I2S_RCSR) SetWSF(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_WSF.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetSR() bool {
	return I2S_RCSR_SR.Bool(uint32(r))
}

func (r I2S_RCSR) SetSR(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_SR.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetFR() bool {
	return I2S_RCSR_FR.Bool(uint32(r))
}

func (r I2S_RCSR) SetFR(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_FR.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetBCE() bool {
	return I2S_RCSR_BCE.Bool(uint32(r))
}

func (r I2S_RCSR) SetBCE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_BCE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetDBGE() bool {
	return I2S_RCSR_DBGE.Bool(uint32(r))
}

func (r I2S_RCSR) SetDBGE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_DBGE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetSTOPE() bool {
	return I2S_RCSR_STOPE.Bool(uint32(r))
}

func (r I2S_RCSR) SetSTOPE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_STOPE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) GetRE() bool {
	return I2S_RCSR_RE.Bool(uint32(r))
}

func (r I2S_RCSR) SetRE(v bool) I2S_RCSR {
	return I2S_RCSR(I2S_RCSR_RE.InsertBool(uint32(r), v))
}

func (r I2S_RCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRDE", Field: I2S_RCSR_FRDE},
		{Name: "FWDE", Field: I2S_RCSR_FWDE},
		{Name: "FRIE", Field: I2S_RCSR_FRIE},
		{Name: "FWIE", Field: I2S_RCSR_FWIE},
		{Name: "FEIE", Field: I2S_RCSR_FEIE},
		{Name: "SEIE", Field: I2S_RCSR_SEIE},
		{Name: "WSIE", Field: I2S_RCSR_WSIE},
		{Name: "FRF", Field: I2S_RCSR_FRF},
		{Name: "FWF", Field: I2S_RCSR_FWF},
		{Name: "FEF", Field: I2S_RCSR_FEF},
		{Name: "SEF", Field: I2S_RCSR_SEF},
		{Name: "WSF", Field: I2S_RCSR_WSF},
		{Name: "SR", Field: I2S_RCSR_SR},
		{Name: "FR", Field: I2S_RCSR_FR},
		{Name: "BCE", Field: I2S_RCSR_BCE},
		{Name: "DBGE", Field: I2S_RCSR_DBGE},
		{Name: "STOPE", Field: I2S_RCSR_STOPE},
		{Name: "RE", Field: I2S_RCSR_RE},
	}
}
