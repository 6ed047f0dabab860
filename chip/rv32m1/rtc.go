package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// RTC_TYPE is the register block of the real time clock.
type RTC_TYPE struct {
	TSR mmio.RW32[uint32]  `offset:"0x0" desc:"time seconds"`
	TPR mmio.RW32[RTC_TPR] `offset:"0x4" desc:"time prescaler"`
	TAR mmio.RW32[uint32]  `offset:"0x8" desc:"time alarm"`
	TCR mmio.RW32[RTC_TCR] `offset:"0xC" desc:"time compensation"`
	CR  mmio.RW32[RTC_CR]  `offset:"0x10" desc:"control"`
	SR  mmio.RW32[RTC_SR]  `offset:"0x14" desc:"status"`
	LR  mmio.RW32[RTC_LR]  `offset:"0x18" desc:"lock"`
	IER mmio.RW32[RTC_IER] `offset:"0x1C"`
}

const RTC_SIZE = 0x20

var RTC_BLOCK = layout.MustFromStruct("RTC", reflect.TypeOf(RTC_TYPE{}), RTC_SIZE)

// RTC_TPR is the time prescaler register.
type RTC_TPR uint32

const (
	RTC_TPR_TPR mmio.Field = 16<<8 | 0
)

func (r RTC_TPR) GetTPR() uint32 {
	return RTC_TPR_TPR.Decode(uint32(r))
}

func (r RTC_TPR) SetTPR(v uint32) RTC_TPR {
	return RTC_TPR(RTC_TPR_TPR.Insert(uint32(r), v))
}

func (r RTC_TPR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TPR", Field: RTC_TPR_TPR},
	}
}

// RTC_TCR is the time compensation register.
type RTC_TCR uint32

const (
	RTC_TCR_TCR mmio.Field = 8<<8 | 0
	RTC_TCR_CIR mmio.Field = 8<<8 | 8
	RTC_TCR_TCV mmio.Field = 8<<8 | 16
	RTC_TCR_CIC mmio.Field = 8<<8 | 24
)

func (r RTC_TCR) GetTCR() uint32 {
	return RTC_TCR_TCR.Decode(uint32(r))
}

func (r RTC_TCR) SetTCR(v uint32) RTC_TCR {
	return RTC_TCR(RTC_TCR_TCR.Insert(uint32(r), v))
}

func (r RTC_TCR) GetCIR() uint32 {
	return RTC_TCR_CIR.Decode(uint32(r))
}

func (r RTC_TCR) SetCIR(v uint32) RTC_TCR {
	return RTC_TCR(RTC_TCR_CIR.Insert(uint32(r), v))
}

func (r RTC_TCR) GetTCV() uint32 {
	return RTC_TCR_TCV.Decode(uint32(r))
}

func (r RTC_TCR) SetTCV(v uint32) RTC_TCR {
	return RTC_TCR(RTC_TCR_TCV.Insert(uint32(r), v))
}

func (r RTC_TCR) GetCIC() uint32 {
	return RTC_TCR_CIC.Decode(uint32(r))
}

func (r RTC_TCR) SetCIC(v uint32) RTC_TCR {
	return RTC_TCR(RTC_TCR_CIC.Insert(uint32(r), v))
}

func (r RTC_TCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TCR", Field: RTC_TCR_TCR},
		{Name: "CIR", Field: RTC_TCR_CIR},
		{Name: "TCV", Field: RTC_TCR_TCV},
		{Name: "CIC", Field: RTC_TCR_CIC},
	}
}

// RTC_CR is the control register.
type RTC_CR uint32

const (
	RTC_CR_SWR   mmio.Field = 1<<8 | 0
	RTC_CR_WPE   mmio.Field = 1<<8 | 1
	RTC_CR_SUP   mmio.Field = 1<<8 | 2
	RTC_CR_UM    mmio.Field = 1<<8 | 3
	RTC_CR_CPS   mmio.Field = 1<<8 | 5
	RTC_CR_LPOS  mmio.Field = 1<<8 | 7
	RTC_CR_OSCE  mmio.Field = 1<<8 | 8
	RTC_CR_CLKO  mmio.Field = 1<<8 | 9
	RTC_CR_SC16P mmio.Field = 1<<8 | 10
	RTC_CR_SC8P  mmio.Field = 1<<8 | 11
	RTC_CR_SC4P  mmio.Field = 1<<8 | 12
	RTC_CR_SC2P  mmio.Field = 1<<8 | 13
	RTC_CR_CPE   mmio.Field = 2<<8 | 24
)

func (r RTC_CR) GetSWR() bool {
	return RTC_CR_SWR.Bool(uint32(r))
}

func (r RTC_CR) SetSWR(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SWR.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetWPE() bool {
	return RTC_CR_WPE.Bool(uint32(r))
}

func (r RTC_CR) SetWPE(v bool) RTC_CR {
	return RTC_CR(RTC_CR_WPE.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetSUP() bool {
	return RTC_CR_SUP.Bool(uint32(r))
}

func (r RTC_CR) SetSUP(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SUP.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetUM() bool {
	return RTC_CR_UM.Bool(uint32(r))
}

func (r RTC_CR) SetUM(v bool) RTC_CR {
	return RTC_CR(RTC_CR_UM.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetCPS() bool {
	return RTC_CR_CPS.Bool(uint32(r))
}

func (r RTC_CR) SetCPS(v bool) RTC_CR {
	return RTC_CR(RTC_CR_CPS.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetLPOS() bool {
	return RTC_CR_LPOS.Bool(uint32(r))
}

func (r RTC_CR) SetLPOS(v bool) RTC_CR {
	return RTC_CR(RTC_CR_LPOS.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetOSCE() bool {
	return RTC_CR_OSCE.Bool(uint32(r))
}

func (r RTC_CR) SetOSCE(v bool) RTC_CR {
	return RTC_CR(RTC_CR_OSCE.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetCLKO() bool {
	return RTC_CR_CLKO.Bool(uint32(r))
}

func (r RTC_CR) SetCLKO(v bool) RTC_CR {
	return RTC_CR(RTC_CR_CLKO.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetSC16P() bool {
	return RTC_CR_SC16P.Bool(uint32(r))
}

func (r RTC_CR) SetSC16P(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SC16P.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetSC8P() bool {
	return RTC_CR_SC8P.Bool(uint32(r))
}

func (r RTC_CR) SetSC8P(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SC8P.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetSC4P() bool {
	return RTC_CR_SC4P.Bool(uint32(r))
}

func (r RTC_CR) SetSC4P(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SC4P.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetSC2P() bool {
	return RTC_CR_SC2P.Bool(uint32(r))
}

func (r RTC_CR) SetSC2P(v bool) RTC_CR {
	return RTC_CR(RTC_CR_SC2P.InsertBool(uint32(r), v))
}

func (r RTC_CR) GetCPE() uint32 {
	return RTC_CR_CPE.Decode(uint32(r))
}

func (r RTC_CR) SetCPE(v uint32) RTC_CR {
	return RTC_CR(RTC_CR_CPE.Insert(uint32(r), v))
}

func (r RTC_CR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SWR", Field: RTC_CR_SWR},
		{Name: "WPE", Field: RTC_CR_WPE},
		{Name: "SUP", Field: RTC_CR_SUP},
		{Name: "UM", Field: RTC_CR_UM},
		{Name: "CPS", Field: RTC_CR_CPS},
		{Name: "LPOS", Field: RTC_CR_LPOS},
		{Name: "OSCE", Field: RTC_CR_OSCE},
		{Name: "CLKO", Field: RTC_CR_CLKO},
		{Name: "SC16P", Field: RTC_CR_SC16P},
		{Name: "SC8P", Field: RTC_CR_SC8P},
		{Name: "SC4P", Field: RTC_CR_SC4P},
		{Name: "SC2P", Field: RTC_CR_SC2P},
		{Name: "CPE", Field: RTC_CR_CPE},
	}
}

// RTC_SR is the status register.
type RTC_SR uint32

const (
	RTC_SR_TIF mmio.Field = 1<<8 | 0
	RTC_SR_TOF mmio.Field = 1<<8 | 1
	RTC_SR_TAF mmio.Field = 1<<8 | 2
	RTC_SR_TCE mmio.Field = 1<<8 | 4
)

func (r RTC_SR) GetTIF() bool {
	return RTC_SR_TIF.Bool(uint32(r))
}

func (r RTC_SR) SetTIF(v bool) RTC_SR {
	return RTC_SR(RTC_SR_TIF.InsertBool(uint32(r), v))
}

func (r RTC_SR) GetTOF() bool {
	return RTC_SR_TOF.Bool(uint32(r))
}

func (r RTC_SR) SetTOF(v bool) RTC_SR {
	return RTC_SR(RTC_SR_TOF.InsertBool(uint32(r), v))
}

func (r RTC_SR) GetTAF() bool {
	return RTC_SR_TAF.Bool(uint32(r))
}

func (r RTC_SR) SetTAF(v bool) RTC_SR {
	return RTC_SR(RTC_SR_TAF.InsertBool(uint32(r), v))
}

func (r RTC_SR) GetTCE() bool {
	return RTC_SR_TCE.Bool(uint32(r))
}

func (r RTC_SR) SetTCE(v bool) RTC_SR {
	return RTC_SR(RTC_SR_TCE.InsertBool(uint32(r), v))
}

func (r RTC_SR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TIF", Field: RTC_SR_TIF},
		{Name: "TOF", Field: RTC_SR_TOF},
		{Name: "TAF", Field: RTC_SR_TAF},
		{Name: "TCE", Field: RTC_SR_TCE},
	}
}

// RTC_LR is the lock register.
type RTC_LR uint32

const (
	RTC_LR_TCL mmio.Field = 1<<8 | 3
	RTC_LR_CRL mmio.Field = 1<<8 | 4
	RTC_LR_SRL mmio.Field = 1<<8 | 5
	RTC_LR_LRL mmio.Field = 1<<8 | 6
)

func (r RTC_LR) GetTCL() bool {
	return RTC_LR_TCL.Bool(uint32(r))
}

func (r RTC_LR) SetTCL(v bool) RTC_LR {
	return RTC_LR(RTC_LR_TCL.InsertBool(uint32(r), v))
}

func (r RTC_LR) GetCRL() bool {
	return RTC_LR_CRL.Bool(uint32(r))
}

func (r RTC_LR) SetCRL(v bool) RTC_LR {
	return RTC_LR(RTC_LR_CRL.InsertBool(uint32(r), v))
}

func (r RTC_LR) GetSRL() bool {
	return RTC_LR_SRL.Bool(uint32(r))
}

func (r RTC_LR) SetSRL(v bool) RTC_LR {
	return RTC_LR(RTC_LR_SRL.InsertBool(uint32(r), v))
}

func (r RTC_LR) GetLRL() bool {
	return RTC_LR_LRL.Bool(uint32(r))
}

func (r RTC_LR) SetLRL(v bool) RTC_LR {
	return RTC_LR(RTC_LR_LRL.InsertBool(uint32(r), v))
}

func (r RTC_LR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TCL", Field: RTC_LR_TCL},
		{Name: "CRL", Field: RTC_LR_CRL},
		{Name: "SRL", Field: RTC_LR_SRL},
		{Name: "LRL", Field: RTC_LR_LRL},
	}
}

type RTC_IER uint32

const (
	RTC_IER_TIIE mmio.Field = 1<<8 | 0
	RTC_IER_TOIE mmio.Field = 1<<8 | 1
	RTC_IER_TAIE mmio.Field = 1<<8 | 2
	RTC_IER_TSIE mmio.Field = 1<<8 | 4
	RTC_IER_TSIC mmio.Field = 3<<8 | 16
)

func (r RTC_IER) GetTIIE() bool {
	return RTC_IER_TIIE.Bool(uint32(r))
}

func (r RTC_IER) SetTIIE(v bool) RTC_IER {
	return RTC_IER(RTC_IER_TIIE.InsertBool(uint32(r), v))
}

func (r RTC_IER) GetTOIE() bool {
	return RTC_IER_TOIE.Bool(uint32(r))
}

func (r RTC_IER) SetTOIE(v bool) RTC_IER {
	return RTC_IER(RTC_IER_TOIE.InsertBool(uint32(r), v))
}

func (r RTC_IER) GetTAIE() bool {
	return RTC_IER_TAIE.Bool(uint32(r))
}

func (r RTC_IER) SetTAIE(v bool) RTC_IER {
	return RTC_IER(RTC_IER_TAIE.InsertBool(uint32(r), v))
}

func (r RTC_IER) GetTSIE() bool {
	return RTC_IER_TSIE.Bool(uint32(r))
}

func (r RTC_IER) SetTSIE(v bool) RTC_IER {
	return RTC_IER(RTC_IER_TSIE.InsertBool(uint32(r), v))
}

func (r RTC_IER) GetTSIC() uint32 {
	return RTC_IER_TSIC.Decode(uint32(r))
}

func (r RTC_IER) SetTSIC(v uint32) RTC_IER {
	return RTC_IER(RTC_IER_TSIC.Insert(uint32(r), v))
}

func (r RTC_IER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TIIE", Field: RTC_IER_TIIE},
		{Name: "TOIE", Field: RTC_IER_TOIE},
		{Name: "TAIE", Field: RTC_IER_TAIE},
		{Name: "TSIE", Field: RTC_IER_TSIE},
		{Name: "TSIC", Field: RTC_IER_TSIC},
	}
}
