package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// WDOG_TYPE is the register block of the watchdog timer.
type WDOG_TYPE struct {
	CS    mmio.RW32[WDOG_CS]    `offset:"0x0" desc:"control and status"`
	CNT   mmio.RW32[WDOG_CNT]   `offset:"0x4" desc:"counter; writes are the unlock and refresh sequences"`
	TOVAL mmio.RW32[WDOG_TOVAL] `offset:"0x8" desc:"timeout value"`
	WIN   mmio.RW32[WDOG_WIN]   `offset:"0xC" desc:"window"`
}

const WDOG_SIZE = 0x10

var WDOG_BLOCK = layout.MustFromStruct("WDOG", reflect.TypeOf(WDOG_TYPE{}), WDOG_SIZE)

// WDOG_CS is the control and status register.
type WDOG_CS uint32

const (
	WDOG_CS_STOP    mmio.Field = 1<<8 | 0
	WDOG_CS_WAIT    mmio.Field = 1<<8 | 1
	WDOG_CS_DBG     mmio.Field = 1<<8 | 2
	WDOG_CS_TST     mmio.Field = 2<<8 | 3
	WDOG_CS_UPDATE  mmio.Field = 1<<8 | 5
	WDOG_CS_INT     mmio.Field = 1<<8 | 6
	WDOG_CS_EN      mmio.Field = 1<<8 | 7
	WDOG_CS_CLK     mmio.Field = 2<<8 | 8
	WDOG_CS_RCS     mmio.Field = 1<<8 | 10
	WDOG_CS_ULK     mmio.Field = 1<<8 | 11
	WDOG_CS_PRES    mmio.Field = 1<<8 | 12
	WDOG_CS_CMD32EN mmio.Field = 1<<8 | 13
	WDOG_CS_FLG     mmio.Field = 1<<8 | 14
	WDOG_CS_WIN     mmio.Field = 1<<8 | 15
)

type WDOG_CS_CLK_Value uint32

const (
	WDOG_CS_CLK_BUS    WDOG_CS_CLK_Value = 0
	WDOG_CS_CLK_LPO    WDOG_CS_CLK_Value = 1
	WDOG_CS_CLK_INTCLK WDOG_CS_CLK_Value = 2
	WDOG_CS_CLK_ERCLK  WDOG_CS_CLK_Value = 3
)

func (r WDOG_CS) GetSTOP() bool {
	return WDOG_CS_STOP.Bool(uint32(r))
}

func (r WDOG_CS) SetSTOP(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_STOP.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetWAIT() bool {
	return WDOG_CS_WAIT.Bool(uint32(r))
}

func (r WDOG_CS) SetWAIT(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_WAIT.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetDBG() bool {
	return WDOG_CS_DBG.Bool(uint32(r))
}

func (r WDOG_CS) SetDBG(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_DBG.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetTST() uint32 {
	return WDOG_CS_TST.Decode(uint32(r))
}

func (r WDOG_CS) SetTST(v uint32) WDOG_CS {
	return WDOG_CS(WDOG_CS_TST.Insert(uint32(r), v))
}

func (r WDOG_CS) GetUPDATE() bool {
	return WDOG_CS_UPDATE.Bool(uint32(r))
}

func (r WDOG_CS) SetUPDATE(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_UPDATE.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetINT() bool {
	return WDOG_CS_INT.Bool(uint32(r))
}

func (r WDOG_CS) SetINT(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_INT.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetEN() bool {
	return WDOG_CS_EN.Bool(uint32(r))
}

func (r WDOG_CS) SetEN(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_EN.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetCLK() WDOG_CS_CLK_Value {
	return WDOG_CS_CLK_Value(WDOG_CS_CLK.Decode(uint32(r)))
}

func (r WDOG_CS) SetCLK(v WDOG_CS_CLK_Value) WDOG_CS {
	return WDOG_CS(WDOG_CS_CLK.Insert(uint32(r), uint32(v)))
}

func (r WDOG_CS) GetRCS() bool {
	return WDOG_CS_RCS.Bool(uint32(r))
}

func (r WDOG_CS) SetRCS(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_RCS.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetULK() bool {
	return WDOG_CS_ULK.Bool(uint32(r))
}

func (r WDOG_CS) SetULK(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_ULK.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetPRES() bool {
	return WDOG_CS_PRES.Bool(uint32(r))
}

func (r WDOG_CS) SetPRES(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_PRES.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetCMD32EN() bool {
	return WDOG_CS_CMD32EN.Bool(uint32(r))
}

func (r WDOG_CS) SetCMD32EN(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_CMD32EN.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetFLG() bool {
	return WDOG_CS_FLG.Bool(uint32(r))
}

func (r WDOG_CS) SetFLG(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_FLG.InsertBool(uint32(r), v))
}

func (r WDOG_CS) GetWIN() bool {
	return WDOG_CS_WIN.Bool(uint32(r))
}

func (r WDOG_CS) SetWIN(v bool) WDOG_CS {
	return WDOG_CS(WDOG_CS_WIN.InsertBool(uint32(r), v))
}

func (r WDOG_CS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "STOP", Field: WDOG_CS_STOP},
		{Name: "WAIT", Field: WDOG_CS_WAIT},
		{Name: "DBG", Field: WDOG_CS_DBG},
		{Name: "TST", Field: WDOG_CS_TST},
		{Name: "UPDATE", Field: WDOG_CS_UPDATE},
		{Name: "INT", Field: WDOG_CS_INT},
		{Name: "EN", Field: WDOG_CS_EN},
		{Name: "CLK", Field: WDOG_CS_CLK, Values: []mmio.EnumValue{
			{Name: "BUS", Value: uint32(WDOG_CS_CLK_BUS)},
			{Name: "LPO", Value: uint32(WDOG_CS_CLK_LPO)},
			{Name: "INTCLK", Value: uint32(WDOG_CS_CLK_INTCLK)},
			{Name: "ERCLK", Value: uint32(WDOG_CS_CLK_ERCLK)},
		}},
		{Name: "RCS", Field: WDOG_CS_RCS},
		{Name: "ULK", Field: WDOG_CS_ULK},
		{Name: "PRES", Field: WDOG_CS_PRES},
		{Name: "CMD32EN", Field: WDOG_CS_CMD32EN},
		{Name: "FLG", Field: WDOG_CS_FLG},
		{Name: "WIN", Field: WDOG_CS_WIN},
	}
}

// WDOG_CNT is the counter register; writes are the unlock and refresh sequences.
type WDOG_CNT uint32

const (
	WDOG_CNT_CNTLOW  mmio.Field = 8<<8 | 0
	WDOG_CNT_CNTHIGH mmio.Field = 8<<8 | 8
)

func (r WDOG_CNT) GetCNTLOW() uint32 {
	return WDOG_CNT_CNTLOW.Decode(uint32(r))
}

func (r WDOG_CNT) SetCNTLOW(v uint32) WDOG_CNT {
	return WDOG_CNT(WDOG_CNT_CNTLOW.Insert(uint32(r), v))
}

func (r WDOG_CNT) GetCNTHIGH() uint32 {
	return WDOG_CNT_CNTHIGH.Decode(uint32(r))
}

func (r WDOG_CNT) SetCNTHIGH(v uint32) WDOG_CNT {
	return WDOG_CNT(WDOG_CNT_CNTHIGH.Insert(uint32(r), v))
}

func (r WDOG_CNT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CNTLOW", Field: WDOG_CNT_CNTLOW},
		{Name: "CNTHIGH", Field: WDOG_CNT_CNTHIGH},
	}
}

// WDOG_TOVAL is the timeout value register.
type WDOG_TOVAL uint32

const (
	WDOG_TOVAL_TOVALLOW  mmio.Field = 8<<8 | 0
	WDOG_TOVAL_TOVALHIGH mmio.Field = 8<<8 | 8
)

func (r WDOG_TOVAL) GetTOVALLOW() uint32 {
	return WDOG_TOVAL_TOVALLOW.Decode(uint32(r))
}

func (r WDOG_TOVAL) SetTOVALLOW(v uint32) WDOG_TOVAL {
	return WDOG_TOVAL(WDOG_TOVAL_TOVALLOW.Insert(uint32(r), v))
}

func (r WDOG_TOVAL) GetTOVALHIGH() uint32 {
	return WDOG_TOVAL_TOVALHIGH.Decode(uint32(r))
}

func (r WDOG_TOVAL) SetTOVALHIGH(v uint32) WDOG_TOVAL {
	return WDOG_TOVAL(WDOG_TOVAL_TOVALHIGH.Insert(uint32(r), v))
}

func (r WDOG_TOVAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TOVALLOW", Field: WDOG_TOVAL_TOVALLOW},
		{Name: "TOVALHIGH", Field: WDOG_TOVAL_TOVALHIGH},
	}
}

// WDOG_WIN is the window register.
type WDOG_WIN uint32

const (
	WDOG_WIN_WINLOW  mmio.Field = 8<<8 | 0
	WDOG_WIN_WINHIGH mmio.Field = 8<<8 | 8
)

func (r WDOG_WIN) GetWINLOW() uint32 {
	return WDOG_WIN_WINLOW.Decode(uint32(r))
}

func (r WDOG_WIN) SetWINLOW(v uint32) WDOG_WIN {
	return WDOG_WIN(WDOG_WIN_WINLOW.Insert(uint32(r), v))
}

func (r WDOG_WIN) GetWINHIGH() uint32 {
	return WDOG_WIN_WINHIGH.Decode(uint32(r))
}

func (r WDOG_WIN) SetWINHIGH(v uint32) WDOG_WIN {
	return WDOG_WIN(WDOG_WIN_WINHIGH.Insert(uint32(r), v))
}

func (r WDOG_WIN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WINLOW", Field: WDOG_WIN_WINLOW},
		{Name: "WINHIGH", Field: WDOG_WIN_WINHIGH},
	}
}
