package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// EMVSIM_TYPE is the register block of the EMV smart card interface.
type EMVSIM_TYPE struct {
	VER_ID     mmio.RO32[uint32]            `offset:"0x0" desc:"version ID"`
	PARAM      mmio.RO32[EMVSIM_PARAM]      `offset:"0x4"`
	CLKCFG     mmio.RW32[EMVSIM_CLKCFG]     `offset:"0x8" desc:"clock configuration"`
	DIVISOR    mmio.RW32[EMVSIM_DIVISOR]    `offset:"0xC" desc:"baud rate divisor"`
	CTRL       mmio.RW32[EMVSIM_CTRL]       `offset:"0x10" desc:"control"`
	INT_MASK   mmio.RW32[uint32]            `offset:"0x14" desc:"interrupt mask"`
	RX_THD     mmio.RW32[EMVSIM_RX_THD]     `offset:"0x18" desc:"receiver threshold"`
	TX_THD     mmio.RW32[EMVSIM_TX_THD]     `offset:"0x1C" desc:"transmitter threshold"`
	RX_STATUS  mmio.RW32[uint32]            `offset:"0x20" desc:"receive status; write one to clear"`
	TX_STATUS  mmio.RW32[uint32]            `offset:"0x24" desc:"transmit status; write one to clear"`
	PCSR       mmio.RW32[EMVSIM_PCSR]       `offset:"0x28" desc:"port control and status"`
	RX_BUF     mmio.RO32[EMVSIM_RX_BUF]     `offset:"0x2C" desc:"receive data read buffer"`
	TX_BUF     mmio.WO32[EMVSIM_TX_BUF]     `offset:"0x30" desc:"transmit data buffer"`
	TX_GETU    mmio.RW32[EMVSIM_TX_GETU]    `offset:"0x34" desc:"transmitter guard ETU"`
	CWT_VAL    mmio.RW32[EMVSIM_CWT_VAL]    `offset:"0x38" desc:"character wait time"`
	BWT_VAL    mmio.RW32[uint32]            `offset:"0x3C" desc:"block wait time"`
	BGT_VAL    mmio.RW32[EMVSIM_BGT_VAL]    `offset:"0x40" desc:"block guard time"`
	GPCNT0_VAL mmio.RW32[EMVSIM_GPCNT0_VAL] `offset:"0x44" desc:"general purpose counter 0 timeout"`
	GPCNT1_VAL mmio.RW32[EMVSIM_GPCNT1_VAL] `offset:"0x48" desc:"general purpose counter 1 timeout"`
}

const EMVSIM_SIZE = 0x4C

var EMVSIM_BLOCK = layout.MustFromStruct("EMVSIM", reflect.TypeOf(EMVSIM_TYPE{}), EMVSIM_SIZE)

type EMVSIM_PARAM uint32

const (
	EMVSIM_PARAM_RX_FIFO_DEPTH mmio.Field = 8<<8 | 0
	EMVSIM_PARAM_TX_FIFO_DEPTH mmio.Field = 8<<8 | 8
)

func (r EMVSIM_PARAM) GetRX_FIFO_DEPTH() uint32 {
	return EMVSIM_PARAM_RX_FIFO_DEPTH.Decode(uint32(r))
}

func (r EMVSIM_PARAM) GetTX_FIFO_DEPTH() uint32 {
	return EMVSIM_PARAM_TX_FIFO_DEPTH.Decode(uint32(r))
}

func (r EMVSIM_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RX_FIFO_DEPTH", Field: EMVSIM_PARAM_RX_FIFO_DEPTH},
		{Name: "TX_FIFO_DEPTH", Field: EMVSIM_PARAM_TX_FIFO_DEPTH},
	}
}

// EMVSIM_CLKCFG is the clock configuration register.
type EMVSIM_CLKCFG uint32

const (
	EMVSIM_CLKCFG_CLK_PRSC       mmio.Field = 8<<8 | 0
	EMVSIM_CLKCFG_GPCNT1_CLK_SEL mmio.Field = 2<<8 | 8
	EMVSIM_CLKCFG_GPCNT0_CLK_SEL mmio.Field = 2<<8 | 10
)

func (r EMVSIM_CLKCFG) GetCLK_PRSC() uint32 {
	return EMVSIM_CLKCFG_CLK_PRSC.Decode(uint32(r))
}

func (r EMVSIM_CLKCFG) SetCLK_PRSC(v uint32) EMVSIM_CLKCFG {
	return EMVSIM_CLKCFG(EMVSIM_CLKCFG_CLK_PRSC.Insert(uint32(r), v))
}

func (r EMVSIM_CLKCFG) GetGPCNT1_CLK_SEL() uint32 {
	return EMVSIM_CLKCFG_GPCNT1_CLK_SEL.Decode(uint32(r))
}

func (r EMVSIM_CLKCFG) SetGPCNT1_CLK_SEL(v uint32) EMVSIM_CLKCFG {
	return EMVSIM_CLKCFG(EMVSIM_CLKCFG_GPCNT1_CLK_SEL.Insert(uint32(r), v))
}

func (r EMVSIM_CLKCFG) GetGPCNT0_CLK_SEL() uint32 {
	return EMVSIM_CLKCFG_GPCNT0_CLK_SEL.Decode(uint32(r))
}

func (r EMVSIM_CLKCFG) SetGPCNT0_CLK_SEL(v uint32) EMVSIM_CLKCFG {
	return EMVSIM_CLKCFG(EMVSIM_CLKCFG_GPCNT0_CLK_SEL.Insert(uint32(r), v))
}

func (r EMVSIM_CLKCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLK_PRSC", Field: EMVSIM_CLKCFG_CLK_PRSC},
		{Name: "GPCNT1_CLK_SEL", Field: EMVSIM_CLKCFG_GPCNT1_CLK_SEL},
		{Name: "GPCNT0_CLK_SEL", Field: EMVSIM_CLKCFG_GPCNT0_CLK_SEL},
	}
}

// EMVSIM_DIVISOR is the baud rate divisor register.
type EMVSIM_DIVISOR uint32

const (
	EMVSIM_DIVISOR_DIVISOR_VALUE mmio.Field = 9<<8 | 0
)

func (r EMVSIM_DIVISOR) GetDIVISOR_VALUE() uint32 {
	return EMVSIM_DIVISOR_DIVISOR_VALUE.Decode(uint32(r))
}

func (r EMVSIM_DIVISOR) SetDIVISOR_VALUE(v uint32) EMVSIM_DIVISOR {
	return EMVSIM_DIVISOR(EMVSIM_DIVISOR_DIVISOR_VALUE.Insert(uint32(r), v))
}

func (r EMVSIM_DIVISOR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DIVISOR_VALUE", Field: EMVSIM_DIVISOR_DIVISOR_VALUE},
	}
}

// EMVSIM_CTRL is the control register.
type EMVSIM_CTRL uint32

const (
	EMVSIM_CTRL_IC           mmio.Field = 1<<8 | 0
	EMVSIM_CTRL_ICM          mmio.Field = 1<<8 | 1
	EMVSIM_CTRL_ANACK        mmio.Field = 1<<8 | 2
	EMVSIM_CTRL_ONACK        mmio.Field = 1<<8 | 3
	EMVSIM_CTRL_FLSH_RX      mmio.Field = 1<<8 | 8
	EMVSIM_CTRL_FLSH_TX      mmio.Field = 1<<8 | 9
	EMVSIM_CTRL_SW_RST       mmio.Field = 1<<8 | 10
	EMVSIM_CTRL_KILL_CLOCKS  mmio.Field = 1<<8 | 11
	EMVSIM_CTRL_DOZE_EN      mmio.Field = 1<<8 | 12
	EMVSIM_CTRL_STOP_EN      mmio.Field = 1<<8 | 13
	EMVSIM_CTRL_RCV_EN       mmio.Field = 1<<8 | 16
	EMVSIM_CTRL_XMT_EN       mmio.Field = 1<<8 | 17
	EMVSIM_CTRL_RCVR_11      mmio.Field = 1<<8 | 18
	EMVSIM_CTRL_RX_DMA_EN    mmio.Field = 1<<8 | 19
	EMVSIM_CTRL_TX_DMA_EN    mmio.Field = 1<<8 | 20
	EMVSIM_CTRL_INV_CRC_VAL  mmio.Field = 1<<8 | 24
	EMVSIM_CTRL_CRC_OUT_FLIP mmio.Field = 1<<8 | 25
	EMVSIM_CTRL_CRC_IN_FLIP  mmio.Field = 1<<8 | 26
	EMVSIM_CTRL_CWT_EN       mmio.Field = 1<<8 | 27
	EMVSIM_CTRL_LRC_EN       mmio.Field = 1<<8 | 28
	EMVSIM_CTRL_CRC_EN       mmio.Field = 1<<8 | 29
	EMVSIM_CTRL_XMT_CRC_LRC  mmio.Field = 1<<8 | 30
	EMVSIM_CTRL_BWT_EN       mmio.Field = 1<<8 | 31
)

func (r EMVSIM_CTRL) GetIC() bool {
	return EMVSIM_CTRL_IC.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetIC(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_IC.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetICM() bool {
	return EMVSIM_CTRL_ICM.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetICM(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_ICM.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetANACK() bool {
	return EMVSIM_CTRL_ANACK.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetANACK(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_ANACK.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetONACK() bool {
	return EMVSIM_CTRL_ONACK.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetONACK(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_ONACK.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetFLSH_RX() bool {
	return EMVSIM_CTRL_FLSH_RX.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetFLSH_RX(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_FLSH_RX.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetFLSH_TX() bool {
	return EMVSIM_CTRL_FLSH_TX.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetFLSH_TX(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_FLSH_TX.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetSW_RST() bool {
	return EMVSIM_CTRL_SW_RST.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetSW_RST(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_SW_RST.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetKILL_CLOCKS() bool {
	return EMVSIM_CTRL_KILL_CLOCKS.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetKILL_CLOCKS(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_KILL_CLOCKS.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetDOZE_EN() bool {
	return EMVSIM_CTRL_DOZE_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetDOZE_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_DOZE_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetSTOP_EN() bool {
	return EMVSIM_CTRL_STOP_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetSTOP_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_STOP_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetRCV_EN() bool {
	return EMVSIM_CTRL_RCV_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetRCV_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_RCV_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetXMT_EN() bool {
	return EMVSIM_CTRL_XMT_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetXMT_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_XMT_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetRCVR_11() bool {
	return EMVSIM_CTRL_RCVR_11.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetRCVR_11(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_RCVR_11.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetRX_DMA_EN() bool {
	return EMVSIM_CTRL_RX_DMA_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetRX_DMA_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_RX_DMA_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetTX_DMA_EN() bool {
	return EMVSIM_CTRL_TX_DMA_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetTX_DMA_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_TX_DMA_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetINV_CRC_VAL() bool {
	return EMVSIM_CTRL_INV_CRC_VAL.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetINV_CRC_VAL(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_INV_CRC_VAL.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetCRC_OUT_FLIP() bool {
	return EMVSIM_CTRL_CRC_OUT_FLIP.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetCRC_OUT_FLIP(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_CRC_OUT_FLIP.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetCRC_IN_FLIP() bool {
	return EMVSIM_CTRL_CRC_IN_FLIP.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetCRC_IN_FLIP(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_CRC_IN_FLIP.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetCWT_EN() bool {
	return EMVSIM_CTRL_CWT_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetCWT_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_CWT_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetLRC_EN() bool {
	return EMVSIM_CTRL_LRC_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetLRC_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_LRC_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetCRC_EN() bool {
	return EMVSIM_CTRL_CRC_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetCRC_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_CRC_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetXMT_CRC_LRC() bool {
	return EMVSIM_CTRL_XMT_CRC_LRC.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetXMT_CRC_LRC(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_XMT_CRC_LRC.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) GetBWT_EN() bool {
	return EMVSIM_CTRL_BWT_EN.Bool(uint32(r))
}

func (r EMVSIM_CTRL) SetBWT_EN(v bool) EMVSIM_CTRL {
	return EMVSIM_CTRL(EMVSIM_CTRL_BWT_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "IC", Field: EMVSIM_CTRL_IC},
		{Name: "ICM", Field: EMVSIM_CTRL_ICM},
		{Name: "ANACK", Field: EMVSIM_CTRL_ANACK},
		{Name: "ONACK", Field: EMVSIM_CTRL_ONACK},
		{Name: "FLSH_RX", Field: EMVSIM_CTRL_FLSH_RX},
		{Name: "FLSH_TX", Field: EMVSIM_CTRL_FLSH_TX},
		{Name: "SW_RST", Field: EMVSIM_CTRL_SW_RST},
		{Name: "KILL_CLOCKS", Field: EMVSIM_CTRL_KILL_CLOCKS},
		{Name: "DOZE_EN", Field: EMVSIM_CTRL_DOZE_EN},
		{Name: "STOP_EN", Field: EMVSIM_CTRL_STOP_EN},
		{Name: "RCV_EN", Field: EMVSIM_CTRL_RCV_EN},
		{Name: "XMT_EN", Field: EMVSIM_CTRL_XMT_EN},
		{Name: "RCVR_11", Field: EMVSIM_CTRL_RCVR_11},
		{Name: "RX_DMA_EN", Field: EMVSIM_CTRL_RX_DMA_EN},
		{Name: "TX_DMA_EN", Field: EMVSIM_CTRL_TX_DMA_EN},
		{Name: "INV_CRC_VAL", Field: EMVSIM_CTRL_INV_CRC_VAL},
		{Name: "CRC_OUT_FLIP", Field: EMVSIM_CTRL_CRC_OUT_FLIP},
		{Name: "CRC_IN_FLIP", Field: EMVSIM_CTRL_CRC_IN_FLIP},
		{Name: "CWT_EN", Field: EMVSIM_CTRL_CWT_EN},
		{Name: "LRC_EN", Field: EMVSIM_CTRL_LRC_EN},
		{Name: "CRC_EN", Field: EMVSIM_CTRL_CRC_EN},
		{Name: "XMT_CRC_LRC", Field: EMVSIM_CTRL_XMT_CRC_LRC},
		{Name: "BWT_EN", Field: EMVSIM_CTRL_BWT_EN},
	}
}

// EMVSIM_RX_THD is the receiver threshold register.
type EMVSIM_RX_THD uint32

const (
	EMVSIM_RX_THD_RDT      mmio.Field = 4<<8 | 0
	EMVSIM_RX_THD_RNCK_THD mmio.Field = 4<<8 | 8
)

func (r EMVSIM_RX_THD) GetRDT() uint32 {
	return EMVSIM_RX_THD_RDT.Decode(uint32(r))
}

func (r EMVSIM_RX_THD) SetRDT(v uint32) EMVSIM_RX_THD {
	return EMVSIM_RX_THD(EMVSIM_RX_THD_RDT.Insert(uint32(r), v))
}

func (r EMVSIM_RX_THD) GetRNCK_THD() uint32 {
	return EMVSIM_RX_THD_RNCK_THD.Decode(uint32(r))
}

func (r EMVSIM_RX_THD) SetRNCK_THD(v uint32) EMVSIM_RX_THD {
	return EMVSIM_RX_THD(EMVSIM_RX_THD_RNCK_THD.Insert(uint32(r), v))
}

func (r EMVSIM_RX_THD) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RDT", Field: EMVSIM_RX_THD_RDT},
		{Name: "RNCK_THD", Field: EMVSIM_RX_THD_RNCK_THD},
	}
}

// EMVSIM_TX_THD is the transmitter threshold register.
type EMVSIM_TX_THD uint32

const (
	EMVSIM_TX_THD_TDT      mmio.Field = 4<<8 | 0
	EMVSIM_TX_THD_TNCK_THD mmio.Field = 4<<8 | 8
)

func (r EMVSIM_TX_THD) GetTDT() uint32 {
	return EMVSIM_TX_THD_TDT.Decode(uint32(r))
}

func (r EMVSIM_TX_THD) SetTDT(v uint32) EMVSIM_TX_THD {
	return EMVSIM_TX_THD(EMVSIM_TX_THD_TDT.Insert(uint32(r), v))
}

func (r EMVSIM_TX_THD) GetTNCK_THD() uint32 {
	return EMVSIM_TX_THD_TNCK_THD.Decode(uint32(r))
}

func (r EMVSIM_TX_THD) SetTNCK_THD(v uint32) EMVSIM_TX_THD {
	return EMVSIM_TX_THD(EMVSIM_TX_THD_TNCK_THD.Insert(uint32(r), v))
}

func (r EMVSIM_TX_THD) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDT", Field: EMVSIM_TX_THD_TDT},
		{Name: "TNCK_THD", Field: EMVSIM_TX_THD_TNCK_THD},
	}
}

// EMVSIM_PCSR is the port control and status register.
type EMVSIM_PCSR uint32

const (
	EMVSIM_PCSR_SAPD    mmio.Field = 1<<8 | 0
	EMVSIM_PCSR_SVCC_EN mmio.Field = 1<<8 | 1
	EMVSIM_PCSR_VCCENP  mmio.Field = 1<<8 | 2
	EMVSIM_PCSR_SRST    mmio.Field = 1<<8 | 3
	EMVSIM_PCSR_SCEN    mmio.Field = 1<<8 | 4
	EMVSIM_PCSR_SCSP    mmio.Field = 1<<8 | 5
	EMVSIM_PCSR_SPD     mmio.Field = 1<<8 | 7
	EMVSIM_PCSR_SPDIM   mmio.Field = 1<<8 | 24
	EMVSIM_PCSR_SPDIF   mmio.Field = 1<<8 | 25
	EMVSIM_PCSR_SPDP    mmio.Field = 1<<8 | 26
	EMVSIM_PCSR_SPDES   mmio.Field = 1<<8 | 27
)

func (r EMVSIM_PCSR) GetSAPD() bool {
	return EMVSIM_PCSR_SAPD.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSAPD(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SAPD.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSVCC_EN() bool {
	return EMVSIM_PCSR_SVCC_EN.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSVCC_EN(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SVCC_EN.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetVCCENP() bool {
	return EMVSIM_PCSR_VCCENP.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetVCCENP(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_VCCENP.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSRST() bool {
	return EMVSIM_PCSR_SRST.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSRST(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SRST.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSCEN() bool {
	return EMVSIM_PCSR_SCEN.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSCEN(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SCEN.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSCSP() bool {
	return EMVSIM_PCSR_SCSP.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSCSP(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SCSP.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSPD() bool {
	return EMVSIM_PCSR_SPD.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSPD(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SPD.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSPDIM() bool {
	return EMVSIM_PCSR_SPDIM.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSPDIM(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SPDIM.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSPDIF() bool {
	return EMVSIM_PCSR_SPDIF.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSPDIF(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SPDIF.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSPDP() bool {
	return EMVSIM_PCSR_SPDP.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSPDP(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SPDP.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) GetSPDES() bool {
	return EMVSIM_PCSR_SPDES.Bool(uint32(r))
}

func (r EMVSIM_PCSR) SetSPDES(v bool) EMVSIM_PCSR {
	return EMVSIM_PCSR(EMVSIM_PCSR_SPDES.InsertBool(uint32(r), v))
}

func (r EMVSIM_PCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SAPD", Field: EMVSIM_PCSR_SAPD},
		{Name: "SVCC_EN", Field: EMVSIM_PCSR_SVCC_EN},
		{Name: "VCCENP", Field: EMVSIM_PCSR_VCCENP},
		{Name: "SRST", Field: EMVSIM_PCSR_SRST},
		{Name: "SCEN", Field: EMVSIM_PCSR_SCEN},
		{Name: "SCSP", Field: EMVSIM_PCSR_SCSP},
		{Name: "SPD", Field: EMVSIM_PCSR_SPD},
		{Name: "SPDIM", Field: EMVSIM_PCSR_SPDIM},
		{Name: "SPDIF", Field: EMVSIM_PCSR_SPDIF},
		{Name: "SPDP", Field: EMVSIM_PCSR_SPDP},
		{Name: "SPDES", Field: EMVSIM_PCSR_SPDES},
	}
}

// EMVSIM_RX_BUF is the receive data read buffer register.
type EMVSIM_RX_BUF uint32

const (
	EMVSIM_RX_BUF_RX_BYTE mmio.Field = 8<<8 | 0
)

func (r EMVSIM_RX_BUF) GetRX_BYTE() uint32 {
	return EMVSIM_RX_BUF_RX_BYTE.Decode(uint32(r))
}

func (r EMVSIM_RX_BUF) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RX_BYTE", Field: EMVSIM_RX_BUF_RX_BYTE},
	}
}

// EMVSIM_TX_BUF is the transmit data buffer register.
type EMVSIM_TX_BUF uint32

const (
	EMVSIM_TX_BUF_TX_BYTE mmio.Field = 8<<8 | 0
)

func (r EMVSIM_TX_BUF) SetTX_BYTE(v uint32) EMVSIM_TX_BUF {
	return EMVSIM_TX_BUF(EMVSIM_TX_BUF_TX_BYTE.Insert(uint32(r), v))
}

func (r EMVSIM_TX_BUF) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TX_BYTE", Field: EMVSIM_TX_BUF_TX_BYTE},
	}
}

// EMVSIM_TX_GETU is the transmitter guard ETU register.
type EMVSIM_TX_GETU uint32

const (
	EMVSIM_TX_GETU_GETU mmio.Field = 8<<8 | 0
)

func (r EMVSIM_TX_GETU) GetGETU() uint32 {
	return EMVSIM_TX_GETU_GETU.Decode(uint32(r))
}

func (r EMVSIM_TX_GETU) SetGETU(v uint32) EMVSIM_TX_GETU {
	return EMVSIM_TX_GETU(EMVSIM_TX_GETU_GETU.Insert(uint32(r), v))
}

func (r EMVSIM_TX_GETU) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GETU", Field: EMVSIM_TX_GETU_GETU},
	}
}

// EMVSIM_CWT_VAL is the character wait time register.
type EMVSIM_CWT_VAL uint32

const (
	EMVSIM_CWT_VAL_CWT mmio.Field = 16<<8 | 0
)

func (r EMVSIM_CWT_VAL) GetCWT() uint32 {
	return EMVSIM_CWT_VAL_CWT.Decode(uint32(r))
}

func (r EMVSIM_CWT_VAL) SetCWT(v uint32) EMVSIM_CWT_VAL {
	return EMVSIM_CWT_VAL(EMVSIM_CWT_VAL_CWT.Insert(uint32(r), v))
}

func (r EMVSIM_CWT_VAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CWT", Field: EMVSIM_CWT_VAL_CWT},
	}
}

// EMVSIM_BGT_VAL is the block guard time register.
type EMVSIM_BGT_VAL uint32

const (
	EMVSIM_BGT_VAL_BGT mmio.Field = 16<<8 | 0
)

func (r EMVSIM_BGT_VAL) GetBGT() uint32 {
	return EMVSIM_BGT_VAL_BGT.Decode(uint32(r))
}

func (r EMVSIM_BGT_VAL) SetBGT(v uint32) EMVSIM_BGT_VAL {
	return EMVSIM_BGT_VAL(EMVSIM_BGT_VAL_BGT.Insert(uint32(r), v))
}

func (r EMVSIM_BGT_VAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BGT", Field: EMVSIM_BGT_VAL_BGT},
	}
}

// EMVSIM_GPCNT0_VAL is the general purpose counter 0 timeout register.
type EMVSIM_GPCNT0_VAL uint32

const (
	EMVSIM_GPCNT0_VAL_GPCNT0 mmio.Field = 16<<8 | 0
)

func (r EMVSIM_GPCNT0_VAL) GetGPCNT0() uint32 {
	return EMVSIM_GPCNT0_VAL_GPCNT0.Decode(uint32(r))
}

func (r EMVSIM_GPCNT0_VAL) SetGPCNT0(v uint32) EMVSIM_GPCNT0_VAL {
	return EMVSIM_GPCNT0_VAL(EMVSIM_GPCNT0_VAL_GPCNT0.Insert(uint32(r), v))
}

func (r EMVSIM_GPCNT0_VAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GPCNT0", Field: EMVSIM_GPCNT0_VAL_GPCNT0},
	}
}

// EMVSIM_GPCNT1_VAL is the general purpose counter 1 timeout register.
type EMVSIM_GPCNT1_VAL uint32

const (
	EMVSIM_GPCNT1_VAL_GPCNT1 mmio.Field = 16<<8 | 0
)

func (r EMVSIM_GPCNT1_VAL) GetGPCNT1() uint32 {
	return EMVSIM_GPCNT1_VAL_GPCNT1.Decode(uint32(r))
}

func (r EMVSIM_GPCNT1_VAL) SetGPCNT1(v uint32) EMVSIM_GPCNT1_VAL {
	return EMVSIM_GPCNT1_VAL(EMVSIM_GPCNT1_VAL_GPCNT1.Insert(uint32(r), v))
}

func (r EMVSIM_GPCNT1_VAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GPCNT1", Field: EMVSIM_GPCNT1_VAL_GPCNT1},
	}
}
