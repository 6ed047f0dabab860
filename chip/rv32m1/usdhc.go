package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// USDHC_TYPE is the register block of the SD host controller.
type USDHC_TYPE struct {
	DS_ADDR              mmio.RW32[uint32]            `offset:"0x0" desc:"DMA system address"`
	BLK_ATT              mmio.RW32[USDHC_BLK_ATT]     `offset:"0x4" desc:"block attributes"`
	CMD_ARG              mmio.RW32[uint32]            `offset:"0x8" desc:"command argument"`
	CMD_XFR_TYP          mmio.RW32[USDHC_CMD_XFR_TYP] `offset:"0xC" desc:"command transfer type; writing it issues the command"`
	CMD_RSP              [4]mmio.RO32[uint32]         `offset:"0x10" desc:"command response"`
	DATA_BUFF_ACC_PORT   mmio.RW32[uint32]            `offset:"0x20" desc:"data buffer access port"`
	PRES_STATE           mmio.RO32[USDHC_PRES_STATE]  `offset:"0x24" desc:"present state"`
	PROT_CTRL            mmio.RW32[USDHC_PROT_CTRL]   `offset:"0x28" desc:"protocol control"`
	SYS_CTRL             mmio.RW32[USDHC_SYS_CTRL]    `offset:"0x2C" desc:"system control"`
	INT_STATUS           mmio.RW32[USDHC_INT_STATUS]  `offset:"0x30" desc:"interrupt status; write one to clear"`
	INT_STATUS_EN        mmio.RW32[USDHC_INT_STATUS]  `offset:"0x34" desc:"interrupt status enable"`
	INT_SIGNAL_EN        mmio.RW32[USDHC_INT_STATUS]  `offset:"0x38" desc:"interrupt signal enable"`
	AUTOCMD12_ERR_STATUS mmio.RO32[uint32]            `offset:"0x3C"`
	HOST_CTRL_CAP        mmio.RO32[uint32]            `offset:"0x40" desc:"host controller capabilities"`
	WTMK_LVL             mmio.RW32[USDHC_WTMK_LVL]    `offset:"0x44" desc:"watermark level"`
	MIX_CTRL             mmio.RW32[USDHC_MIX_CTRL]    `offset:"0x48" desc:"mixer control"`
	_                    [4]byte
	FORCE_EVENT          mmio.WO32[uint32] `offset:"0x50"`
	ADMA_ERR_STATUS      mmio.RO32[uint32] `offset:"0x54"`
	ADMA_SYS_ADDR        mmio.RW32[uint32] `offset:"0x58"`
	_                    [4]byte
	DLL_CTRL             mmio.RW32[uint32] `offset:"0x60"`
	DLL_STATUS           mmio.RO32[uint32] `offset:"0x64"`
	CLK_TUNE_CTRL_STATUS mmio.RW32[uint32] `offset:"0x68"`
	_                    [84]byte
	VEND_SPEC            mmio.RW32[uint32] `offset:"0xC0" desc:"vendor specific"`
	MMC_BOOT             mmio.RW32[uint32] `offset:"0xC4"`
	VEND_SPEC2           mmio.RW32[uint32] `offset:"0xC8"`
	TUNING_CTRL          mmio.RW32[uint32] `offset:"0xCC"`
}

const USDHC_SIZE = 0xD0

var USDHC_BLOCK = layout.MustFromStruct("USDHC", reflect.TypeOf(USDHC_TYPE{}), USDHC_SIZE)

// USDHC_BLK_ATT is the block attributes register.
type USDHC_BLK_ATT uint32

const (
	USDHC_BLK_ATT_BLKSIZE mmio.Field = 13<<8 | 0
	USDHC_BLK_ATT_BLKCNT  mmio.Field = 16<<8 | 16
)

func (r USDHC_BLK_ATT) GetBLKSIZE() uint32 {
	return USDHC_BLK_ATT_BLKSIZE.Decode(uint32(r))
}

func (r USDHC_BLK_ATT) SetBLKSIZE(v uint32) USDHC_BLK_ATT {
	return USDHC_BLK_ATT(USDHC_BLK_ATT_BLKSIZE.Insert(uint32(r), v))
}

func (r USDHC_BLK_ATT) GetBLKCNT() uint32 {
	return USDHC_BLK_ATT_BLKCNT.Decode(uint32(r))
}

func (r USDHC_BLK_ATT) SetBLKCNT(v uint32) USDHC_BLK_ATT {
	return USDHC_BLK_ATT(USDHC_BLK_ATT_BLKCNT.Insert(uint32(r), v))
}

func (r USDHC_BLK_ATT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BLKSIZE", Field: USDHC_BLK_ATT_BLKSIZE},
		{Name: "BLKCNT", Field: USDHC_BLK_ATT_BLKCNT},
	}
}

// USDHC_CMD_XFR_TYP is the command transfer type register; writing it issues the command.
type USDHC_CMD_XFR_TYP uint32

const (
	USDHC_CMD_XFR_TYP_RSPTYP mmio.Field = 2<<8 | 16
	USDHC_CMD_XFR_TYP_CCCEN  mmio.Field = 1<<8 | 19
	USDHC_CMD_XFR_TYP_CICEN  mmio.Field = 1<<8 | 20
	USDHC_CMD_XFR_TYP_DPSEL  mmio.Field = 1<<8 | 21
	USDHC_CMD_XFR_TYP_CMDTYP mmio.Field = 2<<8 | 22
	USDHC_CMD_XFR_TYP_CMDINX mmio.Field = 6<<8 | 24
)

type USDHC_CMD_XFR_TYP_RSPTYP_Value uint32

const (
	USDHC_CMD_XFR_TYP_RSPTYP_NONE        USDHC_CMD_XFR_TYP_RSPTYP_Value = 0
	USDHC_CMD_XFR_TYP_RSPTYP_LEN_136     USDHC_CMD_XFR_TYP_RSPTYP_Value = 1
	USDHC_CMD_XFR_TYP_RSPTYP_LEN_48      USDHC_CMD_XFR_TYP_RSPTYP_Value = 2
	USDHC_CMD_XFR_TYP_RSPTYP_LEN_48_BUSY USDHC_CMD_XFR_TYP_RSPTYP_Value = 3
)

func (r USDHC_CMD_XFR_TYP) GetRSPTYP() USDHC_CMD_XFR_TYP_RSPTYP_Value {
	return USDHC_CMD_XFR_TYP_RSPTYP_Value(USDHC_CMD_XFR_TYP_RSPTYP.Decode(uint32(r)))
}

func (r USDHC_CMD_XFR_TYP) SetRSPTYP(v USDHC_CMD_XFR_TYP_RSPTYP_Value) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_RSPTYP.Insert(uint32(r), uint32(v)))
}

func (r USDHC_CMD_XFR_TYP) GetCCCEN() bool {
	return USDHC_CMD_XFR_TYP_CCCEN.Bool(uint32(r))
}

func (r USDHC_CMD_XFR_TYP) SetCCCEN(v bool) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_CCCEN.InsertBool(uint32(r), v))
}

func (r USDHC_CMD_XFR_TYP) GetCICEN() bool {
	return USDHC_CMD_XFR_TYP_CICEN.Bool(uint32(r))
}

func (r USDHC_CMD_XFR_TYP) SetCICEN(v bool) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_CICEN.InsertBool(uint32(r), v))
}

func (r USDHC_CMD_XFR_TYP) GetDPSEL() bool {
	return USDHC_CMD_XFR_TYP_DPSEL.Bool(uint32(r))
}

func (r USDHC_CMD_XFR_TYP) SetDPSEL(v bool) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_DPSEL.InsertBool(uint32(r), v))
}

func (r USDHC_CMD_XFR_TYP) GetCMDTYP() uint32 {
	return USDHC_CMD_XFR_TYP_CMDTYP.Decode(uint32(r))
}

func (r USDHC_CMD_XFR_TYP) SetCMDTYP(v uint32) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_CMDTYP.Insert(uint32(r), v))
}

func (r USDHC_CMD_XFR_TYP) GetCMDINX() uint32 {
	return USDHC_CMD_XFR_TYP_CMDINX.Decode(uint32(r))
}

func (r USDHC_CMD_XFR_TYP) SetCMDINX(v uint32) USDHC_CMD_XFR_TYP {
	return USDHC_CMD_XFR_TYP(USDHC_CMD_XFR_TYP_CMDINX.Insert(uint32(r), v))
}

func (r USDHC_CMD_XFR_TYP) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RSPTYP", Field: USDHC_CMD_XFR_TYP_RSPTYP, Values: []mmio.EnumValue{
			{Name: "NONE", Value: uint32(USDHC_CMD_XFR_TYP_RSPTYP_NONE)},
			{Name: "LEN_136", Value: uint32(USDHC_CMD_XFR_TYP_RSPTYP_LEN_136)},
			{Name: "LEN_48", Value: uint32(USDHC_CMD_XFR_TYP_RSPTYP_LEN_48)},
			{Name: "LEN_48_BUSY", Value: uint32(USDHC_CMD_XFR_TYP_RSPTYP_LEN_48_BUSY)},
		}},
		{Name: "CCCEN", Field: USDHC_CMD_XFR_TYP_CCCEN},
		{Name: "CICEN", Field: USDHC_CMD_XFR_TYP_CICEN},
		{Name: "DPSEL", Field: USDHC_CMD_XFR_TYP_DPSEL},
		{Name: "CMDTYP", Field: USDHC_CMD_XFR_TYP_CMDTYP},
		{Name: "CMDINX", Field: USDHC_CMD_XFR_TYP_CMDINX},
	}
}

// USDHC_PRES_STATE is the present state register.
type USDHC_PRES_STATE uint32

const (
	USDHC_PRES_STATE_CIHB   mmio.Field = 1<<8 | 0
	USDHC_PRES_STATE_CDIHB  mmio.Field = 1<<8 | 1
	USDHC_PRES_STATE_DLA    mmio.Field = 1<<8 | 2
	USDHC_PRES_STATE_SDSTB  mmio.Field = 1<<8 | 3
	USDHC_PRES_STATE_IPGOFF mmio.Field = 1<<8 | 4
	USDHC_PRES_STATE_HCKOFF mmio.Field = 1<<8 | 5
	USDHC_PRES_STATE_PEROFF mmio.Field = 1<<8 | 6
	USDHC_PRES_STATE_SDOFF  mmio.Field = 1<<8 | 7
	USDHC_PRES_STATE_WTA    mmio.Field = 1<<8 | 8
	USDHC_PRES_STATE_RTA    mmio.Field = 1<<8 | 9
	USDHC_PRES_STATE_BWEN   mmio.Field = 1<<8 | 10
	USDHC_PRES_STATE_BREN   mmio.Field = 1<<8 | 11
	USDHC_PRES_STATE_RTR    mmio.Field = 1<<8 | 12
	USDHC_PRES_STATE_TSCD   mmio.Field = 1<<8 | 15
	USDHC_PRES_STATE_CINST  mmio.Field = 1<<8 | 16
	USDHC_PRES_STATE_CDPL   mmio.Field = 1<<8 | 18
	USDHC_PRES_STATE_WPSPL  mmio.Field = 1<<8 | 19
	USDHC_PRES_STATE_CLSL   mmio.Field = 1<<8 | 23
	USDHC_PRES_STATE_DLSL   mmio.Field = 8<<8 | 24
)

func (r USDHC_PRES_STATE) GetCIHB() bool {
	return USDHC_PRES_STATE_CIHB.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetCDIHB() bool {
	return USDHC_PRES_STATE_CDIHB.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetDLA() bool {
	return USDHC_PRES_STATE_DLA.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetSDSTB() bool {
	return USDHC_PRES_STATE_SDSTB.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetIPGOFF() bool {
	return USDHC_PRES_STATE_IPGOFF.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetHCKOFF() bool {
	return USDHC_PRES_STATE_HCKOFF.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetPEROFF() bool {
	return USDHC_PRES_STATE_PEROFF.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetSDOFF() bool {
	return USDHC_PRES_STATE_SDOFF.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetWTA() bool {
	return USDHC_PRES_STATE_WTA.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetRTA() bool {
	return USDHC_PRES_STATE_RTA.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetBWEN() bool {
	return USDHC_PRES_STATE_BWEN.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetBREN() bool {
	return USDHC_PRES_STATE_BREN.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetRTR() bool {
	return USDHC_PRES_STATE_RTR.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetTSCD() bool {
	return USDHC_PRES_STATE_TSCD.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetCINST() bool {
	return USDHC_PRES_STATE_CINST.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetCDPL() bool {
	return USDHC_PRES_STATE_CDPL.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetWPSPL() bool {
	return USDHC_PRES_STATE_WPSPL.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetCLSL() bool {
	return USDHC_PRES_STATE_CLSL.Bool(uint32(r))
}

func (r USDHC_PRES_STATE) GetDLSL() uint32 {
	return USDHC_PRES_STATE_DLSL.Decode(uint32(r))
}

func (r USDHC_PRES_STATE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CIHB", Field: USDHC_PRES_STATE_CIHB},
		{Name: "CDIHB", Field: USDHC_PRES_STATE_CDIHB},
		{Name: "DLA", Field: USDHC_PRES_STATE_DLA},
		{Name: "SDSTB", Field: USDHC_PRES_STATE_SDSTB},
		{Name: "IPGOFF", Field: USDHC_PRES_STATE_IPGOFF},
		{Name: "HCKOFF", Field: USDHC_PRES_STATE_HCKOFF},
		{Name: "PEROFF", Field: USDHC_PRES_STATE_PEROFF},
		{Name: "SDOFF", Field: USDHC_PRES_STATE_SDOFF},
		{Name: "WTA", Field: USDHC_PRES_STATE_WTA},
		{Name: "RTA", Field: USDHC_PRES_STATE_RTA},
		{Name: "BWEN", Field: USDHC_PRES_STATE_BWEN},
		{Name: "BREN", Field: USDHC_PRES_STATE_BREN},
		{Name: "RTR", Field: USDHC_PRES_STATE_RTR},
		{Name: "TSCD", Field: USDHC_PRES_STATE_TSCD},
		{Name: "CINST", Field: USDHC_PRES_STATE_CINST},
		{Name: "CDPL", Field: USDHC_PRES_STATE_CDPL},
		{Name: "WPSPL", Field: USDHC_PRES_STATE_WPSPL},
		{Name: "CLSL", Field: USDHC_PRES_STATE_CLSL},
		{Name: "DLSL", Field: USDHC_PRES_STATE_DLSL},
	}
}

// USDHC_PROT_CTRL is the protocol control register.
type USDHC_PROT_CTRL uint32

const (
	USDHC_PROT_CTRL_LCTL             mmio.Field = 1<<8 | 0
	USDHC_PROT_CTRL_DTW              mmio.Field = 2<<8 | 1
	USDHC_PROT_CTRL_D3CD             mmio.Field = 1<<8 | 3
	USDHC_PROT_CTRL_EMODE            mmio.Field = 2<<8 | 4
	USDHC_PROT_CTRL_CDTL             mmio.Field = 1<<8 | 6
	USDHC_PROT_CTRL_CDSS             mmio.Field = 1<<8 | 7
	USDHC_PROT_CTRL_DMASEL           mmio.Field = 2<<8 | 8
	USDHC_PROT_CTRL_SABGREQ          mmio.Field = 1<<8 | 16
	USDHC_PROT_CTRL_CREQ             mmio.Field = 1<<8 | 17
	USDHC_PROT_CTRL_RWCTL            mmio.Field = 1<<8 | 18
	USDHC_PROT_CTRL_IABG             mmio.Field = 1<<8 | 19
	USDHC_PROT_CTRL_RD_DONE_NO_8CLK  mmio.Field = 1<<8 | 20
	USDHC_PROT_CTRL_WECINT           mmio.Field = 1<<8 | 24
	USDHC_PROT_CTRL_WECINS           mmio.Field = 1<<8 | 25
	USDHC_PROT_CTRL_WECRM            mmio.Field = 1<<8 | 26
	USDHC_PROT_CTRL_BURST_LEN_EN     mmio.Field = 3<<8 | 27
	USDHC_PROT_CTRL_NON_EXACT_BLK_RD mmio.Field = 1<<8 | 30
)

type USDHC_PROT_CTRL_DTW_Value uint32

const (
	USDHC_PROT_CTRL_DTW_BITS_1 USDHC_PROT_CTRL_DTW_Value = 0
	USDHC_PROT_CTRL_DTW_BITS_4 USDHC_PROT_CTRL_DTW_Value = 1
	USDHC_PROT_CTRL_DTW_BITS_8 USDHC_PROT_CTRL_DTW_Value = 2
)

func (r USDHC_PROT_CTRL) GetLCTL() bool {
	return USDHC_PROT_CTRL_LCTL.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetLCTL(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_LCTL.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetDTW() USDHC_PROT_CTRL_DTW_Value {
	return USDHC_PROT_CTRL_DTW_Value(USDHC_PROT_CTRL_DTW.Decode(uint32(r)))
}

func (r USDHC_PROT_CTRL) SetDTW(v USDHC_PROT_CTRL_DTW_Value) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_DTW.Insert(uint32(r), uint32(v)))
}

func (r USDHC_PROT_CTRL) GetD3CD() bool {
	return USDHC_PROT_CTRL_D3CD.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetD3CD(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_D3CD.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetEMODE() uint32 {
	return USDHC_PROT_CTRL_EMODE.Decode(uint32(r))
}

func (r USDHC_PROT_CTRL) SetEMODE(v uint32) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_EMODE.Insert(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetCDTL() bool {
	return USDHC_PROT_CTRL_CDTL.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetCDTL(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_CDTL.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetCDSS() bool {
	return USDHC_PROT_CTRL_CDSS.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetCDSS(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_CDSS.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetDMASEL() uint32 {
	return USDHC_PROT_CTRL_DMASEL.Decode(uint32(r))
}

func (r USDHC_PROT_CTRL) SetDMASEL(v uint32) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_DMASEL.Insert(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetSABGREQ() bool {
	return USDHC_PROT_CTRL_SABGREQ.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetSABGREQ(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_SABGREQ.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetCREQ() bool {
	return USDHC_PROT_CTRL_CREQ.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetCREQ(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_CREQ.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetRWCTL() bool {
	return USDHC_PROT_CTRL_RWCTL.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetRWCTL(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_RWCTL.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetIABG() bool {
	return USDHC_PROT_CTRL_IABG.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetIABG(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_IABG.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetRD_DONE_NO_8CLK() bool {
	return USDHC_PROT_CTRL_RD_DONE_NO_8CLK.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetRD_DONE_NO_8CLK(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_RD_DONE_NO_8CLK.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetWECINT() bool {
	return USDHC_PROT_CTRL_WECINT.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetWECINT(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_WECINT.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetWECINS() bool {
	return USDHC_PROT_CTRL_WECINS.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetWECINS(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_WECINS.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetWECRM() bool {
	return USDHC_PROT_CTRL_WECRM.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetWECRM(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_WECRM.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetBURST_LEN_EN() uint32 {
	return USDHC_PROT_CTRL_BURST_LEN_EN.Decode(uint32(r))
}

func (r USDHC_PROT_CTRL) SetBURST_LEN_EN(v uint32) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_BURST_LEN_EN.Insert(uint32(r), v))
}

func (r USDHC_PROT_CTRL) GetNON_EXACT_BLK_RD() bool {
	return USDHC_PROT_CTRL_NON_EXACT_BLK_RD.Bool(uint32(r))
}

func (r USDHC_PROT_CTRL) SetNON_EXACT_BLK_RD(v bool) USDHC_PROT_CTRL {
	return USDHC_PROT_CTRL(USDHC_PROT_CTRL_NON_EXACT_BLK_RD.InsertBool(uint32(r), v))
}

func (r USDHC_PROT_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LCTL", Field: USDHC_PROT_CTRL_LCTL},
		{Name: "DTW", Field: USDHC_PROT_CTRL_DTW, Values: []mmio.EnumValue{
			{Name: "BITS_1", Value: uint32(USDHC_PROT_CTRL_DTW_BITS_1)},
			{Name: "BITS_4", Value: uint32(USDHC_PROT_CTRL_DTW_BITS_4)},
			{Name: "BITS_8", Value: uint32(USDHC_PROT_CTRL_DTW_BITS_8)},
		}},
		{Name: "D3CD", Field: USDHC_PROT_CTRL_D3CD},
		{Name: "EMODE", Field: USDHC_PROT_CTRL_EMODE},
		{Name: "CDTL", Field: USDHC_PROT_CTRL_CDTL},
		{Name: "CDSS", Field: USDHC_PROT_CTRL_CDSS},
		{Name: "DMASEL", Field: USDHC_PROT_CTRL_DMASEL},
		{Name: "SABGREQ", Field: USDHC_PROT_CTRL_SABGREQ},
		{Name: "CREQ", Field: USDHC_PROT_CTRL_CREQ},
		{Name: "RWCTL", Field: USDHC_PROT_CTRL_RWCTL},
		{Name: "IABG", Field: USDHC_PROT_CTRL_IABG},
		{Name: "RD_DONE_NO_8CLK", Field: USDHC_PROT_CTRL_RD_DONE_NO_8CLK},
		{Name: "WECINT", Field: USDHC_PROT_CTRL_WECINT},
		{Name: "WECINS", Field: USDHC_PROT_CTRL_WECINS},
		{Name: "WECRM", Field: USDHC_PROT_CTRL_WECRM},
		{Name: "BURST_LEN_EN", Field: USDHC_PROT_CTRL_BURST_LEN_EN},
		{Name: "NON_EXACT_BLK_RD", Field: USDHC_PROT_CTRL_NON_EXACT_BLK_RD},
	}
}

// USDHC_SYS_CTRL is the system control register.
type USDHC_SYS_CTRL uint32

const (
	USDHC_SYS_CTRL_DVS       mmio.Field = 4<<8 | 4
	USDHC_SYS_CTRL_SDCLKFS   mmio.Field = 8<<8 | 8
	USDHC_SYS_CTRL_DTOCV     mmio.Field = 4<<8 | 16
	USDHC_SYS_CTRL_IPP_RST_N mmio.Field = 1<<8 | 23
	USDHC_SYS_CTRL_RSTA      mmio.Field = 1<<8 | 24
	USDHC_SYS_CTRL_RSTC      mmio.Field = 1<<8 | 25
	USDHC_SYS_CTRL_RSTD      mmio.Field = 1<<8 | 26
	USDHC_SYS_CTRL_INITA     mmio.Field = 1<<8 | 27
	USDHC_SYS_CTRL_RSTT      mmio.Field = 1<<8 | 28
)

func (r USDHC_SYS_CTRL) GetDVS() uint32 {
	return USDHC_SYS_CTRL_DVS.Decode(uint32(r))
}

func (r USDHC_SYS_CTRL) SetDVS(v uint32) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_DVS.Insert(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetSDCLKFS() uint32 {
	return USDHC_SYS_CTRL_SDCLKFS.Decode(uint32(r))
}

func (r USDHC_SYS_CTRL) SetSDCLKFS(v uint32) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_SDCLKFS.Insert(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetDTOCV() uint32 {
	return USDHC_SYS_CTRL_DTOCV.Decode(uint32(r))
}

func (r USDHC_SYS_CTRL) SetDTOCV(v uint32) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_DTOCV.Insert(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetIPP_RST_N() bool {
	return USDHC_SYS_CTRL_IPP_RST_N.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetIPP_RST_N(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_IPP_RST_N.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetRSTA() bool {
	return USDHC_SYS_CTRL_RSTA.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetRSTA(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_RSTA.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetRSTC() bool {
	return USDHC_SYS_CTRL_RSTC.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetRSTC(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_RSTC.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetRSTD() bool {
	return USDHC_SYS_CTRL_RSTD.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetRSTD(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_RSTD.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetINITA() bool {
	return USDHC_SYS_CTRL_INITA.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetINITA(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_INITA.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) GetRSTT() bool {
	return USDHC_SYS_CTRL_RSTT.Bool(uint32(r))
}

func (r USDHC_SYS_CTRL) SetRSTT(v bool) USDHC_SYS_CTRL {
	return USDHC_SYS_CTRL(USDHC_SYS_CTRL_RSTT.InsertBool(uint32(r), v))
}

func (r USDHC_SYS_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DVS", Field: USDHC_SYS_CTRL_DVS},
		{Name: "SDCLKFS", Field: USDHC_SYS_CTRL_SDCLKFS},
		{Name: "DTOCV", Field: USDHC_SYS_CTRL_DTOCV},
		{Name: "IPP_RST_N", Field: USDHC_SYS_CTRL_IPP_RST_N},
		{Name: "RSTA", Field: USDHC_SYS_CTRL_RSTA},
		{Name: "RSTC", Field: USDHC_SYS_CTRL_RSTC},
		{Name: "RSTD", Field: USDHC_SYS_CTRL_RSTD},
		{Name: "INITA", Field: USDHC_SYS_CTRL_INITA},
		{Name: "RSTT", Field: USDHC_SYS_CTRL_RSTT},
	}
}

// USDHC_INT_STATUS is the interrupt status register; write one to clear.
type USDHC_INT_STATUS uint32

const (
	USDHC_INT_STATUS_CC    mmio.Field = 1<<8 | 0
	USDHC_INT_STATUS_TC    mmio.Field = 1<<8 | 1
	USDHC_INT_STATUS_BGE   mmio.Field = 1<<8 | 2
	USDHC_INT_STATUS_DINT  mmio.Field = 1<<8 | 3
	USDHC_INT_STATUS_BWR   mmio.Field = 1<<8 | 4
	USDHC_INT_STATUS_BRR   mmio.Field = 1<<8 | 5
	USDHC_INT_STATUS_CINS  mmio.Field = 1<<8 | 6
	USDHC_INT_STATUS_CRM   mmio.Field = 1<<8 | 7
	USDHC_INT_STATUS_CINT  mmio.Field = 1<<8 | 8
	USDHC_INT_STATUS_RTE   mmio.Field = 1<<8 | 12
	USDHC_INT_STATUS_TP    mmio.Field = 1<<8 | 14
	USDHC_INT_STATUS_CTOE  mmio.Field = 1<<8 | 16
	USDHC_INT_STATUS_CCE   mmio.Field = 1<<8 | 17
	USDHC_INT_STATUS_CEBE  mmio.Field = 1<<8 | 18
	USDHC_INT_STATUS_CIE   mmio.Field = 1<<8 | 19
	USDHC_INT_STATUS_DTOE  mmio.Field = 1<<8 | 20
	USDHC_INT_STATUS_DCE   mmio.Field = 1<<8 | 21
	USDHC_INT_STATUS_DEBE  mmio.Field = 1<<8 | 22
	USDHC_INT_STATUS_AC12E mmio.Field = 1<<8 | 24
	USDHC_INT_STATUS_TNE   mmio.Field = 1<<8 | 26
	USDHC_INT_STATUS_DMAE  mmio.Field = 1<<8 | 28
)

func (r USDHC_INT_STATUS) GetCC() bool {
	return USDHC_INT_STATUS_CC.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCC(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CC.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetTC() bool {
	return USDHC_INT_STATUS_TC.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetTC(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_TC.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetBGE() bool {
	return USDHC_INT_STATUS_BGE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetBGE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_BGE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetDINT() bool {
	return USDHC_INT_STATUS_DINT.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetDINT(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_DINT.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetBWR() bool {
	return USDHC_INT_STATUS_BWR.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetBWR(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_BWR.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetBRR() bool {
	return USDHC_INT_STATUS_BRR.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetBRR(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_BRR.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCINS() bool {
	return USDHC_INT_STATUS_CINS.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCINS(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CINS.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCRM() bool {
	return USDHC_INT_STATUS_CRM.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCRM(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CRM.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCINT() bool {
	return USDHC_INT_STATUS_CINT.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCINT(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CINT.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetRTE() bool {
	return USDHC_INT_STATUS_RTE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetRTE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_RTE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetTP() bool {
	return USDHC_INT_STATUS_TP.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetTP(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_TP.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCTOE() bool {
	return USDHC_INT_STATUS_CTOE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCTOE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CTOE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCCE() bool {
	return USDHC_INT_STATUS_CCE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCCE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CCE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCEBE() bool {
	return USDHC_INT_STATUS_CEBE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCEBE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CEBE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetCIE() bool {
	return USDHC_INT_STATUS_CIE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetCIE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_CIE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetDTOE() bool {
	return USDHC_INT_STATUS_DTOE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetDTOE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_DTOE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetDCE() bool {
	return USDHC_INT_STATUS_DCE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetDCE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_DCE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetDEBE() bool {
	return USDHC_INT_STATUS_DEBE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetDEBE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_DEBE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetAC12E() bool {
	return USDHC_INT_STATUS_AC12E.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetAC12E(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_AC12E.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetTNE() bool {
	return USDHC_INT_STATUS_TNE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetTNE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_TNE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) GetDMAE() bool {
	return USDHC_INT_STATUS_DMAE.Bool(uint32(r))
}

func (r USDHC_INT_STATUS) SetDMAE(v bool) USDHC_INT_STATUS {
	return USDHC_INT_STATUS(USDHC_INT_STATUS_DMAE.InsertBool(uint32(r), v))
}

func (r USDHC_INT_STATUS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CC", Field: USDHC_INT_STATUS_CC},
		{Name: "TC", Field: USDHC_INT_STATUS_TC},
		{Name: "BGE", Field: USDHC_INT_STATUS_BGE},
		{Name: "DINT", Field: USDHC_INT_STATUS_DINT},
		{Name: "BWR", Field: USDHC_INT_STATUS_BWR},
		{Name: "BRR", Field: USDHC_INT_STATUS_BRR},
		{Name: "CINS", Field: USDHC_INT_STATUS_CINS},
		{Name: "CRM", Field: USDHC_INT_STATUS_CRM},
		{Name: "CINT", Field: USDHC_INT_STATUS_CINT},
		{Name: "RTE", Field: USDHC_INT_STATUS_RTE},
		{Name: "TP", Field: USDHC_INT_STATUS_TP},
		{Name: "CTOE", Field: USDHC_INT_STATUS_CTOE},
		{Name: "CCE", Field: USDHC_INT_STATUS_CCE},
		{Name: "CEBE", Field: USDHC_INT_STATUS_CEBE},
		{Name: "CIE", Field: USDHC_INT_STATUS_CIE},
		{Name: "DTOE", Field: USDHC_INT_STATUS_DTOE},
		{Name: "DCE", Field: USDHC_INT_STATUS_DCE},
		{Name: "DEBE", Field: USDHC_INT_STATUS_DEBE},
		{Name: "AC12E", Field: USDHC_INT_STATUS_AC12E},
		{Name: "TNE", Field: USDHC_INT_STATUS_TNE},
		{Name: "DMAE", Field: USDHC_INT_STATUS_DMAE},
	}
}

// USDHC_WTMK_LVL is the watermark level register.
type USDHC_WTMK_LVL uint32

const (
	USDHC_WTMK_LVL_RD_WML      mmio.Field = 8<<8 | 0
	USDHC_WTMK_LVL_RD_BRST_LEN mmio.Field = 5<<8 | 8
	USDHC_WTMK_LVL_WR_WML      mmio.Field = 8<<8 | 16
	USDHC_WTMK_LVL_WR_BRST_LEN mmio.Field = 5<<8 | 24
)

func (r USDHC_WTMK_LVL) GetRD_WML() uint32 {
	return USDHC_WTMK_LVL_RD_WML.Decode(uint32(r))
}

func (r USDHC_WTMK_LVL) SetRD_WML(v uint32) USDHC_WTMK_LVL {
	return USDHC_WTMK_LVL(USDHC_WTMK_LVL_RD_WML.Insert(uint32(r), v))
}

func (r USDHC_WTMK_LVL) GetRD_BRST_LEN() uint32 {
	return USDHC_WTMK_LVL_RD_BRST_LEN.Decode(uint32(r))
}

func (r USDHC_WTMK_LVL) SetRD_BRST_LEN(v uint32) USDHC_WTMK_LVL {
	return USDHC_WTMK_LVL(USDHC_WTMK_LVL_RD_BRST_LEN.Insert(uint32(r), v))
}

func (r USDHC_WTMK_LVL) GetWR_WML() uint32 {
	return USDHC_WTMK_LVL_WR_WML.Decode(uint32(r))
}

func (r USDHC_WTMK_LVL) SetWR_WML(v uint32) USDHC_WTMK_LVL {
	return USDHC_WTMK_LVL(USDHC_WTMK_LVL_WR_WML.Insert(uint32(r), v))
}

func (r USDHC_WTMK_LVL) GetWR_BRST_LEN() uint32 {
	return USDHC_WTMK_LVL_WR_BRST_LEN.Decode(uint32(r))
}

func (r USDHC_WTMK_LVL) SetWR_BRST_LEN(v uint32) USDHC_WTMK_LVL {
	return USDHC_WTMK_LVL(USDHC_WTMK_LVL_WR_BRST_LEN.Insert(uint32(r), v))
}

func (r USDHC_WTMK_LVL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RD_WML", Field: USDHC_WTMK_LVL_RD_WML},
		{Name: "RD_BRST_LEN", Field: USDHC_WTMK_LVL_RD_BRST_LEN},
		{Name: "WR_WML", Field: USDHC_WTMK_LVL_WR_WML},
		{Name: "WR_BRST_LEN", Field: USDHC_WTMK_LVL_WR_BRST_LEN},
	}
}

// USDHC_MIX_CTRL is the mixer control register.
type USDHC_MIX_CTRL uint32

const (
	USDHC_MIX_CTRL_DMAEN        mmio.Field = 1<<8 | 0
	USDHC_MIX_CTRL_BCEN         mmio.Field = 1<<8 | 1
	USDHC_MIX_CTRL_AC12EN       mmio.Field = 1<<8 | 2
	USDHC_MIX_CTRL_DDR_EN       mmio.Field = 1<<8 | 3
	USDHC_MIX_CTRL_DTDSEL       mmio.Field = 1<<8 | 4
	USDHC_MIX_CTRL_MSBSEL       mmio.Field = 1<<8 | 5
	USDHC_MIX_CTRL_NIBBLE_POS   mmio.Field = 1<<8 | 6
	USDHC_MIX_CTRL_AC23EN       mmio.Field = 1<<8 | 7
	USDHC_MIX_CTRL_EXE_TUNE     mmio.Field = 1<<8 | 22
	USDHC_MIX_CTRL_SMP_CLK_SEL  mmio.Field = 1<<8 | 23
	USDHC_MIX_CTRL_AUTO_TUNE_EN mmio.Field = 1<<8 | 24
	USDHC_MIX_CTRL_FBCLK_SEL    mmio.Field = 1<<8 | 25
)

func (r USDHC_MIX_CTRL) GetDMAEN() bool {
	return USDHC_MIX_CTRL_DMAEN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetDMAEN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_DMAEN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetBCEN() bool {
	return USDHC_MIX_CTRL_BCEN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetBCEN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_BCEN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetAC12EN() bool {
	return USDHC_MIX_CTRL_AC12EN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetAC12EN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_AC12EN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetDDR_EN() bool {
	return USDHC_MIX_CTRL_DDR_EN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetDDR_EN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_DDR_EN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetDTDSEL() bool {
	return USDHC_MIX_CTRL_DTDSEL.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetDTDSEL(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_DTDSEL.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetMSBSEL() bool {
	return USDHC_MIX_CTRL_MSBSEL.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetMSBSEL(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_MSBSEL.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetNIBBLE_POS() bool {
	return USDHC_MIX_CTRL_NIBBLE_POS.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetNIBBLE_POS(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_NIBBLE_POS.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetAC23EN() bool {
	return USDHC_MIX_CTRL_AC23EN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetAC23EN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_AC23EN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetEXE_TUNE() bool {
	return USDHC_MIX_CTRL_EXE_TUNE.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetEXE_TUNE(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_EXE_TUNE.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetSMP_CLK_SEL() bool {
	return USDHC_MIX_CTRL_SMP_CLK_SEL.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetSMP_CLK_SEL(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_SMP_CLK_SEL.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetAUTO_TUNE_EN() bool {
	return USDHC_MIX_CTRL_AUTO_TUNE_EN.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetAUTO_TUNE_EN(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_AUTO_TUNE_EN.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) GetFBCLK_SEL() bool {
	return USDHC_MIX_CTRL_FBCLK_SEL.Bool(uint32(r))
}

func (r USDHC_MIX_CTRL) SetFBCLK_SEL(v bool) USDHC_MIX_CTRL {
	return USDHC_MIX_CTRL(USDHC_MIX_CTRL_FBCLK_SEL.InsertBool(uint32(r), v))
}

func (r USDHC_MIX_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DMAEN", Field: USDHC_MIX_CTRL_DMAEN},
		{Name: "BCEN", Field: USDHC_MIX_CTRL_BCEN},
		{Name: "AC12EN", Field: USDHC_MIX_CTRL_AC12EN},
		{Name: "DDR_EN", Field: USDHC_MIX_CTRL_DDR_EN},
		{Name: "DTDSEL", Field: USDHC_MIX_CTRL_DTDSEL},
		{Name: "MSBSEL", Field: USDHC_MIX_CTRL_MSBSEL},
		{Name: "NIBBLE_POS", Field: USDHC_MIX_CTRL_NIBBLE_POS},
		{Name: "AC23EN", Field: USDHC_MIX_CTRL_AC23EN},
		{Name: "EXE_TUNE", Field: USDHC_MIX_CTRL_EXE_TUNE},
		{Name: "SMP_CLK_SEL", Field: USDHC_MIX_CTRL_SMP_CLK_SEL},
		{Name: "AUTO_TUNE_EN", Field: USDHC_MIX_CTRL_AUTO_TUNE_EN},
		{Name: "FBCLK_SEL", Field: USDHC_MIX_CTRL_FBCLK_SEL},
	}
}
