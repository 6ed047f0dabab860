package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPADC_TYPE is the register block of the low power analog to digital
// converter.
//
// CMD[0] is command 1. A TCTRL entry names the first command of its chain
// by number.
type LPADC_TYPE struct {
	VERID   mmio.RO32[LPADC_VERID] `offset:"0x0" desc:"version ID"`
	PARAM   mmio.RO32[LPADC_PARAM] `offset:"0x4"`
	_       [8]byte
	CTRL    mmio.RW32[LPADC_CTRL]  `offset:"0x10" desc:"control"`
	STAT    mmio.RW32[LPADC_STAT]  `offset:"0x14" desc:"status; write one to FOF to clear it"`
	IE      mmio.RW32[LPADC_IE]    `offset:"0x18"`
	DE      mmio.RW32[LPADC_DE]    `offset:"0x1C"`
	CFG     mmio.RW32[LPADC_CFG]   `offset:"0x20" desc:"configuration"`
	PAUSE   mmio.RW32[LPADC_PAUSE] `offset:"0x24"`
	_       [8]byte
	FCTRL   mmio.RW32[LPADC_FCTRL]  `offset:"0x30" desc:"FIFO control"`
	SWTRIG  mmio.WO32[LPADC_SWTRIG] `offset:"0x34" desc:"software trigger"`
	_       [8]byte
	OFSTRIM mmio.RW32[LPADC_OFSTRIM] `offset:"0x40" desc:"offset trim"`
	_       [92]byte
	TCTRL   [4]mmio.RW32[LPADC_TCTRL] `offset:"0xA0" desc:"trigger control"`
	_       [80]byte
	CMD     [15]LPADC_CMD `offset:"0x100" desc:"conversion command"`
	_       [136]byte
	CV      [4]mmio.RW32[LPADC_CV] `offset:"0x200" desc:"compare value"`
	_       [240]byte
	RESFIFO mmio.RO32[LPADC_RESFIFO] `offset:"0x300" desc:"result FIFO; a read pops the entry"`
}

const LPADC_SIZE = 0x304

var LPADC_BLOCK = layout.MustFromStruct("LPADC", reflect.TypeOf(LPADC_TYPE{}), LPADC_SIZE)

// LPADC_CMD is one conversion command.
type LPADC_CMD struct {
	CMDL mmio.RW32[LPADC_CMDL] `offset:"0x0" desc:"channel selection"`
	CMDH mmio.RW32[LPADC_CMDH] `offset:"0x4" desc:"conversion options; NEXT chains the command with that number, zero ends the chain"`
}

// LPADC_VERID is the version ID register.
type LPADC_VERID uint32

const (
	LPADC_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPADC_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPADC_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPADC_VERID) GetFEATURE() uint32 {
	return LPADC_VERID_FEATURE.Decode(uint32(r))
}

func (r LPADC_VERID) GetMINOR() uint32 {
	return LPADC_VERID_MINOR.Decode(uint32(r))
}

func (r LPADC_VERID) GetMAJOR() uint32 {
	return LPADC_VERID_MAJOR.Decode(uint32(r))
}

func (r LPADC_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPADC_VERID_FEATURE},
		{Name: "MINOR", Field: LPADC_VERID_MINOR},
		{Name: "MAJOR", Field: LPADC_VERID_MAJOR},
	}
}

type LPADC_PARAM uint32

const (
	LPADC_PARAM_TRIG_NUM mmio.Field = 8<<8 | 0
	LPADC_PARAM_FIFOSIZE mmio.Field = 8<<8 | 8
	LPADC_PARAM_CV_NUM   mmio.Field = 8<<8 | 16
	LPADC_PARAM_CMD_NUM  mmio.Field = 8<<8 | 24
)

func (r LPADC_PARAM) GetTRIG_NUM() uint32 {
	return LPADC_PARAM_TRIG_NUM.Decode(uint32(r))
}

func (r LPADC_PARAM) GetFIFOSIZE() uint32 {
	return LPADC_PARAM_FIFOSIZE.Decode(uint32(r))
}

func (r LPADC_PARAM) GetCV_NUM() uint32 {
	return LPADC_PARAM_CV_NUM.Decode(uint32(r))
}

func (r LPADC_PARAM) GetCMD_NUM() uint32 {
	return LPADC_PARAM_CMD_NUM.Decode(uint32(r))
}

func (r LPADC_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIG_NUM", Field: LPADC_PARAM_TRIG_NUM},
		{Name: "FIFOSIZE", Field: LPADC_PARAM_FIFOSIZE},
		{Name: "CV_NUM", Field: LPADC_PARAM_CV_NUM},
		{Name: "CMD_NUM", Field: LPADC_PARAM_CMD_NUM},
	}
}

// LPADC_CTRL is the control register.
type LPADC_CTRL uint32

const (
	LPADC_CTRL_ADCEN   mmio.Field = 1<<8 | 0
	LPADC_CTRL_RST     mmio.Field = 1<<8 | 1
	LPADC_CTRL_DOZEN   mmio.Field = 1<<8 | 2
	LPADC_CTRL_RSTFIFO mmio.Field = 1<<8 | 8
)

func (r LPADC_CTRL) GetADCEN() bool {
	return LPADC_CTRL_ADCEN.Bool(uint32(r))
}

func (r LPADC_CTRL) SetADCEN(v bool) LPADC_CTRL {
	return LPADC_CTRL(LPADC_CTRL_ADCEN.InsertBool(uint32(r), v))
}

func (r LPADC_CTRL) GetRST() bool {
	return LPADC_CTRL_RST.Bool(uint32(r))
}

func (r LPADC_CTRL) SetRST(v bool) LPADC_CTRL {
	return LPADC_CTRL(LPADC_CTRL_RST.InsertBool(uint32(r), v))
}

func (r LPADC_CTRL) GetDOZEN() bool {
	return LPADC_CTRL_DOZEN.Bool(uint32(r))
}

func (r LPADC_CTRL) SetDOZEN(v bool) LPADC_CTRL {
	return LPADC_CTRL(LPADC_CTRL_DOZEN.InsertBool(uint32(r), v))
}

func (r LPADC_CTRL) GetRSTFIFO() bool {
	return LPADC_CTRL_RSTFIFO.Bool(uint32(r))
}

func (r LPADC_CTRL) SetRSTFIFO(v bool) LPADC_CTRL {
	return LPADC_CTRL(LPADC_CTRL_RSTFIFO.InsertBool(uint32(r), v))
}

func (r LPADC_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ADCEN", Field: LPADC_CTRL_ADCEN},
		{Name: "RST", Field: LPADC_CTRL_RST},
		{Name: "DOZEN", Field: LPADC_CTRL_DOZEN},
		{Name: "RSTFIFO", Field: LPADC_CTRL_RSTFIFO},
	}
}

// LPADC_STAT is the status register; write one to FOF to clear it.
type LPADC_STAT uint32

const (
	LPADC_STAT_RDY        mmio.Field = 1<<8 | 0
	LPADC_STAT_FOF        mmio.Field = 1<<8 | 1
	LPADC_STAT_ADC_ACTIVE mmio.Field = 1<<8 | 8
	LPADC_STAT_TRGACT     mmio.Field = 4<<8 | 16
	LPADC_STAT_CMDACT     mmio.Field = 4<<8 | 24
)

func (r LPADC_STAT) GetRDY() bool {
	return LPADC_STAT_RDY.Bool(uint32(r))
}

func (r LPADC_STAT) SetRDY(v bool) LPADC_STAT {
	return LPADC_STAT(LPADC_STAT_RDY.InsertBool(uint32(r), v))
}

func (r LPADC_STAT) GetFOF() bool {
	return LPADC_STAT_FOF.Bool(uint32(r))
}

func (r LPADC_STAT) SetFOF(v bool) LPADC_STAT {
	return LPADC_STAT(LPADC_STAT_FOF.InsertBool(uint32(r), v))
}

func (r LPADC_STAT) GetADC_ACTIVE() bool {
	return LPADC_STAT_ADC_ACTIVE.Bool(uint32(r))
}

func (r LPADC_STAT) SetADC_ACTIVE(v bool) LPADC_STAT {
	return LPADC_STAT(LPADC_STAT_ADC_ACTIVE.InsertBool(uint32(r), v))
}

func (r LPADC_STAT) GetTRGACT() uint32 {
	return LPADC_STAT_TRGACT.Decode(uint32(r))
}

func (r LPADC_STAT) SetTRGACT(v uint32) LPADC_STAT {
	return LPADC_STAT(LPADC_STAT_TRGACT.Insert(uint32(r), v))
}

func (r LPADC_STAT) GetCMDACT() uint32 {
	return LPADC_STAT_CMDACT.Decode(uint32(r))
}

func (r LPADC_STAT) SetCMDACT(v uint32) LPADC_STAT {
	return LPADC_STAT(LPADC_STAT_CMDACT.Insert(uint32(r), v))
}

func (r LPADC_STAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RDY", Field: LPADC_STAT_RDY},
		{Name: "FOF", Field: LPADC_STAT_FOF},
		{Name: "ADC_ACTIVE", Field: LPADC_STAT_ADC_ACTIVE},
		{Name: "TRGACT", Field: LPADC_STAT_TRGACT},
		{Name: "CMDACT", Field: LPADC_STAT_CMDACT},
	}
}

type LPADC_IE uint32

const (
	LPADC_IE_FWMIE mmio.Field = 1<<8 | 0
	LPADC_IE_FOFIE mmio.Field = 1<<8 | 1
)

func (r LPADC_IE) GetFWMIE() bool {
	return LPADC_IE_FWMIE.Bool(uint32(r))
}

func (r LPADC_IE) SetFWMIE(v bool) LPADC_IE {
	return LPADC_IE(LPADC_IE_FWMIE.InsertBool(uint32(r), v))
}

func (r LPADC_IE) GetFOFIE() bool {
	return LPADC_IE_FOFIE.Bool(uint32(r))
}

func (r LPADC_IE) SetFOFIE(v bool) LPADC_IE {
	return LPADC_IE(LPADC_IE_FOFIE.InsertBool(uint32(r), v))
}

func (r LPADC_IE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FWMIE", Field: LPADC_IE_FWMIE},
		{Name: "FOFIE", Field: LPADC_IE_FOFIE},
	}
}

type LPADC_DE uint32

const (
	LPADC_DE_FWMDE mmio.Field = 1<<8 | 0
)

func (r LPADC_DE) GetFWMDE() bool {
	return LPADC_DE_FWMDE.Bool(uint32(r))
}

func (r LPADC_DE) SetFWMDE(v bool) LPADC_DE {
	return LPADC_DE(LPADC_DE_FWMDE.InsertBool(uint32(r), v))
}

func (r LPADC_DE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FWMDE", Field: LPADC_DE_FWMDE},
	}
}

// LPADC_CFG is the configuration register.
type LPADC_CFG uint32

const (
	LPADC_CFG_TPRICTRL mmio.Field = 1<<8 | 0
	LPADC_CFG_PWRSEL   mmio.Field = 2<<8 | 4
	LPADC_CFG_REFSEL   mmio.Field = 2<<8 | 6
	LPADC_CFG_CALOFS   mmio.Field = 1<<8 | 15
	LPADC_CFG_PUDLY    mmio.Field = 8<<8 | 16
	LPADC_CFG_PWREN    mmio.Field = 1<<8 | 28
	LPADC_CFG_VREF1RNG mmio.Field = 1<<8 | 29
	LPADC_CFG_ADCKEN   mmio.Field = 1<<8 | 30
)

func (r LPADC_CFG) GetTPRICTRL() bool {
	return LPADC_CFG_TPRICTRL.Bool(uint32(r))
}

func (r LPADC_CFG) SetTPRICTRL(v bool) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_TPRICTRL.InsertBool(uint32(r), v))
}

func (r LPADC_CFG) GetPWRSEL() uint32 {
	return LPADC_CFG_PWRSEL.Decode(uint32(r))
}

func (r LPADC_CFG) SetPWRSEL(v uint32) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_PWRSEL.Insert(uint32(r), v))
}

func (r LPADC_CFG) GetREFSEL() uint32 {
	return LPADC_CFG_REFSEL.Decode(uint32(r))
}

func (r LPADC_CFG) SetREFSEL(v uint32) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_REFSEL.Insert(uint32(r), v))
}

func (r LPADC_CFG) GetCALOFS() bool {
	return LPADC_CFG_CALOFS.Bool(uint32(r))
}

func (r LPADC_CFG) SetCALOFS(v bool) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_CALOFS.InsertBool(uint32(r), v))
}

func (r LPADC_CFG) GetPUDLY() uint32 {
	return LPADC_CFG_PUDLY.Decode(uint32(r))
}

func (r LPADC_CFG) SetPUDLY(v uint32) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_PUDLY.Insert(uint32(r), v))
}

func (r LPADC_CFG) GetPWREN() bool {
	return LPADC_CFG_PWREN.Bool(uint32(r))
}

func (r LPADC_CFG) SetPWREN(v bool) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_PWREN.InsertBool(uint32(r), v))
}

func (r LPADC_CFG) GetVREF1RNG() bool {
	return LPADC_CFG_VREF1RNG.Bool(uint32(r))
}

func (r LPADC_CFG) SetVREF1RNG(v bool) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_VREF1RNG.InsertBool(uint32(r), v))
}

func (r LPADC_CFG) GetADCKEN() bool {
	return LPADC_CFG_ADCKEN.Bool(uint32(r))
}

func (r LPADC_CFG) SetADCKEN(v bool) LPADC_CFG {
	return LPADC_CFG(LPADC_CFG_ADCKEN.InsertBool(uint32(r), v))
}

func (r LPADC_CFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TPRICTRL", Field: LPADC_CFG_TPRICTRL},
		{Name: "PWRSEL", Field: LPADC_CFG_PWRSEL},
		{Name: "REFSEL", Field: LPADC_CFG_REFSEL},
		{Name: "CALOFS", Field: LPADC_CFG_CALOFS},
		{Name: "PUDLY", Field: LPADC_CFG_PUDLY},
		{Name: "PWREN", Field: LPADC_CFG_PWREN},
		{Name: "VREF1RNG", Field: LPADC_CFG_VREF1RNG},
		{Name: "ADCKEN", Field: LPADC_CFG_ADCKEN},
	}
}

type LPADC_PAUSE uint32

const (
	LPADC_PAUSE_PAUSEDLY mmio.Field = 9<<8 | 0
	LPADC_PAUSE_PAUSEEN  mmio.Field = 1<<8 | 31
)

func (r LPADC_PAUSE) GetPAUSEDLY() uint32 {
	return LPADC_PAUSE_PAUSEDLY.Decode(uint32(r))
}

func (r LPADC_PAUSE) SetPAUSEDLY(v uint32) LPADC_PAUSE {
	return LPADC_PAUSE(LPADC_PAUSE_PAUSEDLY.Insert(uint32(r), v))
}

func (r LPADC_PAUSE) GetPAUSEEN() bool {
	return LPADC_PAUSE_PAUSEEN.Bool(uint32(r))
}

func (r LPADC_PAUSE) SetPAUSEEN(v bool) LPADC_PAUSE {
	return LPADC_PAUSE(LPADC_PAUSE_PAUSEEN.InsertBool(uint32(r), v))
}

func (r LPADC_PAUSE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PAUSEDLY", Field: LPADC_PAUSE_PAUSEDLY},
		{Name: "PAUSEEN", Field: LPADC_PAUSE_PAUSEEN},
	}
}

// LPADC_FCTRL is the FIFO control register.
type LPADC_FCTRL uint32

const (
	LPADC_FCTRL_FCOUNT mmio.Field = 4<<8 | 0
	LPADC_FCTRL_FWMARK mmio.Field = 4<<8 | 16
)

func (r LPADC_FCTRL) GetFCOUNT() uint32 {
	return LPADC_FCTRL_FCOUNT.Decode(uint32(r))
}

func (r LPADC_FCTRL) SetFCOUNT(v uint32) LPADC_FCTRL {
	return LPADC_FCTRL(LPADC_FCTRL_FCOUNT.Insert(uint32(r), v))
}

func (r LPADC_FCTRL) GetFWMARK() uint32 {
	return LPADC_FCTRL_FWMARK.Decode(uint32(r))
}

func (r LPADC_FCTRL) SetFWMARK(v uint32) LPADC_FCTRL {
	return LPADC_FCTRL(LPADC_FCTRL_FWMARK.Insert(uint32(r), v))
}

func (r LPADC_FCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FCOUNT", Field: LPADC_FCTRL_FCOUNT},
		{Name: "FWMARK", Field: LPADC_FCTRL_FWMARK},
	}
}

// LPADC_SWTRIG is the software trigger register.
type LPADC_SWTRIG uint32

const (
	LPADC_SWTRIG_SWT0 mmio.Field = 1<<8 | 0
	LPADC_SWTRIG_SWT1 mmio.Field = 1<<8 | 1
	LPADC_SWTRIG_SWT2 mmio.Field = 1<<8 | 2
	LPADC_SWTRIG_SWT3 mmio.Field = 1<<8 | 3
)

func (r LPADC_SWTRIG) SetSWT0(v bool) LPADC_SWTRIG {
	return LPADC_SWTRIG(LPADC_SWTRIG_SWT0.InsertBool(uint32(r), v))
}

func (r LPADC_SWTRIG) SetSWT1(v bool) LPADC_SWTRIG {
	return LPADC_SWTRIG(LPADC_SWTRIG_SWT1.InsertBool(uint32(r), v))
}

func (r LPADC_SWTRIG) SetSWT2(v bool) LPADC_SWTRIG {
	return LPADC_SWTRIG(LPADC_SWTRIG_SWT2.InsertBool(uint32(r), v))
}

func (r LPADC_SWTRIG) SetSWT3(v bool) LPADC_SWTRIG {
	return LPADC_SWTRIG(LPADC_SWTRIG_SWT3.InsertBool(uint32(r), v))
}

func (r LPADC_SWTRIG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SWT0", Field: LPADC_SWTRIG_SWT0},
		{Name: "SWT1", Field: LPADC_SWTRIG_SWT1},
		{Name: "SWT2", Field: LPADC_SWTRIG_SWT2},
		{Name: "SWT3", Field: LPADC_SWTRIG_SWT3},
	}
}

// LPADC_OFSTRIM is the offset trim register.
type LPADC_OFSTRIM uint32

const (
	LPADC_OFSTRIM_OFSTRIM mmio.Field = 6<<8 | 0
)

func (r LPADC_OFSTRIM) GetOFSTRIM() uint32 {
	return LPADC_OFSTRIM_OFSTRIM.Decode(uint32(r))
}

func (r LPADC_OFSTRIM) SetOFSTRIM(v uint32) LPADC_OFSTRIM {
	return LPADC_OFSTRIM(LPADC_OFSTRIM_OFSTRIM.Insert(uint32(r), v))
}

func (r LPADC_OFSTRIM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OFSTRIM", Field: LPADC_OFSTRIM_OFSTRIM},
	}
}

// LPADC_TCTRL is the trigger control register.
type LPADC_TCTRL uint32

const (
	LPADC_TCTRL_HTEN mmio.Field = 1<<8 | 0
	LPADC_TCTRL_TPRI mmio.Field = 2<<8 | 8
	LPADC_TCTRL_TDLY mmio.Field = 4<<8 | 16
	LPADC_TCTRL_TCMD mmio.Field = 4<<8 | 24
)

func (r LPADC_TCTRL) GetHTEN() bool {
	return LPADC_TCTRL_HTEN.Bool(uint32(r))
}

func (r LPADC_TCTRL) SetHTEN(v bool) LPADC_TCTRL {
	return LPADC_TCTRL(LPADC_TCTRL_HTEN.InsertBool(uint32(r), v))
}

func (r LPADC_TCTRL) GetTPRI() uint32 {
	return LPADC_TCTRL_TPRI.Decode(uint32(r))
}

func (r LPADC_TCTRL) SetTPRI(v uint32) LPADC_TCTRL {
	return LPADC_TCTRL(LPADC_TCTRL_TPRI.Insert(uint32(r), v))
}

func (r LPADC_TCTRL) GetTDLY() uint32 {
	return LPADC_TCTRL_TDLY.Decode(uint32(r))
}

func (r LPADC_TCTRL) SetTDLY(v uint32) LPADC_TCTRL {
	return LPADC_TCTRL(LPADC_TCTRL_TDLY.Insert(uint32(r), v))
}

func (r LPADC_TCTRL) GetTCMD() uint32 {
	return LPADC_TCTRL_TCMD.Decode(uint32(r))
}

func (r LPADC_TCTRL) SetTCMD(v uint32) LPADC_TCTRL {
	return LPADC_TCTRL(LPADC_TCTRL_TCMD.Insert(uint32(r), v))
}

func (r LPADC_TCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HTEN", Field: LPADC_TCTRL_HTEN},
		{Name: "TPRI", Field: LPADC_TCTRL_TPRI},
		{Name: "TDLY", Field: LPADC_TCTRL_TDLY},
		{Name: "TCMD", Field: LPADC_TCTRL_TCMD},
	}
}

// LPADC_CMDL is the channel selection register.
type LPADC_CMDL uint32

const (
	LPADC_CMDL_ADCH  mmio.Field = 5<<8 | 0
	LPADC_CMDL_ABSEL mmio.Field = 1<<8 | 5
)

func (r LPADC_CMDL) GetADCH() uint32 {
	return LPADC_CMDL_ADCH.Decode(uint32(r))
}

func (r LPADC_CMDL) SetADCH(v uint32) LPADC_CMDL {
	return LPADC_CMDL(LPADC_CMDL_ADCH.Insert(uint32(r), v))
}

func (r LPADC_CMDL) GetABSEL() bool {
	return LPADC_CMDL_ABSEL.Bool(uint32(r))
}

func (r LPADC_CMDL) SetABSEL(v bool) LPADC_CMDL {
	return LPADC_CMDL(LPADC_CMDL_ABSEL.InsertBool(uint32(r), v))
}

func (r LPADC_CMDL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ADCH", Field: LPADC_CMDL_ADCH},
		{Name: "ABSEL", Field: LPADC_CMDL_ABSEL},
	}
}

// LPADC_CMDH is the conversion options register; NEXT chains the command with that number, zero ends the chain.
type LPADC_CMDH uint32

const (
	LPADC_CMDH_CMPEN mmio.Field = 2<<8 | 0
	LPADC_CMDH_LWI   mmio.Field = 1<<8 | 7
	LPADC_CMDH_STS   mmio.Field = 3<<8 | 8
	LPADC_CMDH_AVGS  mmio.Field = 3<<8 | 12
	LPADC_CMDH_LOOP  mmio.Field = 4<<8 | 16
	LPADC_CMDH_NEXT  mmio.Field = 4<<8 | 24
)

func (r LPADC_CMDH) GetCMPEN() uint32 {
	return LPADC_CMDH_CMPEN.Decode(uint32(r))
}

func (r LPADC_CMDH) SetCMPEN(v uint32) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_CMPEN.Insert(uint32(r), v))
}

func (r LPADC_CMDH) GetLWI() bool {
	return LPADC_CMDH_LWI.Bool(uint32(r))
}

func (r LPADC_CMDH) SetLWI(v bool) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_LWI.InsertBool(uint32(r), v))
}

func (r LPADC_CMDH) GetSTS() uint32 {
	return LPADC_CMDH_STS.Decode(uint32(r))
}

func (r LPADC_CMDH) SetSTS(v uint32) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_STS.Insert(uint32(r), v))
}

func (r LPADC_CMDH) GetAVGS() uint32 {
	return LPADC_CMDH_AVGS.Decode(uint32(r))
}

func (r LPADC_CMDH) SetAVGS(v uint32) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_AVGS.Insert(uint32(r), v))
}

func (r LPADC_CMDH) GetLOOP() uint32 {
	return LPADC_CMDH_LOOP.Decode(uint32(r))
}

func (r LPADC_CMDH) SetLOOP(v uint32) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_LOOP.Insert(uint32(r), v))
}

func (r LPADC_CMDH) GetNEXT() uint32 {
	return LPADC_CMDH_NEXT.Decode(uint32(r))
}

func (r LPADC_CMDH) SetNEXT(v uint32) LPADC_CMDH {
	return LPADC_CMDH(LPADC_CMDH_NEXT.Insert(uint32(r), v))
}

func (r LPADC_CMDH) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CMPEN", Field: LPADC_CMDH_CMPEN},
		{Name: "LWI", Field: LPADC_CMDH_LWI},
		{Name: "STS", Field: LPADC_CMDH_STS},
		{Name: "AVGS", Field: LPADC_CMDH_AVGS},
		{Name: "LOOP", Field: LPADC_CMDH_LOOP},
		{Name: "NEXT", Field: LPADC_CMDH_NEXT},
	}
}

// LPADC_CV is the compare value register.
type LPADC_CV uint32

const (
	LPADC_CV_CVL mmio.Field = 16<<8 | 0
	LPADC_CV_CVH mmio.Field = 16<<8 | 16
)

func (r LPADC_CV) GetCVL() uint32 {
	return LPADC_CV_CVL.Decode(uint32(r))
}

func (r LPADC_CV) SetCVL(v uint32) LPADC_CV {
	return LPADC_CV(LPADC_CV_CVL.Insert(uint32(r), v))
}

func (r LPADC_CV) GetCVH() uint32 {
	return LPADC_CV_CVH.Decode(uint32(r))
}

func (r LPADC_CV) SetCVH(v uint32) LPADC_CV {
	return LPADC_CV(LPADC_CV_CVH.Insert(uint32(r), v))
}

func (r LPADC_CV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CVL", Field: LPADC_CV_CVL},
		{Name: "CVH", Field: LPADC_CV_CVH},
	}
}

// LPADC_RESFIFO is the result FIFO register; a read pops the entry.
type LPADC_RESFIFO uint32

const (
	LPADC_RESFIFO_D       mmio.Field = 16<<8 | 0
	LPADC_RESFIFO_TSRC    mmio.Field = 2<<8 | 16
	LPADC_RESFIFO_LOOPCNT mmio.Field = 4<<8 | 20
	LPADC_RESFIFO_CMDSRC  mmio.Field = 4<<8 | 24
	LPADC_RESFIFO_VALID   mmio.Field = 1<<8 | 31
)

func (r LPADC_RESFIFO) GetD() uint32 {
	return LPADC_RESFIFO_D.Decode(uint32(r))
}

func (r LPADC_RESFIFO) GetTSRC() uint32 {
	return LPADC_RESFIFO_TSRC.Decode(uint32(r))
}

func (r LPADC_RESFIFO) GetLOOPCNT() uint32 {
	return LPADC_RESFIFO_LOOPCNT.Decode(uint32(r))
}

func (r LPADC_RESFIFO) GetCMDSRC() uint32 {
	return LPADC_RESFIFO_CMDSRC.Decode(uint32(r))
}

func (r LPADC_RESFIFO) GetVALID() bool {
	return LPADC_RESFIFO_VALID.Bool(uint32(r))
}

func (r LPADC_RESFIFO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "D", Field: LPADC_RESFIFO_D},
		{Name: "TSRC", Field: LPADC_RESFIFO_TSRC},
		{Name: "LOOPCNT", Field: LPADC_RESFIFO_LOOPCNT},
		{Name: "CMDSRC", Field: LPADC_RESFIFO_CMDSRC},
		{Name: "VALID", Field: LPADC_RESFIFO_VALID},
	}
}
