package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// TRNG_TYPE is the register block of the true random number generator.
type TRNG_TYPE struct {
	MCTL       mmio.RW32[TRNG_MCTL]   `offset:"0x0" desc:"miscellaneous control; PRGM selects the limit view of PKRMAX, FRQCNT and SCMC"`
	SCMISC     mmio.RW32[TRNG_SCMISC] `offset:"0x4" desc:"statistical check miscellaneous"`
	PKRRNG     mmio.RW32[TRNG_PKRRNG] `offset:"0x8" desc:"poker range"`
	PKRMAX     TRNG_PKRMAX            `offset:"0xC" desc:"poker maximum limit or poker square result"`
	SDCTL      mmio.RW32[TRNG_SDCTL]  `offset:"0x10" desc:"seed control"`
	SBLIM      mmio.RW32[TRNG_SBLIM]  `offset:"0x14" desc:"sparse bit limit"`
	FRQMIN     mmio.RW32[TRNG_FRQMIN] `offset:"0x18" desc:"frequency count minimum limit"`
	FRQCNT     TRNG_FRQCNT            `offset:"0x1C" desc:"frequency count or frequency maximum limit"`
	SCMC       TRNG_SCMC              `offset:"0x20" desc:"statistical check monobit count or limit"`
	_          [28]byte
	ENT        [16]mmio.RO32[uint32] `offset:"0x40" desc:"entropy; reading ENT15 starts the next seed"`
	_          [48]byte
	SEC_CFG    mmio.RW32[TRNG_SEC_CFG]  `offset:"0xB0" desc:"security configuration"`
	INT_CTRL   mmio.RW32[TRNG_INT_CTRL] `offset:"0xB4" desc:"interrupt control"`
	INT_MASK   mmio.RW32[TRNG_INT_CTRL] `offset:"0xB8"`
	INT_STATUS mmio.RO32[TRNG_INT_CTRL] `offset:"0xBC"`
	_          [48]byte
	VID1       mmio.RO32[TRNG_VID1] `offset:"0xF0" desc:"version ID"`
	VID2       mmio.RO32[uint32]    `offset:"0xF4" desc:"version ID 2"`
}

const TRNG_SIZE = 0xF8

var TRNG_BLOCK = layout.MustFromStruct("TRNG", reflect.TypeOf(TRNG_TYPE{}), TRNG_SIZE)

// TRNG_MCTL is the miscellaneous control register; PRGM selects the limit view of PKRMAX, FRQCNT and SCMC.
type TRNG_MCTL uint32

const (
	TRNG_MCTL_SAMP_MODE mmio.Field = 2<<8 | 0
	TRNG_MCTL_OSC_DIV   mmio.Field = 2<<8 | 2
	TRNG_MCTL_TRNG_ACC  mmio.Field = 1<<8 | 5
	TRNG_MCTL_RST_DEF   mmio.Field = 1<<8 | 6
	TRNG_MCTL_FOR_SCLK  mmio.Field = 1<<8 | 7
	TRNG_MCTL_FCT_FAIL  mmio.Field = 1<<8 | 8
	TRNG_MCTL_FCT_VAL   mmio.Field = 1<<8 | 9
	TRNG_MCTL_ENT_VAL   mmio.Field = 1<<8 | 10
	TRNG_MCTL_TST_OUT   mmio.Field = 1<<8 | 11
	TRNG_MCTL_ERR       mmio.Field = 1<<8 | 12
	TRNG_MCTL_TSTOP_OK  mmio.Field = 1<<8 | 13
	TRNG_MCTL_LRUN_CONT mmio.Field = 1<<8 | 14
	TRNG_MCTL_PRGM      mmio.Field = 1<<8 | 16
)

type TRNG_MCTL_SAMP_MODE_Value uint32

const (
	TRNG_MCTL_SAMP_MODE_VON_NEUMANN     TRNG_MCTL_SAMP_MODE_Value = 0
	TRNG_MCTL_SAMP_MODE_RAW             TRNG_MCTL_SAMP_MODE_Value = 1
	TRNG_MCTL_SAMP_MODE_VON_NEUMANN_RAW TRNG_MCTL_SAMP_MODE_Value = 2
)

func (r TRNG_MCTL) GetSAMP_MODE() TRNG_MCTL_SAMP_MODE_Value {
	return TRNG_MCTL_SAMP_MODE_Value(TRNG_MCTL_SAMP_MODE.Decode(uint32(r)))
}

func (r TRNG_MCTL) SetSAMP_MODE(v TRNG_MCTL_SAMP_MODE_Value) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_SAMP_MODE.Insert(uint32(r), uint32(v)))
}

func (r TRNG_MCTL) GetOSC_DIV() uint32 {
	return TRNG_MCTL_OSC_DIV.Decode(uint32(r))
}

func (r TRNG_MCTL) SetOSC_DIV(v uint32) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_OSC_DIV.Insert(uint32(r), v))
}

func (r TRNG_MCTL) GetTRNG_ACC() bool {
	return TRNG_MCTL_TRNG_ACC.Bool(uint32(r))
}

func (r TRNG_MCTL) SetTRNG_ACC(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_TRNG_ACC.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetRST_DEF() bool {
	return TRNG_MCTL_RST_DEF.Bool(uint32(r))
}

func (r TRNG_MCTL) SetRST_DEF(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_RST_DEF.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetFOR_SCLK() bool {
	return TRNG_MCTL_FOR_SCLK.Bool(uint32(r))
}

func (r TRNG_MCTL) SetFOR_SCLK(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_FOR_SCLK.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetFCT_FAIL() bool {
	return TRNG_MCTL_FCT_FAIL.Bool(uint32(r))
}

func (r TRNG_MCTL) SetFCT_FAIL(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_FCT_FAIL.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetFCT_VAL() bool {
	return TRNG_MCTL_FCT_VAL.Bool(uint32(r))
}

func (r TRNG_MCTL) SetFCT_VAL(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_FCT_VAL.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetENT_VAL() bool {
	return TRNG_MCTL_ENT_VAL.Bool(uint32(r))
}

func (r TRNG_MCTL) SetENT_VAL(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_ENT_VAL.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetTST_OUT() bool {
	return TRNG_MCTL_TST_OUT.Bool(uint32(r))
}

func (r TRNG_MCTL) SetTST_OUT(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_TST_OUT.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetERR() bool {
	return TRNG_MCTL_ERR.Bool(uint32(r))
}

func (r TRNG_MCTL) SetERR(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_ERR.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetTSTOP_OK() bool {
	return TRNG_MCTL_TSTOP_OK.Bool(uint32(r))
}

func (r TRNG_MCTL) SetTSTOP_OK(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_TSTOP_OK.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetLRUN_CONT() bool {
	return TRNG_MCTL_LRUN_CONT.Bool(uint32(r))
}

func (r TRNG_MCTL) SetLRUN_CONT(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_LRUN_CONT.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) GetPRGM() bool {
	return TRNG_MCTL_PRGM.Bool(uint32(r))
}

func (r TRNG_MCTL) SetPRGM(v bool) TRNG_MCTL {
	return TRNG_MCTL(TRNG_MCTL_PRGM.InsertBool(uint32(r), v))
}

func (r TRNG_MCTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SAMP_MODE", Field: TRNG_MCTL_SAMP_MODE, Values: []mmio.EnumValue{
			{Name: "VON_NEUMANN", Value: uint32(TRNG_MCTL_SAMP_MODE_VON_NEUMANN)},
			{Name: "RAW", Value: uint32(TRNG_MCTL_SAMP_MODE_RAW)},
			{Name: "VON_NEUMANN_RAW", Value: uint32(TRNG_MCTL_SAMP_MODE_VON_NEUMANN_RAW)},
		}},
		{Name: "OSC_DIV", Field: TRNG_MCTL_OSC_DIV},
		{Name: "TRNG_ACC", Field: TRNG_MCTL_TRNG_ACC},
		{Name: "RST_DEF", Field: TRNG_MCTL_RST_DEF},
		{Name: "FOR_SCLK", Field: TRNG_MCTL_FOR_SCLK},
		{Name: "FCT_FAIL", Field: TRNG_MCTL_FCT_FAIL},
		{Name: "FCT_VAL", Field: TRNG_MCTL_FCT_VAL},
		{Name: "ENT_VAL", Field: TRNG_MCTL_ENT_VAL},
		{Name: "TST_OUT", Field: TRNG_MCTL_TST_OUT},
		{Name: "ERR", Field: TRNG_MCTL_ERR},
		{Name: "TSTOP_OK", Field: TRNG_MCTL_TSTOP_OK},
		{Name: "LRUN_CONT", Field: TRNG_MCTL_LRUN_CONT},
		{Name: "PRGM", Field: TRNG_MCTL_PRGM},
	}
}

// TRNG_SCMISC is the statistical check miscellaneous register.
type TRNG_SCMISC uint32

const (
	TRNG_SCMISC_LRUN_MAX mmio.Field = 8<<8 | 0
	TRNG_SCMISC_RTY_CT   mmio.Field = 4<<8 | 16
)

func (r TRNG_SCMISC) GetLRUN_MAX() uint32 {
	return TRNG_SCMISC_LRUN_MAX.Decode(uint32(r))
}

func (r TRNG_SCMISC) SetLRUN_MAX(v uint32) TRNG_SCMISC {
	return TRNG_SCMISC(TRNG_SCMISC_LRUN_MAX.Insert(uint32(r), v))
}

func (r TRNG_SCMISC) GetRTY_CT() uint32 {
	return TRNG_SCMISC_RTY_CT.Decode(uint32(r))
}

func (r TRNG_SCMISC) SetRTY_CT(v uint32) TRNG_SCMISC {
	return TRNG_SCMISC(TRNG_SCMISC_RTY_CT.Insert(uint32(r), v))
}

func (r TRNG_SCMISC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LRUN_MAX", Field: TRNG_SCMISC_LRUN_MAX},
		{Name: "RTY_CT", Field: TRNG_SCMISC_RTY_CT},
	}
}

// TRNG_PKRRNG is the poker range register.
type TRNG_PKRRNG uint32

const (
	TRNG_PKRRNG_PKR_RNG mmio.Field = 16<<8 | 0
)

func (r TRNG_PKRRNG) GetPKR_RNG() uint32 {
	return TRNG_PKRRNG_PKR_RNG.Decode(uint32(r))
}

func (r TRNG_PKRRNG) SetPKR_RNG(v uint32) TRNG_PKRRNG {
	return TRNG_PKRRNG(TRNG_PKRRNG_PKR_RNG.Insert(uint32(r), v))
}

func (r TRNG_PKRRNG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PKR_RNG", Field: TRNG_PKRRNG_PKR_RNG},
	}
}

// TRNG_PKRMAX is the poker maximum limit or poker square result register.
// MCTL[PRGM] selects the view.
type TRNG_PKRMAX struct {
	mmio.Union32
}

// PKRMAX is the program mode limit view of PKRMAX.
func (u *TRNG_PKRMAX) PKRMAX() *mmio.RW32[TRNG_PKRMAX_PKRMAX] {
	return mmio.AsRW32[TRNG_PKRMAX_PKRMAX](&u.Union32)
}

// PKRSQ is the run mode result view of PKRMAX.
func (u *TRNG_PKRMAX) PKRSQ() *mmio.RO32[TRNG_PKRMAX_PKRSQ] {
	return mmio.AsRO32[TRNG_PKRMAX_PKRSQ](&u.Union32)
}

func (u *TRNG_PKRMAX) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "PKRMAX", Access: mmio.ReadWrite, Fields: TRNG_PKRMAX_PKRMAX(0).Fields()},
		{Name: "PKRSQ", Access: mmio.ReadOnly, Fields: TRNG_PKRMAX_PKRSQ(0).Fields()},
	}
}

type TRNG_PKRMAX_PKRMAX uint32

const (
	TRNG_PKRMAX_PKRMAX_PKR_MAX mmio.Field = 24<<8 | 0
)

func (r TRNG_PKRMAX_PKRMAX) GetPKR_MAX() uint32 {
	return TRNG_PKRMAX_PKRMAX_PKR_MAX.Decode(uint32(r))
}

func (r TRNG_PKRMAX_PKRMAX) SetPKR_MAX(v uint32) TRNG_PKRMAX_PKRMAX {
	return TRNG_PKRMAX_PKRMAX(TRNG_PKRMAX_PKRMAX_PKR_MAX.Insert(uint32(r), v))
}

func (r TRNG_PKRMAX_PKRMAX) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PKR_MAX", Field: TRNG_PKRMAX_PKRMAX_PKR_MAX},
	}
}

type TRNG_PKRMAX_PKRSQ uint32

const (
	TRNG_PKRMAX_PKRSQ_PKR_SQ mmio.Field = 24<<8 | 0
)

func (r TRNG_PKRMAX_PKRSQ) GetPKR_SQ() uint32 {
	return TRNG_PKRMAX_PKRSQ_PKR_SQ.Decode(uint32(r))
}

func (r TRNG_PKRMAX_PKRSQ) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PKR_SQ", Field: TRNG_PKRMAX_PKRSQ_PKR_SQ},
	}
}

// TRNG_SDCTL is the seed control register.
type TRNG_SDCTL uint32

const (
	TRNG_SDCTL_SAMP_SIZE mmio.Field = 16<<8 | 0
	TRNG_SDCTL_ENT_DLY   mmio.Field = 16<<8 | 16
)

func (r TRNG_SDCTL) GetSAMP_SIZE() uint32 {
	return TRNG_SDCTL_SAMP_SIZE.Decode(uint32(r))
}

func (r TRNG_SDCTL) SetSAMP_SIZE(v uint32) TRNG_SDCTL {
	return TRNG_SDCTL(TRNG_SDCTL_SAMP_SIZE.Insert(uint32(r), v))
}

func (r TRNG_SDCTL) GetENT_DLY() uint32 {
	return TRNG_SDCTL_ENT_DLY.Decode(uint32(r))
}

func (r TRNG_SDCTL) SetENT_DLY(v uint32) TRNG_SDCTL {
	return TRNG_SDCTL(TRNG_SDCTL_ENT_DLY.Insert(uint32(r), v))
}

func (r TRNG_SDCTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SAMP_SIZE", Field: TRNG_SDCTL_SAMP_SIZE},
		{Name: "ENT_DLY", Field: TRNG_SDCTL_ENT_DLY},
	}
}

// TRNG_SBLIM is the sparse bit limit register.
type TRNG_SBLIM uint32

const (
	TRNG_SBLIM_SB_LIM mmio.Field = 10<<8 | 0
)

func (r TRNG_SBLIM) GetSB_LIM() uint32 {
	return TRNG_SBLIM_SB_LIM.Decode(uint32(r))
}

func (r TRNG_SBLIM) SetSB_LIM(v uint32) TRNG_SBLIM {
	return TRNG_SBLIM(TRNG_SBLIM_SB_LIM.Insert(uint32(r), v))
}

func (r TRNG_SBLIM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SB_LIM", Field: TRNG_SBLIM_SB_LIM},
	}
}

// TRNG_FRQMIN is the frequency count minimum limit register.
type TRNG_FRQMIN uint32

const (
	TRNG_FRQMIN_FRQ_MIN mmio.Field = 22<<8 | 0
)

func (r TRNG_FRQMIN) GetFRQ_MIN() uint32 {
	return TRNG_FRQMIN_FRQ_MIN.Decode(uint32(r))
}

func (r TRNG_FRQMIN) SetFRQ_MIN(v uint32) TRNG_FRQMIN {
	return TRNG_FRQMIN(TRNG_FRQMIN_FRQ_MIN.Insert(uint32(r), v))
}

func (r TRNG_FRQMIN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRQ_MIN", Field: TRNG_FRQMIN_FRQ_MIN},
	}
}

// TRNG_FRQCNT is the frequency count or frequency maximum limit register.
// MCTL[PRGM] selects the view.
type TRNG_FRQCNT struct {
	mmio.Union32
}

// FRQCNT is the run mode count view of FRQCNT.
func (u *TRNG_FRQCNT) FRQCNT() *mmio.RO32[TRNG_FRQCNT_FRQCNT] {
	return mmio.AsRO32[TRNG_FRQCNT_FRQCNT](&u.Union32)
}

// FRQMAX is the program mode limit view of FRQCNT.
func (u *TRNG_FRQCNT) FRQMAX() *mmio.RW32[TRNG_FRQCNT_FRQMAX] {
	return mmio.AsRW32[TRNG_FRQCNT_FRQMAX](&u.Union32)
}

func (u *TRNG_FRQCNT) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "FRQCNT", Access: mmio.ReadOnly, Fields: TRNG_FRQCNT_FRQCNT(0).Fields()},
		{Name: "FRQMAX", Access: mmio.ReadWrite, Fields: TRNG_FRQCNT_FRQMAX(0).Fields()},
	}
}

type TRNG_FRQCNT_FRQCNT uint32

const (
	TRNG_FRQCNT_FRQCNT_FRQ_CT mmio.Field = 22<<8 | 0
)

func (r TRNG_FRQCNT_FRQCNT) GetFRQ_CT() uint32 {
	return TRNG_FRQCNT_FRQCNT_FRQ_CT.Decode(uint32(r))
}

func (r TRNG_FRQCNT_FRQCNT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRQ_CT", Field: TRNG_FRQCNT_FRQCNT_FRQ_CT},
	}
}

type TRNG_FRQCNT_FRQMAX uint32

const (
	TRNG_FRQCNT_FRQMAX_FRQ_MAX mmio.Field = 22<<8 | 0
)

func (r TRNG_FRQCNT_FRQMAX) GetFRQ_MAX() uint32 {
	return TRNG_FRQCNT_FRQMAX_FRQ_MAX.Decode(uint32(r))
}

func (r TRNG_FRQCNT_FRQMAX) SetFRQ_MAX(v uint32) TRNG_FRQCNT_FRQMAX {
	return TRNG_FRQCNT_FRQMAX(TRNG_FRQCNT_FRQMAX_FRQ_MAX.Insert(uint32(r), v))
}

func (r TRNG_FRQCNT_FRQMAX) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRQ_MAX", Field: TRNG_FRQCNT_FRQMAX_FRQ_MAX},
	}
}

// TRNG_SCMC is the statistical check monobit count or limit register.
// MCTL[PRGM] selects the view.
type TRNG_SCMC struct {
	mmio.Union32
}

// SCMC is the run mode count view of SCMC.
func (u *TRNG_SCMC) SCMC() *mmio.RO32[TRNG_SCMC_SCMC] {
	return mmio.AsRO32[TRNG_SCMC_SCMC](&u.Union32)
}

// SCML is the program mode limit view of SCMC.
func (u *TRNG_SCMC) SCML() *mmio.RW32[TRNG_SCMC_SCML] {
	return mmio.AsRW32[TRNG_SCMC_SCML](&u.Union32)
}

func (u *TRNG_SCMC) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "SCMC", Access: mmio.ReadOnly, Fields: TRNG_SCMC_SCMC(0).Fields()},
		{Name: "SCML", Access: mmio.ReadWrite, Fields: TRNG_SCMC_SCML(0).Fields()},
	}
}

type TRNG_SCMC_SCMC uint32

const (
	TRNG_SCMC_SCMC_MONO_CT mmio.Field = 16<<8 | 0
)

func (r TRNG_SCMC_SCMC) GetMONO_CT() uint32 {
	return TRNG_SCMC_SCMC_MONO_CT.Decode(uint32(r))
}

func (r TRNG_SCMC_SCMC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MONO_CT", Field: TRNG_SCMC_SCMC_MONO_CT},
	}
}

type TRNG_SCMC_SCML uint32

const (
	TRNG_SCMC_SCML_MONO_MAX mmio.Field = 16<<8 | 0
	TRNG_SCMC_SCML_MONO_RNG mmio.Field = 16<<8 | 16
)

func (r TRNG_SCMC_SCML) GetMONO_MAX() uint32 {
	return TRNG_SCMC_SCML_MONO_MAX.Decode(uint32(r))
}

func (r TRNG_SCMC_SCML) SetMONO_MAX(v uint32) TRNG_SCMC_SCML {
	return TRNG_SCMC_SCML(TRNG_SCMC_SCML_MONO_MAX.Insert(uint32(r), v))
}

func (r TRNG_SCMC_SCML) GetMONO_RNG() uint32 {
	return TRNG_SCMC_SCML_MONO_RNG.Decode(uint32(r))
}

func (r TRNG_SCMC_SCML) SetMONO_RNG(v uint32) TRNG_SCMC_SCML {
	return TRNG_SCMC_SCML(TRNG_SCMC_SCML_MONO_RNG.Insert(uint32(r), v))
}

func (r TRNG_SCMC_SCML) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MONO_MAX", Field: TRNG_SCMC_SCML_MONO_MAX},
		{Name: "MONO_RNG", Field: TRNG_SCMC_SCML_MONO_RNG},
	}
}

// TRNG_SEC_CFG is the security configuration register.
type TRNG_SEC_CFG uint32

const (
	TRNG_SEC_CFG_NO_PRGM mmio.Field = 1<<8 | 1
)

func (r TRNG_SEC_CFG) GetNO_PRGM() bool {
	return TRNG_SEC_CFG_NO_PRGM.Bool(uint32(r))
}

func (r TRNG_SEC_CFG) SetNO_PRGM(v bool) TRNG_SEC_CFG {
	return TRNG_SEC_CFG(TRNG_SEC_CFG_NO_PRGM.InsertBool(uint32(r), v))
}

func (r TRNG_SEC_CFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "NO_PRGM", Field: TRNG_SEC_CFG_NO_PRGM},
	}
}

// TRNG_INT_CTRL is the interrupt control register.
type TRNG_INT_CTRL uint32

const (
	TRNG_INT_CTRL_HW_ERR      mmio.Field = 1<<8 | 0
	TRNG_INT_CTRL_ENT_VAL     mmio.Field = 1<<8 | 1
	TRNG_INT_CTRL_FRQ_CT_FAIL mmio.Field = 1<<8 | 2
)

func (r TRNG_INT_CTRL) GetHW_ERR() bool {
	return TRNG_INT_CTRL_HW_ERR.Bool(uint32(r))
}

func (r TRNG_INT_CTRL) SetHW_ERR(v bool) TRNG_INT_CTRL {
	return TRNG_INT_CTRL(TRNG_INT_CTRL_HW_ERR.InsertBool(uint32(r), v))
}

func (r TRNG_INT_CTRL) GetENT_VAL() bool {
	return TRNG_INT_CTRL_ENT_VAL.Bool(uint32(r))
}

func (r TRNG_INT_CTRL) SetENT_VAL(v bool) TRNG_INT_CTRL {
	return TRNG_INT_CTRL(TRNG_INT_CTRL_ENT_VAL.InsertBool(uint32(r), v))
}

func (r TRNG_INT_CTRL) GetFRQ_CT_FAIL() bool {
	return TRNG_INT_CTRL_FRQ_CT_FAIL.Bool(uint32(r))
}

func (r TRNG_INT_CTRL) SetFRQ_CT_FAIL(v bool) TRNG_INT_CTRL {
	return TRNG_INT_CTRL(TRNG_INT_CTRL_FRQ_CT_FAIL.InsertBool(uint32(r), v))
}

func (r TRNG_INT_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HW_ERR", Field: TRNG_INT_CTRL_HW_ERR},
		{Name: "ENT_VAL", Field: TRNG_INT_CTRL_ENT_VAL},
		{Name: "FRQ_CT_FAIL", Field: TRNG_INT_CTRL_FRQ_CT_FAIL},
	}
}

// TRNG_VID1 is the version ID register.
type TRNG_VID1 uint32

const (
	TRNG_VID1_MIN_REV mmio.Field = 8<<8 | 0
	TRNG_VID1_MAJ_REV mmio.Field = 8<<8 | 8
	TRNG_VID1_IP_ID   mmio.Field = 16<<8 | 16
)

func (r TRNG_VID1) GetMIN_REV() uint32 {
	return TRNG_VID1_MIN_REV.Decode(uint32(r))
}

func (r TRNG_VID1) GetMAJ_REV() uint32 {
	return TRNG_VID1_MAJ_REV.Decode(uint32(r))
}

func (r TRNG_VID1) GetIP_ID() uint32 {
	return TRNG_VID1_IP_ID.Decode(uint32(r))
}

func (r TRNG_VID1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MIN_REV", Field: TRNG_VID1_MIN_REV},
		{Name: "MAJ_REV", Field: TRNG_VID1_MAJ_REV},
		{Name: "IP_ID", Field: TRNG_VID1_IP_ID},
	}
}
