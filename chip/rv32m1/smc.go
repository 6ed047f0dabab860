package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// SMC_TYPE is the register block of the system mode controller.
type SMC_TYPE struct {
	VERID   mmio.RO32[SMC_VERID]  `offset:"0x0" desc:"version ID"`
	PARAM   mmio.RO32[SMC_PARAM]  `offset:"0x4"`
	PMPROT  mmio.RW32[SMC_PMPROT] `offset:"0x8" desc:"power mode protection"`
	_       [4]byte
	PMCTRL  mmio.RW32[SMC_PMCTRL] `offset:"0x10" desc:"power mode control"`
	_       [4]byte
	PMSTAT  mmio.RO32[SMC_PMSTAT] `offset:"0x18"`
	_       [4]byte
	SRS     mmio.RO32[uint32]  `offset:"0x20" desc:"system reset status"`
	RPC     mmio.RW32[SMC_RPC] `offset:"0x24" desc:"reset pin control"`
	SSRS    mmio.RW32[uint32]  `offset:"0x28" desc:"sticky system reset status"`
	SRIE    mmio.RW32[uint32]  `offset:"0x2C"`
	SRIF    mmio.RW32[uint32]  `offset:"0x30"`
	_       [12]byte
	MR      mmio.RW32[SMC_MR] `offset:"0x40" desc:"mode"`
	_       [12]byte
	FM      mmio.RW32[SMC_FM] `offset:"0x50" desc:"force mode"`
	_       [12]byte
	SRAMLPR mmio.RW32[uint32] `offset:"0x60"`
	SRAMDSR mmio.RW32[uint32] `offset:"0x64"`
}

const SMC_SIZE = 0x68

var SMC_BLOCK = layout.MustFromStruct("SMC", reflect.TypeOf(SMC_TYPE{}), SMC_SIZE)

// SMC_VERID is the version ID register.
type SMC_VERID uint32

const (
	SMC_VERID_FEATURE mmio.Field = 16<<8 | 0
	SMC_VERID_MINOR   mmio.Field = 8<<8 | 16
	SMC_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r SMC_VERID) GetFEATURE() uint32 {
	return SMC_VERID_FEATURE.Decode(uint32(r))
}

func (r SMC_VERID) GetMINOR() uint32 {
	return SMC_VERID_MINOR.Decode(uint32(r))
}

func (r SMC_VERID) GetMAJOR() uint32 {
	return SMC_VERID_MAJOR.Decode(uint32(r))
}

func (r SMC_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: SMC_VERID_FEATURE},
		{Name: "MINOR", Field: SMC_VERID_MINOR},
		{Name: "MAJOR", Field: SMC_VERID_MAJOR},
	}
}

type SMC_PARAM uint32

const (
	SMC_PARAM_PWRD_INDPT mmio.Field = 1<<8 | 0
)

func (r SMC_PARAM) GetPWRD_INDPT() bool {
	return SMC_PARAM_PWRD_INDPT.Bool(uint32(r))
}

func (r SMC_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PWRD_INDPT", Field: SMC_PARAM_PWRD_INDPT},
	}
}

// SMC_PMPROT is the power mode protection register.
type SMC_PMPROT uint32

const (
	SMC_PMPROT_AVLLS  mmio.Field = 1<<8 | 1
	SMC_PMPROT_ALLS   mmio.Field = 1<<8 | 3
	SMC_PMPROT_AVLP   mmio.Field = 1<<8 | 5
	SMC_PMPROT_AHSRUN mmio.Field = 1<<8 | 7
)

func (r SMC_PMPROT) GetAVLLS() bool {
	return SMC_PMPROT_AVLLS.Bool(uint32(r))
}

func (r SMC_PMPROT) SetAVLLS(v bool) SMC_PMPROT {
	return SMC_PMPROT(SMC_PMPROT_AVLLS.InsertBool(uint32(r), v))
}

func (r SMC_PMPROT) GetALLS() bool {
	return SMC_PMPROT_ALLS.Bool(uint32(r))
}

func (r SMC_PMPROT) SetALLS(v bool) SMC_PMPROT {
	return SMC_PMPROT(SMC_PMPROT_ALLS.InsertBool(uint32(r), v))
}

func (r SMC_PMPROT) GetAVLP() bool {
	return SMC_PMPROT_AVLP.Bool(uint32(r))
}

func (r SMC_PMPROT) SetAVLP(v bool) SMC_PMPROT {
	return SMC_PMPROT(SMC_PMPROT_AVLP.InsertBool(uint32(r), v))
}

func (r SMC_PMPROT) GetAHSRUN() bool {
	return SMC_PMPROT_AHSRUN.Bool(uint32(r))
}

func (r SMC_PMPROT) SetAHSRUN(v bool) SMC_PMPROT {
	return SMC_PMPROT(SMC_PMPROT_AHSRUN.InsertBool(uint32(r), v))
}

func (r SMC_PMPROT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "AVLLS", Field: SMC_PMPROT_AVLLS},
		{Name: "ALLS", Field: SMC_PMPROT_ALLS},
		{Name: "AVLP", Field: SMC_PMPROT_AVLP},
		{Name: "AHSRUN", Field: SMC_PMPROT_AHSRUN},
	}
}

// SMC_PMCTRL is the power mode control register.
type SMC_PMCTRL uint32

const (
	SMC_PMCTRL_STOPM  mmio.Field = 3<<8 | 0
	SMC_PMCTRL_RUNM   mmio.Field = 2<<8 | 8
	SMC_PMCTRL_PSTOPO mmio.Field = 2<<8 | 16
)

type SMC_PMCTRL_STOPM_Value uint32

const (
	SMC_PMCTRL_STOPM_STOP SMC_PMCTRL_STOPM_Value = 0
	SMC_PMCTRL_STOPM_VLPS SMC_PMCTRL_STOPM_Value = 2
	SMC_PMCTRL_STOPM_LLS  SMC_PMCTRL_STOPM_Value = 3
	SMC_PMCTRL_STOPM_VLLS SMC_PMCTRL_STOPM_Value = 4
)

type SMC_PMCTRL_RUNM_Value uint32

const (
	SMC_PMCTRL_RUNM_RUN   SMC_PMCTRL_RUNM_Value = 0
	SMC_PMCTRL_RUNM_VLPR  SMC_PMCTRL_RUNM_Value = 2
	SMC_PMCTRL_RUNM_HSRUN SMC_PMCTRL_RUNM_Value = 3
)

func (r SMC_PMCTRL) GetSTOPM() SMC_PMCTRL_STOPM_Value {
	return SMC_PMCTRL_STOPM_Value(SMC_PMCTRL_STOPM.Decode(uint32(r)))
}

func (r SMC_PMCTRL) SetSTOPM(v SMC_PMCTRL_STOPM_Value) SMC_PMCTRL {
	return SMC_PMCTRL(SMC_PMCTRL_STOPM.Insert(uint32(r), uint32(v)))
}

func (r SMC_PMCTRL) GetRUNM() SMC_PMCTRL_RUNM_Value {
	return SMC_PMCTRL_RUNM_Value(SMC_PMCTRL_RUNM.Decode(uint32(r)))
}

func (r SMC_PMCTRL) SetRUNM(v SMC_PMCTRL_RUNM_Value) SMC_PMCTRL {
	return SMC_PMCTRL(SMC_PMCTRL_RUNM.Insert(uint32(r), uint32(v)))
}

func (r SMC_PMCTRL) GetPSTOPO() uint32 {
	return SMC_PMCTRL_PSTOPO.Decode(uint32(r))
}

func (r SMC_PMCTRL) SetPSTOPO(v uint32) SMC_PMCTRL {
	return SMC_PMCTRL(SMC_PMCTRL_PSTOPO.Insert(uint32(r), v))
}

func (r SMC_PMCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "STOPM", Field: SMC_PMCTRL_STOPM, Values: []mmio.EnumValue{
			{Name: "STOP", Value: uint32(SMC_PMCTRL_STOPM_STOP)},
			{Name: "VLPS", Value: uint32(SMC_PMCTRL_STOPM_VLPS)},
			{Name: "LLS", Value: uint32(SMC_PMCTRL_STOPM_LLS)},
			{Name: "VLLS", Value: uint32(SMC_PMCTRL_STOPM_VLLS)},
		}},
		{Name: "RUNM", Field: SMC_PMCTRL_RUNM, Values: []mmio.EnumValue{
			{Name: "RUN", Value: uint32(SMC_PMCTRL_RUNM_RUN)},
			{Name: "VLPR", Value: uint32(SMC_PMCTRL_RUNM_VLPR)},
			{Name: "HSRUN", Value: uint32(SMC_PMCTRL_RUNM_HSRUN)},
		}},
		{Name: "PSTOPO", Field: SMC_PMCTRL_PSTOPO},
	}
}

type SMC_PMSTAT uint32

const (
	SMC_PMSTAT_PMSTAT mmio.Field = 8<<8 | 0
)

func (r SMC_PMSTAT) GetPMSTAT() uint32 {
	return SMC_PMSTAT_PMSTAT.Decode(uint32(r))
}

func (r SMC_PMSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PMSTAT", Field: SMC_PMSTAT_PMSTAT},
	}
}

// SMC_RPC is the reset pin control register.
type SMC_RPC uint32

const (
	SMC_RPC_FILTCFG mmio.Field = 5<<8 | 0
	SMC_RPC_FILTEN  mmio.Field = 1<<8 | 8
	SMC_RPC_LPOFEN  mmio.Field = 1<<8 | 9
)

func (r SMC_RPC) GetFILTCFG() uint32 {
	return SMC_RPC_FILTCFG.Decode(uint32(r))
}

func (r SMC_RPC) SetFILTCFG(v uint32) SMC_RPC {
	return SMC_RPC(SMC_RPC_FILTCFG.Insert(uint32(r), v))
}

func (r SMC_RPC) GetFILTEN() bool {
	return SMC_RPC_FILTEN.Bool(uint32(r))
}

func (r SMC_RPC) SetFILTEN(v bool) SMC_RPC {
	return SMC_RPC(SMC_RPC_FILTEN.InsertBool(uint32(r), v))
}

func (r SMC_RPC) GetLPOFEN() bool {
	return SMC_RPC_LPOFEN.Bool(uint32(r))
}

func (r SMC_RPC) SetLPOFEN(v bool) SMC_RPC {
	return SMC_RPC(SMC_RPC_LPOFEN.InsertBool(uint32(r), v))
}

func (r SMC_RPC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FILTCFG", Field: SMC_RPC_FILTCFG},
		{Name: "FILTEN", Field: SMC_RPC_FILTEN},
		{Name: "LPOFEN", Field: SMC_RPC_LPOFEN},
	}
}

// SMC_MR is the mode register.
type SMC_MR uint32

const (
	SMC_MR_BOOTCFG mmio.Field = 2<<8 | 0
)

func (r SMC_MR) GetBOOTCFG() uint32 {
	return SMC_MR_BOOTCFG.Decode(uint32(r))
}

func (r SMC_MR) SetBOOTCFG(v uint32) SMC_MR {
	return SMC_MR(SMC_MR_BOOTCFG.Insert(uint32(r), v))
}

func (r SMC_MR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BOOTCFG", Field: SMC_MR_BOOTCFG},
	}
}

// SMC_FM is the force mode register.
type SMC_FM uint32

const (
	SMC_FM_FORCECFG mmio.Field = 2<<8 | 0
)

func (r SMC_FM) GetFORCECFG() uint32 {
	return SMC_FM_FORCECFG.Decode(uint32(r))
}

func (r SMC_FM) SetFORCECFG(v uint32) SMC_FM {
	return SMC_FM(SMC_FM_FORCECFG.Insert(uint32(r), v))
}

func (r SMC_FM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FORCECFG", Field: SMC_FM_FORCECFG},
	}
}
