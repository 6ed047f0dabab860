package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// CAU3_TYPE is the register block of the cryptographic acceleration unit.
type CAU3_TYPE struct {
	PCT     mmio.RO32[CAU3_PCT]  `offset:"0x0" desc:"processor core type"`
	MCFG    mmio.RO32[CAU3_MCFG] `offset:"0x4"`
	_       [248]byte
	CR      mmio.RW32[CAU3_CR] `offset:"0x100" desc:"control"`
	SR      mmio.RW32[CAU3_SR] `offset:"0x104" desc:"status; TKCS is the task completion state"`
	_       [8]byte
	DBGCSR  mmio.RW32[uint32] `offset:"0x110" desc:"debug control and status"`
	DBGPBR  mmio.RW32[uint32] `offset:"0x114" desc:"debug PC breakpoint"`
	_       [8]byte
	DBGMCMD mmio.WO32[uint32] `offset:"0x120" desc:"debug memory command"`
	DBGMADR mmio.RW32[uint32] `offset:"0x124" desc:"debug memory address"`
	DBGMDR  mmio.RW32[uint32] `offset:"0x128" desc:"debug memory data"`
	_       [84]byte
	SEMA4   mmio.RW32[CAU3_SEMA4]  `offset:"0x180" desc:"semaphore; a write with LK set claims it, a write with LK clear releases it"`
	SMOWNR  mmio.RO32[CAU3_SMOWNR] `offset:"0x184" desc:"semaphore ownership"`
	_       [4]byte
	ARR     mmio.WO32[CAU3_ARR] `offset:"0x18C" desc:"address remap"`
}

const CAU3_SIZE = 0x190

var CAU3_BLOCK = layout.MustFromStruct("CAU3", reflect.TypeOf(CAU3_TYPE{}), CAU3_SIZE)

// CAU3_PCT is the processor core type register.
type CAU3_PCT uint32

const (
	CAU3_PCT_Y  mmio.Field = 4<<8 | 0
	CAU3_PCT_ID mmio.Field = 28<<8 | 4
)

func (r CAU3_PCT) GetY() uint32 {
	return CAU3_PCT_Y.Decode(uint32(r))
}

func (r CAU3_PCT) GetID() uint32 {
	return CAU3_PCT_ID.Decode(uint32(r))
}

func (r CAU3_PCT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "Y", Field: CAU3_PCT_Y},
		{Name: "ID", Field: CAU3_PCT_ID},
	}
}

type CAU3_MCFG uint32

const (
	CAU3_MCFG_DRAM_SZ mmio.Field = 4<<8 | 8
	CAU3_MCFG_IROM_SZ mmio.Field = 4<<8 | 16
	CAU3_MCFG_IMEM_SZ mmio.Field = 4<<8 | 20
	CAU3_MCFG_MAXREV  mmio.Field = 4<<8 | 28
)

func (r CAU3_MCFG) GetDRAM_SZ() uint32 {
	return CAU3_MCFG_DRAM_SZ.Decode(uint32(r))
}

func (r CAU3_MCFG) GetIROM_SZ() uint32 {
	return CAU3_MCFG_IROM_SZ.Decode(uint32(r))
}

func (r CAU3_MCFG) GetIMEM_SZ() uint32 {
	return CAU3_MCFG_IMEM_SZ.Decode(uint32(r))
}

func (r CAU3_MCFG) GetMAXREV() uint32 {
	return CAU3_MCFG_MAXREV.Decode(uint32(r))
}

func (r CAU3_MCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DRAM_SZ", Field: CAU3_MCFG_DRAM_SZ},
		{Name: "IROM_SZ", Field: CAU3_MCFG_IROM_SZ},
		{Name: "IMEM_SZ", Field: CAU3_MCFG_IMEM_SZ},
		{Name: "MAXREV", Field: CAU3_MCFG_MAXREV},
	}
}

// CAU3_CR is the control register.
type CAU3_CR uint32

const (
	CAU3_CR_TCSEIE mmio.Field = 1<<8 | 0
	CAU3_CR_ILLIE  mmio.Field = 1<<8 | 1
	CAU3_CR_ASREIE mmio.Field = 1<<8 | 2
	CAU3_CR_IIADIE mmio.Field = 1<<8 | 3
	CAU3_CR_DSHFIE mmio.Field = 1<<8 | 4
	CAU3_CR_DTCCFG mmio.Field = 3<<8 | 16
	CAU3_CR_FSV    mmio.Field = 1<<8 | 23
	CAU3_CR_MDIS   mmio.Field = 1<<8 | 24
	CAU3_CR_DDBGMC mmio.Field = 1<<8 | 27
	CAU3_CR_DSHFI  mmio.Field = 1<<8 | 28
	CAU3_CR_RSTSM4 mmio.Field = 2<<8 | 30
)

func (r CAU3_CR) GetTCSEIE() bool {
	return CAU3_CR_TCSEIE.Bool(uint32(r))
}

func (r CAU3_CR) SetTCSEIE(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_TCSEIE.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetILLIE() bool {
	return CAU3_CR_ILLIE.Bool(uint32(r))
}

func (r CAU3_CR) SetILLIE(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_ILLIE.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetASREIE() bool {
	return CAU3_CR_ASREIE.Bool(uint32(r))
}

func (r CAU3_CR) SetASREIE(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_ASREIE.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetIIADIE() bool {
	return CAU3_CR_IIADIE.Bool(uint32(r))
}

func (r CAU3_CR) SetIIADIE(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_IIADIE.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetDSHFIE() bool {
	return CAU3_CR_DSHFIE.Bool(uint32(r))
}

func (r CAU3_CR) SetDSHFIE(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_DSHFIE.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetDTCCFG() uint32 {
	return CAU3_CR_DTCCFG.Decode(uint32(r))
}

func (r CAU3_CR) SetDTCCFG(v uint32) CAU3_CR {
	return CAU3_CR(CAU3_CR_DTCCFG.Insert(uint32(r), v))
}

func (r CAU3_CR) GetFSV() bool {
	return CAU3_CR_FSV.Bool(uint32(r))
}

func (r CAU3_CR) SetFSV(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_FSV.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetMDIS() bool {
	return CAU3_CR_MDIS.Bool(uint32(r))
}

func (r CAU3_CR) SetMDIS(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_MDIS.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetDDBGMC() bool {
	return CAU3_CR_DDBGMC.Bool(uint32(r))
}

func (r CAU3_CR) SetDDBGMC(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_DDBGMC.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetDSHFI() bool {
	return CAU3_CR_DSHFI.Bool(uint32(r))
}

func (r CAU3_CR) SetDSHFI(v bool) CAU3_CR {
	return CAU3_CR(CAU3_CR_DSHFI.InsertBool(uint32(r), v))
}

func (r CAU3_CR) GetRSTSM4() uint32 {
	return CAU3_CR_RSTSM4.Decode(uint32(r))
}

func (r CAU3_CR) SetRSTSM4(v uint32) CAU3_CR {
	return CAU3_CR(CAU3_CR_RSTSM4.Insert(uint32(r), v))
}

func (r CAU3_CR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TCSEIE", Field: CAU3_CR_TCSEIE},
		{Name: "ILLIE", Field: CAU3_CR_ILLIE},
		{Name: "ASREIE", Field: CAU3_CR_ASREIE},
		{Name: "IIADIE", Field: CAU3_CR_IIADIE},
		{Name: "DSHFIE", Field: CAU3_CR_DSHFIE},
		{Name: "DTCCFG", Field: CAU3_CR_DTCCFG},
		{Name: "FSV", Field: CAU3_CR_FSV},
		{Name: "MDIS", Field: CAU3_CR_MDIS},
		{Name: "DDBGMC", Field: CAU3_CR_DDBGMC},
		{Name: "DSHFI", Field: CAU3_CR_DSHFI},
		{Name: "RSTSM4", Field: CAU3_CR_RSTSM4},
	}
}

// CAU3_SR is the status register; TKCS is the task completion state.
type CAU3_SR uint32

const (
	CAU3_SR_TKCS   mmio.Field = 4<<8 | 0
	CAU3_SR_SVF    mmio.Field = 1<<8 | 5
	CAU3_SR_TCSEIR mmio.Field = 1<<8 | 8
	CAU3_SR_ILLIR  mmio.Field = 1<<8 | 9
	CAU3_SR_ASREIR mmio.Field = 1<<8 | 10
	CAU3_SR_IIADIR mmio.Field = 1<<8 | 11
	CAU3_SR_DSHFIR mmio.Field = 1<<8 | 12
	CAU3_SR_TCIRQ  mmio.Field = 1<<8 | 15
	CAU3_SR_TCCE   mmio.Field = 2<<8 | 16
	CAU3_SR_MSYNC  mmio.Field = 1<<8 | 31
)

type CAU3_SR_TKCS_Value uint32

const (
	CAU3_SR_TKCS_INIT   CAU3_SR_TKCS_Value = 0
	CAU3_SR_TKCS_RUN    CAU3_SR_TKCS_Value = 1
	CAU3_SR_TKCS_DBGHLT CAU3_SR_TKCS_Value = 2
	CAU3_SR_TKCS_STOP   CAU3_SR_TKCS_Value = 9
	CAU3_SR_TKCS_FAULT  CAU3_SR_TKCS_Value = 10
	CAU3_SR_TKCS_CMPLT  CAU3_SR_TKCS_Value = 14
	CAU3_SR_TKCS_DONE   CAU3_SR_TKCS_Value = 15
)

func (r CAU3_SR) GetTKCS() CAU3_SR_TKCS_Value {
	return CAU3_SR_TKCS_Value(CAU3_SR_TKCS.Decode(uint32(r)))
}

func (r CAU3_SR) SetTKCS(v CAU3_SR_TKCS_Value) CAU3_SR {
	return CAU3_SR(CAU3_SR_TKCS.Insert(uint32(r), uint32(v)))
}

func (r CAU3_SR) GetSVF() bool {
	return CAU3_SR_SVF.Bool(uint32(r))
}

func (r CAU3_SR) SetSVF(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_SVF.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetTCSEIR() bool {
	return CAU3_SR_TCSEIR.Bool(uint32(r))
}

func (r CAU3_SR) SetTCSEIR(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_TCSEIR.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetILLIR() bool {
	return CAU3_SR_ILLIR.Bool(uint32(r))
}

func (r CAU3_SR) SetILLIR(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_ILLIR.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetASREIR() bool {
	return CAU3_SR_ASREIR.Bool(uint32(r))
}

func (r CAU3_SR) SetASREIR(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_ASREIR.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetIIADIR() bool {
	return CAU3_SR_IIADIR.Bool(uint32(r))
}

func (r CAU3_SR) SetIIADIR(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_IIADIR.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetDSHFIR() bool {
	return CAU3_SR_DSHFIR.Bool(uint32(r))
}

func (r CAU3_SR) SetDSHFIR(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_DSHFIR.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetTCIRQ() bool {
	return CAU3_SR_TCIRQ.Bool(uint32(r))
}

func (r CAU3_SR) SetTCIRQ(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_TCIRQ.InsertBool(uint32(r), v))
}

func (r CAU3_SR) GetTCCE() uint32 {
	return CAU3_SR_TCCE.Decode(uint32(r))
}

func (r CAU3_SR) SetTCCE(v uint32) CAU3_SR {
	return CAU3_SR(CAU3_SR_TCCE.Insert(uint32(r), v))
}

func (r CAU3_SR) GetMSYNC() bool {
	return CAU3_SR_MSYNC.Bool(uint32(r))
}

func (r CAU3_SR) SetMSYNC(v bool) CAU3_SR {
	return CAU3_SR(CAU3_SR_MSYNC.InsertBool(uint32(r), v))
}

func (r CAU3_SR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TKCS", Field: CAU3_SR_TKCS, Values: []mmio.EnumValue{
			{Name: "INIT", Value: uint32(CAU3_SR_TKCS_INIT)},
			{Name: "RUN", Value: uint32(CAU3_SR_TKCS_RUN)},
			{Name: "DBGHLT", Value: uint32(CAU3_SR_TKCS_DBGHLT)},
			{Name: "STOP", Value: uint32(CAU3_SR_TKCS_STOP)},
			{Name: "FAULT", Value: uint32(CAU3_SR_TKCS_FAULT)},
			{Name: "CMPLT", Value: uint32(CAU3_SR_TKCS_CMPLT)},
			{Name: "DONE", Value: uint32(CAU3_SR_TKCS_DONE)},
		}},
		{Name: "SVF", Field: CAU3_SR_SVF},
		{Name: "TCSEIR", Field: CAU3_SR_TCSEIR},
		{Name: "ILLIR", Field: CAU3_SR_ILLIR},
		{Name: "ASREIR", Field: CAU3_SR_ASREIR},
		{Name: "IIADIR", Field: CAU3_SR_IIADIR},
		{Name: "DSHFIR", Field: CAU3_SR_DSHFIR},
		{Name: "TCIRQ", Field: CAU3_SR_TCIRQ},
		{Name: "TCCE", Field: CAU3_SR_TCCE},
		{Name: "MSYNC", Field: CAU3_SR_MSYNC},
	}
}

// CAU3_SEMA4 is the semaphore register; a write with LK set claims it, a write with LK clear releases it.
type CAU3_SEMA4 uint32

const (
	CAU3_SEMA4_DID       mmio.Field = 4<<8 | 0
	CAU3_SEMA4_NS        mmio.Field = 1<<8 | 28
	CAU3_SEMA4_PRIVILEGE mmio.Field = 1<<8 | 29
	CAU3_SEMA4_LK        mmio.Field = 1<<8 | 31
)

func (r CAU3_SEMA4) GetDID() uint32 {
	return CAU3_SEMA4_DID.Decode(uint32(r))
}

func (r CAU3_SEMA4) SetDID(v uint32) CAU3_SEMA4 {
	return CAU3_SEMA4(CAU3_SEMA4_DID.Insert(uint32(r), v))
}

func (r CAU3_SEMA4) GetNS() bool {
	return CAU3_SEMA4_NS.Bool(uint32(r))
}

func (r CAU3_SEMA4) SetNS(v bool) CAU3_SEMA4 {
	return CAU3_SEMA4(CAU3_SEMA4_NS.InsertBool(uint32(r), v))
}

func (r CAU3_SEMA4) GetPRIVILEGE() bool {
	return CAU3_SEMA4_PRIVILEGE.Bool(uint32(r))
}

func (r CAU3_SEMA4) SetPRIVILEGE(v bool) CAU3_SEMA4 {
	return CAU3_SEMA4(CAU3_SEMA4_PRIVILEGE.InsertBool(uint32(r), v))
}

func (r CAU3_SEMA4) GetLK() bool {
	return CAU3_SEMA4_LK.Bool(uint32(r))
}

func (r CAU3_SEMA4) SetLK(v bool) CAU3_SEMA4 {
	return CAU3_SEMA4(CAU3_SEMA4_LK.InsertBool(uint32(r), v))
}

func (r CAU3_SEMA4) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DID", Field: CAU3_SEMA4_DID},
		{Name: "NS", Field: CAU3_SEMA4_NS},
		{Name: "PRIVILEGE", Field: CAU3_SEMA4_PRIVILEGE},
		{Name: "LK", Field: CAU3_SEMA4_LK},
	}
}

// CAU3_SMOWNR is the semaphore ownership register.
type CAU3_SMOWNR uint32

const (
	CAU3_SMOWNR_LOCK   mmio.Field = 1<<8 | 0
	CAU3_SMOWNR_NOWNER mmio.Field = 1<<8 | 31
)

func (r CAU3_SMOWNR) GetLOCK() bool {
	return CAU3_SMOWNR_LOCK.Bool(uint32(r))
}

func (r CAU3_SMOWNR) GetNOWNER() bool {
	return CAU3_SMOWNR_NOWNER.Bool(uint32(r))
}

func (r CAU3_SMOWNR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LOCK", Field: CAU3_SMOWNR_LOCK},
		{Name: "NOWNER", Field: CAU3_SMOWNR_NOWNER},
	}
}

// CAU3_ARR is the address remap register.
type CAU3_ARR uint32

const (
	CAU3_ARR_RESET mmio.Field = 1<<8 | 31
)

func (r CAU3_ARR) SetRESET(v bool) CAU3_ARR {
	return CAU3_ARR(CAU3_ARR_RESET.InsertBool(uint32(r), v))
}

func (r CAU3_ARR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RESET", Field: CAU3_ARR_RESET},
	}
}
