package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// DMA_TYPE is the register block of the enhanced direct memory access
// controller.
//
// Writes to CEEI through CINT act on a single channel, or on all channels
// when the bulk bit is set, without a read-modify-write of ERQ, EEI, INT or
// ERR.
type DMA_TYPE struct {
	CR      mmio.RW32[DMA_CR] `offset:"0x0" desc:"control"`
	ES      mmio.RO32[DMA_ES] `offset:"0x4" desc:"error status"`
	_       [4]byte
	ERQ     mmio.RW32[DMA_ERQ] `offset:"0xC" desc:"enable request"`
	_       [4]byte
	EEI     mmio.RW32[DMA_EEI] `offset:"0x14" desc:"enable error interrupt"`
	CEEI    mmio.WO8[DMA_CEEI] `offset:"0x18"`
	SEEI    mmio.WO8[DMA_SEEI] `offset:"0x19"`
	CERQ    mmio.WO8[DMA_CERQ] `offset:"0x1A"`
	SERQ    mmio.WO8[DMA_SERQ] `offset:"0x1B"`
	CDNE    mmio.WO8[DMA_CDNE] `offset:"0x1C"`
	SSRT    mmio.WO8[DMA_SSRT] `offset:"0x1D"`
	CERR    mmio.WO8[DMA_CERR] `offset:"0x1E"`
	CINT    mmio.WO8[DMA_CINT] `offset:"0x1F"`
	_       [4]byte
	INT     mmio.RW32[DMA_INT] `offset:"0x24" desc:"interrupt request; write one to clear"`
	_       [4]byte
	ERR     mmio.RW32[DMA_ERR] `offset:"0x2C" desc:"error; write one to clear"`
	_       [4]byte
	HRS     mmio.RO32[DMA_HRS] `offset:"0x34" desc:"hardware request status"`
	_       [12]byte
	EARS    mmio.RW32[DMA_EARS] `offset:"0x44" desc:"enable asynchronous request in stop"`
	_       [184]byte
	DCHPRI3 mmio.RW8[DMA_DCHPRI] `offset:"0x100" desc:"channel priority"`
	DCHPRI2 mmio.RW8[DMA_DCHPRI] `offset:"0x101"`
	DCHPRI1 mmio.RW8[DMA_DCHPRI] `offset:"0x102"`
	DCHPRI0 mmio.RW8[DMA_DCHPRI] `offset:"0x103"`
	DCHPRI7 mmio.RW8[DMA_DCHPRI] `offset:"0x104"`
	DCHPRI6 mmio.RW8[DMA_DCHPRI] `offset:"0x105"`
	DCHPRI5 mmio.RW8[DMA_DCHPRI] `offset:"0x106"`
	DCHPRI4 mmio.RW8[DMA_DCHPRI] `offset:"0x107"`
	_       [3832]byte
	TCD     [8]DMA_TCD `offset:"0x1000" desc:"transfer control descriptor"`
}

const DMA_SIZE = 0x1100

var DMA_BLOCK = layout.MustFromStruct("DMA", reflect.TypeOf(DMA_TYPE{}), DMA_SIZE)

// DMA_TCD is one transfer control descriptor.
type DMA_TCD struct {
	SADDR     mmio.RW32[uint32]       `offset:"0x0" desc:"source address"`
	SOFF      mmio.RW16[uint16]       `offset:"0x4" desc:"signed source address offset"`
	ATTR      mmio.RW16[DMA_TCD_ATTR] `offset:"0x6" desc:"transfer attributes"`
	NBYTES    DMA_TCD_NBYTES          `offset:"0x8" desc:"minor byte count"`
	SLAST     mmio.RW32[uint32]       `offset:"0xC" desc:"last source address adjustment"`
	DADDR     mmio.RW32[uint32]       `offset:"0x10" desc:"destination address"`
	DOFF      mmio.RW16[uint16]       `offset:"0x14" desc:"signed destination address offset"`
	CITER     DMA_TCD_CITER           `offset:"0x16" desc:"current major iteration count"`
	DLAST_SGA mmio.RW32[uint32]       `offset:"0x18" desc:"last destination address adjustment or scatter/gather address"`
	CSR       mmio.RW16[DMA_TCD_CSR]  `offset:"0x1C" desc:"control and status"`
	BITER     DMA_TCD_BITER           `offset:"0x1E" desc:"beginning major iteration count"`
}

// DMA_CR is the control register.
type DMA_CR uint32

const (
	DMA_CR_EDBG   mmio.Field = 1<<8 | 1
	DMA_CR_ERCA   mmio.Field = 1<<8 | 2
	DMA_CR_HOE    mmio.Field = 1<<8 | 4
	DMA_CR_HALT   mmio.Field = 1<<8 | 5
	DMA_CR_CLM    mmio.Field = 1<<8 | 6
	DMA_CR_EMLM   mmio.Field = 1<<8 | 7
	DMA_CR_ECX    mmio.Field = 1<<8 | 16
	DMA_CR_CX     mmio.Field = 1<<8 | 17
	DMA_CR_ACTIVE mmio.Field = 1<<8 | 31
)

func (r DMA_CR) GetEDBG() bool {
	return DMA_CR_EDBG.Bool(uint32(r))
}

func (r DMA_CR) SetEDBG(v bool) DMA_CR {
	return DMA_CR(DMA_CR_EDBG.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetERCA() bool {
	return DMA_CR_ERCA.Bool(uint32(r))
}

func (r DMA_CR) SetERCA(v bool) DMA_CR {
	return DMA_CR(DMA_CR_ERCA.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetHOE() bool {
	return DMA_CR_HOE.Bool(uint32(r))
}

func (r DMA_CR) SetHOE(v bool) DMA_CR {
	return DMA_CR(DMA_CR_HOE.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetHALT() bool {
	return DMA_CR_HALT.Bool(uint32(r))
}

func (r DMA_CR) SetHALT(v bool) DMA_CR {
	return DMA_CR(DMA_CR_HALT.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetCLM() bool {
	return DMA_CR_CLM.Bool(uint32(r))
}

func (r DMA_CR) SetCLM(v bool) DMA_CR {
	return DMA_CR(DMA_CR_CLM.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetEMLM() bool {
	return DMA_CR_EMLM.Bool(uint32(r))
}

func (r DMA_CR) SetEMLM(v bool) DMA_CR {
	return DMA_CR(DMA_CR_EMLM.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetECX() bool {
	return DMA_CR_ECX.Bool(uint32(r))
}

func (r DMA_CR) SetECX(v bool) DMA_CR {
	return DMA_CR(DMA_CR_ECX.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetCX() bool {
	return DMA_CR_CX.Bool(uint32(r))
}

func (r DMA_CR) SetCX(v bool) DMA_CR {
	return DMA_CR(DMA_CR_CX.InsertBool(uint32(r), v))
}

func (r DMA_CR) GetACTIVE() bool {
	return DMA_CR_ACTIVE.Bool(uint32(r))
}

func (r DMA_CR) SetACTIVE(v bool) DMA_CR {
	return DMA_CR(DMA_CR_ACTIVE.InsertBool(uint32(r), v))
}

func (r DMA_CR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EDBG", Field: DMA_CR_EDBG},
		{Name: "ERCA", Field: DMA_CR_ERCA},
		{Name: "HOE", Field: DMA_CR_HOE},
		{Name: "HALT", Field: DMA_CR_HALT},
		{Name: "CLM", Field: DMA_CR_CLM},
		{Name: "EMLM", Field: DMA_CR_EMLM},
		{Name: "ECX", Field: DMA_CR_ECX},
		{Name: "CX", Field: DMA_CR_CX},
		{Name: "ACTIVE", Field: DMA_CR_ACTIVE},
	}
}

// DMA_ES is the error status register.
type DMA_ES uint32

const (
	DMA_ES_DBE    mmio.Field = 1<<8 | 0
	DMA_ES_SBE    mmio.Field = 1<<8 | 1
	DMA_ES_SGE    mmio.Field = 1<<8 | 2
	DMA_ES_NCE    mmio.Field = 1<<8 | 3
	DMA_ES_DOE    mmio.Field = 1<<8 | 4
	DMA_ES_DAE    mmio.Field = 1<<8 | 5
	DMA_ES_SOE    mmio.Field = 1<<8 | 6
	DMA_ES_SAE    mmio.Field = 1<<8 | 7
	DMA_ES_ERRCHN mmio.Field = 3<<8 | 8
	DMA_ES_CPE    mmio.Field = 1<<8 | 14
	DMA_ES_ECX    mmio.Field = 1<<8 | 16
	DMA_ES_VLD    mmio.Field = 1<<8 | 31
)

func (r DMA_ES) GetDBE() bool {
	return DMA_ES_DBE.Bool(uint32(r))
}

func (r DMA_ES) GetSBE() bool {
	return DMA_ES_SBE.Bool(uint32(r))
}

func (r DMA_ES) GetSGE() bool {
	return DMA_ES_SGE.Bool(uint32(r))
}

func (r DMA_ES) GetNCE() bool {
	return DMA_ES_NCE.Bool(uint32(r))
}

func (r DMA_ES) GetDOE() bool {
	return DMA_ES_DOE.Bool(uint32(r))
}

func (r DMA_ES) GetDAE() bool {
	return DMA_ES_DAE.Bool(uint32(r))
}

func (r DMA_ES) GetSOE() bool {
	return DMA_ES_SOE.Bool(uint32(r))
}

func (r DMA_ES) GetSAE() bool {
	return DMA_ES_SAE.Bool(uint32(r))
}

func (r DMA_ES) GetERRCHN() uint32 {
	return DMA_ES_ERRCHN.Decode(uint32(r))
}

func (r DMA_ES) GetCPE() bool {
	return DMA_ES_CPE.Bool(uint32(r))
}

func (r DMA_ES) GetECX() bool {
	return DMA_ES_ECX.Bool(uint32(r))
}

func (r DMA_ES) GetVLD() bool {
	return DMA_ES_VLD.Bool(uint32(r))
}

func (r DMA_ES) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DBE", Field: DMA_ES_DBE},
		{Name: "SBE", Field: DMA_ES_SBE},
		{Name: "SGE", Field: DMA_ES_SGE},
		{Name: "NCE", Field: DMA_ES_NCE},
		{Name: "DOE", Field: DMA_ES_DOE},
		{Name: "DAE", Field: DMA_ES_DAE},
		{Name: "SOE", Field: DMA_ES_SOE},
		{Name: "SAE", Field: DMA_ES_SAE},
		{Name: "ERRCHN", Field: DMA_ES_ERRCHN},
		{Name: "CPE", Field: DMA_ES_CPE},
		{Name: "ECX", Field: DMA_ES_ECX},
		{Name: "VLD", Field: DMA_ES_VLD},
	}
}

// DMA_ERQ is the enable request register.
type DMA_ERQ uint32

const (
	DMA_ERQ_ERQ0 mmio.Field = 1<<8 | 0
	DMA_ERQ_ERQ1 mmio.Field = 1<<8 | 1
	DMA_ERQ_ERQ2 mmio.Field = 1<<8 | 2
	DMA_ERQ_ERQ3 mmio.Field = 1<<8 | 3
	DMA_ERQ_ERQ4 mmio.Field = 1<<8 | 4
	DMA_ERQ_ERQ5 mmio.Field = 1<<8 | 5
	DMA_ERQ_ERQ6 mmio.Field = 1<<8 | 6
	DMA_ERQ_ERQ7 mmio.Field = 1<<8 | 7
)

func (r DMA_ERQ) GetERQ0() bool {
	return DMA_ERQ_ERQ0.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ0(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ0.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ1() bool {
	return DMA_ERQ_ERQ1.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ1(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ1.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ2() bool {
	return DMA_ERQ_ERQ2.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ2(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ2.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ3() bool {
	return DMA_ERQ_ERQ3.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ3(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ3.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ4() bool {
	return DMA_ERQ_ERQ4.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ4(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ4.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ5() bool {
	return DMA_ERQ_ERQ5.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ5(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ5.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ6() bool {
	return DMA_ERQ_ERQ6.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ6(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ6.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) GetERQ7() bool {
	return DMA_ERQ_ERQ7.Bool(uint32(r))
}

func (r DMA_ERQ) SetERQ7(v bool) DMA_ERQ {
	return DMA_ERQ(DMA_ERQ_ERQ7.InsertBool(uint32(r), v))
}

func (r DMA_ERQ) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ERQ0", Field: DMA_ERQ_ERQ0},
		{Name: "ERQ1", Field: DMA_ERQ_ERQ1},
		{Name: "ERQ2", Field: DMA_ERQ_ERQ2},
		{Name: "ERQ3", Field: DMA_ERQ_ERQ3},
		{Name: "ERQ4", Field: DMA_ERQ_ERQ4},
		{Name: "ERQ5", Field: DMA_ERQ_ERQ5},
		{Name: "ERQ6", Field: DMA_ERQ_ERQ6},
		{Name: "ERQ7", Field: DMA_ERQ_ERQ7},
	}
}

// DMA_EEI is the enable error interrupt register.
type DMA_EEI uint32

const (
	DMA_EEI_EEI0 mmio.Field = 1<<8 | 0
	DMA_EEI_EEI1 mmio.Field = 1<<8 | 1
	DMA_EEI_EEI2 mmio.Field = 1<<8 | 2
	DMA_EEI_EEI3 mmio.Field = 1<<8 | 3
	DMA_EEI_EEI4 mmio.Field = 1<<8 | 4
	DMA_EEI_EEI5 mmio.Field = 1<<8 | 5
	DMA_EEI_EEI6 mmio.Field = 1<<8 | 6
	DMA_EEI_EEI7 mmio.Field = 1<<8 | 7
)

func (r DMA_EEI) GetEEI0() bool {
	return DMA_EEI_EEI0.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI0(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI0.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI1() bool {
	return DMA_EEI_EEI1.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI1(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI1.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI2() bool {
	return DMA_EEI_EEI2.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI2(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI2.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI3() bool {
	return DMA_EEI_EEI3.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI3(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI3.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI4() bool {
	return DMA_EEI_EEI4.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI4(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI4.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI5() bool {
	return DMA_EEI_EEI5.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI5(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI5.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI6() bool {
	return DMA_EEI_EEI6.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI6(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI6.InsertBool(uint32(r), v))
}

func (r DMA_EEI) GetEEI7() bool {
	return DMA_EEI_EEI7.Bool(uint32(r))
}

func (r DMA_EEI) SetEEI7(v bool) DMA_EEI {
	return DMA_EEI(DMA_EEI_EEI7.InsertBool(uint32(r), v))
}

func (r DMA_EEI) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EEI0", Field: DMA_EEI_EEI0},
		{Name: "EEI1", Field: DMA_EEI_EEI1},
		{Name: "EEI2", Field: DMA_EEI_EEI2},
		{Name: "EEI3", Field: DMA_EEI_EEI3},
		{Name: "EEI4", Field: DMA_EEI_EEI4},
		{Name: "EEI5", Field: DMA_EEI_EEI5},
		{Name: "EEI6", Field: DMA_EEI_EEI6},
		{Name: "EEI7", Field: DMA_EEI_EEI7},
	}
}

type DMA_CEEI uint8

const (
	DMA_CEEI_CEEI mmio.Field = 3<<8 | 0
	DMA_CEEI_CAEE mmio.Field = 1<<8 | 6
	DMA_CEEI_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_CEEI) SetCEEI(v uint32) DMA_CEEI {
	return DMA_CEEI(DMA_CEEI_CEEI.Insert(uint32(r), v))
}

func (r DMA_CEEI) SetCAEE(v bool) DMA_CEEI {
	return DMA_CEEI(DMA_CEEI_CAEE.InsertBool(uint32(r), v))
}

func (r DMA_CEEI) SetNOP(v bool) DMA_CEEI {
	return DMA_CEEI(DMA_CEEI_NOP.InsertBool(uint32(r), v))
}

func (r DMA_CEEI) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CEEI", Field: DMA_CEEI_CEEI},
		{Name: "CAEE", Field: DMA_CEEI_CAEE},
		{Name: "NOP", Field: DMA_CEEI_NOP},
	}
}

type DMA_SEEI uint8

const (
	DMA_SEEI_SEEI mmio.Field = 3<<8 | 0
	DMA_SEEI_SAEE mmio.Field = 1<<8 | 6
	DMA_SEEI_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_SEEI) SetSEEI(v uint32) DMA_SEEI {
	return DMA_SEEI(DMA_SEEI_SEEI.Insert(uint32(r), v))
}

func (r DMA_SEEI) SetSAEE(v bool) DMA_SEEI {
	return DMA_SEEI(DMA_SEEI_SAEE.InsertBool(uint32(r), v))
}

func (r DMA_SEEI) SetNOP(v bool) DMA_SEEI {
	return DMA_SEEI(DMA_SEEI_NOP.InsertBool(uint32(r), v))
}

func (r DMA_SEEI) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SEEI", Field: DMA_SEEI_SEEI},
		{Name: "SAEE", Field: DMA_SEEI_SAEE},
		{Name: "NOP", Field: DMA_SEEI_NOP},
	}
}

type DMA_CERQ uint8

const (
	DMA_CERQ_CERQ mmio.Field = 3<<8 | 0
	DMA_CERQ_CAER mmio.Field = 1<<8 | 6
	DMA_CERQ_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_CERQ) SetCERQ(v uint32) DMA_CERQ {
	return DMA_CERQ(DMA_CERQ_CERQ.Insert(uint32(r), v))
}

func (r DMA_CERQ) SetCAER(v bool) DMA_CERQ {
	return DMA_CERQ(DMA_CERQ_CAER.InsertBool(uint32(r), v))
}

func (r DMA_CERQ) SetNOP(v bool) DMA_CERQ {
	return DMA_CERQ(DMA_CERQ_NOP.InsertBool(uint32(r), v))
}

func (r DMA_CERQ) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CERQ", Field: DMA_CERQ_CERQ},
		{Name: "CAER", Field: DMA_CERQ_CAER},
		{Name: "NOP", Field: DMA_CERQ_NOP},
	}
}

type DMA_SERQ uint8

const (
	DMA_SERQ_SERQ mmio.Field = 3<<8 | 0
	DMA_SERQ_SAER mmio.Field = 1<<8 | 6
	DMA_SERQ_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_SERQ) SetSERQ(v uint32) DMA_SERQ {
	return DMA_SERQ(DMA_SERQ_SERQ.Insert(uint32(r), v))
}

func (r DMA_SERQ) SetSAER(v bool) DMA_SERQ {
	return DMA_SERQ(DMA_SERQ_SAER.InsertBool(uint32(r), v))
}

func (r DMA_SERQ) SetNOP(v bool) DMA_SERQ {
	return DMA_SERQ(DMA_SERQ_NOP.InsertBool(uint32(r), v))
}

func (r DMA_SERQ) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SERQ", Field: DMA_SERQ_SERQ},
		{Name: "SAER", Field: DMA_SERQ_SAER},
		{Name: "NOP", Field: DMA_SERQ_NOP},
	}
}

type DMA_CDNE uint8

const (
	DMA_CDNE_CDNE mmio.Field = 3<<8 | 0
	DMA_CDNE_CADN mmio.Field = 1<<8 | 6
	DMA_CDNE_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_CDNE) SetCDNE(v uint32) DMA_CDNE {
	return DMA_CDNE(DMA_CDNE_CDNE.Insert(uint32(r), v))
}

func (r DMA_CDNE) SetCADN(v bool) DMA_CDNE {
	return DMA_CDNE(DMA_CDNE_CADN.InsertBool(uint32(r), v))
}

func (r DMA_CDNE) SetNOP(v bool) DMA_CDNE {
	return DMA_CDNE(DMA_CDNE_NOP.InsertBool(uint32(r), v))
}

func (r DMA_CDNE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CDNE", Field: DMA_CDNE_CDNE},
		{Name: "CADN", Field: DMA_CDNE_CADN},
		{Name: "NOP", Field: DMA_CDNE_NOP},
	}
}

type DMA_SSRT uint8

const (
	DMA_SSRT_SSRT mmio.Field = 3<<8 | 0
	DMA_SSRT_SAST mmio.Field = 1<<8 | 6
	DMA_SSRT_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_SSRT) SetSSRT(v uint32) DMA_SSRT {
	return DMA_SSRT(DMA_SSRT_SSRT.Insert(uint32(r), v))
}

func (r DMA_SSRT) SetSAST(v bool) DMA_SSRT {
	return DMA_SSRT(DMA_SSRT_SAST.InsertBool(uint32(r), v))
}

func (r DMA_SSRT) SetNOP(v bool) DMA_SSRT {
	return DMA_SSRT(DMA_SSRT_NOP.InsertBool(uint32(r), v))
}

func (r DMA_SSRT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SSRT", Field: DMA_SSRT_SSRT},
		{Name: "SAST", Field: DMA_SSRT_SAST},
		{Name: "NOP", Field: DMA_SSRT_NOP},
	}
}

type DMA_CERR uint8

const (
	DMA_CERR_CERR mmio.Field = 3<<8 | 0
	DMA_CERR_CAEI mmio.Field = 1<<8 | 6
	DMA_CERR_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_CERR) SetCERR(v uint32) DMA_CERR {
	return DMA_CERR(DMA_CERR_CERR.Insert(uint32(r), v))
}

func (r DMA_CERR) SetCAEI(v bool) DMA_CERR {
	return DMA_CERR(DMA_CERR_CAEI.InsertBool(uint32(r), v))
}

func (r DMA_CERR) SetNOP(v bool) DMA_CERR {
	return DMA_CERR(DMA_CERR_NOP.InsertBool(uint32(r), v))
}

func (r DMA_CERR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CERR", Field: DMA_CERR_CERR},
		{Name: "CAEI", Field: DMA_CERR_CAEI},
		{Name: "NOP", Field: DMA_CERR_NOP},
	}
}

type DMA_CINT uint8

const (
	DMA_CINT_CINT mmio.Field = 3<<8 | 0
	DMA_CINT_CAIR mmio.Field = 1<<8 | 6
	DMA_CINT_NOP  mmio.Field = 1<<8 | 7
)

func (r DMA_CINT) SetCINT(v uint32) DMA_CINT {
	return DMA_CINT(DMA_CINT_CINT.Insert(uint32(r), v))
}

func (r DMA_CINT) SetCAIR(v bool) DMA_CINT {
	return DMA_CINT(DMA_CINT_CAIR.InsertBool(uint32(r), v))
}

func (r DMA_CINT) SetNOP(v bool) DMA_CINT {
	return DMA_CINT(DMA_CINT_NOP.InsertBool(uint32(r), v))
}

func (r DMA_CINT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CINT", Field: DMA_CINT_CINT},
		{Name: "CAIR", Field: DMA_CINT_CAIR},
		{Name: "NOP", Field: DMA_CINT_NOP},
	}
}

// DMA_INT is the interrupt request register; write one to clear.
type DMA_INT uint32

const (
	DMA_INT_INT0 mmio.Field = 1<<8 | 0
	DMA_INT_INT1 mmio.Field = 1<<8 | 1
	DMA_INT_INT2 mmio.Field = 1<<8 | 2
	DMA_INT_INT3 mmio.Field = 1<<8 | 3
	DMA_INT_INT4 mmio.Field = 1<<8 | 4
	DMA_INT_INT5 mmio.Field = 1<<8 | 5
	DMA_INT_INT6 mmio.Field = 1<<8 | 6
	DMA_INT_INT7 mmio.Field = 1<<8 | 7
)

func (r DMA_INT) GetINT0() bool {
	return DMA_INT_INT0.Bool(uint32(r))
}

func (r DMA_INT) SetINT0(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT0.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT1() bool {
	return DMA_INT_INT1.Bool(uint32(r))
}

func (r DMA_INT) SetINT1(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT1.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT2() bool {
	return DMA_INT_INT2.Bool(uint32(r))
}

func (r DMA_INT) SetINT2(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT2.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT3() bool {
	return DMA_INT_INT3.Bool(uint32(r))
}

func (r DMA_INT) SetINT3(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT3.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT4() bool {
	return DMA_INT_INT4.Bool(uint32(r))
}

func (r DMA_INT) SetINT4(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT4.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT5() bool {
	return DMA_INT_INT5.Bool(uint32(r))
}

func (r DMA_INT) SetINT5(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT5.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT6() bool {
	return DMA_INT_INT6.Bool(uint32(r))
}

func (r DMA_INT) SetINT6(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT6.InsertBool(uint32(r), v))
}

func (r DMA_INT) GetINT7() bool {
	return DMA_INT_INT7.Bool(uint32(r))
}

func (r DMA_INT) SetINT7(v bool) DMA_INT {
	return DMA_INT(DMA_INT_INT7.InsertBool(uint32(r), v))
}

func (r DMA_INT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "INT0", Field: DMA_INT_INT0},
		{Name: "INT1", Field: DMA_INT_INT1},
		{Name: "INT2", Field: DMA_INT_INT2},
		{Name: "INT3", Field: DMA_INT_INT3},
		{Name: "INT4", Field: DMA_INT_INT4},
		{Name: "INT5", Field: DMA_INT_INT5},
		{Name: "INT6", Field: DMA_INT_INT6},
		{Name: "INT7", Field: DMA_INT_INT7},
	}
}

// DMA_ERR is the error register; write one to clear.
type DMA_ERR uint32

const (
	DMA_ERR_ERR0 mmio.Field = 1<<8 | 0
	DMA_ERR_ERR1 mmio.Field = 1<<8 | 1
	DMA_ERR_ERR2 mmio.Field = 1<<8 | 2
	DMA_ERR_ERR3 mmio.Field = 1<<8 | 3
	DMA_ERR_ERR4 mmio.Field = 1<<8 | 4
	DMA_ERR_ERR5 mmio.Field = 1<<8 | 5
	DMA_ERR_ERR6 mmio.Field = 1<<8 | 6
	DMA_ERR_ERR7 mmio.Field = 1<<8 | 7
)

func (r DMA_ERR) GetERR0() bool {
	return DMA_ERR_ERR0.Bool(uint32(r))
}

func (r DMA_ERR) SetERR0(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR0.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR1() bool {
	return DMA_ERR_ERR1.Bool(uint32(r))
}

func (r DMA_ERR) SetERR1(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR1.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR2() bool {
	return DMA_ERR_ERR2.Bool(uint32(r))
}

func (r DMA_ERR) SetERR2(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR2.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR3() bool {
	return DMA_ERR_ERR3.Bool(uint32(r))
}

func (r DMA_ERR) SetERR3(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR3.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR4() bool {
	return DMA_ERR_ERR4.Bool(uint32(r))
}

func (r DMA_ERR) SetERR4(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR4.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR5() bool {
	return DMA_ERR_ERR5.Bool(uint32(r))
}

func (r DMA_ERR) SetERR5(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR5.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR6() bool {
	return DMA_ERR_ERR6.Bool(uint32(r))
}

func (r DMA_ERR) SetERR6(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR6.InsertBool(uint32(r), v))
}

func (r DMA_ERR) GetERR7() bool {
	return DMA_ERR_ERR7.Bool(uint32(r))
}

func (r DMA_ERR) SetERR7(v bool) DMA_ERR {
	return DMA_ERR(DMA_ERR_ERR7.InsertBool(uint32(r), v))
}

func (r DMA_ERR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ERR0", Field: DMA_ERR_ERR0},
		{Name: "ERR1", Field: DMA_ERR_ERR1},
		{Name: "ERR2", Field: DMA_ERR_ERR2},
		{Name: "ERR3", Field: DMA_ERR_ERR3},
		{Name: "ERR4", Field: DMA_ERR_ERR4},
		{Name: "ERR5", Field: DMA_ERR_ERR5},
		{Name: "ERR6", Field: DMA_ERR_ERR6},
		{Name: "ERR7", Field: DMA_ERR_ERR7},
	}
}

// DMA_HRS is the hardware request status register.
type DMA_HRS uint32

const (
	DMA_HRS_HRS0 mmio.Field = 1<<8 | 0
	DMA_HRS_HRS1 mmio.Field = 1<<8 | 1
	DMA_HRS_HRS2 mmio.Field = 1<<8 | 2
	DMA_HRS_HRS3 mmio.Field = 1<<8 | 3
	DMA_HRS_HRS4 mmio.Field = 1<<8 | 4
	DMA_HRS_HRS5 mmio.Field = 1<<8 | 5
	DMA_HRS_HRS6 mmio.Field = 1<<8 | 6
	DMA_HRS_HRS7 mmio.Field = 1<<8 | 7
)

func (r DMA_HRS) GetHRS0() bool {
	return DMA_HRS_HRS0.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS1() bool {
	return DMA_HRS_HRS1.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS2() bool {
	return DMA_HRS_HRS2.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS3() bool {
	return DMA_HRS_HRS3.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS4() bool {
	return DMA_HRS_HRS4.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS5() bool {
	return DMA_HRS_HRS5.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS6() bool {
	return DMA_HRS_HRS6.Bool(uint32(r))
}

func (r DMA_HRS) GetHRS7() bool {
	return DMA_HRS_HRS7.Bool(uint32(r))
}

func (r DMA_HRS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HRS0", Field: DMA_HRS_HRS0},
		{Name: "HRS1", Field: DMA_HRS_HRS1},
		{Name: "HRS2", Field: DMA_HRS_HRS2},
		{Name: "HRS3", Field: DMA_HRS_HRS3},
		{Name: "HRS4", Field: DMA_HRS_HRS4},
		{Name: "HRS5", Field: DMA_HRS_HRS5},
		{Name: "HRS6", Field: DMA_HRS_HRS6},
		{Name: "HRS7", Field: DMA_HRS_HRS7},
	}
}

// DMA_EARS is the enable asynchronous request in stop register.
type DMA_EARS uint32

const (
	DMA_EARS_EDREQ_0 mmio.Field = 1<<8 | 0
	DMA_EARS_EDREQ_1 mmio.Field = 1<<8 | 1
	DMA_EARS_EDREQ_2 mmio.Field = 1<<8 | 2
	DMA_EARS_EDREQ_3 mmio.Field = 1<<8 | 3
	DMA_EARS_EDREQ_4 mmio.Field = 1<<8 | 4
	DMA_EARS_EDREQ_5 mmio.Field = 1<<8 | 5
	DMA_EARS_EDREQ_6 mmio.Field = 1<<8 | 6
	DMA_EARS_EDREQ_7 mmio.Field = 1<<8 | 7
)

func (r DMA_EARS) GetEDREQ_0() bool {
	return DMA_EARS_EDREQ_0.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_0(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_0.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_1() bool {
	return DMA_EARS_EDREQ_1.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_1(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_1.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_2() bool {
	return DMA_EARS_EDREQ_2.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_2(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_2.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_3() bool {
	return DMA_EARS_EDREQ_3.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_3(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_3.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_4() bool {
	return DMA_EARS_EDREQ_4.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_4(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_4.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_5() bool {
	return DMA_EARS_EDREQ_5.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_5(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_5.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_6() bool {
	return DMA_EARS_EDREQ_6.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_6(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_6.InsertBool(uint32(r), v))
}

func (r DMA_EARS) GetEDREQ_7() bool {
	return DMA_EARS_EDREQ_7.Bool(uint32(r))
}

func (r DMA_EARS) SetEDREQ_7(v bool) DMA_EARS {
	return DMA_EARS(DMA_EARS_EDREQ_7.InsertBool(uint32(r), v))
}

func (r DMA_EARS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EDREQ_0", Field: DMA_EARS_EDREQ_0},
		{Name: "EDREQ_1", Field: DMA_EARS_EDREQ_1},
		{Name: "EDREQ_2", Field: DMA_EARS_EDREQ_2},
		{Name: "EDREQ_3", Field: DMA_EARS_EDREQ_3},
		{Name: "EDREQ_4", Field: DMA_EARS_EDREQ_4},
		{Name: "EDREQ_5", Field: DMA_EARS_EDREQ_5},
		{Name: "EDREQ_6", Field: DMA_EARS_EDREQ_6},
		{Name: "EDREQ_7", Field: DMA_EARS_EDREQ_7},
	}
}

// DMA_DCHPRI is the channel priority register.
type DMA_DCHPRI uint8

const (
	DMA_DCHPRI_CHPRI mmio.Field = 3<<8 | 0
	DMA_DCHPRI_DPA   mmio.Field = 1<<8 | 6
	DMA_DCHPRI_ECP   mmio.Field = 1<<8 | 7
)

func (r DMA_DCHPRI) GetCHPRI() uint32 {
	return DMA_DCHPRI_CHPRI.Decode(uint32(r))
}

func (r DMA_DCHPRI) SetCHPRI(v uint32) DMA_DCHPRI {
	return DMA_DCHPRI(DMA_DCHPRI_CHPRI.Insert(uint32(r), v))
}

func (r DMA_DCHPRI) GetDPA() bool {
	return DMA_DCHPRI_DPA.Bool(uint32(r))
}

func (r DMA_DCHPRI) SetDPA(v bool) DMA_DCHPRI {
	return DMA_DCHPRI(DMA_DCHPRI_DPA.InsertBool(uint32(r), v))
}

func (r DMA_DCHPRI) GetECP() bool {
	return DMA_DCHPRI_ECP.Bool(uint32(r))
}

func (r DMA_DCHPRI) SetECP(v bool) DMA_DCHPRI {
	return DMA_DCHPRI(DMA_DCHPRI_ECP.InsertBool(uint32(r), v))
}

func (r DMA_DCHPRI) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CHPRI", Field: DMA_DCHPRI_CHPRI},
		{Name: "DPA", Field: DMA_DCHPRI_DPA},
		{Name: "ECP", Field: DMA_DCHPRI_ECP},
	}
}

// DMA_TCD_ATTR is the transfer attributes register.
type DMA_TCD_ATTR uint16

const (
	DMA_TCD_ATTR_DSIZE mmio.Field = 3<<8 | 0
	DMA_TCD_ATTR_DMOD  mmio.Field = 5<<8 | 3
	DMA_TCD_ATTR_SSIZE mmio.Field = 3<<8 | 8
	DMA_TCD_ATTR_SMOD  mmio.Field = 5<<8 | 11
)

type DMA_TCD_ATTR_DSIZE_Value uint32

const (
	DMA_TCD_ATTR_DSIZE_BITS_8   DMA_TCD_ATTR_DSIZE_Value = 0
	DMA_TCD_ATTR_DSIZE_BITS_16  DMA_TCD_ATTR_DSIZE_Value = 1
	DMA_TCD_ATTR_DSIZE_BITS_32  DMA_TCD_ATTR_DSIZE_Value = 2
	DMA_TCD_ATTR_DSIZE_BYTES_16 DMA_TCD_ATTR_DSIZE_Value = 4
	DMA_TCD_ATTR_DSIZE_BYTES_32 DMA_TCD_ATTR_DSIZE_Value = 5
)

type DMA_TCD_ATTR_SSIZE_Value uint32

const (
	DMA_TCD_ATTR_SSIZE_BITS_8   DMA_TCD_ATTR_SSIZE_Value = 0
	DMA_TCD_ATTR_SSIZE_BITS_16  DMA_TCD_ATTR_SSIZE_Value = 1
	DMA_TCD_ATTR_SSIZE_BITS_32  DMA_TCD_ATTR_SSIZE_Value = 2
	DMA_TCD_ATTR_SSIZE_BYTES_16 DMA_TCD_ATTR_SSIZE_Value = 4
	DMA_TCD_ATTR_SSIZE_BYTES_32 DMA_TCD_ATTR_SSIZE_Value = 5
)

func (r DMA_TCD_ATTR) GetDSIZE() DMA_TCD_ATTR_DSIZE_Value {
	return DMA_TCD_ATTR_DSIZE_Value(DMA_TCD_ATTR_DSIZE.Decode(uint32(r)))
}

func (r DMA_TCD_ATTR) SetDSIZE(v DMA_TCD_ATTR_DSIZE_Value) DMA_TCD_ATTR {
	return DMA_TCD_ATTR(DMA_TCD_ATTR_DSIZE.Insert(uint32(r), uint32(v)))
}

func (r DMA_TCD_ATTR) GetDMOD() uint32 {
	return DMA_TCD_ATTR_DMOD.Decode(uint32(r))
}

func (r DMA_TCD_ATTR) SetDMOD(v uint32) DMA_TCD_ATTR {
	return DMA_TCD_ATTR(DMA_TCD_ATTR_DMOD.Insert(uint32(r), v))
}

func (r DMA_TCD_ATTR) GetSSIZE() DMA_TCD_ATTR_SSIZE_Value {
	return DMA_TCD_ATTR_SSIZE_Value(DMA_TCD_ATTR_SSIZE.Decode(uint32(r)))
}

func (r DMA_TCD_ATTR) SetSSIZE(v DMA_TCD_ATTR_SSIZE_Value) DMA_TCD_ATTR {
	return DMA_TCD_ATTR(DMA_TCD_ATTR_SSIZE.Insert(uint32(r), uint32(v)))
}

func (r DMA_TCD_ATTR) GetSMOD() uint32 {
	return DMA_TCD_ATTR_SMOD.Decode(uint32(r))
}

func (r DMA_TCD_ATTR) SetSMOD(v uint32) DMA_TCD_ATTR {
	return DMA_TCD_ATTR(DMA_TCD_ATTR_SMOD.Insert(uint32(r), v))
}

func (r DMA_TCD_ATTR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DSIZE", Field: DMA_TCD_ATTR_DSIZE, Values: []mmio.EnumValue{
			{Name: "BITS_8", Value: uint32(DMA_TCD_ATTR_DSIZE_BITS_8)},
			{Name: "BITS_16", Value: uint32(DMA_TCD_ATTR_DSIZE_BITS_16)},
			{Name: "BITS_32", Value: uint32(DMA_TCD_ATTR_DSIZE_BITS_32)},
			{Name: "BYTES_16", Value: uint32(DMA_TCD_ATTR_DSIZE_BYTES_16)},
			{Name: "BYTES_32", Value: uint32(DMA_TCD_ATTR_DSIZE_BYTES_32)},
		}},
		{Name: "DMOD", Field: DMA_TCD_ATTR_DMOD},
		{Name: "SSIZE", Field: DMA_TCD_ATTR_SSIZE, Values: []mmio.EnumValue{
			{Name: "BITS_8", Value: uint32(DMA_TCD_ATTR_SSIZE_BITS_8)},
			{Name: "BITS_16", Value: uint32(DMA_TCD_ATTR_SSIZE_BITS_16)},
			{Name: "BITS_32", Value: uint32(DMA_TCD_ATTR_SSIZE_BITS_32)},
			{Name: "BYTES_16", Value: uint32(DMA_TCD_ATTR_SSIZE_BYTES_16)},
			{Name: "BYTES_32", Value: uint32(DMA_TCD_ATTR_SSIZE_BYTES_32)},
		}},
		{Name: "SMOD", Field: DMA_TCD_ATTR_SMOD},
	}
}

// DMA_TCD_NBYTES is the minor byte count register. The view in effect is
// selected by CR[EMLM] and, when mapping is enabled, by SMLOE and DMLOE.
type DMA_TCD_NBYTES struct {
	mmio.Union32
}

// MLNO is the minor loop mapping disabled view of NBYTES.
func (u *DMA_TCD_NBYTES) MLNO() *mmio.RW32[DMA_TCD_NBYTES_MLNO] {
	return mmio.AsRW32[DMA_TCD_NBYTES_MLNO](&u.Union32)
}

// MLOFFNO is the minor loop mapping enabled, offset disabled view of
// NBYTES.
func (u *DMA_TCD_NBYTES) MLOFFNO() *mmio.RW32[DMA_TCD_NBYTES_MLOFFNO] {
	return mmio.AsRW32[DMA_TCD_NBYTES_MLOFFNO](&u.Union32)
}

// MLOFFYES is the minor loop mapping and offset enabled view of NBYTES.
func (u *DMA_TCD_NBYTES) MLOFFYES() *mmio.RW32[DMA_TCD_NBYTES_MLOFFYES] {
	return mmio.AsRW32[DMA_TCD_NBYTES_MLOFFYES](&u.Union32)
}

func (u *DMA_TCD_NBYTES) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "MLNO", Access: mmio.ReadWrite, Fields: DMA_TCD_NBYTES_MLNO(0).Fields()},
		{Name: "MLOFFNO", Access: mmio.ReadWrite, Fields: DMA_TCD_NBYTES_MLOFFNO(0).Fields()},
		{Name: "MLOFFYES", Access: mmio.ReadWrite, Fields: DMA_TCD_NBYTES_MLOFFYES(0).Fields()},
	}
}

type DMA_TCD_NBYTES_MLNO uint32

const (
	DMA_TCD_NBYTES_MLNO_NBYTES mmio.Field = 32<<8 | 0
)

func (r DMA_TCD_NBYTES_MLNO) GetNBYTES() uint32 {
	return DMA_TCD_NBYTES_MLNO_NBYTES.Decode(uint32(r))
}

func (r DMA_TCD_NBYTES_MLNO) SetNBYTES(v uint32) DMA_TCD_NBYTES_MLNO {
	return DMA_TCD_NBYTES_MLNO(DMA_TCD_NBYTES_MLNO_NBYTES.Insert(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLNO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "NBYTES", Field: DMA_TCD_NBYTES_MLNO_NBYTES},
	}
}

type DMA_TCD_NBYTES_MLOFFNO uint32

const (
	DMA_TCD_NBYTES_MLOFFNO_NBYTES mmio.Field = 30<<8 | 0
	DMA_TCD_NBYTES_MLOFFNO_DMLOE  mmio.Field = 1<<8 | 30
	DMA_TCD_NBYTES_MLOFFNO_SMLOE  mmio.Field = 1<<8 | 31
)

func (r DMA_TCD_NBYTES_MLOFFNO) GetNBYTES() uint32 {
	return DMA_TCD_NBYTES_MLOFFNO_NBYTES.Decode(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFNO) SetNBYTES(v uint32) DMA_TCD_NBYTES_MLOFFNO {
	return DMA_TCD_NBYTES_MLOFFNO(DMA_TCD_NBYTES_MLOFFNO_NBYTES.Insert(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFNO) GetDMLOE() bool {
	return DMA_TCD_NBYTES_MLOFFNO_DMLOE.Bool(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFNO) SetDMLOE(v bool) DMA_TCD_NBYTES_MLOFFNO {
	return DMA_TCD_NBYTES_MLOFFNO(DMA_TCD_NBYTES_MLOFFNO_DMLOE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFNO) GetSMLOE() bool {
	return DMA_TCD_NBYTES_MLOFFNO_SMLOE.Bool(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFNO) SetSMLOE(v bool) DMA_TCD_NBYTES_MLOFFNO {
	return DMA_TCD_NBYTES_MLOFFNO(DMA_TCD_NBYTES_MLOFFNO_SMLOE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFNO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "NBYTES", Field: DMA_TCD_NBYTES_MLOFFNO_NBYTES},
		{Name: "DMLOE", Field: DMA_TCD_NBYTES_MLOFFNO_DMLOE},
		{Name: "SMLOE", Field: DMA_TCD_NBYTES_MLOFFNO_SMLOE},
	}
}

type DMA_TCD_NBYTES_MLOFFYES uint32

const (
	DMA_TCD_NBYTES_MLOFFYES_NBYTES mmio.Field = 10<<8 | 0
	DMA_TCD_NBYTES_MLOFFYES_MLOFF  mmio.Field = 20<<8 | 10
	DMA_TCD_NBYTES_MLOFFYES_DMLOE  mmio.Field = 1<<8 | 30
	DMA_TCD_NBYTES_MLOFFYES_SMLOE  mmio.Field = 1<<8 | 31
)

func (r DMA_TCD_NBYTES_MLOFFYES) GetNBYTES() uint32 {
	return DMA_TCD_NBYTES_MLOFFYES_NBYTES.Decode(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFYES) SetNBYTES(v uint32) DMA_TCD_NBYTES_MLOFFYES {
	return DMA_TCD_NBYTES_MLOFFYES(DMA_TCD_NBYTES_MLOFFYES_NBYTES.Insert(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFYES) GetMLOFF() uint32 {
	return DMA_TCD_NBYTES_MLOFFYES_MLOFF.Decode(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFYES) SetMLOFF(v uint32) DMA_TCD_NBYTES_MLOFFYES {
	return DMA_TCD_NBYTES_MLOFFYES(DMA_TCD_NBYTES_MLOFFYES_MLOFF.Insert(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFYES) GetDMLOE() bool {
	return DMA_TCD_NBYTES_MLOFFYES_DMLOE.Bool(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFYES) SetDMLOE(v bool) DMA_TCD_NBYTES_MLOFFYES {
	return DMA_TCD_NBYTES_MLOFFYES(DMA_TCD_NBYTES_MLOFFYES_DMLOE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFYES) GetSMLOE() bool {
	return DMA_TCD_NBYTES_MLOFFYES_SMLOE.Bool(uint32(r))
}

func (r DMA_TCD_NBYTES_MLOFFYES) SetSMLOE(v bool) DMA_TCD_NBYTES_MLOFFYES {
	return DMA_TCD_NBYTES_MLOFFYES(DMA_TCD_NBYTES_MLOFFYES_SMLOE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_NBYTES_MLOFFYES) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "NBYTES", Field: DMA_TCD_NBYTES_MLOFFYES_NBYTES},
		{Name: "MLOFF", Field: DMA_TCD_NBYTES_MLOFFYES_MLOFF},
		{Name: "DMLOE", Field: DMA_TCD_NBYTES_MLOFFYES_DMLOE},
		{Name: "SMLOE", Field: DMA_TCD_NBYTES_MLOFFYES_SMLOE},
	}
}

// DMA_TCD_CITER is the current major iteration count register. ELINK
// selects the view.
type DMA_TCD_CITER struct {
	mmio.Union16
}

// ELINKNO is the channel to channel linking disabled view of CITER.
func (u *DMA_TCD_CITER) ELINKNO() *mmio.RW16[DMA_TCD_CITER_ELINKNO] {
	return mmio.AsRW16[DMA_TCD_CITER_ELINKNO](&u.Union16)
}

// ELINKYES is the channel to channel linking enabled view of CITER.
func (u *DMA_TCD_CITER) ELINKYES() *mmio.RW16[DMA_TCD_CITER_ELINKYES] {
	return mmio.AsRW16[DMA_TCD_CITER_ELINKYES](&u.Union16)
}

func (u *DMA_TCD_CITER) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "ELINKNO", Access: mmio.ReadWrite, Fields: DMA_TCD_CITER_ELINKNO(0).Fields()},
		{Name: "ELINKYES", Access: mmio.ReadWrite, Fields: DMA_TCD_CITER_ELINKYES(0).Fields()},
	}
}

type DMA_TCD_CITER_ELINKNO uint16

const (
	DMA_TCD_CITER_ELINKNO_CITER mmio.Field = 15<<8 | 0
	DMA_TCD_CITER_ELINKNO_ELINK mmio.Field = 1<<8 | 15
)

func (r DMA_TCD_CITER_ELINKNO) GetCITER() uint32 {
	return DMA_TCD_CITER_ELINKNO_CITER.Decode(uint32(r))
}

func (r DMA_TCD_CITER_ELINKNO) SetCITER(v uint32) DMA_TCD_CITER_ELINKNO {
	return DMA_TCD_CITER_ELINKNO(DMA_TCD_CITER_ELINKNO_CITER.Insert(uint32(r), v))
}

func (r DMA_TCD_CITER_ELINKNO) GetELINK() bool {
	return DMA_TCD_CITER_ELINKNO_ELINK.Bool(uint32(r))
}

func (r DMA_TCD_CITER_ELINKNO) SetELINK(v bool) DMA_TCD_CITER_ELINKNO {
	return DMA_TCD_CITER_ELINKNO(DMA_TCD_CITER_ELINKNO_ELINK.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CITER_ELINKNO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CITER", Field: DMA_TCD_CITER_ELINKNO_CITER},
		{Name: "ELINK", Field: DMA_TCD_CITER_ELINKNO_ELINK},
	}
}

type DMA_TCD_CITER_ELINKYES uint16

const (
	DMA_TCD_CITER_ELINKYES_CITER  mmio.Field = 9<<8 | 0
	DMA_TCD_CITER_ELINKYES_LINKCH mmio.Field = 3<<8 | 9
	DMA_TCD_CITER_ELINKYES_ELINK  mmio.Field = 1<<8 | 15
)

func (r DMA_TCD_CITER_ELINKYES) GetCITER() uint32 {
	return DMA_TCD_CITER_ELINKYES_CITER.Decode(uint32(r))
}

func (r DMA_TCD_CITER_ELINKYES) SetCITER(v uint32) DMA_TCD_CITER_ELINKYES {
	return DMA_TCD_CITER_ELINKYES(DMA_TCD_CITER_ELINKYES_CITER.Insert(uint32(r), v))
}

func (r DMA_TCD_CITER_ELINKYES) GetLINKCH() uint32 {
	return DMA_TCD_CITER_ELINKYES_LINKCH.Decode(uint32(r))
}

func (r DMA_TCD_CITER_ELINKYES) SetLINKCH(v uint32) DMA_TCD_CITER_ELINKYES {
	return DMA_TCD_CITER_ELINKYES(DMA_TCD_CITER_ELINKYES_LINKCH.Insert(uint32(r), v))
}

func (r DMA_TCD_CITER_ELINKYES) GetELINK() bool {
	return DMA_TCD_CITER_ELINKYES_ELINK.Bool(uint32(r))
}

func (r DMA_TCD_CITER_ELINKYES) SetELINK(v bool) DMA_TCD_CITER_ELINKYES {
	return DMA_TCD_CITER_ELINKYES(DMA_TCD_CITER_ELINKYES_ELINK.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CITER_ELINKYES) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CITER", Field: DMA_TCD_CITER_ELINKYES_CITER},
		{Name: "LINKCH", Field: DMA_TCD_CITER_ELINKYES_LINKCH},
		{Name: "ELINK", Field: DMA_TCD_CITER_ELINKYES_ELINK},
	}
}

// DMA_TCD_CSR is the control and status register.
type DMA_TCD_CSR uint16

const (
	DMA_TCD_CSR_START       mmio.Field = 1<<8 | 0
	DMA_TCD_CSR_INTMAJOR    mmio.Field = 1<<8 | 1
	DMA_TCD_CSR_INTHALF     mmio.Field = 1<<8 | 2
	DMA_TCD_CSR_DREQ        mmio.Field = 1<<8 | 3
	DMA_TCD_CSR_ESG         mmio.Field = 1<<8 | 4
	DMA_TCD_CSR_MAJORELINK  mmio.Field = 1<<8 | 5
	DMA_TCD_CSR_ACTIVE      mmio.Field = 1<<8 | 6
	DMA_TCD_CSR_DONE        mmio.Field = 1<<8 | 7
	DMA_TCD_CSR_MAJORLINKCH mmio.Field = 3<<8 | 8
	DMA_TCD_CSR_BWC         mmio.Field = 2<<8 | 14
)

type DMA_TCD_CSR_BWC_Value uint32

const (
	DMA_TCD_CSR_BWC_NO_STALL DMA_TCD_CSR_BWC_Value = 0
	DMA_TCD_CSR_BWC_STALL_4  DMA_TCD_CSR_BWC_Value = 2
	DMA_TCD_CSR_BWC_STALL_8  DMA_TCD_CSR_BWC_Value = 3
)

func (r DMA_TCD_CSR) GetSTART() bool {
	return DMA_TCD_CSR_START.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetSTART(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_START.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetINTMAJOR() bool {
	return DMA_TCD_CSR_INTMAJOR.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetINTMAJOR(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_INTMAJOR.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetINTHALF() bool {
	return DMA_TCD_CSR_INTHALF.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetINTHALF(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_INTHALF.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetDREQ() bool {
	return DMA_TCD_CSR_DREQ.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetDREQ(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_DREQ.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetESG() bool {
	return DMA_TCD_CSR_ESG.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetESG(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_ESG.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetMAJORELINK() bool {
	return DMA_TCD_CSR_MAJORELINK.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetMAJORELINK(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_MAJORELINK.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetACTIVE() bool {
	return DMA_TCD_CSR_ACTIVE.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetACTIVE(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_ACTIVE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetDONE() bool {
	return DMA_TCD_CSR_DONE.Bool(uint32(r))
}

func (r DMA_TCD_CSR) SetDONE(v bool) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_DONE.InsertBool(uint32(r), v))
}

func (r DMA_TCD_CSR) GetMAJORLINKCH() uint32 {
	return DMA_TCD_CSR_MAJORLINKCH.Decode(uint32(r))
}

func (r DMA_TCD_CSR) SetMAJORLINKCH(v uint32) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_MAJORLINKCH.Insert(uint32(r), v))
}

func (r DMA_TCD_CSR) GetBWC() DMA_TCD_CSR_BWC_Value {
	return DMA_TCD_CSR_BWC_Value(DMA_TCD_CSR_BWC.Decode(uint32(r)))
}

func (r DMA_TCD_CSR) SetBWC(v DMA_TCD_CSR_BWC_Value) DMA_TCD_CSR {
	return DMA_TCD_CSR(DMA_TCD_CSR_BWC.Insert(uint32(r), uint32(v)))
}

func (r DMA_TCD_CSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "START", Field: DMA_TCD_CSR_START},
		{Name: "INTMAJOR", Field: DMA_TCD_CSR_INTMAJOR},
		{Name: "INTHALF", Field: DMA_TCD_CSR_INTHALF},
		{Name: "DREQ", Field: DMA_TCD_CSR_DREQ},
		{Name: "ESG", Field: DMA_TCD_CSR_ESG},
		{Name: "MAJORELINK", Field: DMA_TCD_CSR_MAJORELINK},
		{Name: "ACTIVE", Field: DMA_TCD_CSR_ACTIVE},
		{Name: "DONE", Field: DMA_TCD_CSR_DONE},
		{Name: "MAJORLINKCH", Field: DMA_TCD_CSR_MAJORLINKCH},
		{Name: "BWC", Field: DMA_TCD_CSR_BWC, Values: []mmio.EnumValue{
			{Name: "NO_STALL", Value: uint32(DMA_TCD_CSR_BWC_NO_STALL)},
			{Name: "STALL_4", Value: uint32(DMA_TCD_CSR_BWC_STALL_4)},
			{Name: "STALL_8", Value: uint32(DMA_TCD_CSR_BWC_STALL_8)},
		}},
	}
}

// DMA_TCD_BITER is the beginning major iteration count register. ELINK
// selects the view and must match CITER.
type DMA_TCD_BITER struct {
	mmio.Union16
}

// ELINKNO is the channel to channel linking disabled view of BITER.
func (u *DMA_TCD_BITER) ELINKNO() *mmio.RW16[DMA_TCD_BITER_ELINKNO] {
	return mmio.AsRW16[DMA_TCD_BITER_ELINKNO](&u.Union16)
}

// ELINKYES is the channel to channel linking enabled view of BITER.
func (u *DMA_TCD_BITER) ELINKYES() *mmio.RW16[DMA_TCD_BITER_ELINKYES] {
	return mmio.AsRW16[DMA_TCD_BITER_ELINKYES](&u.Union16)
}

func (u *DMA_TCD_BITER) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "ELINKNO", Access: mmio.ReadWrite, Fields: DMA_TCD_BITER_ELINKNO(0).Fields()},
		{Name: "ELINKYES", Access: mmio.ReadWrite, Fields: DMA_TCD_BITER_ELINKYES(0).Fields()},
	}
}

type DMA_TCD_BITER_ELINKNO uint16

const (
	DMA_TCD_BITER_ELINKNO_BITER mmio.Field = 15<<8 | 0
	DMA_TCD_BITER_ELINKNO_ELINK mmio.Field = 1<<8 | 15
)

func (r DMA_TCD_BITER_ELINKNO) GetBITER() uint32 {
	return DMA_TCD_BITER_ELINKNO_BITER.Decode(uint32(r))
}

func (r DMA_TCD_BITER_ELINKNO) SetBITER(v uint32) DMA_TCD_BITER_ELINKNO {
	return DMA_TCD_BITER_ELINKNO(DMA_TCD_BITER_ELINKNO_BITER.Insert(uint32(r), v))
}

func (r DMA_TCD_BITER_ELINKNO) GetELINK() bool {
	return DMA_TCD_BITER_ELINKNO_ELINK.Bool(uint32(r))
}

func (r DMA_TCD_BITER_ELINKNO) SetELINK(v bool) DMA_TCD_BITER_ELINKNO {
	return DMA_TCD_BITER_ELINKNO(DMA_TCD_BITER_ELINKNO_ELINK.InsertBool(uint32(r), v))
}

func (r DMA_TCD_BITER_ELINKNO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BITER", Field: DMA_TCD_BITER_ELINKNO_BITER},
		{Name: "ELINK", Field: DMA_TCD_BITER_ELINKNO_ELINK},
	}
}

type DMA_TCD_BITER_ELINKYES uint16

const (
	DMA_TCD_BITER_ELINKYES_BITER  mmio.Field = 9<<8 | 0
	DMA_TCD_BITER_ELINKYES_LINKCH mmio.Field = 3<<8 | 9
	DMA_TCD_BITER_ELINKYES_ELINK  mmio.Field = 1<<8 | 15
)

func (r DMA_TCD_BITER_ELINKYES) GetBITER() uint32 {
	return DMA_TCD_BITER_ELINKYES_BITER.Decode(uint32(r))
}

func (r DMA_TCD_BITER_ELINKYES) SetBITER(v uint32) DMA_TCD_BITER_ELINKYES {
	return DMA_TCD_BITER_ELINKYES(DMA_TCD_BITER_ELINKYES_BITER.Insert(uint32(r), v))
}

func (r DMA_TCD_BITER_ELINKYES) GetLINKCH() uint32 {
	return DMA_TCD_BITER_ELINKYES_LINKCH.Decode(uint32(r))
}

func (r DMA_TCD_BITER_ELINKYES) SetLINKCH(v uint32) DMA_TCD_BITER_ELINKYES {
	return DMA_TCD_BITER_ELINKYES(DMA_TCD_BITER_ELINKYES_LINKCH.Insert(uint32(r), v))
}

func (r DMA_TCD_BITER_ELINKYES) GetELINK() bool {
	return DMA_TCD_BITER_ELINKYES_ELINK.Bool(uint32(r))
}

func (r DMA_TCD_BITER_ELINKYES) SetELINK(v bool) DMA_TCD_BITER_ELINKYES {
	return DMA_TCD_BITER_ELINKYES(DMA_TCD_BITER_ELINKYES_ELINK.InsertBool(uint32(r), v))
}

func (r DMA_TCD_BITER_ELINKYES) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BITER", Field: DMA_TCD_BITER_ELINKYES_BITER},
		{Name: "LINKCH", Field: DMA_TCD_BITER_ELINKYES_LINKCH},
		{Name: "ELINK", Field: DMA_TCD_BITER_ELINKYES_ELINK},
	}
}
