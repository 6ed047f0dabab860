package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// USB_TYPE is the register block of the full speed USB controller.
//
// Every register is eight bits wide on a 32-bit stride.
type USB_TYPE struct {
	PERID                  mmio.RO8[USB_PERID] `offset:"0x0" desc:"peripheral ID"`
	_                      [3]byte
	IDCOMP                 mmio.RO8[USB_IDCOMP] `offset:"0x4"`
	_                      [3]byte
	REV                    mmio.RO8[uint8] `offset:"0x8" desc:"peripheral revision"`
	_                      [3]byte
	ADDINFO                mmio.RO8[USB_ADDINFO] `offset:"0xC"`
	_                      [3]byte
	OTGISTAT               mmio.RW8[USB_OTGISTAT] `offset:"0x10"`
	_                      [3]byte
	OTGICR                 mmio.RW8[USB_OTGICR] `offset:"0x14"`
	_                      [3]byte
	OTGSTAT                mmio.RO8[USB_OTGSTAT] `offset:"0x18"`
	_                      [3]byte
	OTGCTL                 mmio.RW8[USB_OTGCTL] `offset:"0x1C"`
	_                      [99]byte
	ISTAT                  mmio.RW8[USB_ISTAT] `offset:"0x80" desc:"interrupt status; write one to clear"`
	_                      [3]byte
	INTEN                  mmio.RW8[USB_INTEN] `offset:"0x84" desc:"interrupt enable"`
	_                      [3]byte
	ERRSTAT                mmio.RW8[USB_ERRSTAT] `offset:"0x88" desc:"error status; write one to clear"`
	_                      [3]byte
	ERREN                  mmio.RW8[USB_ERREN] `offset:"0x8C" desc:"error enable"`
	_                      [3]byte
	STAT                   mmio.RO8[USB_STAT] `offset:"0x90" desc:"status of the last completed token"`
	_                      [3]byte
	CTL                    mmio.RW8[USB_CTL] `offset:"0x94" desc:"control"`
	_                      [3]byte
	ADDR                   mmio.RW8[USB_ADDR] `offset:"0x98" desc:"address"`
	_                      [3]byte
	BDTPAGE1               mmio.RW8[USB_BDTPAGE1] `offset:"0x9C" desc:"buffer descriptor table page 1"`
	_                      [3]byte
	FRMNUML                mmio.RW8[uint8] `offset:"0xA0" desc:"frame number low"`
	_                      [3]byte
	FRMNUMH                mmio.RW8[USB_FRMNUMH] `offset:"0xA4" desc:"frame number high"`
	_                      [3]byte
	TOKEN                  mmio.RW8[USB_TOKEN] `offset:"0xA8" desc:"host token; writing it starts the transaction"`
	_                      [3]byte
	SOFTHLD                mmio.RW8[uint8] `offset:"0xAC" desc:"SOF threshold"`
	_                      [3]byte
	BDTPAGE2               mmio.RW8[uint8] `offset:"0xB0"`
	_                      [3]byte
	BDTPAGE3               mmio.RW8[uint8] `offset:"0xB4"`
	_                      [11]byte
	ENDPOINT               [16]USB_ENDPOINT      `offset:"0xC0"`
	USBCTRL                mmio.RW8[USB_USBCTRL] `offset:"0x100"`
	_                      [3]byte
	OBSERVE                mmio.RO8[USB_OBSERVE] `offset:"0x104"`
	_                      [3]byte
	CONTROL                mmio.RW8[USB_CONTROL] `offset:"0x108"`
	_                      [3]byte
	USBTRC0                mmio.RW8[USB_USBTRC0] `offset:"0x10C" desc:"transceiver control 0"`
	_                      [7]byte
	USBFRMADJUST           mmio.RW8[uint8] `offset:"0x114" desc:"frame adjust"`
	_                      [15]byte
	KEEP_ALIVE_CTRL        mmio.RW8[USB_KEEP_ALIVE_CTRL] `offset:"0x124"`
	_                      [3]byte
	KEEP_ALIVE_WKCTRL      mmio.RW8[USB_KEEP_ALIVE_WKCTRL] `offset:"0x128"`
	_                      [3]byte
	MISCCTRL               mmio.RW8[USB_MISCCTRL] `offset:"0x12C"`
	_                      [19]byte
	CLK_RECOVER_CTRL       mmio.RW8[USB_CLK_RECOVER_CTRL] `offset:"0x140"`
	_                      [3]byte
	CLK_RECOVER_IRC_EN     mmio.RW8[USB_CLK_RECOVER_IRC_EN] `offset:"0x144"`
	_                      [15]byte
	CLK_RECOVER_INT_EN     mmio.RW8[USB_CLK_RECOVER_INT_EN] `offset:"0x154"`
	_                      [7]byte
	CLK_RECOVER_INT_STATUS mmio.RW8[USB_CLK_RECOVER_INT_STATUS] `offset:"0x15C"`
	_                      [3]byte
}

const USB_SIZE = 0x160

var USB_BLOCK = layout.MustFromStruct("USB", reflect.TypeOf(USB_TYPE{}), USB_SIZE)

type USB_ENDPOINT struct {
	ENDPT mmio.RW8[USB_ENDPT] `offset:"0x0" desc:"endpoint control"`
	_     [3]byte
}

// USB_PERID is the peripheral ID register.
type USB_PERID uint8

const (
	USB_PERID_ID mmio.Field = 6<<8 | 0
)

func (r USB_PERID) GetID() uint32 {
	return USB_PERID_ID.Decode(uint32(r))
}

func (r USB_PERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ID", Field: USB_PERID_ID},
	}
}

type USB_IDCOMP uint8

const (
	USB_IDCOMP_NID mmio.Field = 6<<8 | 0
)

func (r USB_IDCOMP) GetNID() uint32 {
	return USB_IDCOMP_NID.Decode(uint32(r))
}

func (r USB_IDCOMP) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "NID", Field: USB_IDCOMP_NID},
	}
}

type USB_ADDINFO uint8

const (
	USB_ADDINFO_IEHOST mmio.Field = 1<<8 | 0
)

func (r USB_ADDINFO) GetIEHOST() bool {
	return USB_ADDINFO_IEHOST.Bool(uint32(r))
}

func (r USB_ADDINFO) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "IEHOST", Field: USB_ADDINFO_IEHOST},
	}
}

type USB_OTGISTAT uint8

const (
	USB_OTGISTAT_LINE_STATE_CHG mmio.Field = 1<<8 | 5
	USB_OTGISTAT_ONEMSEC        mmio.Field = 1<<8 | 6
)

func (r USB_OTGISTAT) GetLINE_STATE_CHG() bool {
	return USB_OTGISTAT_LINE_STATE_CHG.Bool(uint32(r))
}

func (r USB_OTGISTAT) SetLINE_STATE_CHG(v bool) USB_OTGISTAT {
	return USB_OTGISTAT(USB_OTGISTAT_LINE_STATE_CHG.InsertBool(uint32(r), v))
}

func (r USB_OTGISTAT) GetONEMSEC() bool {
	return USB_OTGISTAT_ONEMSEC.Bool(uint32(r))
}

func (r USB_OTGISTAT) SetONEMSEC(v bool) USB_OTGISTAT {
	return USB_OTGISTAT(USB_OTGISTAT_ONEMSEC.InsertBool(uint32(r), v))
}

func (r USB_OTGISTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LINE_STATE_CHG", Field: USB_OTGISTAT_LINE_STATE_CHG},
		{Name: "ONEMSEC", Field: USB_OTGISTAT_ONEMSEC},
	}
}

type USB_OTGICR uint8

const (
	USB_OTGICR_LINESTATEEN mmio.Field = 1<<8 | 5
	USB_OTGICR_ONEMSECEN   mmio.Field = 1<<8 | 6
)

func (r USB_OTGICR) GetLINESTATEEN() bool {
	return USB_OTGICR_LINESTATEEN.Bool(uint32(r))
}

func (r USB_OTGICR) SetLINESTATEEN(v bool) USB_OTGICR {
	return USB_OTGICR(USB_OTGICR_LINESTATEEN.InsertBool(uint32(r), v))
}

func (r USB_OTGICR) GetONEMSECEN() bool {
	return USB_OTGICR_ONEMSECEN.Bool(uint32(r))
}

func (r USB_OTGICR) SetONEMSECEN(v bool) USB_OTGICR {
	return USB_OTGICR(USB_OTGICR_ONEMSECEN.InsertBool(uint32(r), v))
}

func (r USB_OTGICR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LINESTATEEN", Field: USB_OTGICR_LINESTATEEN},
		{Name: "ONEMSECEN", Field: USB_OTGICR_ONEMSECEN},
	}
}

type USB_OTGSTAT uint8

const (
	USB_OTGSTAT_LINESTATESTABLE mmio.Field = 1<<8 | 5
	USB_OTGSTAT_ONEMSEC         mmio.Field = 1<<8 | 6
)

func (r USB_OTGSTAT) GetLINESTATESTABLE() bool {
	return USB_OTGSTAT_LINESTATESTABLE.Bool(uint32(r))
}

func (r USB_OTGSTAT) GetONEMSEC() bool {
	return USB_OTGSTAT_ONEMSEC.Bool(uint32(r))
}

func (r USB_OTGSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LINESTATESTABLE", Field: USB_OTGSTAT_LINESTATESTABLE},
		{Name: "ONEMSEC", Field: USB_OTGSTAT_ONEMSEC},
	}
}

type USB_OTGCTL uint8

const (
	USB_OTGCTL_OTGEN  mmio.Field = 1<<8 | 2
	USB_OTGCTL_DMLOW  mmio.Field = 1<<8 | 4
	USB_OTGCTL_DPLOW  mmio.Field = 1<<8 | 5
	USB_OTGCTL_DPHIGH mmio.Field = 1<<8 | 7
)

func (r USB_OTGCTL) GetOTGEN() bool {
	return USB_OTGCTL_OTGEN.Bool(uint32(r))
}

func (r USB_OTGCTL) SetOTGEN(v bool) USB_OTGCTL {
	return USB_OTGCTL(USB_OTGCTL_OTGEN.InsertBool(uint32(r), v))
}

func (r USB_OTGCTL) GetDMLOW() bool {
	return USB_OTGCTL_DMLOW.Bool(uint32(r))
}

func (r USB_OTGCTL) SetDMLOW(v bool) USB_OTGCTL {
	return USB_OTGCTL(USB_OTGCTL_DMLOW.InsertBool(uint32(r), v))
}

func (r USB_OTGCTL) GetDPLOW() bool {
	return USB_OTGCTL_DPLOW.Bool(uint32(r))
}

func (r USB_OTGCTL) SetDPLOW(v bool) USB_OTGCTL {
	return USB_OTGCTL(USB_OTGCTL_DPLOW.InsertBool(uint32(r), v))
}

func (r USB_OTGCTL) GetDPHIGH() bool {
	return USB_OTGCTL_DPHIGH.Bool(uint32(r))
}

func (r USB_OTGCTL) SetDPHIGH(v bool) USB_OTGCTL {
	return USB_OTGCTL(USB_OTGCTL_DPHIGH.InsertBool(uint32(r), v))
}

func (r USB_OTGCTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OTGEN", Field: USB_OTGCTL_OTGEN},
		{Name: "DMLOW", Field: USB_OTGCTL_DMLOW},
		{Name: "DPLOW", Field: USB_OTGCTL_DPLOW},
		{Name: "DPHIGH", Field: USB_OTGCTL_DPHIGH},
	}
}

// USB_ISTAT is the interrupt status register; write one to clear.
type USB_ISTAT uint8

const (
	USB_ISTAT_USBRST mmio.Field = 1<<8 | 0
	USB_ISTAT_ERROR  mmio.Field = 1<<8 | 1
	USB_ISTAT_SOFTOK mmio.Field = 1<<8 | 2
	USB_ISTAT_TOKDNE mmio.Field = 1<<8 | 3
	USB_ISTAT_SLEEP  mmio.Field = 1<<8 | 4
	USB_ISTAT_RESUME mmio.Field = 1<<8 | 5
	USB_ISTAT_ATTACH mmio.Field = 1<<8 | 6
	USB_ISTAT_STALL  mmio.Field = 1<<8 | 7
)

func (r USB_ISTAT) GetUSBRST() bool {
	return USB_ISTAT_USBRST.Bool(uint32(r))
}

func (r USB_ISTAT) SetUSBRST(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_USBRST.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetERROR() bool {
	return USB_ISTAT_ERROR.Bool(uint32(r))
}

func (r USB_ISTAT) SetERROR(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_ERROR.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetSOFTOK() bool {
	return USB_ISTAT_SOFTOK.Bool(uint32(r))
}

func (r USB_ISTAT) SetSOFTOK(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_SOFTOK.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetTOKDNE() bool {
	return USB_ISTAT_TOKDNE.Bool(uint32(r))
}

func (r USB_ISTAT) SetTOKDNE(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_TOKDNE.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetSLEEP() bool {
	return USB_ISTAT_SLEEP.Bool(uint32(r))
}

func (r USB_ISTAT) SetSLEEP(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_SLEEP.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetRESUME() bool {
	return USB_ISTAT_RESUME.Bool(uint32(r))
}

func (r USB_ISTAT) SetRESUME(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_RESUME.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetATTACH() bool {
	return USB_ISTAT_ATTACH.Bool(uint32(r))
}

func (r USB_ISTAT) SetATTACH(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_ATTACH.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) GetSTALL() bool {
	return USB_ISTAT_STALL.Bool(uint32(r))
}

func (r USB_ISTAT) SetSTALL(v bool) USB_ISTAT {
	return USB_ISTAT(USB_ISTAT_STALL.InsertBool(uint32(r), v))
}

func (r USB_ISTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "USBRST", Field: USB_ISTAT_USBRST},
		{Name: "ERROR", Field: USB_ISTAT_ERROR},
		{Name: "SOFTOK", Field: USB_ISTAT_SOFTOK},
		{Name: "TOKDNE", Field: USB_ISTAT_TOKDNE},
		{Name: "SLEEP", Field: USB_ISTAT_SLEEP},
		{Name: "RESUME", Field: USB_ISTAT_RESUME},
		{Name: "ATTACH", Field: USB_ISTAT_ATTACH},
		{Name: "STALL", Field: USB_ISTAT_STALL},
	}
}

// USB_INTEN is the interrupt enable register.
type USB_INTEN uint8

const (
	USB_INTEN_USBRSTEN mmio.Field = 1<<8 | 0
	USB_INTEN_ERROREN  mmio.Field = 1<<8 | 1
	USB_INTEN_SOFTOKEN mmio.Field = 1<<8 | 2
	USB_INTEN_TOKDNEEN mmio.Field = 1<<8 | 3
	USB_INTEN_SLEEPEN  mmio.Field = 1<<8 | 4
	USB_INTEN_RESUMEEN mmio.Field = 1<<8 | 5
	USB_INTEN_ATTACHEN mmio.Field = 1<<8 | 6
	USB_INTEN_STALLEN  mmio.Field = 1<<8 | 7
)

func (r USB_INTEN) GetUSBRSTEN() bool {
	return USB_INTEN_USBRSTEN.Bool(uint32(r))
}

func (r USB_INTEN) SetUSBRSTEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_USBRSTEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetERROREN() bool {
	return USB_INTEN_ERROREN.Bool(uint32(r))
}

func (r USB_INTEN) SetERROREN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_ERROREN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetSOFTOKEN() bool {
	return USB_INTEN_SOFTOKEN.Bool(uint32(r))
}

func (r USB_INTEN) SetSOFTOKEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_SOFTOKEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetTOKDNEEN() bool {
	return USB_INTEN_TOKDNEEN.Bool(uint32(r))
}

func (r USB_INTEN) SetTOKDNEEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_TOKDNEEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetSLEEPEN() bool {
	return USB_INTEN_SLEEPEN.Bool(uint32(r))
}

func (r USB_INTEN) SetSLEEPEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_SLEEPEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetRESUMEEN() bool {
	return USB_INTEN_RESUMEEN.Bool(uint32(r))
}

func (r USB_INTEN) SetRESUMEEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_RESUMEEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetATTACHEN() bool {
	return USB_INTEN_ATTACHEN.Bool(uint32(r))
}

func (r USB_INTEN) SetATTACHEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_ATTACHEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) GetSTALLEN() bool {
	return USB_INTEN_STALLEN.Bool(uint32(r))
}

func (r USB_INTEN) SetSTALLEN(v bool) USB_INTEN {
	return USB_INTEN(USB_INTEN_STALLEN.InsertBool(uint32(r), v))
}

func (r USB_INTEN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "USBRSTEN", Field: USB_INTEN_USBRSTEN},
		{Name: "ERROREN", Field: USB_INTEN_ERROREN},
		{Name: "SOFTOKEN", Field: USB_INTEN_SOFTOKEN},
		{Name: "TOKDNEEN", Field: USB_INTEN_TOKDNEEN},
		{Name: "SLEEPEN", Field: USB_INTEN_SLEEPEN},
		{Name: "RESUMEEN", Field: USB_INTEN_RESUMEEN},
		{Name: "ATTACHEN", Field: USB_INTEN_ATTACHEN},
		{Name: "STALLEN", Field: USB_INTEN_STALLEN},
	}
}

// USB_ERRSTAT is the error status register; write one to clear.
type USB_ERRSTAT uint8

const (
	USB_ERRSTAT_PIDERR  mmio.Field = 1<<8 | 0
	USB_ERRSTAT_CRC5EOF mmio.Field = 1<<8 | 1
	USB_ERRSTAT_CRC16   mmio.Field = 1<<8 | 2
	USB_ERRSTAT_DFN8    mmio.Field = 1<<8 | 3
	USB_ERRSTAT_BTOERR  mmio.Field = 1<<8 | 4
	USB_ERRSTAT_DMAERR  mmio.Field = 1<<8 | 5
	USB_ERRSTAT_OWNERR  mmio.Field = 1<<8 | 6
	USB_ERRSTAT_BTSERR  mmio.Field = 1<<8 | 7
)

func (r USB_ERRSTAT) GetPIDERR() bool {
	return USB_ERRSTAT_PIDERR.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetPIDERR(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_PIDERR.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetCRC5EOF() bool {
	return USB_ERRSTAT_CRC5EOF.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetCRC5EOF(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_CRC5EOF.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetCRC16() bool {
	return USB_ERRSTAT_CRC16.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetCRC16(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_CRC16.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetDFN8() bool {
	return USB_ERRSTAT_DFN8.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetDFN8(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_DFN8.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetBTOERR() bool {
	return USB_ERRSTAT_BTOERR.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetBTOERR(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_BTOERR.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetDMAERR() bool {
	return USB_ERRSTAT_DMAERR.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetDMAERR(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_DMAERR.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetOWNERR() bool {
	return USB_ERRSTAT_OWNERR.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetOWNERR(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_OWNERR.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) GetBTSERR() bool {
	return USB_ERRSTAT_BTSERR.Bool(uint32(r))
}

func (r USB_ERRSTAT) SetBTSERR(v bool) USB_ERRSTAT {
	return USB_ERRSTAT(USB_ERRSTAT_BTSERR.InsertBool(uint32(r), v))
}

func (r USB_ERRSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PIDERR", Field: USB_ERRSTAT_PIDERR},
		{Name: "CRC5EOF", Field: USB_ERRSTAT_CRC5EOF},
		{Name: "CRC16", Field: USB_ERRSTAT_CRC16},
		{Name: "DFN8", Field: USB_ERRSTAT_DFN8},
		{Name: "BTOERR", Field: USB_ERRSTAT_BTOERR},
		{Name: "DMAERR", Field: USB_ERRSTAT_DMAERR},
		{Name: "OWNERR", Field: USB_ERRSTAT_OWNERR},
		{Name: "BTSERR", Field: USB_ERRSTAT_BTSERR},
	}
}

// USB_ERREN is the error enable register.
type USB_ERREN uint8

const (
	USB_ERREN_PIDERREN  mmio.Field = 1<<8 | 0
	USB_ERREN_CRC5EOFEN mmio.Field = 1<<8 | 1
	USB_ERREN_CRC16EN   mmio.Field = 1<<8 | 2
	USB_ERREN_DFN8EN    mmio.Field = 1<<8 | 3
	USB_ERREN_BTOERREN  mmio.Field = 1<<8 | 4
	USB_ERREN_DMAERREN  mmio.Field = 1<<8 | 5
	USB_ERREN_OWNERREN  mmio.Field = 1<<8 | 6
	USB_ERREN_BTSERREN  mmio.Field = 1<<8 | 7
)

func (r USB_ERREN) GetPIDERREN() bool {
	return USB_ERREN_PIDERREN.Bool(uint32(r))
}

func (r USB_ERREN) SetPIDERREN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_PIDERREN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetCRC5EOFEN() bool {
	return USB_ERREN_CRC5EOFEN.Bool(uint32(r))
}

func (r USB_ERREN) SetCRC5EOFEN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_CRC5EOFEN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetCRC16EN() bool {
	return USB_ERREN_CRC16EN.Bool(uint32(r))
}

func (r USB_ERREN) SetCRC16EN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_CRC16EN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetDFN8EN() bool {
	return USB_ERREN_DFN8EN.Bool(uint32(r))
}

func (r USB_ERREN) SetDFN8EN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_DFN8EN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetBTOERREN() bool {
	return USB_ERREN_BTOERREN.Bool(uint32(r))
}

func (r USB_ERREN) SetBTOERREN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_BTOERREN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetDMAERREN() bool {
	return USB_ERREN_DMAERREN.Bool(uint32(r))
}

func (r USB_ERREN) SetDMAERREN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_DMAERREN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetOWNERREN() bool {
	return USB_ERREN_OWNERREN.Bool(uint32(r))
}

func (r USB_ERREN) SetOWNERREN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_OWNERREN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) GetBTSERREN() bool {
	return USB_ERREN_BTSERREN.Bool(uint32(r))
}

func (r USB_ERREN) SetBTSERREN(v bool) USB_ERREN {
	return USB_ERREN(USB_ERREN_BTSERREN.InsertBool(uint32(r), v))
}

func (r USB_ERREN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PIDERREN", Field: USB_ERREN_PIDERREN},
		{Name: "CRC5EOFEN", Field: USB_ERREN_CRC5EOFEN},
		{Name: "CRC16EN", Field: USB_ERREN_CRC16EN},
		{Name: "DFN8EN", Field: USB_ERREN_DFN8EN},
		{Name: "BTOERREN", Field: USB_ERREN_BTOERREN},
		{Name: "DMAERREN", Field: USB_ERREN_DMAERREN},
		{Name: "OWNERREN", Field: USB_ERREN_OWNERREN},
		{Name: "BTSERREN", Field: USB_ERREN_BTSERREN},
	}
}

// USB_STAT is the status of the last completed token register.
type USB_STAT uint8

const (
	USB_STAT_ODD  mmio.Field = 1<<8 | 2
	USB_STAT_TX   mmio.Field = 1<<8 | 3
	USB_STAT_ENDP mmio.Field = 4<<8 | 4
)

func (r USB_STAT) GetODD() bool {
	return USB_STAT_ODD.Bool(uint32(r))
}

func (r USB_STAT) GetTX() bool {
	return USB_STAT_TX.Bool(uint32(r))
}

func (r USB_STAT) GetENDP() uint32 {
	return USB_STAT_ENDP.Decode(uint32(r))
}

func (r USB_STAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ODD", Field: USB_STAT_ODD},
		{Name: "TX", Field: USB_STAT_TX},
		{Name: "ENDP", Field: USB_STAT_ENDP},
	}
}

// USB_CTL is the control register.
type USB_CTL uint8

const (
	USB_CTL_USBENSOFEN         mmio.Field = 1<<8 | 0
	USB_CTL_ODDRST             mmio.Field = 1<<8 | 1
	USB_CTL_RESUME             mmio.Field = 1<<8 | 2
	USB_CTL_HOSTMODEEN         mmio.Field = 1<<8 | 3
	USB_CTL_RESET              mmio.Field = 1<<8 | 4
	USB_CTL_TXSUSPENDTOKENBUSY mmio.Field = 1<<8 | 5
	USB_CTL_SE0                mmio.Field = 1<<8 | 6
	USB_CTL_JSTATE             mmio.Field = 1<<8 | 7
)

func (r USB_CTL) GetUSBENSOFEN() bool {
	return USB_CTL_USBENSOFEN.Bool(uint32(r))
}

func (r USB_CTL) SetUSBENSOFEN(v bool) USB_CTL {
	return USB_CTL(USB_CTL_USBENSOFEN.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetODDRST() bool {
	return USB_CTL_ODDRST.Bool(uint32(r))
}

func (r USB_CTL) SetODDRST(v bool) USB_CTL {
	return USB_CTL(USB_CTL_ODDRST.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetRESUME() bool {
	return USB_CTL_RESUME.Bool(uint32(r))
}

func (r USB_CTL) SetRESUME(v bool) USB_CTL {
	return USB_CTL(USB_CTL_RESUME.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetHOSTMODEEN() bool {
	return USB_CTL_HOSTMODEEN.Bool(uint32(r))
}

func (r USB_CTL) SetHOSTMODEEN(v bool) USB_CTL {
	return USB_CTL(USB_CTL_HOSTMODEEN.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetRESET() bool {
	return USB_CTL_RESET.Bool(uint32(r))
}

func (r USB_CTL) SetRESET(v bool) USB_CTL {
	return USB_CTL(USB_CTL_RESET.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetTXSUSPENDTOKENBUSY() bool {
	return USB_CTL_TXSUSPENDTOKENBUSY.Bool(uint32(r))
}

func (r USB_CTL) SetTXSUSPENDTOKENBUSY(v bool) USB_CTL {
	return USB_CTL(USB_CTL_TXSUSPENDTOKENBUSY.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetSE0() bool {
	return USB_CTL_SE0.Bool(uint32(r))
}

func (r USB_CTL) SetSE0(v bool) USB_CTL {
	return USB_CTL(USB_CTL_SE0.InsertBool(uint32(r), v))
}

func (r USB_CTL) GetJSTATE() bool {
	return USB_CTL_JSTATE.Bool(uint32(r))
}

func (r USB_CTL) SetJSTATE(v bool) USB_CTL {
	return USB_CTL(USB_CTL_JSTATE.InsertBool(uint32(r), v))
}

func (r USB_CTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "USBENSOFEN", Field: USB_CTL_USBENSOFEN},
		{Name: "ODDRST", Field: USB_CTL_ODDRST},
		{Name: "RESUME", Field: USB_CTL_RESUME},
		{Name: "HOSTMODEEN", Field: USB_CTL_HOSTMODEEN},
		{Name: "RESET", Field: USB_CTL_RESET},
		{Name: "TXSUSPENDTOKENBUSY", Field: USB_CTL_TXSUSPENDTOKENBUSY},
		{Name: "SE0", Field: USB_CTL_SE0},
		{Name: "JSTATE", Field: USB_CTL_JSTATE},
	}
}

// USB_ADDR is the address register.
type USB_ADDR uint8

const (
	USB_ADDR_ADDR mmio.Field = 7<<8 | 0
	USB_ADDR_LSEN mmio.Field = 1<<8 | 7
)

func (r USB_ADDR) GetADDR() uint32 {
	return USB_ADDR_ADDR.Decode(uint32(r))
}

func (r USB_ADDR) SetADDR(v uint32) USB_ADDR {
	return USB_ADDR(USB_ADDR_ADDR.Insert(uint32(r), v))
}

func (r USB_ADDR) GetLSEN() bool {
	return USB_ADDR_LSEN.Bool(uint32(r))
}

func (r USB_ADDR) SetLSEN(v bool) USB_ADDR {
	return USB_ADDR(USB_ADDR_LSEN.InsertBool(uint32(r), v))
}

func (r USB_ADDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ADDR", Field: USB_ADDR_ADDR},
		{Name: "LSEN", Field: USB_ADDR_LSEN},
	}
}

// USB_BDTPAGE1 is the buffer descriptor table page 1 register.
type USB_BDTPAGE1 uint8

const (
	USB_BDTPAGE1_BDTBA mmio.Field = 7<<8 | 1
)

func (r USB_BDTPAGE1) GetBDTBA() uint32 {
	return USB_BDTPAGE1_BDTBA.Decode(uint32(r))
}

func (r USB_BDTPAGE1) SetBDTBA(v uint32) USB_BDTPAGE1 {
	return USB_BDTPAGE1(USB_BDTPAGE1_BDTBA.Insert(uint32(r), v))
}

func (r USB_BDTPAGE1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BDTBA", Field: USB_BDTPAGE1_BDTBA},
	}
}

// USB_FRMNUMH is the frame number high register.
type USB_FRMNUMH uint8

const (
	USB_FRMNUMH_FRM mmio.Field = 3<<8 | 0
)

func (r USB_FRMNUMH) GetFRM() uint32 {
	return USB_FRMNUMH_FRM.Decode(uint32(r))
}

func (r USB_FRMNUMH) SetFRM(v uint32) USB_FRMNUMH {
	return USB_FRMNUMH(USB_FRMNUMH_FRM.Insert(uint32(r), v))
}

func (r USB_FRMNUMH) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRM", Field: USB_FRMNUMH_FRM},
	}
}

// USB_TOKEN is the host token register; writing it starts the transaction.
type USB_TOKEN uint8

const (
	USB_TOKEN_TOKENENDPT mmio.Field = 4<<8 | 0
	USB_TOKEN_TOKENPID   mmio.Field = 4<<8 | 4
)

type USB_TOKEN_TOKENPID_Value uint32

const (
	USB_TOKEN_TOKENPID_OUT   USB_TOKEN_TOKENPID_Value = 1
	USB_TOKEN_TOKENPID_IN    USB_TOKEN_TOKENPID_Value = 9
	USB_TOKEN_TOKENPID_SETUP USB_TOKEN_TOKENPID_Value = 13
)

func (r USB_TOKEN) GetTOKENENDPT() uint32 {
	return USB_TOKEN_TOKENENDPT.Decode(uint32(r))
}

func (r USB_TOKEN) SetTOKENENDPT(v uint32) USB_TOKEN {
	return USB_TOKEN(USB_TOKEN_TOKENENDPT.Insert(uint32(r), v))
}

func (r USB_TOKEN) GetTOKENPID() USB_TOKEN_TOKENPID_Value {
	return USB_TOKEN_TOKENPID_Value(USB_TOKEN_TOKENPID.Decode(uint32(r)))
}

func (r USB_TOKEN) SetTOKENPID(v USB_TOKEN_TOKENPID_Value) USB_TOKEN {
	return USB_TOKEN(USB_TOKEN_TOKENPID.Insert(uint32(r), uint32(v)))
}

func (r USB_TOKEN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TOKENENDPT", Field: USB_TOKEN_TOKENENDPT},
		{Name: "TOKENPID", Field: USB_TOKEN_TOKENPID, Values: []mmio.EnumValue{
			{Name: "OUT", Value: uint32(USB_TOKEN_TOKENPID_OUT)},
			{Name: "IN", Value: uint32(USB_TOKEN_TOKENPID_IN)},
			{Name: "SETUP", Value: uint32(USB_TOKEN_TOKENPID_SETUP)},
		}},
	}
}

// USB_ENDPT is the endpoint control register.
type USB_ENDPT uint8

const (
	USB_ENDPT_EPHSHK    mmio.Field = 1<<8 | 0
	USB_ENDPT_EPSTALL   mmio.Field = 1<<8 | 1
	USB_ENDPT_EPTXEN    mmio.Field = 1<<8 | 2
	USB_ENDPT_EPRXEN    mmio.Field = 1<<8 | 3
	USB_ENDPT_EPCTLDIS  mmio.Field = 1<<8 | 4
	USB_ENDPT_RETRYDIS  mmio.Field = 1<<8 | 6
	USB_ENDPT_HOSTWOHUB mmio.Field = 1<<8 | 7
)

func (r USB_ENDPT) GetEPHSHK() bool {
	return USB_ENDPT_EPHSHK.Bool(uint32(r))
}

func (r USB_ENDPT) SetEPHSHK(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_EPHSHK.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetEPSTALL() bool {
	return USB_ENDPT_EPSTALL.Bool(uint32(r))
}

func (r USB_ENDPT) SetEPSTALL(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_EPSTALL.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetEPTXEN() bool {
	return USB_ENDPT_EPTXEN.Bool(uint32(r))
}

func (r USB_ENDPT) SetEPTXEN(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_EPTXEN.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetEPRXEN() bool {
	return USB_ENDPT_EPRXEN.Bool(uint32(r))
}

func (r USB_ENDPT) SetEPRXEN(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_EPRXEN.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetEPCTLDIS() bool {
	return USB_ENDPT_EPCTLDIS.Bool(uint32(r))
}

func (r USB_ENDPT) SetEPCTLDIS(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_EPCTLDIS.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetRETRYDIS() bool {
	return USB_ENDPT_RETRYDIS.Bool(uint32(r))
}

func (r USB_ENDPT) SetRETRYDIS(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_RETRYDIS.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) GetHOSTWOHUB() bool {
	return USB_ENDPT_HOSTWOHUB.Bool(uint32(r))
}

func (r USB_ENDPT) SetHOSTWOHUB(v bool) USB_ENDPT {
	return USB_ENDPT(USB_ENDPT_HOSTWOHUB.InsertBool(uint32(r), v))
}

func (r USB_ENDPT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EPHSHK", Field: USB_ENDPT_EPHSHK},
		{Name: "EPSTALL", Field: USB_ENDPT_EPSTALL},
		{Name: "EPTXEN", Field: USB_ENDPT_EPTXEN},
		{Name: "EPRXEN", Field: USB_ENDPT_EPRXEN},
		{Name: "EPCTLDIS", Field: USB_ENDPT_EPCTLDIS},
		{Name: "RETRYDIS", Field: USB_ENDPT_RETRYDIS},
		{Name: "HOSTWOHUB", Field: USB_ENDPT_HOSTWOHUB},
	}
}

type USB_USBCTRL uint8

const (
	USB_USBCTRL_UARTSEL  mmio.Field = 1<<8 | 4
	USB_USBCTRL_UARTCHLS mmio.Field = 1<<8 | 5
	USB_USBCTRL_PDE      mmio.Field = 1<<8 | 6
	USB_USBCTRL_SUSP     mmio.Field = 1<<8 | 7
)

func (r USB_USBCTRL) GetUARTSEL() bool {
	return USB_USBCTRL_UARTSEL.Bool(uint32(r))
}

func (r USB_USBCTRL) SetUARTSEL(v bool) USB_USBCTRL {
	return USB_USBCTRL(USB_USBCTRL_UARTSEL.InsertBool(uint32(r), v))
}

func (r USB_USBCTRL) GetUARTCHLS() bool {
	return USB_USBCTRL_UARTCHLS.Bool(uint32(r))
}

func (r USB_USBCTRL) SetUARTCHLS(v bool) USB_USBCTRL {
	return USB_USBCTRL(USB_USBCTRL_UARTCHLS.InsertBool(uint32(r), v))
}

func (r USB_USBCTRL) GetPDE() bool {
	return USB_USBCTRL_PDE.Bool(uint32(r))
}

func (r USB_USBCTRL) SetPDE(v bool) USB_USBCTRL {
	return USB_USBCTRL(USB_USBCTRL_PDE.InsertBool(uint32(r), v))
}

func (r USB_USBCTRL) GetSUSP() bool {
	return USB_USBCTRL_SUSP.Bool(uint32(r))
}

func (r USB_USBCTRL) SetSUSP(v bool) USB_USBCTRL {
	return USB_USBCTRL(USB_USBCTRL_SUSP.InsertBool(uint32(r), v))
}

func (r USB_USBCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "UARTSEL", Field: USB_USBCTRL_UARTSEL},
		{Name: "UARTCHLS", Field: USB_USBCTRL_UARTCHLS},
		{Name: "PDE", Field: USB_USBCTRL_PDE},
		{Name: "SUSP", Field: USB_USBCTRL_SUSP},
	}
}

type USB_OBSERVE uint8

const (
	USB_OBSERVE_DMPD mmio.Field = 1<<8 | 4
	USB_OBSERVE_DPPD mmio.Field = 1<<8 | 6
	USB_OBSERVE_DPPU mmio.Field = 1<<8 | 7
)

func (r USB_OBSERVE) GetDMPD() bool {
	return USB_OBSERVE_DMPD.Bool(uint32(r))
}

func (r USB_OBSERVE) GetDPPD() bool {
	return USB_OBSERVE_DPPD.Bool(uint32(r))
}

func (r USB_OBSERVE) GetDPPU() bool {
	return USB_OBSERVE_DPPU.Bool(uint32(r))
}

func (r USB_OBSERVE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DMPD", Field: USB_OBSERVE_DMPD},
		{Name: "DPPD", Field: USB_OBSERVE_DPPD},
		{Name: "DPPU", Field: USB_OBSERVE_DPPU},
	}
}

type USB_CONTROL uint8

const (
	USB_CONTROL_DPPULLUPNONOTG mmio.Field = 1<<8 | 4
)

func (r USB_CONTROL) GetDPPULLUPNONOTG() bool {
	return USB_CONTROL_DPPULLUPNONOTG.Bool(uint32(r))
}

func (r USB_CONTROL) SetDPPULLUPNONOTG(v bool) USB_CONTROL {
	return USB_CONTROL(USB_CONTROL_DPPULLUPNONOTG.InsertBool(uint32(r), v))
}

func (r USB_CONTROL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DPPULLUPNONOTG", Field: USB_CONTROL_DPPULLUPNONOTG},
	}
}

// USB_USBTRC0 is the transceiver control 0 register.
type USB_USBTRC0 uint8

const (
	USB_USBTRC0_USB_RESUME_INT       mmio.Field = 1<<8 | 0
	USB_USBTRC0_SYNC_DET             mmio.Field = 1<<8 | 1
	USB_USBTRC0_USB_CLK_RECOVERY_INT mmio.Field = 1<<8 | 2
	USB_USBTRC0_VREDG_DET            mmio.Field = 1<<8 | 3
	USB_USBTRC0_VFEDG_DET            mmio.Field = 1<<8 | 4
	USB_USBTRC0_USBRESMEN            mmio.Field = 1<<8 | 5
	USB_USBTRC0_USBRESET             mmio.Field = 1<<8 | 7
)

func (r USB_USBTRC0) GetUSB_RESUME_INT() bool {
	return USB_USBTRC0_USB_RESUME_INT.Bool(uint32(r))
}

func (r USB_USBTRC0) SetUSB_RESUME_INT(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_USB_RESUME_INT.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetSYNC_DET() bool {
	return USB_USBTRC0_SYNC_DET.Bool(uint32(r))
}

func (r USB_USBTRC0) SetSYNC_DET(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_SYNC_DET.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetUSB_CLK_RECOVERY_INT() bool {
	return USB_USBTRC0_USB_CLK_RECOVERY_INT.Bool(uint32(r))
}

func (r USB_USBTRC0) SetUSB_CLK_RECOVERY_INT(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_USB_CLK_RECOVERY_INT.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetVREDG_DET() bool {
	return USB_USBTRC0_VREDG_DET.Bool(uint32(r))
}

func (r USB_USBTRC0) SetVREDG_DET(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_VREDG_DET.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetVFEDG_DET() bool {
	return USB_USBTRC0_VFEDG_DET.Bool(uint32(r))
}

func (r USB_USBTRC0) SetVFEDG_DET(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_VFEDG_DET.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetUSBRESMEN() bool {
	return USB_USBTRC0_USBRESMEN.Bool(uint32(r))
}

func (r USB_USBTRC0) SetUSBRESMEN(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_USBRESMEN.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) GetUSBRESET() bool {
	return USB_USBTRC0_USBRESET.Bool(uint32(r))
}

func (r USB_USBTRC0) SetUSBRESET(v bool) USB_USBTRC0 {
	return USB_USBTRC0(USB_USBTRC0_USBRESET.InsertBool(uint32(r), v))
}

func (r USB_USBTRC0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "USB_RESUME_INT", Field: USB_USBTRC0_USB_RESUME_INT},
		{Name: "SYNC_DET", Field: USB_USBTRC0_SYNC_DET},
		{Name: "USB_CLK_RECOVERY_INT", Field: USB_USBTRC0_USB_CLK_RECOVERY_INT},
		{Name: "VREDG_DET", Field: USB_USBTRC0_VREDG_DET},
		{Name: "VFEDG_DET", Field: USB_USBTRC0_VFEDG_DET},
		{Name: "USBRESMEN", Field: USB_USBTRC0_USBRESMEN},
		{Name: "USBRESET", Field: USB_USBTRC0_USBRESET},
	}
}

type USB_KEEP_ALIVE_CTRL uint8

const (
	USB_KEEP_ALIVE_CTRL_KEEP_ALIVE_EN   mmio.Field = 1<<8 | 0
	USB_KEEP_ALIVE_CTRL_OWN_OVERRD_EN   mmio.Field = 1<<8 | 1
	USB_KEEP_ALIVE_CTRL_STOP_ACK_DLY_EN mmio.Field = 1<<8 | 2
	USB_KEEP_ALIVE_CTRL_AHB_DLY_EN      mmio.Field = 1<<8 | 3
	USB_KEEP_ALIVE_CTRL_WAKE_INT_EN     mmio.Field = 1<<8 | 4
	USB_KEEP_ALIVE_CTRL_WAKE_REQ_EN     mmio.Field = 1<<8 | 7
)

func (r USB_KEEP_ALIVE_CTRL) GetKEEP_ALIVE_EN() bool {
	return USB_KEEP_ALIVE_CTRL_KEEP_ALIVE_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetKEEP_ALIVE_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_KEEP_ALIVE_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) GetOWN_OVERRD_EN() bool {
	return USB_KEEP_ALIVE_CTRL_OWN_OVERRD_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetOWN_OVERRD_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_OWN_OVERRD_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) GetSTOP_ACK_DLY_EN() bool {
	return USB_KEEP_ALIVE_CTRL_STOP_ACK_DLY_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetSTOP_ACK_DLY_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_STOP_ACK_DLY_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) GetAHB_DLY_EN() bool {
	return USB_KEEP_ALIVE_CTRL_AHB_DLY_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetAHB_DLY_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_AHB_DLY_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) GetWAKE_INT_EN() bool {
	return USB_KEEP_ALIVE_CTRL_WAKE_INT_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetWAKE_INT_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_WAKE_INT_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) GetWAKE_REQ_EN() bool {
	return USB_KEEP_ALIVE_CTRL_WAKE_REQ_EN.Bool(uint32(r))
}

func (r USB_KEEP_ALIVE_CTRL) SetWAKE_REQ_EN(v bool) USB_KEEP_ALIVE_CTRL {
	return USB_KEEP_ALIVE_CTRL(USB_KEEP_ALIVE_CTRL_WAKE_REQ_EN.InsertBool(uint32(r), v))
}

func (r USB_KEEP_ALIVE_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "KEEP_ALIVE_EN", Field: USB_KEEP_ALIVE_CTRL_KEEP_ALIVE_EN},
		{Name: "OWN_OVERRD_EN", Field: USB_KEEP_ALIVE_CTRL_OWN_OVERRD_EN},
		{Name: "STOP_ACK_DLY_EN", Field: USB_KEEP_ALIVE_CTRL_STOP_ACK_DLY_EN},
		{Name: "AHB_DLY_EN", Field: USB_KEEP_ALIVE_CTRL_AHB_DLY_EN},
		{Name: "WAKE_INT_EN", Field: USB_KEEP_ALIVE_CTRL_WAKE_INT_EN},
		{Name: "WAKE_REQ_EN", Field: USB_KEEP_ALIVE_CTRL_WAKE_REQ_EN},
	}
}

type USB_KEEP_ALIVE_WKCTRL uint8

const (
	USB_KEEP_ALIVE_WKCTRL_WAKE_ON_THIS mmio.Field = 4<<8 | 0
	USB_KEEP_ALIVE_WKCTRL_WAKE_ENDPT   mmio.Field = 4<<8 | 4
)

func (r USB_KEEP_ALIVE_WKCTRL) GetWAKE_ON_THIS() uint32 {
	return USB_KEEP_ALIVE_WKCTRL_WAKE_ON_THIS.Decode(uint32(r))
}

func (r USB_KEEP_ALIVE_WKCTRL) SetWAKE_ON_THIS(v uint32) USB_KEEP_ALIVE_WKCTRL {
	return USB_KEEP_ALIVE_WKCTRL(USB_KEEP_ALIVE_WKCTRL_WAKE_ON_THIS.Insert(uint32(r), v))
}

func (r USB_KEEP_ALIVE_WKCTRL) GetWAKE_ENDPT() uint32 {
	return USB_KEEP_ALIVE_WKCTRL_WAKE_ENDPT.Decode(uint32(r))
}

func (r USB_KEEP_ALIVE_WKCTRL) SetWAKE_ENDPT(v uint32) USB_KEEP_ALIVE_WKCTRL {
	return USB_KEEP_ALIVE_WKCTRL(USB_KEEP_ALIVE_WKCTRL_WAKE_ENDPT.Insert(uint32(r), v))
}

func (r USB_KEEP_ALIVE_WKCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WAKE_ON_THIS", Field: USB_KEEP_ALIVE_WKCTRL_WAKE_ON_THIS},
		{Name: "WAKE_ENDPT", Field: USB_KEEP_ALIVE_WKCTRL_WAKE_ENDPT},
	}
}

type USB_MISCCTRL uint8

const (
	USB_MISCCTRL_SOFDYNTHLD   mmio.Field = 1<<8 | 0
	USB_MISCCTRL_SOFBUSSET    mmio.Field = 1<<8 | 1
	USB_MISCCTRL_OWNERRISODIS mmio.Field = 1<<8 | 2
	USB_MISCCTRL_VREDG_EN     mmio.Field = 1<<8 | 3
	USB_MISCCTRL_VFEDG_EN     mmio.Field = 1<<8 | 4
	USB_MISCCTRL_STL_ADJ_EN   mmio.Field = 1<<8 | 7
)

func (r USB_MISCCTRL) GetSOFDYNTHLD() bool {
	return USB_MISCCTRL_SOFDYNTHLD.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetSOFDYNTHLD(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_SOFDYNTHLD.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) GetSOFBUSSET() bool {
	return USB_MISCCTRL_SOFBUSSET.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetSOFBUSSET(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_SOFBUSSET.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) GetOWNERRISODIS() bool {
	return USB_MISCCTRL_OWNERRISODIS.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetOWNERRISODIS(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_OWNERRISODIS.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) GetVREDG_EN() bool {
	return USB_MISCCTRL_VREDG_EN.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetVREDG_EN(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_VREDG_EN.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) GetVFEDG_EN() bool {
	return USB_MISCCTRL_VFEDG_EN.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetVFEDG_EN(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_VFEDG_EN.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) GetSTL_ADJ_EN() bool {
	return USB_MISCCTRL_STL_ADJ_EN.Bool(uint32(r))
}

func (r USB_MISCCTRL) SetSTL_ADJ_EN(v bool) USB_MISCCTRL {
	return USB_MISCCTRL(USB_MISCCTRL_STL_ADJ_EN.InsertBool(uint32(r), v))
}

func (r USB_MISCCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SOFDYNTHLD", Field: USB_MISCCTRL_SOFDYNTHLD},
		{Name: "SOFBUSSET", Field: USB_MISCCTRL_SOFBUSSET},
		{Name: "OWNERRISODIS", Field: USB_MISCCTRL_OWNERRISODIS},
		{Name: "VREDG_EN", Field: USB_MISCCTRL_VREDG_EN},
		{Name: "VFEDG_EN", Field: USB_MISCCTRL_VFEDG_EN},
		{Name: "STL_ADJ_EN", Field: USB_MISCCTRL_STL_ADJ_EN},
	}
}

type USB_CLK_RECOVER_CTRL uint8

const (
	USB_CLK_RECOVER_CTRL_RESTART_IFRTRIM_EN    mmio.Field = 1<<8 | 5
	USB_CLK_RECOVER_CTRL_RESET_RESUME_ROUGH_EN mmio.Field = 1<<8 | 6
	USB_CLK_RECOVER_CTRL_CLOCK_RECOVER_EN      mmio.Field = 1<<8 | 7
)

func (r USB_CLK_RECOVER_CTRL) GetRESTART_IFRTRIM_EN() bool {
	return USB_CLK_RECOVER_CTRL_RESTART_IFRTRIM_EN.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_CTRL) SetRESTART_IFRTRIM_EN(v bool) USB_CLK_RECOVER_CTRL {
	return USB_CLK_RECOVER_CTRL(USB_CLK_RECOVER_CTRL_RESTART_IFRTRIM_EN.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_CTRL) GetRESET_RESUME_ROUGH_EN() bool {
	return USB_CLK_RECOVER_CTRL_RESET_RESUME_ROUGH_EN.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_CTRL) SetRESET_RESUME_ROUGH_EN(v bool) USB_CLK_RECOVER_CTRL {
	return USB_CLK_RECOVER_CTRL(USB_CLK_RECOVER_CTRL_RESET_RESUME_ROUGH_EN.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_CTRL) GetCLOCK_RECOVER_EN() bool {
	return USB_CLK_RECOVER_CTRL_CLOCK_RECOVER_EN.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_CTRL) SetCLOCK_RECOVER_EN(v bool) USB_CLK_RECOVER_CTRL {
	return USB_CLK_RECOVER_CTRL(USB_CLK_RECOVER_CTRL_CLOCK_RECOVER_EN.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RESTART_IFRTRIM_EN", Field: USB_CLK_RECOVER_CTRL_RESTART_IFRTRIM_EN},
		{Name: "RESET_RESUME_ROUGH_EN", Field: USB_CLK_RECOVER_CTRL_RESET_RESUME_ROUGH_EN},
		{Name: "CLOCK_RECOVER_EN", Field: USB_CLK_RECOVER_CTRL_CLOCK_RECOVER_EN},
	}
}

type USB_CLK_RECOVER_IRC_EN uint8

const (
	USB_CLK_RECOVER_IRC_EN_IRC_EN mmio.Field = 1<<8 | 1
)

func (r USB_CLK_RECOVER_IRC_EN) GetIRC_EN() bool {
	return USB_CLK_RECOVER_IRC_EN_IRC_EN.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_IRC_EN) SetIRC_EN(v bool) USB_CLK_RECOVER_IRC_EN {
	return USB_CLK_RECOVER_IRC_EN(USB_CLK_RECOVER_IRC_EN_IRC_EN.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_IRC_EN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "IRC_EN", Field: USB_CLK_RECOVER_IRC_EN_IRC_EN},
	}
}

type USB_CLK_RECOVER_INT_EN uint8

const (
	USB_CLK_RECOVER_INT_EN_OVF_ERROR_EN mmio.Field = 1<<8 | 4
)

func (r USB_CLK_RECOVER_INT_EN) GetOVF_ERROR_EN() bool {
	return USB_CLK_RECOVER_INT_EN_OVF_ERROR_EN.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_INT_EN) SetOVF_ERROR_EN(v bool) USB_CLK_RECOVER_INT_EN {
	return USB_CLK_RECOVER_INT_EN(USB_CLK_RECOVER_INT_EN_OVF_ERROR_EN.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_INT_EN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OVF_ERROR_EN", Field: USB_CLK_RECOVER_INT_EN_OVF_ERROR_EN},
	}
}

type USB_CLK_RECOVER_INT_STATUS uint8

const (
	USB_CLK_RECOVER_INT_STATUS_OVF_ERROR mmio.Field = 1<<8 | 4
)

func (r USB_CLK_RECOVER_INT_STATUS) GetOVF_ERROR() bool {
	return USB_CLK_RECOVER_INT_STATUS_OVF_ERROR.Bool(uint32(r))
}

func (r USB_CLK_RECOVER_INT_STATUS) SetOVF_ERROR(v bool) USB_CLK_RECOVER_INT_STATUS {
	return USB_CLK_RECOVER_INT_STATUS(USB_CLK_RECOVER_INT_STATUS_OVF_ERROR.InsertBool(uint32(r), v))
}

func (r USB_CLK_RECOVER_INT_STATUS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OVF_ERROR", Field: USB_CLK_RECOVER_INT_STATUS_OVF_ERROR},
	}
}
