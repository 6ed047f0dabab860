// Package svd decodes CMSIS System View Description files.
package svd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

type Addressable interface {
	GetAddressOffset() Integer
}

type DeviceElement struct {
	Name             string             `xml:"name"`
	Description      string             `xml:"description"`
	Series           string             `xml:"series"`
	Version          string             `xml:"version"`
	Vendor           string             `xml:"vendor"`
	VendorId         string             `xml:"vendorID"`
	CPU              CPUElement         `xml:"cpu"`
	AddressableWidth Integer            `xml:"addressUnitBits"`
	BitWidth         Integer            `xml:"width"`
	RegisterSize     Integer            `xml:"size"`
	DefaultAccess    string             `xml:"access"`
	ResetValue       Integer            `xml:"resetValue"`
	ResetMask        Integer            `xml:"resetMask"`
	Peripherals      PeripheralsElement `xml:"peripherals"`
}

type CPUElement struct {
	Name                string  `xml:"name"`
	Revision            string  `xml:"revision"`
	Endian              string  `xml:"endian"`
	DeviceNumInterrupts Integer `xml:"deviceNumInterrupts"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name                string                `xml:"name"`
	Description         string                `xml:"description"`
	AlternatePeripheral string                `xml:"alternatePeripheral"`
	Group               string                `xml:"groupName"`
	HeaderStructName    string                `xml:"headerStructName"`
	BaseAddress         Integer               `xml:"baseAddress"`
	Size                Integer               `xml:"size"`
	Access              string                `xml:"access"`
	AddressBlocks       []AddressBlockElement `xml:"addressBlock"`
	Interrupts          []InterruptElement    `xml:"interrupt"`
	Registers           RegistersElement      `xml:"registers"`
	DerivedFrom         string                `xml:"derivedFrom,attr"`
}

type AddressBlockElement struct {
	Offset Integer `xml:"offset"`
	Size   Integer `xml:"size"`
	Usage  string  `xml:"usage"`
}

type InterruptElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}

type RegistersElement struct {
	RegisterElements []RegisterElement `xml:"register"`
	ClusterElements  []ClusterElement  `xml:"cluster"`
}

type ClusterElement struct {
	Name             string            `xml:"name"`
	Description      string            `xml:"description"`
	HeaderStructName string            `xml:"headerStructName"`
	Count            Integer           `xml:"dim"`
	Increment        Integer           `xml:"dimIncrement"`
	DimIndex         string            `xml:"dimIndex"`
	AddressOffset    Integer           `xml:"addressOffset"`
	Registers        []RegisterElement `xml:"register"`
	Clusters         []ClusterElement  `xml:"cluster"`
}

func (c ClusterElement) GetAddressOffset() Integer {
	return c.AddressOffset
}

type RegisterElement struct {
	Name           string        `xml:"name"`
	Description    string        `xml:"description"`
	AddressOffset  Integer       `xml:"addressOffset"`
	Size           Integer       `xml:"size"`
	Fields         FieldElements `xml:"fields"`
	Count          Integer       `xml:"dim"`
	Increment      Integer       `xml:"dimIncrement"`
	DimIndex       string        `xml:"dimIndex"`
	Access         string        `xml:"access"`
	Alternative    string        `xml:"alternateRegister"`
	AlternateGroup string        `xml:"alternateGroup"`
	DerivedFrom    string        `xml:"derivedFrom,attr"`
}

func (r RegisterElement) GetAddressOffset() Integer {
	return r.AddressOffset
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                  `xml:"name"`
	Description      string                  `xml:"description"`
	BitOffset        *Integer                `xml:"bitOffset"`
	BitWidth         *Integer                `xml:"bitWidth"`
	Lsb              *Integer                `xml:"lsb"`
	Msb              *Integer                `xml:"msb"`
	BitRange         string                  `xml:"bitRange"`
	Access           string                  `xml:"access"`
	EnumeratedValues EnumeratedValuesElement `xml:"enumeratedValues"`
}

// Bits returns the offset and width of the field from whichever of the
// three bit range notations the file uses.
func (f FieldElement) Bits() (offset, width uint, err error) {
	switch {
	case f.BitOffset != nil:
		width = 1
		if f.BitWidth != nil {
			width = uint(*f.BitWidth)
		}
		return uint(*f.BitOffset), width, nil
	case f.Lsb != nil && f.Msb != nil:
		if *f.Msb < *f.Lsb {
			return 0, 0, fmt.Errorf("field %s msb %d below lsb %d", f.Name, *f.Msb, *f.Lsb)
		}
		return uint(*f.Lsb), uint(*f.Msb-*f.Lsb) + 1, nil
	case f.BitRange != "":
		var msb, lsb uint
		if _, err := fmt.Sscanf(f.BitRange, "[%d:%d]", &msb, &lsb); err != nil {
			return 0, 0, fmt.Errorf("field %s bit range %q: %w", f.Name, f.BitRange, err)
		}
		if msb < lsb {
			return 0, 0, fmt.Errorf("field %s bit range %q is reversed", f.Name, f.BitRange)
		}
		return lsb, msb - lsb + 1, nil
	}
	return 0, 0, fmt.Errorf("field %s has no bit range", f.Name)
}

type EnumeratedValuesElement struct {
	Name     string                   `xml:"name"`
	Usage    string                   `xml:"usage"`
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
	IsDefault   bool    `xml:"isDefault"`
}

// Decode reads a device description.
func Decode(r io.Reader) (*DeviceElement, error) {
	var device DeviceElement
	if err := xml.NewDecoder(r).Decode(&device); err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}
	if device.AddressableWidth == 0 {
		device.AddressableWidth = 8
	}
	if device.RegisterSize == 0 {
		device.RegisterSize = 32
	}
	if device.DefaultAccess == "" {
		device.DefaultAccess = "read-write"
	}
	return &device, nil
}

// Open decodes the device description in the named file.
func Open(fname string) (*DeviceElement, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	device, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return device, nil
}
