package svd

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Integer is a scaledNonNegativeInteger. Values may be decimal, hex with a
// 0x prefix or binary with a # prefix. Binary values may contain x for
// don't-care bits, which decode as zero.
type Integer uint64

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	return i.parse(v)
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) error {
	return i.parse(attr.Value)
}

func (i *Integer) parse(v string) (err error) {
	v = strings.TrimSpace(v)
	var value uint64
	switch {
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		value, err = strconv.ParseUint(v[2:], 16, 64)
	case strings.HasPrefix(v, "#"):
		value, err = strconv.ParseUint(strings.NewReplacer("x", "0", "X", "0").Replace(v[1:]), 2, 64)
	case strings.HasPrefix(v, "0b"):
		value, err = strconv.ParseUint(v[2:], 2, 64)
	default:
		value, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return err
	}
	*i = Integer(value)
	return nil
}
