package utf16str

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// ByteOrder selects how UTF-16 code units are laid out in bytes.
type ByteOrder int

const (
	// BigEndian reads and writes the high byte first.
	BigEndian ByteOrder = iota

	// LittleEndian reads and writes the low byte first.
	LittleEndian

	// DetectBOM honors a leading byte order mark and strips it. Without a
	// mark the input is read as big endian (RFC 2781). Encoding writes a
	// big-endian mark.
	DetectBOM
)

const byteOrderMark = 0xFEFF

// Decode reads raw code units from UTF-16 bytes. Unlike Transcode it keeps
// unpaired surrogates as they are, so the result can be sliced at the same
// offsets another UTF-16 system would use.
func Decode(data []byte, order ByteOrder) (String, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("decode %d bytes: %w", len(data), ErrOddLength)
	}

	bo := binaryOrder(order)
	if order == DetectBOM && len(data) >= 2 {
		switch {
		case data[0] == 0xFE && data[1] == 0xFF:
			data = data[2:]
		case data[0] == 0xFF && data[1] == 0xFE:
			bo = binary.LittleEndian
			data = data[2:]
		}
	}

	out := make(String, len(data)/2)
	for i := range out {
		out[i] = bo.Uint16(data[2*i:])
	}
	return out, nil
}

// Encode writes s as UTF-16 bytes in the given order.
func Encode(s String, order ByteOrder) []byte {
	bo := binaryOrder(order)
	var out []byte
	if order == DetectBOM {
		out = make([]byte, 2, 2+2*len(s))
		bo.PutUint16(out, byteOrderMark)
	} else {
		out = make([]byte, 0, 2*len(s))
	}
	for _, u := range s {
		out = bo.AppendUint16(out, u)
	}
	return out
}

// Transcode converts UTF-16 bytes to a Go string. Unpaired surrogates become
// U+FFFD.
func Transcode(data []byte, order ByteOrder) (string, error) {
	var enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	switch order {
	case LittleEndian:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case DetectBOM:
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("transcode utf-16: %w", err)
	}
	return string(out), nil
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func binaryOrder(order ByteOrder) byteOrder {
	if order == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
