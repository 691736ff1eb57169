package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"m6502/assembler"
)

// writeSegments encodes CodeSegments to the CLI's raw-binary file format:
// per segment, a 2-byte little-endian origin, a 2-byte little-endian
// payload length, then the payload itself. This lives at the CLI boundary
// only; the core assembler/cpu contracts never see it.
func writeSegments(w io.Writer, segments []assembler.CodeSegment) error {
	for _, seg := range segments {
		var header [4]byte
		binary.LittleEndian.PutUint16(header[0:2], seg.Origin)
		binary.LittleEndian.PutUint16(header[2:4], uint16(len(seg.Bytes)))
		if _, err := w.Write(header[:]); err != nil {
			return err
		}
		if _, err := w.Write(seg.Bytes); err != nil {
			return err
		}
	}
	return nil
}

// readSegments decodes the format writeSegments produces.
func readSegments(data []byte) ([]assembler.CodeSegment, error) {
	var segments []assembler.CodeSegment
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, fmt.Errorf("truncated segment header")
		}
		origin := binary.LittleEndian.Uint16(data[0:2])
		length := binary.LittleEndian.Uint16(data[2:4])
		data = data[4:]
		if int(length) > len(data) {
			return nil, fmt.Errorf("truncated segment payload")
		}
		segments = append(segments, assembler.CodeSegment{Origin: origin, Bytes: data[:length]})
		data = data[length:]
	}
	return segments, nil
}
