package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

// Record tags keep cell and dimension records distinguishable on disk, so
// decoding one through the other's reader fails instead of producing
// garbage.
const (
	cellRecordTag = 0x01
	dimsRecordTag = 0x02
)

// CellBinarySerializer owns the bbolt record formats: a tagged cell record
// carrying the canonical cell id and its stored expression, and a tagged
// dimensions record for a sheet's grid size. Lengths and counts are
// uvarint-encoded.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) MarshalCell(cellId string, expression string) []byte {
	record := make([]byte, 1, 1+binary.MaxVarintLen16+len(cellId)+len(expression))
	record[0] = cellRecordTag
	record = binary.AppendUvarint(record, uint64(len(cellId)))
	record = append(record, cellId...)
	record = append(record, expression...)
	return record
}

func (s *CellBinarySerializer) UnmarshalCell(data []byte) (cellId string, expression string, err error) {
	if len(data) == 0 || data[0] != cellRecordTag {
		return "", "", fmt.Errorf("%w: not a cell record", SerializerError)
	}

	idLength, read := binary.Uvarint(data[1:])
	if read <= 0 {
		return "", "", fmt.Errorf("%w: unreadable cell id length", SerializerError)
	}

	rest := data[1+read:]
	if uint64(len(rest)) < idLength {
		return "", "", fmt.Errorf("%w: cell id length %d exceeds record size %d", SerializerError, idLength, len(rest))
	}

	return string(rest[:idLength]), string(rest[idLength:]), nil
}

func (s *CellBinarySerializer) MarshalDims(rows int, cols int) []byte {
	record := make([]byte, 1, 1+2*binary.MaxVarintLen16)
	record[0] = dimsRecordTag
	record = binary.AppendUvarint(record, uint64(rows))
	record = binary.AppendUvarint(record, uint64(cols))
	return record
}

func (s *CellBinarySerializer) UnmarshalDims(data []byte) (rows int, cols int, err error) {
	if len(data) == 0 || data[0] != dimsRecordTag {
		return 0, 0, fmt.Errorf("%w: not a dimensions record", SerializerError)
	}

	rowCount, read := binary.Uvarint(data[1:])
	if read <= 0 {
		return 0, 0, fmt.Errorf("%w: unreadable row count", SerializerError)
	}
	colCount, read := binary.Uvarint(data[1+read:])
	if read <= 0 {
		return 0, 0, fmt.Errorf("%w: unreadable column count", SerializerError)
	}

	return int(rowCount), int(colCount), nil
}
