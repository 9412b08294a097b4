package contracts

type CellSerializer interface {
	MarshalCell(cellId string, expression string) []byte
	UnmarshalCell(data []byte) (cellId string, expression string, err error)
	MarshalDims(rows int, cols int) []byte
	UnmarshalDims(data []byte) (rows int, cols int, err error)
}
