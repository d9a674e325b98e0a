package vector

const (
	ErrIndexOutOfRange    Error = "index_out_of_range"
	ErrPositionOutOfRange Error = "position_out_of_range"
	ErrAllocation         Error = "allocation_failed"
	ErrNotCopyable        Error = "not_copyable"
)

type Error string

func (o Error) Error() string {
	return string(o)
}
