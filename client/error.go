package client

const (
	ErrNotFound         Error = "not_found"
	ErrOutOfRange       Error = "out_of_range"
	ErrOutOfLimit       Error = "out_of_limit"
	ErrUnexpectedStatus Error = "unexpected_status"
)

type Error string

func (o Error) Error() string {
	return string(o)
}
