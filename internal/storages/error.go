package storages

const (
	ErrOutOfLimit Error = "out_of_the_limit"
)

type Error string

func (o Error) Error() string {
	return string(o)
}
