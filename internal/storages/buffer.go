package storages

// Buffer owns a private copy of a record body.
type Buffer struct {
	buf []byte
}

func newBuffer(data []byte) Buffer {
	buf := make([]byte, len(data))
	copy(buf, data)

	return Buffer{
		buf: buf,
	}
}

func (o *Buffer) Bytes() []byte {
	return o.buf
}

func (o *Buffer) Len() int {
	return len(o.buf)
}

// Copy returns a copy of the body that does not share memory with o.
func (o *Buffer) Copy() []byte {
	if o.buf == nil {
		return nil
	}

	data := make([]byte, len(o.buf))
	copy(data, o.buf)

	return data
}

func (o *Buffer) Reset() {
	o.buf = nil
}
