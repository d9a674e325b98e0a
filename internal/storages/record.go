package storages

import (
	"github.com/7phs/simplevector/vector"
	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
)

var nonce [32]byte

type record struct {
	value  Buffer
	digest uint64
}

func newRecord(body []byte) record {
	return record{
		value:  newBuffer(body),
		digest: highwayhash.Sum64(body, nonce[:]),
	}
}

func (o *record) reset() {
	o.value.Reset()
	o.digest = 0
}

// recordTraits deep-copies records and moves them by handing the body over.
// A copy of a body larger than maxRecord fails with ErrOutOfLimit.
func recordTraits(maxRecord int) vector.Traits[record] {
	return &vector.FuncTraits[record]{
		CopyFn: func(dst, src *record) error {
			if src.value.Len() > maxRecord {
				return errors.Wrapf(ErrOutOfLimit, "record of %d bytes", src.value.Len())
			}

			*dst = record{
				value:  newBuffer(src.value.Bytes()),
				digest: src.digest,
			}

			return nil
		},
		MoveFn: func(dst, src *record) error {
			*dst = *src
			src.reset()

			return nil
		},
		NoThrow: true,
	}
}
