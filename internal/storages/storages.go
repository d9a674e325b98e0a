package storages

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/7phs/simplevector/internal/config"
	"github.com/7phs/simplevector/vector"
	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	trimRatio = 2
)

var (
	_ Storages = (*InMemStorages)(nil)
)

type Stats struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

type Storages interface {
	ID() string
	Push(body []byte) (int, error)
	Insert(pos int, body []byte) (int, error)
	Get(index int) ([]byte, error)
	Erase(pos int) error
	Pop()
	List() [][]byte
	Digest() uint64
	Stats() Stats
	Clean(ctx context.Context) error
}

// InMemStorages keeps records in one vector. The vector itself is not safe
// for concurrent use, every access goes through the lock.
type InMemStorages struct {
	sync.RWMutex

	logger *zap.Logger
	items  *vector.Vector[record]

	reserve   int
	maxItems  int
	maxRecord int
}

func NewInMemStorages(
	logger *zap.Logger,
	conf config.Config,
) (Storages, error) {
	items, err := vector.NewReserved(
		conf.Reserve(),
		vector.WithTraits(recordTraits(conf.MaxRecord())),
		vector.WithLogger[record](logger),
	)
	if err != nil {
		return nil, err
	}

	return &InMemStorages{
		logger:    logger,
		items:     items,
		reserve:   conf.Reserve(),
		maxItems:  conf.MaxItems(),
		maxRecord: conf.MaxRecord(),
	}, nil
}

func (o *InMemStorages) ID() string {
	return "in-memory-storages"
}

func (o *InMemStorages) Push(body []byte) (int, error) {
	if err := o.checkRecord(body); err != nil {
		return 0, err
	}

	rec := newRecord(body)

	o.Lock()
	defer o.Unlock()

	if err := o.checkItems(); err != nil {
		return 0, err
	}

	if err := o.items.PushBackMove(&rec); err != nil {
		return 0, err
	}

	return o.items.Size() - 1, nil
}

func (o *InMemStorages) Insert(pos int, body []byte) (int, error) {
	if err := o.checkRecord(body); err != nil {
		return 0, err
	}

	rec := newRecord(body)

	o.Lock()
	defer o.Unlock()

	if err := o.checkItems(); err != nil {
		return 0, err
	}

	return o.items.InsertMove(pos, &rec)
}

func (o *InMemStorages) Get(index int) ([]byte, error) {
	o.RLock()
	defer o.RUnlock()

	rec, err := o.items.At(index)
	if err != nil {
		return nil, err
	}

	return rec.value.Copy(), nil
}

func (o *InMemStorages) Erase(pos int) error {
	o.Lock()
	defer o.Unlock()

	_, err := o.items.Erase(pos)

	return err
}

func (o *InMemStorages) Pop() {
	o.Lock()
	defer o.Unlock()

	if o.items.IsEmpty() {
		return
	}

	o.items.PopBack()
	// The slot stays allocated, drop the body it still references.
	o.items.Index(o.items.Size()).reset()
}

func (o *InMemStorages) List() [][]byte {
	o.RLock()
	defer o.RUnlock()

	list := make([][]byte, 0, o.items.Size())

	o.items.Range(func(_ int, rec *record) bool {
		list = append(list, rec.value.Copy())

		return true
	})

	return list
}

// Digest fingerprints the current content: the highwayhash of the record
// digests in order.
func (o *InMemStorages) Digest() uint64 {
	hash, err := highwayhash.New64(nonce[:])
	if err != nil {
		o.logger.Error("failed to init digest",
			zap.Error(err),
		)

		return 0
	}

	var buf [8]byte

	o.RLock()
	defer o.RUnlock()

	o.items.Range(func(_ int, rec *record) bool {
		binary.LittleEndian.PutUint64(buf[:], rec.digest)
		_, _ = hash.Write(buf[:])

		return true
	})

	return hash.Sum64()
}

func (o *InMemStorages) Stats() Stats {
	o.RLock()
	defer o.RUnlock()

	return Stats{
		Size:     o.items.Size(),
		Capacity: o.items.Capacity(),
	}
}

// Clean gives back excess capacity: when the vector holds less than half of
// its storage and more than the reserve, it is rebuilt from a copy.
func (o *InMemStorages) Clean(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	o.Lock()
	defer o.Unlock()

	capacity := o.items.Capacity()
	if capacity <= o.reserve || capacity <= o.items.Size()*trimRatio {
		return nil
	}

	trimmed, err := o.items.Clone()
	if err != nil {
		return err
	}

	if err := trimmed.Reserve(o.reserve); err != nil {
		return err
	}

	o.items.MoveFrom(trimmed)

	o.logger.Info("trim",
		zap.Int("size", o.items.Size()),
		zap.Int("capacity", capacity),
		zap.Int("new_capacity", o.items.Capacity()),
	)

	return nil
}

func (o *InMemStorages) checkRecord(body []byte) error {
	if len(body) > o.maxRecord {
		return errors.Wrapf(ErrOutOfLimit, "record of %d bytes, limit %d", len(body), o.maxRecord)
	}

	return nil
}

func (o *InMemStorages) checkItems() error {
	if o.items.Size() >= o.maxItems {
		return errors.Wrapf(ErrOutOfLimit, "%d items, limit %d", o.items.Size(), o.maxItems)
	}

	return nil
}
