package omap

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotMagic tags a snapshot stream and its format version.
const snapshotMagic = "omap/1"

var (
	_ msgpack.CustomEncoder = Key{}
	_ msgpack.CustomDecoder = (*Key)(nil)
)

// EncodeMsgpack writes k as a two-element array [kind, payload].
func (k Key) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(k.kind)); err != nil {
		return err
	}
	switch k.kind {
	case KindString:
		return enc.EncodeString(k.s)
	case KindInt:
		return enc.EncodeInt(int64(k.i))
	case KindFloat:
		return enc.EncodeFloat64(k.f)
	}
	return fmt.Errorf("%w: cannot encode key without kind", ErrInvalidKey)
}

// DecodeMsgpack reads a key written by EncodeMsgpack.
func (k *Key) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: key array of length %d", ErrSnapshot, n)
	}
	kind, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	switch Kind(kind) {
	case KindString:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*k = StringKey(s)
	case KindInt:
		i, err := dec.DecodeInt()
		if err != nil {
			return err
		}
		*k = IntKey(i)
	case KindFloat:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		*k = FloatKey(f)
	default:
		return fmt.Errorf("%w: unknown key kind %d", ErrSnapshot, kind)
	}
	return nil
}

// EncodeSnapshot writes all entries of m to w in ascending key order, using
// MessagePack. Values are encoded with msgpack's reflection based encoder.
func EncodeSnapshot[V any](w io.Writer, m *Map[V]) error {
	if m == nil || m.destroyed {
		return ErrDestroyed
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeString(snapshotMagic); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(m.kind)); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(m.Len())); err != nil {
		return err
	}
	var err error
	m.Walk(func(k Key, v V) bool {
		if err = k.EncodeMsgpack(enc); err != nil {
			return false
		}
		err = enc.Encode(v)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("omap: encoding snapshot: %w", err)
	}
	tracer().Debugf("omap: wrote snapshot of %d %s entries", m.Len(), m.kind)
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot and rebuilds the
// map by insertion.
func DecodeSnapshot[V any](r io.Reader) (*Map[V], error) {
	dec := msgpack.NewDecoder(r)
	magic, err := dec.DecodeString()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrSnapshot, magic)
	}
	kind, err := dec.DecodeUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	count, err := dec.DecodeInt()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative entry count %d", ErrSnapshot, count)
	}
	m := New[V]()
	for i := range count {
		var k Key
		if err := k.DecodeMsgpack(dec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrSnapshot, i, err)
		}
		if k.kind != Kind(kind) {
			return nil, fmt.Errorf("%w: entry %d has kind %s, header says %s", ErrSnapshot, i, k.kind, Kind(kind))
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrSnapshot, i, err)
		}
		if err := m.Put(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}
