// Package wire frames cached slab payloads with the insertion timestamp the
// read-side TTL check consumes.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

const (
	version  byte = 1
	kindSlab byte = 1
)

var (
	ErrCorrupt = errors.New("slabcache: corrupt entry")
	magic4     = [...]byte{'S', 'L', 'A', 'B'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=slab) | cachedAt(i64 be, unix nanos) | vlen(u32 be) | payload(vlen)
func Encode(cachedAt time.Time, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 8 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSlab)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], uint64(cachedAt.UnixNano()))
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode rejects short, misframed and trailing-junk entries: the declared
// payload length must account for every remaining byte.
func Decode(b []byte) (cachedAt time.Time, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 8 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSlab {
		return time.Time{}, nil, ErrCorrupt
	}

	off := 6

	nanos := int64(binary.BigEndian.Uint64(b[off : off+8]))
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen != len(b)-off {
		return time.Time{}, nil, ErrCorrupt
	}

	return time.Unix(0, nanos), b[off : off+vlen], nil
}
