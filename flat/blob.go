package flat

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/npillmayer/pimrtree/geom"
)

const (
	// HeaderBytes is the size of the blob header.
	HeaderBytes = 16
	// PointBytes is the size of an encoded point.
	PointBytes = 16
	// BlobVersion is the layout version written into every header.
	BlobVersion = 1

	recordFixedBytes = 40 // tag, reserved, count, box
	childBytes       = 4
)

var blobMagic = [4]byte{'P', 'R', 'T', '1'}

const (
	tagInner byte = 0
	tagLeaf  byte = 1
)

// RecordBytes is the size of one record for a given capacity.
func RecordBytes(capacity int) int {
	return recordFixedBytes + capacity*PointBytes
}

// BlobBytes is the size of a blob holding nodes records of the given capacity.
func BlobBytes(nodes, capacity int) int {
	return HeaderBytes + nodes*RecordBytes(capacity)
}

// MarshalBinary encodes the tree into a self-contained byte blob.
func (t *Tree) MarshalBinary() ([]byte, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInvalidTree)
	}
	rsize := RecordBytes(t.capacity)
	b := make([]byte, BlobBytes(len(t.nodes), t.capacity))
	copy(b[0:4], blobMagic[:])
	b[4] = BlobVersion
	binary.BigEndian.PutUint16(b[6:8], uint16(t.capacity))
	binary.BigEndian.PutUint32(b[8:12], uint32(len(t.nodes)))
	for pos := range t.nodes {
		n := &t.nodes[pos]
		if n.Count() > t.capacity {
			return nil, fmt.Errorf("%w: record #%d holds %d entries, capacity is %d",
				ErrCapacityExceeded, pos, n.Count(), t.capacity)
		}
		r := b[HeaderBytes+pos*rsize : HeaderBytes+(pos+1)*rsize]
		if n.Leaf {
			r[0] = tagLeaf
		} else {
			r[0] = tagInner
		}
		binary.BigEndian.PutUint32(r[4:8], uint32(n.Count()))
		putFloat(r[8:], n.Box.MinX)
		putFloat(r[16:], n.Box.MinY)
		putFloat(r[24:], n.Box.MaxX)
		putFloat(r[32:], n.Box.MaxY)
		slots := r[recordFixedBytes:]
		if n.Leaf {
			for i, p := range n.Points {
				putPoint(slots[i*PointBytes:], p)
			}
		} else {
			for i, c := range n.Children {
				binary.BigEndian.PutUint32(slots[i*childBytes:], uint32(c))
			}
		}
	}
	return b, nil
}

// Decode reconstructs a tree from a blob produced by MarshalBinary. The
// result does not share memory with b and has passed Check.
func Decode(b []byte) (*Tree, error) {
	if len(b) < HeaderBytes {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a header", ErrBadBlob, len(b))
	}
	if [4]byte(b[0:4]) != blobMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadBlob, b[0:4])
	}
	if b[4] != BlobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadBlob, b[4])
	}
	capacity := int(binary.BigEndian.Uint16(b[6:8]))
	count := int(binary.BigEndian.Uint32(b[8:12]))
	if capacity == 0 || count == 0 {
		return nil, fmt.Errorf("%w: capacity %d, %d records", ErrBadBlob, capacity, count)
	}
	if len(b) != BlobBytes(count, capacity) {
		return nil, fmt.Errorf("%w: %d bytes for %d records of capacity %d",
			ErrBadBlob, len(b), count, capacity)
	}
	rsize := RecordBytes(capacity)
	t := &Tree{capacity: capacity, nodes: make([]Node, count)}
	for pos := range t.nodes {
		r := b[HeaderBytes+pos*rsize : HeaderBytes+(pos+1)*rsize]
		entries := int(binary.BigEndian.Uint32(r[4:8]))
		if entries > capacity {
			return nil, fmt.Errorf("%w: record #%d claims %d entries, capacity is %d",
				ErrBadBlob, pos, entries, capacity)
		}
		n := &t.nodes[pos]
		n.Box = geom.Box{
			MinX: getFloat(r[8:]),
			MinY: getFloat(r[16:]),
			MaxX: getFloat(r[24:]),
			MaxY: getFloat(r[32:]),
		}
		slots := r[recordFixedBytes:]
		switch r[0] {
		case tagLeaf:
			n.Leaf = true
			n.Points = make([]geom.Point, entries)
			for i := range n.Points {
				n.Points[i] = getPoint(slots[i*PointBytes:])
			}
		case tagInner:
			n.Children = make([]int, entries)
			for i := range n.Children {
				n.Children[i] = int(binary.BigEndian.Uint32(slots[i*childBytes:]))
			}
		default:
			return nil, fmt.Errorf("%w: record #%d has unknown tag %d", ErrBadBlob, pos, r[0])
		}
	}
	if err := t.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadBlob, err)
	}
	return t, nil
}

// EncodePoint encodes a query point into its 16 byte wire form.
func EncodePoint(p geom.Point) []byte {
	b := make([]byte, PointBytes)
	putPoint(b, p)
	return b
}

// DecodePoint decodes a query point from its wire form.
func DecodePoint(b []byte) (geom.Point, error) {
	if len(b) != PointBytes {
		return geom.Point{}, fmt.Errorf("%w: point needs %d bytes, got %d", ErrBadBlob, PointBytes, len(b))
	}
	return getPoint(b), nil
}

func putPoint(b []byte, p geom.Point) {
	putFloat(b[0:], p.X)
	putFloat(b[8:], p.Y)
}

func getPoint(b []byte) geom.Point {
	return geom.Point{X: getFloat(b[0:]), Y: getFloat(b[8:])}
}

func putFloat(b []byte, f float64) {
	binary.BigEndian.PutUint64(b, math.Float64bits(f))
}

func getFloat(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}
