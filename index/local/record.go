package local

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/silvanic/handbook/index"
)

// Key prefix for vector records.
const vectorRecordPrefix = "vecrec"

// makeVectorKey generates the key for a stored vector by record ID.
func makeVectorKey(id string) []byte {
	return []byte(vectorRecordPrefix + ":" + id)
}

// marshalRecord serializes a record value as little-endian binary:
// uint32 tag length, tag bytes, uint32 dimension, dimension float32s.
func marshalRecord(record index.Record) []byte {
	tag := []byte(record.SourceTag)
	buf := make([]byte, 4+len(tag)+4+len(record.Vector)*4)

	binary.LittleEndian.PutUint32(buf, uint32(len(tag)))
	off := 4
	off += copy(buf[off:], tag)
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(record.Vector)))
	off += 4
	for _, v := range record.Vector {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return buf
}

// unmarshalRecord deserializes a record value. The record ID is carried in
// the key, not the value.
func unmarshalRecord(data []byte) (index.Record, error) {
	if len(data) < 4 {
		return index.Record{}, fmt.Errorf("%w: missing tag length", index.ErrTruncatedRecord)
	}
	tagLen := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	if len(data) < tagLen+4 {
		return index.Record{}, fmt.Errorf("%w: missing tag", index.ErrTruncatedRecord)
	}
	tag := string(data[:tagLen])
	data = data[tagLen:]

	dim := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	if len(data) != dim*4 {
		return index.Record{}, fmt.Errorf("%w: vector length mismatch", index.ErrTruncatedRecord)
	}

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4 : (i+1)*4]))
	}
	return index.Record{SourceTag: tag, Vector: vector}, nil
}
