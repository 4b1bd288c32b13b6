// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package artifact

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/chatalogue/core"
)

var vectorSer = ord.NewSliceSer[float32](raw.Float32)

// centroidSer is a hand-written MUS serializer for core.Centroid.
// Timestamps are stored as Unix microseconds.
type centroidSer struct{}

// CentroidMUS serializes centroids in MUS format.
var CentroidMUS = centroidSer{}

func (centroidSer) Marshal(c core.Centroid, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(c.Id), bs)
	n += ord.String.Marshal(c.Model, bs[n:])
	n += ord.String.Marshal(c.Label, bs[n:])
	n += vectorSer.Marshal(c.Vector, bs[n:])
	n += varint.Int.Marshal(c.Examples, bs[n:])
	n += raw.Int64.Marshal(c.InsertedAt.UnixMicro(), bs[n:])
	n += raw.Int64.Marshal(c.UpdatedAt.UnixMicro(), bs[n:])
	return
}

func (centroidSer) Unmarshal(bs []byte) (c core.Centroid, n int, err error) {
	id, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	c.Id = core.ID(id)

	var n1 int
	c.Model, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Vector, n1, err = vectorSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Examples, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	var micros int64
	micros, n1, err = raw.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.InsertedAt = time.UnixMicro(micros).UTC()

	micros, n1, err = raw.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.UpdatedAt = time.UnixMicro(micros).UTC()
	return
}

func (centroidSer) Size(c core.Centroid) (size int) {
	size = varint.Uint64.Size(uint64(c.Id))
	size += ord.String.Size(c.Model)
	size += ord.String.Size(c.Label)
	size += vectorSer.Size(c.Vector)
	size += varint.Int.Size(c.Examples)
	size += raw.Int64.Size(c.InsertedAt.UnixMicro())
	size += raw.Int64.Size(c.UpdatedAt.UnixMicro())
	return
}

func (s centroidSer) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

// MarshalCentroid serializes a Centroid to bytes.
func MarshalCentroid(c *core.Centroid) []byte {
	buf := make([]byte, CentroidMUS.Size(*c))
	CentroidMUS.Marshal(*c, buf)
	return buf
}

// UnmarshalCentroid deserializes a Centroid from bytes.
func UnmarshalCentroid(data []byte) (*core.Centroid, error) {
	c, _, err := CentroidMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	return core.ID(id), err
}
