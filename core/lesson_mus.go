package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Serializers for the binary lesson format stored in the catalog.
// Field order is part of the on-disk format; append new fields at the end.
var (
	IDMUS       = idMUS{}
	TagSetMUS   = tagSetMUS{}
	IntRangeMUS = optionalRangeMUS{}
	LessonMUS   = lessonMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

type tagSetMUS struct{}

func (tagSetMUS) Marshal(v TagSet, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, id := range v {
		n += varint.Uint64.Marshal(uint64(id), bs[n:])
	}
	return n
}

func (tagSetMUS) Unmarshal(bs []byte) (v TagSet, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrMalformedRecord
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make(TagSet, length)
	for i := range v {
		u, m, err := varint.Uint64.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
		v[i] = TagID(u)
	}
	return v, n, nil
}

func (tagSetMUS) Size(v TagSet) (size int) {
	size = varint.Int.Size(len(v))
	for _, id := range v {
		size += varint.Uint64.Size(uint64(id))
	}
	return size
}

// optionalRangeMUS encodes a *IntRange as a presence flag followed by the bounds.
type optionalRangeMUS struct{}

func (optionalRangeMUS) Marshal(v *IntRange, bs []byte) (n int) {
	n = ord.Bool.Marshal(v != nil, bs)
	if v == nil {
		return n
	}
	n += varint.Int.Marshal(v.Min, bs[n:])
	n += varint.Int.Marshal(v.Max, bs[n:])
	return n
}

func (optionalRangeMUS) Unmarshal(bs []byte) (v *IntRange, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return nil, n, err
	}
	var r IntRange
	var m int
	r.Min, m, err = varint.Int.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return nil, n, err
	}
	r.Max, m, err = varint.Int.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return nil, n, err
	}
	return &r, n, nil
}

func (optionalRangeMUS) Size(v *IntRange) (size int) {
	size = ord.Bool.Size(v != nil)
	if v == nil {
		return size
	}
	return size + varint.Int.Size(v.Min) + varint.Int.Size(v.Max)
}

type lessonMUS struct{}

func (lessonMUS) Marshal(v Lesson, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Key, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Uint64.Marshal(uint64(v.Domain), bs[n:])
	n += ord.String.Marshal(v.Discipline, bs[n:])
	n += TagSetMUS.Marshal(v.Axes, bs[n:])
	n += TagSetMUS.Marshal(v.Tools, bs[n:])
	n += TagSetMUS.Marshal(v.Virtues, bs[n:])
	n += TagSetMUS.Marshal(v.Strategies, bs[n:])
	n += IntRangeMUS.Marshal(v.Age, bs[n:])
	n += raw.Float64.Marshal(v.Duration, bs[n:])
	n += IntRangeMUS.Marshal(v.GroupSize, bs[n:])
	n += varint.Int64.Marshal(timeToMicro(v.InsertedAt), bs[n:])
	n += varint.Int64.Marshal(timeToMicro(v.UpdatedAt), bs[n:])
	return n
}

func (lessonMUS) Unmarshal(bs []byte) (v Lesson, n int, err error) {
	var m int
	step := func(k int, e error) bool {
		n += k
		err = e
		return err == nil
	}

	v.Id, m, err = IDMUS.Unmarshal(bs)
	if !step(m, err) {
		return
	}
	v.Key, m, err = ord.String.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.Title, m, err = ord.String.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.Description, m, err = ord.String.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	var domain uint64
	domain, m, err = varint.Uint64.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.Domain = TagID(domain)
	v.Discipline, m, err = ord.String.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	for _, set := range []*TagSet{&v.Axes, &v.Tools, &v.Virtues, &v.Strategies} {
		*set, m, err = TagSetMUS.Unmarshal(bs[n:])
		if !step(m, err) {
			return
		}
	}
	v.Age, m, err = IntRangeMUS.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.Duration, m, err = raw.Float64.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.GroupSize, m, err = IntRangeMUS.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	var micros int64
	micros, m, err = varint.Int64.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.InsertedAt = microToTime(micros)
	micros, m, err = varint.Int64.Unmarshal(bs[n:])
	if !step(m, err) {
		return
	}
	v.UpdatedAt = microToTime(micros)
	return v, n, nil
}

func (lessonMUS) Size(v Lesson) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Key)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += varint.Uint64.Size(uint64(v.Domain))
	size += ord.String.Size(v.Discipline)
	size += TagSetMUS.Size(v.Axes)
	size += TagSetMUS.Size(v.Tools)
	size += TagSetMUS.Size(v.Virtues)
	size += TagSetMUS.Size(v.Strategies)
	size += IntRangeMUS.Size(v.Age)
	size += raw.Float64.Size(v.Duration)
	size += IntRangeMUS.Size(v.GroupSize)
	size += varint.Int64.Size(timeToMicro(v.InsertedAt))
	size += varint.Int64.Size(timeToMicro(v.UpdatedAt))
	return size
}

// Timestamps are stored in Unix microseconds; 0 encodes the zero time.
func timeToMicro(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func microToTime(micros int64) time.Time {
	if micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros).UTC()
}
