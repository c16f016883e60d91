package main

import "github.com/clarete/dangerous"

// Record is one decoded TLV entry: a one-byte tag, a big-endian
// 16-bit length, and that many bytes of value.
type Record struct {
	Tag   byte
	Value []byte
}

// decodeTLV decodes data as a sequence of back-to-back TLV records,
// requiring every byte to be consumed.
func decodeTLV(data []byte) ([]Record, error) {
	in := dangerous.Bytes(data)
	return dangerous.ReadAll(in, func(r *dangerous.BytesReader) ([]Record, error) {
		var records []Record
		for !r.AtEnd() {
			rec, err := readRecord(r)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	})
}

func readRecord(r *dangerous.BytesReader) (Record, error) {
	return dangerous.BytesReaderContext(r, dangerous.Context{Operation: "decode TLV record"}, func(r *dangerous.BytesReader) (Record, error) {
		tag, err := r.ReadU8()
		if err != nil {
			return Record{}, err
		}
		length, err := r.ReadU16BE()
		if err != nil {
			return Record{}, err
		}
		value, err := r.Take(int(length))
		if err != nil {
			return Record{}, err
		}
		return Record{Tag: tag, Value: value.Bytes()}, nil
	})
}
