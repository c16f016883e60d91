package main

import "github.com/clarete/dangerous"

// KV is one decoded key=value pair.
type KV struct {
	Key   string
	Value string
}

// decodeKV decodes text as a comma-separated list of key=value pairs.
func decodeKV(text string) ([]KV, error) {
	in := dangerous.Text(text)
	return dangerous.ReadAllStr(in, func(r *dangerous.StringReader) ([]KV, error) {
		var pairs []KV
		for {
			pair, err := readPair(r)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
			if !r.ConsumeOpt(",") {
				break
			}
		}
		return pairs, nil
	})
}

func readPair(r *dangerous.StringReader) (KV, error) {
	return dangerous.StringReaderContext(r, dangerous.Context{Operation: "decode key=value pair"}, func(r *dangerous.StringReader) (KV, error) {
		key, err := r.TakeUntil(dangerous.TextPattern("="))
		if err != nil {
			return KV{}, err
		}
		if err := r.Consume("="); err != nil {
			return KV{}, err
		}
		value := r.TakeStrWhile(func(c rune) bool { return c != ',' })
		return KV{Key: key.Str(), Value: value.Str()}, nil
	})
}
