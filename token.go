package dangerous

import "unicode/utf8"

// ByteLen is implemented by anything a reader can treat as a countable
// span of input bytes: a single byte, a rune, a literal, or a prefix
// already matched by a [Pattern]. It is the uniform "how many input
// bytes does this occupy" function every split and every length error
// is built on top of.
type ByteLen interface {
	ByteLen() int
}

// byteToken is the token type yielded by a BytesInput: a single byte,
// always one byte long.
type byteToken byte

func (byteToken) ByteLen() int { return 1 }

// runeToken is the token type yielded by a StringInput: a single
// Unicode code point, 1-4 bytes long.
type runeToken rune

func (t runeToken) ByteLen() int { return utf8.RuneLen(rune(t)) }
