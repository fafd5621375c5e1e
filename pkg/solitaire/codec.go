package solitaire

import (
	"strings"
)

const alphabet = 26

// Encrypt enciphers the letters of plaintext with keys drawn from ks.
// Anything that is not an ASCII letter is dropped and consumes no key.
func Encrypt(plaintext string, ks KeyStream) (string, error) {
	return transform(plaintext, ks, func(v, k int) int {
		return (v+k-1)%alphabet + 1
	})
}

// Decrypt reverses Encrypt when ks starts from the same deck state
func Decrypt(ciphertext string, ks KeyStream) (string, error) {
	return transform(ciphertext, ks, func(v, k int) int {
		return ((v-k-1)%alphabet+alphabet)%alphabet + 1
	})
}

func transform(text string, ks KeyStream, combine func(v, k int) int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); i++ {
		v, ok := letterValue(text[i])
		if !ok {
			continue
		}
		k, err := ks.NextKeyValue()
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('A' + combine(v, k) - 1))
	}

	return sb.String(), nil
}

// letterValue maps A..Z (either case) to 1..26
func letterValue(b byte) (int, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 1, true
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, true
	}
	return 0, false
}

// LetterCount returns how many keys a message will consume
func LetterCount(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if _, ok := letterValue(text[i]); ok {
			n++
		}
	}
	return n
}
