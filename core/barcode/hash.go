package barcode

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Hash returns the lookup hash of a payload: the MD5 hex digest of its text form,
// trimmed and stripped of non-printable characters. Scanners sometimes inject
// control characters, so they never take part in the hash.
func Hash(p Payload) string {
	data := strings.TrimSpace(p.String())
	data = strings.Map(func(r rune) rune {
		if isPrintable(r) {
			return r
		}
		return -1
	}, data)

	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// isPrintable matches printable ASCII plus whitespace.
func isPrintable(r rune) bool {
	if r >= 0x20 && r <= 0x7e {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
