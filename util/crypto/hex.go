package crypto

const hexDigits = "0123456789abcdef"

// DecodeHex decodes a hex string into bytes. Both letter cases are accepted.
// The first non-hex character is reported with its position, odd-length input is rejected.
func DecodeHex(s string) ([]byte, error) {
	var (
		nibbles = make([]byte, 0, len(s))
		pos     int
	)
	for _, ch := range s {
		v, ok := fromHexChar(ch)
		if !ok {
			return nil, newParseError("invalid character", pos)
		}
		nibbles = append(nibbles, v)
		pos++
	}
	if len(nibbles)%2 != 0 {
		return nil, newParseError("odd length", len(nibbles)-1)
	}
	res := make([]byte, len(nibbles)/2)
	for i := range res {
		res[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}
	return res, nil
}

// EncodeHex returns the lowercase hex representation of b
func EncodeHex(b []byte) string {
	res := make([]byte, len(b)*2)
	for i, v := range b {
		res[2*i] = hexDigits[v>>4]
		res[2*i+1] = hexDigits[v&0x0f]
	}
	return string(res)
}

func fromHexChar(ch rune) (byte, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return byte(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return byte(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return byte(ch-'A') + 10, true
	}
	return 0, false
}
