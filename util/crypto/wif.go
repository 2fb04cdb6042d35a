package crypto

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/mr-tron/base58"
)

const (
	wifVersionLen  = 1
	wifChecksumLen = 4
)

// DecodeWIF decodes a Wallet-Import-Format string into raw private key bytes.
// The layout is [version:1][scalar][checksum:4]: the version byte and the checksum
// are stripped by position and the checksum is not verified.
func DecodeWIF(s string) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return nil, &ParseError{Reason: "Base58 decoding failed", Position: -1, Err: err}
	}
	if len(decoded) < wifVersionLen+wifChecksumLen {
		return nil, newParseError("invalid WIF length", -1)
	}
	res := make([]byte, len(decoded)-wifVersionLen-wifChecksumLen)
	copy(res, decoded[wifVersionLen:len(decoded)-wifChecksumLen])
	return res, nil
}

// DecodeWIFStrict decodes a WIF string verifying its checksum. The optional compressed-key
// flag byte is accepted and dropped. When net is not nil the version byte must belong to it.
func DecodeWIFStrict(s string, net *chaincfg.Params) ([]byte, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, &ParseError{Reason: "WIF decoding failed", Position: -1, Err: err}
	}
	if net != nil && !wif.IsForNet(net) {
		return nil, newParseError("WIF is not for network "+net.Name, -1)
	}
	return wif.PrivKey.Serialize(), nil
}
