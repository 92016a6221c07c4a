package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// bech32 charset, which Aleo addresses use after the "aleo1" prefix
const addressCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// RandomAleoAddress generates a random well-formed Aleo address for tests.
func RandomAleoAddress() (string, error) {
	const bodyLength = 58

	body := make([]byte, bodyLength)
	for i := range body {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(addressCharset))))
		if err != nil {
			return "", err
		}
		body[i] = addressCharset[num.Int64()]
	}

	return "aleo1" + string(body), nil
}

// RandomMicrocredits generates a random stake amount below the given bound.
func RandomMicrocredits(maxExclusive int64) (int64, error) {
	if maxExclusive <= 0 {
		return 0, fmt.Errorf("maxExclusive must be greater than 0")
	}

	num, err := rand.Int(rand.Reader, big.NewInt(maxExclusive))
	if err != nil {
		return 0, err
	}
	return num.Int64(), nil
}
