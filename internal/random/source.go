package random

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// rnd is seeded from crypto/rand once per binary, so every test run gets new values
var rnd = mathrand.New(mathrand.NewSource(cryptoSeed()))

func cryptoSeed() int64 {
	var seed int64
	if err := binary.Read(rand.Reader, binary.LittleEndian, &seed); err != nil {
		panic("random: cannot read seed: " + err.Error())
	}
	return seed
}
