package proofs

import "crypto/rand"

func readRandom(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
