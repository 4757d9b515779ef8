package ed25519

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// RFC 8032 §7.1 TEST 1 and TEST 2 vectors.
func TestRFC8032Vectors(t *testing.T) {
	cases := []struct {
		seed, pub, msg, sig string
	}{
		{
			seed: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
			pub:  "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
			msg:  "",
			sig:  "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		},
		{
			seed: "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
			pub:  "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
			msg:  "72",
			sig:  "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
		},
	}

	for i, c := range cases {
		priv, err := NewKeyFromSeed(mustHex(c.seed))
		if err != nil {
			t.Fatalf("case %d: NewKeyFromSeed: %v", i, err)
		}
		if !bytes.Equal(priv.Public(), mustHex(c.pub)) {
			t.Fatalf("case %d: public key = %x, want %x", i, priv.Public(), mustHex(c.pub))
		}

		msg := mustHex(c.msg)
		sig, err := Sign(priv, msg)
		if err != nil {
			t.Fatalf("case %d: Sign: %v", i, err)
		}
		if !bytes.Equal(sig, mustHex(c.sig)) {
			t.Fatalf("case %d: sig = %x, want %x", i, sig, mustHex(c.sig))
		}
		if !Verify(priv.Public(), msg, sig) {
			t.Fatalf("case %d: Verify rejected a valid signature", i)
		}
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv, _ := NewKeyFromSeed(mustHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))
	msg := []byte("attack at dawn")
	sig, _ := Sign(priv, msg)
	sig[0] ^= 1
	if Verify(priv.Public(), msg, sig) {
		t.Fatal("Verify accepted a tampered signature")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	priv, _ := NewKeyFromSeed(mustHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))
	sig, _ := Sign(priv, []byte("attack at dawn"))
	if Verify(priv.Public(), []byte("retreat at dawn"), sig) {
		t.Fatal("Verify accepted a signature over the wrong message")
	}
}

func TestVerifyRejectsBadLengths(t *testing.T) {
	priv, _ := NewKeyFromSeed(mustHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))
	sig, _ := Sign(priv, []byte("m"))
	if Verify(priv.Public()[:31], []byte("m"), sig) {
		t.Fatal("Verify accepted a short public key")
	}
	if Verify(priv.Public(), []byte("m"), sig[:63]) {
		t.Fatal("Verify accepted a short signature")
	}
}

func TestVerifyErrWrapsSentinel(t *testing.T) {
	priv, _ := NewKeyFromSeed(mustHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))
	sig, _ := Sign(priv, []byte("m"))
	sig[0] ^= 1
	if err := VerifyErr(priv.Public(), []byte("m"), sig); err == nil {
		t.Fatal("expected VerifyErr to report an error")
	}
}
