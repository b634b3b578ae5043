// Package tx wraps a single execute envelope with a signature over its
// canonical bytes, so the receiving side can attribute it to an account.
//
// One envelope per transaction; batching is out of scope for this client.
package tx

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/nftwire/keys"
	"xdao.co/nftwire/wasm"
)

// Signed is a signed transaction carrying one envelope.
//
// SignerKey uses the keys package encoding ("ed25519:<base64>" or
// "dilithium3:<base64>"); the signature covers the digest of the
// envelope's canonical bytes under HashAlg.
type Signed struct {
	Body      wasm.CosmosMsg `json:"body"`
	SignerKey string         `json:"signer_key"`
	SigAlg    string         `json:"sig_alg"`
	HashAlg   string         `json:"hash_alg"`
	Signature string         `json:"signature"`
}

// SignEd25519 signs env with priv over sha256 of its canonical bytes.
func SignEd25519(env wasm.CosmosMsg, priv ed25519.PrivateKey) (*Signed, error) {
	const op = "tx.SignEd25519"
	body, err := wasm.MarshalCanonical(env)
	if err != nil {
		return nil, err
	}
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, wasm.NewError(wasm.KindCrypto, op, "invalid ed25519 private key")
	}
	signer, err := keys.AccountKeyFromPublicKey(pub)
	if err != nil {
		return nil, wasm.WrapError(wasm.KindCrypto, op, "cannot encode signer key", err)
	}
	return &Signed{
		Body:      env,
		SignerKey: signer,
		SigAlg:    "ed25519",
		HashAlg:   "sha256",
		Signature: keys.SignEd25519SHA256(body, priv),
	}, nil
}

// SignDilithium3 signs env with priv over hashAlg of its canonical bytes.
// hashAlg must be one of: sha256, sha512, sha3-256.
func SignDilithium3(env wasm.CosmosMsg, hashAlg string, pub *mode3.PublicKey, priv *mode3.PrivateKey) (*Signed, error) {
	const op = "tx.SignDilithium3"
	body, err := wasm.MarshalCanonical(env)
	if err != nil {
		return nil, err
	}
	if pub == nil || priv == nil {
		return nil, wasm.NewError(wasm.KindCrypto, op, "missing keypair")
	}
	sig, err := keys.SignDilithium3(body, hashAlg, priv)
	if err != nil {
		return nil, wasm.WrapError(wasm.KindCrypto, op, "signing failed", err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, wasm.WrapError(wasm.KindCrypto, op, "cannot encode public key", err)
	}
	return &Signed{
		Body:      env,
		SignerKey: "dilithium3:" + base64.StdEncoding.EncodeToString(pubBytes),
		SigAlg:    "dilithium3",
		HashAlg:   hashAlg,
		Signature: sig,
	}, nil
}

// Verify checks the signature against the envelope's canonical bytes.
func (s *Signed) Verify() error {
	const op = "tx.Verify"
	if s == nil {
		return wasm.NewError(wasm.KindCrypto, op, "nil transaction")
	}
	if s.SigAlg == "" {
		return wasm.NewError(wasm.KindCrypto, op, "missing sig_alg")
	}
	if s.HashAlg == "" {
		return wasm.NewError(wasm.KindCrypto, op, "missing hash_alg")
	}

	signerAlg, enc, ok := strings.Cut(s.SignerKey, ":")
	if !ok {
		return wasm.NewError(wasm.KindCrypto, op, "invalid signer_key encoding")
	}
	if signerAlg != s.SigAlg {
		return wasm.NewError(wasm.KindCrypto, op, "signer_key alg does not match sig_alg")
	}
	pub, err := decodeBase64(enc)
	if err != nil {
		return wasm.WrapError(wasm.KindCrypto, op, "invalid signer key base64", err)
	}
	sig, err := decodeBase64(s.Signature)
	if err != nil {
		return wasm.WrapError(wasm.KindCrypto, op, "invalid signature base64", err)
	}

	body, err := wasm.MarshalCanonical(s.Body)
	if err != nil {
		return err
	}
	digest, err := keys.DigestFor(s.HashAlg, body)
	if err != nil {
		return wasm.WrapError(wasm.KindCrypto, op, "unsupported hash_alg", err)
	}

	switch s.SigAlg {
	case "ed25519":
		if len(pub) != ed25519.PublicKeySize {
			return wasm.NewError(wasm.KindCrypto, op, "invalid ed25519 public key length")
		}
		if len(sig) != ed25519.SignatureSize {
			return wasm.NewError(wasm.KindCrypto, op, "invalid ed25519 signature length")
		}
		if !ed25519.Verify(ed25519.PublicKey(pub), digest, sig) {
			return wasm.NewError(wasm.KindCrypto, op, "signature invalid")
		}
		return nil
	case "dilithium3":
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return wasm.WrapError(wasm.KindCrypto, op, "invalid dilithium3 public key", err)
		}
		if len(sig) != mode3.SignatureSize {
			return wasm.NewError(wasm.KindCrypto, op, "invalid dilithium3 signature length")
		}
		if !mode3.Verify(&pk, digest, sig) {
			return wasm.NewError(wasm.KindCrypto, op, "signature invalid")
		}
		return nil
	default:
		return wasm.NewError(wasm.KindCrypto, op, "unsupported sig_alg")
	}
}

func decodeBase64(s string) ([]byte, error) {
	// Prefer standard padded encoding, but accept raw encoding too.
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
