package cw721

import (
	"errors"
	"strings"

	"github.com/ipfs/go-cid"

	"xdao.co/nftwire/cidutil"
)

// Token metadata lives off-ledger; the contract stores only an ipfs://
// content identifier in token_uri. Fetching is out of scope here — callers
// bring the bytes, this package verifies them against the URI.

const tokenURIScheme = "ipfs://"

var (
	ErrBadTokenURI      = errors.New("cw721: token_uri is not an ipfs content identifier")
	ErrMetadataMismatch = errors.New("cw721: metadata bytes do not match token_uri")
)

// ParseTokenURI extracts the content identifier from an ipfs:// token URI.
func ParseTokenURI(uri string) (cid.Cid, error) {
	rest, ok := strings.CutPrefix(uri, tokenURIScheme)
	if !ok || rest == "" {
		return cid.Undef, ErrBadTokenURI
	}
	id, err := cid.Decode(rest)
	if err != nil || !id.Defined() {
		return cid.Undef, ErrBadTokenURI
	}
	return id, nil
}

// TokenURIFor returns the canonical ipfs:// URI for a metadata document
// (CIDv1 raw + sha2-256 over the exact bytes).
func TokenURIFor(metadata []byte) string {
	return tokenURIScheme + cidutil.CIDv1RawSHA256(metadata)
}

// VerifyMetadata checks fetched metadata bytes against a token_uri.
// Where the bytes came from does not matter; identity does.
func VerifyMetadata(uri string, metadata []byte) error {
	id, err := ParseTokenURI(uri)
	if err != nil {
		return err
	}
	if err := cidutil.Verify(metadata, id); err != nil {
		if errors.Is(err, cidutil.ErrMismatch) {
			return ErrMetadataMismatch
		}
		return err
	}
	return nil
}
