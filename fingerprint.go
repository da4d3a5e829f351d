package datum

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"math"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// DigestAlgo represents a supported fingerprint algorithm.
type DigestAlgo string

const (
	// DigestSHA256 uses SHA-256.
	DigestSHA256 DigestAlgo = "sha256"

	// DigestBLAKE2b uses BLAKE2b-256.
	DigestBLAKE2b DigestAlgo = "blake2b"
)

// Fingerprint returns a hex-encoded digest of v's content. The digest is
// computed over a canonical byte form with object keys sorted, so two values
// that compare Equal always fingerprint equally regardless of map iteration
// order. Every variant is covered, including Bytes and non-finite doubles:
// fingerprinting is content identification, not JSON emission.
func Fingerprint(v Value, algo DigestAlgo) (string, error) {
	var h hash.Hash
	switch algo {
	case DigestSHA256:
		h = sha256.New()
	case DigestBLAKE2b:
		var err error
		h, err = blake2b.New256(nil)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown digest algorithm %q", algo)
	}

	if err := writeCanonical(h, v); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Canonical form tags. Each value is one tag byte followed by a
// length-prefixed or fixed-width payload, which keeps the encoding
// prefix-free and collision-resistant across variants.
const (
	tagNull   = 'z'
	tagBool   = 'b'
	tagInt    = 'i'
	tagDouble = 'd'
	tagString = 's'
	tagBytes  = 'y'
	tagArray  = 'a'
	tagObject = 'o'
)

func writeCanonical(w io.Writer, v Value) error {
	if v == nil {
		v = Null{}
	}
	switch v := v.(type) {
	case Null:
		return writeByte(w, tagNull)
	case Bool:
		payload := byte(0)
		if v {
			payload = 1
		}
		_, err := w.Write([]byte{tagBool, payload})
		return err
	case Int:
		return writeFixed64(w, tagInt, uint64(int64(v)))
	case Double:
		f := float64(v)
		if math.IsNaN(f) {
			// Collapse NaN payloads so Equal values share a digest.
			f = math.NaN()
		}
		return writeFixed64(w, tagDouble, math.Float64bits(f))
	case String:
		return writeBlob(w, tagString, []byte(v))
	case Bytes:
		return writeBlob(w, tagBytes, v)
	case Array:
		if err := writeHeader(w, tagArray, len(v)); err != nil {
			return err
		}
		for _, elem := range v {
			if err := writeCanonical(w, elem); err != nil {
				return err
			}
		}
		return nil
	case Object:
		if err := writeHeader(w, tagObject, len(v)); err != nil {
			return err
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := writeBlob(w, tagString, []byte(key)); err != nil {
				return err
			}
			if err := writeCanonical(w, v[key]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeFixed64(w io.Writer, tag byte, bits uint64) error {
	buf := make([]byte, 9)
	buf[0] = tag
	binary.BigEndian.PutUint64(buf[1:], bits)
	_, err := w.Write(buf)
	return err
}

func writeHeader(w io.Writer, tag byte, n int) error {
	buf := binary.AppendUvarint([]byte{tag}, uint64(n))
	_, err := w.Write(buf)
	return err
}

func writeBlob(w io.Writer, tag byte, data []byte) error {
	if err := writeHeader(w, tag, len(data)); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
