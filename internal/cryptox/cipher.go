package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// Cipher encrypts and decrypts vault-item passwords with AES-256-CBC under
// a key derived once from the configured master passphrase. The derived key
// is read-only after construction and safe for unsynchronized concurrent use.
type Cipher struct {
	key []byte
}

// NewCipher derives the 256-bit key as SHA-256(passphrase). The derivation
// is deterministic so the same configured passphrase yields the same key
// across restarts.
func NewCipher(passphrase string) *Cipher {
	key := sha256.Sum256([]byte(passphrase))
	return &Cipher{key: key[:]}
}

// Encrypt encrypts plaintext under a fresh random 16-byte IV and encodes
// the result as hex(iv) + ":" + hex(ciphertext). Encrypting the same
// plaintext twice yields different payloads.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := common.GenerateRandByteArray(aes.BlockSize)
	padded := padPKCS7([]byte(plaintext), aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Malformed payloads (missing separator, invalid
// hex, wrong-size IV, ciphertext not a multiple of the block size, bad
// padding after decryption) are reported as common.ErrorDecryption; no
// payload can make Decrypt panic.
func (c *Cipher) Decrypt(payload string) (string, error) {
	ivHex, ctHex, ok := strings.Cut(payload, ":")
	if !ok {
		return "", fmt.Errorf("%w: missing separator", common.ErrorDecryption)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: invalid iv encoding", common.ErrorDecryption)
	}
	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", fmt.Errorf("%w: invalid ciphertext encoding", common.ErrorDecryption)
	}

	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", common.ErrorDecryption, aes.BlockSize)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length is not a multiple of the block size", common.ErrorDecryption)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := unpadPKCS7(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length", common.ErrorDecryption)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", common.ErrorDecryption)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", common.ErrorDecryption)
		}
	}
	return data[:len(data)-n], nil
}
