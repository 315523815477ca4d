/*
 * Copyright (c) 2025 NALEnc Project
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package keygen produces 512-byte NALEnc keys from system entropy,
// from a 32-byte seed, or from a passphrase.
package keygen

import (
	"crypto/rand"
	"crypto/sha1"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/salsa20"

	"github.com/nalenc-project/nalenc/nal"
)

// SALT is mixed into passphrase-derived keys so that the same
// passphrase used with another tool yields unrelated key material.
const SALT = "nalenc-key"

const pbkdf2Iterations = 4096

// New samples a fresh random key from the system entropy source.
func New() ([]byte, error) {
	key := make([]byte, nal.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "error while sampling key bytes")
	}
	return key, nil
}

// NewDeterministic expands a 32-byte seed into a key by reading the
// salsa20 keystream under a zero nonce. The same seed always yields
// the same key.
func NewDeterministic(seed *[32]byte) []byte {
	in := make([]byte, nal.KeySize)
	out := make([]byte, nal.KeySize)
	nonce := make([]byte, 8) // nonce is initialized to zeros

	salsa20.XORKeyStream(out, in, nonce, seed)
	return out
}

// FromPassphrase derives a key from a passphrase with PBKDF2.
func FromPassphrase(passphrase string) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(SALT), pbkdf2Iterations, nal.KeySize, sha1.New)
}
