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

package nal

import (
	"github.com/nalenc-project/nalenc/internal"
)

// NALEnc scrambles and unscrambles byte messages under a fixed
// 512-byte key. The round-key table is derived once at construction
// and never written again, so a single instance may serve concurrent
// Encrypt and Decrypt calls.
type NALEnc struct {
	sched *schedule
}

// NewNALEnc builds an instance from a 512-byte key. It returns
// internal.InvalidKeyLength for any other key length.
func NewNALEnc(key []byte) (*NALEnc, error) {
	if len(key) != KeySize {
		return nil, internal.InvalidKeyLength
	}
	return &NALEnc{sched: newSchedule(key)}, nil
}

// Encrypt frames msg and runs the 256 scrambling rounds. The returned
// ciphertext length is a positive multiple of 2048 and at least
// len(msg)+2. Messages of any length, including empty, are accepted.
func (e *NALEnc) Encrypt(msg []byte) ([]byte, error) {
	buf := e.frame(msg)
	if err := e.sched.run(buf, false); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decrypt reverses Encrypt. It returns internal.MalformedCiphertext
// when ct is empty, not a multiple of 2048, or declares a pad count
// that does not fit the buffer. A ciphertext of valid shape always
// decodes to some byte string: there is no integrity check.
func (e *NALEnc) Decrypt(ct []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%BlockSize != 0 {
		return nil, internal.MalformedCiphertext
	}

	buf := make([]byte, len(ct))
	copy(buf, ct)

	if err := e.sched.run(buf, true); err != nil {
		return nil, err
	}
	return unframe(buf)
}
