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

// frame wraps msg into a buffer whose length is the smallest positive
// multiple of BlockSize holding msg plus a 2-byte header. The header is
// the big-endian count of tail bytes appended after the message; when
// the message already fills the frame exactly the header is zero and no
// tail is appended.
//
// Tail bytes are synthesized one at a time from two taps into the bytes
// already present, with the tap positions chosen by cycling through the
// key. A tap may land on a tail byte produced by an earlier iteration.
// The tail is a keyed filler with no cryptographic purpose; it exists so
// that the ciphertext layout stays compatible across implementations.
func (e *NALEnc) frame(msg []byte) []byte {
	framed := (len(msg) + 2 + BlockSize - 1) / BlockSize * BlockSize
	pad := framed - len(msg) - 2

	buf := make([]byte, framed)
	buf[0] = byte(pad >> 8)
	buf[1] = byte(pad)
	copy(buf[2:], msg)

	key := e.sched.key()
	current := len(msg)
	for t := 0; t < pad; t++ {
		k := int(key[t%KeySize])
		if current == 0 {
			// No message bytes to tap yet: the very first tail byte of
			// an empty message taps the key instead.
			buf[2] = key[k%KeySize] ^ key[(k+1)%KeySize]
		} else {
			buf[len(msg)+2+t] = buf[k%current+2] ^ buf[(k+1)%current+2]
		}
		current++
	}

	return buf
}

// unframe strips the 2-byte header and the declared number of tail
// bytes. The tail content is discarded without validation, so corrupted
// input decodes to arbitrary bytes rather than an error.
func unframe(buf []byte) ([]byte, error) {
	if len(buf) < 2 {
		return nil, internal.MalformedCiphertext
	}
	pad := int(buf[0])<<8 | int(buf[1])
	if len(buf) < pad+2 {
		return nil, internal.MalformedCiphertext
	}
	return buf[2 : len(buf)-pad], nil
}
