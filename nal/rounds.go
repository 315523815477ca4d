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
	"sync"

	"github.com/nalenc-project/nalenc/internal"
)

// parallelThreshold is the quarter size at or above which the four per-quarter
// round-key applications run on their own goroutines. Below it the
// fan-out overhead dominates the XOR work.
const parallelThreshold = 1 << 16

// splitQuarters views a framed buffer as four equal contiguous
// quarters. No bytes are copied.
func splitQuarters(buf []byte) [4][]byte {
	q := len(buf) / 4
	return [4][]byte{buf[:q], buf[q : 2*q], buf[2*q : 3*q], buf[3*q:]}
}

// applyRoundKey XORs each 512-byte sub-block of part against the round
// row rotated right by (sub-block index + quarter index) positions. The
// rotation is an index expression, not a copy. The transform is its own
// inverse for a fixed row and quarter index.
func (s *schedule) applyRoundKey(part []byte, round, quarter int, decrypt bool) error {
	if len(part) == 0 || len(part)%KeySize != 0 {
		return internal.InvalidQuarterLength
	}

	row := s.row(round, decrypt)
	for b := 0; b < len(part)/KeySize; b++ {
		shift := (b + quarter) % KeySize
		base := b * KeySize
		for j := 0; j < KeySize; j++ {
			part[base+j] ^= row[(j-shift+KeySize)%KeySize]
		}
	}
	return nil
}

// cryptQuarters runs the keyed XOR of one round on all four quarters.
// The quarters are disjoint and the schedule row is read-only, so large
// quarters are processed concurrently and joined before returning.
func (s *schedule) cryptQuarters(parts *[4][]byte, round int, decrypt bool) error {
	if len(parts[0]) < parallelThreshold {
		for c := range parts {
			if err := s.applyRoundKey(parts[c], round, c, decrypt); err != nil {
				return err
			}
		}
		return nil
	}

	var wg sync.WaitGroup
	var errs [4]error
	wg.Add(4)
	for c := range parts {
		go func(c int) {
			defer wg.Done()
			errs[c] = s.applyRoundKey(parts[c], round, c, decrypt)
		}(c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// xorInto XORs src into dst elementwise. Both slices have equal length.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// run executes all 256 rounds over buf in place.
//
// An encryption round folds each quarter into its left neighbor, XORs
// every quarter with the round key, then rotates the quarter tuple right
// by one. A decryption round undoes the same three steps in reverse
// order, walking the schedule backwards via the row reflection inside
// applyRoundKey. Tuple rotation swaps slice headers only; after 256
// single-step rotations every quarter is back in its home slot, so buf
// already holds the quarters in tuple order when the loop ends.
func (s *schedule) run(buf []byte, decrypt bool) error {
	parts := splitQuarters(buf)

	for i := 0; i < rounds; i++ {
		if decrypt {
			parts[0], parts[1], parts[2], parts[3] = parts[1], parts[2], parts[3], parts[0]
			if err := s.cryptQuarters(&parts, i, true); err != nil {
				return err
			}
			for k := 0; k < 3; k++ {
				xorInto(parts[2-k], parts[3-k])
			}
		} else {
			for k := 0; k < 3; k++ {
				xorInto(parts[k], parts[k+1])
			}
			if err := s.cryptQuarters(&parts, i, false); err != nil {
				return err
			}
			parts[0], parts[1], parts[2], parts[3] = parts[3], parts[0], parts[1], parts[2]
		}
	}

	return nil
}
