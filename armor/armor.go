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

// Package armor converts keys and ciphertexts between raw bytes and
// the banner-delimited base64 text form.
package armor

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"github.com/nalenc-project/nalenc/internal"
	"github.com/nalenc-project/nalenc/nal"
)

// Kind selects the banner pair wrapped around the payload.
type Kind int

const (
	// Key armors 512-byte key material.
	Key Kind = iota
	// Message armors ciphertexts and other message payloads.
	Message
)

const (
	keyHeader = "----BEGIN NAL KEY----"
	keyFooter = "----END NAL KEY----"
	msgHeader = "----BEGIN NAL MESSAGE----"
	msgFooter = "----END NAL MESSAGE----"

	// wrapWidth is the column at which the base64 payload is broken
	// into lines.
	wrapWidth = 64
)

func (k Kind) banners() (string, string) {
	if k == Key {
		return keyHeader, keyFooter
	}
	return msgHeader, msgFooter
}

// Encode renders data as a banner line, the base64 payload wrapped at
// 64 columns, a footer line and a trailing newline.
func Encode(data []byte, kind Kind) []byte {
	header, footer := kind.banners()
	payload := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for len(payload) > wrapWidth {
		b.WriteString(payload[:wrapWidth])
		b.WriteByte('\n')
		payload = payload[wrapWidth:]
	}
	if len(payload) > 0 {
		b.WriteString(payload)
		b.WriteByte('\n')
	}
	b.WriteString(footer)
	b.WriteByte('\n')

	return []byte(b.String())
}

// Decode parses the armored text form. The first line must be the
// header banner for kind and the last line the footer; everything in
// between is joined and base64-decoded.
func Decode(text []byte, kind Kind) ([]byte, error) {
	header, footer := kind.banners()

	lines := strings.Split(strings.TrimSpace(string(text)), "\n")
	if len(lines) < 2 || lines[0] != header || lines[len(lines)-1] != footer {
		return nil, errors.New("armor banners not found")
	}

	payload := strings.Join(lines[1:len(lines)-1], "")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(err, "error while decoding armored payload")
	}
	return decoded, nil
}

// ReadKey extracts key bytes from either form: an armored key whose
// decoded payload must be exactly 512 bytes, or raw content of exactly
// 512 bytes. Anything else is internal.InvalidKeyLength.
func ReadKey(content []byte) ([]byte, error) {
	if decoded, err := Decode(content, Key); err == nil {
		if len(decoded) != nal.KeySize {
			return nil, internal.InvalidKeyLength
		}
		return decoded, nil
	}
	if len(content) == nal.KeySize {
		return content, nil
	}
	return nil, internal.InvalidKeyLength
}

// ReadMessage returns the armored payload when content parses as an
// armored message, and content unchanged otherwise.
func ReadMessage(content []byte) []byte {
	if decoded, err := Decode(content, Message); err == nil {
		return decoded
	}
	return content
}
