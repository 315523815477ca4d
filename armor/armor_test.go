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

package armor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalenc-project/nalenc/armor"
	"github.com/nalenc-project/nalenc/internal"
	"github.com/nalenc-project/nalenc/nal"
)

func sampleKey() []byte {
	key := make([]byte, nal.KeySize)
	for i := range key {
		key[i] = byte(i*7 + 1)
	}
	return key
}

func TestEncodeShape(t *testing.T) {
	text := string(armor.Encode(sampleKey(), armor.Key))

	require.True(t, strings.HasSuffix(text, "\n"))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	assert.Equal(t, "----BEGIN NAL KEY----", lines[0])
	assert.Equal(t, "----END NAL KEY----", lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		if len(line) > 64 {
			t.Fatalf("payload line exceeds 64 columns: %d", len(line))
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, kind := range []armor.Kind{armor.Key, armor.Message} {
		data := sampleKey()
		decoded, err := armor.Decode(armor.Encode(data, kind), kind)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestDecodeRejectsWrongBanners(t *testing.T) {
	encoded := armor.Encode(sampleKey(), armor.Key)

	_, err := armor.Decode(encoded, armor.Message)
	assert.Error(t, err)

	_, err = armor.Decode([]byte("no banners here"), armor.Key)
	assert.Error(t, err)

	_, err = armor.Decode(nil, armor.Key)
	assert.Error(t, err)
}

func TestDecodeRejectsBadPayload(t *testing.T) {
	text := "----BEGIN NAL KEY----\nnot*base64*at*all\n----END NAL KEY----\n"
	_, err := armor.Decode([]byte(text), armor.Key)
	assert.Error(t, err)
}

func TestReadKey(t *testing.T) {
	key := sampleKey()

	got, err := armor.ReadKey(key)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	got, err = armor.ReadKey(armor.Encode(key, armor.Key))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = armor.ReadKey(key[:100])
	assert.Equal(t, internal.InvalidKeyLength, err)

	// armored but with a short payload
	_, err = armor.ReadKey(armor.Encode(key[:100], armor.Key))
	assert.Equal(t, internal.InvalidKeyLength, err)
}

func TestReadMessage(t *testing.T) {
	payload := []byte("raw payload bytes")

	assert.Equal(t, payload, armor.ReadMessage(payload))
	assert.Equal(t, payload, armor.ReadMessage(armor.Encode(payload, armor.Message)))
}
