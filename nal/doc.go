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

// Package nal implements the NALEnc symmetric block scrambler.
//
// A NALEnc instance is built from a 512-byte key and transforms
// arbitrary-length messages into ciphertexts whose length is a
// multiple of 2048 bytes. The same instance recovers the exact
// message bytes from its own ciphertexts.
//
// NALEnc is a reversible scrambler, not an authenticated encryption
// scheme: it provides no integrity protection, no nonces and no
// cryptographic security claim. Treat it as an obfuscation codec
// with a large keyed state.
package nal
