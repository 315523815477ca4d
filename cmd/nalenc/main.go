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

package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/nalenc-project/nalenc/armor"
	"github.com/nalenc-project/nalenc/keygen"
	"github.com/nalenc-project/nalenc/nal"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	log.SetFlags(0)
	log.SetPrefix("nalenc: ")

	myApp := cli.NewApp()
	myApp.Name = "nalenc"
	myApp.Usage = "encrypt and decrypt data with 512-byte NAL keys"
	myApp.Version = VERSION

	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Usage: "path to the encryption key file (raw or ASCII form)",
	}
	outputFlag := cli.StringFlag{
		Name:  "output, o",
		Usage: "output file, \"-\" or empty for stdout",
	}
	asciiFlag := cli.BoolFlag{
		Name:  "ascii, a",
		Usage: "write output in ASCII form (base64 with banners)",
	}
	compressFlag := cli.BoolFlag{
		Name:  "compress, z",
		Usage: "snappy-compress the plaintext before encryption (and decompress after decryption)",
	}

	myApp.Commands = []cli.Command{
		{
			Name:      "generate-key",
			Usage:     "generate a new 512-byte encryption key",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				outputFlag,
				asciiFlag,
				cli.StringFlag{
					Name:  "passphrase",
					Usage: "derive the key from a passphrase instead of random bytes",
				},
			},
			Action: generateKey,
		},
		{
			Name:      "encrypt",
			Usage:     "encrypt a file or stdin",
			ArgsUsage: "[input file]",
			Flags:     []cli.Flag{keyFlag, outputFlag, asciiFlag, compressFlag},
			Action:    encrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a file or stdin (raw or ASCII form)",
			ArgsUsage: "[input file]",
			Flags:     []cli.Flag{keyFlag, outputFlag, asciiFlag, compressFlag},
			Action:    decrypt,
		},
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func generateKey(c *cli.Context) error {
	var key []byte
	if passphrase := c.String("passphrase"); passphrase != "" {
		key = keygen.FromPassphrase(passphrase)
	} else {
		var err error
		if key, err = keygen.New(); err != nil {
			return err
		}
	}
	return writeOutput(key, c.String("output"), c.Bool("ascii"), armor.Key)
}

func encrypt(c *cli.Context) error {
	enc, err := loadCipher(c)
	if err != nil {
		return err
	}
	msg, err := readInput(c.Args().First())
	if err != nil {
		return err
	}
	if c.Bool("compress") {
		msg = compress(msg)
	}
	ct, err := enc.Encrypt(msg)
	if err != nil {
		return err
	}
	return writeOutput(ct, c.String("output"), c.Bool("ascii"), armor.Message)
}

func decrypt(c *cli.Context) error {
	enc, err := loadCipher(c)
	if err != nil {
		return err
	}
	input, err := readInput(c.Args().First())
	if err != nil {
		return err
	}
	msg, err := enc.Decrypt(armor.ReadMessage(input))
	if err != nil {
		return err
	}
	if c.Bool("compress") {
		if msg, err = decompress(msg); err != nil {
			return err
		}
	}
	return writeOutput(msg, c.String("output"), c.Bool("ascii"), armor.Message)
}

func loadCipher(c *cli.Context) (*nal.NALEnc, error) {
	keyPath := c.String("key")
	if keyPath == "" {
		return nil, errors.New("an encryption key file is required (-k)")
	}
	content, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, errors.Wrap(err, "error while reading key file")
	}
	key, err := armor.ReadKey(content)
	if err != nil {
		return nil, err
	}
	return nal.NewNALEnc(key)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "error while reading stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrap(err, "error while reading input file")
}

func writeOutput(data []byte, path string, ascii bool, kind armor.Kind) error {
	if ascii {
		data = armor.Encode(data, kind)
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "error while writing stdout")
	}
	mode := os.FileMode(0644)
	if kind == armor.Key {
		mode = 0600
	}
	return errors.Wrap(os.WriteFile(path, data, mode), "error while writing output file")
}
