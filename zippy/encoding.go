// Copyright 2026 The Kanata Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zippy

import (
	"bytes"
	"io"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var (
	encodingLock sync.Mutex
	encodings    = map[string]encoding.Encoding{}
)

// RegisterEncoding makes a named charset available to DecodeDictionary.
// Dictionary files are UTF-8 by contract, but a host may need to load
// one saved by an editor in a legacy codepage; RegisterEncoding lets
// the zippy/encoding subpackage populate a lookup table the same way
// the core package's terminal-charset registry once did.
func RegisterEncoding(name string, enc encoding.Encoding) {
	encodingLock.Lock()
	defer encodingLock.Unlock()
	encodings[name] = enc
}

// GetEncoding looks up a previously registered charset by name.
func GetEncoding(name string) (encoding.Encoding, bool) {
	encodingLock.Lock()
	defer encodingLock.Unlock()
	enc, ok := encodings[name]
	return enc, ok
}

func init() {
	RegisterEncoding("UTF-8", unicode.UTF8)
	RegisterEncoding("UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
	RegisterEncoding("UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
}

// DecodeDictionary transcodes raw dictionary-file bytes to a UTF-8
// string using the named charset, defaulting to UTF-8 passthrough when
// charset is empty.
func DecodeDictionary(charset string, raw []byte) (string, error) {
	if charset == "" {
		return string(raw), nil
	}
	enc, ok := GetEncoding(charset)
	if !ok {
		return string(raw), nil
	}
	r := enc.NewDecoder().Reader(bytes.NewReader(raw))
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
