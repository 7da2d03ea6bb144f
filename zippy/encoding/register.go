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

// Package encoding registers the common legacy charmaps with the
// zippy dictionary-file decoder, mirroring the teacher's own
// encoding/all.go registration list.
package encoding

import (
	"github.com/nightscape/kanata/zippy"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Register populates zippy's charset registry with every charmap a
// dictionary file saved outside an UTF-8-aware editor might use.
func Register() {
	zippy.RegisterEncoding("ISO8859-1", charmap.ISO8859_1)
	zippy.RegisterEncoding("ISO8859-2", charmap.ISO8859_2)
	zippy.RegisterEncoding("ISO8859-3", charmap.ISO8859_3)
	zippy.RegisterEncoding("ISO8859-4", charmap.ISO8859_4)
	zippy.RegisterEncoding("ISO8859-5", charmap.ISO8859_5)
	zippy.RegisterEncoding("ISO8859-6", charmap.ISO8859_6)
	zippy.RegisterEncoding("ISO8859-7", charmap.ISO8859_7)
	zippy.RegisterEncoding("ISO8859-8", charmap.ISO8859_8)
	zippy.RegisterEncoding("ISO8859-13", charmap.ISO8859_13)
	zippy.RegisterEncoding("ISO8859-14", charmap.ISO8859_14)
	zippy.RegisterEncoding("ISO8859-15", charmap.ISO8859_15)
	zippy.RegisterEncoding("ISO8859-16", charmap.ISO8859_16)
	zippy.RegisterEncoding("KOI8-R", charmap.KOI8R)
	zippy.RegisterEncoding("KOI8-U", charmap.KOI8U)

	zippy.RegisterEncoding("EUC-JP", japanese.EUCJP)
	zippy.RegisterEncoding("Shift_JIS", japanese.ShiftJIS)
	zippy.RegisterEncoding("ISO2022JP", japanese.ISO2022JP)

	zippy.RegisterEncoding("EUC-KR", korean.EUCKR)

	zippy.RegisterEncoding("GB18030", simplifiedchinese.GB18030)
	zippy.RegisterEncoding("GB2312", simplifiedchinese.HZGB2312)
	zippy.RegisterEncoding("GBK", simplifiedchinese.GBK)

	zippy.RegisterEncoding("Big5", traditionalchinese.Big5)
}
