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

package kanata

import "strings"

// KeyCode is an opaque identifier of a physical key. Values match the
// Linux evdev KEY_* numbering so that a platform adapter backed by
// evdev/uinput can use a KeyCode directly as a wire code; adapters for
// other platforms are expected to translate at their boundary.
type KeyCode uint16

// A subset of evdev key codes sufficient to express the Latin alphabet,
// digits, the punctuation zippychord cares about, and the modifiers the
// engine must track.
const (
	KeyEsc       KeyCode = 1
	Key1         KeyCode = 2
	Key2         KeyCode = 3
	Key3         KeyCode = 4
	Key4         KeyCode = 5
	Key5         KeyCode = 6
	Key6         KeyCode = 7
	Key7         KeyCode = 8
	Key8         KeyCode = 9
	Key9         KeyCode = 10
	Key0         KeyCode = 11
	KeyMinus     KeyCode = 12
	KeyEqual     KeyCode = 13
	KeyBackspace KeyCode = 14
	KeyTab       KeyCode = 15
	KeyQ         KeyCode = 16
	KeyW         KeyCode = 17
	KeyE         KeyCode = 18
	KeyR         KeyCode = 19
	KeyT         KeyCode = 20
	KeyY         KeyCode = 21
	KeyU         KeyCode = 22
	KeyI         KeyCode = 23
	KeyO         KeyCode = 24
	KeyP         KeyCode = 25
	KeyLeftBrace  KeyCode = 26
	KeyRightBrace KeyCode = 27
	KeyEnter      KeyCode = 28
	KeyLeftCtrl   KeyCode = 29
	KeyA          KeyCode = 30
	KeyS          KeyCode = 31
	KeyD          KeyCode = 32
	KeyF          KeyCode = 33
	KeyG          KeyCode = 34
	KeyH          KeyCode = 35
	KeyJ          KeyCode = 36
	KeyK          KeyCode = 37
	KeyL          KeyCode = 38
	KeySemicolon  KeyCode = 39
	KeyApostrophe KeyCode = 40
	KeyGrave      KeyCode = 41
	KeyLeftShift  KeyCode = 42
	KeyBackslash  KeyCode = 43
	KeyZ          KeyCode = 44
	KeyX          KeyCode = 45
	KeyC          KeyCode = 46
	KeyV          KeyCode = 47
	KeyB          KeyCode = 48
	KeyN          KeyCode = 49
	KeyM          KeyCode = 50
	KeyComma      KeyCode = 51
	KeyDot        KeyCode = 52
	KeySlash      KeyCode = 53
	KeyRightShift KeyCode = 54
	KeyLeftAlt    KeyCode = 56
	KeySpace      KeyCode = 57
	KeyCapsLock   KeyCode = 58
	KeyRightCtrl  KeyCode = 97
	KeyRightAlt   KeyCode = 100
)

// keyNames is the default, case-insensitive key-name -> KeyCode table
// used by the zippychord dictionary loader and config parser when a
// name isn't found in a user-supplied char_to_output mapping.
var keyNames = map[string]KeyCode{
	"esc": KeyEsc, "1": Key1, "2": Key2, "3": Key3, "4": Key4, "5": Key5,
	"6": Key6, "7": Key7, "8": Key8, "9": Key9, "0": Key0,
	"minus": KeyMinus, "equal": KeyEqual, "bspc": KeyBackspace, "bs": KeyBackspace,
	"tab": KeyTab,
	"q": KeyQ, "w": KeyW, "e": KeyE, "r": KeyR, "t": KeyT, "y": KeyY, "u": KeyU,
	"i": KeyI, "o": KeyO, "p": KeyP,
	"lbrc": KeyLeftBrace, "rbrc": KeyRightBrace,
	"ret": KeyEnter, "enter": KeyEnter, "rtn": KeyEnter,
	"lctl": KeyLeftCtrl,
	"a": KeyA, "s": KeyS, "d": KeyD, "f": KeyF, "g": KeyG, "h": KeyH, "j": KeyJ,
	"k": KeyK, "l": KeyL,
	"scln": KeySemicolon, ";": KeySemicolon,
	"apos": KeyApostrophe, "'": KeyApostrophe,
	"grv": KeyGrave, "`": KeyGrave,
	"lsft": KeyLeftShift,
	"bksl": KeyBackslash, "\\": KeyBackslash,
	"z": KeyZ, "x": KeyX, "c": KeyC, "v": KeyV, "b": KeyB, "n": KeyN, "m": KeyM,
	"comm": KeyComma, ",": KeyComma,
	"dot": KeyDot, ".": KeyDot,
	"slsh": KeySlash, "/": KeySlash,
	"rsft": KeyRightShift,
	"lalt": KeyLeftAlt,
	"spc":  KeySpace, " ": KeySpace,
	"caps": KeyCapsLock,
	"rctl": KeyRightCtrl,
	"ralt": KeyRightAlt, "algr": KeyRightAlt,
}

// keyNameFromCode is the inverse of keyNames, used for diagnostics; it
// picks one canonical spelling per code.
var keyNameFromCode = map[KeyCode]string{}

func init() {
	canonical := map[KeyCode]string{
		KeyEsc: "esc", Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
		Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
		KeyMinus: "minus", KeyEqual: "equal", KeyBackspace: "bspc", KeyTab: "tab",
		KeyQ: "q", KeyW: "w", KeyE: "e", KeyR: "r", KeyT: "t", KeyY: "y", KeyU: "u",
		KeyI: "i", KeyO: "o", KeyP: "p",
		KeyLeftBrace: "lbrc", KeyRightBrace: "rbrc", KeyEnter: "ret", KeyLeftCtrl: "lctl",
		KeyA: "a", KeyS: "s", KeyD: "d", KeyF: "f", KeyG: "g", KeyH: "h", KeyJ: "j",
		KeyK: "k", KeyL: "l",
		KeySemicolon: "scln", KeyApostrophe: "apos", KeyGrave: "grv", KeyLeftShift: "lsft",
		KeyBackslash: "bksl",
		KeyZ: "z", KeyX: "x", KeyC: "c", KeyV: "v", KeyB: "b", KeyN: "n", KeyM: "m",
		KeyComma: "comm", KeyDot: "dot", KeySlash: "slsh", KeyRightShift: "rsft",
		KeyLeftAlt: "lalt", KeySpace: "spc", KeyCapsLock: "caps",
		KeyRightCtrl: "rctl", KeyRightAlt: "ralt",
	}
	for k, v := range canonical {
		keyNameFromCode[k] = v
	}
}

// KeyCodeByName translates a key name, as it would appear in a config
// file (case-insensitive), to a KeyCode. Letters, digits, space and
// the punctuation characters listed in keyNames also resolve by their
// single-character form (e.g. "." -> KeyDot, " " -> KeySpace); other
// characters such as "-" or "[" do not.
func KeyCodeByName(name string) (KeyCode, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// String renders the canonical config-file spelling of k, or a numeric
// fallback for codes outside the known table.
func (k KeyCode) String() string {
	if name, ok := keyNameFromCode[k]; ok {
		return name
	}
	return "KeyCode(" + itoa(uint16(k)) + ")"
}

func itoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
