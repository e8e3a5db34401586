// Package keycode defines the USB HID Usage Page 0x07 key code enumeration
// and the boot-protocol keyboard report it is assembled into.
//
// Names follow keyberon's own identifiers (see SPEC_FULL.md §5) so the
// table reads as a wire-level port rather than a reinterpretation.
package keycode

// KeyCode is a single USB HID Usage Page 0x07 code, plus the reserved
// media/consumer tail (0xE8-0xFB) some boards repurpose for extra input.
// The numeric value is part of the wire contract.
type KeyCode uint8

const (
	No              KeyCode = 0x00
	ErrorRollOver   KeyCode = 0x01
	PostFail        KeyCode = 0x02
	ErrorUndefined  KeyCode = 0x03
	A               KeyCode = 0x04
	B               KeyCode = 0x05
	C               KeyCode = 0x06
	D               KeyCode = 0x07
	E               KeyCode = 0x08
	F               KeyCode = 0x09
	G               KeyCode = 0x0A
	H               KeyCode = 0x0B
	I               KeyCode = 0x0C
	J               KeyCode = 0x0D
	K               KeyCode = 0x0E
	L               KeyCode = 0x0F
	M               KeyCode = 0x10
	N               KeyCode = 0x11
	O               KeyCode = 0x12
	P               KeyCode = 0x13
	Q               KeyCode = 0x14
	R               KeyCode = 0x15
	S               KeyCode = 0x16
	T               KeyCode = 0x17
	U               KeyCode = 0x18
	V               KeyCode = 0x19
	W               KeyCode = 0x1A
	X               KeyCode = 0x1B
	Y               KeyCode = 0x1C
	Z               KeyCode = 0x1D
	Kb1             KeyCode = 0x1E // `1` and `!`
	Kb2             KeyCode = 0x1F // `2` and `@`
	Kb3             KeyCode = 0x20 // `3` and `#`
	Kb4             KeyCode = 0x21 // `4` and `$`
	Kb5             KeyCode = 0x22 // `5` and `%`
	Kb6             KeyCode = 0x23 // `6` and `^`
	Kb7             KeyCode = 0x24 // `7` and `&`
	Kb8             KeyCode = 0x25 // `8` and `*`
	Kb9             KeyCode = 0x26 // `9` and `(`
	Kb0             KeyCode = 0x27 // `0` and `)`
	Enter           KeyCode = 0x28
	Escape          KeyCode = 0x29
	BSpace          KeyCode = 0x2A
	Tab             KeyCode = 0x2B
	Space           KeyCode = 0x2C
	Minus           KeyCode = 0x2D // `-` and `_`
	Equal           KeyCode = 0x2E // `=` and `+`
	LBracket        KeyCode = 0x2F // `[` and `{`
	RBracket        KeyCode = 0x30 // `]` and `}`
	Bslash          KeyCode = 0x31 // `\` and `|`
	NonUsHash       KeyCode = 0x32 // near Enter on some ISO boards
	SColon          KeyCode = 0x33 // `;` and `:`
	Quote           KeyCode = 0x34 // `'` and `"`
	Grave           KeyCode = 0x35 // `` ` `` and `~`
	Comma           KeyCode = 0x36 // `,` and `<`
	Dot             KeyCode = 0x37 // `.` and `>`
	Slash           KeyCode = 0x38 // `/` and `?`
	CapsLock        KeyCode = 0x39
	F1              KeyCode = 0x3A
	F2              KeyCode = 0x3B
	F3              KeyCode = 0x3C
	F4              KeyCode = 0x3D
	F5              KeyCode = 0x3E
	F6              KeyCode = 0x3F
	F7              KeyCode = 0x40
	F8              KeyCode = 0x41
	F9              KeyCode = 0x42
	F10             KeyCode = 0x43
	F11             KeyCode = 0x44
	F12             KeyCode = 0x45
	PScreen         KeyCode = 0x46
	ScrollLock      KeyCode = 0x47
	Pause           KeyCode = 0x48
	Insert          KeyCode = 0x49
	Home            KeyCode = 0x4A
	PgUp            KeyCode = 0x4B
	Delete          KeyCode = 0x4C
	End             KeyCode = 0x4D
	PgDown          KeyCode = 0x4E
	Right           KeyCode = 0x4F
	Left            KeyCode = 0x50
	Down            KeyCode = 0x51
	Up              KeyCode = 0x52
	NumLock         KeyCode = 0x53
	KpSlash         KeyCode = 0x54
	KpAsterisk      KeyCode = 0x55
	KpMinus         KeyCode = 0x56
	KpPlus          KeyCode = 0x57
	KpEnter         KeyCode = 0x58
	Kp1             KeyCode = 0x59
	Kp2             KeyCode = 0x5A
	Kp3             KeyCode = 0x5B
	Kp4             KeyCode = 0x5C
	Kp5             KeyCode = 0x5D
	Kp6             KeyCode = 0x5E
	Kp7             KeyCode = 0x5F
	Kp8             KeyCode = 0x60
	Kp9             KeyCode = 0x61
	Kp0             KeyCode = 0x62
	KpDot           KeyCode = 0x63
	NonUsBslash     KeyCode = 0x64
	Application     KeyCode = 0x65
	Power           KeyCode = 0x66
	KpEqual         KeyCode = 0x67
	F13             KeyCode = 0x68
	F14             KeyCode = 0x69
	F15             KeyCode = 0x6A
	F16             KeyCode = 0x6B
	F17             KeyCode = 0x6C
	F18             KeyCode = 0x6D
	F19             KeyCode = 0x6E
	F20             KeyCode = 0x6F
	F21             KeyCode = 0x70
	F22             KeyCode = 0x71
	F23             KeyCode = 0x72
	F24             KeyCode = 0x73
	Execute         KeyCode = 0x74
	Help            KeyCode = 0x75
	Menu            KeyCode = 0x76
	Select          KeyCode = 0x77
	Stop            KeyCode = 0x78
	Again           KeyCode = 0x79
	Undo            KeyCode = 0x7A
	Cut             KeyCode = 0x7B
	Copy            KeyCode = 0x7C
	Paste           KeyCode = 0x7D
	Find            KeyCode = 0x7E
	Mute            KeyCode = 0x7F
	VolUp           KeyCode = 0x80
	VolDown         KeyCode = 0x81
	LockingCapsLock KeyCode = 0x82 // deprecated
	LockingNumLock  KeyCode = 0x83 // deprecated
	LockingScrLock  KeyCode = 0x84 // deprecated
	KpComma         KeyCode = 0x85
	KpEqualSign     KeyCode = 0x86
	Intl1           KeyCode = 0x87
	Intl2           KeyCode = 0x88
	Intl3           KeyCode = 0x89
	Intl4           KeyCode = 0x8A
	Intl5           KeyCode = 0x8B
	Intl6           KeyCode = 0x8C
	Intl7           KeyCode = 0x8D
	Intl8           KeyCode = 0x8E
	Intl9           KeyCode = 0x8F
	Lang1           KeyCode = 0x90
	Lang2           KeyCode = 0x91
	Lang3           KeyCode = 0x92
	Lang4           KeyCode = 0x93
	Lang5           KeyCode = 0x94
	Lang6           KeyCode = 0x95
	Lang7           KeyCode = 0x96
	Lang8           KeyCode = 0x97
	Lang9           KeyCode = 0x98
	AltErase        KeyCode = 0x99
	SysReq          KeyCode = 0x9A
	Cancel          KeyCode = 0x9B
	Clear           KeyCode = 0x9C
	Prior           KeyCode = 0x9D
	Return          KeyCode = 0x9E
	Separator       KeyCode = 0x9F
	Out             KeyCode = 0xA0
	Oper            KeyCode = 0xA1
	ClearAgain      KeyCode = 0xA2
	CrSel           KeyCode = 0xA3
	ExSel           KeyCode = 0xA4

	// Modifiers. A code is a modifier iff its value lies in [LCtrl, RGui].
	LCtrl  KeyCode = 0xE0
	LShift KeyCode = 0xE1
	LAlt   KeyCode = 0xE2
	LGui   KeyCode = 0xE3
	RCtrl  KeyCode = 0xE4
	RShift KeyCode = 0xE5
	RAlt   KeyCode = 0xE6
	RGui   KeyCode = 0xE7

	// Reserved consumer/media tail (0xE8-0xFB). Not wired to any Report
	// slot by this repo (spec.md's Non-goals exclude consumer reports);
	// kept as named constants so a board can reference them symbolically
	// in an Action without resorting to a magic byte.
	MediaPlayPause    KeyCode = 0xE8
	MediaStopCD       KeyCode = 0xE9
	MediaPreviousSong KeyCode = 0xEA
	MediaNextSong     KeyCode = 0xEB
	MediaEjectCD      KeyCode = 0xEC
	MediaVolUp        KeyCode = 0xED
	MediaVolDown      KeyCode = 0xEE
	MediaMute         KeyCode = 0xEF
	MediaWWW          KeyCode = 0xF0
	MediaBack         KeyCode = 0xF1
	MediaForward      KeyCode = 0xF2
	MediaStop         KeyCode = 0xF3
	MediaFind         KeyCode = 0xF4
	MediaScrollUp     KeyCode = 0xF5
	MediaScrollDown   KeyCode = 0xF6
	MediaEdit         KeyCode = 0xF7
	MediaSleep        KeyCode = 0xF8
	MediaCoffee       KeyCode = 0xF9
	MediaRefresh      KeyCode = 0xFA
	MediaCalc         KeyCode = 0xFB
)

// CapsLockBit is the output-report LED bitfield position the host writes
// to turn on Caps Lock, per spec.md §6 ("bit 1 (value 0x02) is CapsLock").
const CapsLockBit = 0x02

// IsModifier reports whether k is one of the eight HID modifier codes.
func IsModifier(k KeyCode) bool {
	return k >= LCtrl && k <= RGui
}

// AsModifierBit returns the single bit k contributes to the report's
// modifier byte, or 0 if k is not a modifier.
func AsModifierBit(k KeyCode) uint8 {
	if !IsModifier(k) {
		return 0
	}
	return 1 << uint8(k-LCtrl)
}

// String returns a stable display label for k, for on-screen/OLED use
// only — it is never wire-visible.
func (k KeyCode) String() string {
	if s, ok := displayLabel[k]; ok {
		return s
	}
	return "?"
}

var displayLabel = map[KeyCode]string{
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H",
	I: "I", J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P",
	Q: "Q", R: "R", S: "S", T: "T", U: "U", V: "V", W: "W", X: "X",
	Y: "Y", Z: "Z",
	Kb1: "1", Kb2: "2", Kb3: "3", Kb4: "4", Kb5: "5",
	Kb6: "6", Kb7: "7", Kb8: "8", Kb9: "9", Kb0: "0",
	Enter: "↵", Escape: "␛", BSpace: "⌫", Tab: "⇾", Space: "␠",
	Minus: "-", Equal: "=", LBracket: "[", RBracket: "]", Bslash: "\\",
	NonUsHash: "#", SColon: ";", Quote: "'", Grave: "`",
	Comma: ",", Dot: ".", Slash: "/",
	CapsLock: "CapsLock",
	F1:       "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	PScreen: "PScreen", ScrollLock: "ScrollLock", Pause: "Pause",
	Insert: "Insert", Home: "↖", PgUp: "⇞", Delete: "␡",
	End: "End", PgDown: "⇟", Right: "▶", Left: "◀",
	Down: "▼", Up: "▲", NumLock: "NumLock",
	KpSlash: "/", KpAsterisk: "*", KpMinus: "-", KpPlus: "+", KpEnter: "↵",
	Kp1: "1", Kp2: "2", Kp3: "3", Kp4: "4", Kp5: "5",
	Kp6: "6", Kp7: "7", Kp8: "8", Kp9: "9", Kp0: "0", KpDot: "",
	NonUsBslash: "\\", Application: "≣", KpEqual: "=",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17",
	F18: "F18", F19: "F19", F20: "F20", F21: "F21", F22: "F22",
	F23: "F23", F24: "F24",
	Execute: "Execute", Help: "Help", Menu: "Menu", Select: "Select",
	Stop: "Stop", Again: "Again", Undo: "Undo", Cut: "Cut", Copy: "Copy",
	Paste: "Paste", Find: "Find", Mute: "Mute", VolUp: "Vol+", VolDown: "Vol-",
	KpComma: ",", KpEqualSign: "=",
	Intl1: "Intl1", Intl2: "Intl2", Intl3: "Intl3", Intl4: "Intl4",
	Intl5: "Intl5", Intl6: "Intl6", Intl7: "Intl7", Intl8: "Intl8", Intl9: "Intl9",
	Lang1: "Lang1", Lang2: "Lang2", Lang3: "Lang3", Lang4: "Lang4",
	Lang5: "Lang5", Lang6: "Lang6", Lang7: "Lang7", Lang8: "Lang8", Lang9: "Lang9",
	AltErase: "AltErase", SysReq: "SysReq", Cancel: "Cancel", Clear: "Clear",
	Prior: "Prior", Return: "Return", Separator: "Separator", Out: "Out",
	Oper: "Oper", ClearAgain: "ClearAgain", CrSel: "CrSel", ExSel: "ExSel",
	LCtrl: "LCtrl", LShift: "LShift", LAlt: "LAlt", LGui: "LGui",
	RCtrl: "RCtrl", RShift: "RShift", RAlt: "RAlt", RGui: "RGui",
	MediaPlayPause: "Play/Pause", MediaStopCD: "Stop", MediaPreviousSong: "Prev",
	MediaNextSong: "Next", MediaVolUp: "Vol+", MediaVolDown: "Vol-",
	MediaMute: "Mute",
}
