// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// Event types from linux/input-event-codes.h.
const (
	TypeSyn      uint16 = 0x00
	TypeKey      uint16 = 0x01
	TypeRel      uint16 = 0x02
	TypeAbs      uint16 = 0x03
	TypeMsc      uint16 = 0x04
	TypeSw       uint16 = 0x05
	TypeLed      uint16 = 0x11
	TypeSnd      uint16 = 0x12
	TypeRep      uint16 = 0x14
	TypeFF       uint16 = 0x15
	TypePwr      uint16 = 0x16
	TypeFFStatus uint16 = 0x17
)

var typeNames = map[uint16]string{
	TypeSyn:      "EV_SYN",
	TypeKey:      "EV_KEY",
	TypeRel:      "EV_REL",
	TypeAbs:      "EV_ABS",
	TypeMsc:      "EV_MSC",
	TypeSw:       "EV_SW",
	TypeLed:      "EV_LED",
	TypeSnd:      "EV_SND",
	TypeRep:      "EV_REP",
	TypeFF:       "EV_FF",
	TypePwr:      "EV_PWR",
	TypeFFStatus: "EV_FF_STATUS",
}

var synNames = map[uint16]string{
	0: "SYN_REPORT",
	1: "SYN_CONFIG",
	2: "SYN_MT_REPORT",
	3: "SYN_DROPPED",
}

var relNames = map[uint16]string{
	0x00: "REL_X",
	0x01: "REL_Y",
	0x02: "REL_Z",
	0x03: "REL_RX",
	0x04: "REL_RY",
	0x05: "REL_RZ",
	0x06: "REL_HWHEEL",
	0x07: "REL_DIAL",
	0x08: "REL_WHEEL",
	0x09: "REL_MISC",
	0x0b: "REL_WHEEL_HI_RES",
	0x0c: "REL_HWHEEL_HI_RES",
}

// keyNames covers the standard keyboard block. Codes outside it log
// numerically only.
var keyNames = map[uint16]string{
	0: "KEY_RESERVED", 1: "KEY_ESC",
	2: "KEY_1", 3: "KEY_2", 4: "KEY_3", 5: "KEY_4", 6: "KEY_5",
	7: "KEY_6", 8: "KEY_7", 9: "KEY_8", 10: "KEY_9", 11: "KEY_0",
	12: "KEY_MINUS", 13: "KEY_EQUAL", 14: "KEY_BACKSPACE", 15: "KEY_TAB",
	16: "KEY_Q", 17: "KEY_W", 18: "KEY_E", 19: "KEY_R", 20: "KEY_T",
	21: "KEY_Y", 22: "KEY_U", 23: "KEY_I", 24: "KEY_O", 25: "KEY_P",
	26: "KEY_LEFTBRACE", 27: "KEY_RIGHTBRACE", 28: "KEY_ENTER", 29: "KEY_LEFTCTRL",
	30: "KEY_A", 31: "KEY_S", 32: "KEY_D", 33: "KEY_F", 34: "KEY_G",
	35: "KEY_H", 36: "KEY_J", 37: "KEY_K", 38: "KEY_L",
	39: "KEY_SEMICOLON", 40: "KEY_APOSTROPHE", 41: "KEY_GRAVE",
	42: "KEY_LEFTSHIFT", 43: "KEY_BACKSLASH",
	44: "KEY_Z", 45: "KEY_X", 46: "KEY_C", 47: "KEY_V", 48: "KEY_B",
	49: "KEY_N", 50: "KEY_M",
	51: "KEY_COMMA", 52: "KEY_DOT", 53: "KEY_SLASH", 54: "KEY_RIGHTSHIFT",
	55: "KEY_KPASTERISK", 56: "KEY_LEFTALT", 57: "KEY_SPACE", 58: "KEY_CAPSLOCK",
	59: "KEY_F1", 60: "KEY_F2", 61: "KEY_F3", 62: "KEY_F4", 63: "KEY_F5",
	64: "KEY_F6", 65: "KEY_F7", 66: "KEY_F8", 67: "KEY_F9", 68: "KEY_F10",
	69: "KEY_NUMLOCK", 70: "KEY_SCROLLLOCK",
	71: "KEY_KP7", 72: "KEY_KP8", 73: "KEY_KP9", 74: "KEY_KPMINUS",
	75: "KEY_KP4", 76: "KEY_KP5", 77: "KEY_KP6", 78: "KEY_KPPLUS",
	79: "KEY_KP1", 80: "KEY_KP2", 81: "KEY_KP3", 82: "KEY_KP0", 83: "KEY_KPDOT",
	86: "KEY_102ND", 87: "KEY_F11", 88: "KEY_F12",
	96: "KEY_KPENTER", 97: "KEY_RIGHTCTRL", 98: "KEY_KPSLASH", 99: "KEY_SYSRQ",
	100: "KEY_RIGHTALT", 102: "KEY_HOME", 103: "KEY_UP", 104: "KEY_PAGEUP",
	105: "KEY_LEFT", 106: "KEY_RIGHT", 107: "KEY_END", 108: "KEY_DOWN",
	109: "KEY_PAGEDOWN", 110: "KEY_INSERT", 111: "KEY_DELETE",
	113: "KEY_MUTE", 114: "KEY_VOLUMEDOWN", 115: "KEY_VOLUMEUP",
	119: "KEY_PAUSE", 125: "KEY_LEFTMETA", 126: "KEY_RIGHTMETA", 127: "KEY_COMPOSE",
	0x110: "BTN_LEFT", 0x111: "BTN_RIGHT", 0x112: "BTN_MIDDLE",
	0x113: "BTN_SIDE", 0x114: "BTN_EXTRA",
}

// TypeName returns the EV_* name for an event type, or "UNKNOWN".
func TypeName(eventType uint16) string {
	if name, ok := typeNames[eventType]; ok {
		return name
	}
	return "UNKNOWN"
}

// CodeName returns the symbolic name of code within eventType, or ""
// when no name is known.
func CodeName(eventType, code uint16) string {
	switch eventType {
	case TypeSyn:
		return synNames[code]
	case TypeKey:
		return keyNames[code]
	case TypeRel:
		return relNames[code]
	}
	return ""
}

// ValueName names EV_KEY values (Release, Press, Repeat). Other types
// carry magnitudes rather than states, so the result is "".
func ValueName(eventType uint16, value int32) string {
	if eventType != TypeKey {
		return ""
	}
	switch value {
	case 0:
		return "Release"
	case 1:
		return "Press"
	case 2:
		return "Repeat"
	}
	return "Unknown"
}
