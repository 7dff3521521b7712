package token

import (
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown token kind")

// Kind is the classification of a token. The zero value is Unknown, the state
// of every token before classification.
type Kind uint8

const (
	Unknown Kind = iota
	Word
	StopWord
	SoftSeparator
	HardSeparator
)

// Separator returns the Kind for a separator of the given strength.
func Separator(s SeparatorKind) Kind {
	if s == Hard {
		return HardSeparator
	}
	return SoftSeparator
}

// IsSeparator reports whether k is SoftSeparator or HardSeparator.
func (k Kind) IsSeparator() bool {
	return k == SoftSeparator || k == HardSeparator
}

// Separator returns the separator strength carried by k.
func (k Kind) Separator() (SeparatorKind, bool) {
	switch k {
	case HardSeparator:
		return Hard, true
	case SoftSeparator:
		return Soft, true
	default:
		return 0, false
	}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Word:
		return "word"
	case StopWord:
		return "stop_word"
	case SoftSeparator:
		return "separator:soft"
	case HardSeparator:
		return "separator:hard"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k > HardSeparator {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unknown":
		*k = Unknown
	case "word":
		*k = Word
	case "stop_word":
		*k = StopWord
	case "separator:soft":
		*k = SoftSeparator
	case "separator:hard":
		*k = HardSeparator
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, text)
	}
	return nil
}
