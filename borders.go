package main

import "fmt"

type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderBold
	BorderRounded
	BorderNone
)

var borderStyles = []BorderStyle{BorderSingle, BorderDouble, BorderBold, BorderRounded, BorderNone}

func (s BorderStyle) String() string {
	switch s {
	case BorderSingle:
		return "Single"
	case BorderDouble:
		return "Double"
	case BorderBold:
		return "Bold"
	case BorderRounded:
		return "Rounded"
	case BorderNone:
		return "None"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// ParseBorderStyle accepts the exact style names.
func ParseBorderStyle(name string) (BorderStyle, error) {
	for _, s := range borderStyles {
		if s.String() == name {
			return s, nil
		}
	}
	return BorderSingle, fmt.Errorf("Invalid border style: %s", name)
}

func borderStyleNames() []string {
	names := make([]string, len(borderStyles))
	for i, s := range borderStyles {
		names[i] = s.String()
	}
	return names
}

func (s BorderStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *BorderStyle) UnmarshalText(text []byte) error {
	style, err := ParseBorderStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

type BorderChars struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Cross       rune
	LeftT       rune
	RightT      rune
	TopT        rune
	BottomT     rune
}

func (s BorderStyle) Chars() BorderChars {
	switch s {
	case BorderDouble:
		return BorderChars{'═', '║', '╔', '╗', '╚', '╝', '╬', '╠', '╣', '╦', '╩'}
	case BorderBold:
		return BorderChars{'━', '┃', '┏', '┓', '┗', '┛', '╋', '┣', '┫', '┳', '┻'}
	case BorderRounded:
		return BorderChars{'─', '│', '╭', '╮', '╰', '╯', '┼', '├', '┤', '┬', '┴'}
	case BorderNone:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	default:
		return BorderChars{'─', '│', '┌', '┐', '└', '┘', '┼', '├', '┤', '┬', '┴'}
	}
}
