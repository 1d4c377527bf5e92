package main

import (
	"fmt"
	"strings"
)

type FieldKind int

const (
	FieldNumeric FieldKind = iota
	FieldChoice
)

// PropertyField is one editable row of the properties panel.
type PropertyField struct {
	Key     string
	Label   string
	Kind    FieldKind
	Number  int
	Min     int
	Max     int
	Choice  string
	Options []string
}

func (f PropertyField) Display() string {
	if f.Kind == FieldChoice {
		return f.Choice
	}
	return fmt.Sprintf("%d", f.Number)
}

const maxCoordinate = 1000

var headOptions = []string{"on", "off"}

func numericField(key, label string, value, lo, hi int) PropertyField {
	return PropertyField{Key: key, Label: label, Kind: FieldNumeric, Number: value, Min: lo, Max: hi}
}

func choiceField(key, label, value string, options []string) PropertyField {
	return PropertyField{Key: key, Label: label, Kind: FieldChoice, Choice: value, Options: options}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func elementProperties(e Element) []PropertyField {
	origin := elementOrigin(e)
	fields := []PropertyField{
		numericField("x", "X", origin.X, 0, maxCoordinate),
		numericField("y", "Y", origin.Y, 0, maxCoordinate),
	}

	switch el := e.(type) {
	case *Rectangle:
		fields = append(fields,
			numericField("width", "Width", el.Width, 1, 200),
			numericField("height", "Height", el.Height, 1, 200),
			choiceField("border_style", "Border", el.BorderStyle.String(), borderStyleNames()),
		)
	case *Arrow:
		fields = append(fields,
			choiceField("start_head", "Start head", onOff(el.StartHead), headOptions),
			choiceField("end_head", "End head", onOff(el.EndHead), headOptions),
		)
	case *Table:
		fields = append(fields,
			numericField("rows", "Rows", el.Rows, 1, tableMaxRows),
			numericField("cols", "Columns", el.Cols, 1, tableMaxCols),
			choiceField("header_border", "Header border", el.HeaderBorder.String(), borderStyleNames()),
			choiceField("body_border", "Body border", el.BodyBorder.String(), borderStyleNames()),
		)
	}
	return fields
}

func rangeError(label string, lo, hi int) error {
	return fmt.Errorf("%s must be between %d and %d", label, lo, hi)
}

// setNumericProperty validates before mutating; on error e is unchanged.
func setNumericProperty(e Element, key string, value int) error {
	var field *PropertyField
	for _, f := range elementProperties(e) {
		if f.Key == key && f.Kind == FieldNumeric {
			f := f
			field = &f
			break
		}
	}
	if field == nil {
		return fmt.Errorf("unknown property %q", key)
	}
	if value < field.Min || value > field.Max {
		return rangeError(field.Label, field.Min, field.Max)
	}

	switch key {
	case "x", "y":
		dx, dy := value-elementOrigin(e).X, 0
		if key == "y" {
			dx, dy = 0, value-elementOrigin(e).Y
		}
		b := e.Bounds()
		if b.Min.X+dx < 0 || b.Min.Y+dy < 0 {
			return fmt.Errorf("%s would move %s off the canvas", field.Label, e.GetName())
		}
		e.Translate(dx, dy)
		return nil
	}

	switch el := e.(type) {
	case *Rectangle:
		if key == "width" {
			el.Width = value
		} else {
			el.Height = value
		}
		el.refresh()
	case *Table:
		if key == "rows" {
			el.Resize(value, el.Cols)
		} else {
			el.Resize(el.Rows, value)
		}
	}
	return nil
}

func setChoiceProperty(e Element, key, value string) error {
	switch el := e.(type) {
	case *Rectangle:
		if key == "border_style" {
			style, err := ParseBorderStyle(value)
			if err != nil {
				return err
			}
			el.BorderStyle = style
			return nil
		}
	case *Arrow:
		if key == "start_head" || key == "end_head" {
			on, err := parseOnOff(value)
			if err != nil {
				return err
			}
			if key == "start_head" {
				el.StartHead = on
			} else {
				el.EndHead = on
			}
			return nil
		}
	case *Table:
		if key == "header_border" || key == "body_border" {
			style, err := ParseBorderStyle(value)
			if err != nil {
				return err
			}
			if key == "header_border" {
				el.HeaderBorder = style
			} else {
				el.BodyBorder = style
			}
			return nil
		}
	}
	return fmt.Errorf("unknown property %q", key)
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("Invalid arrow head: %s", value)
}

// cycleChoice steps through a choice field's options, wrapping around.
func cycleChoice(f PropertyField, step int) string {
	if len(f.Options) == 0 {
		return f.Choice
	}
	idx := 0
	for i, opt := range f.Options {
		if opt == f.Choice {
			idx = i
			break
		}
	}
	idx = (idx + step + len(f.Options)) % len(f.Options)
	return f.Options[idx]
}
