package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString строка, которая при разборе JSON принимает также числа, bool и null
// Формы сайта отправляют значения полей то строками, то числами
type FlexString string

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = FlexString(strconv.FormatBool(b))
	case '{', '[':
		return fmt.Errorf("types: cannot decode %s into FlexString", string(data))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
	}

	return nil
}

// String возвращает значение как строку
func (f FlexString) String() string {
	return string(f)
}
