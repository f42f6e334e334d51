package validation

import (
	"encoding/json"
	"strconv"
)

// Value is the raw input of a field: free text for most fields, a flag for
// checkboxes such as termsAccepted.
type Value struct {
	text   string
	flag   bool
	isFlag bool
}

func Text(s string) Value {
	return Value{text: s}
}

func Flag(b bool) Value {
	return Value{flag: b, isFlag: true}
}

// ValueOf converts a decoded JSON value. Anything that is neither a string nor
// a bool becomes the zero Value, which fails every presence check.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Text(v)
	case bool:
		return Flag(v)
	case Value:
		return v
	default:
		return Value{}
	}
}

// Text returns the textual content. Flags have no text.
func (v Value) Text() string {
	return v.text
}

func (v Value) IsFlag() bool {
	return v.isFlag
}

// IsTrue reports whether the value is the boolean true.
func (v Value) IsTrue() bool {
	return v.isFlag && v.flag
}

func (v Value) String() string {
	if v.isFlag {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isFlag {
		return json.Marshal(v.flag)
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

// Context is a read-only snapshot of sibling fields. Only passwordConfirmation
// consults it.
type Context struct {
	Password string `json:"password"`
}
