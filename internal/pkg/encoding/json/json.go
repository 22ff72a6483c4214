package json

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonLib = jsoniter.ConfigCompatibleWithStandardLibrary // nolint: gochecknoglobals

func Encode(v any, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = jsonLib.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = jsonLib.Marshal(v)
	}
	if err != nil {
		return nil, processJSONError(err)
	}
	return data, nil
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	return string(data), err
}

func MustEncodeString(v any, pretty bool) string {
	data, err := EncodeString(v, pretty)
	if err != nil {
		panic(err)
	}
	return data
}

func Decode(data []byte, m any) error {
	if err := jsonLib.Unmarshal(data, m); err != nil {
		return processJSONError(err)
	}
	return nil
}

func DecodeString(data string, m any) error {
	return Decode([]byte(data), m)
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	return jsonLib.Valid(data)
}

func processJSONError(err error) error {
	switch err := err.(type) { // nolint: errorlint
	// Custom error message
	case *json.UnmarshalTypeError:
		return fmt.Errorf("key \"%s\" has invalid type \"%s\"", err.Field, err.Value)
	case *json.SyntaxError:
		return fmt.Errorf("%s, offset: %d", err, err.Offset)
	default:
		return err
	}
}
