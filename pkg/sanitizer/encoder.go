package sanitizer

import "github.com/goccy/go-json"

// TupleEncoder serializes the components of a composite tuple to text.
// Configured by the hosting application via WithTupleEncoder; the sanitizer
// itself never picks an encoding.
type TupleEncoder func(values []any) (string, error)

// JSONTupleEncoder encodes tuple components as a JSON array. It is the stock
// encoder for applications without their own wire format:
//
//	s := sanitizer.New(sanitizer.WithTupleEncoder(sanitizer.JSONTupleEncoder))
func JSONTupleEncoder(values []any) (string, error) {
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
