package mongo

import "encoding/json"

func encode(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(data string, dst any) error {
	return json.Unmarshal([]byte(data), dst)
}
