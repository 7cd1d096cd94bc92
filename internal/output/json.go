package output

import "encoding/json"

// RenderJSON marshals any report as indented JSON.
func RenderJSON(report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
