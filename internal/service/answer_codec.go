package service

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// encodeStringList serializes an ordered list of strings for a JSON column.
// nil stays nil so the column can remain NULL.
func encodeStringList(values []string) datatypes.JSON {
	if values == nil {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// decodeStringList reads a stored answer/option list back into a string
// slice. Rows written before the JSON column migration hold plain
// comma-separated text; those fall through to the comma-split path. This is a
// read-only compatibility shim, new rows are always JSON arrays.
func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err == nil {
		return values
	}
	out := []string{}
	for _, part := range strings.Split(string(raw), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
