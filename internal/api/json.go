package api

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// marshalJSONColumn converts an arbitrary request payload into a JSON column
// value.
func marshalJSONColumn(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
