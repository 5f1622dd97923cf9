package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// recordIDString converts the id value of a SurrealDB record to its
// "table:id" string form.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if inner, ok := v["id"].(string); ok {
				return tb + ":" + inner
			}
		}
	}

	if data, err := json.Marshal(id); err == nil {
		var rid models.RecordID
		if err := json.Unmarshal(data, &rid); err == nil {
			return rid.String()
		}
	}

	return ""
}

// getString extracts a string field from a record map.
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringSlice extracts a string slice field from a record map.
func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v))
	for _, item := range v {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getTime extracts a time field from a record map. SurrealDB datetimes
// arrive either as RFC 3339 strings or as decoded CustomDateTime values.
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// firstRecord unwraps the first record from a Query response, which wraps
// each statement result as {"status": ..., "result": [...]}.
func firstRecord(results []interface{}) (map[string]interface{}, error) {
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); ok && status != "OK" {
			continue
		}
		rows, ok := resp["result"].([]interface{})
		if !ok || len(rows) == 0 {
			continue
		}
		if record, ok := rows[0].(map[string]interface{}); ok {
			return record, nil
		}
	}
	return nil, errors.New("no record in query result")
}

// allRecords collects every record from a Query response, preserving the
// order the database returned them in.
func allRecords(results []interface{}) []map[string]interface{} {
	var records []map[string]interface{}
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); ok && status != "OK" {
			continue
		}
		rows, ok := resp["result"].([]interface{})
		if !ok {
			continue
		}
		for _, row := range rows {
			if record, ok := row.(map[string]interface{}); ok {
				records = append(records, record)
			}
		}
	}
	return records
}
