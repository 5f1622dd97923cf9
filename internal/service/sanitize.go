package service

// StripBlankFields returns a copy of the payload with every key whose value
// is exactly the empty string removed. The stripping recurses one level into
// the "setup" sub-object, matching the shape of update request bodies. Other
// falsy values (0, false, nil) are kept: only the empty string marks a field
// a client left blank.
func StripBlankFields(payload map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if key == "setup" {
			if nested, ok := value.(map[string]interface{}); ok {
				out[key] = stripBlanks(nested)
				continue
			}
		}
		out[key] = value
	}
	return out
}

func stripBlanks(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[key] = value
	}
	return out
}
