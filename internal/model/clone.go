package model

import "time"

// Clone returns a copy of e that shares no memory with it.
func (e HealthEntry) Clone() HealthEntry {
	e.Tags = cloneSlice(e.Tags)
	e.Data = cloneData(e.Data)
	return e
}

// Clone returns a copy of m that shares no memory with it.
func (m Medication) Clone() Medication {
	m.Times = cloneSlice(m.Times)
	if m.EndDate != nil {
		end := *m.EndDate
		m.EndDate = &end
	}
	return m
}

// Clone returns a copy of in that shares no memory with it.
func (in HealthInsight) Clone() HealthInsight {
	in.Recommendations = cloneSlice(in.Recommendations)
	in.RelatedData = cloneData(in.RelatedData)
	return in
}

// nil stays nil so the JSON form is unchanged.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneData(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneData(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, x := range t {
			out[i] = cloneValue(x)
		}
		return out
	case []string:
		return cloneSlice(t)
	case time.Time:
		return t
	default:
		return v
	}
}
