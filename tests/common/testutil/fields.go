//go:build unit || e2e

package testutil

// Field builds a request-body mutation for binding tests. A nil value
// removes the key instead of setting it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
