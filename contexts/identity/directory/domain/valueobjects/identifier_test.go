package valueobjects

import "testing"

func TestClassifyIdentifier(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		kind   IdentifierKind
		userID int64
		value  string
	}{
		{"twelve digits is an id", "100000000001", ByID, 100000000001, ""},
		{"more than twelve digits is an id", "1000000000015", ByID, 1000000000015, ""},
		{"eleven digits is a username", "10000000001", ByUsername, 0, "10000000001"},
		{"leading plus is a phone", "+14155550100", ByPhone, 0, "+14155550100"},
		{"at sign is an email", "Jane.Doe@Example.COM", ByEmail, 0, "jane.doe@example.com"},
		{"plain string is a username", "janedoe", ByUsername, 0, "janedoe"},
		{"digits with letters is a username", "123456789012x", ByUsername, 0, "123456789012x"},
		{"phone wins over digits", "+123456789012", ByPhone, 0, "+123456789012"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyIdentifier(tc.raw)
			if got.Kind != tc.kind {
				t.Fatalf("kind: expected %s, got %s", tc.kind, got.Kind)
			}
			if got.UserID != tc.userID {
				t.Fatalf("user id: expected %d, got %d", tc.userID, got.UserID)
			}
			if got.Value != tc.value {
				t.Fatalf("value: expected %q, got %q", tc.value, got.Value)
			}
		})
	}
}
