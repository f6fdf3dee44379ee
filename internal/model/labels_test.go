package model

import "testing"

func TestPresentFieldAsLabel(t *testing.T) {
	cases := map[string]string{
		"customer_id":    "Customer",
		"first_name":     "First Name",
		"name":           "Name",
		"UPPER_case":     "Upper Case",
		"id":             "Id",
		"party_role_id":  "Party Role",
		"_leading":       "Leading",
		"identity_check": "Identity Check",
		"émail_address":  "Émail Address",
		"ñame":           "Ñame",
		"":               "",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			if got := PresentFieldAsLabel(input); got != want {
				t.Fatalf("PresentFieldAsLabel(%q) = %q, want %q", input, got, want)
			}
		})
	}
}
