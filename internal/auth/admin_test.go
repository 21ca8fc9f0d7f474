package auth

import "testing"

func TestAllowlistPolicy(t *testing.T) {
	policy := NewAllowlistPolicy([]string{"Admin@SalesPulse.io", "  ops@salespulse.io ", ""})

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@salespulse.io", true},
		{"ADMIN@salespulse.IO", true},
		{" ops@salespulse.io", true},
		{"viewer@salespulse.io", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := policy.IsAdmin(tc.email); got != tc.want {
			t.Fatalf("IsAdmin(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestNilPolicyDeniesEveryone(t *testing.T) {
	var policy *AllowlistPolicy
	if policy.IsAdmin("admin@salespulse.io") {
		t.Fatal("nil policy must deny")
	}
}

func TestEmptyAllowlistDeniesEveryone(t *testing.T) {
	policy := NewAllowlistPolicy(nil)
	if policy.IsAdmin("admin@salespulse.io") {
		t.Fatal("empty allowlist must deny")
	}
}
