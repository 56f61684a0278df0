package auth

import "testing"

func TestEmptyAllowlistAllowsEveryone(t *testing.T) {
	s := New(nil)
	if !s.IsAllowed(123) {
		t.Fatal("empty allowlist should allow any user")
	}
}

func TestAllowlistRestrictsUsers(t *testing.T) {
	s := New([]int64{1, 2})
	if !s.IsAllowed(1) || !s.IsAllowed(2) {
		t.Fatal("listed users should be allowed")
	}
	if s.IsAllowed(3) {
		t.Fatal("unlisted user should be rejected")
	}
}
