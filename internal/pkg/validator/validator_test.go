package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidLoginID(t *testing.T) {
	valid := []string{"DFJADO20240001", "admin_john", "abc", "A1_b2"}
	invalid := []string{"ab", "with space", "has-dash", "has.dot", "", "thisloginidiswaytoolongtofit"}
	for _, id := range valid {
		if !IsValidLoginID(id) {
			t.Errorf("IsValidLoginID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidLoginID(id) {
			t.Errorf("IsValidLoginID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2023-02-29", "2024-13-01", "01-01-2024", "2024/01/01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	got, ok := IsValidTimeOfDay("09:30")
	if !ok {
		t.Fatal("IsValidTimeOfDay(09:30) = false, want true")
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Errorf("IsValidTimeOfDay(09:30) parsed as %02d:%02d", got.Hour(), got.Minute())
	}
	for _, s := range []string{"9:30:00", "24:00", "09:61", "late", ""} {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"Jane", "O'Brien", "Anne-Marie", "De la Cruz"}
	invalid := []string{"", "1Jane", "J@ne"}
	for _, n := range valid {
		if !IsValidName(n) {
			t.Errorf("IsValidName(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if IsValidName(n) {
			t.Errorf("IsValidName(%q) = true, want false", n)
		}
	}
}
