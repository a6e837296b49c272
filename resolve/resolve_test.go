package resolve

import (
	"testing"
)

func TestResolveIdentifier_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		resolver interface {
			ResolveIdentifier(string) (string, error)
		}
		input string
		want  string
	}{
		{"postgres simple", &PostgresResolver{}, "users", `"users"`},
		{"postgres dotted", &PostgresResolver{}, "users.id", `"users"."id"`},
		{"mysql simple", &MySQLResolver{}, "users", "`users`"},
		{"mysql dotted", &MySQLResolver{}, "users.id", "`users`.`id`"},
		{"sqlite simple", &SQLiteResolver{}, "users", `"users"`},
		{"sqlite dotted", &SQLiteResolver{}, "users.created_at", `"users"."created_at"`},
		{"underscore start", &PostgresResolver{}, "_private", `"_private"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resolver.ResolveIdentifier(tt.input)
			if err != nil {
				t.Fatalf("ResolveIdentifier(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ResolveIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveIdentifier_RejectsMalformedNames(t *testing.T) {
	bad := []string{
		"",            // empty
		"123abc",      // starts with digit
		"user-name",   // contains hyphen
		"user name",   // contains space
		"users.",      // trailing dot leaves an empty part
		".id",         // leading dot leaves an empty part
		`us"ers`,      // embedded quote
		"drop;table",  // statement separator
		"name`ardown", // embedded backtick
	}

	for _, name := range bad {
		if _, err := Postgres.ResolveIdentifier(name); err == nil {
			t.Errorf("Postgres.ResolveIdentifier(%q) = nil error, want rejection", name)
		}
		if _, err := MySQL.ResolveIdentifier(name); err == nil {
			t.Errorf("MySQL.ResolveIdentifier(%q) = nil error, want rejection", name)
		}
	}
}

func TestValidateIdentifier_Valid(t *testing.T) {
	tests := []string{
		"users",
		"user_id",
		"_private",
		"User123",
		"a",
	}
	for _, name := range tests {
		if err := ValidateIdentifier(name); err != nil {
			t.Errorf("ValidateIdentifier(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateIdentifier_Invalid(t *testing.T) {
	tests := []string{
		"",          // empty
		"123abc",    // starts with digit
		"user-name", // contains hyphen
		"user.name", // contains dot
		"user name", // contains space
	}
	for _, name := range tests {
		if err := ValidateIdentifier(name); err == nil {
			t.Errorf("ValidateIdentifier(%q) = nil, want error", name)
		}
	}
}
