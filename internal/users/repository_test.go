package users

import (
	"errors"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateCommand
		wantErr error
	}{
		{
			name: "valid student",
			cmd:  CreateCommand{Email: "a@campus.edu", FirstName: "Ada", LastName: "Okafor", Role: "student"},
		},
		{
			name: "valid counselor",
			cmd:  CreateCommand{Email: "c@campus.edu", FirstName: "Sam", LastName: "Reyes", Role: "counselor"},
		},
		{
			name: "role defaults to student",
			cmd:  CreateCommand{Email: "b@campus.edu", FirstName: "Ben", LastName: "Ito"},
		},
		{
			name:    "missing email",
			cmd:     CreateCommand{FirstName: "Ada", LastName: "Okafor"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "malformed email",
			cmd:     CreateCommand{Email: "not-an-email", FirstName: "Ada", LastName: "Okafor"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing first name",
			cmd:     CreateCommand{Email: "a@campus.edu", LastName: "Okafor"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "whitespace last name",
			cmd:     CreateCommand{Email: "a@campus.edu", FirstName: "Ada", LastName: "   "},
			wantErr: ErrInvalidName,
		},
		{
			name:    "unknown role",
			cmd:     CreateCommand{Email: "a@campus.edu", FirstName: "Ada", LastName: "Okafor", Role: "dean"},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCommand(&tc.cmd)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCommandNormalizes(t *testing.T) {
	cmd := CreateCommand{
		Email:     "  Ada.Okafor@Campus.EDU ",
		FirstName: " Ada ",
		LastName:  " Okafor ",
	}

	if err := validateCommand(&cmd); err != nil {
		t.Fatalf("validateCommand: %v", err)
	}

	if cmd.Email != "ada.okafor@campus.edu" {
		t.Errorf("email = %q, want lowercased and trimmed", cmd.Email)
	}
	if cmd.FirstName != "Ada" || cmd.LastName != "Okafor" {
		t.Errorf("names = %q %q, want trimmed", cmd.FirstName, cmd.LastName)
	}
	if cmd.Role != "student" {
		t.Errorf("role = %q, want student default", cmd.Role)
	}
}
