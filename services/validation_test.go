package services

import "testing"

func TestIsValidEdit(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"0", true},
		{"300", true},
		{"3.5", true},
		{"3,5", true},
		{"12.", true},
		{".5", true},
		{".", true},
		{"12.3.4", false},
		{"12,3.4", false},
		{"12a", false},
		{"-3", false},
		{" 3", false},
		{"1e5", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidEdit(tt.input); got != tt.want {
				t.Errorf("IsValidEdit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateEdit_Message(t *testing.T) {
	err := ValidateEdit("12a")
	if err == nil {
		t.Fatal("ValidateEdit(12a) = nil, want error")
	}
	if err.Error() != "must contain only digits and at most one decimal separator" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNormalizeEdit(t *testing.T) {
	if got := NormalizeEdit("1,5"); got != "1.5" {
		t.Errorf("NormalizeEdit(1,5) = %q, want 1.5", got)
	}
}
