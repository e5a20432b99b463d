package errors

import (
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"one", 1, false},
		{"large", 40, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("limit", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidOptions) {
				t.Errorf("ValidatePositive(%d) code = %v, want %v", tt.value, GetCode(err), ErrCodeInvalidOptions)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 2, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("row gap", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	choices := []string{"row", "column"}

	if err := ValidateChoice(ErrCodeInvalidOptions, "flow", "row", choices); err != nil {
		t.Errorf("ValidateChoice(row) error = %v, want nil", err)
	}

	err := ValidateChoice(ErrCodeInvalidOptions, "flow", "Row", choices)
	if err == nil {
		t.Fatal("ValidateChoice(Row) should be case-sensitive")
	}
	want := `invalid flow: "Row" (must be one of row, column)`
	if got := UserMessage(err); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}
