package errors

import (
	"strings"
	"testing"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid png", "relevance.png", false},
		{"valid no extension", "relevance", false},
		{"valid with spaces", "open source.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"slash", "figures/out.png", true},
		{"backslash", "figures\\out.png", true},
		{"hidden", ".out.png", true},
		{"control char", "out\x01.png", true},
		{"newline", "out\n.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateFileName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "requirements_rel", false},
		{"valid with spaces", "Open source", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "q\x001", true},
		{"newline", "q\n1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumnName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumnName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
