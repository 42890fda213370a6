package errors

import "testing"

func TestValidateRendererName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "thrasos", false},
		{"with dash", "my-renderer", false},
		{"with digits", "geras2", false},
		{"empty", "", true},
		{"uppercase", "Zelos", true},
		{"leading digit", "1abc", true},
		{"space", "a b", true},
		{"too long", string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRendererName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRendererName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRenderer) {
				t.Errorf("expected INVALID_RENDERER, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateBlockID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "b1", false},
		{"uuid", "7f0e3c1a-5d2b-4c7e-9a1f-0b6d8e2c4a10", false},
		{"punctuation", "if#1:cond", false},
		{"empty", "", true},
		{"space", "a b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlockID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBlockID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
