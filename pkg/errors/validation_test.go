package errors

import (
	"testing"
)

func TestValidateAssetPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "faces/happy.png", false},
		{"valid nested", "board/tiles/pressed/3.png", false},
		{"valid filename only", "bg.png", false},
		{"valid with dots", "v1.2/0.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "faces/../passwd", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "faces\\happy.png", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateAssetPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid skin.toml", "skin.toml", false},
		{"valid custom", "classic.toml", false},

		{"empty", "", true},
		{"with path /", "path/to/file", true},
		{"with path \\", "path\\to\\file", true},
		{"hidden file", ".hidden", true},
		{"hidden file long", ".secret.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSkinName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "classic", false},
		{"with space", "Windows 31", false},
		{"with dash", "mono-dark", false},
		{"with dot", "skin.v2", false},
		{"with numbers", "skin2000", false},
		{"uppercase", "Classic", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"starts with space", " classic", true},
		{"starts with dash", "-classic", true},
		{"control char", "cla\x01ssic", true},
		{"slash", "skins/classic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkinName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSkinName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		digits  int
		wantErr bool
	}{
		{"beginner", 8, 8, 2, false},
		{"expert", 16, 30, 3, false},
		{"maximum", 256, 256, 9, false},
		{"minimum", 1, 1, 1, false},

		{"zero rows", 0, 8, 3, true},
		{"zero cols", 8, 0, 3, true},
		{"zero digits", 8, 8, 0, true},
		{"negative rows", -1, 8, 3, true},
		{"rows too large", 257, 8, 3, true},
		{"cols too large", 8, 1000, 3, true},
		{"digits too large", 8, 8, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.rows, tt.cols, tt.digits)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d, %d) error = %v, wantErr %v",
					tt.rows, tt.cols, tt.digits, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("ValidateDimensions returned wrong error code: %v", err)
			}
		})
	}
}
