package compose

import (
	"bytes"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	data := []byte("# Title\n\n- item\n\ttabbed\r\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateInputControlDensity(t *testing.T) {
	dense := bytes.Repeat([]byte{0x01, 'a', 'b', 'c'}, 32)
	if err := ValidateInput(dense); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput for control-heavy input, got %v", err)
	}
}
