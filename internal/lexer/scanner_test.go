package lexer

import "testing"

func TestSimpleTokenScannerEOFTail(t *testing.T) {
	scanner := NewTokenScanner([]Token{
		{Kind: INTEGER_CONST, Value: "4"},
	})

	token, err := scanner.Read()
	if err != nil || token.Kind != INTEGER_CONST {
		t.Fatalf("Read() = %v, %v, want INTEGER_CONST", token, err)
	}

	for i := 0; i < 3; i++ {
		token, err := scanner.Read()
		if err != nil {
			t.Fatalf("Read() error past end: %v", err)
		}
		if token.Kind != EOF {
			t.Fatalf("Read() past end = %s, want EOF", token.Kind)
		}
	}
}
