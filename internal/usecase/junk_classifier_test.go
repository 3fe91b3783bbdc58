package usecase

import "testing"

func TestIsJunkLine(t *testing.T) {
	junkLines := []struct {
		name string
		line string
	}{
		{"store name", "Walmart Supercenter"},
		{"store slogan", "Save Money. Live Better."},
		{"street address", "123 Main St"},
		{"city state zip", "Anytown, CA 94016"},
		{"trailing state", "Springfield, IL"},
		{"bare zip code", "94016"},
		{"phone number", "Call 555-123-4567"},
		{"slash date", "01/15/2024"},
		{"clock time", "Checkout 3:47 pm"},
		{"iso date", "2024-01-15"},
		{"register codes", "ST# 04521 OP# 009021"},
		{"cashier line", "YOUR CASHIER WAS JANE"},
		{"barcode digits", "0123456789012"},
		{"subtotal", "SUBTOTAL"},
		{"tax line", "TAX 1.07"},
		{"card payment", "VISA CREDIT"},
		{"quantity marker", "@ 2 FOR 5.00"},
		{"weight at price", "1.23 lb @ 0.99/lb"},
		{"net weight", "NET WT 12 OZ"},
		{"too few letters", "$1"},
		{"too short", "egg"},
		{"price only", "5.99"},
		{"refund price", "-3.99 F"},
		{"separator row", "************"},
		{"loyalty wording", "MEMBER SAVINGS EVENT"},
		{"rollback wording", "ROLLBACK"},
		{"refund wording", "REFUND ISSUED"},
		{"url", "visit www.example.net today"},
		{"email address", "help@example.net"},
		{"department phrase", "PRICE CHECK AISLE 4"},
		{"survey wording", "TELL US HOW WE DID"},
		{"price with tax flag", "3.99 F"},
		{"all caps department header", "DAIRY"},
	}

	for _, tt := range junkLines {
		t.Run("junk/"+tt.name, func(t *testing.T) {
			if !IsJunkLine(tt.line) {
				t.Errorf("IsJunkLine(%q) = false, want true", tt.line)
			}
		})
	}

	productLines := []struct {
		name string
		line string
	}{
		{"plain product", "WHOLE MILK"},
		{"abbreviated product", "GV CHKN BRST"},
		{"mixed case product", "Heavy Cream"},
		{"organic produce", "ORG BNNAS"},
		{"multi word product", "BNLS SKNLS CHKN"},
		{"bread", "WONDER BREAD"},
	}

	for _, tt := range productLines {
		t.Run("product/"+tt.name, func(t *testing.T) {
			if IsJunkLine(tt.line) {
				t.Errorf("IsJunkLine(%q) = true, want false", tt.line)
			}
		})
	}
}

func TestIsJunkLineMostlyNumeric(t *testing.T) {
	t.Run("digit-heavy line is junk", func(t *testing.T) {
		// 8 digits out of 10 non-space characters
		if !IsJunkLine("AB 12345678") {
			t.Error("expected digit-heavy line to be junk")
		}
	})

	t.Run("digit-light line is kept", func(t *testing.T) {
		if IsJunkLine("GALA APPLES 4") {
			t.Error("expected product line with one digit to survive")
		}
	})
}
