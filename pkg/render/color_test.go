package render

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"255,255,255", ColorWhite, false},
		{"0,128,64", RGB(0, 128, 64), false},
		{" 10,20,30 ", RGB(10, 20, 30), false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"#000000", ColorBlack, false},
		{"256,0,0", Color{}, true},
		{"-1,0,0", Color{}, true},
		{"1,2", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
