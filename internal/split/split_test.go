package split

import (
	"math"
	"testing"
)

func TestShares(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		n       int
		want    []float64
		wantErr error
	}{
		{
			name:   "even division",
			amount: 90.0,
			n:      3,
			want:   []float64{30.0, 30.0, 30.0},
		},
		{
			name:   "remainder cents go to first payee",
			amount: 100.0,
			n:      3,
			want:   []float64{33.34, 33.33, 33.33},
		},
		{
			name:   "single payee gets the full amount",
			amount: 42.5,
			n:      1,
			want:   []float64{42.5},
		},
		{
			name:   "sub-cent entry rounds to cents first",
			amount: 0.999,
			n:      2,
			want:   []float64{0.5, 0.5},
		},
		{
			name:   "amount smaller than payee count",
			amount: 0.02,
			n:      3,
			want:   []float64{0.02, 0.0, 0.0},
		},
		{
			name:    "zero payees",
			amount:  10.0,
			n:       0,
			wantErr: ErrNoPayees,
		},
		{
			name:    "negative amount",
			amount:  -5.0,
			n:       2,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NaN amount",
			amount:  math.NaN(),
			n:       2,
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shares(tt.amount, tt.n)
			if err != tt.wantErr {
				t.Fatalf("Shares() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Shares() returned %d shares, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("share[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSharesSumToRoundedAmount(t *testing.T) {
	amounts := []float64{100.0, 99.99, 0.01, 1234.56, 7.77}
	for _, amount := range amounts {
		for n := 1; n <= 7; n++ {
			shares, err := Shares(amount, n)
			if err != nil {
				t.Fatalf("Shares(%v, %d): %v", amount, n, err)
			}
			var sumCents int64
			for _, s := range shares {
				sumCents += int64(math.Round(s * 100))
			}
			wantCents := int64(math.Round(amount * 100))
			if sumCents != wantCents {
				t.Errorf("Shares(%v, %d) sums to %d cents, want %d", amount, n, sumCents, wantCents)
			}
		}
	}
}
