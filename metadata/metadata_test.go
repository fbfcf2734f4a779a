package metadata

import (
	"errors"
	"testing"
)

func testMetadata() *Metadata {
	return &Metadata{
		Pallets: []Pallet{
			{
				Name: "Balances",
				Calls: &CallGroup{
					Variants: []CallVariant{
						{
							Name:        "transfer",
							Fingerprint: Fingerprint{1, 2, 3, 4},
							Fields: []CallField{
								{Name: "dest", Type: "types.AccountID"},
								{Name: "value", Type: "types.Balance"},
							},
						},
						{
							Name: "burn", // no fingerprint recorded
						},
					},
				},
			},
			{Name: "Timestamp"}, // no calls
		},
	}
}

func TestMetadata_Pallet(t *testing.T) {
	meta := testMetadata()

	if p := meta.Pallet("Balances"); p == nil || p.Name != "Balances" {
		t.Fatalf("Pallet(Balances) = %v, want Balances", p)
	}
	if p := meta.Pallet("Staking"); p != nil {
		t.Errorf("Pallet(Staking) = %v, want nil", p)
	}
}

func TestMetadata_CallFingerprint(t *testing.T) {
	meta := testMetadata()

	fp, err := meta.CallFingerprint("Balances", "transfer")
	if err != nil {
		t.Fatalf("CallFingerprint(Balances, transfer) error: %v", err)
	}
	if !fp.Equal(Fingerprint{1, 2, 3, 4}) {
		t.Errorf("CallFingerprint(Balances, transfer) = %v, want [1 2 3 4]", fp)
	}
}

func TestMetadata_CallFingerprint_NotFound(t *testing.T) {
	meta := testMetadata()

	tests := []struct {
		name   string
		pallet string
		call   string
	}{
		{"unknown pallet", "Staking", "bond"},
		{"pallet without calls", "Timestamp", "set"},
		{"unknown call", "Balances", "teleport"},
		{"call without fingerprint", "Balances", "burn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := meta.CallFingerprint(tt.pallet, tt.call)
			var notFound *CallNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("CallFingerprint(%s, %s) error = %v, want *CallNotFoundError", tt.pallet, tt.call, err)
			}
			if notFound.Pallet != tt.pallet || notFound.Call != tt.call {
				t.Errorf("error names %s.%s, want %s.%s", notFound.Pallet, notFound.Call, tt.pallet, tt.call)
			}
		})
	}
}

func TestFingerprint_Equal(t *testing.T) {
	a := Fingerprint{1, 2, 3, 4}
	b := Fingerprint{1, 2, 3, 4}
	c := Fingerprint{9, 9, 9, 9}

	if !a.Equal(b) {
		t.Error("identical fingerprints reported unequal")
	}
	if a.Equal(c) {
		t.Error("different fingerprints reported equal")
	}
	if a.Equal(Fingerprint{1, 2, 3}) {
		t.Error("fingerprints of different length reported equal")
	}
}

func TestFingerprint_String(t *testing.T) {
	fp := Fingerprint{0x01, 0x02, 0xab}
	if got := fp.String(); got != "0102ab" {
		t.Errorf("Fingerprint.String() = %q, want %q", got, "0102ab")
	}
}
