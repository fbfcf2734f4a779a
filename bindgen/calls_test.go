package bindgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/chainbind/chainbind/bindgen/ir"
	"github.com/chainbind/chainbind/metadata"
)

func balancesMetadata() *metadata.Metadata {
	return &metadata.Metadata{
		Pallets: []metadata.Pallet{
			{
				Name: "Balances",
				Calls: &metadata.CallGroup{
					Docs: []string{"Balance operations."},
					Variants: []metadata.CallVariant{
						{
							Name:        "transfer",
							Docs:        []string{"Transfer some balance."},
							Fingerprint: metadata.Fingerprint{1, 2, 3, 4},
							Fields: []metadata.CallField{
								{Name: "dest", Type: "types.AccountID"},
								{Name: "value", Type: "types.Balance"},
							},
						},
						{
							Name:        "upgrade_accounts",
							Fingerprint: metadata.Fingerprint{5, 6, 7, 8},
						},
					},
				},
			},
			{Name: "Timestamp"},
		},
	}
}

func TestBuildCallModule(t *testing.T) {
	meta := balancesMetadata()

	mod, err := BuildCallModule(meta, meta.Pallet("Balances"))
	if err != nil {
		t.Fatalf("BuildCallModule() error: %v", err)
	}
	if mod == nil {
		t.Fatal("BuildCallModule() = nil for pallet with calls")
	}

	if mod.Pallet != "Balances" || mod.Package != "balances" {
		t.Errorf("module identity = %s/%s, want Balances/balances", mod.Pallet, mod.Package)
	}
	if len(mod.Docs) != 1 || mod.Docs[0] != "Balance operations." {
		t.Errorf("module docs = %v, want call-group docs", mod.Docs)
	}
	if len(mod.Bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(mod.Bindings))
	}

	transfer := mod.Bindings[0]
	if transfer.Struct.Name != "Transfer" || transfer.AccessorName != "transfer" {
		t.Errorf("binding 0 names = %s/%s, want Transfer/transfer", transfer.Struct.Name, transfer.AccessorName)
	}
	if !transfer.Fingerprint.Equal(metadata.Fingerprint{1, 2, 3, 4}) {
		t.Errorf("binding 0 fingerprint = %v, want [1 2 3 4]", transfer.Fingerprint)
	}

	upgrade := mod.Bindings[1]
	if upgrade.Struct.Shape.Kind != ir.NoFields {
		t.Errorf("binding 1 shape = %v, want NoFields", upgrade.Struct.Shape.Kind)
	}
}

// Variant docs move from the struct to the accessor when the module is
// assembled; they never appear in both places.
func TestBuildCallModule_DocRelocation(t *testing.T) {
	meta := balancesMetadata()

	mod, err := BuildCallModule(meta, meta.Pallet("Balances"))
	if err != nil {
		t.Fatal(err)
	}

	transfer := mod.Bindings[0]
	if len(transfer.Struct.Docs) != 0 {
		t.Errorf("struct docs = %v, want none after assembly", transfer.Struct.Docs)
	}
	if len(transfer.Docs) != 1 || transfer.Docs[0] != "Transfer some balance." {
		t.Errorf("accessor docs = %v, want relocated variant docs", transfer.Docs)
	}
}

func TestBuildCallModule_NoCalls(t *testing.T) {
	meta := balancesMetadata()

	mod, err := BuildCallModule(meta, meta.Pallet("Timestamp"))
	if err != nil {
		t.Fatalf("BuildCallModule() error: %v", err)
	}
	if mod != nil {
		t.Errorf("BuildCallModule() = %+v for pallet without calls, want nil", mod)
	}
}

func TestBuildCallModule_UnnamedFields(t *testing.T) {
	meta := &metadata.Metadata{
		Pallets: []metadata.Pallet{
			{
				Name: "Sudo",
				Calls: &metadata.CallGroup{
					Variants: []metadata.CallVariant{
						{
							Name:        "sudo",
							Fingerprint: metadata.Fingerprint{1},
							Fields:      []metadata.CallField{{Type: "RuntimeCall"}},
						},
					},
				},
			},
		},
	}

	_, err := BuildCallModule(meta, &meta.Pallets[0])
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v, want *SchemaError", err)
	}
	if schemaErr.Pallet != "Sudo" || schemaErr.Call != "sudo" {
		t.Errorf("error names %s.%s, want Sudo.sudo", schemaErr.Pallet, schemaErr.Call)
	}
	if !strings.Contains(schemaErr.Error(), "Sudo.sudo") {
		t.Errorf("error message %q does not identify the call", schemaErr.Error())
	}
}

func TestBuildCallModule_MissingFingerprint(t *testing.T) {
	meta := &metadata.Metadata{
		Pallets: []metadata.Pallet{
			{
				Name: "Balances",
				Calls: &metadata.CallGroup{
					Variants: []metadata.CallVariant{
						{Name: "transfer"}, // declared but no fingerprint
					},
				},
			},
		},
	}

	_, err := BuildCallModule(meta, &meta.Pallets[0])
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v, want *SchemaError", err)
	}
	if schemaErr.Pallet != "Balances" || schemaErr.Call != "transfer" {
		t.Errorf("error names %s.%s, want Balances.transfer", schemaErr.Pallet, schemaErr.Call)
	}
	if !strings.Contains(schemaErr.Reason, "fingerprint") {
		t.Errorf("Reason = %q, want fingerprint mention", schemaErr.Reason)
	}
}
