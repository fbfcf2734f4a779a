package golang

import "testing"

func TestParamName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"dest", "dest"},
		{"call_hash", "call_hash"},
		{"type", "type_"},
		{"func", "func_"},
		{"api", "api_"},
		{"call", "call_"},
		{"err", "err_"},
		{"9lives", "_9lives"},
		{"", "_"},
		{"with-dash", "with_dash"},
	}
	for _, tt := range tests {
		if got := paramName(tt.name); got != tt.want {
			t.Errorf("paramName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"dest", "Dest"},
		{"call_hash", "CallHash"},
		{"type", "Type"},
		{"new_free", "NewFree"},
	}
	for _, tt := range tests {
		if got := fieldName(tt.name); got != tt.want {
			t.Errorf("fieldName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"transfer", "Transfer"},
		{"force_transfer", "ForceTransfer"},
		{"set_balance", "SetBalance"},
	}
	for _, tt := range tests {
		if got := exportedName(tt.name); got != tt.want {
			t.Errorf("exportedName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
