package lawdoc

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	if r.Len() == 0 {
		t.Fatal("DefaultRegistry() is empty")
	}

	for _, key := range []string{"client_name", "total_amount", "case_number", "contract_date", "firm_name"} {
		if !r.Contains(key) {
			t.Errorf("DefaultRegistry() missing %s", key)
		}
	}

	if got := r.Categories(); !slices.Equal(got, []Category{CategoryClient, CategoryCase, CategoryPayment, CategoryContract, CategoryFirm}) {
		t.Errorf("Categories() = %v", got)
	}

	v, ok := r.Lookup("client_name")
	if !ok || v.Category != CategoryClient || v.Label == "" {
		t.Errorf("Lookup(client_name) = %+v, %v", v, ok)
	}
}

func TestDefaultRegistry_FormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range DefaultRegistry().Variables() {
		got := ExtractPlaceholders(v.Placeholder())
		if !slices.Equal(got, []string{v.Key}) {
			t.Errorf("ExtractPlaceholders(%q) = %v, want [%s]", v.Placeholder(), got, v.Key)
		}
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    []ContractVariable
		wantErr error
	}{
		{
			name:    "duplicate key",
			vars:    []ContractVariable{{Key: "a", Category: CategoryCase}, {Key: "a", Category: CategoryFirm}},
			wantErr: ErrDuplicateVariable,
		},
		{
			name:    "key with dash",
			vars:    []ContractVariable{{Key: "client-name", Category: CategoryClient}},
			wantErr: ErrInvalidVariableKey,
		},
		{
			name:    "empty key",
			vars:    []ContractVariable{{Key: "", Category: CategoryClient}},
			wantErr: ErrInvalidVariableKey,
		},
		{
			name:    "unknown category",
			vars:    []ContractVariable{{Key: "a", Category: "court"}},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewRegistry(tt.vars...); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_VariablesIsACopy(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(ContractVariable{Key: "a", Label: "A", Category: CategoryCase})
	if err != nil {
		t.Fatal(err)
	}

	vars := r.Variables()
	vars[0].Label = "changed"

	if v, _ := r.Lookup("a"); v.Label != "A" {
		t.Errorf("registry mutated through Variables(): %q", v.Label)
	}
}

func TestRegistry_UnknownPlaceholders(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	got := r.UnknownPlaceholders("{{client_name}} {{foo}} {{bar}} {{foo}}")
	if !slices.Equal(got, []string{"foo", "bar"}) {
		t.Errorf("UnknownPlaceholders() = %v, want [foo bar]", got)
	}

	var empty *Registry
	if got := empty.UnknownPlaceholders("{{a}}"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("nil registry UnknownPlaceholders() = %v", got)
	}
	if empty.Len() != 0 || empty.Contains("a") {
		t.Error("nil registry should be empty")
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(
		ContractVariable{Key: "b", Category: CategoryFirm},
		ContractVariable{Key: "a", Category: CategoryClient},
		ContractVariable{Key: "c", Category: CategoryFirm},
	)
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	for _, v := range r.ByCategory(CategoryFirm) {
		keys = append(keys, v.Key)
	}
	if !slices.Equal(keys, []string{"b", "c"}) {
		t.Errorf("ByCategory(firm) = %v, want declaration order [b c]", keys)
	}
	if got := r.Categories(); !slices.Equal(got, []Category{CategoryClient, CategoryFirm}) {
		t.Errorf("Categories() = %v", got)
	}
}
