package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func field(name string, ext binding.Extension) binding.FieldConfig {
	return binding.FieldConfig{Field: name, Extension: ext}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		file  *File
		codes []string
	}{
		{
			name:  "nil file",
			file:  nil,
			codes: []string{CodeFileIsNil},
		},
		{
			name: "valid",
			file: &File{Version: "1", Types: []binding.TypeConfig{{
				Type:   "store.USPrice",
				Fields: []binding.FieldConfig{field("Price", binding.Extension{Name: "itemprice"}), field("Currency", binding.Extension{})},
			}}},
			codes: []string{},
		},
		{
			name:  "version",
			file:  &File{Version: "2"},
			codes: []string{CodeUnsupportedVersion},
		},
		{
			name:  "duplicate type",
			file:  &File{Version: "1", Types: []binding.TypeConfig{{Type: "A"}, {Type: "A"}, {}}},
			codes: []string{CodeDuplicateType, CodeMissingType},
		},
		{
			name: "explicit name collides with derived name",
			file: &File{Version: "1", Types: []binding.TypeConfig{{
				Type: "A",
				Fields: []binding.FieldConfig{
					field("Price", binding.Extension{}),
					field("Cost", binding.Extension{Name: "price"}),
				},
			}}},
			codes: []string{CodeElementConflict},
		},
		{
			name: "names are case sensitive",
			file: &File{Version: "1", Types: []binding.TypeConfig{{
				Type: "A",
				Fields: []binding.FieldConfig{
					field("Price", binding.Extension{}),
					field("Cost", binding.Extension{Name: "Price"}),
				},
			}}},
			codes: []string{},
		},
		{
			name: "bad names and fields",
			file: &File{Version: "1", Types: []binding.TypeConfig{{
				Type: "A",
				Root: "1st",
				Fields: []binding.FieldConfig{
					field("Price", binding.Extension{Name: "x:price"}),
					field("Price", binding.Extension{}),
					field("", binding.Extension{}),
				},
			}}},
			codes: []string{CodeInvalidRootName, CodeInvalidElementName, CodeDuplicateField, CodeMissingField},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.file)
			require.NotNil(t, res)
			assert.ElementsMatch(t, tt.codes, codes(res.Errors))
		})
	}
}

func TestValidateConflictMessage(t *testing.T) {
	res := Validate(&File{Version: "1", Types: []binding.TypeConfig{{
		Type: "store.USPrice",
		Fields: []binding.FieldConfig{
			field("Price", binding.Extension{Name: "amount"}),
			field("Amount", binding.Extension{}),
		},
	}}})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, `fields "Price" and "Amount" both map to element "amount"`, res.Errors[0].Message)
	assert.Equal(t, "store.USPrice", res.Errors[0].Type)
	assert.Equal(t, "Amount", res.Errors[0].Field)
}

func TestValidateAgainst(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("extension-binder/store")
	require.NoError(t, err)

	f := &File{Version: "1", Types: []binding.TypeConfig{
		{
			Type: "store.PurchaseOrder",
			Fields: []binding.FieldConfig{
				field("ShipTo", binding.Extension{}),
				field("Coment", binding.Extension{}),
				field("Cache", binding.Extension{}),
				field("Total", binding.Extension{Nillable: true}),
				field("BillTo", binding.Extension{Nillable: true}),
			},
		},
		{Type: "store.Adress"},
		{Type: "store.Status"},
		{Type: "USPrice"},
	}}

	res := ValidateAgainst(f, graph)

	assert.ElementsMatch(t,
		[]string{CodeFieldNotFound, CodeNilCarrier, CodeTypeNotFound, CodeTypeNotStruct},
		codes(res.Errors))
	assert.Equal(t, []string{CodeTransientField}, codes(res.Warnings))

	for _, d := range res.Errors {
		switch d.Code {
		case CodeFieldNotFound:
			assert.Equal(t, []string{"Comment"}, d.Suggestions)
		case CodeTypeNotFound:
			assert.Contains(t, d.Suggestions, "store.Address")
		case CodeNilCarrier:
			assert.Equal(t, "Total", d.Field)
		}
	}
}

func TestValidateAgainstNilGraph(t *testing.T) {
	res := ValidateAgainst(&File{Version: "1"}, nil)
	assert.Equal(t, []string{CodeGraphIsNil}, codes(res.Errors))
}
