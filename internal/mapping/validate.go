package mapping

import (
	"fmt"

	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/internal/common"
	"extension-binder/internal/diagnostic"
	"extension-binder/internal/match"
)

// Diagnostic codes reported by Validate and ValidateAgainst.
const (
	CodeFileIsNil          = "file_is_nil"
	CodeGraphIsNil         = "graph_is_nil"
	CodeUnsupportedVersion = "unsupported_version"
	CodeMissingType        = "missing_type"
	CodeDuplicateType      = "duplicate_type"
	CodeMissingField       = "missing_field"
	CodeDuplicateField     = "duplicate_field"
	CodeInvalidRootName    = "invalid_root_name"
	CodeInvalidElementName = "invalid_element_name"
	CodeElementConflict    = "element_conflict"
	CodeTypeNotFound       = "type_not_found"
	CodeTypeNotStruct      = "type_not_struct"
	CodeFieldNotFound      = "field_not_found"
	CodeTransientField     = "transient_field"
	CodeNilCarrier         = "nil_carrier"
)

const maxSuggestions = 3

// Validate checks the file on its own. Element name conflicts are detected
// here already since names are known without type information.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeFileIsNil, "extension file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "", "")
	}

	seenTypes := map[string]struct{}{}

	for i := range f.Types {
		tc := &f.Types[i]

		if tc.Type == "" {
			res.AddError(CodeMissingType, fmt.Sprintf("types[%d] has no type", i), "", "")
			continue
		}

		if _, ok := seenTypes[tc.Type]; ok {
			res.AddError(CodeDuplicateType, fmt.Sprintf("duplicate type %q", tc.Type), tc.Type, "")
			continue
		}

		seenTypes[tc.Type] = struct{}{}

		validateTypeConfig(res, tc)
	}

	return res
}

func validateTypeConfig(res *diagnostic.Diagnostics, tc *binding.TypeConfig) {
	if tc.Root != "" && !common.IsNCName(tc.Root) {
		res.AddError(CodeInvalidRootName, fmt.Sprintf("root name %q is not a valid XML name", tc.Root), tc.Type, "")
	}

	seenFields := map[string]struct{}{}
	elements := map[string]string{} // element name -> field

	for i := range tc.Fields {
		fc := &tc.Fields[i]

		if fc.Field == "" {
			res.AddError(CodeMissingField, fmt.Sprintf("fields[%d] has no field", i), tc.Type, "")
			continue
		}

		if _, ok := seenFields[fc.Field]; ok {
			res.AddError(CodeDuplicateField, fmt.Sprintf("field %q configured twice", fc.Field), tc.Type, fc.Field)
			continue
		}

		seenFields[fc.Field] = struct{}{}

		name := ElementName(fc)
		if !common.IsNCName(name) {
			res.AddError(CodeInvalidElementName,
				fmt.Sprintf("element name %q is not a valid XML name", name), tc.Type, fc.Field)

			continue
		}

		if first, ok := elements[name]; ok {
			res.AddError(CodeElementConflict,
				fmt.Sprintf("fields %q and %q both map to element %q", first, fc.Field, name), tc.Type, fc.Field)

			continue
		}

		elements[name] = fc.Field
	}
}

// ValidateAgainst runs Validate and then checks every configured type and
// field against the loaded type graph.
func ValidateAgainst(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := Validate(f)
	if f == nil {
		return res
	}

	if graph == nil {
		res.AddError(CodeGraphIsNil, "type graph is nil", "", "")
		return res
	}

	for i := range f.Types {
		tc := &f.Types[i]
		if tc.Type == "" {
			continue
		}

		info := ResolveTypeID(tc.Type, graph)
		if info == nil {
			res.AddError(CodeTypeNotFound, fmt.Sprintf("type %q not found", tc.Type), tc.Type, "",
				match.Suggest(tc.Type, typeNames(graph), maxSuggestions)...)

			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			res.AddError(CodeTypeNotStruct,
				fmt.Sprintf("type %q is a %s, not a struct", tc.Type, info.Kind), tc.Type, "")

			continue
		}

		validateFields(res, tc, info)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, tc *binding.TypeConfig, info *analyze.TypeInfo) {
	fields := make(map[string]*analyze.FieldInfo, len(info.Fields))
	names := make([]string, 0, len(info.Fields))

	for i := range info.Fields {
		fi := &info.Fields[i]
		fields[fi.Name] = fi
		names = append(names, fi.Name)
	}

	for i := range tc.Fields {
		fc := &tc.Fields[i]
		if fc.Field == "" {
			continue
		}

		fi, ok := fields[fc.Field]
		if !ok {
			res.AddError(CodeFieldNotFound, fmt.Sprintf("field %q not found", fc.Field), tc.Type, fc.Field,
				match.Suggest(fc.Field, names, maxSuggestions)...)

			continue
		}

		if fi.Transient() {
			res.AddWarning(CodeTransientField, "field is transient and will not be mapped", tc.Type, fc.Field)
			continue
		}

		if fc.Nillable && fi.Type.Kind != analyze.TypeKindPointer {
			res.AddError(CodeNilCarrier,
				fmt.Sprintf("nillable element %q needs a pointer field", ElementName(fc)), tc.Type, fc.Field)
		}
	}
}
