package mapping

import (
	"sort"
	"strings"

	"extension-binder/internal/analyze"
)

// ResolveTypeID resolves a type ID string like:
// - "store.USPrice" (short)
// - "extension-binder/store.USPrice" (full)
// - "USPrice" (name only).
func ResolveTypeID(typeIDStr string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil {
		return nil
	}

	// Name-only: best-effort match by type name.
	if !strings.Contains(typeIDStr, ".") {
		name := typeIDStr
		if name == "" {
			return nil
		}

		for _, id := range sortedIDs(graph) {
			if id.Name == name {
				return graph.Types[id]
			}
		}

		return nil
	}

	lastDot := strings.LastIndex(typeIDStr, ".")

	pkgStr := typeIDStr[:lastDot]

	name := typeIDStr[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil
	}

	// 1) exact match (for fully qualified import path)
	if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
		return t
	}

	// 2) suffix match (for short forms like "store.USPrice" vs "extension-binder/store.USPrice")
	for _, id := range sortedIDs(graph) {
		if id.Name != name {
			continue
		}

		if id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return graph.Types[id]
		}
	}

	return nil
}

// sortedIDs returns the graph's type IDs in a stable order so that ambiguous
// short names always resolve the same way.
func sortedIDs(graph *analyze.TypeGraph) []analyze.TypeID {
	ids := make([]analyze.TypeID, 0, len(graph.Types))
	for id := range graph.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// typeNames returns the short names of all struct types in the graph.
func typeNames(graph *analyze.TypeGraph) []string {
	var names []string
	for _, id := range sortedIDs(graph) {
		if graph.Types[id].Kind == analyze.TypeKindStruct {
			names = append(names, id.Short())
		}
	}

	return names
}
