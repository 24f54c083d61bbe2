// Package gen generates explicit bindings for struct types.
//
// Generation uses github.com/dave/jennifer, which renders through go/format.
// The output declares, per struct type, a lazily built *binding.Class with
// typed accessors, so the runtime never falls back to reflection:
//
//	var (
//		addressClassOnce sync.Once
//		addressClass     *binding.Class
//	)
//
//	func AddressClass() *binding.Class
//
// Struct types reachable through fields are generated alongside when they live
// in the same package. Struct types of other packages are referenced through
// their own generated <Name>Class function.
package gen
