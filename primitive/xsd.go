package primitive

// XSDNamespace is the namespace of the built-in schema datatypes.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

var xsdTypes = [...]string{
	KindInt:      "long",
	KindInt8:     "byte",
	KindInt16:    "short",
	KindInt32:    "int",
	KindInt64:    "long",
	KindUint:     "unsignedLong",
	KindUint8:    "unsignedByte",
	KindUint16:   "unsignedShort",
	KindUint32:   "unsignedInt",
	KindUint64:   "unsignedLong",
	KindFloat32:  "float",
	KindFloat64:  "double",
	KindBool:     "boolean",
	KindString:   "string",
	KindTime:     "dateTime",
	KindDuration: "duration",
	KindDecimal:  "decimal",
	KindDate:     "date",
	KindBytes:    "base64Binary",
}

// XSDType returns the local name of the built-in schema datatype the kind maps to,
// or an empty string for an invalid kind.
func (k KindEnum) XSDType() string {
	if !k.IsValid() {
		return ""
	}

	return xsdTypes[k]
}
