package config

// How the scope of a compiled stylesheet is derived. Scopes keep animations
// with the same name apart when several sources are merged.
// ENUM(path, content, fixed)
type ScopeMode int

// Ion encoding of produced containers.
// ENUM(binary, text)
type ContainerFormat int

// Representation used by the dump command.
// ENUM(yaml, ion, xml)
type DumpFormat int

func (f ContainerFormat) Ext() string {
	switch f {
	case ContainerFormatBinary:
		return ".ion"
	case ContainerFormatText:
		return ".ion.txt"
	default:
		// this should never happen
		panic("unsupported container format requested")
	}
}

func (f DumpFormat) Ext() string {
	switch f {
	case DumpFormatYaml:
		return ".yaml"
	case DumpFormatIon:
		return ".ion.txt"
	case DumpFormatXml:
		return ".xml"
	default:
		panic("unsupported dump format requested")
	}
}
