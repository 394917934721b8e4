package style

import "stylec/atom"

// CollectAtoms adds every interned string referenced by attrs to set. A
// persisted sheet has to carry these so a reader can restore the text.
func CollectAtoms(set atom.Set, attrs ...Attribute) {
	for _, a := range attrs {
		if a.Reset {
			continue
		}
		switch v := a.Value.(type) {
		case Text:
			set.Add(atom.Atom(v))
		case AnimationName:
			for _, n := range v.Names {
				set.Add(atom.Atom(n))
			}
		case MaskImage:
			if v.Kind == MaskPath {
				set.Add(atom.Atom(v.Path))
			}
		case TextOverflow:
			set.Add(atom.Atom(v.Custom))
		}
	}
}
