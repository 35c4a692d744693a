package bedrock

import (
	"fmt"
	"strings"
)

const DefaultNamespace = "minecraft"

// ResourceLocation is a namespaced identifier like minecraft:pig
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseResourceLocation splits an identifier on its first colon; identifiers without one are in the minecraft namespace
func ParseResourceLocation(s string) (ResourceLocation, error) {
	s = strings.TrimSpace(s)
	loc := ResourceLocation{Namespace: DefaultNamespace, Path: s}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		loc.Path = s[i+1:]
		if i > 0 {
			loc.Namespace = s[:i]
		}
	}
	if len(loc.Path) == 0 {
		return ResourceLocation{}, fmt.Errorf("invalid resource location %q", s)
	}
	return loc, nil
}

func (l ResourceLocation) String() string {
	return l.Namespace + ":" + l.Path
}
