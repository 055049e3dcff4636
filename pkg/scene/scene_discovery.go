package scene

import (
	"sort"
	"strings"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Random      bool   `json:"random"`      // Whether the seed changes the scene
}

var builtInScenes = []SceneInfo{
	{
		ID:          "final",
		Description: "Three large spheres among a field of small random spheres with motion blur",
		Random:      true,
	},
	{
		ID:          "basic",
		Description: "Single sphere on a ground sphere, shaded by surface normal",
	},
	{
		ID:          "materials",
		Description: "Glass bubble, diffuse and fuzzy metal spheres side by side",
	},
	{
		ID:          "sphere-grid",
		Description: "10x10 grid of rainbow-colored metallic spheres",
	},
}

// ListScenes returns every built-in scene sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	for i, info := range builtInScenes {
		info.DisplayName = titleCase(info.ID)
		scenes[i] = info
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
