package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mulith/create-video-short/domain"
)

// SelectScenes filters a content item's scenes down to the renderable
// subset and returns it sorted ascending by scene number. A scene is
// renderable when at least one of its assets is completed and carries a
// URL. The returned slice is a copy; the item is never mutated.
func SelectScenes(item *domain.ContentItem) ([]domain.Scene, error) {
	if item == nil || item.Scenes == nil {
		return nil, fmt.Errorf("%w: content item has no scene collection", domain.ErrInvalidInput)
	}

	eligible := make([]domain.Scene, 0, len(item.Scenes))
	for _, scene := range item.Scenes {
		if _, ok := scene.EligibleAsset(); ok {
			eligible = append(eligible, scene)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: no scene has a completed image", domain.ErrNoRenderableScenes)
	}

	if strings.TrimSpace(item.Script) == "" {
		return nil, fmt.Errorf("%w: script is empty", domain.ErrInvalidScript)
	}

	// Scene numbers are unique per item, but keep the sort stable anyway.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].SceneNumber < eligible[j].SceneNumber
	})

	var offenders []string
	for _, scene := range eligible {
		if !sceneTimingValid(scene) {
			offenders = append(offenders, fmt.Sprintf("%d", scene.SceneNumber))
		}
	}
	if len(offenders) > 0 {
		return nil, fmt.Errorf("%w: %d scene(s) rejected (scene numbers %s)",
			domain.ErrInvalidSceneTiming, len(offenders), strings.Join(offenders, ", "))
	}

	return eligible, nil
}

func sceneTimingValid(scene domain.Scene) bool {
	asset, ok := scene.EligibleAsset()
	if !ok || asset.URL == "" {
		return false
	}
	return scene.StartTimeSeconds >= 0 && scene.EndTimeSeconds > scene.StartTimeSeconds
}
