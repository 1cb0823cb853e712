package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule mounts its routes on /api/v1.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Modules may implement prioritizer to control mount order (lower first).
// The default is 100.
type prioritizer interface{ Priority() int }

// MountAPI mounts mods in priority order, stable for equal priorities.
func MountAPI(api *gin.RouterGroup, mods ...APIModule) {
	mods = append([]APIModule(nil), mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
