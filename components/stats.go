package components

import "github.com/yohamta/donburi"

// BurstStatsData is the externally observable aggregate over all live
// instances, recomputed after every registry mutation. Singleton.
type BurstStatsData struct {
	Total     int // sum of instance target counts
	Completed int // sum of instance completed counts
	Reaching  int // sum of instance reaching counts

	IsAnimating      bool // any instance live
	IsReachingTarget bool // any item currently past its threshold

	Progress float64 // Completed/Total, 0 when Total is 0

	DebugInfo string
}

var BurstStats = donburi.NewComponentType[BurstStatsData]()
