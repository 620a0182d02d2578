package tags

import "github.com/yohamta/donburi"

var (
	Item         = donburi.NewTag().SetName("Item")
	Instance     = donburi.NewTag().SetName("Instance")
	PendingSpawn = donburi.NewTag().SetName("PendingSpawn")
	SourceAnchor = donburi.NewTag().SetName("SourceAnchor")
	TargetAnchor = donburi.NewTag().SetName("TargetAnchor")
)
