package component

// ActorTag records which prefab kind spawned an entity.
type ActorTag struct {
	Kind string
}

var ActorTagComponent = New[ActorTag]()
