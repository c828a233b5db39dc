package actors

// Actor is the behavior hosted by one activation. Every method is called from
// the activation's mailbox goroutine only, so implementations keep their
// state without locks.
type Actor interface {
	OnActivate(ActorContext) error
	OnDeactivate(ActorContext)
	Receive(ActorContext) (interface{}, error)
}

// ActorConstructor builds a fresh, zero-state actor for an identity.
type ActorConstructor func(Identity) Actor

var constructors = map[Kind]ActorConstructor{
	KindGreeter: func(Identity) Actor {
		return &Greeter{}
	},
	KindTodoList: func(Identity) Actor {
		return &TodoList{}
	},
}
