package actors

import (
	"context"
	"fmt"
)

// TodoItem values compare by Action; two equal items are the same item.
type TodoItem struct {
	Action string
}

func (item TodoItem) String() string {
	return fmt.Sprintf("TodoItem(%q)", item.Action)
}

type GetAll struct{}

type GetNext struct{}

type Add struct {
	Action string
}

type Remove struct {
	Item TodoItem
}

// TodoList keeps an ordered, duplicate-free list of items in its persistent
// state.
type TodoList struct {
	todos *PersistentState[[]TodoItem]
}

func (t *TodoList) OnActivate(ctx ActorContext) error {
	t.todos = NewPersistentState(ctx, todoListCodec)
	return t.todos.Read(ctx.Context())
}

func (t *TodoList) OnDeactivate(ActorContext) {
}

func (t *TodoList) Receive(ctx ActorContext) (interface{}, error) {
	switch message := ctx.Message().(type) {
	case GetAll:
		return t.snapshot(), nil
	case GetNext:
		return t.next(), nil
	case Add:
		return t.add(ctx, message.Action)
	case Remove:
		return t.remove(ctx, message.Item)
	default:
		return nil, fmt.Errorf("%w: todo list got %T", ErrUnexpectedMessage, message)
	}
}

// snapshot copies the list so callers never share memory with actor state.
func (t *TodoList) snapshot() []TodoItem {
	items := t.todos.State()
	out := make([]TodoItem, len(items))
	copy(out, items)
	return out
}

func (t *TodoList) next() *TodoItem {
	items := t.todos.State()
	if len(items) == 0 {
		return nil
	}
	item := items[0]
	return &item
}

func (t *TodoList) indexOf(item TodoItem) int {
	for i, existing := range t.todos.State() {
		if existing == item {
			return i
		}
	}
	return -1
}

func (t *TodoList) add(ctx ActorContext, action string) ([]TodoItem, error) {
	if !t.todos.RecordExists() {
		t.todos.SetState([]TodoItem{})
	}

	item := TodoItem{Action: action}
	if t.indexOf(item) >= 0 {
		return t.snapshot(), nil
	}

	t.todos.SetState(append(t.todos.State(), item))
	if err := t.todos.Write(ctx.Context()); err != nil {
		return nil, err
	}
	ctx.Sink().Observe(ctx.Self(), fmt.Sprintf("%s: Added Todo %s", ctx.Self().Key, item))
	return t.snapshot(), nil
}

func (t *TodoList) remove(ctx ActorContext, item TodoItem) ([]TodoItem, error) {
	if !t.todos.RecordExists() {
		return t.snapshot(), nil
	}

	if i := t.indexOf(item); i >= 0 {
		items := t.todos.State()
		t.todos.SetState(append(items[:i:i], items[i+1:]...))
	}
	if err := t.todos.Write(ctx.Context()); err != nil {
		return nil, err
	}
	ctx.Sink().Observe(ctx.Self(), fmt.Sprintf("%s: Removed Todo %s", ctx.Self().Key, item))
	return t.snapshot(), nil
}

type TodoListRef struct {
	ActorRef
}

func (ref *TodoListRef) items(reply interface{}, err error) ([]TodoItem, error) {
	if err != nil {
		return nil, err
	}
	items, ok := reply.([]TodoItem)
	if !ok {
		return nil, unexpectedReply(ref.Identity(), reply)
	}
	return items, nil
}

func (ref *TodoListRef) GetAll(ctx context.Context) ([]TodoItem, error) {
	return ref.items(ref.Ask(ctx, GetAll{}))
}

// GetNext returns the oldest item, or false if the list is empty.
func (ref *TodoListRef) GetNext(ctx context.Context) (TodoItem, bool, error) {
	reply, err := ref.Ask(ctx, GetNext{})
	if err != nil {
		return TodoItem{}, false, err
	}
	item, ok := reply.(*TodoItem)
	if !ok {
		return TodoItem{}, false, unexpectedReply(ref.Identity(), reply)
	}
	if item == nil {
		return TodoItem{}, false, nil
	}
	return *item, true, nil
}

func (ref *TodoListRef) Add(ctx context.Context, action string) ([]TodoItem, error) {
	return ref.items(ref.Ask(ctx, Add{Action: action}))
}

func (ref *TodoListRef) Remove(ctx context.Context, item TodoItem) ([]TodoItem, error) {
	return ref.items(ref.Ask(ctx, Remove{Item: item}))
}
