package actors

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindGreeter Kind = iota + 1
	KindTodoList
)

var kindNames = map[Kind]string{
	KindGreeter:  "greeter",
	KindTodoList: "todolist",
}

func (k Kind) String() string {
	name, found := kindNames[k]
	if !found {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return name
}

func (k Kind) valid() bool {
	_, found := kindNames[k]
	return found
}

// ParseKind accepts the names produced by Kind.String, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if strings.EqualFold(kindName, name) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidIdentity, name)
}

// Identity names an actor independently of whether it is activated. Two
// identities address the same activation iff they compare equal.
type Identity struct {
	Kind Kind
	Key  string
}

func NewIdentity(kind Kind, key string) (Identity, error) {
	id := Identity{Kind: kind, Key: key}
	return id, id.Validate()
}

func (id Identity) Validate() error {
	if !id.Kind.valid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidIdentity, int(id.Kind))
	}
	if id.Key == "" {
		return fmt.Errorf("%w: empty key for %s", ErrInvalidIdentity, id.Kind)
	}
	return nil
}

func (id Identity) String() string {
	return id.Kind.String() + "/" + id.Key
}
