package actors

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// todoListCodec stores a list as a protobuf ListValue of action strings.
var todoListCodec = StateCodec[[]TodoItem]{
	Empty: func() []TodoItem {
		return []TodoItem{}
	},
	Marshal:   marshalTodoItems,
	Unmarshal: unmarshalTodoItems,
}

func marshalTodoItems(items []TodoItem) ([]byte, error) {
	values := make([]*structpb.Value, len(items))
	for i, item := range items {
		values[i] = structpb.NewStringValue(item.Action)
	}
	return proto.Marshal(&structpb.ListValue{Values: values})
}

func unmarshalTodoItems(data []byte) ([]TodoItem, error) {
	var list structpb.ListValue
	if err := proto.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	items := make([]TodoItem, 0, len(list.GetValues()))
	for _, value := range list.GetValues() {
		action, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("todo item encoded as %T, want string", value.GetKind())
		}
		items = append(items, TodoItem{Action: action.StringValue})
	}
	return items, nil
}
