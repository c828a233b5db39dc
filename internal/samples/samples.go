// Package samples drives the runtime through the HelloWorld and
// UnderstandingState programs.
package samples

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zikhan/grains/actors"
)

// ActionsPerProducer is how many items each UnderstandingState producer adds.
const ActionsPerProducer = 100

// HelloWorld greets "test", prints the answer to out, then has "test" whisper
// to "whisper". The whispered greeting goes to the runtime's sink.
func HelloWorld(ctx context.Context, runtime *actors.Runtime, out io.Writer) error {
	test, err := runtime.Greeter("test")
	if err != nil {
		return err
	}

	result, err := test.SayHello(ctx, "World.")
	if err != nil {
		return fmt.Errorf("say hello: %w", err)
	}
	fmt.Fprintf(out, "result: %s\n", result)

	if err := test.WhisperTo(ctx, "Can you hear me?", "whisper"); err != nil {
		return fmt.Errorf("whisper: %w", err)
	}
	return nil
}

// UnderstandingState adds to user1's list, then races a producer and a
// consumer against each of user1 and user2 and prints both final lists.
func UnderstandingState(ctx context.Context, runtime *actors.Runtime, out io.Writer) error {
	user1, err := runtime.TodoList("user1")
	if err != nil {
		return err
	}
	user2, err := runtime.TodoList("user2")
	if err != nil {
		return err
	}

	if err := printList(ctx, out, user1); err != nil {
		return err
	}
	if _, err := user1.Add(ctx, "First action"); err != nil {
		return fmt.Errorf("add first action: %w", err)
	}
	if err := printList(ctx, out, user1); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, list := range []*actors.TodoListRef{user2, user1} {
		list := list
		g.Go(func() error {
			return AddActions(gctx, list, ActionsPerProducer)
		})
		g.Go(func() error {
			_, err := Drain(gctx, list)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(out, "user1")
	if err := printList(ctx, out, user1); err != nil {
		return err
	}
	fmt.Fprintln(out, "user2")
	return printList(ctx, out, user2)
}

// AddActions adds "action 0" through "action <count-1>" in order.
func AddActions(ctx context.Context, list *actors.TodoListRef, count int) error {
	for i := 0; i < count; i++ {
		if _, err := list.Add(ctx, fmt.Sprintf("action %d", i)); err != nil {
			return fmt.Errorf("add action %d to %s: %w", i, list.Identity(), err)
		}
	}
	return nil
}

// Drain removes the next item until the list is seen empty and returns the
// items it removed. A producer still running may leave items behind.
func Drain(ctx context.Context, list *actors.TodoListRef) ([]actors.TodoItem, error) {
	var removed []actors.TodoItem
	for {
		next, found, err := list.GetNext(ctx)
		if err != nil {
			return removed, err
		}
		if !found {
			return removed, nil
		}
		if _, err := list.Remove(ctx, next); err != nil {
			return removed, fmt.Errorf("remove %s from %s: %w", next, list.Identity(), err)
		}
		removed = append(removed, next)
	}
}

func printList(ctx context.Context, out io.Writer, list *actors.TodoListRef) error {
	items, err := list.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("get %s: %w", list.Identity(), err)
	}
	_, err = io.WriteString(out, FormatList(items))
	return err
}

// FormatList renders items as a "List:" header, one item per line and a
// trailing blank line.
func FormatList(items []actors.TodoItem) string {
	var b strings.Builder
	b.WriteString("List:\n")
	for _, item := range items {
		b.WriteString(item.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
