package actors

import (
	"context"
	"fmt"
)

type SayHello struct {
	Greeting string
}

type WhisperTo struct {
	Message string
	Target  string
}

// Greeter is stateless. It answers greetings with its own key and can relay
// a greeting through another greeter.
type Greeter struct{}

func (g *Greeter) OnActivate(ActorContext) error {
	return nil
}

func (g *Greeter) OnDeactivate(ActorContext) {
}

func (g *Greeter) Receive(ctx ActorContext) (interface{}, error) {
	switch message := ctx.Message().(type) {
	case SayHello:
		return g.sayHello(ctx, message.Greeting), nil
	case WhisperTo:
		return nil, g.whisperTo(ctx, message.Message, message.Target)
	default:
		return nil, fmt.Errorf("%w: greeter got %T", ErrUnexpectedMessage, message)
	}
}

func (g *Greeter) sayHello(ctx ActorContext, greeting string) string {
	return fmt.Sprintf("From %s: Hello, %s", ctx.Self().Key, greeting)
}

func (g *Greeter) whisperTo(ctx ActorContext, message string, target string) error {
	targetID := Identity{Kind: KindGreeter, Key: target}
	ref, err := ctx.ActorOf(KindGreeter, target)
	if err != nil {
		return &DispatchError{From: ctx.Self(), To: targetID, Err: err}
	}
	result, err := (&GreeterRef{ActorRef: ref}).SayHello(ctx.Context(), message)
	if err != nil {
		return &DispatchError{From: ctx.Self(), To: targetID, Err: err}
	}
	ctx.Sink().Observe(ctx.Self(), "Whisper: "+result)
	return nil
}

type GreeterRef struct {
	ActorRef
}

func (ref *GreeterRef) SayHello(ctx context.Context, greeting string) (string, error) {
	reply, err := ref.Ask(ctx, SayHello{Greeting: greeting})
	if err != nil {
		return "", err
	}
	result, ok := reply.(string)
	if !ok {
		return "", unexpectedReply(ref.Identity(), reply)
	}
	return result, nil
}

// WhisperTo asks this greeter to greet target with message and report the
// answer to the runtime's sink.
func (ref *GreeterRef) WhisperTo(ctx context.Context, message string, target string) error {
	_, err := ref.Ask(ctx, WhisperTo{Message: message, Target: target})
	return err
}
