package actors_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/zikhan/grains/actors"
	actors_mocks "github.com/zikhan/grains/mocks/actors"
)

var _ = Describe("Greeter", func() {
	var ctx context.Context
	var sink *ChannelSink
	var runtime *Runtime

	BeforeEach(func() {
		ctx = context.Background()
		sink = &ChannelSink{Output: make(chan Observation, 16)}
		runtime = startRuntime(Options{Sink: sink})
	})

	greeter := func(key string) *GreeterRef {
		ref, err := runtime.Greeter(key)
		Expect(err).NotTo(HaveOccurred())
		return ref
	}

	Describe("SayHello", func() {
		It("Embeds its own key", func() {
			result, err := greeter("test").SayHello(ctx, "World.")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal("From test: Hello, World."))
			Expect(drainObservations(sink)).To(BeEmpty())
		})
	})

	Describe("WhisperTo", func() {
		It("Forwards to another greeter, activating it on demand", func() {
			Expect(runtime.ActivationCount()).To(BeZero())
			err := greeter("test").WhisperTo(ctx, "Can you hear me?", "whisper")
			Expect(err).NotTo(HaveOccurred())

			Eventually(sink.Output).Should(Receive(Equal(Observation{
				Source: Identity{Kind: KindGreeter, Key: "test"},
				Line:   "Whisper: From whisper: Hello, Can you hear me?",
			})))
			Expect(runtime.ActivationCount()).To(Equal(2))
		})

		It("Reaches an activation that already exists", func() {
			_, err := greeter("whisper").SayHello(ctx, "first")
			Expect(err).NotTo(HaveOccurred())
			Expect(greeter("test").WhisperTo(ctx, "again", "whisper")).To(Succeed())
			Expect(drainObservations(sink)).To(ConsistOf("Whisper: From whisper: Hello, again"))
			Expect(runtime.ActivationCount()).To(Equal(2))
		})

		It("Refuses to wait on itself", func() {
			err := greeter("echo").WhisperTo(ctx, "hello?", "echo")
			Expect(err).To(MatchError(ErrReentrantCall))
			var dispatchErr *DispatchError
			Expect(errors.As(err, &dispatchErr)).To(BeTrue())
			Expect(dispatchErr.To).To(Equal(Identity{Kind: KindGreeter, Key: "echo"}))
			Expect(drainObservations(sink)).To(BeEmpty())

			result, err := greeter("echo").SayHello(ctx, "still here")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal("From echo: Hello, still here"))
		})

		It("Propagates an invalid target", func() {
			err := greeter("test").WhisperTo(ctx, "anyone?", "")
			Expect(err).To(MatchError(ErrInvalidIdentity))
			var dispatchErr *DispatchError
			Expect(errors.As(err, &dispatchErr)).To(BeTrue())
			Expect(dispatchErr.From).To(Equal(Identity{Kind: KindGreeter, Key: "test"}))
		})
	})

	Describe("Sink", func() {
		It("Is called once per whisper", func() {
			mockSink := actors_mocks.NewMockSink(mockCtrl)
			mockSink.EXPECT().
				Observe(Identity{Kind: KindGreeter, Key: "a"}, "Whisper: From b: Hello, psst").
				Times(1)
			mockRuntime := startRuntime(Options{Sink: mockSink})
			ref, err := mockRuntime.Greeter("a")
			Expect(err).NotTo(HaveOccurred())
			Expect(ref.WhisperTo(ctx, "psst", "b")).To(Succeed())
		})

		It("Can be a function", func() {
			lines := make(chan string, 1)
			fnRuntime := startRuntime(Options{Sink: SinkFunc(func(_ Identity, line string) {
				lines <- line
			})})
			ref, err := fnRuntime.Greeter("a")
			Expect(err).NotTo(HaveOccurred())
			Expect(ref.WhisperTo(ctx, "hi", "c")).To(Succeed())
			Expect(lines).To(Receive(Equal("Whisper: From c: Hello, hi")))
		})
	})

	It("Keeps typed replies", func() {
		ref, err := runtime.GetActorReference(KindGreeter, "raw")
		Expect(err).NotTo(HaveOccurred())
		reply, err := ref.Ask(ctx, SayHello{Greeting: "raw"})
		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(BeAssignableToTypeOf(""))
		_, err = ref.Ask(ctx, GetAll{})
		Expect(err).To(MatchError(ErrUnexpectedMessage))
	})
})
