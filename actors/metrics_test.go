package actors_test

import (
	"context"
	"errors"
	"strings"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "github.com/zikhan/grains/actors"
	actors_mocks "github.com/zikhan/grains/mocks/actors"
)

var _ = Describe("Metrics", func() {
	var ctx context.Context
	var registry *prometheus.Registry
	var runtime *Runtime

	BeforeEach(func() {
		ctx = context.Background()
		registry = prometheus.NewRegistry()
		runtime = startRuntime(Options{Registerer: registry})
	})

	It("Counts activations and operations", func() {
		greeter, err := runtime.Greeter("metered")
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 2; i++ {
			_, err = greeter.SayHello(ctx, "World.")
			Expect(err).NotTo(HaveOccurred())
		}
		_, err = greeter.Ask(ctx, "not a greeter message")
		Expect(err).To(MatchError(ErrUnexpectedMessage))

		list, err := runtime.TodoList("metered")
		Expect(err).NotTo(HaveOccurred())
		_, err = list.Add(ctx, "count me")
		Expect(err).NotTo(HaveOccurred())

		expected := `
# HELP grains_activations_total Activations created, by actor kind.
# TYPE grains_activations_total counter
grains_activations_total{kind="greeter"} 1
grains_activations_total{kind="todolist"} 1
# HELP grains_operations_total Operations executed by activations.
# TYPE grains_operations_total counter
grains_operations_total{kind="greeter",operation="SayHello",outcome="ok"} 2
grains_operations_total{kind="greeter",operation="string",outcome="error"} 1
grains_operations_total{kind="todolist",operation="Add",outcome="ok"} 1
`
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(expected),
			"grains_activations_total", "grains_operations_total")).To(Succeed())
		count, err := testutil.GatherAndCount(registry, "grains_operation_duration_seconds")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("Leaves the registerer untouched when the store fails to start", func() {
		fresh := prometheus.NewRegistry()
		provider := actors_mocks.NewMockPersistenceProvider(mockCtrl)
		provider.EXPECT().Initialize(gomock.Any()).Return(errors.New("no hosts"))
		_, err := NewRuntime(ctx, Options{Persistence: provider, Registerer: fresh, Logger: logger})
		Expect(err).To(MatchError(ContainSubstring("initialize persistence")))

		startRuntime(Options{Registerer: fresh})
	})

	It("Closes the store when the registerer already holds the collectors", func() {
		provider := actors_mocks.NewMockPersistenceProvider(mockCtrl)
		provider.EXPECT().Initialize(gomock.Any()).Return(nil)
		provider.EXPECT().Close().Return(nil)
		_, err := NewRuntime(ctx, Options{Persistence: provider, Registerer: registry, Logger: logger})
		Expect(err).To(MatchError(ContainSubstring("register metrics")))
	})

	It("Refuses a registerer that already holds the collectors", func() {
		_, err := NewRuntime(ctx, Options{Registerer: registry})
		Expect(err).To(MatchError(ContainSubstring("register metrics")))
	})
})
