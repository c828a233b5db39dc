package actors_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/zikhan/grains/actors"
)

var _ = Describe("Cassandra queries", func() {
	It("Binds values in statement order", func() {
		q := QueryFromMap("INSERT INTO t (a, b) VALUES (?, ?)", []string{"a", "b"},
			map[string]interface{}{"b": 2, "a": 1})
		Expect(q.Values).To(Equal([]interface{}{1, 2}))
		Expect(q.String()).To(Equal("INSERT INTO t (a, b) VALUES (?, ?) [1 2]"))
	})

	It("Panics on a missing value", func() {
		Expect(func() {
			QueryFromMap("SELECT ?", []string{"missing"}, map[string]interface{}{})
		}).To(Panic())
	})

	It("Requires hosts", func() {
		_, err := CassandraConnect(CassandraConfig{Keyspace: "grains"})
		Expect(err).To(MatchError(ContainSubstring("no hosts")))
	})

	It("Rejects an unknown consistency", func() {
		_, err := CassandraConnect(CassandraConfig{
			Hosts:       []string{"127.0.0.1"},
			Consistency: "sometimes",
		})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("CassandraPersistenceProvider", Ordered, func() {
	var ctx context.Context
	var provider *CassandraPersistenceProvider

	BeforeAll(func() {
		hosts := cassandraHosts()
		if hosts == nil {
			Skip("GRAINS_CASSANDRA_HOSTS not set")
		}
		ctx = context.Background()
		provider = NewCassandraPersistenceProvider(CassandraConfig{
			Hosts:       hosts,
			Keyspace:    "grains_test",
			Timeout:     10 * time.Second,
			Consistency: "one",
		})
		Expect(provider.Initialize(ctx)).To(Succeed())
		DeferCleanup(provider.Close)
	})

	It("Reports a record never written as absent", func() {
		id := Identity{Kind: KindTodoList, Key: fmt.Sprintf("absent-%d", time.Now().UnixNano())}
		data, exists, err := provider.ReadState(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
		Expect(data).To(BeNil())
	})

	It("Overwrites the snapshot on every write", func() {
		id := Identity{Kind: KindTodoList, Key: fmt.Sprintf("written-%d", time.Now().UnixNano())}
		Expect(provider.WriteState(ctx, id, []byte("first"))).To(Succeed())
		Expect(provider.WriteState(ctx, id, []byte("second"))).To(Succeed())
		data, exists, err := provider.ReadState(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
		Expect(data).To(Equal([]byte("second")))
	})

	It("Backs a TodoList", func() {
		key := fmt.Sprintf("list-%d", time.Now().UnixNano())
		runtime := startRuntime(Options{Persistence: &unclosable{provider}})
		list, err := runtime.TodoList(key)
		Expect(err).NotTo(HaveOccurred())
		_, err = list.Add(ctx, "stored remotely")
		Expect(err).NotTo(HaveOccurred())

		restarted := startRuntime(Options{Persistence: &unclosable{provider}})
		list, err = restarted.TodoList(key)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.GetAll(ctx)).To(Equal([]TodoItem{{Action: "stored remotely"}}))
	})
})

// unclosable keeps a shared provider open across runtime shutdowns.
type unclosable struct {
	PersistenceProvider
}

func (unclosable) Initialize(context.Context) error { return nil }

func (unclosable) Close() error { return nil }
