package actors_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/zikhan/grains/actors"
)

var _ = Describe("Identity", func() {
	It("Is value-equal on kind and key", func() {
		a, err := NewIdentity(KindTodoList, "user1")
		Expect(err).NotTo(HaveOccurred())
		b, err := NewIdentity(KindTodoList, "user1")
		Expect(err).NotTo(HaveOccurred())
		Expect(a == b).To(BeTrue())
		Expect(a).NotTo(Equal(Identity{Kind: KindGreeter, Key: "user1"}))
		Expect(a.String()).To(Equal("todolist/user1"))
	})

	DescribeTable("Rejects invalid identities",
		func(kind Kind, key string) {
			_, err := NewIdentity(kind, key)
			Expect(err).To(MatchError(ErrInvalidIdentity))
		},
		Entry("empty key", KindGreeter, ""),
		Entry("zero kind", Kind(0), "test"),
		Entry("unknown kind", Kind(42), "test"),
	)

	It("Parses kind names", func() {
		kind, err := ParseKind("Greeter")
		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(KindGreeter))
		kind, err = ParseKind("todolist")
		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(KindTodoList))
		_, err = ParseKind("mailbox")
		Expect(err).To(MatchError(ErrInvalidIdentity))
		Expect(Kind(9).String()).To(Equal("kind(9)"))
	})
})
