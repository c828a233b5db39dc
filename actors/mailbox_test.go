package actors_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/atomic"

	. "github.com/zikhan/grains/actors"
)

var _ = Describe("Mailbox", func() {
	var mailbox *Mailbox

	BeforeEach(func() {
		mailbox = NewMailbox(4)
		DeferCleanup(mailbox.Stop)
	})

	Context("Concurrent submitters", func() {
		It("Never runs two items at once", func() {
			var inFlight, maxInFlight atomic.Int32
			mailbox.Start(func(_ context.Context, message interface{}) (interface{}, error) {
				current := inFlight.Inc()
				for {
					seen := maxInFlight.Load()
					if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
						break
					}
				}
				time.Sleep(100 * time.Microsecond)
				inFlight.Dec()
				return message.(int) * 2, nil
			})

			const submitters = 50
			var wg sync.WaitGroup
			results := make([]interface{}, submitters)
			for i := 0; i < submitters; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					result, err := mailbox.Submit(context.Background(), i)
					Expect(err).NotTo(HaveOccurred())
					results[i] = result
				}(i)
			}
			wg.Wait()

			Expect(maxInFlight.Load()).To(Equal(int32(1)))
			Expect(mailbox.Processed()).To(Equal(uint64(submitters)))
			for i, result := range results {
				Expect(result).To(Equal(i * 2))
			}
		})
	})

	Context("Submitter gives up", func() {
		It("Skips the item and reports the context error", func() {
			release := make(chan struct{})
			var ran atomic.Int32
			mailbox.Start(func(context.Context, interface{}) (interface{}, error) {
				ran.Inc()
				<-release
				return nil, nil
			})

			first := make(chan error, 1)
			go func() {
				_, err := mailbox.Submit(context.Background(), "first")
				first <- err
			}()
			Eventually(ran.Load).Should(Equal(int32(1)))

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			_, err := mailbox.Submit(ctx, "second")
			Expect(err).To(MatchError(context.DeadlineExceeded))

			close(release)
			Eventually(first).Should(Receive(BeNil()))
			Eventually(mailbox.Len).Should(BeZero())
			Consistently(ran.Load).Should(Equal(int32(1)))
		})
	})

	Context("Stopped", func() {
		It("Rejects new items", func() {
			mailbox.Start(func(context.Context, interface{}) (interface{}, error) {
				return nil, nil
			})
			mailbox.Stop()
			_, err := mailbox.Submit(context.Background(), "late")
			Expect(err).To(MatchError(ErrActivationStopped))
		})

		It("Fails items still queued", func() {
			release := make(chan struct{})
			started := make(chan struct{})
			mailbox.Start(func(context.Context, interface{}) (interface{}, error) {
				close(started)
				<-release
				return "done", nil
			})

			first := make(chan error, 1)
			go func() {
				_, err := mailbox.Submit(context.Background(), "first")
				first <- err
			}()
			<-started
			queued := make(chan error, 1)
			go func() {
				_, err := mailbox.Submit(context.Background(), "queued")
				queued <- err
			}()
			Eventually(mailbox.Len).Should(Equal(1))

			stopped := make(chan struct{})
			go func() {
				mailbox.Stop()
				close(stopped)
			}()
			Consistently(stopped).ShouldNot(BeClosed())
			close(release)

			Eventually(stopped).Should(BeClosed())
			Eventually(first).Should(Receive(BeNil()))
			Eventually(queued).Should(Receive(MatchError(ErrActivationStopped)))
		})

		It("Can be stopped before it starts", func() {
			mailbox.Stop()
			_, err := mailbox.Submit(context.Background(), "never")
			Expect(err).To(MatchError(ErrActivationStopped))
		})
	})
})
