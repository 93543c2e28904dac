package multipart

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reassembler", func() {
	var (
		r   *Reassembler
		now time.Time
	)

	BeforeEach(func() {
		now = time.Unix(1_700_000_000, 0)
		r = NewReassembler(WithTimeout(30 * time.Second))
	})

	It("reports Incomplete until every part arrives, then Complete exactly once", func() {
		parts := []Packet{
			{GroupID: "g1", PartNumber: 1, TotalParts: 3, IsText: true, Message: "ab"},
			{GroupID: "g1", PartNumber: 2, TotalParts: 3, IsText: true, Message: "cd"},
			{GroupID: "g1", PartNumber: 3, TotalParts: 3, IsText: true, Message: "ef"},
		}

		o1 := r.Update(parts[0], now)
		Expect(o1.Kind).To(Equal(Incomplete))

		o2 := r.Update(parts[1], now)
		Expect(o2.Kind).To(Equal(Incomplete))

		o3 := r.Update(parts[2], now)
		Expect(o3.Kind).To(Equal(Complete))
		Expect(o3.IsText).To(BeTrue())
		Expect(o3.Text).To(Equal("abcdef"))
	})

	It("completes correctly when parts arrive out of order", func() {
		r.Update(Packet{GroupID: "g2", PartNumber: 3, TotalParts: 3, IsText: true, Message: "ghi"}, now)
		r.Update(Packet{GroupID: "g2", PartNumber: 1, TotalParts: 3, IsText: true, Message: "abc"}, now)
		o := r.Update(Packet{GroupID: "g2", PartNumber: 2, TotalParts: 3, IsText: true, Message: "def"}, now)

		Expect(o.Kind).To(Equal(Complete))
		Expect(o.Text).To(Equal("abcdefghi"))
	})

	It("rejects a part whose total disagrees with the slot", func() {
		r.Update(Packet{GroupID: "g3", PartNumber: 1, TotalParts: 2, IsText: true, Message: "a"}, now)
		o := r.Update(Packet{GroupID: "g3", PartNumber: 2, TotalParts: 3, IsText: true, Message: "b"}, now)

		Expect(o.Kind).To(Equal(Rejected))
		Expect(o.Reason).To(MatchError(ErrInconsistentTotal))
	})

	It("rejects a duplicate part number", func() {
		r.Update(Packet{GroupID: "g4", PartNumber: 1, TotalParts: 2, IsText: true, Message: "a"}, now)
		o := r.Update(Packet{GroupID: "g4", PartNumber: 1, TotalParts: 2, IsText: true, Message: "a-again"}, now)

		Expect(o.Kind).To(Equal(Rejected))
		Expect(o.Reason).To(MatchError(ErrDuplicatePart))
	})

	It("expires a slot after the timeout and orphans a later straggler", func() {
		r.Update(Packet{GroupID: "g5", PartNumber: 1, TotalParts: 3, IsText: true, Message: "a"}, now)
		r.Update(Packet{GroupID: "g5", PartNumber: 2, TotalParts: 3, IsText: true, Message: "b"}, now)

		later := now.Add(31 * time.Second)
		o := r.Update(Packet{GroupID: "g5", PartNumber: 3, TotalParts: 3, IsText: true, Message: "c"}, later)

		Expect(o.Kind).To(Equal(Rejected))
		Expect(o.Reason).To(MatchError(ErrOrphaned))
	})

	It("evicts the oldest slot once the in-flight byte budget is exceeded", func() {
		r = NewReassembler(WithMaxInFlightBytes(10))

		o1 := r.Update(Packet{GroupID: "old", PartNumber: 1, TotalParts: 2, IsText: true, Message: "12345"}, now)
		Expect(o1.Kind).To(Equal(Incomplete))

		// Pushes the global budget over the cap; "old" is the oldest slot
		// and gets evicted to make room, while "new" itself is unaffected.
		o2 := r.Update(Packet{GroupID: "new", PartNumber: 1, TotalParts: 2, IsText: true, Message: "1234567890"}, now)
		Expect(o2.Kind).To(Equal(Incomplete))

		// "old" is now unknown; its surviving second part is rejected as
		// orphaned rather than silently restarting the slot.
		o3 := r.Update(Packet{GroupID: "old", PartNumber: 2, TotalParts: 2, IsText: true, Message: "67890"}, now)
		Expect(o3.Kind).To(Equal(Rejected))
		Expect(o3.Reason).To(MatchError(ErrOrphaned))
	})

	It("reports Evicted for a packet that overflows the budget with no older slot to sacrifice", func() {
		r = NewReassembler(WithMaxInFlightBytes(4))

		o := r.Update(Packet{GroupID: "solo", PartNumber: 1, TotalParts: 2, IsText: true, Message: "way too big"}, now)
		Expect(o.Kind).To(Equal(Rejected))
		Expect(o.Reason).To(MatchError(ErrEvicted))
	})

	It("drops a slot on Cancel without ever reporting Complete for it", func() {
		r.Update(Packet{GroupID: "g6", PartNumber: 1, TotalParts: 2, IsText: true, Message: "a"}, now)
		r.Cancel("g6")

		o := r.Update(Packet{GroupID: "g6", PartNumber: 2, TotalParts: 2, IsText: true, Message: "b"}, now)
		Expect(o.Kind).To(Equal(Rejected))
		Expect(o.Reason).To(MatchError(ErrOrphaned))
	})

	It("reassembles binary payloads byte-for-byte", func() {
		r.Update(Packet{GroupID: "g7", PartNumber: 1, TotalParts: 2, Data: []byte{0x01, 0x02}}, now)
		o := r.Update(Packet{GroupID: "g7", PartNumber: 2, TotalParts: 2, Data: []byte{0x03, 0x04}}, now)

		Expect(o.Kind).To(Equal(Complete))
		Expect(o.IsText).To(BeFalse())
		Expect(o.Data).To(Equal([]byte{0x01, 0x02, 0x03, 0x04}))
	})
})
