package turing_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/turingmul/internal/turing"
)

func run(a, b int) *turing.Machine {
	m, err := turing.New(a, b)
	Expect(err).NotTo(HaveOccurred())
	out, err := m.Run(context.Background())
	Expect(err).NotTo(HaveOccurred())
	Expect(out).To(Equal(turing.Halted))
	return m
}

func product(a, b int) int {
	p, err := run(a, b).Result()
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("Machine", func() {
	It("multiplies every pair in a small grid", func() {
		for a := 0; a <= 7; a++ {
			for b := 0; b <= 7; b++ {
				Expect(product(a, b)).To(Equal(a*b), "%d x %d", a, b)
			}
		}
	})

	DescribeTable("concrete scenarios",
		func(a, b, want int) {
			Expect(product(a, b)).To(Equal(want))
		},
		Entry("0 x 0", 0, 0, 0),
		Entry("3 x 4", 3, 4, 12),
		Entry("1 x 0", 1, 0, 0),
		Entry("5 x 1", 5, 1, 5),
		Entry("9 x 6", 9, 6, 54),
	)

	It("leaves exactly the product right of the delimiter", func() {
		m := run(3, 4)
		marks := 0
		seen := false
		for _, c := range m.Snapshot() {
			if c.Symbol == turing.Delimiter {
				seen = true
				continue
			}
			if seen && c.Symbol == turing.Mark {
				marks++
			}
		}
		Expect(seen).To(BeTrue())
		Expect(marks).To(Equal(12))
	})

	Context("zero and identity", func() {
		It("yields zero when either operand is zero", func() {
			for n := 0; n <= 6; n++ {
				Expect(product(0, n)).To(BeZero())
				Expect(product(n, 0)).To(BeZero())
			}
		})

		It("returns the other operand when one is one", func() {
			for n := 0; n <= 6; n++ {
				Expect(product(1, n)).To(Equal(n))
				Expect(product(n, 1)).To(Equal(n))
			}
		})
	})

	It("is deterministic", func() {
		first, second := run(4, 3), run(4, 3)
		Expect(first.Steps()).To(Equal(second.Steps()))
		Expect(first.Snapshot()).To(Equal(second.Snapshot()))
		Expect(first.State()).To(Equal(second.State()))
	})

	It("counts exactly one per step until halted", func() {
		m, err := turing.New(2, 3)
		Expect(err).NotTo(HaveOccurred())
		for !m.Halted() {
			before := m.Steps()
			_, err := m.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Steps()).To(Equal(before + 1))
		}
		halted := m.Steps()
		_, err = m.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Steps()).To(Equal(halted))
	})

	It("inspects without side effects", func() {
		m, err := turing.New(2, 2)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 10; i++ {
			_, err := m.Step()
			Expect(err).NotTo(HaveOccurred())
		}
		snap, state := m.Snapshot(), m.State()
		Expect(m.Snapshot()).To(Equal(snap))
		Expect(m.State()).To(Equal(state))
		Expect(m.Steps()).To(Equal(10))
	})

	It("rejects negative operands", func() {
		m, err := turing.New(-1, 5)
		Expect(err).To(MatchError(turing.ErrInvalidInput))
		Expect(m).To(BeNil())
	})

	It("refuses to report a result before halting", func() {
		m, err := turing.New(3, 4)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.Result()
		Expect(err).To(MatchError(turing.ErrNotHalted))
	})
})
