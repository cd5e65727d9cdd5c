package harness_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gostonefire/chainhashmap/internal/harness"
)

var _ = Describe("Suite", func() {
	It("Will run sections and checks in the order they were added", func() {
		var order []string
		suite := harness.NewSuite()
		suite.Add("second", harness.Check{Label: "b1", Predicate: func() bool { order = append(order, "b1"); return true }})
		suite.Add("first", harness.Check{Label: "a1", Predicate: func() bool { order = append(order, "a1"); return true }})
		suite.Add("second", harness.Check{Label: "b2", Predicate: func() bool { order = append(order, "b2"); return true }})

		var out bytes.Buffer
		result := suite.Run(&out)

		Expect(suite.Sections()).To(Equal([]string{"second", "first"}))
		Expect(order).To(Equal([]string{"b1", "b2", "a1"}))
		Expect(result.OK()).To(BeTrue())
		Expect(result.Total).To(Equal(3))
		Expect(out.String()).To(ContainSubstring("✓ b1: Passed"))
		Expect(out.String()).To(ContainSubstring("3/3"))
	})

	It("Will count failing and panicking checks as failures", func() {
		suite := harness.NewSuite()
		suite.Add("section",
			harness.Check{Label: "passes", Predicate: func() bool { return true }},
			harness.Check{Label: "fails", Predicate: func() bool { return false }},
			harness.Check{Label: "panics", Predicate: func() bool { panic("boom") }},
		)

		var out bytes.Buffer
		result := suite.Run(&out)

		Expect(result.OK()).To(BeFalse())
		Expect(result.Passed).To(Equal(1))
		Expect(result.Total).To(Equal(3))
		Expect(result.Failures).To(Equal([]string{"fails", "panics: boom"}))
		Expect(out.String()).To(ContainSubstring("✗ fails: Failed"))
		Expect(out.String()).To(ContainSubstring("✗ panics: Panic raised: boom"))
		Expect(out.String()).To(ContainSubstring("1/3"))
	})
})

var _ = Describe("DefaultSuite", func() {
	It("Will pass every check", func() {
		suite := harness.DefaultSuite(10_000_000, 42)

		var out bytes.Buffer
		result := suite.Run(&out)

		Expect(result.Failures).To(BeEmpty())
		Expect(result.Total).To(Equal(26))
		Expect(result.Passed).To(Equal(26))
		Expect(suite.Sections()).To(Equal([]string{
			harness.SectionStrictDivision,
			harness.SectionStrictUniversal,
			harness.SectionModeFlag,
		}))
		Expect(out.String()).To(ContainSubstring("[universal] Search hit 40 returns inserted value: Passed"))
		Expect(out.String()).To(ContainSubstring("Tests Passed"))
	})

	It("Will pass the strict checks whatever the universal seed", func() {
		for seed := int64(0); seed < 20; seed++ {
			suite := harness.NewSuite()
			family := harness.UniversalFamily(seed)
			suite.Add("universal", harness.BasicUniqueChecks(10_000_000, family)...)
			suite.Add("universal", harness.DuplicateKeyChecks(10_000_000, family)...)
			suite.Add("universal", harness.IsolationChecks(10_000_000, family)...)

			var out bytes.Buffer
			Expect(suite.Run(&out).Failures).To(BeEmpty(), "seed %d", seed)
		}
	})
})
